package memory

import (
	"time"

	"github.com/hoopsight/courtload/internal/domain/player"
	"github.com/hoopsight/courtload/internal/domain/schedule"
)

// SeedPlayerHistories returns the bundled roster: three seasons of workload
// per player plus the injury log, regions derived from the body-part text.
func SeedPlayerHistories() []player.History {
	histories := []player.History{
		{
			Name:     "Austin Reaves",
			Age:      27,
			Position: player.PositionShootingGuard,
			Seasons: []player.SeasonLine{
				{MinutesPerGame: 28.8, UsageRate: 19.2},
				{MinutesPerGame: 32.1, UsageRate: 22.4},
				{MinutesPerGame: 34.9, UsageRate: 26.1},
			},
			FoulsDrawn:     5.1,
			FoulsCommitted: 1.8,
			ContactRate:    6.9,
			RollingMinutes: []float64{33.2, 34.1, 34.8, 35.4, 36.0},
			Injuries: []player.InjuryRecord{
				{Year: 2025, Severity: player.SeverityModerate, GamesMissed: 6, RecoveryDays: 14, BodyPart: "Left Calf Strain"},
				{Year: 2025, Severity: player.SeverityModerate, GamesMissed: 4, RecoveryDays: 10, BodyPart: "Groin Injury"},
				{Year: 2025, Severity: player.SeverityMinor, GamesMissed: 2, RecoveryDays: 5, BodyPart: "Minor Calf Injury"},
			},
		},
		{
			Name:     "Luka Doncic",
			Age:      26,
			Position: player.PositionPointGuard,
			Seasons: []player.SeasonLine{
				{MinutesPerGame: 36.2, UsageRate: 37.6},
				{MinutesPerGame: 37.5, UsageRate: 36.0},
				{MinutesPerGame: 35.4, UsageRate: 35.2},
			},
			FoulsDrawn:     8.6,
			FoulsCommitted: 2.4,
			ContactRate:    11.0,
			RollingMinutes: []float64{34.8, 35.6, 36.2, 36.9, 37.1},
			Injuries: []player.InjuryRecord{
				{Year: 2026, Severity: player.SeverityModerate, GamesMissed: 8, RecoveryDays: 21, BodyPart: "Left Hamstring Strain"},
				{Year: 2024, Severity: player.SeverityMinor, GamesMissed: 3, RecoveryDays: 7, BodyPart: "Right Ankle Soreness"},
				{Year: 2023, Severity: player.SeverityMinor, GamesMissed: 1, RecoveryDays: 3, BodyPart: "Minor ankle/thigh soreness"},
			},
		},
		{
			Name:     "LeBron James",
			Age:      41,
			Position: player.PositionSmallForward,
			Seasons: []player.SeasonLine{
				{MinutesPerGame: 35.5, UsageRate: 31.4},
				{MinutesPerGame: 35.3, UsageRate: 29.5},
				{MinutesPerGame: 34.9, UsageRate: 28.8},
			},
			FoulsDrawn:     6.2,
			FoulsCommitted: 1.6,
			ContactRate:    7.8,
			RollingMinutes: []float64{33.8, 34.5, 35.1, 35.6, 35.9},
			Injuries: []player.InjuryRecord{
				{Year: 2025, Severity: player.SeverityChronic, GamesMissed: 14, RecoveryDays: 35, BodyPart: "Sciatica"},
				{Year: 2026, Severity: player.SeverityModerate, GamesMissed: 5, RecoveryDays: 12, BodyPart: "Left Knee Soreness"},
				{Year: 2026, Severity: player.SeverityModerate, GamesMissed: 4, RecoveryDays: 10, BodyPart: "Foot Injury"},
				{Year: 2025, Severity: player.SeverityModerate, GamesMissed: 7, RecoveryDays: 16, BodyPart: "Groin Strain"},
				{Year: 2025, Severity: player.SeverityMajor, GamesMissed: 12, RecoveryDays: 30, BodyPart: "Knee Ligament Injury"},
			},
		},
		{
			Name:     "Rui Hachimura",
			Age:      28,
			Position: player.PositionPowerForward,
			Seasons: []player.SeasonLine{
				{MinutesPerGame: 24.2, UsageRate: 18.7},
				{MinutesPerGame: 26.8, UsageRate: 19.9},
				{MinutesPerGame: 31.2, UsageRate: 21.3},
			},
			FoulsDrawn:     3.4,
			FoulsCommitted: 2.1,
			ContactRate:    5.5,
			RollingMinutes: []float64{29.4, 30.1, 30.8, 31.5, 31.9},
			Injuries: []player.InjuryRecord{
				{Year: 2026, Severity: player.SeverityModerate, GamesMissed: 5, RecoveryDays: 12, BodyPart: "Left Calf Strain"},
				{Year: 2025, Severity: player.SeverityMinor, GamesMissed: 2, RecoveryDays: 6, BodyPart: "Right Groin Soreness"},
				{Year: 2025, Severity: player.SeverityMinor, GamesMissed: 3, RecoveryDays: 7, BodyPart: "Calf Injury"},
			},
		},
		{
			Name:     "DeAndre Ayton",
			Age:      27,
			Position: player.PositionCenter,
			Seasons: []player.SeasonLine{
				{MinutesPerGame: 30.4, UsageRate: 23.9},
				{MinutesPerGame: 31.0, UsageRate: 24.6},
				{MinutesPerGame: 30.2, UsageRate: 22.8},
			},
			FoulsDrawn:     4.3,
			FoulsCommitted: 3.2,
			ContactRate:    7.5,
			RollingMinutes: []float64{29.8, 30.2, 30.6, 30.9, 31.3},
			Injuries: []player.InjuryRecord{
				{Year: 2025, Severity: player.SeverityModerate, GamesMissed: 4, RecoveryDays: 10, BodyPart: "Right Knee Contusion"},
				{Year: 2025, Severity: player.SeverityMinor, GamesMissed: 2, RecoveryDays: 5, BodyPart: "Elbow Injury"},
				{Year: 2026, Severity: player.SeverityModerate, GamesMissed: 6, RecoveryDays: 14, BodyPart: "Knee Injury"},
				{Year: 2026, Severity: player.SeverityMinor, GamesMissed: 1, RecoveryDays: 3, BodyPart: "Eye Injury"},
				{Year: 2026, Severity: player.SeverityMinor, GamesMissed: 2, RecoveryDays: 6, BodyPart: "Right Knee Soreness"},
			},
		},
	}

	for i := range histories {
		for j := range histories[i].Injuries {
			histories[i].Injuries[j] = histories[i].Injuries[j].WithRegion()
		}
	}

	return histories
}

// SeedGames returns a schedule slice with a back-to-back set, a three-in-four
// stretch and an away trip so every stress arm is represented.
func SeedGames() []schedule.Game {
	tipoff := func(year int, month time.Month, day int) time.Time {
		return time.Date(year, month, day, 19, 30, 0, 0, time.UTC)
	}

	return []schedule.Game{
		{ID: "gm-001", Date: tipoff(2026, 3, 2), Opponent: "Denver Nuggets", Location: schedule.LocationHome},
		{ID: "gm-002", Date: tipoff(2026, 3, 4), Opponent: "Phoenix Suns", Location: schedule.LocationAway},
		{ID: "gm-003", Date: tipoff(2026, 3, 5), Opponent: "Sacramento Kings", Location: schedule.LocationAway},
		{ID: "gm-004", Date: tipoff(2026, 3, 7), Opponent: "Golden State Warriors", Location: schedule.LocationAway},
		{ID: "gm-005", Date: tipoff(2026, 3, 10), Opponent: "Minnesota Timberwolves", Location: schedule.LocationHome},
		{ID: "gm-006", Date: tipoff(2026, 3, 11), Opponent: "Oklahoma City Thunder", Location: schedule.LocationHome},
		{ID: "gm-007", Date: tipoff(2026, 3, 14), Opponent: "Memphis Grizzlies", Location: schedule.LocationAway},
		{ID: "gm-008", Date: tipoff(2026, 3, 17), Opponent: "Dallas Mavericks", Location: schedule.LocationHome},
	}
}
