package risk

import (
	"time"

	"github.com/hoopsight/courtload/internal/domain/schedule"
)

// TrendPoint is one game's projected risk within a projection run.
type TrendPoint struct {
	GameIndex      int
	BaselineRisk   float64
	DynamicRisk    float64
	Minutes        float64
	ScheduleStress float64
	GameLoadScore  float64
	Opponent       string
	Location       schedule.Location
	Date           time.Time
}

// ProjectDynamicRisk turns an annotated game sequence into a per-game risk
// trend. Each point starts from the baseline, adds flat schedule bonuses,
// scales by the game's own stress multiplier, then adds a cumulative fatigue
// term for every earlier high-stress game in the same run. The fatigue term
// makes projection path-dependent: identical games project different risk
// depending on what preceded them.
//
// An empty schedule yields a single fallback point carrying the baseline
// unchanged, so chart consumers always have something to draw.
func ProjectDynamicRisk(games []schedule.Game, baselineRisk, avgMinutes float64, th Thresholds) []TrendPoint {
	if len(games) == 0 {
		return []TrendPoint{{
			GameIndex:      1,
			BaselineRisk:   round2(baselineRisk),
			DynamicRisk:    round2(clamp(baselineRisk, 0, th.RiskCeiling)),
			Minutes:        avgMinutes,
			ScheduleStress: 1.0,
			GameLoadScore:  round2(clamp(baselineRisk, 0, th.RiskCeiling) / 10),
		}}
	}

	points := make([]TrendPoint, 0, len(games))
	highStressSeen := 0
	for i, game := range games {
		dynamic := baselineRisk
		if game.IsBackToBack {
			dynamic += th.BackToBackBonus
		}
		if game.IsThreeInFour {
			dynamic += th.ThreeInFourBonus
		}
		if game.RestDays == 0 && !game.IsBackToBack {
			dynamic += th.NoRestBonus
		}
		if game.Location == schedule.LocationAway {
			dynamic += th.AwayBonus
		}

		dynamic *= game.StressLevel
		dynamic += th.FatiguePerGame * float64(highStressSeen)
		dynamic = round2(clamp(dynamic, 0, th.RiskCeiling))

		points = append(points, TrendPoint{
			GameIndex:      i + 1,
			BaselineRisk:   round2(baselineRisk),
			DynamicRisk:    dynamic,
			Minutes:        avgMinutes,
			ScheduleStress: game.StressLevel,
			GameLoadScore:  round2(dynamic * game.StressLevel / 10),
			Opponent:       game.Opponent,
			Location:       game.Location,
			Date:           game.Date,
		})

		if game.StressLevel >= th.HighStressAtLeast {
			highStressSeen++
		}
	}

	return points
}
