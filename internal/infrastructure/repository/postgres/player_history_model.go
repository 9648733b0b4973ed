package postgres

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/lib/pq"

	"github.com/hoopsight/courtload/internal/domain/player"
)

type playerHistoryTableModel struct {
	ID             int64           `db:"id"`
	Name           string          `db:"name"`
	Age            int             `db:"age"`
	Position       string          `db:"position"`
	Seasons        []byte          `db:"seasons"`
	FoulsDrawn     float64         `db:"fouls_drawn"`
	FoulsCommitted float64         `db:"fouls_committed"`
	ContactRate    float64         `db:"contact_rate"`
	RollingMinutes pq.Float64Array `db:"rolling_minutes"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
	DeletedAt      *time.Time      `db:"deleted_at"`
}

type playerInjuryTableModel struct {
	ID           int64  `db:"id"`
	PlayerName   string `db:"player_name"`
	Year         int    `db:"year"`
	Severity     string `db:"severity"`
	GamesMissed  int    `db:"games_missed"`
	RecoveryDays int    `db:"recovery_days"`
	BodyPart     string `db:"body_part"`
}

type seasonLineJSON struct {
	MinutesPerGame float64 `json:"minutes_per_game"`
	UsageRate      float64 `json:"usage_rate"`
}

func historyFromRow(row playerHistoryTableModel, injuries []playerInjuryTableModel) (player.History, error) {
	var seasonRows []seasonLineJSON
	if len(row.Seasons) > 0 {
		if err := sonic.Unmarshal(row.Seasons, &seasonRows); err != nil {
			return player.History{}, fmt.Errorf("unmarshal seasons for player=%s: %w", row.Name, err)
		}
	}

	seasons := make([]player.SeasonLine, 0, len(seasonRows))
	for _, season := range seasonRows {
		seasons = append(seasons, player.SeasonLine{
			MinutesPerGame: season.MinutesPerGame,
			UsageRate:      season.UsageRate,
		})
	}

	records := make([]player.InjuryRecord, 0, len(injuries))
	for _, injury := range injuries {
		records = append(records, player.InjuryRecord{
			Year:         injury.Year,
			Severity:     player.Severity(injury.Severity),
			GamesMissed:  injury.GamesMissed,
			RecoveryDays: injury.RecoveryDays,
			BodyPart:     injury.BodyPart,
		}.WithRegion())
	}

	return player.History{
		Name:           row.Name,
		Age:            row.Age,
		Position:       player.Position(row.Position),
		Seasons:        seasons,
		FoulsDrawn:     row.FoulsDrawn,
		FoulsCommitted: row.FoulsCommitted,
		ContactRate:    row.ContactRate,
		RollingMinutes: append([]float64(nil), row.RollingMinutes...),
		Injuries:       records,
	}, nil
}
