package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hoopsight/courtload/internal/domain/schedule"
	qb "github.com/hoopsight/courtload/internal/platform/querybuilder"
)

type GameRepository struct {
	db *sqlx.DB
}

type gameTableModel struct {
	ID        string     `db:"public_id"`
	GameDate  time.Time  `db:"game_date"`
	Opponent  string     `db:"opponent"`
	Location  string     `db:"location"`
	Result    string     `db:"result"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

var gameSelectColumns = []string{
	"public_id",
	"game_date",
	"opponent",
	"location",
	"result",
	"created_at",
	"updated_at",
	"deleted_at",
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) ListGames(ctx context.Context) ([]schedule.Game, error) {
	query, args, err := qb.Select(gameSelectColumns...).From("schedule_games").
		Where(qb.IsNull("deleted_at")).
		OrderBy("game_date", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select schedule games query: %w", err)
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		if isStatementCacheMiss(err) {
			err = r.db.SelectContext(ctx, &rows, query, args...)
		}
		if err != nil {
			return nil, fmt.Errorf("select schedule games: %w", err)
		}
	}

	out := make([]schedule.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, schedule.Game{
			ID:       row.ID,
			Date:     row.GameDate,
			Opponent: row.Opponent,
			Location: schedule.Location(row.Location),
			Result:   row.Result,
		})
	}

	return out, nil
}
