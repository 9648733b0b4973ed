package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hoopsight/courtload/internal/domain/player"
	qb "github.com/hoopsight/courtload/internal/platform/querybuilder"
)

type PlayerHistoryRepository struct {
	db *sqlx.DB
}

var playerHistorySelectColumns = []string{
	"id",
	"name",
	"age",
	"position",
	"seasons",
	"fouls_drawn",
	"fouls_committed",
	"contact_rate",
	"rolling_minutes",
	"created_at",
	"updated_at",
	"deleted_at",
}

var playerInjurySelectColumns = []string{
	"id",
	"player_name",
	"year",
	"severity",
	"games_missed",
	"recovery_days",
	"body_part",
}

func NewPlayerHistoryRepository(db *sqlx.DB) *PlayerHistoryRepository {
	return &PlayerHistoryRepository{db: db}
}

func (r *PlayerHistoryRepository) List(ctx context.Context) ([]player.History, error) {
	query, args, err := qb.Select(playerHistorySelectColumns...).From("player_histories").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player histories query: %w", err)
	}

	var rows []playerHistoryTableModel
	if err := r.selectRows(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player histories: %w", err)
	}

	injuriesByPlayer, err := r.listInjuries(ctx, nil)
	if err != nil {
		return nil, err
	}

	out := make([]player.History, 0, len(rows))
	for _, row := range rows {
		history, err := historyFromRow(row, injuriesByPlayer[row.Name])
		if err != nil {
			return nil, err
		}
		out = append(out, history)
	}

	return out, nil
}

func (r *PlayerHistoryRepository) GetByName(ctx context.Context, name string) (player.History, error) {
	query, args, err := qb.Select(playerHistorySelectColumns...).From("player_histories").
		Where(
			qb.Eq("name", name),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return player.History{}, fmt.Errorf("build get player history query: %w", err)
	}

	var row playerHistoryTableModel
	if err := r.getRow(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.History{}, player.ErrNotFound
		}
		return player.History{}, fmt.Errorf("get player history: %w", err)
	}

	injuriesByPlayer, err := r.listInjuries(ctx, []string{name})
	if err != nil {
		return player.History{}, err
	}

	return historyFromRow(row, injuriesByPlayer[name])
}

func (r *PlayerHistoryRepository) listInjuries(ctx context.Context, playerNames []string) (map[string][]playerInjuryTableModel, error) {
	builder := qb.Select(playerInjurySelectColumns...).From("player_injuries")
	if len(playerNames) > 0 {
		builder = builder.Where(qb.In("player_name", stringSliceToAny(playerNames)))
	}
	query, args, err := builder.OrderBy("player_name", "year", "id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player injuries query: %w", err)
	}

	var rows []playerInjuryTableModel
	if err := r.selectRows(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player injuries: %w", err)
	}

	out := make(map[string][]playerInjuryTableModel, len(rows))
	for _, row := range rows {
		out[row.PlayerName] = append(out[row.PlayerName], row)
	}

	return out, nil
}

func (r *PlayerHistoryRepository) selectRows(ctx context.Context, dest any, query string, args ...any) error {
	err := r.db.SelectContext(ctx, dest, query, args...)
	if isStatementCacheMiss(err) {
		err = r.db.SelectContext(ctx, dest, query, args...)
	}
	return err
}

func (r *PlayerHistoryRepository) getRow(ctx context.Context, dest any, query string, args ...any) error {
	err := r.db.GetContext(ctx, dest, query, args...)
	if isStatementCacheMiss(err) {
		err = r.db.GetContext(ctx, dest, query, args...)
	}
	return err
}

func stringSliceToAny(items []string) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}
