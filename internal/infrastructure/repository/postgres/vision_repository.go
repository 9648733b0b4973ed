package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hoopsight/courtload/internal/domain/vision"
	qb "github.com/hoopsight/courtload/internal/platform/querybuilder"
)

type VisionRepository struct {
	db *sqlx.DB
}

type visionRiskTableModel struct {
	ID           int64     `db:"id"`
	PublicID     string    `db:"public_id"`
	PlayerName   string    `db:"player_name"`
	BaselineRisk float64   `db:"baseline_risk"`
	VisionRisk   float64   `db:"vision_risk"`
	Weight       float64   `db:"weight"`
	CombinedRisk float64   `db:"combined_risk"`
	ClipRef      string    `db:"clip_ref"`
	AnalyzedAt   time.Time `db:"analyzed_at"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type visionRiskInsertModel struct {
	PublicID     string    `db:"public_id"`
	PlayerName   string    `db:"player_name"`
	BaselineRisk float64   `db:"baseline_risk"`
	VisionRisk   float64   `db:"vision_risk"`
	Weight       float64   `db:"weight"`
	CombinedRisk float64   `db:"combined_risk"`
	ClipRef      string    `db:"clip_ref"`
	AnalyzedAt   time.Time `db:"analyzed_at"`
}

var visionRiskSelectColumns = []string{
	"id",
	"public_id",
	"player_name",
	"baseline_risk",
	"vision_risk",
	"weight",
	"combined_risk",
	"clip_ref",
	"analyzed_at",
	"created_at",
	"updated_at",
}

const visionRiskUpsertSuffix = `ON CONFLICT (player_name) DO UPDATE SET
	public_id = EXCLUDED.public_id,
	baseline_risk = EXCLUDED.baseline_risk,
	vision_risk = EXCLUDED.vision_risk,
	weight = EXCLUDED.weight,
	combined_risk = EXCLUDED.combined_risk,
	clip_ref = EXCLUDED.clip_ref,
	analyzed_at = EXCLUDED.analyzed_at,
	updated_at = NOW()`

func NewVisionRepository(db *sqlx.DB) *VisionRepository {
	return &VisionRepository{db: db}
}

func (r *VisionRepository) Upsert(ctx context.Context, record vision.CombinedRisk) error {
	if err := record.Validate(); err != nil {
		return err
	}

	query, args, err := qb.InsertModel("vision_risk_scores", visionRiskInsertModel{
		PublicID:     record.ID,
		PlayerName:   record.PlayerName,
		BaselineRisk: record.BaselineRisk,
		VisionRisk:   record.VisionRisk,
		Weight:       record.Weight,
		CombinedRisk: record.CombinedRisk,
		ClipRef:      record.ClipRef,
		AnalyzedAt:   record.AnalyzedAt,
	}, visionRiskUpsertSuffix)
	if err != nil {
		return fmt.Errorf("build upsert combined risk query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isStatementCacheMiss(err) {
			_, err = r.db.ExecContext(ctx, query, args...)
		}
		if err != nil {
			return fmt.Errorf("upsert combined risk player=%s: %w", record.PlayerName, err)
		}
	}

	return nil
}

func (r *VisionRepository) GetByPlayer(ctx context.Context, playerName string) (vision.CombinedRisk, error) {
	query, args, err := qb.Select(visionRiskSelectColumns...).From("vision_risk_scores").
		Where(qb.Eq("player_name", playerName)).
		ToSQL()
	if err != nil {
		return vision.CombinedRisk{}, fmt.Errorf("build get combined risk query: %w", err)
	}

	var row visionRiskTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isStatementCacheMiss(err) {
			err = r.db.GetContext(ctx, &row, query, args...)
		}
		if isNotFound(err) {
			return vision.CombinedRisk{}, vision.ErrNotFound
		}
		if err != nil {
			return vision.CombinedRisk{}, fmt.Errorf("get combined risk: %w", err)
		}
	}

	return vision.CombinedRisk{
		ID:           row.PublicID,
		PlayerName:   row.PlayerName,
		BaselineRisk: row.BaselineRisk,
		VisionRisk:   row.VisionRisk,
		Weight:       row.Weight,
		CombinedRisk: row.CombinedRisk,
		ClipRef:      row.ClipRef,
		AnalyzedAt:   row.AnalyzedAt,
	}, nil
}
