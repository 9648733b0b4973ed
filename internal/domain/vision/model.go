package vision

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned by repositories when no combined-risk record exists
// for the requested player.
var ErrNotFound = errors.New("combined risk record not found")

// Analysis is the scalar output of the external video-analysis collaborator
// for one clip, plus whatever qualitative context it returned.
type Analysis struct {
	Score        float64
	Category     string
	SeriousFlags []string
	AnalyzedAt   time.Time
}

func (a Analysis) Validate() error {
	if a.Score < 0 || a.Score > 100 {
		return fmt.Errorf("vision score %.2f outside [0,100]", a.Score)
	}

	return nil
}

// CombinedRisk is the persisted per-player blend of the statistical baseline
// with the latest vision analysis.
type CombinedRisk struct {
	ID           string
	PlayerName   string
	BaselineRisk float64
	VisionRisk   float64
	Weight       float64
	CombinedRisk float64
	ClipRef      string
	AnalyzedAt   time.Time
}

func (c CombinedRisk) Validate() error {
	if c.PlayerName == "" {
		return fmt.Errorf("player name is required")
	}
	if c.Weight < 0 || c.Weight > 1 {
		return fmt.Errorf("vision weight %.2f outside [0,1]", c.Weight)
	}

	return nil
}

// Repository describes combined-risk persistence needs from use cases.
type Repository interface {
	Upsert(ctx context.Context, record CombinedRisk) error
	GetByPlayer(ctx context.Context, playerName string) (CombinedRisk, error)
}
