package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hoopsight/courtload/internal/domain/risk"
	"github.com/hoopsight/courtload/internal/domain/schedule"
)

const maxProjectionMinutes = 48

type scheduleProfileProvider interface {
	GetProfile(ctx context.Context, playerName string) (risk.Profile, error)
}

// ScheduleService serves the annotated game list, its aggregate summary and
// the per-game dynamic risk projection.
type ScheduleService struct {
	gameRepo   schedule.Repository
	profiles   scheduleProfileProvider
	thresholds risk.Thresholds
	now        func() time.Time
}

func NewScheduleService(
	gameRepo schedule.Repository,
	profiles scheduleProfileProvider,
	thresholds risk.Thresholds,
) *ScheduleService {
	return &ScheduleService{
		gameRepo:   gameRepo,
		profiles:   profiles,
		thresholds: thresholds,
		now:        time.Now,
	}
}

// ListGames returns the schedule with rest, back-to-back, three-in-four and
// stress fields derived.
func (s *ScheduleService) ListGames(ctx context.Context) ([]schedule.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.ListGames")
	defer span.End()

	return s.loadAnnotated(ctx)
}

func (s *ScheduleService) Summary(ctx context.Context) (schedule.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.Summary")
	defer span.End()

	games, err := s.loadAnnotated(ctx)
	if err != nil {
		return schedule.Summary{}, err
	}

	return schedule.Summarize(games, s.now().UTC()), nil
}

type ProjectionInput struct {
	// PlayerName selects a player whose predicted risk and current minutes
	// seed the projection. When empty, BaselineRisk must be supplied.
	PlayerName   string
	BaselineRisk *float64
	Minutes      *float64
}

type Projection struct {
	PlayerName   string            `json:"player_name,omitempty"`
	BaselineRisk float64           `json:"baseline_risk"`
	Minutes      float64           `json:"minutes"`
	GameCount    int               `json:"game_count"`
	PeakRisk     float64           `json:"peak_risk"`
	Points       []risk.TrendPoint `json:"points"`
}

// ProjectTrend runs the dynamic projection over the full annotated schedule.
// Explicit baseline or minutes override the player-derived values.
func (s *ScheduleService) ProjectTrend(ctx context.Context, input ProjectionInput) (Projection, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.ProjectTrend")
	defer span.End()

	playerName := strings.TrimSpace(input.PlayerName)
	baseline := 0.0
	minutes := 0.0

	if playerName != "" {
		if s.profiles == nil {
			return Projection{}, fmt.Errorf("%w: risk profiles are not configured", ErrDependencyUnavailable)
		}
		profile, err := s.profiles.GetProfile(ctx, playerName)
		if err != nil {
			return Projection{}, err
		}
		baseline = profile.PredictedRisk
		minutes = profile.CurrentMinutes
	} else if input.BaselineRisk == nil {
		return Projection{}, fmt.Errorf("%w: player_name or baseline_risk is required", ErrInvalidInput)
	}

	if input.BaselineRisk != nil {
		baseline = *input.BaselineRisk
	}
	if input.Minutes != nil {
		minutes = *input.Minutes
	}
	if baseline < 0 || baseline > s.thresholds.RiskCeiling {
		return Projection{}, fmt.Errorf("%w: baseline_risk %.2f outside [0,%.0f]", ErrInvalidInput, baseline, s.thresholds.RiskCeiling)
	}
	if minutes < 0 || minutes > maxProjectionMinutes {
		return Projection{}, fmt.Errorf("%w: minutes %.2f outside [0,%d]", ErrInvalidInput, minutes, maxProjectionMinutes)
	}

	games, err := s.loadAnnotated(ctx)
	if err != nil {
		return Projection{}, err
	}

	points := risk.ProjectDynamicRisk(games, baseline, minutes, s.thresholds)
	peak := 0.0
	for _, point := range points {
		if point.DynamicRisk > peak {
			peak = point.DynamicRisk
		}
	}

	return Projection{
		PlayerName:   playerName,
		BaselineRisk: baseline,
		Minutes:      minutes,
		GameCount:    len(games),
		PeakRisk:     peak,
		Points:       points,
	}, nil
}

func (s *ScheduleService) loadAnnotated(ctx context.Context) ([]schedule.Game, error) {
	games, err := s.gameRepo.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedule games: %w", err)
	}

	return schedule.Annotate(games), nil
}
