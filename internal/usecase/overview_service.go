package usecase

import (
	"context"
	"math"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/hoopsight/courtload/internal/domain/risk"
	"github.com/hoopsight/courtload/internal/domain/schedule"
)

// Overview is the combined dashboard payload: every profile next to the
// schedule summary, plus roster-level aggregates.
type Overview struct {
	Profiles      []risk.Profile   `json:"profiles"`
	Schedule      schedule.Summary `json:"schedule"`
	PlayerCount   int              `json:"player_count"`
	HighRiskCount int              `json:"high_risk_count"`
	AverageRisk   float64          `json:"average_risk"`
	GeneratedAt   time.Time        `json:"generated_at"`
}

type overviewProfileProvider interface {
	ListProfiles(ctx context.Context) ([]risk.Profile, error)
}

type overviewScheduleProvider interface {
	Summary(ctx context.Context) (schedule.Summary, error)
}

type OverviewService struct {
	riskSvc     overviewProfileProvider
	scheduleSvc overviewScheduleProvider
	now         func() time.Time
}

func NewOverviewService(riskSvc overviewProfileProvider, scheduleSvc overviewScheduleProvider) *OverviewService {
	return &OverviewService{
		riskSvc:     riskSvc,
		scheduleSvc: scheduleSvc,
		now:         time.Now,
	}
}

// Get fans the profile build and the schedule summary out concurrently; both
// must succeed for the overview to render.
func (s *OverviewService) Get(ctx context.Context) (Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OverviewService.Get")
	defer span.End()

	var profiles []risk.Profile
	var summary schedule.Summary

	group := pool.New().WithContext(ctx).WithCancelOnError()
	group.Go(func(ctx context.Context) error {
		items, err := s.riskSvc.ListProfiles(ctx)
		if err != nil {
			return err
		}
		profiles = items
		return nil
	})
	group.Go(func(ctx context.Context) error {
		item, err := s.scheduleSvc.Summary(ctx)
		if err != nil {
			return err
		}
		summary = item
		return nil
	})
	if err := group.Wait(); err != nil {
		return Overview{}, err
	}

	highRisk := 0
	riskTotal := 0.0
	for _, profile := range profiles {
		if profile.Classification == risk.ClassificationHigh {
			highRisk++
		}
		riskTotal += profile.PredictedRisk
	}

	averageRisk := 0.0
	if len(profiles) > 0 {
		averageRisk = math.Round(riskTotal/float64(len(profiles))*100) / 100
	}

	return Overview{
		Profiles:      profiles,
		Schedule:      summary,
		PlayerCount:   len(profiles),
		HighRiskCount: highRisk,
		AverageRisk:   averageRisk,
		GeneratedAt:   s.now().UTC(),
	}, nil
}
