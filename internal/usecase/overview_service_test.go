package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/hoopsight/courtload/internal/domain/risk"
	"github.com/hoopsight/courtload/internal/domain/schedule"
)

type stubOverviewProfiles struct {
	profiles []risk.Profile
	err      error
}

func (s stubOverviewProfiles) ListProfiles(_ context.Context) ([]risk.Profile, error) {
	return s.profiles, s.err
}

type stubOverviewSchedule struct {
	summary schedule.Summary
	err     error
}

func (s stubOverviewSchedule) Summary(_ context.Context) (schedule.Summary, error) {
	return s.summary, s.err
}

func TestOverviewService_Get(t *testing.T) {
	t.Parallel()

	profiles := stubOverviewProfiles{profiles: []risk.Profile{
		{PlayerName: "A Test", PredictedRisk: 30, Classification: risk.ClassificationLow},
		{PlayerName: "B Test", PredictedRisk: 50, Classification: risk.ClassificationModerate},
		{PlayerName: "C Test", PredictedRisk: 70, Classification: risk.ClassificationHigh},
	}}
	summary := stubOverviewSchedule{summary: schedule.Summary{TotalGames: 5, BackToBackCount: 1, HasBackToBack: true}}
	svc := NewOverviewService(profiles, summary)
	svc.now = func() time.Time {
		return time.Date(2025, 11, 5, 9, 0, 0, 0, time.UTC)
	}

	overview, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if overview.PlayerCount != 3 {
		t.Fatalf("expected 3 players, got=%d", overview.PlayerCount)
	}
	if overview.HighRiskCount != 1 {
		t.Fatalf("expected 1 high-risk player, got=%d", overview.HighRiskCount)
	}
	if overview.AverageRisk != 50.00 {
		t.Fatalf("expected average risk 50.00, got=%.2f", overview.AverageRisk)
	}
	if overview.Schedule.TotalGames != 5 {
		t.Fatalf("expected schedule summary passthrough, got=%d games", overview.Schedule.TotalGames)
	}
	if !overview.GeneratedAt.Equal(time.Date(2025, 11, 5, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected generated timestamp: %s", overview.GeneratedAt)
	}
}

func TestOverviewService_GetEmptyRoster(t *testing.T) {
	t.Parallel()

	svc := NewOverviewService(stubOverviewProfiles{}, stubOverviewSchedule{})

	overview, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if overview.PlayerCount != 0 || overview.AverageRisk != 0 {
		t.Fatalf("expected zeroed aggregates, got=%+v", overview)
	}
}

func TestOverviewService_GetPropagatesErrors(t *testing.T) {
	t.Parallel()

	profileErr := fmt.Errorf("profiles unavailable")
	svc := NewOverviewService(stubOverviewProfiles{err: profileErr}, stubOverviewSchedule{})

	if _, err := svc.Get(context.Background()); err == nil {
		t.Fatal("expected error from profile provider")
	}

	scheduleErr := fmt.Errorf("schedule unavailable")
	svc = NewOverviewService(stubOverviewProfiles{}, stubOverviewSchedule{err: scheduleErr})

	if _, err := svc.Get(context.Background()); err == nil {
		t.Fatal("expected error from schedule provider")
	}
}
