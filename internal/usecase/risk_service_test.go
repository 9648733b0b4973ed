package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hoopsight/courtload/internal/domain/player"
	"github.com/hoopsight/courtload/internal/domain/risk"
	"github.com/hoopsight/courtload/internal/platform/cache"
)

type stubPlayerRepo struct {
	histories []player.History
	listCalls atomic.Int32
}

func (s *stubPlayerRepo) List(_ context.Context) ([]player.History, error) {
	s.listCalls.Add(1)
	return s.histories, nil
}

func (s *stubPlayerRepo) GetByName(_ context.Context, name string) (player.History, error) {
	for _, h := range s.histories {
		if h.Name == name {
			return h, nil
		}
	}
	return player.History{}, player.ErrNotFound
}

func testWeights() risk.ModelWeights {
	return risk.ModelWeights{
		Intercept: -0.3,
		Features:  []string{risk.FeatureMinRolling10, risk.FeatureInjuryCount},
		Params: map[string]risk.FeatureParams{
			risk.FeatureMinRolling10: {Coefficient: 0.8, Mean: 32, Scale: 2},
			risk.FeatureInjuryCount:  {Coefficient: 0.5, Mean: 1, Scale: 1},
		},
	}
}

func testHistory(name string, age int) player.History {
	return player.History{
		Name:           name,
		Age:            age,
		Position:       player.PositionShootingGuard,
		Seasons:        []player.SeasonLine{{MinutesPerGame: 30, UsageRate: 22}},
		RollingMinutes: []float64{30, 32, 34},
	}
}

func TestRiskService_ListProfilesSortsByName(t *testing.T) {
	t.Parallel()

	repo := &stubPlayerRepo{histories: []player.History{
		testHistory("Zach Test", 27),
		testHistory("Adam Test", 27),
		testHistory("Mia Test", 27),
	}}
	svc := NewRiskService(repo, testWeights(), risk.DefaultThresholds(), nil, 4)

	profiles, err := svc.ListProfiles(context.Background())
	if err != nil {
		t.Fatalf("ListProfiles error: %v", err)
	}
	if len(profiles) != 3 {
		t.Fatalf("expected 3 profiles, got=%d", len(profiles))
	}
	if profiles[0].PlayerName != "Adam Test" || profiles[2].PlayerName != "Zach Test" {
		t.Fatalf("profiles not sorted by name: %s, %s, %s",
			profiles[0].PlayerName, profiles[1].PlayerName, profiles[2].PlayerName)
	}
}

func TestRiskService_ListProfilesUsesCache(t *testing.T) {
	t.Parallel()

	repo := &stubPlayerRepo{histories: []player.History{testHistory("Cache Test", 27)}}
	store := cache.NewStore(time.Minute)
	svc := NewRiskService(repo, testWeights(), risk.DefaultThresholds(), store, 4)

	if _, err := svc.ListProfiles(context.Background()); err != nil {
		t.Fatalf("first ListProfiles error: %v", err)
	}
	if _, err := svc.ListProfiles(context.Background()); err != nil {
		t.Fatalf("second ListProfiles error: %v", err)
	}
	if calls := repo.listCalls.Load(); calls != 1 {
		t.Fatalf("expected 1 repository call with warm cache, got=%d", calls)
	}
}

func TestRiskService_ListProfilesRejectsInvalidHistory(t *testing.T) {
	t.Parallel()

	invalid := testHistory("Broken Test", 27)
	invalid.Position = "XX"
	repo := &stubPlayerRepo{histories: []player.History{invalid}}
	svc := NewRiskService(repo, testWeights(), risk.DefaultThresholds(), nil, 4)

	if _, err := svc.ListProfiles(context.Background()); err == nil {
		t.Fatal("expected error for invalid player history")
	}
}

func TestRiskService_GetProfile(t *testing.T) {
	t.Parallel()

	repo := &stubPlayerRepo{histories: []player.History{testHistory("Get Test", 35)}}
	svc := NewRiskService(repo, testWeights(), risk.DefaultThresholds(), nil, 4)

	profile, err := svc.GetProfile(context.Background(), "Get Test")
	if err != nil {
		t.Fatalf("GetProfile error: %v", err)
	}
	if profile.PlayerName != "Get Test" {
		t.Fatalf("unexpected player name: %s", profile.PlayerName)
	}
	if profile.PredictedRisk <= profile.BaselineRisk {
		t.Fatalf("expected age surcharge above baseline: baseline=%.2f predicted=%.2f",
			profile.BaselineRisk, profile.PredictedRisk)
	}
	if profile.CurrentMinutes != 34 {
		t.Fatalf("expected current minutes 34, got=%.2f", profile.CurrentMinutes)
	}
}

func TestRiskService_GetProfileNotFound(t *testing.T) {
	t.Parallel()

	svc := NewRiskService(&stubPlayerRepo{}, testWeights(), risk.DefaultThresholds(), nil, 4)

	_, err := svc.GetProfile(context.Background(), "Nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got=%v", err)
	}
}

func TestRiskService_GetProfileRequiresName(t *testing.T) {
	t.Parallel()

	svc := NewRiskService(&stubPlayerRepo{}, testWeights(), risk.DefaultThresholds(), nil, 4)

	_, err := svc.GetProfile(context.Background(), "   ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got=%v", err)
	}
}

func TestRiskService_RefreshProfiles(t *testing.T) {
	t.Parallel()

	invalid := testHistory("Broken Test", 27)
	invalid.Age = 0
	repo := &stubPlayerRepo{histories: []player.History{
		testHistory("Valid One", 27),
		invalid,
		testHistory("Valid Two", 30),
	}}
	store := cache.NewStore(time.Minute)
	svc := NewRiskService(repo, testWeights(), risk.DefaultThresholds(), store, 2)

	result, err := svc.RefreshProfiles(context.Background())
	if err != nil {
		t.Fatalf("RefreshProfiles error: %v", err)
	}
	if result.PlayerCount != 3 {
		t.Fatalf("expected 3 players, got=%d", result.PlayerCount)
	}
	if result.SuccessCount != 2 || result.FailedCount != 1 {
		t.Fatalf("unexpected counts: success=%d failed=%d", result.SuccessCount, result.FailedCount)
	}
	if len(result.Failures) != 1 || result.Failures[0].PlayerName != "Broken Test" {
		t.Fatalf("unexpected failures: %+v", result.Failures)
	}
	if result.WorkerCount != 2 {
		t.Fatalf("expected 2 workers, got=%d", result.WorkerCount)
	}
}

func TestRiskService_RefreshProfilesWarmsListCache(t *testing.T) {
	t.Parallel()

	repo := &stubPlayerRepo{histories: []player.History{
		testHistory("Warm One", 27),
		testHistory("Warm Two", 29),
	}}
	store := cache.NewStore(time.Minute)
	svc := NewRiskService(repo, testWeights(), risk.DefaultThresholds(), store, 4)

	if _, err := svc.RefreshProfiles(context.Background()); err != nil {
		t.Fatalf("RefreshProfiles error: %v", err)
	}

	profiles, err := svc.ListProfiles(context.Background())
	if err != nil {
		t.Fatalf("ListProfiles error: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got=%d", len(profiles))
	}
	if calls := repo.listCalls.Load(); calls != 1 {
		t.Fatalf("expected list cache warmed by refresh, repo calls=%d", calls)
	}
}

func TestNormalizeProfileWorkerCount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value, tasks, want int
	}{
		{value: 0, tasks: 10, want: 1},
		{value: 4, tasks: 10, want: 4},
		{value: 20, tasks: 10, want: 8},
		{value: 4, tasks: 2, want: 2},
		{value: 4, tasks: 0, want: 1},
	}
	for _, tc := range cases {
		if got := normalizeProfileWorkerCount(tc.value, tc.tasks); got != tc.want {
			t.Fatalf("normalizeProfileWorkerCount(%d, %d)=%d want=%d", tc.value, tc.tasks, got, tc.want)
		}
	}
}
