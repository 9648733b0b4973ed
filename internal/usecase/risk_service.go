package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/hoopsight/courtload/internal/domain/player"
	"github.com/hoopsight/courtload/internal/domain/risk"
	"github.com/hoopsight/courtload/internal/platform/cache"
)

const (
	profilesCacheKey      = "risk:profiles"
	profileCacheKeyPrefix = "risk:profile:"

	maxProfileWorkers = 8

	refreshStatusSuccess = "success"
	refreshStatusFailed  = "failed"
)

// RiskService computes per-player risk profiles from the loaded model
// weights. Profiles are derived on demand and cached; nothing is persisted.
type RiskService struct {
	playerRepo player.Repository
	weights    risk.ModelWeights
	thresholds risk.Thresholds
	store      *cache.Store
	workers    int
}

func NewRiskService(
	playerRepo player.Repository,
	weights risk.ModelWeights,
	thresholds risk.Thresholds,
	store *cache.Store,
	workers int,
) *RiskService {
	return &RiskService{
		playerRepo: playerRepo,
		weights:    weights,
		thresholds: thresholds,
		store:      store,
		workers:    workers,
	}
}

// Thresholds exposes the scoring constants in effect so other services blend
// and classify with the same numbers.
func (s *RiskService) Thresholds() risk.Thresholds {
	return s.thresholds
}

func (s *RiskService) ListProfiles(ctx context.Context) ([]risk.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RiskService.ListProfiles")
	defer span.End()

	if s.store == nil {
		return s.buildAllProfiles(ctx)
	}

	value, err := s.store.GetOrLoad(ctx, profilesCacheKey, func(ctx context.Context) (any, error) {
		return s.buildAllProfiles(ctx)
	})
	if err != nil {
		return nil, err
	}

	profiles, ok := value.([]risk.Profile)
	if !ok {
		return nil, fmt.Errorf("unexpected cached profile list type %T", value)
	}
	return profiles, nil
}

func (s *RiskService) GetProfile(ctx context.Context, playerName string) (risk.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RiskService.GetProfile")
	defer span.End()

	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return risk.Profile{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	if s.store == nil {
		return s.buildProfile(ctx, playerName)
	}

	value, err := s.store.GetOrLoad(ctx, profileCacheKeyPrefix+playerName, func(ctx context.Context) (any, error) {
		return s.buildProfile(ctx, playerName)
	})
	if err != nil {
		return risk.Profile{}, err
	}

	profile, ok := value.(risk.Profile)
	if !ok {
		return risk.Profile{}, fmt.Errorf("unexpected cached profile type %T", value)
	}
	return profile, nil
}

func (s *RiskService) buildProfile(ctx context.Context, playerName string) (risk.Profile, error) {
	history, err := s.playerRepo.GetByName(ctx, playerName)
	if err != nil {
		if errors.Is(err, player.ErrNotFound) {
			return risk.Profile{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerName)
		}
		return risk.Profile{}, fmt.Errorf("get player history: %w", err)
	}
	if err := history.Validate(); err != nil {
		return risk.Profile{}, fmt.Errorf("validate player history player=%s: %w", playerName, err)
	}

	return risk.BuildProfile(history, s.weights, s.thresholds), nil
}

func (s *RiskService) buildAllProfiles(ctx context.Context) ([]risk.Profile, error) {
	histories, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list player histories: %w", err)
	}
	if len(histories) == 0 {
		return []risk.Profile{}, nil
	}

	pool, err := ants.NewPool(normalizeProfileWorkerCount(s.workers, len(histories)))
	if err != nil {
		return nil, fmt.Errorf("create profile worker pool: %w", err)
	}
	defer pool.Release()

	profiles := make([]risk.Profile, len(histories))
	var buildErr error
	var errMu sync.Mutex
	var workers sync.WaitGroup

	for i, history := range histories {
		i, history := i, history
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			if err := history.Validate(); err != nil {
				errMu.Lock()
				if buildErr == nil {
					buildErr = fmt.Errorf("validate player history player=%s: %w", history.Name, err)
				}
				errMu.Unlock()
				return
			}
			profiles[i] = risk.BuildProfile(history, s.weights, s.thresholds)
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit profile build to worker pool: %w", err)
		}
	}

	workers.Wait()
	if buildErr != nil {
		return nil, buildErr
	}

	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].PlayerName < profiles[j].PlayerName
	})
	return profiles, nil
}

type ProfileRefreshResult struct {
	PlayerCount  int                     `json:"player_count"`
	SuccessCount int                     `json:"success_count"`
	FailedCount  int                     `json:"failed_count"`
	WorkerCount  int                     `json:"worker_count"`
	DurationMs   int64                   `json:"duration_ms"`
	Failures     []ProfileRefreshFailure `json:"failures,omitempty"`
}

type ProfileRefreshFailure struct {
	PlayerName string `json:"player_name"`
	Message    string `json:"message"`
}

// RefreshProfiles drops every cached profile and rebuilds them through the
// worker pool, warming the cache for subsequent reads. Players whose history
// fails validation are reported without aborting the rest of the batch.
func (s *RiskService) RefreshProfiles(ctx context.Context) (ProfileRefreshResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RiskService.RefreshProfiles")
	defer span.End()

	start := time.Now()

	histories, err := s.playerRepo.List(ctx)
	if err != nil {
		return ProfileRefreshResult{}, fmt.Errorf("list player histories: %w", err)
	}

	if s.store != nil {
		s.store.DeletePrefix(ctx, profileCacheKeyPrefix)
		s.store.Delete(ctx, profilesCacheKey)
	}

	workerCount := normalizeProfileWorkerCount(s.workers, len(histories))
	result := ProfileRefreshResult{
		PlayerCount: len(histories),
		WorkerCount: workerCount,
	}
	if len(histories) == 0 {
		result.DurationMs = time.Since(start).Milliseconds()
		return result, nil
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return ProfileRefreshResult{}, fmt.Errorf("create profile worker pool: %w", err)
	}
	defer pool.Release()

	var successCount atomic.Int32
	var failedCount atomic.Int32
	failures := make(chan ProfileRefreshFailure, len(histories))
	refreshed := make(chan risk.Profile, len(histories))

	var workers sync.WaitGroup
	for _, history := range histories {
		history := history
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			if err := history.Validate(); err != nil {
				failedCount.Add(1)
				failures <- ProfileRefreshFailure{
					PlayerName: history.Name,
					Message:    err.Error(),
				}
				return
			}

			profile := risk.BuildProfile(history, s.weights, s.thresholds)
			if s.store != nil {
				s.store.Set(ctx, profileCacheKeyPrefix+profile.PlayerName, profile)
			}
			successCount.Add(1)
			refreshed <- profile
		}); err != nil {
			workers.Done()
			return ProfileRefreshResult{}, fmt.Errorf("submit profile refresh to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(failures)
	close(refreshed)

	for failure := range failures {
		result.Failures = append(result.Failures, failure)
	}
	sort.SliceStable(result.Failures, func(i, j int) bool {
		return result.Failures[i].PlayerName < result.Failures[j].PlayerName
	})

	if s.store != nil && failedCount.Load() == 0 {
		profiles := make([]risk.Profile, 0, len(histories))
		for profile := range refreshed {
			profiles = append(profiles, profile)
		}
		sort.SliceStable(profiles, func(i, j int) bool {
			return profiles[i].PlayerName < profiles[j].PlayerName
		})
		s.store.Set(ctx, profilesCacheKey, profiles)
	}

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	result.DurationMs = time.Since(start).Milliseconds()
	return result, nil
}

func normalizeProfileWorkerCount(value int, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 1
	}
	if value > maxProfileWorkers {
		value = maxProfileWorkers
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
