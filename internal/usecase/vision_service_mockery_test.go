package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/hoopsight/courtload/internal/domain/risk"
	"github.com/hoopsight/courtload/internal/domain/vision"
	schedulemock "github.com/hoopsight/courtload/internal/mocks/domain/schedule"
	visionmock "github.com/hoopsight/courtload/internal/mocks/domain/vision"
)

func TestVisionService_GetCombined_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	visionRepo := visionmock.NewRepository(t)

	service := NewVisionService(nil, visionRepo, nil, nil, risk.DefaultThresholds(), 0)
	expected := vision.CombinedRisk{
		ID:           "vr-1",
		PlayerName:   "LeBron James",
		BaselineRisk: 62.4,
		VisionRisk:   70,
		Weight:       0.05,
		CombinedRisk: 62.78,
		ClipRef:      "clips/james-post.mp4",
		AnalyzedAt:   time.Date(2026, 3, 11, 18, 0, 0, 0, time.UTC),
	}

	visionRepo.
		On("GetByPlayer", mock.Anything, "LeBron James").
		Return(expected, nil).
		Once()

	got, err := service.GetCombined(ctx, "LeBron James")
	if err != nil {
		t.Fatalf("get combined: %v", err)
	}
	if got.CombinedRisk != expected.CombinedRisk {
		t.Fatalf("unexpected combined risk: got=%.2f want=%.2f", got.CombinedRisk, expected.CombinedRisk)
	}
}

func TestVisionService_GetCombined_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	visionRepo := visionmock.NewRepository(t)

	service := NewVisionService(nil, visionRepo, nil, nil, risk.DefaultThresholds(), 0)

	visionRepo.
		On("GetByPlayer", mock.Anything, "Nobody").
		Return(vision.CombinedRisk{}, vision.ErrNotFound).
		Once()

	_, err := service.GetCombined(ctx, "Nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestScheduleService_ListGames_RepoErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gameRepo := schedulemock.NewRepository(t)

	service := NewScheduleService(gameRepo, nil, risk.DefaultThresholds())
	repoErr := errors.New("connection refused")

	gameRepo.
		On("ListGames", mock.Anything).
		Return(nil, repoErr).
		Once()

	_, err := service.ListGames(ctx)
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}
