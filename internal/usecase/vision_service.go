package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hoopsight/courtload/internal/domain/risk"
	"github.com/hoopsight/courtload/internal/domain/vision"
	"github.com/hoopsight/courtload/internal/platform/id"
)

// ClipAnalyzer is the external movement-analysis collaborator. Implementations
// score one clip reference on the shared 0-100 risk scale.
type ClipAnalyzer interface {
	AnalyzeClip(ctx context.Context, clipRef string) (vision.Analysis, error)
}

type visionProfileProvider interface {
	GetProfile(ctx context.Context, playerName string) (risk.Profile, error)
}

// VisionService blends externally computed vision risk into statistical
// baselines. Persisted per-player records use the conservative stored weight;
// ad-hoc combinations default to the heavier exploratory weight.
type VisionService struct {
	analyzer   ClipAnalyzer
	visionRepo vision.Repository
	profiles   visionProfileProvider
	idGen      id.Generator
	thresholds risk.Thresholds

	// storedWeight overrides the thresholds default when set via config.
	storedWeight float64
	now          func() time.Time
}

func NewVisionService(
	analyzer ClipAnalyzer,
	visionRepo vision.Repository,
	profiles visionProfileProvider,
	idGen id.Generator,
	thresholds risk.Thresholds,
	storedWeight float64,
) *VisionService {
	if storedWeight <= 0 {
		storedWeight = thresholds.StoredVisionWeight
	}
	return &VisionService{
		analyzer:     analyzer,
		visionRepo:   visionRepo,
		profiles:     profiles,
		idGen:        idGen,
		thresholds:   thresholds,
		storedWeight: storedWeight,
		now:          time.Now,
	}
}

type VisionAnalyzeInput struct {
	PlayerName string
	ClipRef    string
}

type VisionAnalysisResult struct {
	Record       vision.CombinedRisk `json:"record"`
	Category     string              `json:"category"`
	SeriousFlags []string            `json:"serious_flags,omitempty"`
}

// AnalyzeClip sends one clip to the analyzer, blends the returned score into
// the player's predicted risk at the stored weight and upserts the result.
func (s *VisionService) AnalyzeClip(ctx context.Context, input VisionAnalyzeInput) (VisionAnalysisResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.VisionService.AnalyzeClip")
	defer span.End()

	playerName := strings.TrimSpace(input.PlayerName)
	clipRef := strings.TrimSpace(input.ClipRef)
	if playerName == "" {
		return VisionAnalysisResult{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if clipRef == "" {
		return VisionAnalysisResult{}, fmt.Errorf("%w: clip reference is required", ErrInvalidInput)
	}
	if s.analyzer == nil {
		return VisionAnalysisResult{}, fmt.Errorf("%w: vision analysis is disabled (VISION_ENABLED=false)", ErrDependencyUnavailable)
	}
	if s.visionRepo == nil || s.profiles == nil {
		return VisionAnalysisResult{}, fmt.Errorf("%w: vision analysis is not fully configured", ErrDependencyUnavailable)
	}

	profile, err := s.profiles.GetProfile(ctx, playerName)
	if err != nil {
		return VisionAnalysisResult{}, err
	}

	analysis, err := s.analyzer.AnalyzeClip(ctx, clipRef)
	if err != nil {
		return VisionAnalysisResult{}, fmt.Errorf("%w: analyze clip: %v", ErrDependencyUnavailable, err)
	}
	if err := analysis.Validate(); err != nil {
		return VisionAnalysisResult{}, fmt.Errorf("%w: analyzer response: %v", ErrDependencyUnavailable, err)
	}

	recordID, err := s.idGen.NewID()
	if err != nil {
		return VisionAnalysisResult{}, fmt.Errorf("generate analysis id: %w", err)
	}

	analyzedAt := analysis.AnalyzedAt
	if analyzedAt.IsZero() {
		analyzedAt = s.now().UTC()
	}

	record := vision.CombinedRisk{
		ID:           recordID,
		PlayerName:   profile.PlayerName,
		BaselineRisk: profile.PredictedRisk,
		VisionRisk:   analysis.Score,
		Weight:       s.storedWeight,
		CombinedRisk: risk.CombineWithVision(profile.PredictedRisk, analysis.Score, s.storedWeight),
		ClipRef:      clipRef,
		AnalyzedAt:   analyzedAt,
	}
	if err := record.Validate(); err != nil {
		return VisionAnalysisResult{}, fmt.Errorf("validate combined risk record: %w", err)
	}
	if err := s.visionRepo.Upsert(ctx, record); err != nil {
		return VisionAnalysisResult{}, fmt.Errorf("upsert combined risk player=%s: %w", playerName, err)
	}

	return VisionAnalysisResult{
		Record:       record,
		Category:     analysis.Category,
		SeriousFlags: analysis.SeriousFlags,
	}, nil
}

type CombineInput struct {
	BaselineRisk float64
	VisionRisk   float64
	// Weight defaults to the ad-hoc vision weight when nil.
	Weight *float64
}

type CombineResult struct {
	BaselineRisk float64 `json:"baseline_risk"`
	VisionRisk   float64 `json:"vision_risk"`
	Weight       float64 `json:"weight"`
	CombinedRisk float64 `json:"combined_risk"`
}

// CombineAdhoc blends two scores without touching storage.
func (s *VisionService) CombineAdhoc(ctx context.Context, input CombineInput) (CombineResult, error) {
	_, span := startUsecaseSpan(ctx, "usecase.VisionService.CombineAdhoc")
	defer span.End()

	weight := s.thresholds.AdhocVisionWeight
	if input.Weight != nil {
		weight = *input.Weight
	}
	if weight < 0 || weight > 1 {
		return CombineResult{}, fmt.Errorf("%w: weight %.2f outside [0,1]", ErrInvalidInput, weight)
	}
	if input.BaselineRisk < 0 || input.BaselineRisk > 100 {
		return CombineResult{}, fmt.Errorf("%w: baseline_risk %.2f outside [0,100]", ErrInvalidInput, input.BaselineRisk)
	}
	if input.VisionRisk < 0 || input.VisionRisk > 100 {
		return CombineResult{}, fmt.Errorf("%w: vision_risk %.2f outside [0,100]", ErrInvalidInput, input.VisionRisk)
	}

	return CombineResult{
		BaselineRisk: input.BaselineRisk,
		VisionRisk:   input.VisionRisk,
		Weight:       weight,
		CombinedRisk: risk.CombineWithVision(input.BaselineRisk, input.VisionRisk, weight),
	}, nil
}

// GetCombined returns the stored per-player blend.
func (s *VisionService) GetCombined(ctx context.Context, playerName string) (vision.CombinedRisk, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.VisionService.GetCombined")
	defer span.End()

	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return vision.CombinedRisk{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if s.visionRepo == nil {
		return vision.CombinedRisk{}, fmt.Errorf("%w: vision storage is not configured", ErrDependencyUnavailable)
	}

	record, err := s.visionRepo.GetByPlayer(ctx, playerName)
	if err != nil {
		if errors.Is(err, vision.ErrNotFound) {
			return vision.CombinedRisk{}, fmt.Errorf("%w: combined risk player=%s", ErrNotFound, playerName)
		}
		return vision.CombinedRisk{}, fmt.Errorf("get combined risk player=%s: %w", playerName, err)
	}

	return record, nil
}
