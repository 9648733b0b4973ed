package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/hoopsight/courtload/internal/domain/risk"
	"github.com/hoopsight/courtload/internal/domain/vision"
	"github.com/hoopsight/courtload/internal/infrastructure/repository/memory"
	"github.com/hoopsight/courtload/internal/infrastructure/weights"
	"github.com/hoopsight/courtload/internal/platform/cache"
	"github.com/hoopsight/courtload/internal/platform/id"
	"github.com/hoopsight/courtload/internal/platform/logging"
	"github.com/hoopsight/courtload/internal/usecase"
)

type staticAnalyzer struct{}

func (staticAnalyzer) AnalyzeClip(_ context.Context, _ string) (vision.Analysis, error) {
	return vision.Analysis{
		Score:      70,
		Category:   "High",
		AnalyzedAt: time.Date(2026, 3, 11, 18, 0, 0, 0, time.UTC),
	}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	modelWeights, err := weights.Default()
	if err != nil {
		t.Fatalf("load default weights: %v", err)
	}
	thresholds := risk.DefaultThresholds()

	playerRepo := memory.NewPlayerHistoryRepository(memory.SeedPlayerHistories())
	gameRepo := memory.NewGameRepository(memory.SeedGames())
	visionRepo := memory.NewVisionRepository()

	riskService := usecase.NewRiskService(playerRepo, modelWeights, thresholds, cache.NewStore(time.Minute), 4)
	playerService := usecase.NewPlayerService(playerRepo)
	scheduleService := usecase.NewScheduleService(gameRepo, riskService, thresholds)
	visionService := usecase.NewVisionService(staticAnalyzer{}, visionRepo, riskService, id.NewRandomGenerator(), thresholds, 0)
	overviewService := usecase.NewOverviewService(riskService, scheduleService)

	handler := NewHandler(playerService, riskService, scheduleService, visionService, overviewService, logging.NewNop())
	return NewRouter(handler, logging.NewNop(), []string{"*"}, "test-job-token")
}

func doRequest(t *testing.T, router http.Handler, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal envelope for %s %s: %v", method, path, err)
	}
	return rec, envelope
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data, _ := envelope["data"].(map[string]any)
	if data["status"] != "ok" {
		t.Fatalf("unexpected healthz payload: %v", envelope)
	}
}

func TestRouter_ListPlayers(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/v1/players", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	items, _ := envelope["data"].([]any)
	if len(items) != 5 {
		t.Fatalf("expected 5 seeded players, got %d", len(items))
	}
}

func TestRouter_GetPlayerRisk(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/v1/players/Austin%20Reaves/risk", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", rec.Code, envelope)
	}
	data, _ := envelope["data"].(map[string]any)
	if data["player_name"] != "Austin Reaves" {
		t.Fatalf("unexpected profile payload: %v", data)
	}
	predicted, _ := data["predicted_risk"].(float64)
	if predicted < 3 || predicted > 100 {
		t.Fatalf("predicted risk out of range: %v", predicted)
	}
	if _, ok := data["classification"].(string); !ok {
		t.Fatalf("missing classification: %v", data)
	}
}

func TestRouter_GetPlayerRiskNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodGet, "/v1/players/Nobody/risk", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRouter_ScheduleSummary(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/v1/schedule/summary", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data, _ := envelope["data"].(map[string]any)
	total, _ := data["total_games"].(float64)
	if int(total) != 8 {
		t.Fatalf("expected 8 seeded games, got %v", total)
	}
	if hasB2B, _ := data["has_back_to_back"].(bool); !hasB2B {
		t.Fatalf("expected seeded schedule to contain a back-to-back: %v", data)
	}
}

func TestRouter_ProjectRiskExplicitBaseline(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodPost, "/v1/risk/projection",
		`{"baseline_risk": 40, "minutes": 32}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", rec.Code, envelope)
	}
	data, _ := envelope["data"].(map[string]any)
	points, _ := data["points"].([]any)
	if len(points) != 8 {
		t.Fatalf("expected 8 projection points, got %d", len(points))
	}
	peak, _ := data["peak_risk"].(float64)
	if peak <= 40 {
		t.Fatalf("expected stressed schedule to lift peak above baseline, got %v", peak)
	}
}

func TestRouter_ProjectRiskRejectsUnknownFields(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodPost, "/v1/risk/projection",
		`{"baseline": 40}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d", rec.Code)
	}
}

func TestRouter_CombineRisk(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodPost, "/v1/risk/combine",
		`{"baseline_risk": 40, "vision_risk": 80}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", rec.Code, envelope)
	}
	data, _ := envelope["data"].(map[string]any)
	combined, _ := data["combined_risk"].(float64)
	if combined != 56.0 {
		t.Fatalf("expected default-weight blend 56.00, got %v", combined)
	}
}

func TestRouter_AnalyzeClipPersistsRecord(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodPost, "/v1/vision/analyses",
		`{"player_name": "Austin Reaves", "clip_ref": "clips/reaves-mar11.mp4"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %v", rec.Code, envelope)
	}
	data, _ := envelope["data"].(map[string]any)
	record, _ := data["record"].(map[string]any)
	if record["player_name"] != "Austin Reaves" {
		t.Fatalf("unexpected record: %v", record)
	}
	if weight, _ := record["weight"].(float64); weight != 0.05 {
		t.Fatalf("expected stored weight 0.05, got %v", weight)
	}

	rec, envelope = doRequest(t, router, http.MethodGet, "/v1/players/Austin%20Reaves/combined-risk", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 reading back combined risk, got %d: %v", rec.Code, envelope)
	}
}

func TestRouter_RefreshProfilesJobRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodPost, "/v1/internal/jobs/refresh-profiles", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without job token, got %d", rec.Code)
	}

	rec, envelope := doRequest(t, router, http.MethodPost, "/v1/internal/jobs/refresh-profiles", "",
		map[string]string{"X-Internal-Job-Token": "test-job-token"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with job token, got %d: %v", rec.Code, envelope)
	}
	data, _ := envelope["data"].(map[string]any)
	if count, _ := data["player_count"].(float64); int(count) != 5 {
		t.Fatalf("expected 5 refreshed players, got %v", count)
	}
}

func TestRouter_Overview(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/v1/overview", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data, _ := envelope["data"].(map[string]any)
	if count, _ := data["player_count"].(float64); int(count) != 5 {
		t.Fatalf("expected 5 players in overview, got %v", count)
	}
	profiles, _ := data["profiles"].([]any)
	if len(profiles) != 5 {
		t.Fatalf("expected 5 profiles in overview, got %d", len(profiles))
	}
}
