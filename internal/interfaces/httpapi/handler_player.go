package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/hoopsight/courtload/internal/domain/player"
	"github.com/hoopsight/courtload/internal/domain/risk"
	"github.com/hoopsight/courtload/internal/domain/vision"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	histories, err := h.playerService.ListPlayers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerSummaryDTO, 0, len(histories))
	for _, history := range histories {
		items = append(items, playerToSummaryDTO(history))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerName := r.PathValue("playerName")
	history, err := h.playerService.GetPlayer(ctx, playerName)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_name", playerName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDetailDTO(history))
}

func (h *Handler) GetPlayerRisk(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerRisk")
	defer span.End()

	playerName := r.PathValue("playerName")
	profile, err := h.riskService.GetProfile(ctx, playerName)
	if err != nil {
		h.logger.WarnContext(ctx, "get player risk failed", "player_name", playerName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, profileToDTO(profile))
}

func (h *Handler) GetPlayerCombinedRisk(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerCombinedRisk")
	defer span.End()

	playerName := r.PathValue("playerName")
	record, err := h.visionService.GetCombined(ctx, playerName)
	if err != nil {
		h.logger.WarnContext(ctx, "get combined risk failed", "player_name", playerName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, combinedRiskToDTO(ctx, record))
}

type playerSummaryDTO struct {
	Name           string  `json:"name"`
	Age            int     `json:"age"`
	Position       string  `json:"position"`
	CurrentMinutes float64 `json:"current_minutes"`
	SeasonCount    int     `json:"season_count"`
	InjuryCount    int     `json:"injury_count"`
}

type playerDetailDTO struct {
	Name           string          `json:"name"`
	Age            int             `json:"age"`
	Position       string          `json:"position"`
	Seasons        []seasonLineDTO `json:"seasons"`
	FoulsDrawn     float64         `json:"fouls_drawn"`
	FoulsCommitted float64         `json:"fouls_committed"`
	ContactRate    float64         `json:"contact_rate"`
	RollingMinutes []float64       `json:"rolling_minutes"`
	Injuries       []injuryDTO     `json:"injuries"`
}

type seasonLineDTO struct {
	MinutesPerGame float64 `json:"minutes_per_game"`
	UsageRate      float64 `json:"usage_rate"`
}

type injuryDTO struct {
	Year         int    `json:"year"`
	Severity     string `json:"severity"`
	GamesMissed  int    `json:"games_missed"`
	RecoveryDays int    `json:"recovery_days"`
	BodyPart     string `json:"body_part"`
	Region       string `json:"region"`
}

type profileDTO struct {
	PlayerName          string   `json:"player_name"`
	Age                 int      `json:"age"`
	Position            string   `json:"position"`
	BaselineRisk        float64  `json:"baseline_risk"`
	PredictedRisk       float64  `json:"predicted_risk"`
	Classification      string   `json:"classification"`
	RecommendedAction   string   `json:"recommended_action"`
	CurrentMinutes      float64  `json:"current_minutes"`
	RecommendedMinutes  float64  `json:"recommended_minutes"`
	TopFactors          []string `json:"top_factors"`
	InjuryCount         int      `json:"injury_count"`
	InjurySeverityScore int      `json:"injury_severity_score"`
}

type combinedRiskDTO struct {
	ID           string  `json:"id"`
	PlayerName   string  `json:"player_name"`
	BaselineRisk float64 `json:"baseline_risk"`
	VisionRisk   float64 `json:"vision_risk"`
	Weight       float64 `json:"weight"`
	CombinedRisk float64 `json:"combined_risk"`
	ClipRef      string  `json:"clip_ref"`
	AnalyzedAt   string  `json:"analyzed_at"`
}

func playerToSummaryDTO(h player.History) playerSummaryDTO {
	return playerSummaryDTO{
		Name:           h.Name,
		Age:            h.Age,
		Position:       string(h.Position),
		CurrentMinutes: h.CurrentMinutes(),
		SeasonCount:    len(h.Seasons),
		InjuryCount:    len(h.Injuries),
	}
}

func playerToDetailDTO(h player.History) playerDetailDTO {
	seasons := make([]seasonLineDTO, 0, len(h.Seasons))
	for _, season := range h.Seasons {
		seasons = append(seasons, seasonLineDTO{
			MinutesPerGame: season.MinutesPerGame,
			UsageRate:      season.UsageRate,
		})
	}

	injuries := make([]injuryDTO, 0, len(h.Injuries))
	for _, injury := range h.Injuries {
		injuries = append(injuries, injuryDTO{
			Year:         injury.Year,
			Severity:     string(injury.Severity),
			GamesMissed:  injury.GamesMissed,
			RecoveryDays: injury.RecoveryDays,
			BodyPart:     injury.BodyPart,
			Region:       string(injury.Region),
		})
	}

	return playerDetailDTO{
		Name:           h.Name,
		Age:            h.Age,
		Position:       string(h.Position),
		Seasons:        seasons,
		FoulsDrawn:     h.FoulsDrawn,
		FoulsCommitted: h.FoulsCommitted,
		ContactRate:    h.ContactRate,
		RollingMinutes: append([]float64(nil), h.RollingMinutes...),
		Injuries:       injuries,
	}
}

func profileToDTO(p risk.Profile) profileDTO {
	return profileDTO{
		PlayerName:          p.PlayerName,
		Age:                 p.Age,
		Position:            string(p.Position),
		BaselineRisk:        p.BaselineRisk,
		PredictedRisk:       p.PredictedRisk,
		Classification:      string(p.Classification),
		RecommendedAction:   p.RecommendedAction,
		CurrentMinutes:      p.CurrentMinutes,
		RecommendedMinutes:  p.RecommendedMinutes,
		TopFactors:          append([]string(nil), p.TopFactors...),
		InjuryCount:         p.InjuryCount,
		InjurySeverityScore: p.InjurySeverityScore,
	}
}

func combinedRiskToDTO(ctx context.Context, record vision.CombinedRisk) combinedRiskDTO {
	_, span := startSpan(ctx, "httpapi.combinedRiskToDTO")
	defer span.End()

	return combinedRiskDTO{
		ID:           record.ID,
		PlayerName:   record.PlayerName,
		BaselineRisk: record.BaselineRisk,
		VisionRisk:   record.VisionRisk,
		Weight:       record.Weight,
		CombinedRisk: record.CombinedRisk,
		ClipRef:      record.ClipRef,
		AnalyzedAt:   record.AnalyzedAt.UTC().Format(time.RFC3339),
	}
}
