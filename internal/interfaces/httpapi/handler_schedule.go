package httpapi

import (
	"net/http"
	"time"

	"github.com/hoopsight/courtload/internal/domain/schedule"
	"github.com/hoopsight/courtload/internal/usecase"
)

func (h *Handler) ListSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSchedule")
	defer span.End()

	games, err := h.scheduleService.ListGames(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list schedule failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]gameDTO, 0, len(games))
	for _, game := range games {
		items = append(items, gameToDTO(game))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetScheduleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScheduleSummary")
	defer span.End()

	summary, err := h.scheduleService.Summary(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "schedule summary failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summaryToDTO(summary))
}

type gameDTO struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	Opponent      string  `json:"opponent"`
	Location      string  `json:"location"`
	Result        string  `json:"result,omitempty"`
	RestDays      int     `json:"rest_days"`
	IsBackToBack  bool    `json:"is_back_to_back"`
	IsThreeInFour bool    `json:"is_three_in_four"`
	StressLevel   float64 `json:"stress_level"`
}

type summaryDTO struct {
	TotalGames        int     `json:"total_games"`
	HasBackToBack     bool    `json:"has_back_to_back"`
	BackToBackCount   int     `json:"back_to_back_count"`
	HasThreeInFour    bool    `json:"has_three_in_four"`
	ThreeInFourCount  int     `json:"three_in_four_count"`
	AwayGameCount     int     `json:"away_game_count"`
	LongestAwayStreak int     `json:"longest_away_streak"`
	AverageRestDays   int     `json:"average_rest_days"`
	AverageStress     float64 `json:"average_stress"`
}

type trendPointDTO struct {
	GameIndex      int     `json:"game_index"`
	Date           string  `json:"date"`
	Opponent       string  `json:"opponent"`
	Location       string  `json:"location"`
	BaselineRisk   float64 `json:"baseline_risk"`
	DynamicRisk    float64 `json:"dynamic_risk"`
	Minutes        float64 `json:"minutes"`
	ScheduleStress float64 `json:"schedule_stress"`
	GameLoadScore  float64 `json:"game_load_score"`
}

type projectionDTO struct {
	PlayerName   string          `json:"player_name,omitempty"`
	BaselineRisk float64         `json:"baseline_risk"`
	Minutes      float64         `json:"minutes"`
	GameCount    int             `json:"game_count"`
	PeakRisk     float64         `json:"peak_risk"`
	Points       []trendPointDTO `json:"points"`
}

func gameToDTO(g schedule.Game) gameDTO {
	return gameDTO{
		ID:            g.ID,
		Date:          g.Date.UTC().Format(time.RFC3339),
		Opponent:      g.Opponent,
		Location:      string(g.Location),
		Result:        g.Result,
		RestDays:      g.RestDays,
		IsBackToBack:  g.IsBackToBack,
		IsThreeInFour: g.IsThreeInFour,
		StressLevel:   g.StressLevel,
	}
}

func summaryToDTO(s schedule.Summary) summaryDTO {
	return summaryDTO{
		TotalGames:        s.TotalGames,
		HasBackToBack:     s.HasBackToBack,
		BackToBackCount:   s.BackToBackCount,
		HasThreeInFour:    s.HasThreeInFour,
		ThreeInFourCount:  s.ThreeInFourCount,
		AwayGameCount:     s.AwayGameCount,
		LongestAwayStreak: s.LongestAwayStreak,
		AverageRestDays:   s.AverageRestDays,
		AverageStress:     s.AverageStress,
	}
}

func projectionToDTO(p usecase.Projection) projectionDTO {
	points := make([]trendPointDTO, 0, len(p.Points))
	for _, point := range p.Points {
		points = append(points, trendPointDTO{
			GameIndex:      point.GameIndex,
			Date:           point.Date.UTC().Format(time.RFC3339),
			Opponent:       point.Opponent,
			Location:       string(point.Location),
			BaselineRisk:   point.BaselineRisk,
			DynamicRisk:    point.DynamicRisk,
			Minutes:        point.Minutes,
			ScheduleStress: point.ScheduleStress,
			GameLoadScore:  point.GameLoadScore,
		})
	}

	return projectionDTO{
		PlayerName:   p.PlayerName,
		BaselineRisk: p.BaselineRisk,
		Minutes:      p.Minutes,
		GameCount:    p.GameCount,
		PeakRisk:     p.PeakRisk,
		Points:       points,
	}
}
