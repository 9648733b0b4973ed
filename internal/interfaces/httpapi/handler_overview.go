package httpapi

import (
	"net/http"
	"time"
)

type overviewDTO struct {
	Profiles      []profileDTO `json:"profiles"`
	Schedule      summaryDTO   `json:"schedule"`
	PlayerCount   int          `json:"player_count"`
	HighRiskCount int          `json:"high_risk_count"`
	AverageRisk   float64      `json:"average_risk"`
	GeneratedAt   string       `json:"generated_at"`
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOverview")
	defer span.End()

	overview, err := h.overviewService.Get(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get overview failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	profiles := make([]profileDTO, 0, len(overview.Profiles))
	for _, profile := range overview.Profiles {
		profiles = append(profiles, profileToDTO(profile))
	}

	writeSuccess(ctx, w, http.StatusOK, overviewDTO{
		Profiles:      profiles,
		Schedule:      summaryToDTO(overview.Schedule),
		PlayerCount:   overview.PlayerCount,
		HighRiskCount: overview.HighRiskCount,
		AverageRisk:   overview.AverageRisk,
		GeneratedAt:   overview.GeneratedAt.UTC().Format(time.RFC3339),
	})
}
