package httpapi

import "net/http"

func (h *Handler) RunRefreshProfilesJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRefreshProfilesJob")
	defer span.End()

	result, err := h.riskService.RefreshProfiles(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "refresh profiles job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "refresh profiles job finished",
		"player_count", result.PlayerCount,
		"success_count", result.SuccessCount,
		"failed_count", result.FailedCount,
		"worker_count", result.WorkerCount,
		"duration_ms", result.DurationMs,
	)
	writeSuccess(ctx, w, http.StatusOK, result)
}
