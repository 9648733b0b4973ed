package httpapi

import (
	"net/http"

	"github.com/hoopsight/courtload/internal/usecase"
)

type analyzeClipRequest struct {
	PlayerName string `json:"player_name" validate:"required,max=100"`
	ClipRef    string `json:"clip_ref" validate:"required,max=500"`
}

type analyzeClipDTO struct {
	Record       combinedRiskDTO `json:"record"`
	Category     string          `json:"category"`
	SeriousFlags []string        `json:"serious_flags,omitempty"`
}

func (h *Handler) AnalyzeClip(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AnalyzeClip")
	defer span.End()

	var req analyzeClipRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.visionService.AnalyzeClip(ctx, usecase.VisionAnalyzeInput{
		PlayerName: req.PlayerName,
		ClipRef:    req.ClipRef,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "analyze clip failed", "player_name", req.PlayerName, "clip_ref", req.ClipRef, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, analyzeClipDTO{
		Record:       combinedRiskToDTO(ctx, result.Record),
		Category:     result.Category,
		SeriousFlags: result.SeriousFlags,
	})
}
