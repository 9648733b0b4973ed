package httpapi

import (
	"net/http"

	"github.com/hoopsight/courtload/internal/usecase"
)

func (h *Handler) ListRiskProfiles(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRiskProfiles")
	defer span.End()

	profiles, err := h.riskService.ListProfiles(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list risk profiles failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]profileDTO, 0, len(profiles))
	for _, profile := range profiles {
		items = append(items, profileToDTO(profile))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type projectionRequest struct {
	PlayerName   string   `json:"player_name" validate:"omitempty,max=100"`
	BaselineRisk *float64 `json:"baseline_risk" validate:"omitempty,gte=0,lte=100"`
	Minutes      *float64 `json:"minutes" validate:"omitempty,gte=0,lte=48"`
}

func (h *Handler) ProjectRisk(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ProjectRisk")
	defer span.End()

	var req projectionRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	projection, err := h.scheduleService.ProjectTrend(ctx, usecase.ProjectionInput{
		PlayerName:   req.PlayerName,
		BaselineRisk: req.BaselineRisk,
		Minutes:      req.Minutes,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "project risk failed", "player_name", req.PlayerName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, projectionToDTO(projection))
}

type combineRequest struct {
	BaselineRisk float64  `json:"baseline_risk" validate:"gte=0,lte=100"`
	VisionRisk   float64  `json:"vision_risk" validate:"gte=0,lte=100"`
	Weight       *float64 `json:"weight" validate:"omitempty,gte=0,lte=1"`
}

func (h *Handler) CombineRisk(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CombineRisk")
	defer span.End()

	var req combineRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.visionService.CombineAdhoc(ctx, usecase.CombineInput{
		BaselineRisk: req.BaselineRisk,
		VisionRisk:   req.VisionRisk,
		Weight:       req.Weight,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
