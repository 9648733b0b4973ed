package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerName}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/players/{playerName}/risk", handler.GetPlayerRisk)
	mux.HandleFunc("GET /v1/players/{playerName}/combined-risk", handler.GetPlayerCombinedRisk)
	mux.HandleFunc("GET /v1/risk/profiles", handler.ListRiskProfiles)
	mux.HandleFunc("POST /v1/risk/projection", handler.ProjectRisk)
	mux.HandleFunc("POST /v1/risk/combine", handler.CombineRisk)
	mux.HandleFunc("GET /v1/schedule", handler.ListSchedule)
	mux.HandleFunc("GET /v1/schedule/summary", handler.GetScheduleSummary)
	mux.HandleFunc("GET /v1/overview", handler.GetOverview)
	mux.HandleFunc("POST /v1/vision/analyses", handler.AnalyzeClip)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/refresh-profiles", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRefreshProfilesJob)))
}
