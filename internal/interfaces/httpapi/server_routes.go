package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/config", handler.GetGameConfig)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/seasons/{season}/weeks", handler.ListWeeks)
	mux.HandleFunc("GET /v1/seasons/{season}/weeks/{week}/fixtures", handler.ListWeekFixtures)
	mux.HandleFunc("GET /v1/seasons/{season}/weeks/{week}/lock-status", handler.GetWeekLockStatus)
	mux.HandleFunc("GET /v1/seasons/{season}/weeks/{week}/predictions/{playerID}", handler.GetWeekPredictions)
	mux.HandleFunc("POST /v1/seasons/{season}/weeks/{week}/predictions/{playerID}", handler.SubmitWeekPredictions)
	mux.HandleFunc("GET /v1/seasons/{season}/weeks/{week}/results", handler.ListWeekResults)
	mux.HandleFunc("GET /v1/seasons/{season}/weeks/{week}/table", handler.GetWeekTable)
	mux.HandleFunc("GET /v1/seasons/{season}/standings", handler.GetSeasonStandings)
	mux.HandleFunc("GET /v1/seasons/{season}/standings/matrix", handler.GetStandingsMatrix)
}

func registerInternalRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("PUT /v1/internal/seasons/{season}/weeks/{week}/fixtures", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.ReplaceWeekFixtures)))
	mux.Handle("PUT /v1/internal/seasons/{season}/weeks/{week}/results", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.UpsertWeekResults)))
	mux.Handle("POST /v1/internal/players", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.UpsertPlayer)))
	mux.Handle("PUT /v1/internal/config", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.UpdateGameConfig)))
	mux.Handle("POST /v1/internal/jobs/recompute", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRecomputeJob)))
}
