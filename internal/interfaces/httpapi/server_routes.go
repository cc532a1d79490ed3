package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/seasons/{seasonID}", handler.GetSeason)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/peladas", handler.ListPeladas)
	mux.HandleFunc("GET /v1/peladas/{peladaID}", handler.GetPelada)
	mux.HandleFunc("GET /v1/ranking", handler.GetRanking)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAdminToken(adminToken, h)
	}

	mux.Handle("POST /v1/seasons", admin(handler.CreateSeason))
	mux.Handle("PUT /v1/seasons/{seasonID}", admin(handler.UpdateSeason))
	mux.Handle("DELETE /v1/seasons/{seasonID}", admin(handler.DeleteSeason))

	mux.Handle("POST /v1/players", admin(handler.CreatePlayer))
	mux.Handle("PUT /v1/players/{playerID}", admin(handler.UpdatePlayer))
	mux.Handle("DELETE /v1/players/{playerID}", admin(handler.DeletePlayer))

	mux.Handle("POST /v1/peladas", admin(handler.CreatePelada))
	mux.Handle("DELETE /v1/peladas/{peladaID}", admin(handler.DeletePelada))
	mux.Handle("PUT /v1/peladas/{peladaID}/presences", admin(handler.SetPresence))
	mux.Handle("PUT /v1/peladas/{peladaID}/teams", admin(handler.SetTeams))
	mux.Handle("POST /v1/peladas/{peladaID}/matches", admin(handler.AddMatch))
	mux.Handle("POST /v1/peladas/{peladaID}/matches/{matchIndex}/events", admin(handler.AddEvent))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.Handle("POST /internal/jobs/ranking-refresh", RequireAdminToken(adminToken, http.HandlerFunc(handler.RunRankingRefreshJob)))
}
