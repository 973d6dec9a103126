package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/competitions", handler.ListCompetitions)
	mux.HandleFunc("GET /v1/competitions/{competitionCode}/teams", handler.ListTeamsByCompetition)
	mux.HandleFunc("GET /v1/competitions/{competitionCode}/teams/{teamID}", handler.GetTeamByCompetition)
	mux.HandleFunc("GET /v1/competitions/{competitionCode}/players", handler.ListPlayersByCompetition)
	mux.HandleFunc("GET /v1/competitions/{competitionCode}/matches", handler.ListMatchesByCompetition)
	mux.HandleFunc("GET /v1/competitions/{competitionCode}/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/competitions/{competitionCode}/leaderboard", handler.ListLeaderboard)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/fantasy/teams", RequireAuth(verifier, http.HandlerFunc(handler.CreateFantasyTeam)))
	mux.Handle("GET /v1/fantasy/teams/me", RequireAuth(verifier, http.HandlerFunc(handler.GetMyFantasyTeam)))
	mux.Handle("PUT /v1/fantasy/teams/{teamID}/picks", RequireAuth(verifier, http.HandlerFunc(handler.UpdateFantasyPicks)))
	mux.Handle("GET /v1/fantasy/teams/{teamID}/points", RequireAuth(verifier, http.HandlerFunc(handler.ListGameweekPoints)))
	mux.Handle("GET /v1/fantasy/teams/{teamID}/points/{round}", RequireAuth(verifier, http.HandlerFunc(handler.GetGameweekBreakdown)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/score-round", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunScoreRoundJob)))
	mux.Handle("POST /v1/internal/jobs/sync-competition", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSyncCompetitionJob)))
}
