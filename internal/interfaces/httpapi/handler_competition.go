package httpapi

import "net/http"

func (h *Handler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitions")
	defer span.End()

	competitions, err := h.teamService.ListCompetitions(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list competitions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]competitionDTO, 0, len(competitions))
	for _, c := range competitions {
		items = append(items, competitionToDTO(c))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTeamsByCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByCompetition")
	defer span.End()

	code := r.PathValue("competitionCode")
	teams, err := h.teamService.ListTeams(ctx, code)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "competition", code, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeamByCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamByCompetition")
	defer span.End()

	code := r.PathValue("competitionCode")
	teamID := r.PathValue("teamID")
	t, err := h.teamService.GetTeam(ctx, code, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "competition", code, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	recent, err := h.matchService.RecentMatchesByTeam(ctx, code, teamID, recentMatchesLimit)
	if err != nil {
		h.logger.WarnContext(ctx, "recent matches failed", "competition", code, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	detail := teamDetailDTO{teamDTO: teamToDTO(t)}
	for _, m := range recent {
		detail.RecentMatches = append(detail.RecentMatches, matchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, detail)
}

func (h *Handler) ListPlayersByCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByCompetition")
	defer span.End()

	code := r.PathValue("competitionCode")
	players, err := h.fantasyService.AvailablePlayers(ctx, code)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "competition", code, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
