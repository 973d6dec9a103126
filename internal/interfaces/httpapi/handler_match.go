package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/kazfoot/kpl-fantasy/internal/usecase"
)

func (h *Handler) ListMatchesByCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchesByCompetition")
	defer span.End()

	code := r.PathValue("competitionCode")

	var round *int
	if raw := strings.TrimSpace(r.URL.Query().Get("round")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: round must be a positive integer", usecase.ErrValidationFailed))
			return
		}
		round = &value
	}

	matches, err := h.matchService.ListMatches(ctx, code, round)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "competition", code, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	m, err := h.matchService.GetMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	code := r.PathValue("competitionCode")
	rows, err := h.standingService.Standings(ctx, code)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "competition", code, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]standingsRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, standingsRowToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
