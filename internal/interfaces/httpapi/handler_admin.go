package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/kazfoot/kpl-fantasy/internal/usecase"
)

type scoreRoundRequest struct {
	Competition string `json:"competition"`
	Round       int    `json:"round" validate:"required,gt=0"`
}

type scoreRoundResponse struct {
	Round            int  `json:"round"`
	MatchesProcessed int  `json:"matchesProcessed"`
	TeamsUpdated     int  `json:"teamsUpdated"`
	NoOp             bool `json:"noOp"`
}

func (h *Handler) RunScoreRoundJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunScoreRoundJob")
	defer span.End()

	var req scoreRoundRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrValidationFailed, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	comp, err := h.teamService.GetCompetitionByCode(ctx, req.Competition)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.scoringService.ScoreRound(ctx, comp.ID, req.Round)
	if err != nil {
		h.logger.ErrorContext(ctx, "score round failed",
			"competition", comp.Code,
			"round", req.Round,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoreRoundResponse{
		Round:            result.Round,
		MatchesProcessed: result.MatchesProcessed,
		TeamsUpdated:     result.TeamsUpdated,
		NoOp:             result.NoOp,
	})
}

type syncCompetitionRequest struct {
	Competition string `json:"competition"`
}

type syncCompetitionResponse struct {
	CompetitionID string `json:"competitionId"`
	Teams         int    `json:"teams"`
	Players       int    `json:"players"`
	Matches       int    `json:"matches"`
}

func (h *Handler) RunSyncCompetitionJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSyncCompetitionJob")
	defer span.End()

	var req syncCompetitionRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrValidationFailed, err))
		return
	}

	result, err := h.syncService.SyncCompetition(ctx, req.Competition)
	if err != nil {
		h.logger.ErrorContext(ctx, "sync competition failed", "competition", req.Competition, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, syncCompetitionResponse{
		CompetitionID: result.CompetitionID,
		Teams:         result.Teams,
		Players:       result.Players,
		Matches:       result.Matches,
	})
}
