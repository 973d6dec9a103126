package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/kazfoot/kpl-fantasy/internal/domain/player"
	"github.com/kazfoot/kpl-fantasy/internal/usecase"
)

type createFantasyTeamRequest struct {
	Competition string `json:"competition"`
	Name        string `json:"name" validate:"required,max=100"`
}

type pickRequest struct {
	PlayerID      string `json:"playerId" validate:"required"`
	Position      string `json:"position" validate:"required,oneof=GK DF MF FW"`
	IsCaptain     bool   `json:"isCaptain"`
	IsViceCaptain bool   `json:"isViceCaptain"`
}

type updatePicksRequest struct {
	Picks []pickRequest `json:"picks" validate:"required,min=1,dive"`
}

type pickViewDTO struct {
	PlayerID      string  `json:"playerId"`
	PlayerName    string  `json:"playerName"`
	TeamID        string  `json:"teamId"`
	TeamShort     string  `json:"teamShort"`
	Position      string  `json:"position"`
	Price         float64 `json:"price"`
	IsCaptain     bool    `json:"isCaptain"`
	IsViceCaptain bool    `json:"isViceCaptain"`
}

type fantasyTeamDTO struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId"`
	CompetitionID string        `json:"competitionId"`
	Name          string        `json:"name"`
	Budget        float64       `json:"budget"`
	TotalPoints   int           `json:"totalPoints"`
	Picks         []pickViewDTO `json:"picks"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

func teamViewToDTO(view usecase.TeamView) fantasyTeamDTO {
	dto := fantasyTeamDTO{
		ID:            view.Team.ID,
		UserID:        view.Team.UserID,
		CompetitionID: view.Team.CompetitionID,
		Name:          view.Team.Name,
		Budget:        priceToDecimal(view.Team.Budget),
		TotalPoints:   view.Team.TotalPoints,
		Picks:         make([]pickViewDTO, 0, len(view.Picks)),
		CreatedAt:     view.Team.CreatedAt,
		UpdatedAt:     view.Team.UpdatedAt,
	}
	for _, pick := range view.Picks {
		dto.Picks = append(dto.Picks, pickViewDTO{
			PlayerID:      pick.Player.ID,
			PlayerName:    pick.Player.Name,
			TeamID:        pick.Team.ID,
			TeamShort:     pick.Team.Short,
			Position:      string(pick.Position),
			Price:         priceToDecimal(pick.Player.Price),
			IsCaptain:     pick.IsCaptain,
			IsViceCaptain: pick.IsViceCaptain,
		})
	}
	return dto
}

func (h *Handler) CreateFantasyTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateFantasyTeam")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createFantasyTeamRequest
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

	created, err := h.fantasyService.CreateTeam(ctx, usecase.CreateFantasyTeamInput{
		UserID:          principal.UserID,
		CompetitionCode: req.Competition,
		Name:            req.Name,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create fantasy team failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamViewToDTO(usecase.TeamView{Team: created}))
}

func (h *Handler) GetMyFantasyTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyFantasyTeam")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	view, err := h.fantasyService.GetMyTeam(ctx, principal.UserID, r.URL.Query().Get("competition"))
	if err != nil {
		h.logger.WarnContext(ctx, "get fantasy team failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamViewToDTO(view))
}

func (h *Handler) UpdateFantasyPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateFantasyPicks")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req updatePicksRequest
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

	picks := make([]usecase.PickInput, 0, len(req.Picks))
	for _, p := range req.Picks {
		picks = append(picks, usecase.PickInput{
			PlayerID:      p.PlayerID,
			Position:      player.Position(p.Position),
			IsCaptain:     p.IsCaptain,
			IsViceCaptain: p.IsViceCaptain,
		})
	}

	view, err := h.fantasyService.UpdatePicks(ctx, usecase.UpdatePicksInput{
		UserID: principal.UserID,
		TeamID: r.PathValue("teamID"),
		Picks:  picks,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update picks failed",
			"user_id", principal.UserID,
			"fantasy_team_id", r.PathValue("teamID"),
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamViewToDTO(view))
}

type leaderboardRowDTO struct {
	Rank          int    `json:"rank"`
	FantasyTeamID string `json:"fantasyTeamId"`
	Name          string `json:"name"`
	UserID        string `json:"userId"`
	TotalPoints   int    `json:"totalPoints"`
}

func (h *Handler) ListLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeaderboard")
	defer span.End()

	code := r.PathValue("competitionCode")
	rows, err := h.fantasyService.Leaderboard(ctx, code)
	if err != nil {
		h.logger.WarnContext(ctx, "list leaderboard failed", "competition", code, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leaderboardRowDTO, 0, len(rows))
	for i, row := range rows {
		items = append(items, leaderboardRowDTO{
			Rank:          i + 1,
			FantasyTeamID: row.FantasyTeamID,
			Name:          row.Name,
			UserID:        row.UserID,
			TotalPoints:   row.TotalPoints,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type gameweekRowDTO struct {
	Round        int       `json:"round"`
	Points       int       `json:"points"`
	CalculatedAt time.Time `json:"calculatedAt"`
}

func (h *Handler) ListGameweekPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGameweekPoints")
	defer span.End()

	teamID := r.PathValue("teamID")
	rows, err := h.fantasyService.GameweekPoints(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list gameweek points failed", "fantasy_team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]gameweekRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, gameweekRowDTO{
			Round:        row.Round,
			Points:       row.Points,
			CalculatedAt: row.CalculatedAt,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type playerBreakdownDTO struct {
	PlayerID      string         `json:"playerId"`
	PlayerName    string         `json:"playerName"`
	Position      string         `json:"position"`
	IsCaptain     bool           `json:"isCaptain"`
	IsViceCaptain bool           `json:"isViceCaptain"`
	Multiplier    int            `json:"multiplier"`
	BasePoints    int            `json:"basePoints"`
	CountedPoints int            `json:"countedPoints"`
	Breakdown     map[string]int `json:"breakdown,omitempty"`
}

type gameweekBreakdownDTO struct {
	FantasyTeamID string               `json:"fantasyTeamId"`
	Round         int                  `json:"round"`
	Total         int                  `json:"total"`
	Players       []playerBreakdownDTO `json:"players"`
}

func (h *Handler) GetGameweekBreakdown(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameweekBreakdown")
	defer span.End()

	teamID := r.PathValue("teamID")
	round, err := strconv.Atoi(r.PathValue("round"))
	if err != nil || round <= 0 {
		writeError(ctx, w, fmt.Errorf("%w: round must be a positive integer", usecase.ErrValidationFailed))
		return
	}

	result, err := h.scoringService.GameweekBreakdown(ctx, teamID, round)
	if err != nil {
		h.logger.WarnContext(ctx, "gameweek breakdown failed",
			"fantasy_team_id", teamID,
			"round", round,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	dto := gameweekBreakdownDTO{
		FantasyTeamID: result.FantasyTeamID,
		Round:         result.Round,
		Total:         result.Total,
		Players:       make([]playerBreakdownDTO, 0, len(result.Players)),
	}
	for _, row := range result.Players {
		dto.Players = append(dto.Players, playerBreakdownDTO{
			PlayerID:      row.PlayerID,
			PlayerName:    row.PlayerName,
			Position:      string(row.Position),
			IsCaptain:     row.IsCaptain,
			IsViceCaptain: row.IsViceCaptain,
			Multiplier:    row.Multiplier,
			BasePoints:    row.BasePoints,
			CountedPoints: row.CountedPoints,
			Breakdown:     row.Breakdown,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, dto)
}
