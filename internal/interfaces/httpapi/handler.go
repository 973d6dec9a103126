package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kazfoot/kpl-fantasy/internal/domain/competition"
	"github.com/kazfoot/kpl-fantasy/internal/domain/match"
	"github.com/kazfoot/kpl-fantasy/internal/domain/player"
	"github.com/kazfoot/kpl-fantasy/internal/domain/standings"
	"github.com/kazfoot/kpl-fantasy/internal/domain/team"
	"github.com/kazfoot/kpl-fantasy/internal/usecase"
)

type Handler struct {
	teamService     *usecase.TeamService
	matchService    *usecase.MatchService
	fantasyService  *usecase.FantasyService
	standingService *usecase.StandingService
	scoringService  *usecase.ScoringService
	syncService     *usecase.FactSyncService
	logger          *slog.Logger
	validator       *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	matchService *usecase.MatchService,
	fantasyService *usecase.FantasyService,
	standingService *usecase.StandingService,
	scoringService *usecase.ScoringService,
	syncService *usecase.FactSyncService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		teamService:     teamService,
		matchService:    matchService,
		fantasyService:  fantasyService,
		standingService: standingService,
		scoringService:  scoringService,
		syncService:     syncService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrValidationFailed, err)
	}

	return nil
}

type competitionDTO struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Season    int    `json:"season"`
	IsDefault bool   `json:"isDefault"`
}

func competitionToDTO(c competition.Competition) competitionDTO {
	return competitionDTO{
		ID:        c.ID,
		Code:      c.Code,
		Name:      c.Name,
		Season:    c.Season,
		IsDefault: c.IsDefault,
	}
}

type teamDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Short string `json:"short"`
	City  string `json:"city"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{ID: t.ID, Name: t.Name, Short: t.Short, City: t.City}
}

const recentMatchesLimit = 5

type teamDetailDTO struct {
	teamDTO
	RecentMatches []matchDTO `json:"recentMatches,omitempty"`
}

type playerDTO struct {
	ID       string  `json:"id"`
	TeamID   string  `json:"teamId"`
	Name     string  `json:"name"`
	Number   int     `json:"number,omitempty"`
	Position string  `json:"position"`
	Price    float64 `json:"price"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:       p.ID,
		TeamID:   p.TeamID,
		Name:     p.Name,
		Number:   p.Number,
		Position: string(p.Position),
		Price:    priceToDecimal(p.Price),
	}
}

// priceToDecimal converts the stored tenths representation to the public
// decimal form, e.g. 105 -> 10.5.
func priceToDecimal(tenths int64) float64 {
	return float64(tenths) / 10
}

type matchEventDTO struct {
	ID             string `json:"id"`
	TeamID         string `json:"teamId"`
	Type           string `json:"type"`
	Minute         int    `json:"minute"`
	ExtraMinute    int    `json:"extraMinute,omitempty"`
	PlayerID       string `json:"playerId"`
	AssistPlayerID string `json:"assistPlayerId,omitempty"`
	SubOutPlayerID string `json:"subOutPlayerId,omitempty"`
}

type matchLineupDTO struct {
	TeamID    string `json:"teamId"`
	PlayerID  string `json:"playerId"`
	IsStarter bool   `json:"isStarter"`
	Position  string `json:"position,omitempty"`
}

type matchDTO struct {
	ID         string           `json:"id"`
	Round      int              `json:"round"`
	KickoffAt  time.Time        `json:"kickoffAt"`
	Status     string           `json:"status"`
	HomeTeamID string           `json:"homeTeamId"`
	AwayTeamID string           `json:"awayTeamId"`
	HomeScore  *int             `json:"homeScore,omitempty"`
	AwayScore  *int             `json:"awayScore,omitempty"`
	Events     []matchEventDTO  `json:"events,omitempty"`
	Lineups    []matchLineupDTO `json:"lineups,omitempty"`
}

func matchToDTO(m match.Match) matchDTO {
	dto := matchDTO{
		ID:         m.ID,
		Round:      m.Round,
		KickoffAt:  m.KickoffAt,
		Status:     m.Status,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		HomeScore:  m.HomeScore,
		AwayScore:  m.AwayScore,
	}
	for _, ev := range m.Events {
		dto.Events = append(dto.Events, matchEventDTO{
			ID:             ev.ID,
			TeamID:         ev.TeamID,
			Type:           ev.Type,
			Minute:         ev.Minute,
			ExtraMinute:    ev.ExtraMinute,
			PlayerID:       ev.PlayerID,
			AssistPlayerID: ev.AssistPlayerID,
			SubOutPlayerID: ev.SubOutPlayerID,
		})
	}
	for _, entry := range m.Lineups {
		dto.Lineups = append(dto.Lineups, matchLineupDTO{
			TeamID:    entry.TeamID,
			PlayerID:  entry.PlayerID,
			IsStarter: entry.IsStarter,
			Position:  string(entry.Position),
		})
	}
	return dto
}

type standingsRowDTO struct {
	TeamID       string `json:"teamId"`
	TeamName     string `json:"teamName"`
	TeamShort    string `json:"teamShort"`
	Played       int    `json:"played"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	GoalsFor     int    `json:"goalsFor"`
	GoalsAgainst int    `json:"goalsAgainst"`
	GoalDiff     int    `json:"goalDiff"`
	Points       int    `json:"points"`
}

func standingsRowToDTO(row standings.Row) standingsRowDTO {
	return standingsRowDTO{
		TeamID:       row.TeamID,
		TeamName:     row.TeamName,
		TeamShort:    row.TeamShort,
		Played:       row.Played,
		Wins:         row.Wins,
		Draws:        row.Draws,
		Losses:       row.Losses,
		GoalsFor:     row.GoalsFor,
		GoalsAgainst: row.GoalsAgainst,
		GoalDiff:     row.GoalDiff,
		Points:       row.Points,
	}
}
