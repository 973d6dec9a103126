package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/kazfoot/kpl-fantasy/internal/domain/competition"
	"github.com/kazfoot/kpl-fantasy/internal/domain/fantasy"
	"github.com/kazfoot/kpl-fantasy/internal/domain/match"
	"github.com/kazfoot/kpl-fantasy/internal/domain/player"
	"github.com/kazfoot/kpl-fantasy/internal/domain/scoring"
	"github.com/kazfoot/kpl-fantasy/internal/domain/team"
	idgen "github.com/kazfoot/kpl-fantasy/internal/platform/id"
)

const leaderboardLimit = 100

// DefaultCompetitionCode is used when a request does not name a competition.
const DefaultCompetitionCode = "kpl"

// CreateFantasyTeamInput is the incoming payload for team creation.
type CreateFantasyTeamInput struct {
	UserID          string
	CompetitionCode string
	Name            string
}

// PickInput is one squad slot in an update-picks request.
type PickInput struct {
	PlayerID      string
	Position      player.Position
	IsCaptain     bool
	IsViceCaptain bool
}

// UpdatePicksInput replaces a fantasy team's full 15-player squad.
type UpdatePicksInput struct {
	UserID string
	TeamID string
	Picks  []PickInput
}

// PickView is one squad pick joined with its player and club records.
type PickView struct {
	Player        player.Player
	Team          team.Team
	Position      player.Position
	IsCaptain     bool
	IsViceCaptain bool
}

// TeamView is a fantasy team with its picks resolved for display.
type TeamView struct {
	Team  fantasy.Team
	Picks []PickView
}

// LeaderboardRow is one leaderboard entry.
type LeaderboardRow struct {
	FantasyTeamID string
	Name          string
	UserID        string
	TotalPoints   int
}

type FantasyService struct {
	competitionRepo competition.Repository
	teamRepo        team.Repository
	playerRepo      player.Repository
	matchRepo       match.Repository
	fantasyRepo     fantasy.Repository
	scoringRepo     scoring.Repository
	rules           fantasy.Rules
	idGen           idgen.Generator
	logger          *slog.Logger
	now             func() time.Time
}

func NewFantasyService(
	competitionRepo competition.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	matchRepo match.Repository,
	fantasyRepo fantasy.Repository,
	scoringRepo scoring.Repository,
	rules fantasy.Rules,
	idGen idgen.Generator,
	logger *slog.Logger,
) *FantasyService {
	if logger == nil {
		logger = slog.Default()
	}

	return &FantasyService{
		competitionRepo: competitionRepo,
		teamRepo:        teamRepo,
		playerRepo:      playerRepo,
		matchRepo:       matchRepo,
		fantasyRepo:     fantasyRepo,
		scoringRepo:     scoringRepo,
		rules:           rules,
		idGen:           idGen,
		logger:          logger,
		now:             time.Now,
	}
}

// CreateTeam registers a fantasy team for one user and competition. A user
// may hold only one team per competition; the budget starts at the full cap.
func (s *FantasyService) CreateTeam(ctx context.Context, input CreateFantasyTeamInput) (fantasy.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.CreateTeam")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.Name = strings.TrimSpace(input.Name)
	if input.UserID == "" {
		return fantasy.Team{}, fmt.Errorf("%w: user id is required", ErrValidationFailed)
	}
	if input.Name == "" {
		return fantasy.Team{}, fmt.Errorf("%w: team name is required", ErrValidationFailed)
	}

	comp, err := s.resolveCompetition(ctx, input.CompetitionCode)
	if err != nil {
		return fantasy.Team{}, err
	}

	_, exists, err := s.fantasyRepo.GetByUserAndCompetition(ctx, input.UserID, comp.ID)
	if err != nil {
		return fantasy.Team{}, fmt.Errorf("get existing fantasy team: %w", err)
	}
	if exists {
		return fantasy.Team{}, fmt.Errorf("%w: user already has a fantasy team for competition=%s", ErrConflict, comp.Code)
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return fantasy.Team{}, fmt.Errorf("generate fantasy team id: %w", err)
	}

	now := s.now().UTC()
	created := fantasy.Team{
		ID:            teamID,
		UserID:        input.UserID,
		CompetitionID: comp.ID,
		Name:          input.Name,
		Budget:        s.rules.Budget,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := created.ValidateBasic(); err != nil {
		return fantasy.Team{}, fmt.Errorf("%w: %s", ErrValidationFailed, err)
	}
	if err := s.fantasyRepo.Create(ctx, created); err != nil {
		return fantasy.Team{}, fmt.Errorf("create fantasy team: %w", err)
	}

	s.logger.InfoContext(ctx, "fantasy team created",
		"user_id", input.UserID,
		"competition", comp.Code,
		"fantasy_team_id", created.ID,
	)

	return created, nil
}

// UpdatePicks replaces the team's whole squad after validation. Edits are
// rejected outright while any match in the competition is live, before any
// rule runs: the squad lock is per round-in-progress, not permanent.
func (s *FantasyService) UpdatePicks(ctx context.Context, input UpdatePicksInput) (TeamView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.UpdatePicks")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.TeamID = strings.TrimSpace(input.TeamID)
	if input.UserID == "" || input.TeamID == "" {
		return TeamView{}, fmt.Errorf("%w: user_id and team_id are required", ErrValidationFailed)
	}

	fteam, exists, err := s.fantasyRepo.GetByID(ctx, input.TeamID)
	if err != nil {
		return TeamView{}, fmt.Errorf("get fantasy team: %w", err)
	}
	if !exists {
		return TeamView{}, fmt.Errorf("%w: fantasy team=%s", ErrNotFound, input.TeamID)
	}
	if fteam.UserID != input.UserID {
		return TeamView{}, fmt.Errorf("%w: fantasy team belongs to another user", ErrForbidden)
	}

	live, err := s.matchRepo.HasLiveMatch(ctx, fteam.CompetitionID)
	if err != nil {
		return TeamView{}, fmt.Errorf("check live matches: %w", err)
	}
	if live {
		return TeamView{}, fmt.Errorf("%w: squad is locked while a match is live", ErrForbidden)
	}

	picks := make([]fantasy.Pick, 0, len(input.Picks))
	playerIDs := make([]string, 0, len(input.Picks))
	for _, p := range input.Picks {
		picks = append(picks, fantasy.Pick{
			PlayerID:      strings.TrimSpace(p.PlayerID),
			Position:      p.Position,
			IsCaptain:     p.IsCaptain,
			IsViceCaptain: p.IsViceCaptain,
		})
		playerIDs = append(playerIDs, strings.TrimSpace(p.PlayerID))
	}

	players, err := s.playerRepo.GetByIDs(ctx, playerIDs)
	if err != nil {
		return TeamView{}, fmt.Errorf("get players by ids: %w", err)
	}
	playersByID := make(map[string]player.Player, len(players))
	for _, p := range players {
		playersByID[p.ID] = p
	}

	totalCost, err := fantasy.ValidatePicks(picks, playersByID, s.rules)
	if err != nil {
		return TeamView{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	remaining := s.rules.Budget - totalCost
	if err := s.fantasyRepo.ReplacePicks(ctx, fteam.ID, picks, remaining); err != nil {
		return TeamView{}, fmt.Errorf("replace picks: %w", err)
	}

	s.logger.InfoContext(ctx, "fantasy squad updated",
		"user_id", input.UserID,
		"fantasy_team_id", fteam.ID,
		"total_cost", totalCost,
		"remaining_budget", remaining,
	)

	fteam.Picks = picks
	fteam.Budget = remaining
	return s.buildTeamView(ctx, fteam)
}

// GetMyTeam returns the caller's team for a competition, or NotFound.
func (s *FantasyService) GetMyTeam(ctx context.Context, userID, competitionCode string) (TeamView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.GetMyTeam")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return TeamView{}, fmt.Errorf("%w: user id is required", ErrValidationFailed)
	}

	comp, err := s.resolveCompetition(ctx, competitionCode)
	if err != nil {
		return TeamView{}, err
	}

	fteam, exists, err := s.fantasyRepo.GetByUserAndCompetition(ctx, userID, comp.ID)
	if err != nil {
		return TeamView{}, fmt.Errorf("get fantasy team: %w", err)
	}
	if !exists {
		return TeamView{}, fmt.Errorf("%w: no fantasy team for user in competition=%s", ErrNotFound, comp.Code)
	}

	return s.buildTeamView(ctx, fteam)
}

func (s *FantasyService) GetTeamByID(ctx context.Context, teamID string) (TeamView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.GetTeamByID")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return TeamView{}, fmt.Errorf("%w: team id is required", ErrValidationFailed)
	}

	fteam, exists, err := s.fantasyRepo.GetByID(ctx, teamID)
	if err != nil {
		return TeamView{}, fmt.Errorf("get fantasy team: %w", err)
	}
	if !exists {
		return TeamView{}, fmt.Errorf("%w: fantasy team=%s", ErrNotFound, teamID)
	}

	return s.buildTeamView(ctx, fteam)
}

// Leaderboard lists fantasy teams by running total, best first.
func (s *FantasyService) Leaderboard(ctx context.Context, competitionCode string) ([]LeaderboardRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.Leaderboard")
	defer span.End()

	comp, err := s.resolveCompetition(ctx, competitionCode)
	if err != nil {
		return nil, err
	}

	teams, err := s.fantasyRepo.ListByCompetition(ctx, comp.ID)
	if err != nil {
		return nil, fmt.Errorf("list fantasy teams: %w", err)
	}

	rows := make([]LeaderboardRow, 0, len(teams))
	for _, t := range teams {
		rows = append(rows, LeaderboardRow{
			FantasyTeamID: t.ID,
			Name:          t.Name,
			UserID:        t.UserID,
			TotalPoints:   t.TotalPoints,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TotalPoints != rows[j].TotalPoints {
			return rows[i].TotalPoints > rows[j].TotalPoints
		}
		return rows[i].Name < rows[j].Name
	})

	if len(rows) > leaderboardLimit {
		rows = rows[:leaderboardLimit]
	}
	return rows, nil
}

// AvailablePlayers lists the selectable player pool for a competition,
// priciest first.
func (s *FantasyService) AvailablePlayers(ctx context.Context, competitionCode string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.AvailablePlayers")
	defer span.End()

	comp, err := s.resolveCompetition(ctx, competitionCode)
	if err != nil {
		return nil, err
	}

	players, err := s.playerRepo.ListByCompetition(ctx, comp.ID)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	sort.SliceStable(players, func(i, j int) bool {
		if players[i].Price != players[j].Price {
			return players[i].Price > players[j].Price
		}
		return players[i].Name < players[j].Name
	})

	return players, nil
}

// GameweekPoints lists a team's scored rounds in ascending round order.
func (s *FantasyService) GameweekPoints(ctx context.Context, teamID string) ([]scoring.GameweekRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.GameweekPoints")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrValidationFailed)
	}

	_, exists, err := s.fantasyRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("get fantasy team: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: fantasy team=%s", ErrNotFound, teamID)
	}

	rows, err := s.scoringRepo.ListGameweekRowsByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list gameweek rows: %w", err)
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Round < rows[j].Round })
	return rows, nil
}

func (s *FantasyService) buildTeamView(ctx context.Context, fteam fantasy.Team) (TeamView, error) {
	if len(fteam.Picks) == 0 {
		return TeamView{Team: fteam}, nil
	}

	playerIDs := make([]string, 0, len(fteam.Picks))
	for _, pick := range fteam.Picks {
		playerIDs = append(playerIDs, pick.PlayerID)
	}
	players, err := s.playerRepo.GetByIDs(ctx, playerIDs)
	if err != nil {
		return TeamView{}, fmt.Errorf("get pick players: %w", err)
	}
	playersByID := make(map[string]player.Player, len(players))
	for _, p := range players {
		playersByID[p.ID] = p
	}

	teams, err := s.teamRepo.ListByCompetition(ctx, fteam.CompetitionID)
	if err != nil {
		return TeamView{}, fmt.Errorf("list teams: %w", err)
	}
	teamsByID := make(map[string]team.Team, len(teams))
	for _, t := range teams {
		teamsByID[t.ID] = t
	}

	views := make([]PickView, 0, len(fteam.Picks))
	for _, pick := range fteam.Picks {
		p := playersByID[pick.PlayerID]
		views = append(views, PickView{
			Player:        p,
			Team:          teamsByID[p.TeamID],
			Position:      pick.Position,
			IsCaptain:     pick.IsCaptain,
			IsViceCaptain: pick.IsViceCaptain,
		})
	}

	return TeamView{Team: fteam, Picks: views}, nil
}

func (s *FantasyService) resolveCompetition(ctx context.Context, code string) (competition.Competition, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		code = DefaultCompetitionCode
	}

	comp, exists, err := s.competitionRepo.GetByCode(ctx, code)
	if err != nil {
		return competition.Competition{}, fmt.Errorf("get competition by code: %w", err)
	}
	if !exists {
		return competition.Competition{}, fmt.Errorf("%w: competition=%s", ErrNotFound, code)
	}

	return comp, nil
}
