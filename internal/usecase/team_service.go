package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/kazfoot/kpl-fantasy/internal/domain/competition"
	"github.com/kazfoot/kpl-fantasy/internal/domain/team"
)

type TeamService struct {
	competitionRepo competition.Repository
	teamRepo        team.Repository
}

func NewTeamService(competitionRepo competition.Repository, teamRepo team.Repository) *TeamService {
	return &TeamService{
		competitionRepo: competitionRepo,
		teamRepo:        teamRepo,
	}
}

func (s *TeamService) ListCompetitions(ctx context.Context) ([]competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListCompetitions")
	defer span.End()

	competitions, err := s.competitionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}

	return competitions, nil
}

// GetCompetitionByCode resolves a public competition code, falling back to
// the default competition when the code is empty.
func (s *TeamService) GetCompetitionByCode(ctx context.Context, competitionCode string) (competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetCompetitionByCode")
	defer span.End()

	competitionCode = strings.TrimSpace(competitionCode)
	if competitionCode == "" {
		competitionCode = DefaultCompetitionCode
	}

	comp, exists, err := s.competitionRepo.GetByCode(ctx, competitionCode)
	if err != nil {
		return competition.Competition{}, fmt.Errorf("get competition by code: %w", err)
	}
	if !exists {
		return competition.Competition{}, fmt.Errorf("%w: competition=%s", ErrNotFound, competitionCode)
	}

	return comp, nil
}

func (s *TeamService) ListTeams(ctx context.Context, competitionCode string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	competitionCode = strings.TrimSpace(competitionCode)
	if competitionCode == "" {
		competitionCode = DefaultCompetitionCode
	}

	comp, exists, err := s.competitionRepo.GetByCode(ctx, competitionCode)
	if err != nil {
		return nil, fmt.Errorf("get competition by code: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: competition=%s", ErrNotFound, competitionCode)
	}

	teams, err := s.teamRepo.ListByCompetition(ctx, comp.ID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	sort.SliceStable(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	return teams, nil
}

func (s *TeamService) GetTeam(ctx context.Context, competitionCode, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	competitionCode = strings.TrimSpace(competitionCode)
	if competitionCode == "" {
		competitionCode = DefaultCompetitionCode
	}
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrValidationFailed)
	}

	comp, exists, err := s.competitionRepo.GetByCode(ctx, competitionCode)
	if err != nil {
		return team.Team{}, fmt.Errorf("get competition by code: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: competition=%s", ErrNotFound, competitionCode)
	}

	t, exists, err := s.teamRepo.GetByID(ctx, comp.ID, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return t, nil
}
