package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/kazfoot/kpl-fantasy/internal/domain/competition"
	"github.com/kazfoot/kpl-fantasy/internal/domain/match"
	"github.com/kazfoot/kpl-fantasy/internal/domain/standings"
	"github.com/kazfoot/kpl-fantasy/internal/domain/team"
	"github.com/kazfoot/kpl-fantasy/internal/platform/cache"
)

type StandingService struct {
	competitionRepo competition.Repository
	matchRepo       match.Repository
	teamRepo        team.Repository
	store           *cache.Store
}

func NewStandingService(
	competitionRepo competition.Repository,
	matchRepo match.Repository,
	teamRepo team.Repository,
	store *cache.Store,
) *StandingService {
	return &StandingService{
		competitionRepo: competitionRepo,
		matchRepo:       matchRepo,
		teamRepo:        teamRepo,
		store:           store,
	}
}

// Standings returns the competition table computed from finished matches.
// The computation is a pure function of the match set, so the result is
// safe to cache briefly.
func (s *StandingService) Standings(ctx context.Context, competitionCode string) ([]standings.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.Standings")
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

	if s.store == nil {
		return s.compute(ctx, comp.ID)
	}

	value, err := s.store.GetOrFill(ctx, "standings:"+comp.ID, func() (any, error) {
		return s.compute(ctx, comp.ID)
	})
	if err != nil {
		return nil, err
	}

	rows, ok := value.([]standings.Row)
	if !ok {
		return s.compute(ctx, comp.ID)
	}
	return rows, nil
}

func (s *StandingService) compute(ctx context.Context, competitionID string) ([]standings.Row, error) {
	matches, err := s.matchRepo.ListByCompetition(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	teams, err := s.teamRepo.ListByCompetition(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return standings.Compute(matches, teams), nil
}
