package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/kazfoot/kpl-fantasy/internal/domain/competition"
	"github.com/kazfoot/kpl-fantasy/internal/domain/match"
)

type MatchService struct {
	competitionRepo competition.Repository
	matchRepo       match.Repository
}

func NewMatchService(competitionRepo competition.Repository, matchRepo match.Repository) *MatchService {
	return &MatchService{
		competitionRepo: competitionRepo,
		matchRepo:       matchRepo,
	}
}

// ListMatches returns a competition's matches ordered by kickoff, optionally
// filtered to one round.
func (s *MatchService) ListMatches(ctx context.Context, competitionCode string, round *int) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
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

	matches, err := s.matchRepo.ListByCompetition(ctx, comp.ID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	if round != nil {
		if *round <= 0 {
			return nil, fmt.Errorf("%w: round must be greater than zero", ErrValidationFailed)
		}
		filtered := matches[:0]
		for _, m := range matches {
			if m.Round == *round {
				filtered = append(filtered, m)
			}
		}
		matches = filtered
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].KickoffAt.Before(matches[j].KickoffAt)
	})

	return matches, nil
}

// RecentMatchesByTeam returns a club's latest finished matches, newest first.
func (s *MatchService) RecentMatchesByTeam(ctx context.Context, competitionCode, teamID string, limit int) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RecentMatchesByTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrValidationFailed)
	}
	if limit <= 0 {
		limit = 5
	}

	matches, err := s.ListMatches(ctx, competitionCode, nil)
	if err != nil {
		return nil, err
	}

	recent := make([]match.Match, 0, limit)
	for i := len(matches) - 1; i >= 0 && len(recent) < limit; i-- {
		m := matches[i]
		if !match.IsFinishedStatus(m.Status) {
			continue
		}
		if m.HomeTeamID != teamID && m.AwayTeamID != teamID {
			continue
		}
		recent = append(recent, m)
	}

	return recent, nil
}

// GetMatch returns one match with its events and lineups.
func (s *MatchService) GetMatch(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrValidationFailed)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return m, nil
}
