package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/kazfoot/kpl-fantasy/internal/domain/match"
)

type MatchRepository struct {
	mu    sync.RWMutex
	items map[string]match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	items := make(map[string]match.Match, len(matches))
	for _, item := range matches {
		items[item.ID] = cloneMatch(item)
	}

	return &MatchRepository{items: items}
}

func (r *MatchRepository) ListByCompetition(_ context.Context, competitionID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.items))
	for _, item := range r.items {
		if item.CompetitionID == competitionID {
			out = append(out, cloneMatch(item))
		}
	}

	return out, nil
}

func (r *MatchRepository) ListFinishedByRound(_ context.Context, competitionID string, round int) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, 8)
	for _, item := range r.items {
		if item.CompetitionID != competitionID || item.Round != round {
			continue
		}
		if !match.IsFinishedStatus(item.Status) {
			continue
		}
		out = append(out, cloneMatch(item))
	}

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[matchID]
	if !ok {
		return match.Match{}, false, nil
	}

	return cloneMatch(item), true, nil
}

func (r *MatchRepository) HasLiveMatch(_ context.Context, competitionID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.CompetitionID == competitionID && match.IsLiveStatus(item.Status) {
			return true, nil
		}
	}

	return false, nil
}

func (r *MatchRepository) UpsertMatches(_ context.Context, matches []match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range matches {
		if strings.TrimSpace(item.ID) == "" {
			continue
		}
		r.items[item.ID] = cloneMatch(item)
	}

	return nil
}

func cloneMatch(m match.Match) match.Match {
	copied := m
	copied.Events = append([]match.Event(nil), m.Events...)
	copied.Lineups = append([]match.LineupEntry(nil), m.Lineups...)
	if m.HomeScore != nil {
		score := *m.HomeScore
		copied.HomeScore = &score
	}
	if m.AwayScore != nil {
		score := *m.AwayScore
		copied.AwayScore = &score
	}
	return copied
}
