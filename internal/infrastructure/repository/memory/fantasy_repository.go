package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/kazfoot/kpl-fantasy/internal/domain/fantasy"
)

type FantasyRepository struct {
	mu    sync.RWMutex
	items map[string]fantasy.Team
}

func NewFantasyRepository() *FantasyRepository {
	return &FantasyRepository{items: make(map[string]fantasy.Team)}
}

func (r *FantasyRepository) Create(_ context.Context, team fantasy.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[team.ID]; exists {
		return fmt.Errorf("fantasy team %s already exists", team.ID)
	}
	for _, item := range r.items {
		if item.UserID == team.UserID && item.CompetitionID == team.CompetitionID {
			return fmt.Errorf("user %s already has a team in competition %s", team.UserID, team.CompetitionID)
		}
	}

	r.items[team.ID] = cloneFantasyTeam(team)
	return nil
}

func (r *FantasyRepository) GetByID(_ context.Context, teamID string) (fantasy.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[teamID]
	if !ok {
		return fantasy.Team{}, false, nil
	}

	return cloneFantasyTeam(item), true, nil
}

func (r *FantasyRepository) GetByUserAndCompetition(_ context.Context, userID, competitionID string) (fantasy.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.UserID == userID && item.CompetitionID == competitionID {
			return cloneFantasyTeam(item), true, nil
		}
	}

	return fantasy.Team{}, false, nil
}

func (r *FantasyRepository) ListByCompetition(_ context.Context, competitionID string) ([]fantasy.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fantasy.Team, 0, len(r.items))
	for _, item := range r.items {
		if item.CompetitionID == competitionID {
			out = append(out, cloneFantasyTeam(item))
		}
	}

	return out, nil
}

func (r *FantasyRepository) ReplacePicks(_ context.Context, teamID string, picks []fantasy.Pick, remainingBudget int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[teamID]
	if !ok {
		return fmt.Errorf("fantasy team %s not found", teamID)
	}

	item.Picks = append([]fantasy.Pick(nil), picks...)
	item.Budget = remainingBudget
	r.items[teamID] = item
	return nil
}

func (r *FantasyRepository) UpdateTotalPoints(_ context.Context, teamID string, totalPoints int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[teamID]
	if !ok {
		return fmt.Errorf("fantasy team %s not found", teamID)
	}

	item.TotalPoints = totalPoints
	r.items[teamID] = item
	return nil
}

func cloneFantasyTeam(t fantasy.Team) fantasy.Team {
	copied := t
	copied.Picks = append([]fantasy.Pick(nil), t.Picks...)
	return copied
}
