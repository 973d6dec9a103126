package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/kazfoot/kpl-fantasy/internal/domain/scoring"
)

type ScoringRepository struct {
	mu    sync.RWMutex
	items map[string]scoring.GameweekRow
}

func NewScoringRepository() *ScoringRepository {
	return &ScoringRepository{items: make(map[string]scoring.GameweekRow)}
}

func (r *ScoringRepository) UpsertGameweekRow(_ context.Context, row scoring.GameweekRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[gameweekKey(row.FantasyTeamID, row.Round)] = row
	return nil
}

func (r *ScoringRepository) ListGameweekRowsByTeam(_ context.Context, fantasyTeamID string) ([]scoring.GameweekRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scoring.GameweekRow, 0, 8)
	for _, item := range r.items {
		if item.FantasyTeamID == fantasyTeamID {
			out = append(out, item)
		}
	}

	return out, nil
}

func gameweekKey(fantasyTeamID string, round int) string {
	return fmt.Sprintf("%s::%d", fantasyTeamID, round)
}
