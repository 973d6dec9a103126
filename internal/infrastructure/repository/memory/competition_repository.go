package memory

import (
	"context"
	"sync"

	"github.com/kazfoot/kpl-fantasy/internal/domain/competition"
)

type CompetitionRepository struct {
	mu    sync.RWMutex
	items []competition.Competition
}

func NewCompetitionRepository(items []competition.Competition) *CompetitionRepository {
	return &CompetitionRepository{items: append([]competition.Competition(nil), items...)}
}

func (r *CompetitionRepository) GetByID(_ context.Context, competitionID string) (competition.Competition, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == competitionID {
			return item, true, nil
		}
	}

	return competition.Competition{}, false, nil
}

func (r *CompetitionRepository) GetByCode(_ context.Context, code string) (competition.Competition, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.Code == code {
			return item, true, nil
		}
	}

	return competition.Competition{}, false, nil
}

func (r *CompetitionRepository) List(_ context.Context) ([]competition.Competition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]competition.Competition(nil), r.items...), nil
}
