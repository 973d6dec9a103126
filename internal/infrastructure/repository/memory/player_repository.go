package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/kazfoot/kpl-fantasy/internal/domain/player"
)

type PlayerRepository struct {
	mu    sync.RWMutex
	items map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	items := make(map[string]player.Player, len(players))
	for _, item := range players {
		items[item.ID] = item
	}

	return &PlayerRepository{items: items}
}

func (r *PlayerRepository) GetByIDs(_ context.Context, playerIDs []string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		if item, ok := r.items[id]; ok {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *PlayerRepository) ListByCompetition(_ context.Context, competitionID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.items))
	for _, item := range r.items {
		if item.CompetitionID == competitionID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *PlayerRepository) UpsertPlayers(_ context.Context, players []player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range players {
		if strings.TrimSpace(item.ID) == "" {
			continue
		}
		r.items[item.ID] = item
	}

	return nil
}
