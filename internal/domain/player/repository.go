package player

import "context"

// Repository exposes player catalog reads and ingestion writes.
type Repository interface {
	GetByIDs(ctx context.Context, playerIDs []string) ([]Player, error)
	ListByCompetition(ctx context.Context, competitionID string) ([]Player, error)
	UpsertPlayers(ctx context.Context, players []Player) error
}
