package competition

import "context"

// Repository exposes competition lookups.
type Repository interface {
	GetByID(ctx context.Context, competitionID string) (Competition, bool, error)
	GetByCode(ctx context.Context, code string) (Competition, bool, error)
	List(ctx context.Context) ([]Competition, error)
}
