package fantasy

import "context"

// Repository describes fantasy team persistence needs from use cases.
// ReplacePicks swaps a team's picks and remaining budget as one atomic unit.
type Repository interface {
	Create(ctx context.Context, team Team) error
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	GetByUserAndCompetition(ctx context.Context, userID, competitionID string) (Team, bool, error)
	ListByCompetition(ctx context.Context, competitionID string) ([]Team, error)
	ReplacePicks(ctx context.Context, teamID string, picks []Pick, remainingBudget int64) error
	UpdateTotalPoints(ctx context.Context, teamID string, totalPoints int) error
}
