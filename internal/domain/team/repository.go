package team

import "context"

// Repository exposes team reads from use cases.
type Repository interface {
	ListByCompetition(ctx context.Context, competitionID string) ([]Team, error)
	GetByID(ctx context.Context, competitionID, teamID string) (Team, bool, error)
	UpsertTeams(ctx context.Context, teams []Team) error
}
