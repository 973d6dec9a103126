package scoring

import "context"

// Repository persists computed gameweek rows. Upsert is keyed by
// (fantasy team, round) so re-scoring overwrites in place.
type Repository interface {
	UpsertGameweekRow(ctx context.Context, row GameweekRow) error
	ListGameweekRowsByTeam(ctx context.Context, fantasyTeamID string) ([]GameweekRow, error)
}
