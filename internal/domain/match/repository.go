package match

import "context"

// Repository is the fact store surface: immutable match facts written by
// ingestion and read by scoring and standings. The core never mutates
// individual facts in place; ingestion replaces whole matches.
type Repository interface {
	ListByCompetition(ctx context.Context, competitionID string) ([]Match, error)
	ListFinishedByRound(ctx context.Context, competitionID string, round int) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	HasLiveMatch(ctx context.Context, competitionID string) (bool, error)
	UpsertMatches(ctx context.Context, matches []Match) error
}
