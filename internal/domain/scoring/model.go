package scoring

import "time"

// Breakdown categories for player points.
const (
	CategoryAppearance  = "appearance"
	CategoryCleanSheet  = "cleanSheet"
	CategoryGoals       = "goals"
	CategoryAssists     = "assists"
	CategoryYellowCards = "yellowCards"
	CategoryRedCards    = "redCards"
)

// PlayerPoints holds one player's raw fantasy points for a round, with the
// per-category breakdown. Totals can be negative.
type PlayerPoints struct {
	PlayerID  string
	Total     int
	Breakdown map[string]int
}

// Appeared reports whether the player earned any appearance points, which is
// the rule used to decide if a captain "played".
func (p PlayerPoints) Appeared() bool {
	return p.Breakdown[CategoryAppearance] > 0
}

// GameweekRow stores one fantasy team's computed points for one round.
// Rows are overwritten on re-scoring, never appended to.
type GameweekRow struct {
	FantasyTeamID string
	Round         int
	Points        int
	CalculatedAt  time.Time
}
