package match

import (
	"strings"
	"time"

	"github.com/kazfoot/kpl-fantasy/internal/domain/player"
)

const (
	StatusScheduled = "scheduled"
	StatusLive      = "live"
	StatusFinished  = "finished"
)

const (
	EventGoal         = "goal"
	EventYellowCard   = "yellow_card"
	EventRedCard      = "red_card"
	EventSubstitution = "substitution"
)

// Match is one fixture between two real teams. Scores are nil while the
// match is still scheduled and non-nil once it goes live.
type Match struct {
	ID            string
	CompetitionID string
	Round         int
	KickoffAt     time.Time
	Status        string
	HomeTeamID    string
	AwayTeamID    string
	HomeScore     *int
	AwayScore     *int
	Events        []Event
	Lineups       []LineupEntry
}

// Event is one in-match fact: a goal, a card or a substitution.
// AssistPlayerID is set only for goals, SubOutPlayerID only for substitutions
// (PlayerID then names the player coming on).
type Event struct {
	ID             string
	MatchID        string
	TeamID         string
	Type           string
	Minute         int
	ExtraMinute    int
	PlayerID       string
	AssistPlayerID string
	SubOutPlayerID string
}

// LineupEntry registers one player in a team's squad list for one match.
// Position, when set, overrides the player's reference position for that match.
type LineupEntry struct {
	MatchID   string
	TeamID    string
	PlayerID  string
	IsStarter bool
	Position  player.Position
}

func NormalizeStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func IsLiveStatus(status string) bool {
	return NormalizeStatus(status) == StatusLive
}

func IsFinishedStatus(status string) bool {
	return NormalizeStatus(status) == StatusFinished
}

// HasScore reports whether both score fields are populated, which holds for
// live and finished matches.
func (m Match) HasScore() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}

// ResolvePosition applies the position fallback chain for one lineup entry:
// per-match override first, then the player's reference position, then MF.
// The MF default is deliberate: an unknown position scores like a midfielder.
func ResolvePosition(entry LineupEntry, reference player.Position) player.Position {
	if _, ok := player.AllPositions[entry.Position]; ok {
		return entry.Position
	}
	if _, ok := player.AllPositions[reference]; ok {
		return reference
	}
	return player.PositionMidfielder
}
