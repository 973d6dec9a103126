package fantasy

import (
	"fmt"
	"time"

	"github.com/kazfoot/kpl-fantasy/internal/domain/player"
)

// Pick is one selected player in a fantasy squad. Position is the slot the
// pick occupies, which the squad rules constrain against the player's real
// position counts.
type Pick struct {
	PlayerID      string
	Position      player.Position
	IsCaptain     bool
	IsViceCaptain bool
}

// Team is one user's fantasy team inside a competition. Budget is the
// remaining budget in tenths; TotalPoints is the running season total.
type Team struct {
	ID            string
	UserID        string
	CompetitionID string
	Name          string
	Budget        int64
	TotalPoints   int
	Picks         []Pick
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (t Team) ValidateBasic() error {
	if t.ID == "" {
		return fmt.Errorf("fantasy team id is required")
	}
	if t.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	if t.CompetitionID == "" {
		return fmt.Errorf("competition id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("fantasy team name is required")
	}

	return nil
}

// Captain returns the captain pick, if the squad has one.
func (t Team) Captain() (Pick, bool) {
	for _, pick := range t.Picks {
		if pick.IsCaptain {
			return pick, true
		}
	}
	return Pick{}, false
}

// ViceCaptain returns the vice-captain pick, if the squad has one.
func (t Team) ViceCaptain() (Pick, bool) {
	for _, pick := range t.Picks {
		if pick.IsViceCaptain {
			return pick, true
		}
	}
	return Pick{}, false
}
