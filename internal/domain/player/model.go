package player

import "fmt"

// Position represents football position categories used in fantasy rules.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DF"
	PositionMidfielder Position = "MF"
	PositionForward    Position = "FW"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// Player is a selectable athlete in a competition's player pool.
// Price is stored in tenths, so 10.5 is 105.
type Player struct {
	ID            string
	CompetitionID string
	TeamID        string
	Name          string
	Number        int
	Position      Position
	Price         int64
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.CompetitionID == "" {
		return fmt.Errorf("player competition id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if p.Price <= 0 {
		return fmt.Errorf("player price must be greater than zero")
	}

	return nil
}
