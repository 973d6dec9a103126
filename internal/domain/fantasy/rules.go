package fantasy

import (
	"errors"
	"fmt"

	"github.com/kazfoot/kpl-fantasy/internal/domain/player"
)

var (
	ErrInvalidSquadSize       = errors.New("invalid squad size")
	ErrDuplicatePlayerInSquad = errors.New("duplicate player in squad")
	ErrUnknownPlayer          = errors.New("unknown player")
	ErrPositionCountMismatch  = errors.New("position count mismatch")
	ErrExceededTeamLimit      = errors.New("max players from same team exceeded")
	ErrExceededBudget         = errors.New("budget exceeded")
	ErrCaptainSelection       = errors.New("invalid captain selection")
)

// Rules stores fantasy squad validation parameters.
type Rules struct {
	SquadSize         int
	Budget            int64
	MaxPlayersPerTeam int
	SlotsByPosition   map[player.Position]int
}

// DefaultRules is the 15-player KPL fantasy composition: 2 GK, 5 DF, 5 MF,
// 3 FW within a 100.0 budget (stored in tenths).
func DefaultRules() Rules {
	return Rules{
		SquadSize:         15,
		Budget:            1000,
		MaxPlayersPerTeam: 3,
		SlotsByPosition: map[player.Position]int{
			player.PositionGoalkeeper: 2,
			player.PositionDefender:   5,
			player.PositionMidfielder: 5,
			player.PositionForward:    3,
		},
	}
}

// ValidatePicks checks a proposed squad against the rules and the
// authoritative player records. Checks run in a fixed order and the first
// violated rule is reported. On success it returns the squad's total cost so
// the caller can record the remaining budget.
func ValidatePicks(picks []Pick, playersByID map[string]player.Player, rules Rules) (int64, error) {
	if len(picks) != rules.SquadSize {
		return 0, fmt.Errorf("%w: expected %d, got %d", ErrInvalidSquadSize, rules.SquadSize, len(picks))
	}

	seen := make(map[string]struct{}, len(picks))
	for _, pick := range picks {
		if _, exists := seen[pick.PlayerID]; exists {
			return 0, fmt.Errorf("%w: %s", ErrDuplicatePlayerInSquad, pick.PlayerID)
		}
		seen[pick.PlayerID] = struct{}{}
	}

	for _, pick := range picks {
		if _, ok := playersByID[pick.PlayerID]; !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownPlayer, pick.PlayerID)
		}
	}

	slotCounter := make(map[player.Position]int, len(rules.SlotsByPosition))
	for _, pick := range picks {
		slotCounter[pick.Position]++
	}
	for _, pos := range []player.Position{
		player.PositionGoalkeeper,
		player.PositionDefender,
		player.PositionMidfielder,
		player.PositionForward,
	} {
		if slotCounter[pos] != rules.SlotsByPosition[pos] {
			return 0, fmt.Errorf("%w: pos=%s expected=%d got=%d",
				ErrPositionCountMismatch, pos, rules.SlotsByPosition[pos], slotCounter[pos])
		}
	}

	teamCounter := make(map[string]int)
	for _, pick := range picks {
		teamID := playersByID[pick.PlayerID].TeamID
		teamCounter[teamID]++
		if teamCounter[teamID] > rules.MaxPlayersPerTeam {
			return 0, fmt.Errorf("%w: team=%s max=%d", ErrExceededTeamLimit, teamID, rules.MaxPlayersPerTeam)
		}
	}

	var totalCost int64
	for _, pick := range picks {
		totalCost += playersByID[pick.PlayerID].Price
	}
	if totalCost > rules.Budget {
		return 0, fmt.Errorf("%w: budget=%d cost=%d", ErrExceededBudget, rules.Budget, totalCost)
	}

	var captainID, viceCaptainID string
	captains, viceCaptains := 0, 0
	for _, pick := range picks {
		if pick.IsCaptain {
			captains++
			captainID = pick.PlayerID
		}
		if pick.IsViceCaptain {
			viceCaptains++
			viceCaptainID = pick.PlayerID
		}
	}
	if captains != 1 {
		return 0, fmt.Errorf("%w: expected exactly one captain, got %d", ErrCaptainSelection, captains)
	}
	if viceCaptains != 1 {
		return 0, fmt.Errorf("%w: expected exactly one vice-captain, got %d", ErrCaptainSelection, viceCaptains)
	}
	if captainID == viceCaptainID {
		return 0, fmt.Errorf("%w: captain and vice-captain must be different players", ErrCaptainSelection)
	}

	return totalCost, nil
}
