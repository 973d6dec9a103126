package scoring

import (
	"github.com/kazfoot/kpl-fantasy/internal/domain/match"
	"github.com/kazfoot/kpl-fantasy/internal/domain/player"
)

// Point values per rule. Goal points depend on the scorer's resolved position;
// goalkeeper goals are rewarded like defender goals.
const (
	PointsStarter    = 2
	PointsSubOn      = 1
	PointsAssist     = 3
	PointsYellowCard = -1
	PointsRedCard    = -3
)

var goalPointsByPosition = map[player.Position]int{
	player.PositionForward:    4,
	player.PositionMidfielder: 5,
	player.PositionDefender:   6,
	player.PositionGoalkeeper: 6,
}

var cleanSheetPointsByPosition = map[player.Position]int{
	player.PositionGoalkeeper: 4,
	player.PositionDefender:   4,
	player.PositionMidfielder: 1,
	player.PositionForward:    0,
}

// ScoreMatches folds one round's finished matches into raw per-player points.
// Matches without both scores are skipped. Players who never appear in any
// lineup are absent from the result map; callers treat absent and zero alike.
func ScoreMatches(matches []match.Match, referencePositions map[string]player.Position) map[string]PlayerPoints {
	out := make(map[string]PlayerPoints)

	add := func(playerID, category string, points int) {
		if playerID == "" || points == 0 {
			return
		}
		pp, ok := out[playerID]
		if !ok {
			pp = PlayerPoints{PlayerID: playerID, Breakdown: make(map[string]int)}
		}
		pp.Total += points
		pp.Breakdown[category] += points
		out[playerID] = pp
	}

	for _, m := range matches {
		if !match.IsFinishedStatus(m.Status) || !m.HasScore() {
			continue
		}

		subbedOn := make(map[string]struct{})
		for _, ev := range m.Events {
			if ev.Type == match.EventSubstitution {
				subbedOn[ev.PlayerID] = struct{}{}
			}
		}

		homeCleanSheet := *m.AwayScore == 0
		awayCleanSheet := *m.HomeScore == 0

		positions := make(map[string]player.Position, len(m.Lineups))
		for _, entry := range m.Lineups {
			pos := match.ResolvePosition(entry, referencePositions[entry.PlayerID])
			positions[entry.PlayerID] = pos

			if entry.IsStarter {
				add(entry.PlayerID, CategoryAppearance, PointsStarter)
			} else if _, on := subbedOn[entry.PlayerID]; on {
				add(entry.PlayerID, CategoryAppearance, PointsSubOn)
			} else {
				// Unused bench player: no appearance at all.
				continue
			}

			cleanSheet := awayCleanSheet
			if entry.TeamID == m.HomeTeamID {
				cleanSheet = homeCleanSheet
			}
			if cleanSheet && entry.IsStarter {
				add(entry.PlayerID, CategoryCleanSheet, cleanSheetPointsByPosition[pos])
			}
		}

		for _, ev := range m.Events {
			switch ev.Type {
			case match.EventGoal:
				pos, ok := positions[ev.PlayerID]
				if !ok {
					pos = player.PositionMidfielder
				}
				add(ev.PlayerID, CategoryGoals, goalPointsByPosition[pos])
				if ev.AssistPlayerID != "" {
					add(ev.AssistPlayerID, CategoryAssists, PointsAssist)
				}
			case match.EventYellowCard:
				add(ev.PlayerID, CategoryYellowCards, PointsYellowCard)
			case match.EventRedCard:
				add(ev.PlayerID, CategoryRedCards, PointsRedCard)
			}
		}
	}

	return out
}
