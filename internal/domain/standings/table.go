package standings

import (
	"sort"

	"github.com/kazfoot/kpl-fantasy/internal/domain/match"
	"github.com/kazfoot/kpl-fantasy/internal/domain/team"
)

// Compute derives a ranked league table from finished matches. Every team in
// allTeams appears, so clubs with zero matches played still get all-zero rows.
// Matches that are not finished or lack a score are ignored.
//
// Sort order: points desc, goal difference desc, goals-for desc, then team
// name asc. The final tie-break is a case-sensitive byte-wise comparison so
// recomputation is deterministic regardless of input order.
func Compute(matches []match.Match, allTeams []team.Team) []Row {
	rowsByTeam := make(map[string]*Row, len(allTeams))
	for _, t := range allTeams {
		rowsByTeam[t.ID] = &Row{TeamID: t.ID, TeamName: t.Name, TeamShort: t.Short}
	}

	get := func(teamID string) *Row {
		row, ok := rowsByTeam[teamID]
		if !ok {
			row = &Row{TeamID: teamID}
			rowsByTeam[teamID] = row
		}
		return row
	}

	for _, m := range matches {
		if !match.IsFinishedStatus(m.Status) || !m.HasScore() {
			continue
		}

		home := get(m.HomeTeamID)
		away := get(m.AwayTeamID)

		home.Played++
		away.Played++
		home.GoalsFor += *m.HomeScore
		home.GoalsAgainst += *m.AwayScore
		away.GoalsFor += *m.AwayScore
		away.GoalsAgainst += *m.HomeScore

		switch {
		case *m.HomeScore > *m.AwayScore:
			home.Wins++
			away.Losses++
		case *m.HomeScore < *m.AwayScore:
			away.Wins++
			home.Losses++
		default:
			home.Draws++
			away.Draws++
		}
	}

	out := make([]Row, 0, len(rowsByTeam))
	for _, row := range rowsByTeam {
		row.GoalDiff = row.GoalsFor - row.GoalsAgainst
		row.Points = row.Wins*3 + row.Draws
		out = append(out, *row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		if out[i].GoalDiff != out[j].GoalDiff {
			return out[i].GoalDiff > out[j].GoalDiff
		}
		if out[i].GoalsFor != out[j].GoalsFor {
			return out[i].GoalsFor > out[j].GoalsFor
		}
		return out[i].TeamName < out[j].TeamName
	})

	return out
}
