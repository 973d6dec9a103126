package standings

// Row is one league table entry for a team.
type Row struct {
	TeamID       string
	TeamName     string
	TeamShort    string
	Played       int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
	GoalDiff     int
	Points       int
}
