package scoring

import (
	"testing"

	"github.com/kazfoot/kpl-fantasy/internal/domain/match"
	"github.com/kazfoot/kpl-fantasy/internal/domain/player"
)

func intPtr(v int) *int { return &v }

func finishedMatch(home, away int) match.Match {
	return match.Match{
		ID:         "m1",
		Round:      1,
		Status:     match.StatusFinished,
		HomeTeamID: "home",
		AwayTeamID: "away",
		HomeScore:  intPtr(home),
		AwayScore:  intPtr(away),
	}
}

func TestScoreMatchesGoalPointsByPosition(t *testing.T) {
	tests := []struct {
		name     string
		position player.Position
		want     int
	}{
		{"forward", player.PositionForward, PointsStarter + 4},
		{"midfielder", player.PositionMidfielder, PointsStarter + 5},
		{"defender", player.PositionDefender, PointsStarter + 6},
		{"goalkeeper", player.PositionGoalkeeper, PointsStarter + 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := finishedMatch(1, 1)
			m.Lineups = []match.LineupEntry{
				{MatchID: "m1", TeamID: "home", PlayerID: "scorer", IsStarter: true},
			}
			m.Events = []match.Event{
				{MatchID: "m1", TeamID: "home", Type: match.EventGoal, PlayerID: "scorer"},
			}

			got := ScoreMatches([]match.Match{m}, map[string]player.Position{"scorer": tc.position})
			if got["scorer"].Total != tc.want {
				t.Fatalf("unexpected total: got=%d want=%d", got["scorer"].Total, tc.want)
			}
		})
	}
}

func TestScoreMatchesBraceAccumulatesGoalPoints(t *testing.T) {
	m := finishedMatch(2, 1)
	m.Lineups = []match.LineupEntry{
		{MatchID: "m1", TeamID: "home", PlayerID: "striker", IsStarter: true},
		{MatchID: "m1", TeamID: "home", PlayerID: "playmaker", IsStarter: true},
	}
	m.Events = []match.Event{
		{MatchID: "m1", TeamID: "home", Type: match.EventGoal, PlayerID: "striker", AssistPlayerID: "playmaker"},
		{MatchID: "m1", TeamID: "home", Type: match.EventGoal, PlayerID: "striker"},
	}

	got := ScoreMatches([]match.Match{m}, map[string]player.Position{
		"striker":   player.PositionForward,
		"playmaker": player.PositionMidfielder,
	})

	// Forward brace: appearance 2 + 4 + 4.
	striker := got["striker"]
	if striker.Total != 10 {
		t.Fatalf("striker total: got=%d want=10", striker.Total)
	}
	if striker.Breakdown[CategoryGoals] != 8 {
		t.Fatalf("striker goals breakdown: got=%d want=8", striker.Breakdown[CategoryGoals])
	}

	// One assist on top of the midfielder's appearance: 2 + 3.
	playmaker := got["playmaker"]
	if playmaker.Total != 5 {
		t.Fatalf("playmaker total: got=%d want=5", playmaker.Total)
	}
	if playmaker.Breakdown[CategoryAssists] != 3 {
		t.Fatalf("playmaker assists breakdown: got=%d want=3", playmaker.Breakdown[CategoryAssists])
	}
}

func TestScoreMatchesAppearance(t *testing.T) {
	m := finishedMatch(2, 1)
	m.Lineups = []match.LineupEntry{
		{MatchID: "m1", TeamID: "home", PlayerID: "starter", IsStarter: true},
		{MatchID: "m1", TeamID: "home", PlayerID: "sub-used", IsStarter: false},
		{MatchID: "m1", TeamID: "home", PlayerID: "sub-unused", IsStarter: false},
	}
	m.Events = []match.Event{
		{MatchID: "m1", TeamID: "home", Type: match.EventSubstitution, PlayerID: "sub-used", SubOutPlayerID: "starter"},
	}

	got := ScoreMatches([]match.Match{m}, map[string]player.Position{
		"starter":    player.PositionForward,
		"sub-used":   player.PositionForward,
		"sub-unused": player.PositionForward,
	})

	if got["starter"].Total != PointsStarter {
		t.Fatalf("starter: got=%d want=%d", got["starter"].Total, PointsStarter)
	}
	if got["sub-used"].Total != PointsSubOn {
		t.Fatalf("sub-used: got=%d want=%d", got["sub-used"].Total, PointsSubOn)
	}
	if _, ok := got["sub-unused"]; ok {
		t.Fatalf("unused bench player should earn nothing, got %+v", got["sub-unused"])
	}
}

func TestScoreMatchesCleanSheets(t *testing.T) {
	m := finishedMatch(1, 0)
	m.Lineups = []match.LineupEntry{
		{MatchID: "m1", TeamID: "home", PlayerID: "gk", IsStarter: true},
		{MatchID: "m1", TeamID: "home", PlayerID: "df", IsStarter: true},
		{MatchID: "m1", TeamID: "home", PlayerID: "mf", IsStarter: true},
		{MatchID: "m1", TeamID: "home", PlayerID: "fw", IsStarter: true},
		{MatchID: "m1", TeamID: "away", PlayerID: "away-df", IsStarter: true},
	}

	got := ScoreMatches([]match.Match{m}, map[string]player.Position{
		"gk":      player.PositionGoalkeeper,
		"df":      player.PositionDefender,
		"mf":      player.PositionMidfielder,
		"fw":      player.PositionForward,
		"away-df": player.PositionDefender,
	})

	if got["gk"].Breakdown[CategoryCleanSheet] != 4 {
		t.Fatalf("gk clean sheet: got=%d want=4", got["gk"].Breakdown[CategoryCleanSheet])
	}
	if got["df"].Breakdown[CategoryCleanSheet] != 4 {
		t.Fatalf("df clean sheet: got=%d want=4", got["df"].Breakdown[CategoryCleanSheet])
	}
	if got["mf"].Breakdown[CategoryCleanSheet] != 1 {
		t.Fatalf("mf clean sheet: got=%d want=1", got["mf"].Breakdown[CategoryCleanSheet])
	}
	if got["fw"].Breakdown[CategoryCleanSheet] != 0 {
		t.Fatalf("fw clean sheet: got=%d want=0", got["fw"].Breakdown[CategoryCleanSheet])
	}
	// Conceding side gets no clean sheet points.
	if got["away-df"].Breakdown[CategoryCleanSheet] != 0 {
		t.Fatalf("away-df clean sheet: got=%d want=0", got["away-df"].Breakdown[CategoryCleanSheet])
	}
}

func TestScoreMatchesAssistAndCards(t *testing.T) {
	m := finishedMatch(2, 2)
	m.Lineups = []match.LineupEntry{
		{MatchID: "m1", TeamID: "home", PlayerID: "scorer", IsStarter: true},
		{MatchID: "m1", TeamID: "home", PlayerID: "assister", IsStarter: true},
		{MatchID: "m1", TeamID: "away", PlayerID: "booked", IsStarter: true},
		{MatchID: "m1", TeamID: "away", PlayerID: "sent-off", IsStarter: true},
	}
	m.Events = []match.Event{
		{MatchID: "m1", TeamID: "home", Type: match.EventGoal, PlayerID: "scorer", AssistPlayerID: "assister"},
		{MatchID: "m1", TeamID: "away", Type: match.EventYellowCard, PlayerID: "booked"},
		{MatchID: "m1", TeamID: "away", Type: match.EventRedCard, PlayerID: "sent-off"},
	}

	got := ScoreMatches([]match.Match{m}, map[string]player.Position{
		"scorer":   player.PositionForward,
		"assister": player.PositionMidfielder,
		"booked":   player.PositionDefender,
		"sent-off": player.PositionDefender,
	})

	if got["assister"].Breakdown[CategoryAssists] != PointsAssist {
		t.Fatalf("assist: got=%d want=%d", got["assister"].Breakdown[CategoryAssists], PointsAssist)
	}
	if got["booked"].Total != PointsStarter+PointsYellowCard {
		t.Fatalf("yellow card total: got=%d want=%d", got["booked"].Total, PointsStarter+PointsYellowCard)
	}
	if got["sent-off"].Total != PointsStarter+PointsRedCard {
		t.Fatalf("red card total: got=%d want=%d", got["sent-off"].Total, PointsStarter+PointsRedCard)
	}
}

func TestScoreMatchesSkipsUnfinished(t *testing.T) {
	live := finishedMatch(1, 0)
	live.Status = match.StatusLive
	live.Lineups = []match.LineupEntry{
		{MatchID: "m1", TeamID: "home", PlayerID: "p1", IsStarter: true},
	}

	scheduled := match.Match{
		ID:         "m2",
		Status:     match.StatusFinished,
		HomeTeamID: "home",
		AwayTeamID: "away",
		Lineups: []match.LineupEntry{
			{MatchID: "m2", TeamID: "home", PlayerID: "p2", IsStarter: true},
		},
	}

	got := ScoreMatches([]match.Match{live, scheduled}, nil)
	if len(got) != 0 {
		t.Fatalf("expected no points from unfinished or scoreless matches, got %v", got)
	}
}

func TestScoreMatchesLineupPositionOverride(t *testing.T) {
	// The per-match lineup slot wins over the reference position.
	m := finishedMatch(1, 1)
	m.Lineups = []match.LineupEntry{
		{MatchID: "m1", TeamID: "home", PlayerID: "scorer", IsStarter: true, Position: player.PositionDefender},
	}
	m.Events = []match.Event{
		{MatchID: "m1", TeamID: "home", Type: match.EventGoal, PlayerID: "scorer"},
	}

	got := ScoreMatches([]match.Match{m}, map[string]player.Position{"scorer": player.PositionForward})
	want := PointsStarter + 6
	if got["scorer"].Total != want {
		t.Fatalf("unexpected total: got=%d want=%d", got["scorer"].Total, want)
	}
}

func TestPlayerPointsAppeared(t *testing.T) {
	pp := PlayerPoints{Breakdown: map[string]int{CategoryAppearance: PointsStarter}}
	if !pp.Appeared() {
		t.Fatalf("expected Appeared=true for a starter")
	}
	if (PlayerPoints{}).Appeared() {
		t.Fatalf("expected Appeared=false for a zero value")
	}
}
