package memory

import (
	"time"

	"github.com/kazfoot/kpl-fantasy/internal/domain/competition"
	"github.com/kazfoot/kpl-fantasy/internal/domain/match"
	"github.com/kazfoot/kpl-fantasy/internal/domain/player"
	"github.com/kazfoot/kpl-fantasy/internal/domain/team"
)

const (
	CompetitionIDPremierLeague = "kz-kpl-2026"
	CompetitionIDFirstLeague   = "kz-first-2026"
)

func SeedCompetitions() []competition.Competition {
	return []competition.Competition{
		{
			ID:        CompetitionIDPremierLeague,
			Code:      "kpl",
			Name:      "Kazakhstan Premier League",
			Season:    2026,
			IsDefault: true,
		},
		{
			ID:        CompetitionIDFirstLeague,
			Code:      "first",
			Name:      "Kazakhstan First League",
			Season:    2026,
			IsDefault: false,
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "kz-astana", CompetitionID: CompetitionIDPremierLeague, Name: "FC Astana", Short: "AST", City: "Astana"},
		{ID: "kz-kairat", CompetitionID: CompetitionIDPremierLeague, Name: "Kairat", Short: "KRT", City: "Almaty"},
		{ID: "kz-tobol", CompetitionID: CompetitionIDPremierLeague, Name: "Tobol", Short: "TOB", City: "Kostanay"},
		{ID: "kz-aktobe", CompetitionID: CompetitionIDPremierLeague, Name: "Aktobe", Short: "AKT", City: "Aktobe"},
		{ID: "kz-ordabasy", CompetitionID: CompetitionIDPremierLeague, Name: "Ordabasy", Short: "ORD", City: "Shymkent"},
		{ID: "kz-zhetysu", CompetitionID: CompetitionIDFirstLeague, Name: "Zhetysu", Short: "ZHE", City: "Taldykorgan"},
		{ID: "kz-taraz", CompetitionID: CompetitionIDFirstLeague, Name: "Taraz", Short: "TRZ", City: "Taraz"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "kz-gk-01", CompetitionID: CompetitionIDPremierLeague, TeamID: "kz-astana", Name: "Mukhammedzhan Seysen", Number: 1, Position: player.PositionGoalkeeper, Price: 55},
		{ID: "kz-gk-02", CompetitionID: CompetitionIDPremierLeague, TeamID: "kz-kairat", Name: "Temirlan Anarbekov", Number: 1, Position: player.PositionGoalkeeper, Price: 52},
		{ID: "kz-gk-03", CompetitionID: CompetitionIDPremierLeague, TeamID: "kz-tobol", Name: "Igor Shatskiy", Number: 35, Position: player.PositionGoalkeeper, Price: 48},
		{ID: "kz-df-01", CompetitionID: CompetitionIDPremierLeague, TeamID: "kz-astana", Name: "Aleksandr Marochkin", Number: 4, Position: player.PositionDefender, Price: 58},
		{ID: "kz-df-02", CompetitionID: CompetitionIDPremierLeague, TeamID: "kz-kairat", Name: "Nuraly Alip", Number: 5, Position: player.PositionDefender, Price: 62},
		{ID: "kz-df-03", CompetitionID: CompetitionIDPremierLeague, TeamID: "kz-tobol", Name: "Sultan Sagnayev", Number: 3, Position: player.PositionDefender, Price: 50},
		{ID: "kz-df-04", CompetitionID: CompetitionIDPremierLeague, TeamID: "kz-aktobe", Name: "Erkin Tapalov", Number: 2, Position: player.PositionDefender, Price: 46},
		{ID: "kz-df-05", CompetitionID: CompetitionIDPremierLeague, TeamID: "kz-ordabasy", Name: "Aslan Darabayev", Number: 21, Position: player.PositionDefender, Price: 44},
		{ID: "kz-df-06", CompetitionID: CompetitionIDPremierLeague, TeamID: "kz-ordabasy", Name: "Bagdat Kairov", Number: 15, Position: player.PositionDefender, Price: 42},
		{ID: "kz-mf-01", CompetitionID: CompetitionIDPremierLeague, TeamID: "kz-astana", Name: "Marat Bystrov", Number: 8, Position: player.PositionMidfielder, Price: 68},
		{ID: "kz-mf-02", CompetitionID: CompetitionIDPremierLeague, TeamID: "kz-kairat", Name: "Olzhas Baybek", Number: 10, Position: player.PositionMidfielder, Price: 72},
		{ID: "kz-mf-03", CompetitionID: CompetitionIDPremierLeague, TeamID: "kz-tobol", Name: "Askhat Tagybergen", Number: 17, Position: player.PositionMidfielder, Price: 74},
		{ID: "kz-mf-04", CompetitionID: CompetitionIDPremierLeague, TeamID: "kz-aktobe", Name: "Daniyar Usenov", Number: 6, Position: player.PositionMidfielder, Price: 54},
		{ID: "kz-mf-05", CompetitionID: CompetitionIDPremierLeague, TeamID: "kz-ordabasy", Name: "Erasyl Akhanton", Number: 14, Position: player.PositionMidfielder, Price: 49},
		{ID: "kz-mf-06", CompetitionID: CompetitionIDPremierLeague, TeamID: "kz-aktobe", Name: "Talgat Kusyapov", Number: 18, Position: player.PositionMidfielder, Price: 45},
		{ID: "kz-fw-01", CompetitionID: CompetitionIDPremierLeague, TeamID: "kz-astana", Name: "Abat Aymbetov", Number: 9, Position: player.PositionForward, Price: 82},
		{ID: "kz-fw-02", CompetitionID: CompetitionIDPremierLeague, TeamID: "kz-kairat", Name: "Dastan Satpaev", Number: 19, Position: player.PositionForward, Price: 88},
		{ID: "kz-fw-03", CompetitionID: CompetitionIDPremierLeague, TeamID: "kz-tobol", Name: "Serikzhan Muzhikov", Number: 11, Position: player.PositionForward, Price: 64},
		{ID: "kz-fw-04", CompetitionID: CompetitionIDPremierLeague, TeamID: "kz-ordabasy", Name: "Maxim Fedin", Number: 7, Position: player.PositionForward, Price: 60},
		{ID: "kz-df-07", CompetitionID: CompetitionIDPremierLeague, TeamID: "kz-aktobe", Name: "Bekzat Shadmanov", Number: 13, Position: player.PositionDefender, Price: 40},
	}
}

func SeedMatches() []match.Match {
	homeWin := 2
	awayLoss := 1
	nilNil := 0

	return []match.Match{
		{
			ID:            "mt-kpl-001",
			CompetitionID: CompetitionIDPremierLeague,
			Round:         1,
			KickoffAt:     time.Date(2026, 3, 7, 15, 0, 0, 0, time.UTC),
			Status:        match.StatusFinished,
			HomeTeamID:    "kz-astana",
			AwayTeamID:    "kz-kairat",
			HomeScore:     &homeWin,
			AwayScore:     &awayLoss,
			Lineups: []match.LineupEntry{
				{MatchID: "mt-kpl-001", TeamID: "kz-astana", PlayerID: "kz-gk-01", IsStarter: true},
				{MatchID: "mt-kpl-001", TeamID: "kz-astana", PlayerID: "kz-df-01", IsStarter: true},
				{MatchID: "mt-kpl-001", TeamID: "kz-astana", PlayerID: "kz-mf-01", IsStarter: true},
				{MatchID: "mt-kpl-001", TeamID: "kz-astana", PlayerID: "kz-fw-01", IsStarter: true},
				{MatchID: "mt-kpl-001", TeamID: "kz-kairat", PlayerID: "kz-gk-02", IsStarter: true},
				{MatchID: "mt-kpl-001", TeamID: "kz-kairat", PlayerID: "kz-df-02", IsStarter: true},
				{MatchID: "mt-kpl-001", TeamID: "kz-kairat", PlayerID: "kz-mf-02", IsStarter: true},
				{MatchID: "mt-kpl-001", TeamID: "kz-kairat", PlayerID: "kz-fw-02", IsStarter: false},
			},
			Events: []match.Event{
				{ID: "ev-001", MatchID: "mt-kpl-001", TeamID: "kz-astana", Type: match.EventGoal, Minute: 23, PlayerID: "kz-fw-01", AssistPlayerID: "kz-mf-01"},
				{ID: "ev-002", MatchID: "mt-kpl-001", TeamID: "kz-astana", Type: match.EventGoal, Minute: 58, PlayerID: "kz-mf-01"},
				{ID: "ev-003", MatchID: "mt-kpl-001", TeamID: "kz-kairat", Type: match.EventSubstitution, Minute: 61, PlayerID: "kz-fw-02", SubOutPlayerID: "kz-mf-02"},
				{ID: "ev-004", MatchID: "mt-kpl-001", TeamID: "kz-kairat", Type: match.EventGoal, Minute: 77, PlayerID: "kz-fw-02"},
				{ID: "ev-005", MatchID: "mt-kpl-001", TeamID: "kz-kairat", Type: match.EventYellowCard, Minute: 84, PlayerID: "kz-df-02"},
			},
		},
		{
			ID:            "mt-kpl-002",
			CompetitionID: CompetitionIDPremierLeague,
			Round:         1,
			KickoffAt:     time.Date(2026, 3, 8, 13, 0, 0, 0, time.UTC),
			Status:        match.StatusFinished,
			HomeTeamID:    "kz-tobol",
			AwayTeamID:    "kz-aktobe",
			HomeScore:     &nilNil,
			AwayScore:     &nilNil,
			Lineups: []match.LineupEntry{
				{MatchID: "mt-kpl-002", TeamID: "kz-tobol", PlayerID: "kz-gk-03", IsStarter: true},
				{MatchID: "mt-kpl-002", TeamID: "kz-tobol", PlayerID: "kz-df-03", IsStarter: true},
				{MatchID: "mt-kpl-002", TeamID: "kz-tobol", PlayerID: "kz-mf-03", IsStarter: true},
				{MatchID: "mt-kpl-002", TeamID: "kz-aktobe", PlayerID: "kz-df-04", IsStarter: true},
				{MatchID: "mt-kpl-002", TeamID: "kz-aktobe", PlayerID: "kz-mf-04", IsStarter: true},
			},
			Events: []match.Event{
				{ID: "ev-006", MatchID: "mt-kpl-002", TeamID: "kz-aktobe", Type: match.EventRedCard, Minute: 88, PlayerID: "kz-mf-04"},
			},
		},
		{
			ID:            "mt-kpl-003",
			CompetitionID: CompetitionIDPremierLeague,
			Round:         2,
			KickoffAt:     time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC),
			Status:        match.StatusScheduled,
			HomeTeamID:    "kz-ordabasy",
			AwayTeamID:    "kz-astana",
		},
		{
			ID:            "mt-kpl-004",
			CompetitionID: CompetitionIDPremierLeague,
			Round:         2,
			KickoffAt:     time.Date(2026, 3, 15, 13, 0, 0, 0, time.UTC),
			Status:        match.StatusScheduled,
			HomeTeamID:    "kz-kairat",
			AwayTeamID:    "kz-tobol",
		},
	}
}
