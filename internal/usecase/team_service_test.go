package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/kazfoot/kpl-fantasy/internal/domain/competition"
	"github.com/kazfoot/kpl-fantasy/internal/domain/team"
	"github.com/kazfoot/kpl-fantasy/internal/infrastructure/repository/memory"
)

func newTeamFixture() *TeamService {
	comps := []competition.Competition{
		{ID: "kz-kpl-2026", Code: "kpl", Name: "Premier League", Season: 2026, IsDefault: true},
		{ID: "kz-first-2026", Code: "first", Name: "First League", Season: 2026},
	}
	teams := []team.Team{
		{ID: "tobol", CompetitionID: "kz-kpl-2026", Name: "Tobol", Short: "TOB", City: "Kostanay"},
		{ID: "astana", CompetitionID: "kz-kpl-2026", Name: "FC Astana", Short: "AST", City: "Astana"},
		{ID: "zhetysu", CompetitionID: "kz-first-2026", Name: "Zhetysu", Short: "ZHE", City: "Taldykorgan"},
	}
	return NewTeamService(memory.NewCompetitionRepository(comps), memory.NewTeamRepository(teams))
}

func TestTeamService_ListCompetitions(t *testing.T) {
	t.Parallel()

	service := newTeamFixture()

	comps, err := service.ListCompetitions(context.Background())
	if err != nil {
		t.Fatalf("ListCompetitions error: %v", err)
	}
	if len(comps) != 2 {
		t.Fatalf("expected 2 competitions, got %d", len(comps))
	}
}

func TestTeamService_GetCompetitionByCode(t *testing.T) {
	t.Parallel()

	service := newTeamFixture()

	t.Run("explicit code", func(t *testing.T) {
		comp, err := service.GetCompetitionByCode(context.Background(), "first")
		if err != nil {
			t.Fatalf("GetCompetitionByCode error: %v", err)
		}
		if comp.ID != "kz-first-2026" {
			t.Fatalf("unexpected competition: %+v", comp)
		}
	})

	t.Run("empty code falls back to default", func(t *testing.T) {
		comp, err := service.GetCompetitionByCode(context.Background(), "  ")
		if err != nil {
			t.Fatalf("GetCompetitionByCode error: %v", err)
		}
		if comp.Code != DefaultCompetitionCode {
			t.Fatalf("expected default competition, got %+v", comp)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := service.GetCompetitionByCode(context.Background(), "serie-a")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestTeamService_ListTeams_SortedAndScoped(t *testing.T) {
	t.Parallel()

	service := newTeamFixture()

	teams, err := service.ListTeams(context.Background(), "kpl")
	if err != nil {
		t.Fatalf("ListTeams error: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}
	if teams[0].Name != "FC Astana" || teams[1].Name != "Tobol" {
		t.Fatalf("expected teams sorted by name, got %+v", teams)
	}
}

func TestTeamService_GetTeam(t *testing.T) {
	t.Parallel()

	service := newTeamFixture()

	got, err := service.GetTeam(context.Background(), "kpl", "tobol")
	if err != nil {
		t.Fatalf("GetTeam error: %v", err)
	}
	if got.City != "Kostanay" {
		t.Fatalf("unexpected team: %+v", got)
	}

	// A team cannot be read through another competition's code.
	if _, err := service.GetTeam(context.Background(), "first", "tobol"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for cross-competition read, got %v", err)
	}
}
