package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/kazfoot/kpl-fantasy/internal/domain/competition"
	"github.com/kazfoot/kpl-fantasy/internal/domain/team"
	competitionmock "github.com/kazfoot/kpl-fantasy/internal/mocks/domain/competition"
	teammock "github.com/kazfoot/kpl-fantasy/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

func TestTeamService_ListTeams_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	competitionRepo := competitionmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	service := NewTeamService(competitionRepo, teamRepo)
	comp := competition.Competition{ID: "kz-kpl-2026", Code: "kpl", Name: "Premier League", Season: 2026, IsDefault: true}
	storedTeams := []team.Team{
		{ID: "tobol", CompetitionID: comp.ID, Name: "Tobol", Short: "TOB", City: "Kostanay"},
		{ID: "astana", CompetitionID: comp.ID, Name: "FC Astana", Short: "AST", City: "Astana"},
	}

	competitionRepo.
		On("GetByCode", mock.Anything, "kpl").
		Return(comp, true, nil).
		Once()
	teamRepo.
		On("ListByCompetition", mock.Anything, comp.ID).
		Return(storedTeams, nil).
		Once()

	got, err := service.ListTeams(ctx, "kpl")
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(got) != len(storedTeams) {
		t.Fatalf("unexpected team count: got=%d want=%d", len(got), len(storedTeams))
	}
	if got[0].ID != "astana" {
		t.Fatalf("expected name-sorted teams, got first=%s", got[0].ID)
	}
}

func TestTeamService_ListTeams_CompetitionNotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	competitionRepo := competitionmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	service := NewTeamService(competitionRepo, teamRepo)

	competitionRepo.
		On("GetByCode", mock.Anything, "ligue-1").
		Return(competition.Competition{}, false, nil).
		Once()

	_, err := service.ListTeams(context.Background(), "ligue-1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamService_GetTeam_RepoErrorUsingMockery(t *testing.T) {
	t.Parallel()

	competitionRepo := competitionmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	service := NewTeamService(competitionRepo, teamRepo)
	comp := competition.Competition{ID: "kz-kpl-2026", Code: "kpl"}
	repoErr := errors.New("connection reset")

	competitionRepo.
		On("GetByCode", mock.Anything, "kpl").
		Return(comp, true, nil).
		Once()
	teamRepo.
		On("GetByID", mock.Anything, comp.ID, "tobol").
		Return(team.Team{}, false, repoErr).
		Once()

	_, err := service.GetTeam(context.Background(), "kpl", "tobol")
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}
