package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kazfoot/kpl-fantasy/internal/domain/competition"
	"github.com/kazfoot/kpl-fantasy/internal/domain/match"
	"github.com/kazfoot/kpl-fantasy/internal/domain/team"
	"github.com/kazfoot/kpl-fantasy/internal/infrastructure/repository/memory"
	"github.com/kazfoot/kpl-fantasy/internal/platform/cache"
)

func newStandingFixture(store *cache.Store) (*StandingService, *memory.MatchRepository) {
	comps := []competition.Competition{
		{ID: "kz-kpl-2026", Code: "kpl", Name: "Premier League", Season: 2026, IsDefault: true},
	}
	teams := []team.Team{
		{ID: "astana", CompetitionID: "kz-kpl-2026", Name: "FC Astana"},
		{ID: "kairat", CompetitionID: "kz-kpl-2026", Name: "Kairat"},
		{ID: "tobol", CompetitionID: "kz-kpl-2026", Name: "Tobol"},
	}
	home, away := 2, 0
	matchRepo := memory.NewMatchRepository([]match.Match{{
		ID:            "mt-1",
		CompetitionID: "kz-kpl-2026",
		Round:         1,
		Status:        match.StatusFinished,
		HomeTeamID:    "astana",
		AwayTeamID:    "kairat",
		HomeScore:     &home,
		AwayScore:     &away,
	}})

	service := NewStandingService(
		memory.NewCompetitionRepository(comps),
		matchRepo,
		memory.NewTeamRepository(teams),
		store,
	)
	return service, matchRepo
}

func TestStandingService_Standings(t *testing.T) {
	t.Parallel()

	service, _ := newStandingFixture(nil)

	rows, err := service.Standings(context.Background(), "kpl")
	if err != nil {
		t.Fatalf("Standings error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].TeamID != "astana" || rows[0].Points != 3 {
		t.Fatalf("unexpected leader: %+v", rows[0])
	}
	// Tobol has not played yet but still gets a row, and ranks above the
	// beaten side on goal difference.
	if rows[1].TeamID != "tobol" || rows[1].Played != 0 {
		t.Fatalf("expected an all-zero row for the idle club: %+v", rows[1])
	}
}

func TestStandingService_Standings_CachedResultReused(t *testing.T) {
	t.Parallel()

	store := cache.NewStore(time.Minute)
	service, matchRepo := newStandingFixture(store)

	first, err := service.Standings(context.Background(), "kpl")
	if err != nil {
		t.Fatalf("Standings error: %v", err)
	}

	// A new result lands after the first computation; the cached table is
	// served until the TTL expires.
	home, away := 1, 0
	if err := matchRepo.UpsertMatches(context.Background(), []match.Match{{
		ID:            "mt-2",
		CompetitionID: "kz-kpl-2026",
		Round:         1,
		Status:        match.StatusFinished,
		HomeTeamID:    "tobol",
		AwayTeamID:    "kairat",
		HomeScore:     &home,
		AwayScore:     &away,
	}}); err != nil {
		t.Fatalf("upsert match: %v", err)
	}

	second, err := service.Standings(context.Background(), "kpl")
	if err != nil {
		t.Fatalf("Standings error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("cached standings changed size: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("expected cached standings, row %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestStandingService_Standings_UnknownCompetition(t *testing.T) {
	t.Parallel()

	service, _ := newStandingFixture(nil)

	_, err := service.Standings(context.Background(), "laliga")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
