package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kazfoot/kpl-fantasy/internal/domain/competition"
	"github.com/kazfoot/kpl-fantasy/internal/domain/match"
	"github.com/kazfoot/kpl-fantasy/internal/domain/player"
	"github.com/kazfoot/kpl-fantasy/internal/domain/team"
)

// External* types mirror the upstream fact provider's payloads, decoupled
// from its wire format.
type ExternalTeam struct {
	ID    string
	Name  string
	Short string
	City  string
}

type ExternalPlayer struct {
	ID       string
	TeamID   string
	Name     string
	Number   int
	Position string
	Price    int64
}

type ExternalEvent struct {
	ID             string
	TeamID         string
	Type           string
	Minute         int
	ExtraMinute    int
	PlayerID       string
	AssistPlayerID string
	SubOutPlayerID string
}

type ExternalLineupEntry struct {
	TeamID    string
	PlayerID  string
	IsStarter bool
	Position  string
}

type ExternalMatch struct {
	ID         string
	Round      int
	KickoffAt  time.Time
	Status     string
	HomeTeamID string
	AwayTeamID string
	HomeScore  *int
	AwayScore  *int
	Events     []ExternalEvent
	Lineups    []ExternalLineupEntry
}

// ExternalSnapshot is one competition's full fact set from the provider.
type ExternalSnapshot struct {
	Teams   []ExternalTeam
	Players []ExternalPlayer
	Matches []ExternalMatch
}

// FactProvider fetches match facts from the upstream stats feed.
type FactProvider interface {
	FetchSnapshot(ctx context.Context, competitionCode string, season int) (ExternalSnapshot, error)
}

// SyncResult summarizes one ingestion run.
type SyncResult struct {
	CompetitionID string
	Teams         int
	Players       int
	Matches       int
}

type FactSyncService struct {
	competitionRepo competition.Repository
	teamRepo        team.Repository
	playerRepo      player.Repository
	matchRepo       match.Repository
	provider        FactProvider
	logger          *slog.Logger
}

func NewFactSyncService(
	competitionRepo competition.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	matchRepo match.Repository,
	provider FactProvider,
	logger *slog.Logger,
) *FactSyncService {
	if logger == nil {
		logger = slog.Default()
	}

	return &FactSyncService{
		competitionRepo: competitionRepo,
		teamRepo:        teamRepo,
		playerRepo:      playerRepo,
		matchRepo:       matchRepo,
		provider:        provider,
		logger:          logger,
	}
}

// SyncCompetition pulls the provider snapshot for a competition and replaces
// the local fact store contents. Provider failures propagate unchanged; any
// retry policy belongs to the caller.
func (s *FactSyncService) SyncCompetition(ctx context.Context, competitionCode string) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FactSyncService.SyncCompetition")
	defer span.End()

	competitionCode = strings.TrimSpace(competitionCode)
	if competitionCode == "" {
		competitionCode = DefaultCompetitionCode
	}
	if s.provider == nil {
		return SyncResult{}, fmt.Errorf("%w: fact provider is not configured", ErrDependencyUnavailable)
	}

	comp, exists, err := s.competitionRepo.GetByCode(ctx, competitionCode)
	if err != nil {
		return SyncResult{}, fmt.Errorf("get competition by code: %w", err)
	}
	if !exists {
		return SyncResult{}, fmt.Errorf("%w: competition=%s", ErrNotFound, competitionCode)
	}

	snapshot, err := s.provider.FetchSnapshot(ctx, comp.Code, comp.Season)
	if err != nil {
		return SyncResult{}, fmt.Errorf("%w: fetch snapshot: %s", ErrDependencyUnavailable, err)
	}

	teams := make([]team.Team, 0, len(snapshot.Teams))
	for _, t := range snapshot.Teams {
		teams = append(teams, team.Team{
			ID:            t.ID,
			CompetitionID: comp.ID,
			Name:          t.Name,
			Short:         t.Short,
			City:          t.City,
		})
	}
	if err := s.teamRepo.UpsertTeams(ctx, teams); err != nil {
		return SyncResult{}, fmt.Errorf("upsert teams: %w", err)
	}

	players := make([]player.Player, 0, len(snapshot.Players))
	for _, p := range snapshot.Players {
		players = append(players, player.Player{
			ID:            p.ID,
			CompetitionID: comp.ID,
			TeamID:        p.TeamID,
			Name:          p.Name,
			Number:        p.Number,
			Position:      player.Position(p.Position),
			Price:         p.Price,
		})
	}
	if err := s.playerRepo.UpsertPlayers(ctx, players); err != nil {
		return SyncResult{}, fmt.Errorf("upsert players: %w", err)
	}

	matches := make([]match.Match, 0, len(snapshot.Matches))
	for _, m := range snapshot.Matches {
		matches = append(matches, mapExternalMatch(comp.ID, m))
	}
	if err := s.matchRepo.UpsertMatches(ctx, matches); err != nil {
		return SyncResult{}, fmt.Errorf("upsert matches: %w", err)
	}

	s.logger.InfoContext(ctx, "competition facts synced",
		"competition", comp.Code,
		"teams", len(teams),
		"players", len(players),
		"matches", len(matches),
	)

	return SyncResult{
		CompetitionID: comp.ID,
		Teams:         len(teams),
		Players:       len(players),
		Matches:       len(matches),
	}, nil
}

func mapExternalMatch(competitionID string, m ExternalMatch) match.Match {
	events := make([]match.Event, 0, len(m.Events))
	for _, ev := range m.Events {
		events = append(events, match.Event{
			ID:             ev.ID,
			MatchID:        m.ID,
			TeamID:         ev.TeamID,
			Type:           ev.Type,
			Minute:         ev.Minute,
			ExtraMinute:    ev.ExtraMinute,
			PlayerID:       ev.PlayerID,
			AssistPlayerID: ev.AssistPlayerID,
			SubOutPlayerID: ev.SubOutPlayerID,
		})
	}

	lineups := make([]match.LineupEntry, 0, len(m.Lineups))
	for _, entry := range m.Lineups {
		lineups = append(lineups, match.LineupEntry{
			MatchID:   m.ID,
			TeamID:    entry.TeamID,
			PlayerID:  entry.PlayerID,
			IsStarter: entry.IsStarter,
			Position:  player.Position(entry.Position),
		})
	}

	return match.Match{
		ID:            m.ID,
		CompetitionID: competitionID,
		Round:         m.Round,
		KickoffAt:     m.KickoffAt,
		Status:        match.NormalizeStatus(m.Status),
		HomeTeamID:    m.HomeTeamID,
		AwayTeamID:    m.AwayTeamID,
		HomeScore:     m.HomeScore,
		AwayScore:     m.AwayScore,
		Events:        events,
		Lineups:       lineups,
	}
}
