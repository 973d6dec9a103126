package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/kazfoot/kpl-fantasy/internal/domain/fantasy"
	"github.com/kazfoot/kpl-fantasy/internal/domain/match"
	"github.com/kazfoot/kpl-fantasy/internal/domain/player"
	"github.com/kazfoot/kpl-fantasy/internal/domain/scoring"
)

const scoringWorkerCount = 8

// ScoreRoundResult summarizes one scoring run. NoOp is set when the round had
// no finished matches: nothing was written and that is not an error.
type ScoreRoundResult struct {
	Round            int
	MatchesProcessed int
	TeamsUpdated     int
	NoOp             bool
}

// PlayerBreakdownRow is one pick's scoring detail for a round.
type PlayerBreakdownRow struct {
	PlayerID      string
	PlayerName    string
	Position      player.Position
	IsCaptain     bool
	IsViceCaptain bool
	Multiplier    int
	BasePoints    int
	CountedPoints int
	Breakdown     map[string]int
}

// GameweekBreakdownResult is the read-side per-player view for one team and
// round. The numbers come from the same engine the write path uses.
type GameweekBreakdownResult struct {
	FantasyTeamID string
	Round         int
	Total         int
	Players       []PlayerBreakdownRow
}

type ScoringService struct {
	matchRepo   match.Repository
	playerRepo  player.Repository
	fantasyRepo fantasy.Repository
	scoringRepo scoring.Repository
	logger      *slog.Logger
	now         func() time.Time
}

func NewScoringService(
	matchRepo match.Repository,
	playerRepo player.Repository,
	fantasyRepo fantasy.Repository,
	scoringRepo scoring.Repository,
	logger *slog.Logger,
) *ScoringService {
	if logger == nil {
		logger = slog.Default()
	}

	return &ScoringService{
		matchRepo:   matchRepo,
		playerRepo:  playerRepo,
		fantasyRepo: fantasyRepo,
		scoringRepo: scoringRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// ScoreRound computes and persists gameweek points for every fantasy team in
// the competition, then resums each team's running total from all of its
// gameweek rows. Re-running with unchanged match data overwrites rows with
// identical values, so the operation is idempotent.
func (s *ScoringService) ScoreRound(ctx context.Context, competitionID string, round int) (ScoreRoundResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.ScoreRound")
	defer span.End()

	competitionID = strings.TrimSpace(competitionID)
	if competitionID == "" {
		return ScoreRoundResult{}, fmt.Errorf("%w: competition id is required", ErrValidationFailed)
	}
	if round <= 0 {
		return ScoreRoundResult{}, fmt.Errorf("%w: round must be greater than zero", ErrValidationFailed)
	}

	playerPoints, matchCount, err := s.roundPlayerPoints(ctx, competitionID, round)
	if err != nil {
		return ScoreRoundResult{}, err
	}
	if matchCount == 0 {
		s.logger.InfoContext(ctx, "score round skipped, no finished matches",
			"competition_id", competitionID,
			"round", round,
		)
		return ScoreRoundResult{Round: round, NoOp: true}, nil
	}

	teams, err := s.fantasyRepo.ListByCompetition(ctx, competitionID)
	if err != nil {
		return ScoreRoundResult{}, fmt.Errorf("list fantasy teams: %w", err)
	}

	now := s.now().UTC()

	pool, err := ants.NewPool(scoringWorkerCount)
	if err != nil {
		return ScoreRoundResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	errs := make(chan error, len(teams))
	for _, fteam := range teams {
		fteam := fteam
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			errs <- s.scoreTeam(ctx, fteam, round, playerPoints, now)
		}); err != nil {
			workers.Done()
			return ScoreRoundResult{}, fmt.Errorf("submit team to worker pool: %w", err)
		}
	}
	workers.Wait()
	close(errs)

	for workerErr := range errs {
		if workerErr != nil {
			return ScoreRoundResult{}, workerErr
		}
	}

	s.logger.InfoContext(ctx, "round scored",
		"competition_id", competitionID,
		"round", round,
		"matches_processed", matchCount,
		"teams_updated", len(teams),
	)

	return ScoreRoundResult{
		Round:            round,
		MatchesProcessed: matchCount,
		TeamsUpdated:     len(teams),
	}, nil
}

func (s *ScoringService) scoreTeam(
	ctx context.Context,
	fteam fantasy.Team,
	round int,
	playerPoints map[string]scoring.PlayerPoints,
	now time.Time,
) error {
	points := gameweekTotal(fteam, playerPoints)

	if err := s.scoringRepo.UpsertGameweekRow(ctx, scoring.GameweekRow{
		FantasyTeamID: fteam.ID,
		Round:         round,
		Points:        points,
		CalculatedAt:  now,
	}); err != nil {
		return fmt.Errorf("upsert gameweek row team=%s round=%d: %w", fteam.ID, round, err)
	}

	rows, err := s.scoringRepo.ListGameweekRowsByTeam(ctx, fteam.ID)
	if err != nil {
		return fmt.Errorf("list gameweek rows team=%s: %w", fteam.ID, err)
	}
	total := 0
	for _, row := range rows {
		total += row.Points
	}

	if err := s.fantasyRepo.UpdateTotalPoints(ctx, fteam.ID, total); err != nil {
		return fmt.Errorf("update total points team=%s: %w", fteam.ID, err)
	}
	return nil
}

// GameweekBreakdown recomputes per-player figures for one team and round
// without writing anything. It shares roundPlayerPoints with ScoreRound so
// both paths always agree.
func (s *ScoringService) GameweekBreakdown(ctx context.Context, fantasyTeamID string, round int) (GameweekBreakdownResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.GameweekBreakdown")
	defer span.End()

	fantasyTeamID = strings.TrimSpace(fantasyTeamID)
	if fantasyTeamID == "" {
		return GameweekBreakdownResult{}, fmt.Errorf("%w: fantasy team id is required", ErrValidationFailed)
	}
	if round <= 0 {
		return GameweekBreakdownResult{}, fmt.Errorf("%w: round must be greater than zero", ErrValidationFailed)
	}

	fteam, exists, err := s.fantasyRepo.GetByID(ctx, fantasyTeamID)
	if err != nil {
		return GameweekBreakdownResult{}, fmt.Errorf("get fantasy team: %w", err)
	}
	if !exists {
		return GameweekBreakdownResult{}, fmt.Errorf("%w: fantasy team=%s", ErrNotFound, fantasyTeamID)
	}

	playerPoints, _, err := s.roundPlayerPoints(ctx, fteam.CompetitionID, round)
	if err != nil {
		return GameweekBreakdownResult{}, err
	}

	playerIDs := make([]string, 0, len(fteam.Picks))
	for _, pick := range fteam.Picks {
		playerIDs = append(playerIDs, pick.PlayerID)
	}
	players, err := s.playerRepo.GetByIDs(ctx, playerIDs)
	if err != nil {
		return GameweekBreakdownResult{}, fmt.Errorf("get pick players: %w", err)
	}
	namesByID := make(map[string]string, len(players))
	for _, p := range players {
		namesByID[p.ID] = p.Name
	}

	captainPlayed := captainAppeared(fteam, playerPoints)

	rows := make([]PlayerBreakdownRow, 0, len(fteam.Picks))
	total := 0
	for _, pick := range fteam.Picks {
		pp := playerPoints[pick.PlayerID]
		multiplier := pickMultiplier(pick, captainPlayed)
		counted := pp.Total * multiplier
		total += counted

		rows = append(rows, PlayerBreakdownRow{
			PlayerID:      pick.PlayerID,
			PlayerName:    namesByID[pick.PlayerID],
			Position:      pick.Position,
			IsCaptain:     pick.IsCaptain,
			IsViceCaptain: pick.IsViceCaptain,
			Multiplier:    multiplier,
			BasePoints:    pp.Total,
			CountedPoints: counted,
			Breakdown:     pp.Breakdown,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Position != rows[j].Position {
			return positionOrder(rows[i].Position) < positionOrder(rows[j].Position)
		}
		return rows[i].PlayerID < rows[j].PlayerID
	})

	return GameweekBreakdownResult{
		FantasyTeamID: fantasyTeamID,
		Round:         round,
		Total:         total,
		Players:       rows,
	}, nil
}

// roundPlayerPoints is the single entry point into the scoring engine for
// both the write path and the breakdown read path.
func (s *ScoringService) roundPlayerPoints(ctx context.Context, competitionID string, round int) (map[string]scoring.PlayerPoints, int, error) {
	matches, err := s.matchRepo.ListFinishedByRound(ctx, competitionID, round)
	if err != nil {
		return nil, 0, fmt.Errorf("list finished matches: %w", err)
	}
	if len(matches) == 0 {
		return map[string]scoring.PlayerPoints{}, 0, nil
	}

	playerIDs := make([]string, 0, len(matches)*36)
	seen := make(map[string]struct{})
	for _, m := range matches {
		for _, entry := range m.Lineups {
			if _, ok := seen[entry.PlayerID]; ok {
				continue
			}
			seen[entry.PlayerID] = struct{}{}
			playerIDs = append(playerIDs, entry.PlayerID)
		}
	}

	players, err := s.playerRepo.GetByIDs(ctx, playerIDs)
	if err != nil {
		return nil, 0, fmt.Errorf("get lineup players: %w", err)
	}
	referencePositions := make(map[string]player.Position, len(players))
	for _, p := range players {
		referencePositions[p.ID] = p.Position
	}

	return scoring.ScoreMatches(matches, referencePositions), len(matches), nil
}

func gameweekTotal(fteam fantasy.Team, playerPoints map[string]scoring.PlayerPoints) int {
	captainPlayed := captainAppeared(fteam, playerPoints)

	total := 0
	for _, pick := range fteam.Picks {
		pp, ok := playerPoints[pick.PlayerID]
		if !ok {
			continue
		}
		total += pp.Total * pickMultiplier(pick, captainPlayed)
	}
	return total
}

func captainAppeared(fteam fantasy.Team, playerPoints map[string]scoring.PlayerPoints) bool {
	captain, ok := fteam.Captain()
	if !ok {
		return false
	}
	return playerPoints[captain.PlayerID].Appeared()
}

// pickMultiplier doubles the captain when they played, otherwise the
// vice-captain stands in as automatic fallback captain.
func pickMultiplier(pick fantasy.Pick, captainPlayed bool) int {
	if pick.IsCaptain && captainPlayed {
		return 2
	}
	if pick.IsViceCaptain && !captainPlayed {
		return 2
	}
	return 1
}

func positionOrder(pos player.Position) int {
	switch pos {
	case player.PositionGoalkeeper:
		return 0
	case player.PositionDefender:
		return 1
	case player.PositionMidfielder:
		return 2
	default:
		return 3
	}
}
