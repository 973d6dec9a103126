package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kazfoot/kpl-fantasy/internal/domain/match"
	"github.com/kazfoot/kpl-fantasy/internal/domain/player"
	qb "github.com/kazfoot/kpl-fantasy/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListByCompetition(ctx context.Context, competitionID string) ([]match.Match, error) {
	return r.list(ctx,
		qb.Eq("competition_public_id", competitionID),
		qb.IsNull("deleted_at"),
	)
}

func (r *MatchRepository) ListFinishedByRound(ctx context.Context, competitionID string, round int) ([]match.Match, error) {
	return r.list(ctx,
		qb.Eq("competition_public_id", competitionID),
		qb.Eq("round", round),
		qb.Eq("status", match.StatusFinished),
		qb.IsNull("deleted_at"),
	)
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}

	matches, err := r.attachDetails(ctx, []match.Match{toMatch(row)})
	if err != nil {
		return match.Match{}, false, err
	}

	return matches[0], true, nil
}

func (r *MatchRepository) HasLiveMatch(ctx context.Context, competitionID string) (bool, error) {
	query, args, err := qb.Select("1").From("matches").
		Where(
			qb.Eq("competition_public_id", competitionID),
			qb.Eq("status", match.StatusLive),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build live match query: %w", err)
	}

	var one int
	if err := r.db.GetContext(ctx, &one, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check live match: %w", err)
	}

	return true, nil
}

func (r *MatchRepository) list(ctx context.Context, conditions ...qb.Condition) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(conditions...).
		OrderBy("round", "kickoff_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, toMatch(row))
	}

	return r.attachDetails(ctx, out)
}

// attachDetails loads events and lineups for the given matches in two bulk
// queries and fans them back out by match id.
func (r *MatchRepository) attachDetails(ctx context.Context, matches []match.Match) ([]match.Match, error) {
	if len(matches) == 0 {
		return matches, nil
	}

	ids := make([]any, 0, len(matches))
	index := make(map[string]int, len(matches))
	for i, m := range matches {
		ids = append(ids, m.ID)
		index[m.ID] = i
	}

	eventsQuery, eventsArgs, err := qb.Select("*").From("match_events").
		Where(qb.In("match_public_id", ids)).
		OrderBy("minute", "extra_minute", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match events query: %w", err)
	}

	var eventRows []matchEventTableModel
	if err := r.db.SelectContext(ctx, &eventRows, eventsQuery, eventsArgs...); err != nil {
		return nil, fmt.Errorf("select match events: %w", err)
	}
	for _, row := range eventRows {
		i, ok := index[row.MatchID]
		if !ok {
			continue
		}
		matches[i].Events = append(matches[i].Events, match.Event{
			ID:             row.PublicID,
			MatchID:        row.MatchID,
			TeamID:         row.TeamID,
			Type:           row.EventType,
			Minute:         row.Minute,
			ExtraMinute:    row.ExtraMinute,
			PlayerID:       row.PlayerID,
			AssistPlayerID: row.AssistPlayerID.String,
			SubOutPlayerID: row.SubOutPlayerID.String,
		})
	}

	lineupsQuery, lineupsArgs, err := qb.Select("*").From("match_lineups").
		Where(qb.In("match_public_id", ids)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match lineups query: %w", err)
	}

	var lineupRows []matchLineupTableModel
	if err := r.db.SelectContext(ctx, &lineupRows, lineupsQuery, lineupsArgs...); err != nil {
		return nil, fmt.Errorf("select match lineups: %w", err)
	}
	for _, row := range lineupRows {
		i, ok := index[row.MatchID]
		if !ok {
			continue
		}
		matches[i].Lineups = append(matches[i].Lineups, match.LineupEntry{
			MatchID:   row.MatchID,
			TeamID:    row.TeamID,
			PlayerID:  row.PlayerID,
			IsStarter: row.IsStarter,
			Position:  player.Position(row.Position.String),
		})
	}

	return matches, nil
}

// UpsertMatches replaces each match wholesale: the match row is upserted and
// its events and lineups are deleted and reinserted from the incoming facts.
func (r *MatchRepository) UpsertMatches(ctx context.Context, matches []match.Match) error {
	if len(matches) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for matches upsert: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, m := range matches {
		if err := upsertMatchTx(ctx, tx, m); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit matches upsert tx: %w", err)
	}

	return nil
}

func upsertMatchTx(ctx context.Context, tx *sqlx.Tx, m match.Match) error {
	const upsertMatchQuery = `
INSERT INTO matches (
    public_id,
    competition_public_id,
    round,
    kickoff_at,
    status,
    home_team_public_id,
    away_team_public_id,
    home_score,
    away_score
) VALUES (
    :public_id, :competition_public_id, :round, :kickoff_at, :status,
    :home_team_public_id, :away_team_public_id, :home_score, :away_score
)
ON CONFLICT (public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    competition_public_id = EXCLUDED.competition_public_id,
    round = EXCLUDED.round,
    kickoff_at = EXCLUDED.kickoff_at,
    status = EXCLUDED.status,
    home_team_public_id = EXCLUDED.home_team_public_id,
    away_team_public_id = EXCLUDED.away_team_public_id,
    home_score = EXCLUDED.home_score,
    away_score = EXCLUDED.away_score,
    updated_at = NOW()`

	query, args, err := sqlx.Named(upsertMatchQuery, map[string]any{
		"public_id":             m.ID,
		"competition_public_id": m.CompetitionID,
		"round":                 m.Round,
		"kickoff_at":            m.KickoffAt,
		"status":                match.NormalizeStatus(m.Status),
		"home_team_public_id":   m.HomeTeamID,
		"away_team_public_id":   m.AwayTeamID,
		"home_score":            m.HomeScore,
		"away_score":            m.AwayScore,
	})
	if err != nil {
		return fmt.Errorf("bind upsert match id=%s query: %w", m.ID, err)
	}
	query = tx.Rebind(query)
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert match id=%s: %w", m.ID, err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM match_events WHERE match_public_id = $1", m.ID); err != nil {
		return fmt.Errorf("clear events for match id=%s: %w", m.ID, err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM match_lineups WHERE match_public_id = $1", m.ID); err != nil {
		return fmt.Errorf("clear lineups for match id=%s: %w", m.ID, err)
	}

	const insertEventQuery = `
INSERT INTO match_events (
    public_id,
    match_public_id,
    team_public_id,
    event_type,
    minute,
    extra_minute,
    player_public_id,
    assist_player_public_id,
    sub_out_player_public_id
) VALUES (
    :public_id, :match_public_id, :team_public_id, :event_type, :minute,
    :extra_minute, :player_public_id, :assist_player_public_id, :sub_out_player_public_id
)`

	for _, ev := range m.Events {
		query, args, err := sqlx.Named(insertEventQuery, map[string]any{
			"public_id":                ev.ID,
			"match_public_id":          m.ID,
			"team_public_id":           ev.TeamID,
			"event_type":               ev.Type,
			"minute":                   ev.Minute,
			"extra_minute":             ev.ExtraMinute,
			"player_public_id":         ev.PlayerID,
			"assist_player_public_id":  nullableString(ev.AssistPlayerID),
			"sub_out_player_public_id": nullableString(ev.SubOutPlayerID),
		})
		if err != nil {
			return fmt.Errorf("bind insert event id=%s query: %w", ev.ID, err)
		}
		query = tx.Rebind(query)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert event id=%s: %w", ev.ID, err)
		}
	}

	const insertLineupQuery = `
INSERT INTO match_lineups (
    match_public_id,
    team_public_id,
    player_public_id,
    is_starter,
    position
) VALUES (:match_public_id, :team_public_id, :player_public_id, :is_starter, :position)`

	for _, entry := range m.Lineups {
		query, args, err := sqlx.Named(insertLineupQuery, map[string]any{
			"match_public_id":  m.ID,
			"team_public_id":   entry.TeamID,
			"player_public_id": entry.PlayerID,
			"is_starter":       entry.IsStarter,
			"position":         nullableString(string(entry.Position)),
		})
		if err != nil {
			return fmt.Errorf("bind insert lineup match=%s player=%s query: %w", m.ID, entry.PlayerID, err)
		}
		query = tx.Rebind(query)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert lineup match=%s player=%s: %w", m.ID, entry.PlayerID, err)
		}
	}

	return nil
}

func toMatch(row matchTableModel) match.Match {
	m := match.Match{
		ID:            row.PublicID,
		CompetitionID: row.CompetitionID,
		Round:         row.Round,
		KickoffAt:     row.KickoffAt,
		Status:        row.Status,
		HomeTeamID:    row.HomeTeamID,
		AwayTeamID:    row.AwayTeamID,
	}
	if row.HomeScore.Valid {
		score := int(row.HomeScore.Int64)
		m.HomeScore = &score
	}
	if row.AwayScore.Valid {
		score := int(row.AwayScore.Int64)
		m.AwayScore = &score
	}
	return m
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
