package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kazfoot/kpl-fantasy/internal/domain/scoring"
	qb "github.com/kazfoot/kpl-fantasy/internal/platform/querybuilder"
)

type ScoringRepository struct {
	db *sqlx.DB
}

func NewScoringRepository(db *sqlx.DB) *ScoringRepository {
	return &ScoringRepository{db: db}
}

func (r *ScoringRepository) UpsertGameweekRow(ctx context.Context, row scoring.GameweekRow) error {
	const upsertQuery = `
INSERT INTO fantasy_gameweeks (fantasy_team_public_id, round, points, calculated_at)
VALUES (:fantasy_team_public_id, :round, :points, :calculated_at)
ON CONFLICT (fantasy_team_public_id, round)
DO UPDATE SET
    points = EXCLUDED.points,
    calculated_at = EXCLUDED.calculated_at,
    updated_at = NOW()`

	query, args, err := sqlx.Named(upsertQuery, map[string]any{
		"fantasy_team_public_id": row.FantasyTeamID,
		"round":                  row.Round,
		"points":                 row.Points,
		"calculated_at":          row.CalculatedAt,
	})
	if err != nil {
		return fmt.Errorf("bind upsert gameweek row query: %w", err)
	}
	query = r.db.Rebind(query)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert gameweek row team=%s round=%d: %w", row.FantasyTeamID, row.Round, err)
	}

	return nil
}

func (r *ScoringRepository) ListGameweekRowsByTeam(ctx context.Context, fantasyTeamID string) ([]scoring.GameweekRow, error) {
	query, args, err := qb.Select("fantasy_team_public_id", "round", "points", "calculated_at").
		From("fantasy_gameweeks").
		Where(qb.Eq("fantasy_team_public_id", fantasyTeamID)).
		OrderBy("round").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select gameweek rows query: %w", err)
	}

	var rows []struct {
		FantasyTeamID string    `db:"fantasy_team_public_id"`
		Round         int       `db:"round"`
		Points        int       `db:"points"`
		CalculatedAt  time.Time `db:"calculated_at"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select gameweek rows: %w", err)
	}

	out := make([]scoring.GameweekRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, scoring.GameweekRow{
			FantasyTeamID: row.FantasyTeamID,
			Round:         row.Round,
			Points:        row.Points,
			CalculatedAt:  row.CalculatedAt,
		})
	}

	return out, nil
}
