package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kazfoot/kpl-fantasy/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the starter dataset into an empty database. It is a
// no-op when any competition already exists.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM competitions WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count competitions for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, c := range memory.SeedCompetitions() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO competitions (public_id, code, name, season, is_default)
VALUES (:public_id, :code, :name, :season, :is_default)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":  c.ID,
			"code":       c.Code,
			"name":       c.Name,
			"season":     c.Season,
			"is_default": c.IsDefault,
		})
		if err != nil {
			return fmt.Errorf("bind seed competition %s query: %w", c.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed competition %s: %w", c.ID, err)
		}
	}

	for _, t := range memory.SeedTeams() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO teams (public_id, competition_public_id, name, short_name, city)
VALUES (:public_id, :competition_public_id, :name, :short_name, :city)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":             t.ID,
			"competition_public_id": t.CompetitionID,
			"name":                  t.Name,
			"short_name":            t.Short,
			"city":                  t.City,
		})
		if err != nil {
			return fmt.Errorf("bind seed team %s query: %w", t.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed team %s: %w", t.ID, err)
		}
	}

	for _, p := range memory.SeedPlayers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO players (public_id, competition_public_id, team_public_id, name, shirt_number, position, price)
VALUES (:public_id, :competition_public_id, :team_public_id, :name, :shirt_number, :position, :price)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":             p.ID,
			"competition_public_id": p.CompetitionID,
			"team_public_id":        p.TeamID,
			"name":                  p.Name,
			"shirt_number":          p.Number,
			"position":              string(p.Position),
			"price":                 p.Price,
		})
		if err != nil {
			return fmt.Errorf("bind seed player %s query: %w", p.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed player %s: %w", p.ID, err)
		}
	}

	for _, m := range memory.SeedMatches() {
		if err := upsertMatchTx(ctx, tx, m); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
