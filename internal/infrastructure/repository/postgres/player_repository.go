package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kazfoot/kpl-fantasy/internal/domain/player"
	qb "github.com/kazfoot/kpl-fantasy/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}

	ids := make([]any, 0, len(playerIDs))
	for _, id := range playerIDs {
		ids = append(ids, id)
	}

	query, args, err := qb.Select("*").From("players").
		Where(
			qb.In("public_id", ids),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by ids query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by ids: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, toPlayer(row))
	}

	return out, nil
}

func (r *PlayerRepository) ListByCompetition(ctx context.Context, competitionID string) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(
			qb.Eq("competition_public_id", competitionID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("price DESC", "name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by competition query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by competition: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, toPlayer(row))
	}

	return out, nil
}

func (r *PlayerRepository) UpsertPlayers(ctx context.Context, players []player.Player) error {
	if len(players) == 0 {
		return nil
	}

	const upsertQuery = `
INSERT INTO players (
    public_id,
    competition_public_id,
    team_public_id,
    name,
    shirt_number,
    position,
    price
) VALUES (:public_id, :competition_public_id, :team_public_id, :name, :shirt_number, :position, :price)
ON CONFLICT (public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    competition_public_id = EXCLUDED.competition_public_id,
    team_public_id = EXCLUDED.team_public_id,
    name = EXCLUDED.name,
    shirt_number = EXCLUDED.shirt_number,
    position = EXCLUDED.position,
    price = EXCLUDED.price,
    updated_at = NOW()`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for players upsert: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, p := range players {
		query, args, err := sqlx.Named(upsertQuery, map[string]any{
			"public_id":             p.ID,
			"competition_public_id": p.CompetitionID,
			"team_public_id":        p.TeamID,
			"name":                  p.Name,
			"shirt_number":          p.Number,
			"position":              string(p.Position),
			"price":                 p.Price,
		})
		if err != nil {
			return fmt.Errorf("bind upsert player id=%s query: %w", p.ID, err)
		}
		query = tx.Rebind(query)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert player id=%s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit players upsert tx: %w", err)
	}

	return nil
}

func toPlayer(row playerTableModel) player.Player {
	return player.Player{
		ID:            row.PublicID,
		CompetitionID: row.CompetitionID,
		TeamID:        row.TeamID,
		Name:          row.Name,
		Number:        row.Number,
		Position:      player.Position(row.Position),
		Price:         row.Price,
	}
}
