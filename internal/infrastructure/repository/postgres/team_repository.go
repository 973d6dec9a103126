package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kazfoot/kpl-fantasy/internal/domain/team"
	qb "github.com/kazfoot/kpl-fantasy/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListByCompetition(ctx context.Context, competitionID string) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(
			qb.Eq("competition_public_id", competitionID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams by competition: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, toTeam(row))
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, competitionID, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(
			qb.Eq("competition_public_id", competitionID),
			qb.Eq("public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team by id query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by id: %w", err)
	}

	return toTeam(row), true, nil
}

func (r *TeamRepository) UpsertTeams(ctx context.Context, teams []team.Team) error {
	if len(teams) == 0 {
		return nil
	}

	const upsertQuery = `
INSERT INTO teams (public_id, competition_public_id, name, short_name, city)
VALUES (:public_id, :competition_public_id, :name, :short_name, :city)
ON CONFLICT (public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    competition_public_id = EXCLUDED.competition_public_id,
    name = EXCLUDED.name,
    short_name = EXCLUDED.short_name,
    city = EXCLUDED.city,
    updated_at = NOW()`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for teams upsert: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, t := range teams {
		query, args, err := sqlx.Named(upsertQuery, map[string]any{
			"public_id":             t.ID,
			"competition_public_id": t.CompetitionID,
			"name":                  t.Name,
			"short_name":            t.Short,
			"city":                  t.City,
		})
		if err != nil {
			return fmt.Errorf("bind upsert team id=%s query: %w", t.ID, err)
		}
		query = tx.Rebind(query)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert team id=%s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit teams upsert tx: %w", err)
	}

	return nil
}

func toTeam(row teamTableModel) team.Team {
	return team.Team{
		ID:            row.PublicID,
		CompetitionID: row.CompetitionID,
		Name:          row.Name,
		Short:         row.Short,
		City:          row.City,
	}
}
