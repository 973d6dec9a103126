package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kazfoot/kpl-fantasy/internal/domain/fantasy"
	"github.com/kazfoot/kpl-fantasy/internal/domain/player"
	qb "github.com/kazfoot/kpl-fantasy/internal/platform/querybuilder"
)

type FantasyRepository struct {
	db *sqlx.DB
}

func NewFantasyRepository(db *sqlx.DB) *FantasyRepository {
	return &FantasyRepository{db: db}
}

func (r *FantasyRepository) Create(ctx context.Context, team fantasy.Team) error {
	const insertQuery = `
INSERT INTO fantasy_teams (public_id, user_id, competition_public_id, name, budget, total_points)
VALUES (:public_id, :user_id, :competition_public_id, :name, :budget, :total_points)`

	query, args, err := sqlx.Named(insertQuery, map[string]any{
		"public_id":             team.ID,
		"user_id":               team.UserID,
		"competition_public_id": team.CompetitionID,
		"name":                  team.Name,
		"budget":                team.Budget,
		"total_points":          team.TotalPoints,
	})
	if err != nil {
		return fmt.Errorf("bind insert fantasy team query: %w", err)
	}
	query = r.db.Rebind(query)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert fantasy team: %w", err)
	}

	return nil
}

func (r *FantasyRepository) GetByID(ctx context.Context, teamID string) (fantasy.Team, bool, error) {
	return r.getOne(ctx, qb.Eq("public_id", teamID))
}

func (r *FantasyRepository) GetByUserAndCompetition(ctx context.Context, userID, competitionID string) (fantasy.Team, bool, error) {
	return r.getOne(ctx,
		qb.Eq("user_id", userID),
		qb.Eq("competition_public_id", competitionID),
	)
}

func (r *FantasyRepository) getOne(ctx context.Context, conditions ...qb.Condition) (fantasy.Team, bool, error) {
	conditions = append(conditions, qb.IsNull("deleted_at"))
	query, args, err := qb.Select("*").From("fantasy_teams").
		Where(conditions...).
		ToSQL()
	if err != nil {
		return fantasy.Team{}, false, fmt.Errorf("build get fantasy team query: %w", err)
	}

	var row fantasyTeamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fantasy.Team{}, false, nil
		}
		return fantasy.Team{}, false, fmt.Errorf("get fantasy team: %w", err)
	}

	picks, err := r.listPicks(ctx, row.PublicID)
	if err != nil {
		return fantasy.Team{}, false, err
	}

	return toFantasyTeam(row, picks), true, nil
}

func (r *FantasyRepository) ListByCompetition(ctx context.Context, competitionID string) ([]fantasy.Team, error) {
	query, args, err := qb.Select("*").From("fantasy_teams").
		Where(
			qb.Eq("competition_public_id", competitionID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("total_points DESC", "name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fantasy teams query: %w", err)
	}

	var rows []fantasyTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fantasy teams by competition: %w", err)
	}

	out := make([]fantasy.Team, 0, len(rows))
	for _, row := range rows {
		picks, err := r.listPicks(ctx, row.PublicID)
		if err != nil {
			return nil, err
		}
		out = append(out, toFantasyTeam(row, picks))
	}

	return out, nil
}

func (r *FantasyRepository) listPicks(ctx context.Context, fantasyTeamID string) ([]fantasy.Pick, error) {
	query, args, err := qb.Select("*").From("fantasy_picks").
		Where(
			qb.Eq("fantasy_team_public_id", fantasyTeamID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fantasy picks query: %w", err)
	}

	var rows []fantasyPickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fantasy picks: %w", err)
	}

	picks := make([]fantasy.Pick, 0, len(rows))
	for _, row := range rows {
		picks = append(picks, fantasy.Pick{
			PlayerID:      row.PlayerID,
			Position:      player.Position(row.Position),
			IsCaptain:     row.IsCaptain,
			IsViceCaptain: row.IsViceCaptain,
		})
	}

	return picks, nil
}

func (r *FantasyRepository) ReplacePicks(ctx context.Context, teamID string, picks []fantasy.Pick, remainingBudget int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for picks replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const updateTeamQuery = `
UPDATE fantasy_teams
SET budget = :budget, updated_at = NOW()
WHERE public_id = :public_id
  AND deleted_at IS NULL`
	query, args, err := sqlx.Named(updateTeamQuery, map[string]any{
		"budget":    remainingBudget,
		"public_id": teamID,
	})
	if err != nil {
		return fmt.Errorf("bind update fantasy team budget query: %w", err)
	}
	query = tx.Rebind(query)
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update fantasy team budget: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("replace picks: fantasy team %s not found", teamID)
	}

	const clearPicksQuery = `
UPDATE fantasy_picks
SET deleted_at = NOW()
WHERE fantasy_team_public_id = $1
  AND deleted_at IS NULL`
	if _, err := tx.ExecContext(ctx, clearPicksQuery, teamID); err != nil {
		return fmt.Errorf("soft delete existing picks: %w", err)
	}

	const insertPickQuery = `
INSERT INTO fantasy_picks (
    fantasy_team_public_id,
    player_public_id,
    position,
    is_captain,
    is_vice_captain
) VALUES (:fantasy_team_public_id, :player_public_id, :position, :is_captain, :is_vice_captain)`

	for _, pick := range picks {
		query, args, err := sqlx.Named(insertPickQuery, map[string]any{
			"fantasy_team_public_id": teamID,
			"player_public_id":       pick.PlayerID,
			"position":               string(pick.Position),
			"is_captain":             pick.IsCaptain,
			"is_vice_captain":        pick.IsViceCaptain,
		})
		if err != nil {
			return fmt.Errorf("bind insert pick player=%s query: %w", pick.PlayerID, err)
		}
		query = tx.Rebind(query)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert pick player=%s: %w", pick.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit picks replace tx: %w", err)
	}

	return nil
}

func (r *FantasyRepository) UpdateTotalPoints(ctx context.Context, teamID string, totalPoints int) error {
	const updateQuery = `
UPDATE fantasy_teams
SET total_points = :total_points, updated_at = NOW()
WHERE public_id = :public_id
  AND deleted_at IS NULL`

	query, args, err := sqlx.Named(updateQuery, map[string]any{
		"total_points": totalPoints,
		"public_id":    teamID,
	})
	if err != nil {
		return fmt.Errorf("bind update total points query: %w", err)
	}
	query = r.db.Rebind(query)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update total points: %w", err)
	}

	return nil
}

func toFantasyTeam(row fantasyTeamTableModel, picks []fantasy.Pick) fantasy.Team {
	return fantasy.Team{
		ID:            row.PublicID,
		UserID:        row.UserID,
		CompetitionID: row.CompetitionID,
		Name:          row.Name,
		Budget:        row.Budget,
		TotalPoints:   row.TotalPoints,
		Picks:         picks,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
