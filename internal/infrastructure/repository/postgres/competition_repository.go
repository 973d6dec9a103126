package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kazfoot/kpl-fantasy/internal/domain/competition"
	qb "github.com/kazfoot/kpl-fantasy/internal/platform/querybuilder"
)

type CompetitionRepository struct {
	db *sqlx.DB
}

func NewCompetitionRepository(db *sqlx.DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

func (r *CompetitionRepository) List(ctx context.Context) ([]competition.Competition, error) {
	query, args, err := qb.Select("*").From("competitions").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select competitions query: %w", err)
	}

	var rows []competitionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select competitions: %w", err)
	}

	out := make([]competition.Competition, 0, len(rows))
	for _, row := range rows {
		out = append(out, toCompetition(row))
	}

	return out, nil
}

func (r *CompetitionRepository) GetByID(ctx context.Context, competitionID string) (competition.Competition, bool, error) {
	return r.getOne(ctx, qb.Eq("public_id", competitionID))
}

func (r *CompetitionRepository) GetByCode(ctx context.Context, code string) (competition.Competition, bool, error) {
	return r.getOne(ctx, qb.Eq("code", code))
}

func (r *CompetitionRepository) getOne(ctx context.Context, cond qb.Condition) (competition.Competition, bool, error) {
	query, args, err := qb.Select("*").From("competitions").
		Where(cond, qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return competition.Competition{}, false, fmt.Errorf("build get competition query: %w", err)
	}

	var row competitionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return competition.Competition{}, false, nil
		}
		return competition.Competition{}, false, fmt.Errorf("get competition: %w", err)
	}

	return toCompetition(row), true, nil
}

func toCompetition(row competitionTableModel) competition.Competition {
	return competition.Competition{
		ID:        row.PublicID,
		Code:      row.Code,
		Name:      row.Name,
		Season:    row.Season,
		IsDefault: row.IsDefault,
	}
}
