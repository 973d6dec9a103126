package postgres

import "time"

type teamTableModel struct {
	ID            int64      `db:"id"`
	PublicID      string     `db:"public_id"`
	CompetitionID string     `db:"competition_public_id"`
	Name          string     `db:"name"`
	Short         string     `db:"short_name"`
	City          string     `db:"city"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
}
