package postgres

import "time"

type playerTableModel struct {
	ID            int64      `db:"id"`
	PublicID      string     `db:"public_id"`
	CompetitionID string     `db:"competition_public_id"`
	TeamID        string     `db:"team_public_id"`
	Name          string     `db:"name"`
	Number        int        `db:"shirt_number"`
	Position      string     `db:"position"`
	Price         int64      `db:"price"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
}
