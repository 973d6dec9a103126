package postgres

import "time"

type competitionTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	Code      string     `db:"code"`
	Name      string     `db:"name"`
	Season    int        `db:"season"`
	IsDefault bool       `db:"is_default"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}
