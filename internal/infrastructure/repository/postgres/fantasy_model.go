package postgres

import "time"

type fantasyTeamTableModel struct {
	ID            int64      `db:"id"`
	PublicID      string     `db:"public_id"`
	UserID        string     `db:"user_id"`
	CompetitionID string     `db:"competition_public_id"`
	Name          string     `db:"name"`
	Budget        int64      `db:"budget"`
	TotalPoints   int        `db:"total_points"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
}

type fantasyPickTableModel struct {
	ID            int64      `db:"id"`
	FantasyTeamID string     `db:"fantasy_team_public_id"`
	PlayerID      string     `db:"player_public_id"`
	Position      string     `db:"position"`
	IsCaptain     bool       `db:"is_captain"`
	IsViceCaptain bool       `db:"is_vice_captain"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
}
