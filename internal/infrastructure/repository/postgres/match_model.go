package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID            int64         `db:"id"`
	PublicID      string        `db:"public_id"`
	CompetitionID string        `db:"competition_public_id"`
	Round         int           `db:"round"`
	KickoffAt     time.Time     `db:"kickoff_at"`
	Status        string        `db:"status"`
	HomeTeamID    string        `db:"home_team_public_id"`
	AwayTeamID    string        `db:"away_team_public_id"`
	HomeScore     sql.NullInt64 `db:"home_score"`
	AwayScore     sql.NullInt64 `db:"away_score"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
	DeletedAt     *time.Time    `db:"deleted_at"`
}

type matchEventTableModel struct {
	ID             int64          `db:"id"`
	PublicID       string         `db:"public_id"`
	MatchID        string         `db:"match_public_id"`
	TeamID         string         `db:"team_public_id"`
	EventType      string         `db:"event_type"`
	Minute         int            `db:"minute"`
	ExtraMinute    int            `db:"extra_minute"`
	PlayerID       string         `db:"player_public_id"`
	AssistPlayerID sql.NullString `db:"assist_player_public_id"`
	SubOutPlayerID sql.NullString `db:"sub_out_player_public_id"`
}

type matchLineupTableModel struct {
	ID        int64          `db:"id"`
	MatchID   string         `db:"match_public_id"`
	TeamID    string         `db:"team_public_id"`
	PlayerID  string         `db:"player_public_id"`
	IsStarter bool           `db:"is_starter"`
	Position  sql.NullString `db:"position"`
}
