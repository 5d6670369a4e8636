package postgres

import "time"

type resultTableModel struct {
	ID        int64     `db:"id"`
	Season    string    `db:"season"`
	Week      int       `db:"week"`
	FixtureID string    `db:"fixture_id"`
	HomeScore int       `db:"home_score"`
	AwayScore int       `db:"away_score"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type resultInsertModel struct {
	Season    string `db:"season"`
	Week      int    `db:"week"`
	FixtureID string `db:"fixture_id"`
	HomeScore int    `db:"home_score"`
	AwayScore int    `db:"away_score"`
}
