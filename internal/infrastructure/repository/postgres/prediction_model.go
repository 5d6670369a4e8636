package postgres

import "time"

type predictionTableModel struct {
	ID        int64     `db:"id"`
	Season    string    `db:"season"`
	Week      int       `db:"week"`
	PlayerID  string    `db:"player_id"`
	FixtureID string    `db:"fixture_id"`
	HomeScore int       `db:"home_score"`
	AwayScore int       `db:"away_score"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type predictionInsertModel struct {
	Season    string `db:"season"`
	Week      int    `db:"week"`
	PlayerID  string `db:"player_id"`
	FixtureID string `db:"fixture_id"`
	HomeScore int    `db:"home_score"`
	AwayScore int    `db:"away_score"`
}
