package postgres

import "time"

type fixtureTableModel struct {
	ID        int64      `db:"id"`
	FixtureID string     `db:"fixture_id"`
	Season    string     `db:"season"`
	Week      int        `db:"week"`
	HomeTeam  string     `db:"home_team"`
	AwayTeam  string     `db:"away_team"`
	KickoffAt *time.Time `db:"kickoff_at"`
	CreatedAt time.Time  `db:"created_at"`
}

type fixtureInsertModel struct {
	FixtureID string     `db:"fixture_id"`
	Season    string     `db:"season"`
	Week      int        `db:"week"`
	HomeTeam  string     `db:"home_team"`
	AwayTeam  string     `db:"away_team"`
	KickoffAt *time.Time `db:"kickoff_at"`
}
