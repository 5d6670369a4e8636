package postgres

import "time"

type weeklyScoreTableModel struct {
	ID           int64     `db:"id"`
	Season       string    `db:"season"`
	Week         int       `db:"week"`
	PlayerID     string    `db:"player_id"`
	DisplayName  string    `db:"display_name"`
	Points       int       `db:"points"`
	CalculatedAt time.Time `db:"calculated_at"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type weeklyScoreInsertModel struct {
	Season       string    `db:"season"`
	Week         int       `db:"week"`
	PlayerID     string    `db:"player_id"`
	DisplayName  string    `db:"display_name"`
	Points       int       `db:"points"`
	CalculatedAt time.Time `db:"calculated_at"`
}

type seasonTotalTableModel struct {
	ID          int64     `db:"id"`
	Season      string    `db:"season"`
	PlayerID    string    `db:"player_id"`
	DisplayName string    `db:"display_name"`
	TotalPoints int       `db:"total_points"`
	WeeksPlayed int       `db:"weeks_played"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type seasonTotalInsertModel struct {
	Season      string `db:"season"`
	PlayerID    string `db:"player_id"`
	DisplayName string `db:"display_name"`
	TotalPoints int    `db:"total_points"`
	WeeksPlayed int    `db:"weeks_played"`
}
