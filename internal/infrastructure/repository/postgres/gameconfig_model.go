package postgres

import "time"

// game_config is a single-row table; id is always 1.
type gameConfigTableModel struct {
	ID                int       `db:"id"`
	Season            string    `db:"season"`
	DeadlineMode      string    `db:"deadline_mode"`
	LockOffsetMinutes int       `db:"lock_offset_minutes"`
	Timezone          string    `db:"timezone"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

type gameConfigInsertModel struct {
	ID                int    `db:"id"`
	Season            string `db:"season"`
	DeadlineMode      string `db:"deadline_mode"`
	LockOffsetMinutes int    `db:"lock_offset_minutes"`
	Timezone          string `db:"timezone"`
}
