package postgres

import "time"

type playerTableModel struct {
	ID          string    `db:"id"`
	DisplayName string    `db:"display_name"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type playerInsertModel struct {
	ID          string `db:"id"`
	DisplayName string `db:"display_name"`
}
