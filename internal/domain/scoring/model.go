package scoring

import "time"

// WeekRow is one player's computed point total for one week. Rows are a
// derived cache, always reproducible from predictions and results.
type WeekRow struct {
	PlayerID     string
	DisplayName  string
	Points       int
	CalculatedAt time.Time
}

// SeasonRow is one player's cumulative standing across all scored weeks.
type SeasonRow struct {
	PlayerID    string
	DisplayName string
	TotalPoints int
	WeeksPlayed int
}

// MatrixRow is one player's per-week breakdown within a bounded window.
// Rank uses competition ranking: tied totals share a rank and the next
// distinct total resumes at the cumulative row position.
type MatrixRow struct {
	PlayerID     string
	DisplayName  string
	PointsByWeek map[int]int
	Total        int
	Rank         int
}

// Matrix is the recent-weeks view: the ordered week window plus one row per
// player appearing in any week of that window.
type Matrix struct {
	Weeks []int
	Rows  []MatrixRow
}
