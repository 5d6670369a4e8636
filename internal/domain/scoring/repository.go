package scoring

import "context"

// Repository persists the derived scoring rows. Week rows and season totals
// are caches rebuilt from predictions and results, so writes are full
// replacements per scope.
type Repository interface {
	UpsertWeekRows(ctx context.Context, season string, week int, rows []WeekRow) error
	ListWeekRows(ctx context.Context, season string, week int) ([]WeekRow, error)
	ListAllWeekRows(ctx context.Context, season string) (map[int][]WeekRow, error)
	ReplaceSeasonTotals(ctx context.Context, season string, rows []SeasonRow) error
	ListSeasonTotals(ctx context.Context, season string) ([]SeasonRow, error)
}
