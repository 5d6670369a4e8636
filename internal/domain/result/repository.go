package result

import "context"

// Repository stores actual results per (season, week). UpsertWeek overwrites
// existing rows so admins can correct a posted score.
type Repository interface {
	ListWeek(ctx context.Context, season string, week int) (Set, error)
	ListWeeksWithResults(ctx context.Context, season string) ([]int, error)
	UpsertWeek(ctx context.Context, season string, week int, results Set) error
}
