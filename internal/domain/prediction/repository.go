package prediction

import "context"

// Repository stores per-player prediction sets keyed by (season, week).
type Repository interface {
	GetWeek(ctx context.Context, season string, week int, playerID string) (Set, bool, error)
	ListWeek(ctx context.Context, season string, week int) (map[string]Set, error)
	SaveWeek(ctx context.Context, season string, week int, playerID string, picks Set) error
}
