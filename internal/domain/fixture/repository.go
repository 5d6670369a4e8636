package fixture

import "context"

// Repository exposes fixture storage. Fixtures are immutable once published;
// ReplaceWeek swaps a week's fixtures wholesale on re-import.
type Repository interface {
	ListByWeek(ctx context.Context, season string, week int) ([]Fixture, error)
	ListWeeks(ctx context.Context, season string) ([]int, error)
	ReplaceWeek(ctx context.Context, season string, week int, fixtures []Fixture) error
}
