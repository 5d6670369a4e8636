package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/matchm8/matchm8/internal/domain/fixture"
)

type FixtureRepository struct {
	mu     sync.RWMutex
	byWeek map[string][]fixture.Fixture
}

func weekKey(season string, week int) string {
	return season + ":" + strconv.Itoa(week)
}

func NewFixtureRepository(fixtures []fixture.Fixture) *FixtureRepository {
	byWeek := make(map[string][]fixture.Fixture)
	for _, item := range fixtures {
		key := weekKey(item.Season, item.Week)
		byWeek[key] = append(byWeek[key], item)
	}
	return &FixtureRepository{byWeek: byWeek}
}

func (r *FixtureRepository) ListByWeek(_ context.Context, season string, week int) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byWeek[weekKey(season, week)]
	out := make([]fixture.Fixture, 0, len(items))
	out = append(out, items...)
	return out, nil
}

func (r *FixtureRepository) ListWeeks(_ context.Context, season string) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	weeks := make([]int, 0)
	for _, items := range r.byWeek {
		if len(items) == 0 || items[0].Season != season {
			continue
		}
		weeks = append(weeks, items[0].Week)
	}
	sort.Ints(weeks)
	return weeks, nil
}

func (r *FixtureRepository) ReplaceWeek(_ context.Context, season string, week int, fixtures []fixture.Fixture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]fixture.Fixture, 0, len(fixtures))
	out = append(out, fixtures...)
	r.byWeek[weekKey(season, week)] = out
	return nil
}
