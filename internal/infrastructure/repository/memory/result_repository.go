package memory

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/matchm8/matchm8/internal/domain/result"
)

type ResultRepository struct {
	mu     sync.RWMutex
	byWeek map[string]result.Set
}

func NewResultRepository() *ResultRepository {
	return &ResultRepository{byWeek: make(map[string]result.Set)}
}

func (r *ResultRepository) ListWeek(_ context.Context, season string, week int) (result.Set, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := result.Set{}
	for id, res := range r.byWeek[weekKey(season, week)] {
		out[id] = res
	}
	return out, nil
}

func (r *ResultRepository) ListWeeksWithResults(_ context.Context, season string) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prefix := season + ":"
	weeks := make([]int, 0)
	for key, set := range r.byWeek {
		if len(set) == 0 || !strings.HasPrefix(key, prefix) {
			continue
		}
		week, err := strconv.Atoi(strings.TrimPrefix(key, prefix))
		if err != nil {
			continue
		}
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)
	return weeks, nil
}

func (r *ResultRepository) UpsertWeek(_ context.Context, season string, week int, set result.Set) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := weekKey(season, week)
	if r.byWeek[key] == nil {
		r.byWeek[key] = result.Set{}
	}
	for id, res := range set {
		r.byWeek[key][id] = res
	}
	return nil
}
