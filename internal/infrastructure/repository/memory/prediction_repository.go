package memory

import (
	"context"
	"sync"

	"github.com/matchm8/matchm8/internal/domain/prediction"
)

type PredictionRepository struct {
	mu     sync.RWMutex
	byWeek map[string]map[string]prediction.Set
}

func NewPredictionRepository() *PredictionRepository {
	return &PredictionRepository{byWeek: make(map[string]map[string]prediction.Set)}
}

func (r *PredictionRepository) GetWeek(_ context.Context, season string, week int, playerID string) (prediction.Set, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set, ok := r.byWeek[weekKey(season, week)][playerID]
	if !ok {
		return nil, false, nil
	}
	return copySet(set), true, nil
}

func (r *PredictionRepository) ListWeek(_ context.Context, season string, week int) (map[string]prediction.Set, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]prediction.Set)
	for playerID, set := range r.byWeek[weekKey(season, week)] {
		out[playerID] = copySet(set)
	}
	return out, nil
}

func (r *PredictionRepository) SaveWeek(_ context.Context, season string, week int, playerID string, set prediction.Set) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := weekKey(season, week)
	if r.byWeek[key] == nil {
		r.byWeek[key] = make(map[string]prediction.Set)
	}
	r.byWeek[key][playerID] = copySet(set)
	return nil
}

func copySet(set prediction.Set) prediction.Set {
	out := make(prediction.Set, len(set))
	for id, p := range set {
		out[id] = p
	}
	return out
}
