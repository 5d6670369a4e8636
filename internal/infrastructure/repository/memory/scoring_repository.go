package memory

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/matchm8/matchm8/internal/domain/scoring"
)

type ScoringRepository struct {
	mu     sync.RWMutex
	byWeek map[string][]scoring.WeekRow
	totals map[string][]scoring.SeasonRow
}

func NewScoringRepository() *ScoringRepository {
	return &ScoringRepository{
		byWeek: make(map[string][]scoring.WeekRow),
		totals: make(map[string][]scoring.SeasonRow),
	}
}

func (r *ScoringRepository) UpsertWeekRows(_ context.Context, season string, week int, rows []scoring.WeekRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]scoring.WeekRow, 0, len(rows))
	out = append(out, rows...)
	r.byWeek[weekKey(season, week)] = out
	return nil
}

func (r *ScoringRepository) ListWeekRows(_ context.Context, season string, week int) ([]scoring.WeekRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.byWeek[weekKey(season, week)]
	out := make([]scoring.WeekRow, 0, len(rows))
	out = append(out, rows...)
	return out, nil
}

func (r *ScoringRepository) ListAllWeekRows(_ context.Context, season string) (map[int][]scoring.WeekRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prefix := season + ":"
	out := make(map[int][]scoring.WeekRow)
	for key, rows := range r.byWeek {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		week, err := strconv.Atoi(strings.TrimPrefix(key, prefix))
		if err != nil {
			continue
		}
		copied := make([]scoring.WeekRow, 0, len(rows))
		copied = append(copied, rows...)
		out[week] = copied
	}
	return out, nil
}

func (r *ScoringRepository) ReplaceSeasonTotals(_ context.Context, season string, rows []scoring.SeasonRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]scoring.SeasonRow, 0, len(rows))
	out = append(out, rows...)
	r.totals[season] = out
	return nil
}

func (r *ScoringRepository) ListSeasonTotals(_ context.Context, season string) ([]scoring.SeasonRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.totals[season]
	out := make([]scoring.SeasonRow, 0, len(rows))
	out = append(out, rows...)
	return out, nil
}
