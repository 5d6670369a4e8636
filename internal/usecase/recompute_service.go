package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/matchm8/matchm8/internal/domain/result"
	"github.com/matchm8/matchm8/internal/platform/logging"
)

const (
	recomputeStatusSuccess = "success"
	recomputeStatusFailed  = "failed"

	defaultRecomputeWorkers = 4
	maxRecomputeWorkers     = 16
)

// RecomputeService rebuilds every scored week of a season. Weeks are
// independent computations, so they fan out across a bounded worker pool;
// the season totals fold runs once after all weeks land.
type RecomputeService struct {
	resultRepo result.Repository
	scoringSvc *ScoringService
	workers    int
	logger     *logging.Logger
}

type RecomputeWeekResult struct {
	Week       int    `json:"week"`
	Rows       int    `json:"rows"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"durationMs"`
}

type RecomputeResult struct {
	Season       string                `json:"season"`
	WeekCount    int                   `json:"weekCount"`
	WorkerCount  int                   `json:"workerCount"`
	SuccessCount int                   `json:"successCount"`
	FailedCount  int                   `json:"failedCount"`
	Weeks        []RecomputeWeekResult `json:"weeks"`
}

func NewRecomputeService(resultRepo result.Repository, scoringSvc *ScoringService, workers int, logger *logging.Logger) *RecomputeService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &RecomputeService{
		resultRepo: resultRepo,
		scoringSvc: scoringSvc,
		workers:    workers,
		logger:     logger,
	}
}

func (s *RecomputeService) RecomputeSeason(ctx context.Context, season string) (RecomputeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecomputeService.RecomputeSeason")
	defer span.End()

	season = strings.TrimSpace(season)
	if season == "" {
		return RecomputeResult{}, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	weeks, err := s.resultRepo.ListWeeksWithResults(ctx, season)
	if err != nil {
		return RecomputeResult{}, fmt.Errorf("list weeks with results: %w", err)
	}

	workerCount := normalizeRecomputeWorkerCount(s.workers, len(weeks))
	out := RecomputeResult{
		Season:      season,
		WeekCount:   len(weeks),
		WorkerCount: workerCount,
		Weeks:       make([]RecomputeWeekResult, 0, len(weeks)),
	}
	if len(weeks) == 0 {
		return out, nil
	}

	results := make(chan RecomputeWeekResult, len(weeks))

	var successCount atomic.Int32
	var failedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return RecomputeResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, week := range weeks {
		week := week
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := RecomputeWeekResult{Week: week}

			rows, runErr := s.scoringSvc.RecalculateWeek(ctx, season, week)
			if runErr != nil {
				row.Status = recomputeStatusFailed
				row.Message = runErr.Error()
				failedCount.Add(1)
			} else {
				row.Status = recomputeStatusSuccess
				row.Rows = len(rows)
				successCount.Add(1)
			}
			row.DurationMs = time.Since(start).Milliseconds()

			results <- row
		}); err != nil {
			workers.Done()
			return RecomputeResult{}, fmt.Errorf("submit week to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		out.Weeks = append(out.Weeks, row)
	}
	sort.Slice(out.Weeks, func(i, j int) bool {
		return out.Weeks[i].Week < out.Weeks[j].Week
	})

	out.SuccessCount = int(successCount.Load())
	out.FailedCount = int(failedCount.Load())

	if out.FailedCount == 0 {
		if err := s.scoringSvc.RebuildSeasonTotals(ctx, season); err != nil {
			return out, err
		}
		s.scoringSvc.InvalidateEnsure(season)
	} else {
		s.logger.WarnContext(ctx, "season recompute finished with failures",
			"season", season,
			"failed", out.FailedCount,
		)
	}

	return out, nil
}

func normalizeRecomputeWorkerCount(configured, taskCount int) int {
	workers := configured
	if workers <= 0 {
		workers = defaultRecomputeWorkers
	}
	if workers > maxRecomputeWorkers {
		workers = maxRecomputeWorkers
	}
	if taskCount > 0 && workers > taskCount {
		workers = taskCount
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
