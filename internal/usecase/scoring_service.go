package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/matchm8/matchm8/internal/domain/player"
	"github.com/matchm8/matchm8/internal/domain/result"
	"github.com/matchm8/matchm8/internal/domain/scoring"
	"github.com/matchm8/matchm8/internal/platform/resilience"

	predictiondomain "github.com/matchm8/matchm8/internal/domain/prediction"
)

// ScoringService recomputes the derived weekly tables and season totals
// from predictions and results. Recomputation is idempotent, so the ensure
// path runs it opportunistically on reads, collapsed through a singleflight
// and rate limited per season.
type ScoringService struct {
	predictionRepo predictiondomain.Repository
	resultRepo     result.Repository
	playerRepo     player.Repository
	scoringRepo    scoring.Repository
	now            func() time.Time
	ensureFlight   resilience.SingleFlight
	ensureMu       sync.Mutex
	lastEnsureAt   map[string]time.Time
	ensureInterval time.Duration
}

const defaultScoringEnsureInterval = 30 * time.Second

func NewScoringService(
	predictionRepo predictiondomain.Repository,
	resultRepo result.Repository,
	playerRepo player.Repository,
	scoringRepo scoring.Repository,
) *ScoringService {
	return &ScoringService{
		predictionRepo: predictionRepo,
		resultRepo:     resultRepo,
		playerRepo:     playerRepo,
		scoringRepo:    scoringRepo,
		now:            time.Now,
		lastEnsureAt:   make(map[string]time.Time),
		ensureInterval: defaultScoringEnsureInterval,
	}
}

// WeekTable returns the ranked table for one week, recomputing stale data
// first via the ensure path.
func (s *ScoringService) WeekTable(ctx context.Context, season string, week int) ([]scoring.WeekRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.WeekTable")
	defer span.End()

	season = strings.TrimSpace(season)
	if season == "" {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	if week < 1 {
		return nil, fmt.Errorf("%w: week must be positive", ErrInvalidInput)
	}

	if err := s.EnsureSeasonUpToDate(ctx, season); err != nil {
		return nil, err
	}

	rows, err := s.scoringRepo.ListWeekRows(ctx, season, week)
	if err != nil {
		return nil, fmt.Errorf("list week rows: %w", err)
	}
	return rows, nil
}

// EnsureSeasonUpToDate recomputes every week that has recorded results and
// then rebuilds the season totals. Concurrent callers collapse onto one
// run; successful runs are skipped for the ensure interval.
func (s *ScoringService) EnsureSeasonUpToDate(ctx context.Context, season string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.EnsureSeasonUpToDate")
	defer span.End()

	now := s.now().UTC()
	if s.shouldSkipEnsure(season, now) {
		return nil
	}

	key := "scoring:ensure:" + season
	_, err, _ := s.ensureFlight.Do(key, func() (any, error) {
		runNow := s.now().UTC()
		if s.shouldSkipEnsure(season, runNow) {
			return nil, nil
		}

		if runErr := s.ensureSeasonUpToDateOnce(ctx, season, runNow); runErr != nil {
			return nil, runErr
		}
		s.markEnsure(season, runNow)
		return nil, nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (s *ScoringService) ensureSeasonUpToDateOnce(ctx context.Context, season string, now time.Time) error {
	weeks, err := s.resultRepo.ListWeeksWithResults(ctx, season)
	if err != nil {
		return fmt.Errorf("list weeks with results: %w", err)
	}
	if len(weeks) == 0 {
		return nil
	}

	for _, week := range weeks {
		if _, err := s.recalculateWeekAt(ctx, season, week, now); err != nil {
			return err
		}
	}

	return s.RebuildSeasonTotals(ctx, season)
}

// RecalculateWeek recomputes one week's table from scratch and persists it.
// Season totals are not touched; callers rebuild them after the last week
// they recompute.
func (s *ScoringService) RecalculateWeek(ctx context.Context, season string, week int) ([]scoring.WeekRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.RecalculateWeek")
	defer span.End()

	season = strings.TrimSpace(season)
	if season == "" {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	if week < 1 {
		return nil, fmt.Errorf("%w: week must be positive", ErrInvalidInput)
	}

	return s.recalculateWeekAt(ctx, season, week, s.now().UTC())
}

func (s *ScoringService) recalculateWeekAt(ctx context.Context, season string, week int, now time.Time) ([]scoring.WeekRow, error) {
	predsByPlayer, err := s.predictionRepo.ListWeek(ctx, season, week)
	if err != nil {
		return nil, fmt.Errorf("list predictions for week %d: %w", week, err)
	}

	results, err := s.resultRepo.ListWeek(ctx, season, week)
	if err != nil {
		return nil, fmt.Errorf("list results for week %d: %w", week, err)
	}

	dir, err := s.playerDirectory(ctx)
	if err != nil {
		return nil, err
	}

	rows := scoring.BuildWeekTable(predsByPlayer, results, dir, now)
	if err := s.scoringRepo.UpsertWeekRows(ctx, season, week, rows); err != nil {
		return nil, fmt.Errorf("upsert week rows: %w", err)
	}
	return rows, nil
}

// RebuildSeasonTotals folds every persisted week into cumulative standings.
func (s *ScoringService) RebuildSeasonTotals(ctx context.Context, season string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.RebuildSeasonTotals")
	defer span.End()

	rowsByWeek, err := s.scoringRepo.ListAllWeekRows(ctx, season)
	if err != nil {
		return fmt.Errorf("list all week rows: %w", err)
	}

	dir, err := s.playerDirectory(ctx)
	if err != nil {
		return err
	}

	totals := scoring.RebuildSeasonTotals(rowsByWeek, dir)
	if err := s.scoringRepo.ReplaceSeasonTotals(ctx, season, totals); err != nil {
		return fmt.Errorf("replace season totals: %w", err)
	}
	return nil
}

// InvalidateEnsure forces the next ensure for the season to run. Called
// after result or fixture writes so readers see fresh tables immediately.
func (s *ScoringService) InvalidateEnsure(season string) {
	if season == "" {
		return
	}
	s.ensureMu.Lock()
	delete(s.lastEnsureAt, season)
	s.ensureMu.Unlock()
}

func (s *ScoringService) playerDirectory(ctx context.Context) (player.Directory, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return player.NewDirectory(players), nil
}

func (s *ScoringService) shouldSkipEnsure(season string, now time.Time) bool {
	if s.ensureInterval <= 0 || season == "" {
		return false
	}
	s.ensureMu.Lock()
	defer s.ensureMu.Unlock()
	last, ok := s.lastEnsureAt[season]
	if !ok || last.IsZero() {
		return false
	}
	return now.Sub(last) < s.ensureInterval
}

func (s *ScoringService) markEnsure(season string, now time.Time) {
	if season == "" {
		return
	}
	s.ensureMu.Lock()
	s.lastEnsureAt[season] = now
	s.ensureMu.Unlock()
}
