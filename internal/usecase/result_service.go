package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/matchm8/matchm8/internal/domain/fixture"
	"github.com/matchm8/matchm8/internal/domain/result"
	"github.com/matchm8/matchm8/internal/domain/scoring"
	"github.com/matchm8/matchm8/internal/platform/logging"
)

// RecomputePublisher hands season recompute work to the job queue. The
// publisher is optional; without one the synchronous recompute in
// UpsertWeek is the only refresh.
type RecomputePublisher interface {
	EnqueueSeasonRecompute(ctx context.Context, season string) error
}

// ResultService is the admin write path for actual scores. A result upsert
// immediately recomputes the affected week so readers never see a stale
// table, then queues a full-season recompute for the remaining weeks.
type ResultService struct {
	fixtureRepo  fixture.Repository
	resultRepo   result.Repository
	scoringSvc   *ScoringService
	standingsSvc *StandingsService
	publisher    RecomputePublisher
	logger       *logging.Logger
}

func NewResultService(
	fixtureRepo fixture.Repository,
	resultRepo result.Repository,
	scoringSvc *ScoringService,
	standingsSvc *StandingsService,
	publisher RecomputePublisher,
	logger *logging.Logger,
) *ResultService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &ResultService{
		fixtureRepo:  fixtureRepo,
		resultRepo:   resultRepo,
		scoringSvc:   scoringSvc,
		standingsSvc: standingsSvc,
		publisher:    publisher,
		logger:       logger,
	}
}

// UpsertWeek records or corrects results for a week. Every fixture id in
// the set must belong to the week's published fixtures.
func (s *ResultService) UpsertWeek(ctx context.Context, season string, week int, set result.Set) ([]scoring.WeekRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.UpsertWeek")
	defer span.End()

	season = strings.TrimSpace(season)
	if season == "" {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	if week < 1 {
		return nil, fmt.Errorf("%w: week must be positive", ErrInvalidInput)
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: no results submitted", ErrInvalidInput)
	}

	fixtures, err := s.fixtureRepo.ListByWeek(ctx, season, week)
	if err != nil {
		return nil, fmt.Errorf("list fixtures for results: %w", err)
	}
	known := make(map[string]struct{}, len(fixtures))
	for _, fx := range fixtures {
		known[fx.ID] = struct{}{}
	}
	for fixtureID := range set {
		if _, ok := known[fixtureID]; !ok {
			return nil, fmt.Errorf("%w: unknown fixture %s", ErrInvalidInput, fixtureID)
		}
	}

	if err := s.resultRepo.UpsertWeek(ctx, season, week, set); err != nil {
		return nil, fmt.Errorf("upsert results: %w", err)
	}

	rows, err := s.scoringSvc.RecalculateWeek(ctx, season, week)
	if err != nil {
		return nil, err
	}
	if err := s.scoringSvc.RebuildSeasonTotals(ctx, season); err != nil {
		return nil, err
	}

	s.scoringSvc.InvalidateEnsure(season)
	s.standingsSvc.InvalidateSeason(ctx, season)

	if s.publisher != nil {
		if err := s.publisher.EnqueueSeasonRecompute(ctx, season); err != nil {
			// Best effort: the week just written is already fresh.
			s.logger.WarnContext(ctx, "enqueue season recompute failed", "season", season, "error", err)
		}
	}

	return rows, nil
}

func (s *ResultService) ListWeek(ctx context.Context, season string, week int) (result.Set, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.ListWeek")
	defer span.End()

	season = strings.TrimSpace(season)
	if season == "" {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	if week < 1 {
		return nil, fmt.Errorf("%w: week must be positive", ErrInvalidInput)
	}

	set, err := s.resultRepo.ListWeek(ctx, season, week)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	return set, nil
}
