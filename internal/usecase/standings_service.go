package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/matchm8/matchm8/internal/domain/scoring"
	"github.com/matchm8/matchm8/internal/platform/cache"
)

// StandingsService serves the season-level read views. Both views sit
// behind a short-TTL cache since they are the hottest endpoints and only
// change when results land.
type StandingsService struct {
	scoringSvc  *ScoringService
	scoringRepo scoring.Repository
	store       *cache.Store
}

func NewStandingsService(scoringSvc *ScoringService, scoringRepo scoring.Repository, store *cache.Store) *StandingsService {
	return &StandingsService{
		scoringSvc:  scoringSvc,
		scoringRepo: scoringRepo,
		store:       store,
	}
}

func (s *StandingsService) SeasonTotals(ctx context.Context, season string) ([]scoring.SeasonRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.SeasonTotals")
	defer span.End()

	season = strings.TrimSpace(season)
	if season == "" {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	if err := s.scoringSvc.EnsureSeasonUpToDate(ctx, season); err != nil {
		return nil, err
	}

	key := "standings:totals:" + season
	value, err := s.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		rows, loadErr := s.scoringRepo.ListSeasonTotals(ctx, season)
		if loadErr != nil {
			return nil, fmt.Errorf("list season totals: %w", loadErr)
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]scoring.SeasonRow), nil
}

// Matrix returns the per-week breakdown for the inclusive [fromWeek,
// toWeek] window.
func (s *StandingsService) Matrix(ctx context.Context, season string, fromWeek, toWeek int) (scoring.Matrix, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Matrix")
	defer span.End()

	season = strings.TrimSpace(season)
	if season == "" {
		return scoring.Matrix{}, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	if fromWeek < 1 || toWeek < fromWeek {
		return scoring.Matrix{}, fmt.Errorf("%w: week window %d..%d", ErrInvalidInput, fromWeek, toWeek)
	}

	if err := s.scoringSvc.EnsureSeasonUpToDate(ctx, season); err != nil {
		return scoring.Matrix{}, err
	}

	key := "standings:matrix:" + season + ":" + strconv.Itoa(fromWeek) + ":" + strconv.Itoa(toWeek)
	value, err := s.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		rowsByWeek, loadErr := s.scoringRepo.ListAllWeekRows(ctx, season)
		if loadErr != nil {
			return nil, fmt.Errorf("list all week rows: %w", loadErr)
		}
		return scoring.BuildMatrix(fromWeek, toWeek, rowsByWeek), nil
	})
	if err != nil {
		return scoring.Matrix{}, err
	}
	return value.(scoring.Matrix), nil
}

// InvalidateSeason drops every cached view for the season.
func (s *StandingsService) InvalidateSeason(ctx context.Context, season string) {
	s.store.DeletePrefix(ctx, "standings:totals:"+season)
	s.store.DeletePrefix(ctx, "standings:matrix:"+season+":")
}
