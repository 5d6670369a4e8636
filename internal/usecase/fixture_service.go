package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/matchm8/matchm8/internal/domain/fixture"
	"github.com/matchm8/matchm8/internal/domain/locks"
)

type FixtureService struct {
	fixtureRepo fixture.Repository
	lockSvc     *LockService
	scoringSvc  *ScoringService
}

func NewFixtureService(fixtureRepo fixture.Repository, lockSvc *LockService, scoringSvc *ScoringService) *FixtureService {
	return &FixtureService{
		fixtureRepo: fixtureRepo,
		lockSvc:     lockSvc,
		scoringSvc:  scoringSvc,
	}
}

// WeekFixtures is the fixture list paired with the lock state readers need
// to render it.
type WeekFixtures struct {
	Fixtures []fixture.Fixture
	Locks    locks.Status
}

func (s *FixtureService) ListWeek(ctx context.Context, season string, week int) (WeekFixtures, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListWeek")
	defer span.End()

	season = strings.TrimSpace(season)
	if season == "" {
		return WeekFixtures{}, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	if week < 1 {
		return WeekFixtures{}, fmt.Errorf("%w: week must be positive", ErrInvalidInput)
	}

	fixtures, err := s.fixtureRepo.ListByWeek(ctx, season, week)
	if err != nil {
		return WeekFixtures{}, fmt.Errorf("list fixtures: %w", err)
	}

	status, err := s.lockSvc.StatusForWeek(ctx, season, week)
	if err != nil {
		return WeekFixtures{}, err
	}

	return WeekFixtures{Fixtures: fixtures, Locks: status}, nil
}

// ReplaceWeek swaps the week's fixture list wholesale. Fixtures are
// immutable once published; a re-import replaces, never patches.
func (s *FixtureService) ReplaceWeek(ctx context.Context, season string, week int, fixtures []fixture.Fixture) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ReplaceWeek")
	defer span.End()

	season = strings.TrimSpace(season)
	if season == "" {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	if week < 1 {
		return nil, fmt.Errorf("%w: week must be positive", ErrInvalidInput)
	}
	if len(fixtures) == 0 {
		return nil, fmt.Errorf("%w: no fixtures submitted", ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(fixtures))
	for i := range fixtures {
		fixtures[i].Season = season
		fixtures[i].Week = week
		id := fixtures[i].ID
		if id == "" {
			return nil, fmt.Errorf("%w: fixture at position %d has no id", ErrInvalidInput, i)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: duplicate fixture id %s", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	if err := s.fixtureRepo.ReplaceWeek(ctx, season, week, fixtures); err != nil {
		return nil, fmt.Errorf("replace week fixtures: %w", err)
	}

	s.scoringSvc.InvalidateEnsure(season)
	return fixtures, nil
}

func (s *FixtureService) ListWeeks(ctx context.Context, season string) ([]int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListWeeks")
	defer span.End()

	season = strings.TrimSpace(season)
	if season == "" {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	weeks, err := s.fixtureRepo.ListWeeks(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("list weeks: %w", err)
	}
	return weeks, nil
}
