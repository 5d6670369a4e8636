package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/matchm8/matchm8/internal/domain/fixture"
	"github.com/matchm8/matchm8/internal/domain/gameconfig"
	"github.com/matchm8/matchm8/internal/domain/locks"
)

// LockService answers "which fixtures still accept predictions" for a week.
// The lock computation itself is pure; this service supplies it with the
// current config and fixtures and the current clock.
type LockService struct {
	configRepo  gameconfig.Repository
	fixtureRepo fixture.Repository
	now         func() time.Time
}

func NewLockService(configRepo gameconfig.Repository, fixtureRepo fixture.Repository) *LockService {
	return &LockService{
		configRepo:  configRepo,
		fixtureRepo: fixtureRepo,
		now:         time.Now,
	}
}

func (s *LockService) StatusForWeek(ctx context.Context, season string, week int) (locks.Status, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LockService.StatusForWeek")
	defer span.End()

	season = strings.TrimSpace(season)
	if season == "" {
		return locks.Status{}, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	if week < 1 {
		return locks.Status{}, fmt.Errorf("%w: week must be positive", ErrInvalidInput)
	}

	cfg, err := s.currentConfig(ctx)
	if err != nil {
		return locks.Status{}, err
	}

	fixtures, err := s.fixtureRepo.ListByWeek(ctx, season, week)
	if err != nil {
		return locks.Status{}, fmt.Errorf("list fixtures for lock status: %w", err)
	}

	return locks.Compute(fixtures, cfg, s.now().UTC()), nil
}

// currentConfig reads the config fresh on every call. Lock decisions must
// see admin changes immediately, so no caching here.
func (s *LockService) currentConfig(ctx context.Context) (gameconfig.Config, error) {
	cfg, exists, err := s.configRepo.Get(ctx)
	if err != nil {
		return gameconfig.Config{}, fmt.Errorf("get game config: %w", err)
	}
	if !exists {
		return gameconfig.Default(), nil
	}
	return cfg.Normalized(), nil
}
