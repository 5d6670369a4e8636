package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/matchm8/matchm8/internal/domain/gameconfig"
)

type ConfigService struct {
	configRepo gameconfig.Repository
}

func NewConfigService(configRepo gameconfig.Repository) *ConfigService {
	return &ConfigService{configRepo: configRepo}
}

func (s *ConfigService) Get(ctx context.Context) (gameconfig.Config, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ConfigService.Get")
	defer span.End()

	cfg, exists, err := s.configRepo.Get(ctx)
	if err != nil {
		return gameconfig.Config{}, fmt.Errorf("get game config: %w", err)
	}
	if !exists {
		return gameconfig.Default(), nil
	}
	return cfg.Normalized(), nil
}

// Update validates strictly. Reads degrade malformed config to permissive
// defaults, but an admin write with bad values is rejected outright.
func (s *ConfigService) Update(ctx context.Context, cfg gameconfig.Config) (gameconfig.Config, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ConfigService.Update")
	defer span.End()

	if cfg.DeadlineMode != gameconfig.ModeFirstKickoff && cfg.DeadlineMode != gameconfig.ModePerMatch {
		return gameconfig.Config{}, fmt.Errorf("%w: unknown deadline mode %q", ErrInvalidInput, cfg.DeadlineMode)
	}
	if cfg.LockOffsetMinutes < 0 {
		return gameconfig.Config{}, fmt.Errorf("%w: lock offset must be non-negative", ErrInvalidInput)
	}
	if cfg.Timezone != "" {
		if _, err := time.LoadLocation(cfg.Timezone); err != nil {
			return gameconfig.Config{}, fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, cfg.Timezone)
		}
	}
	cfg = cfg.Normalized()

	if err := s.configRepo.Save(ctx, cfg); err != nil {
		return gameconfig.Config{}, fmt.Errorf("save game config: %w", err)
	}
	return cfg, nil
}
