package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/matchm8/matchm8/internal/domain/prediction"
)

// PredictionService is the write boundary for player picks. The lock engine
// only reports state; rejecting a submission for a locked fixture happens
// here, before anything is persisted.
type PredictionService struct {
	lockSvc        *LockService
	predictionRepo prediction.Repository
}

func NewPredictionService(lockSvc *LockService, predictionRepo prediction.Repository) *PredictionService {
	return &PredictionService{
		lockSvc:        lockSvc,
		predictionRepo: predictionRepo,
	}
}

// SubmitWeek merges the incoming picks into the player's existing set for
// the week. Partial submissions are fine: untouched fixtures keep their
// previous pick, resubmitted fixtures take the new one. Any targeted
// fixture that is already locked rejects the whole submission.
func (s *PredictionService) SubmitWeek(ctx context.Context, season string, week int, playerID string, incoming prediction.Set) (prediction.Set, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.SubmitWeek")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if len(incoming) == 0 {
		return nil, fmt.Errorf("%w: no predictions submitted", ErrInvalidInput)
	}

	status, err := s.lockSvc.StatusForWeek(ctx, season, week)
	if err != nil {
		return nil, err
	}
	for fixtureID := range incoming {
		if _, known := status.Fixtures[fixtureID]; !known {
			return nil, fmt.Errorf("%w: unknown fixture %s", ErrInvalidInput, fixtureID)
		}
		if status.FixtureLocked(fixtureID) {
			return nil, fmt.Errorf("%w: fixture %s", ErrWeekLocked, fixtureID)
		}
	}

	previous, _, err := s.predictionRepo.GetWeek(ctx, season, week, playerID)
	if err != nil {
		return nil, fmt.Errorf("get existing predictions: %w", err)
	}

	merged := prediction.Merge(previous, incoming)
	if err := s.predictionRepo.SaveWeek(ctx, season, week, playerID, merged); err != nil {
		return nil, fmt.Errorf("save predictions: %w", err)
	}

	return merged, nil
}

func (s *PredictionService) GetWeek(ctx context.Context, season string, week int, playerID string) (prediction.Set, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.GetWeek")
	defer span.End()

	season = strings.TrimSpace(season)
	playerID = strings.TrimSpace(playerID)
	if season == "" || playerID == "" {
		return nil, fmt.Errorf("%w: season and player id are required", ErrInvalidInput)
	}
	if week < 1 {
		return nil, fmt.Errorf("%w: week must be positive", ErrInvalidInput)
	}

	set, exists, err := s.predictionRepo.GetWeek(ctx, season, week, playerID)
	if err != nil {
		return nil, fmt.Errorf("get predictions: %w", err)
	}
	if !exists {
		return prediction.Set{}, nil
	}
	return set, nil
}
