package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matchm8/matchm8/internal/domain/fixture"
	"github.com/matchm8/matchm8/internal/domain/gameconfig"
	"github.com/matchm8/matchm8/internal/domain/prediction"
)

func newLockServiceAt(cfg gameconfig.Config, fixtureRepo *stubFixtureRepository, now time.Time) *LockService {
	svc := NewLockService(&stubConfigRepository{cfg: cfg, exists: true}, fixtureRepo)
	svc.now = func() time.Time { return now }
	return svc
}

func TestPredictionService_SubmitWeek_MergesPartialSubmission(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2025, 9, 13, 15, 0, 0, 0, time.UTC)
	fixtureRepo := &stubFixtureRepository{
		byWeek: map[string][]fixture.Fixture{
			weekKey("2025", 1): {
				{ID: "m1", Season: "2025", Week: 1, KickoffAt: &kickoff},
				{ID: "m2", Season: "2025", Week: 1, KickoffAt: &kickoff},
			},
		},
	}
	now := kickoff.Add(-2 * time.Hour)
	lockSvc := newLockServiceAt(gameconfig.Default(), fixtureRepo, now)

	predictionRepo := &stubPredictionRepository{}
	service := NewPredictionService(lockSvc, predictionRepo)

	first := prediction.Set{
		"m1": {PlayerID: "p1", FixtureID: "m1", Home: 2, Away: 0},
		"m2": {PlayerID: "p1", FixtureID: "m2", Home: 1, Away: 1},
	}
	if _, err := service.SubmitWeek(context.Background(), "2025", 1, "p1", first); err != nil {
		t.Fatalf("first SubmitWeek error: %v", err)
	}

	// Resubmit only m1; m2 keeps the earlier pick.
	second := prediction.Set{
		"m1": {PlayerID: "p1", FixtureID: "m1", Home: 3, Away: 1},
	}
	merged, err := service.SubmitWeek(context.Background(), "2025", 1, "p1", second)
	if err != nil {
		t.Fatalf("second SubmitWeek error: %v", err)
	}
	if len(merged) != 2 {
		t.Fatalf("expected 2 predictions after merge, got %d", len(merged))
	}
	if p := merged["m1"]; p.Home != 3 || p.Away != 1 {
		t.Fatalf("m1 = %+v, want resubmitted pick", p)
	}
	if p := merged["m2"]; p.Home != 1 || p.Away != 1 {
		t.Fatalf("m2 = %+v, want earlier pick retained", p)
	}
}

func TestPredictionService_SubmitWeek_RejectsLockedFixture(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2025, 9, 13, 15, 0, 0, 0, time.UTC)
	fixtureRepo := &stubFixtureRepository{
		byWeek: map[string][]fixture.Fixture{
			weekKey("2025", 1): {
				{ID: "m1", Season: "2025", Week: 1, KickoffAt: &kickoff},
			},
		},
	}
	cfg := gameconfig.Config{
		DeadlineMode:      gameconfig.ModeFirstKickoff,
		LockOffsetMinutes: 10,
	}
	// Exactly at the lock instant: locked.
	now := kickoff.Add(-10 * time.Minute)
	lockSvc := newLockServiceAt(cfg, fixtureRepo, now)

	service := NewPredictionService(lockSvc, &stubPredictionRepository{})
	_, err := service.SubmitWeek(context.Background(), "2025", 1, "p1", prediction.Set{
		"m1": {PlayerID: "p1", FixtureID: "m1", Home: 1, Away: 0},
	})
	if !errors.Is(err, ErrWeekLocked) {
		t.Fatalf("expected ErrWeekLocked, got %v", err)
	}
}

func TestPredictionService_SubmitWeek_FirstKickoffLocksWholeWeek(t *testing.T) {
	t.Parallel()

	early := time.Date(2025, 9, 13, 12, 0, 0, 0, time.UTC)
	late := time.Date(2025, 9, 14, 15, 0, 0, 0, time.UTC)
	fixtureRepo := &stubFixtureRepository{
		byWeek: map[string][]fixture.Fixture{
			weekKey("2025", 1): {
				{ID: "m1", Season: "2025", Week: 1, KickoffAt: &early},
				{ID: "m2", Season: "2025", Week: 1, KickoffAt: &late},
			},
		},
	}
	// After the early kickoff but well before the late one.
	now := early.Add(time.Hour)
	lockSvc := newLockServiceAt(gameconfig.Default(), fixtureRepo, now)

	service := NewPredictionService(lockSvc, &stubPredictionRepository{})
	_, err := service.SubmitWeek(context.Background(), "2025", 1, "p1", prediction.Set{
		"m2": {PlayerID: "p1", FixtureID: "m2", Home: 1, Away: 0},
	})
	if !errors.Is(err, ErrWeekLocked) {
		t.Fatalf("expected ErrWeekLocked for week-locked fixture, got %v", err)
	}
}

func TestPredictionService_SubmitWeek_PerMatchAllowsOpenFixture(t *testing.T) {
	t.Parallel()

	early := time.Date(2025, 9, 13, 12, 0, 0, 0, time.UTC)
	late := time.Date(2025, 9, 14, 15, 0, 0, 0, time.UTC)
	fixtureRepo := &stubFixtureRepository{
		byWeek: map[string][]fixture.Fixture{
			weekKey("2025", 1): {
				{ID: "m1", Season: "2025", Week: 1, KickoffAt: &early},
				{ID: "m2", Season: "2025", Week: 1, KickoffAt: &late},
			},
		},
	}
	cfg := gameconfig.Config{DeadlineMode: gameconfig.ModePerMatch}
	now := early.Add(time.Hour)
	lockSvc := newLockServiceAt(cfg, fixtureRepo, now)

	service := NewPredictionService(lockSvc, &stubPredictionRepository{})
	if _, err := service.SubmitWeek(context.Background(), "2025", 1, "p1", prediction.Set{
		"m2": {PlayerID: "p1", FixtureID: "m2", Home: 1, Away: 0},
	}); err != nil {
		t.Fatalf("open fixture under per_match should accept, got %v", err)
	}
}

func TestPredictionService_SubmitWeek_RejectsUnknownFixture(t *testing.T) {
	t.Parallel()

	fixtureRepo := &stubFixtureRepository{
		byWeek: map[string][]fixture.Fixture{
			weekKey("2025", 1): {{ID: "m1", Season: "2025", Week: 1}},
		},
	}
	lockSvc := newLockServiceAt(gameconfig.Default(), fixtureRepo, time.Now())

	service := NewPredictionService(lockSvc, &stubPredictionRepository{})
	_, err := service.SubmitWeek(context.Background(), "2025", 1, "p1", prediction.Set{
		"nope": {PlayerID: "p1", FixtureID: "nope", Home: 1, Away: 0},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
