package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/matchm8/matchm8/internal/domain/player"
	"github.com/matchm8/matchm8/internal/domain/prediction"
	"github.com/matchm8/matchm8/internal/domain/result"
)

func newScoringFixture() (*ScoringService, *stubScoringRepository) {
	predictionRepo := &stubPredictionRepository{
		byWeek: map[string]map[string]prediction.Set{
			weekKey("2025", 1): {
				"p1": {
					"m1": {PlayerID: "p1", FixtureID: "m1", Home: 2, Away: 1},
					"m2": {PlayerID: "p1", FixtureID: "m2", Home: 0, Away: 0},
				},
				"p2": {
					"m1": {PlayerID: "p2", FixtureID: "m1", Home: 1, Away: 0},
				},
			},
		},
	}
	resultRepo := &stubResultRepository{
		byWeek: map[string]result.Set{
			weekKey("2025", 1): {
				"m1": {FixtureID: "m1", Home: 2, Away: 1},
				"m2": {FixtureID: "m2", Home: 1, Away: 1},
			},
		},
	}
	playerRepo := &stubPlayerRepository{
		players: []player.Player{
			{ID: "p1", DisplayName: "Alice"},
			{ID: "p2", DisplayName: "Bob"},
			{ID: "p3", DisplayName: "Carol"},
		},
	}
	scoringRepo := &stubScoringRepository{}
	return NewScoringService(predictionRepo, resultRepo, playerRepo, scoringRepo), scoringRepo
}

func TestScoringService_WeekTable(t *testing.T) {
	t.Parallel()

	service, _ := newScoringFixture()

	rows, err := service.WeekTable(context.Background(), "2025", 1)
	if err != nil {
		t.Fatalf("WeekTable error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	// Alice: exact on m1 (3) + draw outcome on m2 (1).
	if rows[0].PlayerID != "p1" || rows[0].Points != 4 {
		t.Fatalf("rows[0] = %+v", rows[0])
	}
	// Bob: home-win outcome on m1 (1).
	if rows[1].PlayerID != "p2" || rows[1].Points != 1 {
		t.Fatalf("rows[1] = %+v", rows[1])
	}
}

func TestScoringService_EnsureRebuildsSeasonTotals(t *testing.T) {
	t.Parallel()

	service, scoringRepo := newScoringFixture()

	if err := service.EnsureSeasonUpToDate(context.Background(), "2025"); err != nil {
		t.Fatalf("EnsureSeasonUpToDate error: %v", err)
	}

	totals, err := scoringRepo.ListSeasonTotals(context.Background(), "2025")
	if err != nil {
		t.Fatalf("ListSeasonTotals error: %v", err)
	}
	if len(totals) != 3 {
		t.Fatalf("expected full roster of 3, got %d", len(totals))
	}
	if totals[0].PlayerID != "p1" || totals[0].TotalPoints != 4 || totals[0].WeeksPlayed != 1 {
		t.Fatalf("totals[0] = %+v", totals[0])
	}
	// Carol never predicted but the directory is authoritative.
	if totals[2].PlayerID != "p3" || totals[2].TotalPoints != 0 || totals[2].WeeksPlayed != 0 {
		t.Fatalf("totals[2] = %+v", totals[2])
	}
}

func TestScoringService_EnsureSkipsWithinInterval(t *testing.T) {
	t.Parallel()

	service, scoringRepo := newScoringFixture()
	base := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	current := base
	service.now = func() time.Time { return current }

	if err := service.EnsureSeasonUpToDate(context.Background(), "2025"); err != nil {
		t.Fatalf("first ensure error: %v", err)
	}
	firstUpserts := scoringRepo.upserts
	if firstUpserts == 0 {
		t.Fatal("expected the first ensure to recompute")
	}

	// Within the interval: no recompute.
	current = base.Add(5 * time.Second)
	if err := service.EnsureSeasonUpToDate(context.Background(), "2025"); err != nil {
		t.Fatalf("second ensure error: %v", err)
	}
	if scoringRepo.upserts != firstUpserts {
		t.Fatalf("upserts = %d, want unchanged %d", scoringRepo.upserts, firstUpserts)
	}

	// After invalidation it recomputes again immediately.
	service.InvalidateEnsure("2025")
	if err := service.EnsureSeasonUpToDate(context.Background(), "2025"); err != nil {
		t.Fatalf("third ensure error: %v", err)
	}
	if scoringRepo.upserts == firstUpserts {
		t.Fatal("expected recompute after invalidation")
	}
}

func TestScoringService_RecalculateWeekIsIdempotent(t *testing.T) {
	t.Parallel()

	service, _ := newScoringFixture()

	first, err := service.RecalculateWeek(context.Background(), "2025", 1)
	if err != nil {
		t.Fatalf("first RecalculateWeek error: %v", err)
	}
	second, err := service.RecalculateWeek(context.Background(), "2025", 1)
	if err != nil {
		t.Fatalf("second RecalculateWeek error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("row counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].PlayerID != second[i].PlayerID || first[i].Points != second[i].Points {
			t.Fatalf("row %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
