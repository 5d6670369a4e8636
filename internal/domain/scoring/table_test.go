package scoring

import (
	"testing"
	"time"

	"github.com/matchm8/matchm8/internal/domain/player"
	"github.com/matchm8/matchm8/internal/domain/prediction"
	"github.com/matchm8/matchm8/internal/domain/result"
)

func TestBuildWeekTable(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	dir := player.Directory{"p1": "Alice", "p2": "Bob", "p3": "Carol"}
	results := result.Set{
		"m1": {FixtureID: "m1", Home: 2, Away: 1},
		"m2": {FixtureID: "m2", Home: 0, Away: 0},
	}
	preds := map[string]prediction.Set{
		"p1": {
			"m1": {PlayerID: "p1", FixtureID: "m1", Home: 2, Away: 1},
			"m2": {PlayerID: "p1", FixtureID: "m2", Home: 1, Away: 1},
		},
		"p2": {
			"m1": {PlayerID: "p2", FixtureID: "m1", Home: 1, Away: 0},
			"m2": {PlayerID: "p2", FixtureID: "m2", Home: 0, Away: 2},
		},
		"p3": {
			"m3": {PlayerID: "p3", FixtureID: "m3", Home: 1, Away: 0},
		},
	}

	rows := BuildWeekTable(preds, results, dir, now)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].PlayerID != "p1" || rows[0].Points != 4 {
		t.Fatalf("top row = %s/%d, want p1/4", rows[0].PlayerID, rows[0].Points)
	}
	if rows[1].PlayerID != "p2" || rows[1].Points != 1 {
		t.Fatalf("second row = %s/%d, want p2/1", rows[1].PlayerID, rows[1].Points)
	}
	// m3 has no result, so p3 scores zero.
	if rows[2].PlayerID != "p3" || rows[2].Points != 0 {
		t.Fatalf("third row = %s/%d, want p3/0", rows[2].PlayerID, rows[2].Points)
	}
	if !rows[0].CalculatedAt.Equal(now) {
		t.Fatalf("CalculatedAt = %v, want %v", rows[0].CalculatedAt, now)
	}
}

func TestBuildWeekTableTieBreaksByName(t *testing.T) {
	now := time.Now()
	dir := player.Directory{"pz": "Zoe", "pa": "Ann"}
	results := result.Set{"m1": {FixtureID: "m1", Home: 1, Away: 0}}
	preds := map[string]prediction.Set{
		"pz": {"m1": {PlayerID: "pz", FixtureID: "m1", Home: 1, Away: 0}},
		"pa": {"m1": {PlayerID: "pa", FixtureID: "m1", Home: 1, Away: 0}},
	}

	rows := BuildWeekTable(preds, results, dir, now)
	if rows[0].DisplayName != "Ann" || rows[1].DisplayName != "Zoe" {
		t.Fatalf("tie order = %s, %s; want Ann, Zoe", rows[0].DisplayName, rows[1].DisplayName)
	}
}

func TestBuildWeekTableOrderStableForTiedUnknownPlayers(t *testing.T) {
	now := time.Now()
	results := result.Set{"m1": {FixtureID: "m1", Home: 1, Away: 0}}
	preds := map[string]prediction.Set{
		"pa": {"m1": {PlayerID: "pa", FixtureID: "m1", Home: 1, Away: 0}},
		"pb": {"m1": {PlayerID: "pb", FixtureID: "m1", Home: 1, Away: 0}},
	}

	// Both players are absent from the directory, so points and names tie
	// and only the player id can order them.
	first := BuildWeekTable(preds, results, player.Directory{}, now)
	if first[0].PlayerID != "pa" || first[1].PlayerID != "pb" {
		t.Fatalf("tie order = %s, %s; want pa, pb", first[0].PlayerID, first[1].PlayerID)
	}
	for i := 0; i < 200; i++ {
		again := BuildWeekTable(preds, results, player.Directory{}, now)
		for j := range first {
			if again[j].PlayerID != first[j].PlayerID {
				t.Fatalf("run %d row %d = %s, first run had %s", i, j, again[j].PlayerID, first[j].PlayerID)
			}
		}
	}
}

func TestBuildWeekTableUnknownPlayerHasEmptyName(t *testing.T) {
	rows := BuildWeekTable(map[string]prediction.Set{
		"ghost": {"m1": {PlayerID: "ghost", FixtureID: "m1", Home: 1, Away: 1}},
	}, result.Set{}, player.Directory{}, time.Now())
	if rows[0].DisplayName != "" {
		t.Fatalf("DisplayName = %q, want empty for unknown player", rows[0].DisplayName)
	}
	if rows[0].PlayerID != "ghost" {
		t.Fatalf("PlayerID = %q", rows[0].PlayerID)
	}
}
