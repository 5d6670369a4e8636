package ingest

import (
	"testing"
	"time"
)

func TestFixturesArrayWithSynonyms(t *testing.T) {
	payload := []byte(`[
		{"id":"m1","home":"Arsenal","away":"Spurs","kickoff":"2025-09-13T14:00:00Z"},
		{"fixture_id":"m2","homeTeam":"Leeds","awayTeam":"Everton","kickoff_at":"2025-09-13T16:30:00Z"},
		{"home_team":{"name":"Wolves"},"away_team":{"name":"Brentford"}}
	]`)

	fixtures, err := DecodeFixtures("2025", 3, payload)
	if err != nil {
		t.Fatalf("DecodeFixtures: %v", err)
	}
	if len(fixtures) != 3 {
		t.Fatalf("expected 3 fixtures, got %d", len(fixtures))
	}

	if fixtures[0].ID != "m1" || fixtures[0].HomeTeam != "Arsenal" || fixtures[0].AwayTeam != "Spurs" {
		t.Fatalf("fixtures[0] = %+v", fixtures[0])
	}
	want := time.Date(2025, 9, 13, 14, 0, 0, 0, time.UTC)
	if fixtures[0].KickoffAt == nil || !fixtures[0].KickoffAt.Equal(want) {
		t.Fatalf("fixtures[0].KickoffAt = %v", fixtures[0].KickoffAt)
	}

	if fixtures[1].ID != "m2" || fixtures[1].HomeTeam != "Leeds" {
		t.Fatalf("fixtures[1] = %+v", fixtures[1])
	}

	// No id anywhere: stable fallback from week and position.
	if fixtures[2].ID != "3-3" {
		t.Fatalf("fixtures[2].ID = %q, want fallback 3-3", fixtures[2].ID)
	}
	if fixtures[2].HomeTeam != "Wolves" || fixtures[2].AwayTeam != "Brentford" {
		t.Fatalf("fixtures[2] = %+v", fixtures[2])
	}
	if fixtures[2].KickoffAt != nil {
		t.Fatalf("fixtures[2].KickoffAt = %v, want nil", fixtures[2].KickoffAt)
	}
}

func TestFixturesObjectKeyedByID(t *testing.T) {
	payload := []byte(`{
		"m2": {"home":"Leeds","away":"Everton"},
		"m1": {"home":"Arsenal","away":"Spurs"}
	}`)

	fixtures, err := DecodeFixtures("2025", 1, payload)
	if err != nil {
		t.Fatalf("DecodeFixtures: %v", err)
	}
	if len(fixtures) != 2 {
		t.Fatalf("expected 2 fixtures, got %d", len(fixtures))
	}
	// Object keys are sorted so the output is deterministic.
	if fixtures[0].ID != "m1" || fixtures[1].ID != "m2" {
		t.Fatalf("order = %s, %s", fixtures[0].ID, fixtures[1].ID)
	}
}

func TestFixturesSynonymPriority(t *testing.T) {
	fixtures := Fixtures("2025", 1, []any{
		map[string]any{
			"id":       "m1",
			"home":     "First",
			"homeTeam": "Second",
			"away":     "A",
		},
	})
	if fixtures[0].HomeTeam != "First" {
		t.Fatalf("HomeTeam = %q, want first synonym to win", fixtures[0].HomeTeam)
	}
}

func TestFixturesSkipsNonObjects(t *testing.T) {
	fixtures := Fixtures("2025", 1, []any{"junk", 42.0, map[string]any{"id": "m1"}})
	if len(fixtures) != 1 || fixtures[0].ID != "m1" {
		t.Fatalf("fixtures = %+v", fixtures)
	}
}

func TestFixturesUnrecognizedShape(t *testing.T) {
	if got := Fixtures("2025", 1, "not a collection"); len(got) != 0 {
		t.Fatalf("expected empty slice, got %+v", got)
	}
}

func TestFixturesBareDateKickoff(t *testing.T) {
	fixtures := Fixtures("2025", 1, []any{
		map[string]any{"id": "m1", "kickoff": "2025-09-13"},
	})
	want := time.Date(2025, 9, 13, 0, 0, 0, 0, time.UTC)
	if fixtures[0].KickoffAt == nil || !fixtures[0].KickoffAt.Equal(want) {
		t.Fatalf("KickoffAt = %v, want %v", fixtures[0].KickoffAt, want)
	}
}
