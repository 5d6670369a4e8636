package ingest

import (
	"testing"

	"github.com/matchm8/matchm8/internal/domain/prediction"
)

func TestPredictionsArrayShape(t *testing.T) {
	payload := []byte(`[
		{"fixtureId":"m1","home":2,"away":1},
		{"fixture_id":"m2","homeScore":"3","awayScore":"0"},
		{"id":"m3","home":"garbage","away":null}
	]`)

	set, err := DecodePredictions("p1", payload)
	if err != nil {
		t.Fatalf("DecodePredictions: %v", err)
	}
	if len(set) != 3 {
		t.Fatalf("expected 3 predictions, got %d", len(set))
	}
	if p := set["m1"]; p.Home != 2 || p.Away != 1 || p.PlayerID != "p1" {
		t.Fatalf("m1 = %+v", p)
	}
	// String digits parse.
	if p := set["m2"]; p.Home != 3 || p.Away != 0 {
		t.Fatalf("m2 = %+v", p)
	}
	// Non-numeric coerces to zero.
	if p := set["m3"]; p.Home != 0 || p.Away != 0 {
		t.Fatalf("m3 = %+v", p)
	}
}

func TestPredictionsObjectShapeAndClamping(t *testing.T) {
	set := Predictions("p1", map[string]any{
		"m1": map[string]any{"home": 150.0, "away": -4.0},
	})
	if p := set["m1"]; p.Home != prediction.MaxScore || p.Away != prediction.MinScore {
		t.Fatalf("m1 = %+v, want clamped to [%d,%d]", p, prediction.MinScore, prediction.MaxScore)
	}
}

func TestPredictionsDuplicateIDLastWins(t *testing.T) {
	set := Predictions("p1", []any{
		map[string]any{"fixtureId": "m1", "home": 1.0, "away": 0.0},
		map[string]any{"fixtureId": "m1", "home": 2.0, "away": 2.0},
	})
	if len(set) != 1 {
		t.Fatalf("expected 1 prediction, got %d", len(set))
	}
	if p := set["m1"]; p.Home != 2 || p.Away != 2 {
		t.Fatalf("m1 = %+v, want the later entry", p)
	}
}

func TestPredictionsSkipsRecordsWithoutID(t *testing.T) {
	set := Predictions("p1", []any{
		map[string]any{"home": 1.0, "away": 0.0},
	})
	if len(set) != 0 {
		t.Fatalf("expected empty set, got %+v", set)
	}
}

func TestResults(t *testing.T) {
	payload := []byte(`{"m1":{"home":2,"away":2},"m2":{"homeScore":1,"awayScore":0}}`)
	set, err := DecodeResults(payload)
	if err != nil {
		t.Fatalf("DecodeResults: %v", err)
	}
	if r := set["m1"]; r.Home != 2 || r.Away != 2 || r.FixtureID != "m1" {
		t.Fatalf("m1 = %+v", r)
	}
	if r := set["m2"]; r.Home != 1 || r.Away != 0 {
		t.Fatalf("m2 = %+v", r)
	}
}
