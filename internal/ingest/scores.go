package ingest

import (
	"github.com/bytedance/sonic"

	"github.com/matchm8/matchm8/internal/domain/prediction"
	"github.com/matchm8/matchm8/internal/domain/result"
)

// DecodePredictions parses a raw submission payload and normalizes it.
func DecodePredictions(playerID string, data []byte) (prediction.Set, error) {
	var raw any
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return Predictions(playerID, raw), nil
}

// Predictions converts a decoded submission into a canonical set keyed by
// fixture id. Duplicate fixture ids overwrite, so the last entry in an
// array payload wins. Non-numeric scores coerce to 0 and everything clamps
// to the valid score range.
func Predictions(playerID string, raw any) prediction.Set {
	set := prediction.Set{}
	forEachScoreRecord(raw, func(fixtureID string, record map[string]any) {
		home, _ := firstInt(record, "home", "homeScore", "home_score")
		away, _ := firstInt(record, "away", "awayScore", "away_score")
		set[fixtureID] = prediction.Prediction{
			PlayerID:  playerID,
			FixtureID: fixtureID,
			Home:      home,
			Away:      away,
		}.Normalized()
	})
	return set
}

// DecodeResults parses a raw result payload and normalizes it.
func DecodeResults(data []byte) (result.Set, error) {
	var raw any
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return Results(raw), nil
}

// Results converts a decoded result payload into a canonical set keyed by
// fixture id. Same shape tolerance as Predictions.
func Results(raw any) result.Set {
	set := result.Set{}
	forEachScoreRecord(raw, func(fixtureID string, record map[string]any) {
		home, _ := firstInt(record, "home", "homeScore", "home_score")
		away, _ := firstInt(record, "away", "awayScore", "away_score")
		set[fixtureID] = result.Result{FixtureID: fixtureID, Home: home, Away: away}
	})
	return set
}

// forEachScoreRecord walks either shape a score payload can take: an array
// of records carrying their own fixture id, or an object keyed by fixture
// id. Records without a resolvable id are skipped.
func forEachScoreRecord(raw any, fn func(fixtureID string, record map[string]any)) {
	switch shaped := raw.(type) {
	case []any:
		for _, item := range shaped {
			record, ok := item.(map[string]any)
			if !ok {
				continue
			}
			id, ok := firstString(record, "fixtureId", "fixture_id", "id")
			if !ok {
				continue
			}
			fn(id, record)
		}
	case map[string]any:
		for key, item := range shaped {
			record, ok := item.(map[string]any)
			if !ok {
				continue
			}
			fn(key, record)
		}
	}
}
