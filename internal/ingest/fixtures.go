// Package ingest normalizes the heterogeneous JSON shapes upstream feeds
// publish into the canonical domain records. Feeds disagree on field names,
// on arrays versus id-keyed objects, and on nesting, so all of that
// tolerance lives here and nowhere else.
package ingest

import (
	"sort"
	"strconv"

	"github.com/bytedance/sonic"

	"github.com/matchm8/matchm8/internal/domain/fixture"
)

// DecodeFixtures parses a raw feed payload and normalizes it.
func DecodeFixtures(season string, week int, data []byte) ([]fixture.Fixture, error) {
	var raw any
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return Fixtures(season, week, raw), nil
}

// Fixtures converts an already-decoded payload into canonical fixtures.
// The payload may be an array of records or an object keyed by fixture id.
// A record without any id synonym gets a stable "<week>-<index+1>" fallback.
// Records that are not objects are skipped.
func Fixtures(season string, week int, raw any) []fixture.Fixture {
	switch shaped := raw.(type) {
	case []any:
		out := make([]fixture.Fixture, 0, len(shaped))
		for i, item := range shaped {
			record, ok := item.(map[string]any)
			if !ok {
				continue
			}
			fx := fixtureFrom(season, week, record)
			if fx.ID == "" {
				fx.ID = strconv.Itoa(week) + "-" + strconv.Itoa(i+1)
			}
			out = append(out, fx)
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(shaped))
		for key := range shaped {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		out := make([]fixture.Fixture, 0, len(keys))
		for _, key := range keys {
			record, ok := shaped[key].(map[string]any)
			if !ok {
				continue
			}
			fx := fixtureFrom(season, week, record)
			if fx.ID == "" {
				fx.ID = key
			}
			out = append(out, fx)
		}
		return out
	default:
		return []fixture.Fixture{}
	}
}

func fixtureFrom(season string, week int, record map[string]any) fixture.Fixture {
	fx := fixture.Fixture{Season: season, Week: week}
	fx.ID, _ = firstString(record, "id", "fixtureId", "fixture_id")
	fx.HomeTeam, _ = firstTeam(record, "home", "homeTeam", "home_team")
	fx.AwayTeam, _ = firstTeam(record, "away", "awayTeam", "away_team")
	if kickoff, ok := firstTime(record, "kickoff", "kickoffAt", "kickoff_at", "kickoff_time"); ok {
		fx.KickoffAt = &kickoff
	}
	return fx
}
