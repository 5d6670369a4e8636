package prediction

const (
	MinScore = 0
	MaxScore = 99
)

// Prediction is one player's predicted score for one fixture.
type Prediction struct {
	PlayerID  string
	FixtureID string
	Home      int
	Away      int
}

// Set holds one player's picks for a week, keyed by fixture id.
type Set map[string]Prediction

// ClampScore forces a predicted score into the accepted range.
func ClampScore(value int) int {
	if value < MinScore {
		return MinScore
	}
	if value > MaxScore {
		return MaxScore
	}
	return value
}

// Normalized returns a copy of the prediction with both scores clamped.
func (p Prediction) Normalized() Prediction {
	p.Home = ClampScore(p.Home)
	p.Away = ClampScore(p.Away)
	return p
}

// Merge overlays incoming picks onto prev: the last submission wins per
// fixture id, and prior picks for untouched fixtures are retained. Neither
// input is mutated.
func Merge(prev, incoming Set) Set {
	out := make(Set, len(prev)+len(incoming))
	for fixtureID, pick := range prev {
		out[fixtureID] = pick
	}
	for fixtureID, pick := range incoming {
		pick.FixtureID = fixtureID
		out[fixtureID] = pick.Normalized()
	}
	return out
}
