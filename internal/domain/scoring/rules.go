package scoring

import (
	"github.com/matchm8/matchm8/internal/domain/prediction"
	"github.com/matchm8/matchm8/internal/domain/result"
)

const (
	// PointsExact is awarded when the predicted scoreline matches exactly.
	PointsExact = 3
	// PointsOutcome is awarded when only the outcome (home win, draw, away
	// win) matches.
	PointsOutcome = 1
)

// PointsFor scores a single prediction against the actual result. A nil
// actual means the match has no recorded result yet and scores zero.
func PointsFor(p prediction.Prediction, actual *result.Result) int {
	if actual == nil {
		return 0
	}
	if p.Home == actual.Home && p.Away == actual.Away {
		return PointsExact
	}
	if outcome(p.Home, p.Away) == outcome(actual.Home, actual.Away) {
		return PointsOutcome
	}
	return 0
}

func outcome(home, away int) int {
	switch {
	case home > away:
		return 1
	case home < away:
		return -1
	default:
		return 0
	}
}
