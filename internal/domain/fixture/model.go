package fixture

import "time"

// Fixture represents one scheduled match within a week. A nil KickoffAt
// means the kickoff is not yet known; such a fixture never locks.
type Fixture struct {
	ID        string
	Season    string
	Week      int
	HomeTeam  string
	AwayTeam  string
	KickoffAt *time.Time
}

// EarliestKickoff returns the smallest known kickoff among the fixtures.
func EarliestKickoff(items []Fixture) (time.Time, bool) {
	min := time.Time{}
	for _, item := range items {
		if item.KickoffAt == nil {
			continue
		}
		if min.IsZero() || item.KickoffAt.Before(min) {
			min = *item.KickoffAt
		}
	}
	if min.IsZero() {
		return time.Time{}, false
	}
	return min, true
}
