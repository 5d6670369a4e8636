package locks

import (
	"time"

	"github.com/matchm8/matchm8/internal/domain/fixture"
	"github.com/matchm8/matchm8/internal/domain/gameconfig"
)

// FixtureLock reports whether one fixture still accepts predictions.
// LockAt is nil for fixtures without a kickoff; those never lock.
type FixtureLock struct {
	Locked bool
	LockAt *time.Time
}

// Status is the lock state of a week as of one instant. Under per_match
// mode no week-level flag exists: WeekLocked stays false, WeekLockAt nil,
// and callers must consult the per-fixture map.
type Status struct {
	Mode       gameconfig.DeadlineMode
	WeekLocked bool
	WeekLockAt *time.Time
	Fixtures   map[string]FixtureLock
}

// Compute classifies each fixture, and the week, as locked or open as of
// now. The comparison is inclusive: at exactly kickoff minus the offset the
// fixture counts as locked. Malformed config degrades to permissive
// defaults; the engine never fails.
func Compute(fixtures []fixture.Fixture, cfg gameconfig.Config, now time.Time) Status {
	cfg = cfg.Normalized()
	now = now.UTC()
	offset := time.Duration(cfg.LockOffsetMinutes) * time.Minute

	status := Status{
		Mode:     cfg.DeadlineMode,
		Fixtures: make(map[string]FixtureLock, len(fixtures)),
	}

	earliest := time.Time{}
	for _, item := range fixtures {
		if item.KickoffAt == nil {
			status.Fixtures[item.ID] = FixtureLock{}
			continue
		}

		lockAt := item.KickoffAt.UTC().Add(-offset)
		status.Fixtures[item.ID] = FixtureLock{
			Locked: !now.Before(lockAt),
			LockAt: &lockAt,
		}
		if earliest.IsZero() || lockAt.Before(earliest) {
			earliest = lockAt
		}
	}

	if cfg.DeadlineMode == gameconfig.ModeFirstKickoff && !earliest.IsZero() {
		weekLockAt := earliest
		status.WeekLockAt = &weekLockAt
		status.WeekLocked = !now.Before(weekLockAt)
	}

	return status
}

// FixtureLocked reports the lock state of one fixture under the computed
// status, honoring the week-level flag in first_kickoff mode. Unknown
// fixture ids are treated as open.
func (s Status) FixtureLocked(fixtureID string) bool {
	if s.Mode == gameconfig.ModeFirstKickoff && s.WeekLocked {
		return true
	}
	return s.Fixtures[fixtureID].Locked
}
