package gameconfig

import "strings"

// DeadlineMode selects how prediction lock windows are derived.
type DeadlineMode string

const (
	// ModeFirstKickoff locks the whole week at the earliest fixture's
	// lock instant.
	ModeFirstKickoff DeadlineMode = "first_kickoff"
	// ModePerMatch locks each fixture independently.
	ModePerMatch DeadlineMode = "per_match"
)

const DefaultTimezone = "UTC"

// Config stores the prediction-game rules for a season. The timezone is
// informational only; every lock comparison happens in UTC.
type Config struct {
	Season            string
	DeadlineMode      DeadlineMode
	LockOffsetMinutes int
	Timezone          string
}

func Default() Config {
	return Config{
		DeadlineMode:      ModeFirstKickoff,
		LockOffsetMinutes: 0,
		Timezone:          DefaultTimezone,
	}
}

// Normalized returns a copy with every malformed or missing field replaced
// by its permissive default. Lock decisions must never fail on bad config,
// so this is the only validation the engine applies.
func (c Config) Normalized() Config {
	out := c
	switch NormalizeMode(string(c.DeadlineMode)) {
	case ModePerMatch:
		out.DeadlineMode = ModePerMatch
	default:
		out.DeadlineMode = ModeFirstKickoff
	}
	if out.LockOffsetMinutes < 0 {
		out.LockOffsetMinutes = 0
	}
	if strings.TrimSpace(out.Timezone) == "" {
		out.Timezone = DefaultTimezone
	}
	return out
}

func NormalizeMode(value string) DeadlineMode {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(ModePerMatch):
		return ModePerMatch
	case string(ModeFirstKickoff):
		return ModeFirstKickoff
	default:
		return ""
	}
}
