package ingest

import (
	"strconv"
	"strings"
	"time"
)

// asInt coerces the numeric shapes a JSON decoder can hand back. Anything
// unparseable reports false so callers can apply their safe default.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// teamName accepts either a plain string or a nested object carrying a
// "name" field, the two shapes upstream feeds use for team references.
func teamName(v any) (string, bool) {
	if s, ok := asString(v); ok {
		return s, true
	}
	if m, ok := v.(map[string]any); ok {
		return asString(m["name"])
	}
	return "", false
}

// firstString returns the first present synonym field, in priority order.
func firstString(m map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		if v, ok := m[key]; ok {
			if s, ok := asString(v); ok {
				return s, true
			}
		}
	}
	return "", false
}

func firstTeam(m map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		if v, ok := m[key]; ok {
			if s, ok := teamName(v); ok {
				return s, true
			}
		}
	}
	return "", false
}

func firstInt(m map[string]any, keys ...string) (int, bool) {
	for _, key := range keys {
		if v, ok := m[key]; ok {
			if n, ok := asInt(v); ok {
				return n, true
			}
		}
	}
	return 0, false
}

// asTime parses the timestamp formats seen in upstream payloads. RFC3339 is
// the canonical form; a bare date means midnight UTC.
func asTime(v any) (time.Time, bool) {
	s, ok := asString(v)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func firstTime(m map[string]any, keys ...string) (time.Time, bool) {
	for _, key := range keys {
		if v, ok := m[key]; ok {
			if t, ok := asTime(v); ok {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
