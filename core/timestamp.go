// Package core implements the telemetry snapshot pipeline: row
// normalization, recency aggregation and snapshot assembly.
package core

import (
	"strings"
	"time"
)

// timestampLayouts are tried in order when parsing a raw timestamp value.
// The export emits ISO-8601 with a zone suffix, but older rows use a bare
// space-separated form.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp attempts to parse a raw timestamp string. The boolean
// result is false for empty or malformed input; the caller decides what
// default to substitute.
func ParseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ResolveTimestamp derives the calendar date and UTC hour-of-day bucket
// from a raw timestamp value. An absent value is replaced by now before
// any further processing, so rows without a timestamp are never rejected
// on that account. The date is the substring before the first 'T', else
// before the first space, else the whole string; an unparseable string
// keeps its raw substring as the date but falls back to hour 0.
func ResolveTimestamp(raw string, now time.Time) (date string, hour int) {
	if strings.TrimSpace(raw) == "" {
		raw = now.UTC().Format(time.RFC3339)
	}

	switch {
	case strings.Contains(raw, "T"):
		date = raw[:strings.Index(raw, "T")]
	case strings.Contains(raw, " "):
		date = raw[:strings.Index(raw, " ")]
	default:
		date = raw
	}

	if t, ok := ParseTimestamp(raw); ok {
		hour = t.UTC().Hour()
	}
	return date, hour
}
