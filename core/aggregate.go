package core

import (
	"strings"
	"time"

	"github.com/usagelab/telesnap/schema"
)

// LastUpdatedFormat renders the recency timestamp for dashboard display.
// RFC1123 with the zone forced to UTC before formatting.
const LastUpdatedFormat = time.RFC1123

// CollectRecords runs the row normalizer over all rows in one pass and
// returns the accepted records in input order. Rejected rows are silently
// excluded; they are routine, not errors.
func CollectRecords(rows []schema.RawRow, now time.Time) []schema.AnalyticsRecord {
	records := make([]schema.AnalyticsRecord, 0, len(rows))
	for _, row := range rows {
		if rec, ok := NormalizeRow(row, now); ok {
			records = append(records, rec)
		}
	}
	return records
}

// LatestActivity computes the most recent valid timestamp across all rows,
// independent of whether those rows pass the acceptance predicate: a row
// with an unknown platform still signals recent activity. The timestamp
// column is the first header containing the timestamp hint; when no such
// column exists, or no value parses, the second result is false.
func LatestActivity(headers []string, rows []schema.RawRow) (string, bool) {
	col := ""
	for _, h := range headers {
		if containsTimestampHint(h) {
			col = h
			break
		}
	}
	if col == "" {
		return "", false
	}

	var latest time.Time
	found := false
	for _, row := range rows {
		t, ok := ParseTimestamp(row[col])
		if !ok {
			continue
		}
		if !found || t.After(latest) {
			latest = t
			found = true
		}
	}
	if !found {
		return "", false
	}
	return latest.UTC().Format(LastUpdatedFormat), true
}

// containsTimestampHint reports whether a column name denotes the event
// time column.
func containsTimestampHint(name string) bool {
	return strings.Contains(strings.ToLower(name), schema.TimestampColumnHint)
}
