package core

import "github.com/usagelab/telesnap/schema"

// BuildBreakdown counts accepted records per platform, backend and
// database and tracks the date range. Used by the stats command only; the
// snapshot itself carries the raw records.
func BuildBreakdown(records []schema.AnalyticsRecord) schema.Breakdown {
	b := schema.Breakdown{
		Total:     len(records),
		Platforms: make(map[string]int),
		Backends:  make(map[string]int),
		Databases: make(map[string]int),
	}
	for _, rec := range records {
		b.Platforms[rec.Platform]++
		b.Backends[rec.Backend]++
		b.Databases[rec.Database]++

		// Dates are YYYY-MM-DD, so lexicographic comparison is enough.
		if b.FirstDate == "" || rec.Date < b.FirstDate {
			b.FirstDate = rec.Date
		}
		if rec.Date > b.LastDate {
			b.LastDate = rec.Date
		}
	}
	return b
}
