package core

import (
	"fmt"
	"time"

	"github.com/usagelab/telesnap/schema"
)

// scalarOrDefault looks up a scalar column and substitutes its documented
// sentinel from the defaults table when the column is absent or empty.
func scalarOrDefault(row schema.RawRow, col string) string {
	if v := row[col]; v != "" {
		return v
	}
	return schema.ScalarDefaults[col]
}

// boolColumn normalizes a string-encoded boolean column. Only the exact
// literal "True" counts as enabled.
func boolColumn(row schema.RawRow, col string) string {
	if row[col] == schema.TrueLiteral {
		return schema.SentinelEnabled
	}
	return schema.SentinelDisabled
}

// indexedSlot reads one slot of a dotted multi-select column, e.g.
// indexedSlot(row, "addons", 2) reads "addons.2". Missing slots are empty.
func indexedSlot(row schema.RawRow, col string, idx int) string {
	return row[fmt.Sprintf("%s.%d", col, idx)]
}

// indexedSlots reads n slots of a multi-select column in order and keeps
// only the non-empty values, preserving slot order. No de-duplication.
func indexedSlots(row schema.RawRow, col string, n int) []string {
	out := make([]string, 0, n)
	for i := range n {
		if v := indexedSlot(row, col, i); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// NormalizeRow converts one raw CSV row into a validated AnalyticsRecord.
// The second result is false when the row fails the acceptance predicate
// (empty date or unknown platform) and must be excluded from the output.
// Normalization never fails: malformed fields degrade to their documented
// defaults so a single bad row cannot stop the batch.
func NormalizeRow(row schema.RawRow, now time.Time) (schema.AnalyticsRecord, bool) {
	date, hour := ResolveTimestamp(row[timestampColumn(row)], now)

	rec := schema.AnalyticsRecord{
		Date:           date,
		Hour:           hour,
		CLIVersion:     scalarOrDefault(row, schema.ColCLIVersion),
		NodeVersion:    scalarOrDefault(row, schema.ColNodeVersion),
		Platform:       scalarOrDefault(row, schema.ColPlatform),
		Backend:        scalarOrDefault(row, schema.ColBackend),
		Database:       scalarOrDefault(row, schema.ColDatabase),
		ORM:            scalarOrDefault(row, schema.ColORM),
		DBSetup:        scalarOrDefault(row, schema.ColDBSetup),
		API:            scalarOrDefault(row, schema.ColAPI),
		PackageManager: scalarOrDefault(row, schema.ColPackageManager),
		Runtime:        scalarOrDefault(row, schema.ColRuntime),
		Auth:           boolColumn(row, schema.ColAuth),
		Git:            boolColumn(row, schema.ColGit),
		Install:        boolColumn(row, schema.ColInstall),
		Frontend0:      indexedSlot(row, schema.ColFrontend, 0),
		Frontend1:      indexedSlot(row, schema.ColFrontend, 1),
		Examples0:      indexedSlot(row, schema.ColExamples, 0),
		Examples1:      indexedSlot(row, schema.ColExamples, 1),
		Addons:         indexedSlots(row, schema.ColAddons, schema.AddonSlots),
	}

	if rec.Date == "" || rec.Platform == schema.SentinelUnknown {
		return schema.AnalyticsRecord{}, false
	}
	return rec, true
}

// timestampColumn finds the event time column of a row by scanning its
// keys for the timestamp hint. Returns "" when the row has none, which
// ResolveTimestamp treats the same as an empty value.
func timestampColumn(row schema.RawRow) string {
	for k := range row {
		if containsTimestampHint(k) {
			return k
		}
	}
	return ""
}
