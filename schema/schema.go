// Package schema has configs, models and constants for all parts of telesnap.
package schema

import "time"

// RawRow is one CSV row keyed by header column name. No column is guaranteed
// present for every row, so all lookups must tolerate missing keys.
type RawRow map[string]string

// AnalyticsRecord is a single normalized CLI usage event. It is immutable
// once constructed; scalar fields carry sentinel values rather than being
// absent when the source column was missing or empty.
type AnalyticsRecord struct {
	Date           string   `json:"date"` // YYYY-MM-DD, never empty for an accepted record
	Hour           int      `json:"hour"` // UTC hour of day, 0-23
	CLIVersion     string   `json:"cliVersion"`
	NodeVersion    string   `json:"nodeVersion"`
	Platform       string   `json:"platform"`
	Backend        string   `json:"backend"`
	Database       string   `json:"database"`
	ORM            string   `json:"orm"`
	DBSetup        string   `json:"dbSetup"`
	API            string   `json:"api"`
	PackageManager string   `json:"packageManager"`
	Runtime        string   `json:"runtime"`
	Auth           string   `json:"auth"`    // "enabled" or "disabled"
	Git            string   `json:"git"`     // "enabled" or "disabled"
	Install        string   `json:"install"` // "enabled" or "disabled"
	Frontend0      string   `json:"frontend0"`
	Frontend1      string   `json:"frontend1"`
	Examples0      string   `json:"examples0"`
	Examples1      string   `json:"examples1"`
	Addons         []string `json:"addons"` // non-empty slot values, original slot order
}

// Snapshot is the aggregate document persisted at the end of each run.
type Snapshot struct {
	Data         []AnalyticsRecord `json:"data"`
	LastUpdated  string            `json:"lastUpdated,omitempty"` // data recency, absent when no row had a valid timestamp
	GeneratedAt  string            `json:"generatedAt"`           // run time, RFC3339
	TotalRecords int               `json:"totalRecords"`          // always len(Data)
}

// RunRecord describes one pipeline run stored in the history store.
// Pointer fields are nullable in the underlying tables.
type RunRecord struct {
	RunID        int64
	StartTime    time.Time
	EndTime      *time.Time
	DurationMs   *int32
	TotalRows    int32
	TotalRecords int32
	LastUpdated  *string
	SourceURL    *string
}

// StoredRecord is one accepted record flattened for the history store.
type StoredRecord struct {
	RunID          int64
	Seq            int32 // input row order within the run
	Date           string
	Hour           int32
	CLIVersion     string
	Platform       string
	Backend        string
	Database       string
	ORM            string
	PackageManager string
	Runtime        string
	Addons         string // comma-joined slot values
}

// HistoryStatus holds status information about the history store.
type HistoryStatus struct {
	Backend       string
	Connected     bool
	TotalRuns     int64
	LastRunID     int64
	LastRunTime   time.Time
	OldestRunTime time.Time
	TotalRecords  int64
	TableSizes    map[string]int64
}

// Breakdown holds per-dimension record counts for the stats command.
type Breakdown struct {
	Total     int            `json:"total"`
	FirstDate string         `json:"firstDate,omitempty"` // earliest record date, lexicographic on YYYY-MM-DD
	LastDate  string         `json:"lastDate,omitempty"`  // latest record date
	Platforms map[string]int `json:"platforms"`
	Backends  map[string]int `json:"backends"`
	Databases map[string]int `json:"databases"`
}
