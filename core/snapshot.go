package core

import (
	"encoding/json"
	"time"

	"github.com/usagelab/telesnap/schema"
)

// BuildSnapshot assembles the persisted document from the aggregator's
// outputs. Purely structural: no re-validation or filtering happens here.
// lastUpdated is omitted from the document when ok is false.
func BuildSnapshot(records []schema.AnalyticsRecord, lastUpdated string, ok bool, now time.Time) schema.Snapshot {
	snap := schema.Snapshot{
		Data:         records,
		GeneratedAt:  now.UTC().Format(time.RFC3339),
		TotalRecords: len(records),
	}
	if ok {
		snap.LastUpdated = lastUpdated
	}
	return snap
}

// MarshalSnapshot serializes a snapshot to its canonical indented JSON
// form with a trailing newline.
func MarshalSnapshot(snap schema.Snapshot) ([]byte, error) {
	// Keep "data": [] instead of null for an empty run.
	if snap.Data == nil {
		snap.Data = []schema.AnalyticsRecord{}
	}
	out, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
