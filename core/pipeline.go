package core

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/usagelab/telesnap/internal/contract"
	"github.com/usagelab/telesnap/schema"
)

// RunSummary reports what a pipeline run did, for console output and the
// MCP surface.
type RunSummary struct {
	Snapshot    schema.Snapshot
	TotalRows   int    // raw rows parsed, before acceptance filtering
	OutputFile  string // empty for a dry run
	LastUpdated string // empty when no row had a valid timestamp
	Duration    time.Duration
}

// ExecuteRun runs the full pipeline once: fetch, parse, normalize,
// aggregate recency, build the snapshot and persist it. Fetch, parse and
// write failures are fatal and leave any previous snapshot untouched;
// per-row anomalies are absorbed during normalization. History tracking
// failures are advisory only.
func ExecuteRun(ctx context.Context, cfg *contract.Config, fetcher contract.Fetcher, writer contract.SnapshotWriter, store contract.HistoryStore) (*RunSummary, error) {
	start := time.Now()

	if !isQuiet(ctx) {
		fmt.Printf("Fetching telemetry export from %s\n", cfg.SourceURL)
	}
	body, err := fetcher.FetchCSV(ctx, cfg.SourceURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch export: %w", err)
	}

	if !isQuiet(ctx) {
		fmt.Printf("Parsing %d bytes of csv\n", len(body))
	}
	parsed, err := ParseRows(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse export: %w", err)
	}

	runID, err := store.BeginRun(start, cfg.SourceURL)
	if err != nil {
		contract.LogWarn("could not begin history run", err)
	}

	records := CollectRecords(parsed.Rows, start)
	lastUpdated, hasRecency := LatestActivity(parsed.Headers, parsed.Rows)
	snap := BuildSnapshot(records, lastUpdated, hasRecency, time.Now())

	summary := &RunSummary{
		Snapshot:    snap,
		TotalRows:   len(parsed.Rows),
		LastUpdated: snap.LastUpdated,
	}

	if !cfg.DryRun {
		data, err := MarshalSnapshot(snap)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize snapshot: %w", err)
		}
		if err := writer.WriteSnapshot(cfg.OutputFile, data); err != nil {
			return nil, fmt.Errorf("failed to write snapshot: %w", err)
		}
		summary.OutputFile = cfg.OutputFile
	}

	if runID != 0 {
		if err := store.RecordAccepted(runID, records); err != nil {
			contract.LogWarn("could not record run history", err)
		}
		if err := store.EndRun(runID, time.Now(), summary.TotalRows, snap.TotalRecords, snap.LastUpdated); err != nil {
			contract.LogWarn("could not finish history run", err)
		}
	}

	summary.Duration = time.Since(start)
	return summary, nil
}

// ExecuteStats fetches and normalizes the export without writing the
// snapshot, returning the per-dimension breakdown.
func ExecuteStats(ctx context.Context, cfg *contract.Config, fetcher contract.Fetcher) (schema.Breakdown, error) {
	body, err := fetcher.FetchCSV(ctx, cfg.SourceURL)
	if err != nil {
		return schema.Breakdown{}, fmt.Errorf("failed to fetch export: %w", err)
	}
	parsed, err := ParseRows(bytes.NewReader(body))
	if err != nil {
		return schema.Breakdown{}, fmt.Errorf("failed to parse export: %w", err)
	}
	records := CollectRecords(parsed.Rows, time.Now())
	return BuildBreakdown(records), nil
}
