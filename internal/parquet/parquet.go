// Package parquet provides data structures and functions for exporting
// telesnap run history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/usagelab/telesnap/schema"
)

// Run represents a single pipeline run with metadata.
// This struct maps to the telesnap_runs database table.
type Run struct {
	// RunID is the unique identifier for this pipeline run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// DurationMs is the duration of the run in milliseconds (nullable)
	DurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalRows is the number of raw rows parsed from the export
	TotalRows int32 `parquet:"total_rows,snappy"`

	// TotalRecords is the number of records accepted into the snapshot
	TotalRecords int32 `parquet:"total_records,snappy"`

	// LastUpdated is the recency string of the snapshot (nullable)
	LastUpdated *string `parquet:"last_updated,optional,snappy"`

	// SourceURL is the export endpoint used for the run (nullable)
	SourceURL *string `parquet:"source_url,optional,snappy"`
}

// RunRecord represents one accepted record of a run.
// This struct maps to the telesnap_run_records database table.
type RunRecord struct {
	// RunID references the parent pipeline run
	RunID int64 `parquet:"run_id,snappy"`

	// Seq is the input row order of the record within the run
	Seq int32 `parquet:"seq,snappy"`

	// Date is the calendar date of the usage event
	Date string `parquet:"event_date,snappy"`

	// Hour is the UTC hour-of-day bucket of the event
	Hour int32 `parquet:"event_hour,snappy"`

	// CLIVersion is the reporting CLI's version
	CLIVersion string `parquet:"cli_version,snappy"`

	// Platform is the reporting operating system
	Platform string `parquet:"platform,snappy"`

	// Backend is the backend framework selected in the event
	Backend string `parquet:"backend,snappy"`

	// Database is the database engine selected in the event
	Database string `parquet:"db_engine,snappy"`

	// ORM is the ORM selected in the event
	ORM string `parquet:"orm,snappy"`

	// PackageManager is the package manager used for the event
	PackageManager string `parquet:"package_manager,snappy"`

	// Runtime is the JS runtime used for the event
	Runtime string `parquet:"runtime,snappy"`

	// Addons is the comma-joined addon selection
	Addons string `parquet:"addons,snappy"`
}

// WriteRunsParquet writes a slice of Run structs to a Parquet file.
func WriteRunsParquet(data []Run, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the Run struct tags
	writer := parquet.NewGenericWriter[Run](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteRunRecordsParquet writes a slice of RunRecord structs to a Parquet file.
func WriteRunRecordsParquet(data []RunRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the RunRecord struct tags
	writer := parquet.NewGenericWriter[RunRecord](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertRunRecords converts schema.RunRecord to Run for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []Run {
	result := make([]Run, len(records))
	for i, record := range records {
		result[i] = Run{
			RunID:        record.RunID,
			StartTime:    record.StartTime,
			EndTime:      record.EndTime,
			DurationMs:   record.DurationMs,
			TotalRows:    record.TotalRows,
			TotalRecords: record.TotalRecords,
			LastUpdated:  record.LastUpdated,
			SourceURL:    record.SourceURL,
		}
	}
	return result
}

// ConvertStoredRecords converts schema.StoredRecord to RunRecord for Parquet export.
func ConvertStoredRecords(records []schema.StoredRecord) []RunRecord {
	result := make([]RunRecord, len(records))
	for i, record := range records {
		result[i] = RunRecord{
			RunID:          record.RunID,
			Seq:            record.Seq,
			Date:           record.Date,
			Hour:           record.Hour,
			CLIVersion:     record.CLIVersion,
			Platform:       record.Platform,
			Backend:        record.Backend,
			Database:       record.Database,
			ORM:            record.ORM,
			PackageManager: record.PackageManager,
			Runtime:        record.Runtime,
			Addons:         record.Addons,
		}
	}
	return result
}
