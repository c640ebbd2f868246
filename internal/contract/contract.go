// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/usagelab/telesnap/schema"
)

// Fetcher obtains the raw CSV export text from the telemetry endpoint.
// This allows the pipeline to be tested without a live endpoint.
type Fetcher interface {
	// FetchCSV returns the body of the export resource. A transport error
	// or non-200 response is fatal to the run.
	FetchCSV(ctx context.Context, url string) ([]byte, error)
}

// SnapshotWriter persists the serialized snapshot document.
type SnapshotWriter interface {
	// WriteSnapshot writes the document to path, creating parent
	// directories as needed. The previous snapshot must survive intact if
	// the write fails partway.
	WriteSnapshot(path string, data []byte) error
}

// HistoryManager defines the interface for accessing the run history store.
// This allows the history layer to be mocked for testing.
type HistoryManager interface {
	GetHistoryStore() HistoryStore
}

// HistoryStore defines the interface for tracking pipeline runs and the
// records they accepted.
type HistoryStore interface {
	// BeginRun creates a new run row and returns its unique ID
	BeginRun(startTime time.Time, sourceURL string) (int64, error)

	// EndRun updates the run with completion data
	EndRun(runID int64, endTime time.Time, totalRows, totalRecords int, lastUpdated string) error

	// RecordAccepted stores the accepted records of a run in input order
	RecordAccepted(runID int64, records []schema.AnalyticsRecord) error

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// GetAllRuns retrieves all recorded runs in run order
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllRecords retrieves all stored records ordered by run and sequence
	GetAllRecords() ([]schema.StoredRecord, error)

	// Close closes the underlying connection
	Close() error
}
