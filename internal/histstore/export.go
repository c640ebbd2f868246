package histstore

import (
	"errors"
	"fmt"

	"github.com/usagelab/telesnap/internal/parquet"
)

// ExecuteHistoryExport performs the actual export of run history to Parquet files.
func ExecuteHistoryExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the history store
	store := Manager.GetHistoryStore()

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total pipeline runs: %d\n", status.TotalRuns)
	fmt.Printf("Total stored records: %d\n", status.TableSizes[recordsTable])

	// Retrieve all pipeline runs
	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve pipeline runs: %w", err)
	}

	// Retrieve all stored records
	records, err := store.GetAllRecords()
	if err != nil {
		return fmt.Errorf("failed to retrieve stored records: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertRunRecords(runs)
	parquetRecords := parquet.ConvertStoredRecords(records)

	// Write pipeline runs to Parquet
	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write pipeline runs: %w", err)
	}
	fmt.Printf("Exported %d pipeline runs to: %s\n", len(parquetRuns), runsFile)

	// Write stored records to Parquet
	recordsFile := outputFile + ".records.parquet"
	if err := parquet.WriteRunRecordsParquet(parquetRecords, recordsFile); err != nil {
		return fmt.Errorf("failed to write stored records: %w", err)
	}
	fmt.Printf("Exported %d records to: %s\n", len(parquetRecords), recordsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
