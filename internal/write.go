package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/usagelab/telesnap/internal/contract"
)

// AtomicWriter persists the snapshot with a write-then-rename so a failed
// run never leaves a truncated document behind.
type AtomicWriter struct{}

var _ contract.SnapshotWriter = AtomicWriter{} // Compile-time check

// WriteSnapshot writes data to path, creating parent directories as
// needed. The document lands under its final name only after the full
// payload is on disk.
func (AtomicWriter) WriteSnapshot(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot at %s: %w", path, err)
	}
	return nil
}
