package contract

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/usagelab/telesnap/schema"
)

// MockFetcher is a mock implementation of Fetcher for testing.
type MockFetcher struct {
	mock.Mock
}

var _ Fetcher = &MockFetcher{} // Compile-time check

// FetchCSV implements the Fetcher interface.
func (m *MockFetcher) FetchCSV(ctx context.Context, url string) ([]byte, error) {
	args := m.Called(ctx, url)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

// MockSnapshotWriter is a mock implementation of SnapshotWriter for testing.
type MockSnapshotWriter struct {
	mock.Mock
}

var _ SnapshotWriter = &MockSnapshotWriter{} // Compile-time check

// WriteSnapshot implements the SnapshotWriter interface.
func (m *MockSnapshotWriter) WriteSnapshot(path string, data []byte) error {
	args := m.Called(path, data)
	return args.Error(0)
}

// MockHistoryManager is a mock implementation of HistoryManager for testing.
type MockHistoryManager struct {
	mock.Mock
}

var _ HistoryManager = &MockHistoryManager{} // Compile-time check

// GetHistoryStore implements the HistoryManager interface.
func (m *MockHistoryManager) GetHistoryStore() HistoryStore {
	ret := m.Called()
	store, _ := ret.Get(0).(HistoryStore)
	return store
}

// MockHistoryStore is a mock implementation of HistoryStore for testing.
type MockHistoryStore struct {
	mock.Mock
}

var _ HistoryStore = &MockHistoryStore{} // Compile-time check

// BeginRun implements the HistoryStore interface.
func (m *MockHistoryStore) BeginRun(startTime time.Time, sourceURL string) (int64, error) {
	args := m.Called(startTime, sourceURL)
	return args.Get(0).(int64), args.Error(1)
}

// EndRun implements the HistoryStore interface.
func (m *MockHistoryStore) EndRun(runID int64, endTime time.Time, totalRows, totalRecords int, lastUpdated string) error {
	args := m.Called(runID, endTime, totalRows, totalRecords, lastUpdated)
	return args.Error(0)
}

// RecordAccepted implements the HistoryStore interface.
func (m *MockHistoryStore) RecordAccepted(runID int64, records []schema.AnalyticsRecord) error {
	args := m.Called(runID, records)
	return args.Error(0)
}

// GetStatus implements the HistoryStore interface.
func (m *MockHistoryStore) GetStatus() (schema.HistoryStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.HistoryStatus), args.Error(1)
}

// GetAllRuns implements the HistoryStore interface.
func (m *MockHistoryStore) GetAllRuns() ([]schema.RunRecord, error) {
	args := m.Called()
	runs, _ := args.Get(0).([]schema.RunRecord)
	return runs, args.Error(1)
}

// GetAllRecords implements the HistoryStore interface.
func (m *MockHistoryStore) GetAllRecords() ([]schema.StoredRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.StoredRecord)
	return records, args.Error(1)
}

// Close implements the HistoryStore interface.
func (m *MockHistoryStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
