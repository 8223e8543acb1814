package iocache

import (
	"time"

	"github.com/placardhq/placard/internal/contract"
	"github.com/placardhq/placard/schema"
	"github.com/stretchr/testify/mock"
)

// MockHistoryManager is a mock implementation of HistoryManager for testing.
type MockHistoryManager struct {
	mock.Mock
}

var _ contract.HistoryManager = &MockHistoryManager{} // Compile-time check

// GetHistoryStore implements the HistoryManager interface.
func (m *MockHistoryManager) GetHistoryStore() contract.HistoryStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.HistoryStore)
	return store
}

// MockHistoryStore is a mock implementation of HistoryStore for testing.
type MockHistoryStore struct {
	mock.Mock
}

var _ contract.HistoryStore = &MockHistoryStore{} // Compile-time check

// BeginRun implements the HistoryStore interface.
func (m *MockHistoryStore) BeginRun(startTime time.Time, command string) (int64, error) {
	args := m.Called(startTime, command)
	return args.Get(0).(int64), args.Error(1)
}

// EndRun implements the HistoryStore interface.
func (m *MockHistoryStore) EndRun(runID int64, endTime time.Time, totalLocations int) error {
	args := m.Called(runID, endTime, totalLocations)
	return args.Error(0)
}

// RecordAuthorityScore implements the HistoryStore interface.
func (m *MockHistoryStore) RecordAuthorityScore(runID int64, locationID string, score schema.AuthorityScore, computedAt time.Time) error {
	args := m.Called(runID, locationID, score, computedAt)
	return args.Error(0)
}

// GetStatus implements the HistoryStore interface.
func (m *MockHistoryStore) GetStatus() (schema.HistoryStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.HistoryStatus), args.Error(1)
}

// GetAllGradingRuns implements the HistoryStore interface.
func (m *MockHistoryStore) GetAllGradingRuns() ([]schema.GradingRunRecord, error) {
	args := m.Called()
	runs, _ := args.Get(0).([]schema.GradingRunRecord)
	return runs, args.Error(1)
}

// GetAllAuthorityScores implements the HistoryStore interface.
func (m *MockHistoryStore) GetAllAuthorityScores() ([]schema.AuthorityScoreRecord, error) {
	args := m.Called()
	scores, _ := args.Get(0).([]schema.AuthorityScoreRecord)
	return scores, args.Error(1)
}

// Close implements the HistoryStore interface.
func (m *MockHistoryStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
