package snapstore

import (
	"github.com/franchops/storesense/internal/contract"
	"github.com/franchops/storesense/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetSnapshotStore implements the StoreManager interface.
func (m *MockStoreManager) GetSnapshotStore() contract.SnapshotStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.SnapshotStore)
	return store
}

// MockSnapshotStore is a mock implementation of SnapshotStore for testing.
type MockSnapshotStore struct {
	mock.Mock
}

var _ contract.SnapshotStore = &MockSnapshotStore{} // Compile-time check

// SaveInspection implements the SnapshotStore interface.
func (m *MockSnapshotStore) SaveInspection(res *schema.InspectionResult) error {
	args := m.Called(res)
	return args.Error(0)
}

// SaveRiskSnapshot implements the SnapshotStore interface.
func (m *MockSnapshotStore) SaveRiskSnapshot(storeID string, snap schema.RiskSnapshot) error {
	args := m.Called(storeID, snap)
	return args.Error(0)
}

// LoadRiskHistory implements the SnapshotStore interface.
func (m *MockSnapshotStore) LoadRiskHistory(storeID string, limit int) ([]schema.RiskSnapshot, error) {
	args := m.Called(storeID, limit)
	snaps, _ := args.Get(0).([]schema.RiskSnapshot)
	return snaps, args.Error(1)
}

// LoadScoredEvents implements the SnapshotStore interface.
func (m *MockSnapshotStore) LoadScoredEvents(storeID string) ([]schema.ScoredEvent, error) {
	args := m.Called(storeID)
	events, _ := args.Get(0).([]schema.ScoredEvent)
	return events, args.Error(1)
}

// LatestRiskScores implements the SnapshotStore interface.
func (m *MockSnapshotStore) LatestRiskScores() ([]schema.StoreScore, error) {
	args := m.Called()
	scores, _ := args.Get(0).([]schema.StoreScore)
	return scores, args.Error(1)
}

// Status implements the SnapshotStore interface.
func (m *MockSnapshotStore) Status() (schema.SnapshotStatus, error) {
	args := m.Called()
	status, _ := args.Get(0).(schema.SnapshotStatus)
	return status, args.Error(1)
}

// Clear implements the SnapshotStore interface.
func (m *MockSnapshotStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// Close implements the SnapshotStore interface.
func (m *MockSnapshotStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
