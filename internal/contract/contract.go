// Package contract provides interfaces and shared utilities for the
// storesense CLI's internal architecture.
package contract

import "github.com/franchops/storesense/schema"

// SnapshotStore defines the persistence interface for scored inspections
// and risk snapshots. The engine never touches storage directly; it only
// consumes records loaded through this interface, which allows the store
// to be mocked for testing.
type SnapshotStore interface {
	SaveInspection(res *schema.InspectionResult) error
	SaveRiskSnapshot(storeID string, snap schema.RiskSnapshot) error
	LoadRiskHistory(storeID string, limit int) ([]schema.RiskSnapshot, error)
	LoadScoredEvents(storeID string) ([]schema.ScoredEvent, error)
	LatestRiskScores() ([]schema.StoreScore, error)
	Status() (schema.SnapshotStatus, error)
	Clear() error
	Close() error
}

// StoreManager defines the interface for managing snapshot stores.
type StoreManager interface {
	GetSnapshotStore() SnapshotStore
}
