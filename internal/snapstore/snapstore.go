// Package snapstore persists scored inspections and risk snapshots across
// sqlite, MySQL and PostgreSQL backends. The engine never imports this
// package; it only sees records loaded through contract.SnapshotStore.
package snapstore

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/franchops/storesense/internal/contract"
	"github.com/franchops/storesense/schema"
)

// StoreManagerImpl manages the snapshot store instance.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointer during initialization
	snapshots    contract.SnapshotStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetSnapshotStore returns the snapshot store.
func (mgr *StoreManagerImpl) GetSnapshotStore() contract.SnapshotStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.snapshots
}

// InitManager initializes the snapshot store for the configured backend
// and returns a manager wrapping it.
func InitManager(backend schema.DatabaseBackend, connStr string) (*StoreManagerImpl, error) {
	store, err := NewStore(backend, connStr)
	if err != nil {
		return nil, err
	}
	return &StoreManagerImpl{snapshots: store}, nil
}

// GetDBFilePath returns the default sqlite database location,
// ~/.storesense/snapshots.db, creating the directory if needed.
func GetDBFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "snapshots.db"
	}
	dir := filepath.Join(home, ".storesense")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "snapshots.db"
	}
	return filepath.Join(dir, "snapshots.db")
}
