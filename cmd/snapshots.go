package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/franchops/storesense/internal/contract"
	"github.com/franchops/storesense/internal/snapstore"
	"github.com/franchops/storesense/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// snapshotsSetup loads minimal configuration needed for snapshot operations.
// This is used by commands that need store access without full shared setup.
func snapshotsSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get snapshot-related config values
	backend := schema.DatabaseBackend(viper.GetString("snapshot-backend"))
	connStr := viper.GetString("snapshot-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize the store with the loaded config
	mgr, err := snapstore.InitManager(backend, connStr)
	if err != nil {
		return fmt.Errorf("failed to initialize snapshot store: %w", err)
	}
	storeManager = mgr

	cfg.SnapshotBackend = backend
	cfg.SnapshotDBConnect = connStr

	return nil
}

// snapshotsSetupWrapper wraps snapshotsSetup to provide PreRunE for snapshot commands.
func snapshotsSetupWrapper(_ *cobra.Command, _ []string) error {
	return snapshotsSetup()
}

// snapshotsCmd focused on snapshot store management.
//
// Note: Snapshot subcommands use minimal initialization (snapshotsSetup)
// instead of the full sharedSetup used by assessment commands. Rule
// processing and input validation are irrelevant to store maintenance.
var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "Manage persisted inspection scores and risk history",
	Long: `Manage the snapshot store that keeps scored inspections and risk history.

Persisted snapshots feed the trend and rank commands and hydrate risk
history for repeat-offense detection.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show snapshot statistics and connection info
  clear   - Remove all persisted data
  migrate - Run schema migrations
  export  - Dump persisted history as JSON

Examples:
  # Check store status
  storesense snapshots status

  # Start over with a clean history
  storesense snapshots clear`,
}

// snapshotsStatusCmd shows snapshot store status.
var snapshotsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display snapshot statistics and connection details",
	Long: `Show detailed information about the snapshot store.

Displays:
- Backend type and connection status
- Persisted inspection and risk entry counts
- Number of distinct stores with history
- Newest and oldest evaluation timestamps

Examples:
  # Check store status
  storesense snapshots status`,
	PreRunE: snapshotsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := storeManager.GetSnapshotStore().Status()
		if err != nil {
			contract.LogFatal("Failed to get snapshot status", err)
		}
		snapstore.PrintSnapshotStatus(status)
	},
}

// snapshotsClearCmd clears the snapshot store.
var snapshotsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all persisted inspection scores and risk history",
	Long: `Delete all persisted data from the configured backend.

Use this when:
- A template change makes historical scores incomparable
- Demo data should be removed before real use
- The history may be stale or corrupted

Examples:
  # Clear the SQLite store (default)
  storesense snapshots clear

  # Clear a MySQL store (set connection string via env variable)
  STORESENSE_SNAPSHOT_BACKEND=mysql STORESENSE_SNAPSHOT_DB_CONNECT="..." storesense snapshots clear`,
	PreRunE: snapshotsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := storeManager.GetSnapshotStore().Clear(); err != nil {
			contract.LogFatal("Failed to clear snapshots", err)
		}
		fmt.Println("Snapshots cleared successfully.")
	},
}

// snapshotsExportCmd dumps persisted history as JSON.
var snapshotsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export persisted scored events and latest risk scores as JSON",
	Long: `Dump the snapshot store contents for backup or offline analysis.

The export carries every persisted scored event plus the most recent risk
score per store. Use --store to export the history of a single store and
--output-file to write to a file instead of stdout.

Examples:
  # Export the whole history
  storesense snapshots export --output-file history.json

  # Export one store's history
  storesense snapshots export --store 4f2a... --output-file store.json`,
	PreRunE: snapshotsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := storeManager.GetSnapshotStore()
		events, err := store.LoadScoredEvents(viper.GetString("store"))
		if err != nil {
			contract.LogFatal("Failed to load scored events", err)
		}
		scores, err := store.LatestRiskScores()
		if err != nil {
			contract.LogFatal("Failed to load risk scores", err)
		}

		export := struct {
			ScoredEvents     []schema.ScoredEvent `json:"scoredEvents"`
			LatestRiskScores []schema.StoreScore  `json:"latestRiskScores"`
		}{events, scores}

		out, err := contract.SelectOutputFile(viper.GetString("output-file"))
		if err != nil {
			contract.LogFatal("Failed to open output file", err)
		}
		if out != os.Stdout {
			defer func() { _ = out.Close() }()
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(export); err != nil {
			contract.LogFatal("Failed to write export", err)
		}
	},
}

// snapshotsMigrateCmd runs schema migrations.
var snapshotsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run snapshot store schema migrations",
	Long: `Migrate the snapshot store schema to a target version.

Versions:
  -1  migrate to the latest version (default)
   0  roll back all migrations
   N  migrate to version N

Examples:
  # Migrate to the latest schema
  storesense snapshots migrate

  # Roll back everything
  storesense snapshots migrate --target-version 0`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		// Migration opens its own connection; only config loading is needed.
		return loadConfigFile()
	},
	Run: func(_ *cobra.Command, _ []string) {
		backend := schema.DatabaseBackend(viper.GetString("snapshot-backend"))
		connStr := viper.GetString("snapshot-db-connect")
		if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
			contract.LogFatal("Invalid migration target", err)
		}
		if err := snapstore.Migrate(backend, connStr, viper.GetInt("target-version")); err != nil {
			contract.LogFatal("Migration failed", err)
		}
	},
}
