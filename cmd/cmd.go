// Package cmd defines the command-line interface for storesense.
package cmd

import (
	"github.com/franchops/storesense/internal/contract"
	"github.com/franchops/storesense/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(riskCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(snapshotsCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the snapshots subcommands to the parent snapshots command
	snapshotsCmd.AddCommand(snapshotsStatusCmd)
	snapshotsCmd.AddCommand(snapshotsClearCmd)
	snapshotsCmd.AddCommand(snapshotsMigrateCmd)
	snapshotsCmd.AddCommand(snapshotsExportCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("template", "", "Path to the checklist template JSON file")
	rootCmd.PersistentFlags().String("answers", "", "Path to the inspection answers JSON file")
	rootCmd.PersistentFlags().String("signals", "", "Path to the per-store risk signals JSON file")
	rootCmd.PersistentFlags().String("events", "", "Path to a scored events JSON file")
	rootCmd.PersistentFlags().String("scores", "", "Path to a store scores JSON file")
	rootCmd.PersistentFlags().StringP("store", "s", "", "Restrict the operation to one store ID")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("snapshot-backend", string(schema.SQLiteBackend), "Snapshot backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("snapshot-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of trendCmd to Viper
	trendCmd.Flags().Int("months", contract.DefaultMonths, "Number of most recent months to keep in the series")
	if err := viper.BindPFlags(trendCmd.Flags()); err != nil {
		contract.LogFatal("Error binding trend flags", err)
	}

	// Bind all flags of rankCmd to Viper
	rankCmd.Flags().String("direction", string(schema.TopDirection), "Ranking direction: top or bottom")
	if err := viper.BindPFlags(rankCmd.Flags()); err != nil {
		contract.LogFatal("Error binding rank flags", err)
	}

	// Bind all flags of checkCmd to Viper
	checkCmd.Flags().String("fail-level", string(schema.RiskLevelRisk), "Risk level that fails the check: NORMAL, WATCHLIST or RISK")
	if err := viper.BindPFlags(checkCmd.Flags()); err != nil {
		contract.LogFatal("Error binding check flags", err)
	}

	// Bind all flags of demoCmd to Viper
	demoCmd.Flags().Int("demo-stores", 12, "Number of synthetic stores to generate")
	demoCmd.Flags().Int64("demo-seed", 1, "Seed for deterministic generation")
	if err := viper.BindPFlags(demoCmd.Flags()); err != nil {
		contract.LogFatal("Error binding demo flags", err)
	}

	// Bind all flags of snapshotsMigrateCmd to Viper
	snapshotsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(snapshotsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding snapshots migrate flags", err)
	}
}
