package cmd

import (
	"github.com/franchops/storesense/core"
	"github.com/franchops/storesense/internal/contract"
	"github.com/spf13/cobra"
)

// rankCmd ranks stores by a metric.
var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank stores by a metric, top or bottom first.",
	Long: `Order a store population by metric and show the top or bottom slice.

The metric population comes from a scores file, or from the latest persisted
risk score per store when no file is given. Ties keep input order, so equal
stores never swap between runs.

Examples:
  # Ten riskiest stores from the snapshot store
  storesense rank --limit 10

  # Bottom performers from an exported metric file
  storesense rank --scores revenue.json --direction bottom --limit 20`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRank(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot rank stores", err)
		}
	},
}
