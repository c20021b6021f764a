package cmd

import (
	"github.com/franchops/storesense/core"
	"github.com/franchops/storesense/internal/contract"
	"github.com/spf13/cobra"
)

// riskCmd assesses composite store risk from operational signals.
var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Assess store risk from QSC, sales and operational signals.",
	Long: `Evaluate every store in a signals file against the risk rule set and
produce an attributable risk profile per store.

Each profile carries the composite 0-100 risk score, the derived level
(NORMAL, WATCHLIST or RISK), the evidence behind every point of the score,
and the top root causes. Missing signal classes degrade gracefully: the
store is still assessed and the skipped classes are listed.

Examples:
  # Assess all stores in a signals file
  storesense risk --signals signals.json

  # Assess one store only
  storesense risk --signals signals.json --store 4f2a...

  # Full evidence trail for dashboards
  storesense risk --signals signals.json --output json --output-file risk.json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRisk(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot assess store risk", err)
		}
	},
}
