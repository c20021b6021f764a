package cmd

import (
	"github.com/franchops/storesense/core"
	"github.com/franchops/storesense/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd focused on CI/CD policy enforcement.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Enforce risk policy over a store population (fails on violations)",
	Long: `Assess every store in a signals file and fail with a non-zero exit code
when any store reaches the configured risk level.

Designed for scheduled pipelines and pre-rollout gates: a region rollout or
marketing push can be blocked automatically while stores sit at RISK.

Default fail level: RISK

Examples:
  # Fail if any store is at RISK
  storesense check --signals signals.json

  # Stricter gate for a new-market rollout
  storesense check --signals signals.json --fail-level WATCHLIST

  # Machine-readable verdict for the pipeline log
  storesense check --signals signals.json --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCheck(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Policy check failed", err)
		}
	},
}
