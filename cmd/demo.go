package cmd

import (
	"github.com/franchops/storesense/core"
	"github.com/franchops/storesense/internal/contract"
	"github.com/spf13/cobra"
)

// demoCmd generates and assesses a synthetic store population.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Assess a seeded synthetic store population.",
	Long: `Generate a deterministic synthetic store population, run the full risk
assessment over it, and persist the snapshots.

The same seed always produces the same stores and scores, so demo runs are
reproducible across machines. Useful for trying the CLI without real
franchise data and for seeding a snapshot store for trend and rank demos.

Examples:
  # Default demo population
  storesense demo

  # Larger population with a different seed
  storesense demo --demo-stores 50 --demo-seed 7`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDemo(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run demo", err)
		}
	},
}
