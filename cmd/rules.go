package cmd

import (
	"github.com/franchops/storesense/core"
	"github.com/franchops/storesense/internal/contract"
	"github.com/spf13/cobra"
)

// rulesCmd displays the active rule set.
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Display the active grade bands, risk thresholds and impacts.",
	Long: `Show every tunable parameter of the assessment engine as currently
resolved: defaults overlaid with any overrides from the config file.

Use this to verify a config file before rolling it out to operators, or to
export the full rule set for documentation.

Examples:
  # Inspect the resolved rule set
  storesense rules

  # Export as JSON for review
  storesense rules --output json --output-file rules.json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRules(cfg); err != nil {
			contract.LogFatal("Cannot display rules", err)
		}
	},
}
