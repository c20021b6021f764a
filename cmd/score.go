package cmd

import (
	"github.com/franchops/storesense/core"
	"github.com/franchops/storesense/internal/contract"
	"github.com/spf13/cobra"
)

// scoreCmd scores inspection answer sets against a checklist template.
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score QSC inspections against a checklist template.",
	Long: `Score one or more inspection answer sets against a versioned checklist template.

Each answer is a 0-5 raw score per checklist item. The total is normalized
against the actual summed item weights so a template whose weights do not
sum to 100 still produces a correct percentage, then graded S through D.

Examples:
  # Score a single inspection
  storesense score --template qsc.json --answers visit.json

  # Score a batch and keep the results in the snapshot store
  storesense score --template qsc.json --answers visits.json

  # Export per-category subtotals for spreadsheets
  storesense score --template qsc.json --answers visits.json --output csv --output-file scores.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScore(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot score inspections", err)
		}
	},
}
