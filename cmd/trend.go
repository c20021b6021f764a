package cmd

import (
	"github.com/franchops/storesense/core"
	"github.com/franchops/storesense/internal/contract"
	"github.com/spf13/cobra"
)

// trendCmd computes monthly score trends.
var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show the monthly score trend for a store or the whole chain.",
	Long: `Aggregate scored events into a chronological monthly series with the
average score and the period-over-period delta per month.

Events come from an events file, or from previously persisted inspection
scores in the snapshot store when no file is given.

Examples:
  # Trend for one store over the last 12 months
  storesense trend --store 4f2a... --months 12

  # Trend from an exported events file
  storesense trend --events events.json --months 6

  # Feed the series to a warehouse
  storesense trend --store 4f2a... --output parquet --output-file trend.parquet`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTrend(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot compute trend", err)
		}
	},
}
