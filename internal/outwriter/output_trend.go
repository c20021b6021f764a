package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/franchops/storesense/internal/contract"
	"github.com/franchops/storesense/internal/parquet"
	"github.com/franchops/storesense/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintTrendResults outputs the trend series, dispatching based on the output format configured.
func PrintTrendResults(result schema.TrendResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForTrend(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForTrend(result, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		rows := parquet.ConvertTrendPoints(result.StoreID, result.Points)
		if err := parquet.WriteTrendPointsParquet(rows, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Printf("Wrote %d trend points to %s\n", len(rows), cfg.OutputFile)
	default:
		// Default to human-readable table
		if err := printTrendTable(result, cfg, fmtFloat, intFmt, duration); err != nil {
			return fmt.Errorf("error writing trend table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForTrend handles opening the file and calling the JSON writer.
func printJSONResultsForTrend(result schema.TrendResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForTrend(w, result)
	}, "Wrote JSON trend results")
}

// printCSVResultsForTrend handles opening the file and calling the CSV writer.
func printCSVResultsForTrend(result schema.TrendResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForTrend(csvWriter, result, fmtFloat, intFmt)
	}, "Wrote CSV trend results")
}

// printTrendTable prints the trend series in a five-column table.
func printTrendTable(result schema.TrendResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		table := tablewriter.NewWriter(w)

		// 1. Define Headers
		headers := []string{"Period", "Start", "Avg Score", "Delta", "Events"}
		table.Header(headers)

		// 2. Configure Alignment
		table.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignRight
		})

		// 3. Prepare Data Rows
		var data [][]string
		for _, p := range result.Points {
			row := []string{
				p.Period,
				p.Start.Format(contract.DateFormat),
				fmtFloat(p.AvgScore),
				formatDelta(p.Delta, fmtFloat),
				fmt.Sprintf(intFmt, p.Count),
			}
			data = append(data, row)
		}

		// 4. Render the table
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}

		label := result.StoreID
		if label == "" {
			label = "all stores"
		}
		if _, err := fmt.Fprintf(w, "Trend for %s over %d periods\n", label, len(result.Points)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Trend analysis completed in %v. Snapshot backend: %s\n", duration, cfg.SnapshotBackend); err != nil {
			return err
		}
		return nil
	}, "Wrote trend table")
}

// formatDelta prefixes positive deltas with a plus so direction reads at a glance.
func formatDelta(delta float64, fmtFloat func(float64) string) string {
	if delta > 0 {
		return "+" + fmtFloat(delta)
	}
	return fmtFloat(delta)
}
