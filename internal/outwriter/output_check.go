package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/franchops/storesense/internal/contract"
	"github.com/franchops/storesense/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintCheckResult outputs a policy check result, dispatching based on the output format configured.
func PrintCheckResult(result *schema.CheckResult, cfg *contract.Config) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForCheck(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForCheck(result, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for check results; use csv or json")
	default:
		// Default to human-readable table
		if err := printCheckTable(result, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing check table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForCheck handles opening the file and calling the JSON writer.
func printJSONResultsForCheck(result *schema.CheckResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "Wrote JSON check result")
}

// printCSVResultsForCheck writes the violations as CSV rows, one per store.
func printCSVResultsForCheck(result *schema.CheckResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"store", "score", "level", "fail_level"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, v := range result.Violations {
				row := []string{
					v.StoreID,
					fmtFloat(v.Score),
					contract.LevelLabel(v.Level),
					contract.LevelLabel(result.FailLevel),
				}
				if err := csvWriter.Write(row); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV check result")
}

// printCheckTable prints the violations in a table followed by a verdict line.
func printCheckTable(result *schema.CheckResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		if len(result.Violations) > 0 {
			table := tablewriter.NewWriter(w)
			table.Header([]string{"Store", "Score", "Level"})
			table.Configure(func(cfg *tablewriter.Config) {
				cfg.Row.Alignment.Global = tw.AlignRight
			})

			var data [][]string
			for _, v := range result.Violations {
				data = append(data, []string{
					v.StoreID,
					fmtFloat(v.Score),
					contract.ColorLevelLabel(v.Level, cfg.UseColors),
				})
			}
			if err := table.Bulk(data); err != nil {
				return err
			}
			if err := table.Render(); err != nil {
				return err
			}
		}

		verdict := "PASSED"
		if !result.Passed {
			verdict = "FAILED"
		}
		if _, err := fmt.Fprintf(w, "Check %s: %d of %d stores at or above %s\n",
			verdict, len(result.Violations), result.TotalStores, result.FailLevel); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Average risk score %s, max %s\n",
			fmtFloat(result.AvgScore), fmtFloat(result.MaxScore)); err != nil {
			return err
		}
		return nil
	}, "Wrote check table")
}
