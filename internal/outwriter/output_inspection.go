package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/franchops/storesense/internal/contract"
	"github.com/franchops/storesense/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintInspectionResults outputs scored inspections, dispatching based on the output format configured.
func PrintInspectionResults(results []*schema.InspectionResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForInspections(results, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForInspections(results, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for inspection results; use csv or json")
	default:
		// Default to human-readable table
		if err := printInspectionTable(results, cfg, fmtFloat, intFmt, duration); err != nil {
			return fmt.Errorf("error writing inspection table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForInspections handles opening the file and calling the JSON writer.
func printJSONResultsForInspections(results []*schema.InspectionResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForInspections(w, results)
	}, "Wrote JSON inspection results")
}

// printCSVResultsForInspections handles opening the file and calling the CSV writer.
func printCSVResultsForInspections(results []*schema.InspectionResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForInspections(csvWriter, results, fmtFloat, intFmt)
	}, "Wrote CSV inspection results")
}

// printInspectionTable prints scored inspections in a table, one row per store.
func printInspectionTable(results []*schema.InspectionResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		table := tablewriter.NewWriter(w)

		// 1. Define Headers
		headers := []string{"Store", "Score", "Grade", "Result", "Answered", "Items", "Complete"}
		table.Header(headers)

		// 2. Configure Alignment
		table.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignRight
		})

		// 3. Prepare Data Rows
		var data [][]string
		for _, r := range results {
			row := []string{
				r.StoreID,
				fmtFloat(r.TotalScore),
				contract.ColorGradeLabel(r.Grade, cfg.UseColors),
				formatPassed(r.Passed),
				fmt.Sprintf(intFmt, r.AnsweredItems),
				fmt.Sprintf(intFmt, r.TotalItems),
				fmtFloat(schema.CompletionRate(r.AnsweredItems, r.TotalItems)*100) + "%",
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

		passed := 0
		for _, r := range results {
			if r.Passed {
				passed++
			}
		}
		if _, err := fmt.Fprintf(w, "Scored %d inspections (%d passed)\n", len(results), passed); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Scoring completed in %v. Snapshot backend: %s\n", duration, cfg.SnapshotBackend); err != nil {
			return err
		}
		return nil
	}, "Wrote inspection table")
}
