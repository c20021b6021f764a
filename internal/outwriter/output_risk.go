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

// PrintRiskProfiles outputs risk assessments, dispatching based on the output format configured.
func PrintRiskProfiles(profiles []*schema.RiskProfile, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForRisk(profiles, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForRisk(profiles, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for risk profiles; use csv or json")
	default:
		// Default to human-readable table
		if err := printRiskTable(profiles, cfg, fmtFloat, duration); err != nil {
			return fmt.Errorf("error writing risk table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForRisk handles opening the file and calling the JSON writer.
func printJSONResultsForRisk(profiles []*schema.RiskProfile, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForRisk(w, profiles)
	}, "Wrote JSON risk profiles")
}

// printCSVResultsForRisk handles opening the file and calling the CSV writer.
func printCSVResultsForRisk(profiles []*schema.RiskProfile, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForRisk(csvWriter, profiles, fmtFloat)
	}, "Wrote CSV risk profiles")
}

// printRiskTable prints risk profiles in a table, one row per store.
func printRiskTable(profiles []*schema.RiskProfile, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		table := tablewriter.NewWriter(w)

		// 1. Define Headers
		headers := []string{"Store", "Risk Score", "Level", "Root Causes", "Skipped"}
		table.Header(headers)

		// 2. Configure Alignment
		table.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignRight
		})

		// 3. Prepare Data Rows
		maxText := GetMaxTableTextWidth(cfg)
		var data [][]string
		for _, p := range profiles {
			row := []string{
				p.StoreID,
				fmtFloat(p.TotalRiskScore),
				contract.ColorLevelLabel(p.RiskLevel, cfg.UseColors),
				contract.TruncateText(formatRootCauses(p.RootCauses), maxText),
				formatSkippedSignals(p.SkippedSignals),
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

		atRisk := 0
		for _, p := range profiles {
			if p.RiskLevel == schema.RiskLevelRisk {
				atRisk++
			}
		}
		if _, err := fmt.Fprintf(w, "Assessed %d stores (%d at risk)\n", len(profiles), atRisk); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Assessment completed in %v with %d workers. Snapshot backend: %s\n", duration, cfg.Workers, cfg.SnapshotBackend); err != nil {
			return err
		}
		return nil
	}, "Wrote risk table")
}
