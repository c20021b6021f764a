package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/franchops/storesense/internal/contract"
	"github.com/franchops/storesense/internal/parquet"
	"github.com/franchops/storesense/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintRankResults outputs ranking entries, dispatching based on the output format configured.
func PrintRankResults(entries []schema.RankEntry, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForRank(entries, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForRank(entries, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		rows := parquet.ConvertRankEntries(entries, string(cfg.Direction))
		if err := parquet.WriteRankEntriesParquet(rows, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Printf("Wrote %d ranking entries to %s\n", len(rows), cfg.OutputFile)
	default:
		// Default to human-readable table
		if err := printRankTable(entries, cfg, fmtFloat, duration); err != nil {
			return fmt.Errorf("error writing rank table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForRank handles opening the file and calling the JSON writer.
func printJSONResultsForRank(entries []schema.RankEntry, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForRank(w, entries)
	}, "Wrote JSON rankings")
}

// printCSVResultsForRank handles opening the file and calling the CSV writer.
func printCSVResultsForRank(entries []schema.RankEntry, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForRank(csvWriter, entries, fmtFloat)
	}, "Wrote CSV rankings")
}

// printRankTable prints ranking entries in a four-column table.
func printRankTable(entries []schema.RankEntry, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		table := tablewriter.NewWriter(w)

		// 1. Define Headers
		headers := []string{"Rank", "Store", "Name", "Metric"}
		table.Header(headers)

		// 2. Configure Alignment
		table.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignRight
		})

		// 3. Prepare Data Rows
		var data [][]string
		for _, e := range entries {
			row := []string{
				strconv.Itoa(e.Rank),
				e.StoreID,
				e.Name,
				fmtFloat(e.Metric),
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

		if _, err := fmt.Fprintf(w, "Showing %s %d stores\n", cfg.Direction, len(entries)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Ranking completed in %v. Snapshot backend: %s\n", duration, cfg.SnapshotBackend); err != nil {
			return err
		}
		return nil
	}, "Wrote rank table")
}
