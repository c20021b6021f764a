package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/franchops/storesense/internal/contract"
	"github.com/franchops/storesense/schema"
)

// writeJSONResultsForTrend marshals the schema.TrendResult to JSON and writes it.
func writeJSONResultsForTrend(w io.Writer, result schema.TrendResult) error {
	return writeJSON(w, result)
}

// writeCSVResultsForTrend writes the schema.TrendResult data to a CSV writer.
func writeCSVResultsForTrend(w *csv.Writer, result schema.TrendResult, fmtFloat func(float64) string, intFmt string) error {
	// 1. Write Header Row
	header := []string{
		"store",
		"period",
		"start",
		"avg_score",
		"delta",
		"events",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for _, p := range result.Points {
		row := []string{
			result.StoreID,
			p.Period,
			p.Start.Format(contract.DateFormat),
			fmtFloat(p.AvgScore),
			fmtFloat(p.Delta),
			fmt.Sprintf(intFmt, p.Count),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
