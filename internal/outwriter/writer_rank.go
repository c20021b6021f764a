package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/franchops/storesense/schema"
)

// writeJSONResultsForRank marshals the ranking entries to JSON and writes them.
func writeJSONResultsForRank(w io.Writer, entries []schema.RankEntry) error {
	return writeJSON(w, entries)
}

// writeCSVResultsForRank writes the ranking entries to a CSV writer.
func writeCSVResultsForRank(w *csv.Writer, entries []schema.RankEntry, fmtFloat func(float64) string) error {
	// 1. Write Header Row
	header := []string{
		"rank",
		"store",
		"name",
		"metric",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for _, e := range entries {
		row := []string{
			strconv.Itoa(e.Rank),
			e.StoreID,
			e.Name,
			fmtFloat(e.Metric),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
