package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/franchops/storesense/internal/contract"
	"github.com/franchops/storesense/schema"
)

// writeJSONResultsForInspections marshals the inspection results to JSON and writes them.
func writeJSONResultsForInspections(w io.Writer, results []*schema.InspectionResult) error {
	return writeJSON(w, results)
}

// writeCSVResultsForInspections writes the inspection results to a CSV writer,
// one row per category subtotal so downstream tooling can pivot on category.
func writeCSVResultsForInspections(w *csv.Writer, results []*schema.InspectionResult, fmtFloat func(float64) string, intFmt string) error {
	// 1. Write Header Row
	header := []string{
		"store",
		"template",
		"template_version",
		"evaluated_at",
		"total_score",
		"grade",
		"passed",
		"answered",
		"items",
		"completion",
		"category",
		"category_raw",
		"category_max",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for _, r := range results {
		base := []string{
			r.StoreID,
			r.TemplateID,
			r.TemplateVersion,
			r.EvaluatedAt.Format(contract.DateTimeFormat),
			fmtFloat(r.TotalScore),
			string(r.Grade),
			strconv.FormatBool(r.Passed),
			fmt.Sprintf(intFmt, r.AnsweredItems),
			fmt.Sprintf(intFmt, r.TotalItems),
			fmtFloat(schema.CompletionRate(r.AnsweredItems, r.TotalItems) * 100),
		}
		if len(r.CategoryScores) == 0 {
			row := append(append([]string{}, base...), "", "", "")
			if err := w.Write(row); err != nil {
				return err
			}
			continue
		}
		for _, cs := range r.CategoryScores {
			row := append(append([]string{}, base...),
				cs.Name,
				fmtFloat(cs.Raw),
				fmtFloat(cs.Max),
			)
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}
