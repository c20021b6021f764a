package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/franchops/storesense/internal/contract"
	"github.com/franchops/storesense/schema"
)

// writeJSONResultsForRisk marshals the risk profiles to JSON and writes them.
func writeJSONResultsForRisk(w io.Writer, profiles []*schema.RiskProfile) error {
	return writeJSON(w, profiles)
}

// writeCSVResultsForRisk writes the risk profiles to a CSV writer, one row
// per evidence entry so every rule firing stays attributable downstream.
func writeCSVResultsForRisk(w *csv.Writer, profiles []*schema.RiskProfile, fmtFloat func(float64) string) error {
	// 1. Write Header Row
	header := []string{
		"store",
		"evaluated_at",
		"risk_score",
		"level",
		"root_causes",
		"skipped_signals",
		"evidence_kind",
		"evidence_label",
		"evidence_impact",
		"evidence_description",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for _, p := range profiles {
		base := []string{
			p.StoreID,
			p.EvaluatedAt.Format(contract.DateTimeFormat),
			fmtFloat(p.TotalRiskScore),
			contract.LevelLabel(p.RiskLevel),
			formatRootCauses(p.RootCauses),
			formatSkippedSignals(p.SkippedSignals),
		}
		if len(p.Evidence) == 0 {
			row := append(append([]string{}, base...), "", "", "", "")
			if err := w.Write(row); err != nil {
				return err
			}
			continue
		}
		for _, e := range p.Evidence {
			row := append(append([]string{}, base...),
				string(e.Kind),
				evidenceLabel(e),
				evidenceImpact(e, fmtFloat),
				e.Description,
			)
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}

// evidenceLabel picks the variant-appropriate label for one evidence entry.
func evidenceLabel(e schema.Evidence) string {
	switch e.Kind {
	case schema.PatternEvidence:
		return string(e.Pattern)
	case schema.ContextEvidence:
		return string(e.Context)
	default:
		return e.Label
	}
}

// evidenceImpact renders the numeric impact, or the detected count for
// pattern evidence which carries no score contribution of its own.
func evidenceImpact(e schema.Evidence, fmtFloat func(float64) string) string {
	switch e.Kind {
	case schema.NumericalEvidence:
		return fmtFloat(e.Impact)
	case schema.PatternEvidence:
		return strconv.Itoa(e.DetectedCount)
	default:
		return ""
	}
}
