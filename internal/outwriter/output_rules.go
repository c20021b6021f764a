package outwriter

import (
	"fmt"
	"io"

	"github.com/franchops/storesense/internal/contract"
	"github.com/franchops/storesense/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintRuleSet outputs the active rule set, dispatching based on the output format configured.
func PrintRuleSet(rules *schema.RuleSet, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForRules(rules, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut, schema.ParquetOut:
		return fmt.Errorf("rule display supports text or json output only")
	default:
		if err := printRulesText(rules, cfg); err != nil {
			return fmt.Errorf("error writing rules output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForRules handles opening the file and calling the JSON writer.
func printJSONResultsForRules(rules *schema.RuleSet, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, rules)
	}, "Wrote JSON rule set")
}

// printRulesText renders the active bands, thresholds and impacts in a
// human-readable layout for operators tuning a config file.
func printRulesText(rules *schema.RuleSet, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		fmtFloat, _ := createFormatters(cfg.Precision)

		if _, err := fmt.Fprintln(w, "Grade bands (highest first):"); err != nil {
			return err
		}
		bands := tablewriter.NewWriter(w)
		bands.Header([]string{"Grade", "Min Score", "Label"})
		bands.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignRight
		})
		var bandRows [][]string
		for _, b := range rules.GradeBands {
			bandRows = append(bandRows, []string{
				contract.ColorGradeLabel(b.Grade, cfg.UseColors),
				fmtFloat(b.MinScore),
				b.Label,
			})
		}
		if err := bands.Bulk(bandRows); err != nil {
			return err
		}
		if err := bands.Render(); err != nil {
			return err
		}

		if _, err := fmt.Fprintln(w, "\nRisk thresholds (highest first):"); err != nil {
			return err
		}
		thresholds := tablewriter.NewWriter(w)
		thresholds.Header([]string{"Level", "Min Score"})
		thresholds.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignRight
		})
		var levelRows [][]string
		for _, t := range rules.RiskThresholds {
			levelRows = append(levelRows, []string{
				contract.ColorLevelLabel(t.Level, cfg.UseColors),
				fmtFloat(t.MinScore),
			})
		}
		if err := thresholds.Bulk(levelRows); err != nil {
			return err
		}
		if err := thresholds.Render(); err != nil {
			return err
		}

		_, err := fmt.Fprintf(w, `
Scoring policy:
  pass threshold:       %s
  unanswered policy:    %s

Risk aggregation:
  baseline:             %s
  low QSC (< %s):       impact %s
  mid QSC (< %s):       impact %s
  sales decline (>= %s%%): impact %s (consecutive periods: %d)
  severe status:        impact %s
  action grace days:    %d
  root cause limit:     %d
`,
			fmtFloat(rules.PassThreshold),
			rules.Unanswered,
			fmtFloat(rules.Baseline),
			fmtFloat(rules.LowQSCCutoff), fmtFloat(rules.LowQSCImpact),
			fmtFloat(rules.MidQSCCutoff), fmtFloat(rules.MidQSCImpact),
			fmtFloat(rules.DeclineMagnitude), fmtFloat(rules.SalesDeclineImpact), rules.ConsecutivePeriods,
			fmtFloat(rules.SevereStatusImpact),
			rules.ActionGraceDays,
			rules.RootCauseLimit,
		)
		return err
	}, "Wrote rule set")
}
