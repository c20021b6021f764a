// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/franchops/storesense/internal/contract"
	"github.com/franchops/storesense/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteInspections prints scored inspection results using the configured output format.
func (ow *OutWriter) WriteInspections(results []*schema.InspectionResult, cfg *contract.Config, duration time.Duration) error {
	return PrintInspectionResults(results, cfg, duration)
}

// WriteRiskProfiles prints risk assessment results using the configured output format.
func (ow *OutWriter) WriteRiskProfiles(profiles []*schema.RiskProfile, cfg *contract.Config, duration time.Duration) error {
	return PrintRiskProfiles(profiles, cfg, duration)
}

// WriteTrend prints a trend series using the configured output format.
func (ow *OutWriter) WriteTrend(result schema.TrendResult, cfg *contract.Config, duration time.Duration) error {
	return PrintTrendResults(result, cfg, duration)
}

// WriteRankings prints ranking entries using the configured output format.
func (ow *OutWriter) WriteRankings(entries []schema.RankEntry, cfg *contract.Config, duration time.Duration) error {
	return PrintRankResults(entries, cfg, duration)
}

// WriteCheck prints a policy check result using the configured output format.
func (ow *OutWriter) WriteCheck(result *schema.CheckResult, cfg *contract.Config) error {
	return PrintCheckResult(result, cfg)
}

// WriteRules prints the active rule set using the configured output format.
func (ow *OutWriter) WriteRules(rules *schema.RuleSet, cfg *contract.Config) error {
	return PrintRuleSet(rules, cfg)
}

// GetMaxTableTextWidth calculates the maximum width for free-text columns
// in table output based on terminal width.
func GetMaxTableTextWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns (store, score, level) plus
	// table borders, separators, and padding.
	baseWidth := 45

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable text width
		return 15
	}
	if available > 70 {
		// Maximum text width to keep rows scannable
		return 70
	}
	return available
}
