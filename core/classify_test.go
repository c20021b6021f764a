package core

import (
	"testing"

	"github.com/franchops/storesense/schema"
	"github.com/stretchr/testify/assert"
)

// TestGradeFor walks the default grade bands including boundaries.
func TestGradeFor(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected schema.Grade
	}{
		{name: "perfect", score: 100, expected: schema.GradeS},
		{name: "S boundary", score: 95, expected: schema.GradeS},
		{name: "just below S", score: 94.9, expected: schema.GradeA},
		{name: "A boundary", score: 90, expected: schema.GradeA},
		{name: "B boundary", score: 80, expected: schema.GradeB},
		{name: "C boundary", score: 70, expected: schema.GradeC},
		{name: "just below C", score: 69.9, expected: schema.GradeD},
		{name: "floor", score: 0, expected: schema.GradeD},
	}

	bands := schema.DefaultRuleSet().GradeBands
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GradeFor(bands, tt.score))
		})
	}
}

// TestClassifyRisk walks the default risk thresholds including boundaries.
func TestClassifyRisk(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected schema.RiskLevel
	}{
		{name: "maximum", score: 100, expected: schema.RiskLevelRisk},
		{name: "risk boundary", score: 75, expected: schema.RiskLevelRisk},
		{name: "just below risk", score: 74.9, expected: schema.WatchlistLevel},
		{name: "watchlist boundary", score: 50, expected: schema.WatchlistLevel},
		{name: "just below watchlist", score: 49.9, expected: schema.NormalLevel},
		{name: "floor", score: 0, expected: schema.NormalLevel},
	}

	thresholds := schema.DefaultRuleSet().RiskThresholds
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyRisk(thresholds, tt.score))
		})
	}
}

// TestClassifyRiskMonotonic ensures a higher score never yields a lower level.
func TestClassifyRiskMonotonic(t *testing.T) {
	thresholds := schema.DefaultRuleSet().RiskThresholds
	prev := ClassifyRisk(thresholds, 0)
	for score := 1.0; score <= 100; score++ {
		cur := ClassifyRisk(thresholds, score)
		assert.GreaterOrEqual(t, cur.Severity(), prev.Severity(), "severity dropped at score %.0f", score)
		prev = cur
	}
}
