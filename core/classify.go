package core

import "github.com/franchops/storesense/schema"

// GradeFor maps a normalized 0-100 score to a letter grade. Bands are
// evaluated from highest MinScore down and the first satisfied band wins;
// RuleSet.Validate guarantees the table is sorted and floors at 0.
func GradeFor(bands []schema.GradeBand, score float64) schema.Grade {
	for _, b := range bands {
		if score >= b.MinScore {
			return b.Grade
		}
	}
	// Unreachable with a validated table; the floor band matches any score.
	return bands[len(bands)-1].Grade
}

// ClassifyRisk maps a composite risk score to a risk level using the same
// highest-first evaluation as grade bands. It is kept separate from the
// aggregator so historical scores can be re-classified (e.g. for trend
// charts) without re-running evidence generation.
func ClassifyRisk(thresholds []schema.RiskThreshold, score float64) schema.RiskLevel {
	for _, t := range thresholds {
		if score >= t.MinScore {
			return t.Level
		}
	}
	return thresholds[len(thresholds)-1].Level
}
