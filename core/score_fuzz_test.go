package core

import (
	"testing"
	"time"

	"github.com/franchops/storesense/schema"
)

// FuzzAggregateRisk fuzzes the risk aggregator with random signal values.
// The invariants hold for any input: the score stays in [0, 100] and the
// level matches a fresh classification of the score.
func FuzzAggregateRisk(f *testing.F) {
	seeds := []struct {
		qscScore float64
		wowPct   float64
		status   string
		daysLate int
	}{
		{68, -20, "SUSPENDED", 10},
		{95, 5, "OPEN", 0},
		{0, -100, "WARNING", 400},
		{100, 0, "", -5},
		{74.9, -15, "bogus", 3},
	}
	for _, seed := range seeds {
		f.Add(seed.qscScore, seed.wowPct, seed.status, seed.daysLate)
	}

	rules := schema.DefaultRuleSet()
	evaluatedAt := time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC)

	f.Fuzz(func(t *testing.T, qscScore float64, wowPct float64, status string, daysLate int) {
		input := &schema.RiskInput{
			StoreID:     "store-fuzz",
			EvaluatedAt: evaluatedAt,
			QSC:         &schema.QSCSignal{Score: qscScore, EvaluatedAt: evaluatedAt},
			POS:         &schema.POSSignal{WeekOverWeekPct: wowPct},
			Ops: &schema.OpsSignal{
				Status: schema.Lifecycle(status),
				PendingActions: []schema.CorrectiveAction{
					{ID: "a1", DueDate: evaluatedAt.AddDate(0, 0, -daysLate)},
				},
			},
		}
		profile := AggregateRisk(input, rules)

		if profile.TotalRiskScore < 0 || profile.TotalRiskScore > 100 {
			t.Fatalf("score out of range: %f", profile.TotalRiskScore)
		}
		if want := ClassifyRisk(rules.RiskThresholds, profile.TotalRiskScore); profile.RiskLevel != want {
			t.Fatalf("level %s does not match classification %s", profile.RiskLevel, want)
		}
	})
}

// FuzzGradeFor fuzzes grade lookup across arbitrary scores.
func FuzzGradeFor(f *testing.F) {
	for _, seed := range []float64{0, 69.9, 70, 80, 90, 94.9, 95, 100, -3, 250} {
		f.Add(seed)
	}

	bands := schema.DefaultRuleSet().GradeBands
	f.Fuzz(func(t *testing.T, score float64) {
		grade := GradeFor(bands, score)
		found := false
		for _, b := range bands {
			if b.Grade == grade {
				found = true
			}
		}
		if !found {
			t.Fatalf("grade %s not in band table", grade)
		}
	})
}
