package core

import (
	"testing"
	"time"

	"github.com/franchops/storesense/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var riskEvalTime = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

// evidenceKinds extracts the kind sequence for order assertions.
func evidenceKinds(profile *schema.RiskProfile) []schema.EvidenceKind {
	kinds := make([]schema.EvidenceKind, 0, len(profile.Evidence))
	for _, e := range profile.Evidence {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

// TestAggregateRiskLowQSC verifies the low-QSC rule and derived level.
func TestAggregateRiskLowQSC(t *testing.T) {
	rules := schema.DefaultRuleSet()
	in := &schema.RiskInput{
		StoreID:     "store-1",
		EvaluatedAt: riskEvalTime,
		QSC:         &schema.QSCSignal{Score: 65, EvaluatedAt: riskEvalTime},
	}

	profile := AggregateRisk(in, rules)

	// baseline 20 + low QSC 40
	assert.Equal(t, 60.0, profile.TotalRiskScore)
	assert.Equal(t, schema.WatchlistLevel, profile.RiskLevel)
	assert.Equal(t, []string{"Low QSC inspection score"}, profile.RootCauses)
	assert.ElementsMatch(t, []schema.SignalClass{schema.POSSignalClass, schema.OpsSignalClass}, profile.SkippedSignals)
}

// TestAggregateRiskRepeatedOffense verifies the repeat-offense pattern fires
// only when a prior inspection also sat below the cutoff.
func TestAggregateRiskRepeatedOffense(t *testing.T) {
	rules := schema.DefaultRuleSet()

	t.Run("prior failure detected", func(t *testing.T) {
		in := &schema.RiskInput{
			StoreID:     "store-1",
			EvaluatedAt: riskEvalTime,
			QSC:         &schema.QSCSignal{Score: 65, PriorScores: []float64{68, 82}, EvaluatedAt: riskEvalTime},
		}
		profile := AggregateRisk(in, rules)
		require.Len(t, profile.Evidence, 2)
		assert.Equal(t, schema.PatternEvidence, profile.Evidence[1].Kind)
		assert.Equal(t, schema.RepeatedPattern, profile.Evidence[1].Pattern)
		assert.Equal(t, 2, profile.Evidence[1].DetectedCount)
		// Pattern evidence never moves the score.
		assert.Equal(t, 60.0, profile.TotalRiskScore)
	})

	t.Run("clean history stays a one-off", func(t *testing.T) {
		in := &schema.RiskInput{
			StoreID:     "store-1",
			EvaluatedAt: riskEvalTime,
			QSC:         &schema.QSCSignal{Score: 65, PriorScores: []float64{85, 90}, EvaluatedAt: riskEvalTime},
		}
		profile := AggregateRisk(in, rules)
		assert.Equal(t, []schema.EvidenceKind{schema.NumericalEvidence}, evidenceKinds(profile))
	})
}

// TestAggregateRiskMidQSC verifies the marginal band contributes the smaller impact.
func TestAggregateRiskMidQSC(t *testing.T) {
	rules := schema.DefaultRuleSet()
	in := &schema.RiskInput{
		StoreID:     "store-1",
		EvaluatedAt: riskEvalTime,
		QSC:         &schema.QSCSignal{Score: 75, EvaluatedAt: riskEvalTime},
	}

	profile := AggregateRisk(in, rules)

	// baseline 20 + mid QSC 15
	assert.Equal(t, 35.0, profile.TotalRiskScore)
	assert.Equal(t, schema.NormalLevel, profile.RiskLevel)
}

// TestAggregateRiskSalesDecline verifies the decline rule and the
// consecutive-drop pattern.
func TestAggregateRiskSalesDecline(t *testing.T) {
	rules := schema.DefaultRuleSet()

	t.Run("single decline", func(t *testing.T) {
		in := &schema.RiskInput{
			StoreID:     "store-1",
			EvaluatedAt: riskEvalTime,
			POS:         &schema.POSSignal{WeekOverWeekPct: -20},
		}
		profile := AggregateRisk(in, rules)
		assert.Equal(t, 45.0, profile.TotalRiskScore)
		assert.Equal(t, []schema.EvidenceKind{schema.NumericalEvidence}, evidenceKinds(profile))
	})

	t.Run("consecutive drops add the pattern", func(t *testing.T) {
		in := &schema.RiskInput{
			StoreID:     "store-1",
			EvaluatedAt: riskEvalTime,
			POS:         &schema.POSSignal{WeekOverWeekPct: -20, PriorChanges: []float64{-18, -16}},
		}
		profile := AggregateRisk(in, rules)
		require.Len(t, profile.Evidence, 2)
		assert.Equal(t, schema.ConsecutiveDropPattern, profile.Evidence[1].Pattern)
		assert.Equal(t, 3, profile.Evidence[1].DetectedCount)
		// The pattern is informational; only the decline rule scores.
		assert.Equal(t, 45.0, profile.TotalRiskScore)
	})

	t.Run("interrupted decline breaks the streak", func(t *testing.T) {
		in := &schema.RiskInput{
			StoreID:     "store-1",
			EvaluatedAt: riskEvalTime,
			POS:         &schema.POSSignal{WeekOverWeekPct: -20, PriorChanges: []float64{-18, 5, -16}},
		}
		profile := AggregateRisk(in, rules)
		assert.Equal(t, []schema.EvidenceKind{schema.NumericalEvidence}, evidenceKinds(profile))
	})

	t.Run("mild dip is not a decline", func(t *testing.T) {
		in := &schema.RiskInput{
			StoreID:     "store-1",
			EvaluatedAt: riskEvalTime,
			POS:         &schema.POSSignal{WeekOverWeekPct: -10},
		}
		profile := AggregateRisk(in, rules)
		assert.Empty(t, profile.Evidence)
		assert.Equal(t, rules.Baseline, profile.TotalRiskScore)
	})
}

// TestAggregateRiskSuspendedStatus verifies the severe-status rule pairs the
// numeric impact with status-change context.
func TestAggregateRiskSuspendedStatus(t *testing.T) {
	rules := schema.DefaultRuleSet()
	in := &schema.RiskInput{
		StoreID:     "store-1",
		EvaluatedAt: riskEvalTime,
		QSC:         &schema.QSCSignal{Score: 65, EvaluatedAt: riskEvalTime},
		Ops: &schema.OpsSignal{
			Status:          schema.SuspendedLifecycle,
			StatusChangedAt: riskEvalTime.AddDate(0, 0, -3),
		},
	}

	profile := AggregateRisk(in, rules)

	// baseline 20 + low QSC 40 + suspended 30
	assert.Equal(t, 90.0, profile.TotalRiskScore)
	assert.Equal(t, schema.RiskLevelRisk, profile.RiskLevel)
	assert.Equal(t,
		[]schema.EvidenceKind{schema.NumericalEvidence, schema.NumericalEvidence, schema.ContextEvidence},
		evidenceKinds(profile))
	assert.Equal(t, schema.StatusChangeContext, profile.Evidence[2].Context)
	assert.Equal(t, in.Ops.StatusChangedAt, profile.Evidence[2].Date)
}

// TestAggregateRiskActionDelay verifies overdue corrective actions add
// context evidence without moving the score.
func TestAggregateRiskActionDelay(t *testing.T) {
	rules := schema.DefaultRuleSet()

	t.Run("overdue beyond grace", func(t *testing.T) {
		in := &schema.RiskInput{
			StoreID:     "store-1",
			EvaluatedAt: riskEvalTime,
			Ops: &schema.OpsSignal{
				Status: schema.OpenLifecycle,
				PendingActions: []schema.CorrectiveAction{
					{ID: "a1", Description: "Replace fryer filter", DueDate: riskEvalTime.AddDate(0, 0, -10)},
				},
			},
		}
		profile := AggregateRisk(in, rules)
		require.Len(t, profile.Evidence, 1)
		assert.Equal(t, schema.ContextEvidence, profile.Evidence[0].Kind)
		assert.Equal(t, schema.ActionDelayContext, profile.Evidence[0].Context)
		assert.Equal(t, rules.Baseline, profile.TotalRiskScore)
		assert.Empty(t, profile.RootCauses)
	})

	t.Run("inside the grace period", func(t *testing.T) {
		in := &schema.RiskInput{
			StoreID:     "store-1",
			EvaluatedAt: riskEvalTime,
			Ops: &schema.OpsSignal{
				Status: schema.OpenLifecycle,
				PendingActions: []schema.CorrectiveAction{
					{ID: "a1", Description: "Replace fryer filter", DueDate: riskEvalTime.AddDate(0, 0, -3)},
				},
			},
		}
		profile := AggregateRisk(in, rules)
		assert.Empty(t, profile.Evidence)
	})
}

// TestAggregateRiskClamp verifies the composite score never exceeds 100.
func TestAggregateRiskClamp(t *testing.T) {
	rules := schema.DefaultRuleSet()
	in := &schema.RiskInput{
		StoreID:     "store-1",
		EvaluatedAt: riskEvalTime,
		QSC:         &schema.QSCSignal{Score: 40, EvaluatedAt: riskEvalTime},
		POS:         &schema.POSSignal{WeekOverWeekPct: -30},
		Ops:         &schema.OpsSignal{Status: schema.SuspendedLifecycle, StatusChangedAt: riskEvalTime},
	}

	profile := AggregateRisk(in, rules)

	// 20 + 40 + 25 + 30 = 115, clamped.
	assert.Equal(t, 100.0, profile.TotalRiskScore)
	assert.Equal(t, schema.RiskLevelRisk, profile.RiskLevel)
}

// TestAggregateRiskAllSignalsMissing verifies graceful degradation.
func TestAggregateRiskAllSignalsMissing(t *testing.T) {
	rules := schema.DefaultRuleSet()
	in := &schema.RiskInput{StoreID: "store-1", EvaluatedAt: riskEvalTime}

	profile := AggregateRisk(in, rules)

	assert.Equal(t, rules.Baseline, profile.TotalRiskScore)
	assert.Equal(t, schema.NormalLevel, profile.RiskLevel)
	assert.ElementsMatch(t,
		[]schema.SignalClass{schema.QSCSignalClass, schema.POSSignalClass, schema.OpsSignalClass},
		profile.SkippedSignals)
	assert.Empty(t, profile.Evidence)
}

// TestAggregateRiskRootCauses verifies impact-descending order with a top-3 cap.
func TestAggregateRiskRootCauses(t *testing.T) {
	rules := schema.DefaultRuleSet()
	in := &schema.RiskInput{
		StoreID:     "store-1",
		EvaluatedAt: riskEvalTime,
		QSC:         &schema.QSCSignal{Score: 65, EvaluatedAt: riskEvalTime},
		POS:         &schema.POSSignal{WeekOverWeekPct: -20},
		Ops:         &schema.OpsSignal{Status: schema.SuspendedLifecycle, StatusChangedAt: riskEvalTime},
	}

	profile := AggregateRisk(in, rules)

	assert.Equal(t, []string{
		"Low QSC inspection score",
		"Store at most severe lifecycle state",
		"Sustained sales decline",
	}, profile.RootCauses)
}

// TestAggregateRiskDeterminism verifies identical inputs produce identical
// profiles down to evidence ordering.
func TestAggregateRiskDeterminism(t *testing.T) {
	rules := schema.DefaultRuleSet()
	in := &schema.RiskInput{
		StoreID:     "store-1",
		EvaluatedAt: riskEvalTime,
		QSC:         &schema.QSCSignal{Score: 65, PriorScores: []float64{68}, EvaluatedAt: riskEvalTime},
		POS:         &schema.POSSignal{WeekOverWeekPct: -20, PriorChanges: []float64{-18, -16}},
		Ops: &schema.OpsSignal{
			Status:          schema.SuspendedLifecycle,
			StatusChangedAt: riskEvalTime.AddDate(0, 0, -3),
			PendingActions: []schema.CorrectiveAction{
				{ID: "a1", Description: "Deep clean walk-in", DueDate: riskEvalTime.AddDate(0, 0, -10)},
			},
		},
	}

	first := AggregateRisk(in, rules)
	second := AggregateRisk(in, rules)
	assert.Equal(t, first, second)
}
