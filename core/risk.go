package core

import (
	"fmt"
	"sort"
	"time"

	"github.com/franchops/storesense/schema"
)

// AggregateRisk derives the full risk profile of one store from its current
// signals. The evidence rules are fixed and ordered, each independently
// evaluated; the composite score is the clamped sum of the baseline and all
// numerical impacts. Given identical inputs the output is identical down to
// evidence ordering: no randomness, no clock reads (EvaluatedAt anchors all
// date arithmetic).
//
// The derived risk level is set through ClassifyRisk as the final step of
// the same recompute, so score and level cannot drift apart.
func AggregateRisk(in *schema.RiskInput, rules *schema.RuleSet) *schema.RiskProfile {
	profile := &schema.RiskProfile{
		StoreID:     in.StoreID,
		EvaluatedAt: in.EvaluatedAt,
		History:     in.History,
	}

	if in.QSC != nil {
		evaluateQSCRules(in.QSC, rules, profile)
	} else {
		profile.SkippedSignals = append(profile.SkippedSignals, schema.QSCSignalClass)
	}

	if in.POS != nil {
		evaluatePOSRules(in.POS, rules, profile)
	} else {
		profile.SkippedSignals = append(profile.SkippedSignals, schema.POSSignalClass)
	}

	if in.Ops != nil {
		evaluateOpsRules(in.Ops, in.EvaluatedAt, rules, profile)
	} else {
		profile.SkippedSignals = append(profile.SkippedSignals, schema.OpsSignalClass)
	}

	profile.TotalRiskScore = clamp(rules.Baseline+profile.NumericalImpactSum(), 0, 100)
	profile.RiskLevel = ClassifyRisk(rules.RiskThresholds, profile.TotalRiskScore)
	profile.RootCauses = rootCauses(profile.Evidence, rules.RootCauseLimit)
	return profile
}

// evaluateQSCRules applies the inspection-quality evidence rules.
func evaluateQSCRules(sig *schema.QSCSignal, rules *schema.RuleSet, profile *schema.RiskProfile) {
	switch {
	case sig.Score < rules.LowQSCCutoff:
		profile.Evidence = append(profile.Evidence, schema.Evidence{
			Kind:        schema.NumericalEvidence,
			Category:    schema.QSCCategory,
			Label:       "Low QSC inspection score",
			Observed:    sig.Score,
			Weight:      rules.LowQSCCutoff,
			Impact:      rules.LowQSCImpact,
			Description: fmt.Sprintf("QSC score %.1f below cutoff %.1f", sig.Score, rules.LowQSCCutoff),
		})
		// Repeat offense: any prior score already sat below the cutoff.
		repeats := 0
		for _, prior := range sig.PriorScores {
			if prior < rules.LowQSCCutoff {
				repeats++
			}
		}
		if repeats > 0 {
			profile.Evidence = append(profile.Evidence, schema.Evidence{
				Kind:          schema.PatternEvidence,
				Pattern:       schema.RepeatedPattern,
				DetectedCount: repeats + 1,
				Description:   fmt.Sprintf("QSC score below %.0f in %d inspections", rules.LowQSCCutoff, repeats+1),
			})
		}

	case sig.Score < rules.MidQSCCutoff:
		profile.Evidence = append(profile.Evidence, schema.Evidence{
			Kind:        schema.NumericalEvidence,
			Category:    schema.QSCCategory,
			Label:       "Marginal QSC inspection score",
			Observed:    sig.Score,
			Weight:      rules.MidQSCCutoff,
			Impact:      rules.MidQSCImpact,
			Description: fmt.Sprintf("QSC score %.1f below target %.1f", sig.Score, rules.MidQSCCutoff),
		})
	}
}

// evaluatePOSRules applies the sales-trend evidence rules.
func evaluatePOSRules(sig *schema.POSSignal, rules *schema.RuleSet, profile *schema.RiskProfile) {
	decline := -sig.WeekOverWeekPct
	if decline < rules.DeclineMagnitude {
		return
	}

	profile.Evidence = append(profile.Evidence, schema.Evidence{
		Kind:        schema.NumericalEvidence,
		Category:    schema.POSCategory,
		Label:       "Sustained sales decline",
		Observed:    sig.WeekOverWeekPct,
		Weight:      rules.DeclineMagnitude,
		Impact:      rules.SalesDeclineImpact,
		Description: fmt.Sprintf("weekly sales down %.1f%%, decline threshold %.1f%%", decline, rules.DeclineMagnitude),
	})

	// Consecutive drop: the decline must hold across the most recent prior
	// periods without interruption.
	consecutive := 0
	for _, prior := range sig.PriorChanges {
		if -prior < rules.DeclineMagnitude {
			break
		}
		consecutive++
	}
	if consecutive >= rules.ConsecutivePeriods {
		profile.Evidence = append(profile.Evidence, schema.Evidence{
			Kind:          schema.PatternEvidence,
			Pattern:       schema.ConsecutiveDropPattern,
			DetectedCount: consecutive + 1,
			Description:   fmt.Sprintf("sales declined >= %.1f%% for %d consecutive periods", rules.DeclineMagnitude, consecutive+1),
		})
	}
}

// evaluateOpsRules applies the operational-state evidence rules. The
// corrective-action delay rule is informational: it contributes context
// evidence but no numeric impact unless another rule already fired.
func evaluateOpsRules(sig *schema.OpsSignal, evaluatedAt time.Time, rules *schema.RuleSet, profile *schema.RiskProfile) {
	if sig.Status.Severity() >= schema.MostSevereLifecycle.Severity() {
		profile.Evidence = append(profile.Evidence, schema.Evidence{
			Kind:        schema.NumericalEvidence,
			Category:    schema.OperationCategory,
			Label:       "Store at most severe lifecycle state",
			Observed:    float64(sig.Status.Severity()),
			Weight:      float64(schema.MostSevereLifecycle.Severity()),
			Impact:      rules.SevereStatusImpact,
			Description: fmt.Sprintf("operational status %s", sig.Status),
		})
		profile.Evidence = append(profile.Evidence, schema.Evidence{
			Kind:        schema.ContextEvidence,
			Context:     schema.StatusChangeContext,
			Date:        sig.StatusChangedAt,
			Description: fmt.Sprintf("status changed to %s", sig.Status),
		})
	}

	grace := time.Duration(rules.ActionGraceDays) * 24 * time.Hour
	for _, action := range sig.PendingActions {
		if action.DueDate.IsZero() || evaluatedAt.Sub(action.DueDate) <= grace {
			continue
		}
		overdue := int(evaluatedAt.Sub(action.DueDate).Hours() / 24)
		profile.Evidence = append(profile.Evidence, schema.Evidence{
			Kind:        schema.ContextEvidence,
			Context:     schema.ActionDelayContext,
			Date:        action.DueDate,
			Description: fmt.Sprintf("corrective action %q overdue by %d days", action.Description, overdue),
		})
	}
}

// rootCauses returns the labels of the top-N numerical evidence items by
// impact, descending. Ties keep rule evaluation order (stable sort).
func rootCauses(evidence []schema.Evidence, limit int) []string {
	numerical := make([]schema.Evidence, 0, len(evidence))
	for _, e := range evidence {
		if e.Kind == schema.NumericalEvidence {
			numerical = append(numerical, e)
		}
	}
	sort.SliceStable(numerical, func(i, j int) bool {
		return numerical[i].Impact > numerical[j].Impact
	})
	if len(numerical) > limit {
		numerical = numerical[:limit]
	}
	causes := make([]string, 0, len(numerical))
	for _, e := range numerical {
		causes = append(causes, e.Label)
	}
	return causes
}

// clamp bounds v to [lo,hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
