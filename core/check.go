package core

import (
	"math"

	"github.com/franchops/storesense/schema"
)

// CheckStores gates a batch of risk profiles against a failing level:
// any store classified at or above failLevel is a violation. An empty
// population passes with an average of 0 (zero-denominator guard).
func CheckStores(profiles []*schema.RiskProfile, failLevel schema.RiskLevel) *schema.CheckResult {
	result := &schema.CheckResult{
		Passed:      true,
		FailLevel:   failLevel,
		TotalStores: len(profiles),
		Violations:  []schema.CheckViolation{},
	}

	var sum, maxScore float64
	for _, p := range profiles {
		sum += p.TotalRiskScore
		maxScore = math.Max(maxScore, p.TotalRiskScore)
		if p.RiskLevel.Severity() >= failLevel.Severity() {
			result.Passed = false
			result.Violations = append(result.Violations, schema.CheckViolation{
				StoreID: p.StoreID,
				Score:   p.TotalRiskScore,
				Level:   p.RiskLevel,
			})
		}
	}

	if len(profiles) > 0 {
		result.AvgScore = math.Round(sum/float64(len(profiles))*10) / 10
	}
	result.MaxScore = maxScore
	return result
}
