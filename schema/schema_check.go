package schema

// CheckViolation is one store that reached or exceeded the failing level.
type CheckViolation struct {
	StoreID string    `json:"storeId"`
	Score   float64   `json:"score"`
	Level   RiskLevel `json:"level"`
}

// CheckResult holds the outcome of a policy check over a store population.
type CheckResult struct {
	Passed      bool             `json:"passed"`
	FailLevel   RiskLevel        `json:"failLevel"`
	TotalStores int              `json:"totalStores"`
	AvgScore    float64          `json:"avgScore"`
	MaxScore    float64          `json:"maxScore"`
	Violations  []CheckViolation `json:"violations"`
}
