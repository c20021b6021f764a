package schema

import "time"

// CategoryScore is a per-category subtotal of a scored inspection.
type CategoryScore struct {
	CategoryID string  `json:"categoryId"`
	Name       string  `json:"name"`
	Raw        float64 `json:"raw"` // summed answer scores
	Max        float64 `json:"max"` // summed item weights
}

// InspectionResult is the immutable output of scoring one inspection
// against one template version. A re-score always produces a new result.
type InspectionResult struct {
	StoreID         string          `json:"storeId"`
	TemplateID      string          `json:"templateId"`
	TemplateVersion string          `json:"templateVersion"`
	EvaluatedAt     time.Time       `json:"evaluatedAt"`
	TotalScore      float64         `json:"totalScore"` // 0-100, one decimal
	Grade           Grade           `json:"grade"`
	Passed          bool            `json:"passed"`
	CategoryScores  []CategoryScore `json:"categoryScores"`
	AnsweredItems   int             `json:"answeredItems"`
	TotalItems      int             `json:"totalItems"`
}

// InspectionRecord is the canonical input shape for one store's inspection:
// a store identity, an evaluation instant, and raw per-item answers.
// Upstream adapters are responsible for normalizing to this shape.
type InspectionRecord struct {
	StoreID     string    `json:"storeId"`
	EvaluatedAt time.Time `json:"evaluatedAt"`
	Answers     AnswerSet `json:"answers"`
}

// CompletionRate returns done/total as a fraction in [0,1], guarding
// against a zero denominator. An empty population completes at 0, never
// a division error.
func CompletionRate(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total)
}
