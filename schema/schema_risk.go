package schema

import "time"

// QSCSignal is the inspection-quality input for risk aggregation.
// PriorScores holds earlier total scores, most recent first; the repeat
// offense rule looks there for previous sub-cutoff results.
type QSCSignal struct {
	Score       float64   `json:"score"`
	PriorScores []float64 `json:"priorScores,omitempty"`
	EvaluatedAt time.Time `json:"evaluatedAt"`
}

// POSSignal is the sales-trend input for risk aggregation. Percent changes
// are week-over-week; negative means decline. PriorChanges holds earlier
// period changes, most recent first.
type POSSignal struct {
	WeekOverWeekPct float64   `json:"weekOverWeekPct"`
	PriorChanges    []float64 `json:"priorChanges,omitempty"`
}

// CorrectiveAction is a pending follow-up item assigned to a store.
type CorrectiveAction struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
}

// OpsSignal is the operational-state input for risk aggregation.
type OpsSignal struct {
	Status          Lifecycle          `json:"status"`
	StatusChangedAt time.Time          `json:"statusChangedAt"`
	PendingActions  []CorrectiveAction `json:"pendingActions,omitempty"`
}

// RiskInput is the canonical input for one store's risk evaluation. Signal
// pointers are nil when the upstream source has no data for that class; the
// aggregator degrades gracefully and records the skipped class instead of
// failing (a brand-new store legitimately has no QSC history yet).
type RiskInput struct {
	StoreID     string         `json:"storeId"`
	StoreName   string         `json:"storeName,omitempty"`
	EvaluatedAt time.Time      `json:"evaluatedAt"`
	QSC         *QSCSignal     `json:"qsc,omitempty"`
	POS         *POSSignal     `json:"pos,omitempty"`
	Ops         *OpsSignal     `json:"ops,omitempty"`
	History     []RiskSnapshot `json:"history,omitempty"`
}

// Evidence is a typed, attributable reason contributing to a store's risk
// assessment. Kind selects the variant; only the fields of that variant are
// populated. All evidence is a derived, read-only output of the aggregator.
type Evidence struct {
	Kind EvidenceKind `json:"kind"`

	// Numerical variant
	Category EvidenceCategory `json:"category,omitempty"`
	Label    string           `json:"label,omitempty"`
	Observed float64          `json:"observed,omitempty"`
	Weight   float64          `json:"weight,omitempty"`
	Impact   float64          `json:"impact,omitempty"`

	// Pattern variant
	Pattern       PatternType `json:"pattern,omitempty"`
	DetectedCount int         `json:"detectedCount,omitempty"`

	// Context variant
	Context ContextType `json:"context,omitempty"`
	Date    time.Time   `json:"date,omitzero"`

	Description string `json:"description,omitempty"`
}

// RiskSnapshot is one point of a store's risk score history.
type RiskSnapshot struct {
	EvaluatedAt time.Time `json:"evaluatedAt"`
	Score       float64   `json:"score"`
	Level       RiskLevel `json:"level"`
}

// RiskProfile is the full risk assessment of one store at one evaluation
// instant. It is recomputed from current inputs on demand, never patched
// incrementally, so the score and the derived level cannot drift apart.
type RiskProfile struct {
	StoreID        string         `json:"storeId"`
	EvaluatedAt    time.Time      `json:"evaluatedAt"`
	TotalRiskScore float64        `json:"totalRiskScore"` // 0-100, clamped
	RiskLevel      RiskLevel      `json:"riskLevel"`      // derived, never set directly
	Evidence       []Evidence     `json:"evidence"`
	RootCauses     []string       `json:"rootCauses"`               // top-N numerical evidence labels, impact desc
	SkippedSignals []SignalClass  `json:"skippedSignals,omitempty"` // signal classes absent from the input
	History        []RiskSnapshot `json:"history,omitempty"`
}

// NumericalImpactSum returns the summed impact of all numerical evidence.
func (p *RiskProfile) NumericalImpactSum() float64 {
	var sum float64
	for _, e := range p.Evidence {
		if e.Kind == NumericalEvidence {
			sum += e.Impact
		}
	}
	return sum
}
