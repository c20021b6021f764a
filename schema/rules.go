package schema

import (
	"fmt"
	"sort"
)

// GradeBand maps a minimum normalized score to a letter grade. Bands are
// evaluated from highest MinScore down; the first satisfied band wins.
type GradeBand struct {
	Grade    Grade   `json:"grade"`
	MinScore float64 `json:"minScore"`
	Label    string  `json:"label"`
}

// RiskThreshold maps a minimum composite risk score to a risk level,
// evaluated the same highest-first way as grade bands.
type RiskThreshold struct {
	Level    RiskLevel `json:"level"`
	MinScore float64   `json:"minScore"`
}

// RuleSet carries every tunable parameter of the assessment engine. It is
// supplied at initialization and treated as read-only; nothing in the engine
// hardcodes a band, threshold or impact weight.
type RuleSet struct {
	GradeBands     []GradeBand     `json:"gradeBands"`
	RiskThresholds []RiskThreshold `json:"riskThresholds"`

	// Inspection scoring
	PassThreshold float64          `json:"passThreshold"` // isPassed policy, independent of grade labels
	Unanswered    UnansweredPolicy `json:"unanswered"`

	// Risk aggregation
	Baseline           float64 `json:"baseline"` // inherent minimum attention
	LowQSCCutoff       float64 `json:"lowQscCutoff"`
	MidQSCCutoff       float64 `json:"midQscCutoff"`
	LowQSCImpact       float64 `json:"lowQscImpact"`
	MidQSCImpact       float64 `json:"midQscImpact"`
	SalesDeclineImpact float64 `json:"salesDeclineImpact"`
	SevereStatusImpact float64 `json:"severeStatusImpact"`
	DeclineMagnitude   float64 `json:"declineMagnitude"`   // percent drop that counts as a sustained decline
	ConsecutivePeriods int     `json:"consecutivePeriods"` // prior periods needed for CONSECUTIVE_DROP
	ActionGraceDays    int     `json:"actionGraceDays"`    // corrective action grace period
	RootCauseLimit     int     `json:"rootCauseLimit"`
}

// DefaultRuleSet returns the rule set this system ships with. Every value
// here can be overridden through the config file; see contract.ConfigRawInput.
func DefaultRuleSet() *RuleSet {
	return &RuleSet{
		GradeBands: []GradeBand{
			{Grade: GradeS, MinScore: 95, Label: "Excellent"},
			{Grade: GradeA, MinScore: 90, Label: "Good"},
			{Grade: GradeB, MinScore: 80, Label: "Fair"},
			{Grade: GradeC, MinScore: 70, Label: "Needs Improvement"},
			{Grade: GradeD, MinScore: 0, Label: "Failing"},
		},
		RiskThresholds: []RiskThreshold{
			{Level: RiskLevelRisk, MinScore: 75},
			{Level: WatchlistLevel, MinScore: 50},
			{Level: NormalLevel, MinScore: 0},
		},
		PassThreshold:      80,
		Unanswered:         StrictPolicy,
		Baseline:           20,
		LowQSCCutoff:       70,
		MidQSCCutoff:       80,
		LowQSCImpact:       40,
		MidQSCImpact:       15,
		SalesDeclineImpact: 25,
		SevereStatusImpact: 30,
		DeclineMagnitude:   15,
		ConsecutivePeriods: 2,
		ActionGraceDays:    5,
		RootCauseLimit:     3,
	}
}

// Validate checks the rule set for internal consistency and normalizes the
// band and threshold tables into highest-first order. It must be called once
// before the rule set is handed to the engine.
func (r *RuleSet) Validate() error {
	if len(r.GradeBands) == 0 {
		return fmt.Errorf("rule set has no grade bands")
	}
	if len(r.RiskThresholds) == 0 {
		return fmt.Errorf("rule set has no risk thresholds")
	}

	sort.SliceStable(r.GradeBands, func(i, j int) bool {
		return r.GradeBands[i].MinScore > r.GradeBands[j].MinScore
	})
	sort.SliceStable(r.RiskThresholds, func(i, j int) bool {
		return r.RiskThresholds[i].MinScore > r.RiskThresholds[j].MinScore
	})

	// The lowest band and threshold must reach 0 so every score in [0,100]
	// classifies. Seen the other way: no gaps, first match wins.
	if floor := r.GradeBands[len(r.GradeBands)-1].MinScore; floor != 0 {
		return fmt.Errorf("grade bands do not cover [0,100]: floor band starts at %.1f", floor)
	}
	if floor := r.RiskThresholds[len(r.RiskThresholds)-1].MinScore; floor != 0 {
		return fmt.Errorf("risk thresholds do not cover [0,100]: floor threshold starts at %.1f", floor)
	}

	for i := 1; i < len(r.GradeBands); i++ {
		if r.GradeBands[i].MinScore == r.GradeBands[i-1].MinScore {
			return fmt.Errorf("duplicate grade band at minScore %.1f", r.GradeBands[i].MinScore)
		}
	}

	if _, ok := ValidUnansweredPolicies[r.Unanswered]; !ok {
		return fmt.Errorf("invalid unanswered policy: %q", r.Unanswered)
	}
	if r.Baseline < 0 || r.Baseline > 100 {
		return fmt.Errorf("baseline must be within [0,100], got %.1f", r.Baseline)
	}
	if r.LowQSCCutoff > r.MidQSCCutoff {
		return fmt.Errorf("low QSC cutoff %.1f exceeds mid QSC cutoff %.1f", r.LowQSCCutoff, r.MidQSCCutoff)
	}
	if r.DeclineMagnitude <= 0 {
		return fmt.Errorf("decline magnitude must be positive, got %.1f", r.DeclineMagnitude)
	}
	if r.ConsecutivePeriods < 1 {
		return fmt.Errorf("consecutive periods must be at least 1, got %d", r.ConsecutivePeriods)
	}
	if r.ActionGraceDays < 0 {
		return fmt.Errorf("action grace days cannot be negative, got %d", r.ActionGraceDays)
	}
	if r.RootCauseLimit < 1 {
		return fmt.Errorf("root cause limit must be at least 1, got %d", r.RootCauseLimit)
	}
	return nil
}
