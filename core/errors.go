package core

import "fmt"

// InvalidAnswerError reports an answer set that cannot be scored against the
// template: either a referenced item is not part of the template, or a raw
// score lies outside [0,5]. Scoring is aborted; no partial result is produced.
type InvalidAnswerError struct {
	ItemID string
	Score  float64
	Reason string
}

func (e *InvalidAnswerError) Error() string {
	return fmt.Sprintf("invalid answer for item %q (score %.1f): %s", e.ItemID, e.Score, e.Reason)
}

// DegenerateTemplateError reports a template whose summed item weights are
// zero, which makes normalization to the 100-point scale impossible.
// Callers should reject such templates at configuration time; the scorer
// still guards at compute time.
type DegenerateTemplateError struct {
	TemplateID string
	Version    string
}

func (e *DegenerateTemplateError) Error() string {
	return fmt.Sprintf("template %s (version %s) has zero total item weight", e.TemplateID, e.Version)
}
