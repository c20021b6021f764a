// Package schema has configs, models and shared constants for all parts of storesense.
package schema

// ChecklistItem is a single scorable line of a QSC inspection template.
// Items are immutable once an inspection references them; changes are made
// by publishing a new template version.
type ChecklistItem struct {
	ID       string  `json:"id"`
	Prompt   string  `json:"prompt"`
	Weight   float64 `json:"weight"`   // points contributed at a perfect raw score
	Required bool    `json:"required"` // completion warnings treat these specially
}

// Category is a top-level QSC grouping (Quality, Service, Hygiene, ...)
// with a declared weight and an ordered set of checklist items.
type Category struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Weight float64         `json:"weight"` // declared contribution to the 100-point scale
	Items  []ChecklistItem `json:"items"`
}

// Template is a versioned QSC inspection template. The version string is
// monotonically comparable (type-prefixed sequence number, e.g. "QSC-0007").
type Template struct {
	ID         string     `json:"id"`
	Version    string     `json:"version"`
	Name       string     `json:"name"`
	Categories []Category `json:"categories"`
}

// AnswerSet maps checklist item ID to a raw score. Valid raw scores are
// 1-5 (5 = best); 0 marks an item explicitly left unanswered. How
// unanswered items affect the score is governed by RuleSet.Unanswered.
type AnswerSet map[string]float64

// ItemCount returns the total number of checklist items across all categories.
func (t *Template) ItemCount() int {
	n := 0
	for _, c := range t.Categories {
		n += len(c.Items)
	}
	return n
}

// MaxTotal returns the summed item weights across all categories. This is
// the denominator the scorer normalizes against; declared category weights
// are never trusted to sum to 100.
func (t *Template) MaxTotal() float64 {
	var total float64
	for _, c := range t.Categories {
		for _, it := range c.Items {
			total += it.Weight
		}
	}
	return total
}
