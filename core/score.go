package core

import (
	"fmt"
	"math"
	"time"

	"github.com/franchops/storesense/schema"
)

// Raw score bounds for a single checklist item. 0 marks an unanswered item.
const (
	minRawScore = 0.0
	maxRawScore = 5.0
)

// ScoreInspection scores one answer set against a template and returns an
// immutable InspectionResult. The total is normalized against the actual
// summed item weights, never an assumed 100-point declared total.
//
// Every answered item must belong to the template and carry a raw score in
// [0,5]; violations surface as *InvalidAnswerError. A template with zero
// total weight surfaces as *DegenerateTemplateError.
func ScoreInspection(tmpl *schema.Template, rec *schema.InspectionRecord, rules *schema.RuleSet) (*schema.InspectionResult, error) {
	if tmpl.MaxTotal() == 0 {
		return nil, &DegenerateTemplateError{TemplateID: tmpl.ID, Version: tmpl.Version}
	}

	itemIDs := make(map[string]struct{}, tmpl.ItemCount())
	for _, cat := range tmpl.Categories {
		for _, it := range cat.Items {
			itemIDs[it.ID] = struct{}{}
		}
	}

	for id, raw := range rec.Answers {
		if _, ok := itemIDs[id]; !ok {
			return nil, &InvalidAnswerError{ItemID: id, Score: raw, Reason: "item is not part of the template"}
		}
		if raw < minRawScore || raw > maxRawScore {
			return nil, &InvalidAnswerError{ItemID: id, Score: raw, Reason: fmt.Sprintf("score outside [%.0f,%.0f]", minRawScore, maxRawScore)}
		}
	}

	exclude := rules.Unanswered == schema.ExcludePolicy

	var currentTotal, maxTotal float64
	answered := 0
	categoryScores := make([]schema.CategoryScore, 0, len(tmpl.Categories))

	for _, cat := range tmpl.Categories {
		var catRaw, catMax float64
		for _, it := range cat.Items {
			raw, ok := rec.Answers[it.ID]
			unanswered := !ok || raw == 0
			if unanswered && exclude {
				continue // drops out of numerator and denominator
			}
			catRaw += raw
			catMax += it.Weight
			if !unanswered {
				answered++
			}
		}
		currentTotal += catRaw
		maxTotal += catMax
		categoryScores = append(categoryScores, schema.CategoryScore{
			CategoryID: cat.ID,
			Name:       cat.Name,
			Raw:        catRaw,
			Max:        catMax,
		})
	}

	if maxTotal == 0 {
		return nil, &DegenerateTemplateError{TemplateID: tmpl.ID, Version: tmpl.Version}
	}

	percentage := currentTotal / maxTotal * 100
	totalScore := math.Round(percentage*10) / 10

	evaluatedAt := rec.EvaluatedAt
	if evaluatedAt.IsZero() {
		evaluatedAt = time.Now()
	}

	return &schema.InspectionResult{
		StoreID:         rec.StoreID,
		TemplateID:      tmpl.ID,
		TemplateVersion: tmpl.Version,
		EvaluatedAt:     evaluatedAt,
		TotalScore:      totalScore,
		Grade:           GradeFor(rules.GradeBands, totalScore),
		Passed:          totalScore >= rules.PassThreshold,
		CategoryScores:  categoryScores,
		AnsweredItems:   answered,
		TotalItems:      tmpl.ItemCount(),
	}, nil
}

// TemplateWarnings reports configuration smells that do not block scoring:
// declared category weights that do not sum to 100, and categories with no
// items contributing to the scale. The scorer normalizes against actual
// item weights either way.
func TemplateWarnings(tmpl *schema.Template) []string {
	var warnings []string

	var declared float64
	for _, cat := range tmpl.Categories {
		declared += cat.Weight
		empty := true
		for _, it := range cat.Items {
			if it.Weight > 0 {
				empty = false
				break
			}
		}
		if empty {
			warnings = append(warnings, fmt.Sprintf("category %q contributes no weight to the scale", cat.Name))
		}
	}
	if declared != 100 {
		warnings = append(warnings, fmt.Sprintf("declared category weights sum to %.1f, not 100; scores normalize against actual item weights", declared))
	}
	return warnings
}
