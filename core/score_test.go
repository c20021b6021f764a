package core

import (
	"fmt"
	"testing"
	"time"

	"github.com/franchops/storesense/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testTemplate builds a three-category template with six items each,
// every item worth five points.
func testTemplate() *schema.Template {
	categories := []schema.Category{
		{ID: "cat-q", Name: "Quality", Weight: 40},
		{ID: "cat-s", Name: "Service", Weight: 30},
		{ID: "cat-h", Name: "Hygiene", Weight: 30},
	}
	for ci := range categories {
		for i := range 6 {
			categories[ci].Items = append(categories[ci].Items, schema.ChecklistItem{
				ID:       fmt.Sprintf("%s-item-%d", categories[ci].ID, i+1),
				Prompt:   "Check item",
				Weight:   5,
				Required: true,
			})
		}
	}
	return &schema.Template{
		ID:         "tmpl-qsc",
		Version:    "QSC-0007",
		Name:       "Standard QSC",
		Categories: categories,
	}
}

// answersForTemplate fills every item of the template with the same raw score.
func answersForTemplate(tmpl *schema.Template, raw float64) schema.AnswerSet {
	answers := schema.AnswerSet{}
	for _, cat := range tmpl.Categories {
		for _, it := range cat.Items {
			answers[it.ID] = raw
		}
	}
	return answers
}

// TestScoreInspectionPerfect verifies a perfect inspection normalizes to 100.
func TestScoreInspectionPerfect(t *testing.T) {
	tmpl := testTemplate()
	rules := schema.DefaultRuleSet()
	rec := &schema.InspectionRecord{
		StoreID:     "store-1",
		EvaluatedAt: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		Answers:     answersForTemplate(tmpl, 5),
	}

	result, err := ScoreInspection(tmpl, rec, rules)
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.TotalScore)
	assert.Equal(t, schema.GradeS, result.Grade)
	assert.True(t, result.Passed)
	assert.Equal(t, 18, result.AnsweredItems)
	assert.Equal(t, 18, result.TotalItems)
	assert.Len(t, result.CategoryScores, 3)
	assert.Equal(t, rec.EvaluatedAt, result.EvaluatedAt)
	assert.Equal(t, tmpl.Version, result.TemplateVersion)
}

// TestScoreInspectionBands walks a uniform answer level through the grade bands.
func TestScoreInspectionBands(t *testing.T) {
	tests := []struct {
		name     string
		raw      float64
		expected float64
		grade    schema.Grade
		passed   bool
	}{
		{name: "all fives", raw: 5, expected: 100.0, grade: schema.GradeS, passed: true},
		{name: "all fours", raw: 4, expected: 80.0, grade: schema.GradeB, passed: true},
		{name: "all threes", raw: 3, expected: 60.0, grade: schema.GradeD, passed: false},
		{name: "all ones", raw: 1, expected: 20.0, grade: schema.GradeD, passed: false},
	}

	tmpl := testTemplate()
	rules := schema.DefaultRuleSet()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &schema.InspectionRecord{
				StoreID:     "store-1",
				EvaluatedAt: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
				Answers:     answersForTemplate(tmpl, tt.raw),
			}
			result, err := ScoreInspection(tmpl, rec, rules)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.TotalScore)
			assert.Equal(t, tt.grade, result.Grade)
			assert.Equal(t, tt.passed, result.Passed)
		})
	}
}

// TestScoreInspectionNormalization verifies the denominator is the actual
// summed item weights, not an assumed 100-point scale.
func TestScoreInspectionNormalization(t *testing.T) {
	tmpl := &schema.Template{
		ID:      "tmpl-short",
		Version: "QSC-0001",
		Categories: []schema.Category{
			{ID: "c1", Name: "Quality", Weight: 60, Items: []schema.ChecklistItem{
				{ID: "i1", Weight: 5},
				{ID: "i2", Weight: 5},
			}},
			{ID: "c2", Name: "Service", Weight: 40, Items: []schema.ChecklistItem{
				{ID: "i3", Weight: 3},
			}},
		},
	}
	rec := &schema.InspectionRecord{
		StoreID:     "store-1",
		EvaluatedAt: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		Answers:     schema.AnswerSet{"i1": 5, "i2": 3, "i3": 2},
	}

	result, err := ScoreInspection(tmpl, rec, schema.DefaultRuleSet())
	require.NoError(t, err)

	// 10 of 13 points, rounded to one decimal.
	assert.Equal(t, 76.9, result.TotalScore)
	assert.Equal(t, schema.GradeC, result.Grade)
	assert.False(t, result.Passed)

	require.Len(t, result.CategoryScores, 2)
	assert.Equal(t, 8.0, result.CategoryScores[0].Raw)
	assert.Equal(t, 10.0, result.CategoryScores[0].Max)
	assert.Equal(t, 2.0, result.CategoryScores[1].Raw)
	assert.Equal(t, 3.0, result.CategoryScores[1].Max)
}

// TestScoreInspectionUnansweredPolicies verifies strict vs exclude handling.
func TestScoreInspectionUnansweredPolicies(t *testing.T) {
	tmpl := &schema.Template{
		ID:      "tmpl-two",
		Version: "QSC-0002",
		Categories: []schema.Category{
			{ID: "c1", Name: "Quality", Items: []schema.ChecklistItem{
				{ID: "i1", Weight: 5},
				{ID: "i2", Weight: 5},
			}},
		},
	}
	rec := &schema.InspectionRecord{
		StoreID:     "store-1",
		EvaluatedAt: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		Answers:     schema.AnswerSet{"i1": 4},
	}

	t.Run("strict keeps the denominator", func(t *testing.T) {
		rules := schema.DefaultRuleSet()
		result, err := ScoreInspection(tmpl, rec, rules)
		require.NoError(t, err)
		assert.Equal(t, 40.0, result.TotalScore)
		assert.Equal(t, 1, result.AnsweredItems)
	})

	t.Run("exclude drops unanswered items entirely", func(t *testing.T) {
		rules := schema.DefaultRuleSet()
		rules.Unanswered = schema.ExcludePolicy
		result, err := ScoreInspection(tmpl, rec, rules)
		require.NoError(t, err)
		assert.Equal(t, 80.0, result.TotalScore)
		assert.Equal(t, 1, result.AnsweredItems)
	})

	t.Run("explicit zero counts as unanswered", func(t *testing.T) {
		rules := schema.DefaultRuleSet()
		rules.Unanswered = schema.ExcludePolicy
		zeroed := &schema.InspectionRecord{
			StoreID:     "store-1",
			EvaluatedAt: rec.EvaluatedAt,
			Answers:     schema.AnswerSet{"i1": 4, "i2": 0},
		}
		result, err := ScoreInspection(tmpl, zeroed, rules)
		require.NoError(t, err)
		assert.Equal(t, 80.0, result.TotalScore)
		assert.Equal(t, 1, result.AnsweredItems)
	})
}

// TestScoreInspectionErrors verifies typed errors for invalid inputs.
func TestScoreInspectionErrors(t *testing.T) {
	tmpl := testTemplate()
	rules := schema.DefaultRuleSet()
	evaluatedAt := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("unknown item", func(t *testing.T) {
		rec := &schema.InspectionRecord{
			StoreID:     "store-1",
			EvaluatedAt: evaluatedAt,
			Answers:     schema.AnswerSet{"not-in-template": 3},
		}
		_, err := ScoreInspection(tmpl, rec, rules)
		var invalidErr *InvalidAnswerError
		require.ErrorAs(t, err, &invalidErr)
		assert.Equal(t, "not-in-template", invalidErr.ItemID)
	})

	t.Run("score out of range", func(t *testing.T) {
		answers := answersForTemplate(tmpl, 5)
		for id := range answers {
			answers[id] = 6
			break
		}
		rec := &schema.InspectionRecord{
			StoreID:     "store-1",
			EvaluatedAt: evaluatedAt,
			Answers:     answers,
		}
		_, err := ScoreInspection(tmpl, rec, rules)
		var invalidErr *InvalidAnswerError
		require.ErrorAs(t, err, &invalidErr)
		assert.Equal(t, 6.0, invalidErr.Score)
	})

	t.Run("zero-weight template", func(t *testing.T) {
		degenerate := &schema.Template{
			ID:      "tmpl-degenerate",
			Version: "QSC-0003",
			Categories: []schema.Category{
				{ID: "c1", Name: "Quality", Items: []schema.ChecklistItem{{ID: "i1", Weight: 0}}},
			},
		}
		rec := &schema.InspectionRecord{
			StoreID:     "store-1",
			EvaluatedAt: evaluatedAt,
			Answers:     schema.AnswerSet{},
		}
		_, err := ScoreInspection(degenerate, rec, rules)
		var degenerateErr *DegenerateTemplateError
		require.ErrorAs(t, err, &degenerateErr)
		assert.Equal(t, "tmpl-degenerate", degenerateErr.TemplateID)
	})
}

// TestTemplateWarnings verifies configuration smells are reported without blocking.
func TestTemplateWarnings(t *testing.T) {
	t.Run("well-formed template is quiet", func(t *testing.T) {
		assert.Empty(t, TemplateWarnings(testTemplate()))
	})

	t.Run("weights off 100 and empty category", func(t *testing.T) {
		tmpl := &schema.Template{
			ID:      "tmpl-odd",
			Version: "QSC-0004",
			Categories: []schema.Category{
				{ID: "c1", Name: "Quality", Weight: 50, Items: []schema.ChecklistItem{{ID: "i1", Weight: 5}}},
				{ID: "c2", Name: "Empty", Weight: 30},
			},
		}
		warnings := TemplateWarnings(tmpl)
		assert.Len(t, warnings, 2)
	})
}
