package contract

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/franchops/storesense/schema"
)

// LoadTemplate reads a QSC template from a JSON file.
func LoadTemplate(path string) (*schema.Template, error) {
	var tmpl schema.Template
	if err := loadJSON(path, &tmpl); err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	if tmpl.ID == "" || len(tmpl.Categories) == 0 {
		return nil, fmt.Errorf("template %s has no identity or categories", path)
	}
	return &tmpl, nil
}

// LoadInspectionRecords reads one or more inspection records from a JSON
// file. Both a single record object and an array of records are accepted.
func LoadInspectionRecords(path string) ([]schema.InspectionRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file: %w", err)
	}

	var records []schema.InspectionRecord
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	var single schema.InspectionRecord
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("answers file %s is neither a record nor a record array: %w", path, err)
	}
	return []schema.InspectionRecord{single}, nil
}

// LoadRiskInputs reads per-store risk signal inputs from a JSON file.
func LoadRiskInputs(path string) ([]*schema.RiskInput, error) {
	var inputs []*schema.RiskInput
	if err := loadJSON(path, &inputs); err != nil {
		return nil, fmt.Errorf("failed to load signals: %w", err)
	}
	return inputs, nil
}

// LoadScoredEvents reads a scored event series from a JSON file.
func LoadScoredEvents(path string) ([]schema.ScoredEvent, error) {
	var events []schema.ScoredEvent
	if err := loadJSON(path, &events); err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	return events, nil
}

// LoadStoreScores reads a ranking metric population from a JSON file.
func LoadStoreScores(path string) ([]schema.StoreScore, error) {
	var scores []schema.StoreScore
	if err := loadJSON(path, &scores); err != nil {
		return nil, fmt.Errorf("failed to load scores: %w", err)
	}
	return scores, nil
}

// loadJSON reads and unmarshals one JSON file into v.
func loadJSON(path string, v any) error {
	if path == "" {
		return fmt.Errorf("no input file given")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
