// Package core has core logic for scoring, risk assessment, trends and ranking.
package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/franchops/storesense/internal/contract"
	"github.com/franchops/storesense/internal/demo"
	"github.com/franchops/storesense/internal/outwriter"
	"github.com/franchops/storesense/schema"
)

// ExecutorFunc defines the function signature for executing different assessment modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// historyHydrationLimit bounds how many persisted snapshots are attached to
// a risk input that arrives without history of its own.
const historyHydrationLimit = 12

// ExecuteScore scores inspection records against a template and prints results.
// It serves as the main entry point for the 'score' command.
func ExecuteScore(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	results, warnings, err := GetScoreResults(cfg)
	if err != nil {
		return err
	}
	for _, warning := range warnings {
		contract.LogWarn(warning, nil)
	}

	persistInspections(results, mgr)

	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteInspections(results, cfg, duration)
}

// GetScoreResults loads the template and answer sets and scores each record.
// Template warnings are returned alongside so callers decide how to surface them.
func GetScoreResults(cfg *contract.Config) ([]*schema.InspectionResult, []string, error) {
	tmpl, err := contract.LoadTemplate(cfg.TemplateFile)
	if err != nil {
		return nil, nil, err
	}
	records, err := contract.LoadInspectionRecords(cfg.AnswersFile)
	if err != nil {
		return nil, nil, err
	}

	results := make([]*schema.InspectionResult, 0, len(records))
	for i := range records {
		result, err := ScoreInspection(tmpl, &records[i], cfg.Rules)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to score inspection for store %s: %w", records[i].StoreID, err)
		}
		results = append(results, result)
	}
	return results, TemplateWarnings(tmpl), nil
}

// ExecuteRisk assesses the risk of every store in the signals file and prints
// the resulting profiles. It serves as the main entry point for the 'risk' command.
func ExecuteRisk(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	profiles, err := GetRiskResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}

	persistRiskSnapshots(profiles, mgr)

	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteRiskProfiles(profiles, cfg, duration)
}

// GetRiskResults loads risk inputs, hydrates missing score history from the
// snapshot store, and evaluates all stores concurrently.
func GetRiskResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) ([]*schema.RiskProfile, error) {
	inputs, err := contract.LoadRiskInputs(cfg.SignalsFile)
	if err != nil {
		return nil, err
	}
	if cfg.StoreID != "" {
		inputs = filterInputs(inputs, cfg.StoreID)
	}
	if len(inputs) == 0 {
		return nil, errors.New("no stores to assess")
	}

	hydrateHistory(inputs, mgr)

	profiles, err := EvaluateStores(ctx, inputs, cfg.Rules, cfg.Workers)
	if err != nil {
		return profiles, fmt.Errorf("risk evaluation interrupted: %w", err)
	}
	return profiles, nil
}

// ExecuteTrend computes a monthly score trend and prints the series.
// It serves as the main entry point for the 'trend' command.
func ExecuteTrend(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	result, err := GetTrendResults(cfg, mgr)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteTrend(result, cfg, duration)
}

// GetTrendResults loads scored events from the events file, or from the
// snapshot store when no file is given, and aggregates them by month.
func GetTrendResults(cfg *contract.Config, mgr contract.StoreManager) (schema.TrendResult, error) {
	var events []schema.ScoredEvent
	var err error
	if cfg.EventsFile != "" {
		events, err = contract.LoadScoredEvents(cfg.EventsFile)
	} else if store := snapshotStore(mgr); store != nil {
		events, err = store.LoadScoredEvents(cfg.StoreID)
	} else {
		err = errors.New("no events file given and no snapshot store configured")
	}
	if err != nil {
		return schema.TrendResult{}, err
	}

	if cfg.StoreID != "" {
		filtered := events[:0]
		for _, e := range events {
			if e.StoreID == cfg.StoreID {
				filtered = append(filtered, e)
			}
		}
		events = filtered
	}
	return Trend(events, cfg.Months), nil
}

// ExecuteRank ranks stores by metric and prints the top or bottom slice.
// It serves as the main entry point for the 'rank' command.
func ExecuteRank(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	entries, err := GetRankResults(cfg, mgr)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteRankings(entries, cfg, duration)
}

// GetRankResults loads the metric population from the scores file, or the
// latest persisted risk scores when no file is given, and ranks it.
func GetRankResults(cfg *contract.Config, mgr contract.StoreManager) ([]schema.RankEntry, error) {
	var scores []schema.StoreScore
	var err error
	if cfg.ScoresFile != "" {
		scores, err = contract.LoadStoreScores(cfg.ScoresFile)
	} else if store := snapshotStore(mgr); store != nil {
		scores, err = store.LatestRiskScores()
	} else {
		err = errors.New("no scores file given and no snapshot store configured")
	}
	if err != nil {
		return nil, err
	}
	return Rank(scores, cfg.Direction, cfg.ResultLimit), nil
}

// ExecuteCheck assesses all stores and fails when any reach the configured
// level. It serves as the main entry point for the 'check' command: a failed
// check returns an error so CI pipelines exit non-zero.
func ExecuteCheck(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	profiles, err := GetRiskResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}

	result := CheckStores(profiles, cfg.FailLevel)
	if err := outwriter.NewOutWriter().WriteCheck(result, cfg); err != nil {
		return err
	}
	if !result.Passed {
		return fmt.Errorf("%d of %d stores at or above %s", len(result.Violations), result.TotalStores, result.FailLevel)
	}
	return nil
}

// ExecuteRules prints the active rule set, defaults merged with any config
// file overrides. It serves as the main entry point for the 'rules' command.
func ExecuteRules(cfg *contract.Config) error {
	return outwriter.NewOutWriter().WriteRules(cfg.Rules, cfg)
}

// ExecuteDemo generates a seeded synthetic store population, assesses it,
// persists the snapshots and prints the profiles. It serves as the main
// entry point for the 'demo' command.
func ExecuteDemo(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()

	gen := demo.NewGenerator(cfg.DemoSeed)
	inputs := gen.RiskInputs(cfg.DemoStores)
	profiles, err := EvaluateStores(ctx, inputs, cfg.Rules, cfg.Workers)
	if err != nil {
		return fmt.Errorf("risk evaluation interrupted: %w", err)
	}

	persistRiskSnapshots(profiles, mgr)

	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteRiskProfiles(profiles, cfg, duration)
}

// snapshotStore unwraps the manager, tolerating a nil manager or store.
func snapshotStore(mgr contract.StoreManager) contract.SnapshotStore {
	if mgr == nil {
		return nil
	}
	return mgr.GetSnapshotStore()
}

// persistInspections saves scored inspections. Persistence failures degrade
// to warnings; the scores were already computed and will still be printed.
func persistInspections(results []*schema.InspectionResult, mgr contract.StoreManager) {
	store := snapshotStore(mgr)
	if store == nil {
		return
	}
	for _, result := range results {
		if err := store.SaveInspection(result); err != nil {
			contract.LogWarn(fmt.Sprintf("failed to persist inspection for store %s", result.StoreID), err)
		}
	}
}

// persistRiskSnapshots saves one history point per assessed store.
func persistRiskSnapshots(profiles []*schema.RiskProfile, mgr contract.StoreManager) {
	store := snapshotStore(mgr)
	if store == nil {
		return
	}
	for _, p := range profiles {
		snap := schema.RiskSnapshot{
			EvaluatedAt: p.EvaluatedAt,
			Score:       p.TotalRiskScore,
			Level:       p.RiskLevel,
		}
		if err := store.SaveRiskSnapshot(p.StoreID, snap); err != nil {
			contract.LogWarn(fmt.Sprintf("failed to persist risk snapshot for store %s", p.StoreID), err)
		}
	}
}

// hydrateHistory attaches persisted risk history to inputs that carry none.
// Inputs that already ship history keep it untouched.
func hydrateHistory(inputs []*schema.RiskInput, mgr contract.StoreManager) {
	store := snapshotStore(mgr)
	if store == nil {
		return
	}
	for _, in := range inputs {
		if len(in.History) > 0 {
			continue
		}
		history, err := store.LoadRiskHistory(in.StoreID, historyHydrationLimit)
		if err != nil {
			contract.LogWarn(fmt.Sprintf("failed to load risk history for store %s", in.StoreID), err)
			continue
		}
		in.History = history
	}
}

// filterInputs keeps only the inputs for one store.
func filterInputs(inputs []*schema.RiskInput, storeID string) []*schema.RiskInput {
	filtered := inputs[:0]
	for _, in := range inputs {
		if in.StoreID == storeID {
			filtered = append(filtered, in)
		}
	}
	return filtered
}
