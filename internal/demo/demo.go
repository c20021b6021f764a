// Package demo generates synthetic store populations for trying the CLI
// without real franchise data. Generation is fully seeded: the same seed
// always yields the same stores, signals and identifiers.
package demo

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/franchops/storesense/schema"
	"github.com/google/uuid"
)

// evaluationAnchor is the fixed instant demo data is evaluated at. A real
// clock would make demo runs non-reproducible.
var evaluationAnchor = time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC)

// Generator produces seeded synthetic stores.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator for the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// RiskInputs generates n stores with a plausible mix of healthy, marginal
// and failing signal profiles. Roughly a fifth of the stores miss at least
// one signal class so degraded-input handling shows up in demo output.
func (g *Generator) RiskInputs(n int) []*schema.RiskInput {
	inputs := make([]*schema.RiskInput, 0, n)
	for i := range n {
		input := &schema.RiskInput{
			StoreID:     g.storeID(),
			StoreName:   fmt.Sprintf("Store %03d", i+1),
			EvaluatedAt: evaluationAnchor,
		}

		if g.rng.Float64() > 0.1 {
			input.QSC = g.qscSignal()
		}
		if g.rng.Float64() > 0.1 {
			input.POS = g.posSignal()
		}
		if g.rng.Float64() > 0.05 {
			input.Ops = g.opsSignal()
		}
		inputs = append(inputs, input)
	}
	return inputs
}

// ScoredEvents generates a months-long score series for one store, one to
// three events per month, drifting from a random starting level.
func (g *Generator) ScoredEvents(storeID string, months int) []schema.ScoredEvent {
	var events []schema.ScoredEvent
	score := 60 + g.rng.Float64()*30
	for m := months - 1; m >= 0; m-- {
		monthStart := evaluationAnchor.AddDate(0, -m, 0)
		count := 1 + g.rng.Intn(3)
		for e := range count {
			score += g.rng.Float64()*10 - 5
			if score < 0 {
				score = 0
			}
			if score > 100 {
				score = 100
			}
			events = append(events, schema.ScoredEvent{
				StoreID:    storeID,
				OccurredAt: monthStart.AddDate(0, 0, e*7),
				Score:      score,
			})
		}
	}
	return events
}

// storeID returns a deterministic UUID drawn from the seeded source.
func (g *Generator) storeID() string {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		// The seeded source never fails to read; keep the signature honest.
		return uuid.Nil.String()
	}
	return id.String()
}

func (g *Generator) qscSignal() *schema.QSCSignal {
	score := 50 + g.rng.Float64()*50
	priors := make([]float64, g.rng.Intn(4))
	for i := range priors {
		priors[i] = 50 + g.rng.Float64()*50
	}
	return &schema.QSCSignal{
		Score:       score,
		PriorScores: priors,
		EvaluatedAt: evaluationAnchor.AddDate(0, 0, -g.rng.Intn(14)),
	}
}

func (g *Generator) posSignal() *schema.POSSignal {
	change := g.rng.Float64()*50 - 30 // skewed toward decline
	priors := make([]float64, g.rng.Intn(4))
	for i := range priors {
		priors[i] = g.rng.Float64()*50 - 30
	}
	return &schema.POSSignal{
		WeekOverWeekPct: change,
		PriorChanges:    priors,
	}
}

func (g *Generator) opsSignal() *schema.OpsSignal {
	statuses := []schema.Lifecycle{
		schema.OpenLifecycle,
		schema.OpenLifecycle,
		schema.OpenLifecycle,
		schema.WarningLifecycle,
		schema.SuspendedLifecycle,
	}
	sig := &schema.OpsSignal{
		Status:          statuses[g.rng.Intn(len(statuses))],
		StatusChangedAt: evaluationAnchor.AddDate(0, 0, -g.rng.Intn(60)),
	}
	for i := range g.rng.Intn(3) {
		sig.PendingActions = append(sig.PendingActions, schema.CorrectiveAction{
			ID:          g.storeID(),
			Description: fmt.Sprintf("Corrective action %d", i+1),
			DueDate:     evaluationAnchor.AddDate(0, 0, g.rng.Intn(20)-10),
		})
	}
	return sig
}
