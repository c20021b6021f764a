package core

import (
	"context"
	"sync"

	"github.com/franchops/storesense/schema"
)

// EvaluateStores runs risk aggregation for many independent stores in
// parallel. Store evaluations share no mutable state, so this is a plain
// worker pool; results keep input order regardless of completion order.
// Cancellation is the caller's concern: a canceled context stops feeding
// workers and the already-computed prefix is returned alongside ctx.Err().
func EvaluateStores(ctx context.Context, inputs []*schema.RiskInput, rules *schema.RuleSet, workers int) ([]*schema.RiskProfile, error) {
	if workers < 1 {
		workers = 1
	}
	if workers > len(inputs) {
		workers = len(inputs)
	}

	profiles := make([]*schema.RiskProfile, len(inputs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				profiles[idx] = AggregateRisk(inputs[idx], rules)
			}
		}()
	}

	var err error
feed:
	for i := range inputs {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err != nil {
		done := make([]*schema.RiskProfile, 0, len(profiles))
		for _, p := range profiles {
			if p != nil {
				done = append(done, p)
			}
		}
		return done, err
	}
	return profiles, nil
}
