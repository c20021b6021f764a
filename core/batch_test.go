package core

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/franchops/storesense/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batchInputs(n int) []*schema.RiskInput {
	evaluatedAt := time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC)
	inputs := make([]*schema.RiskInput, 0, n)
	for i := range n {
		score := float64(50 + i%50)
		inputs = append(inputs, &schema.RiskInput{
			StoreID:     fmt.Sprintf("store-%03d", i),
			EvaluatedAt: evaluatedAt,
			QSC:         &schema.QSCSignal{Score: score, EvaluatedAt: evaluatedAt},
		})
	}
	return inputs
}

// TestEvaluateStoresOrder verifies results line up with inputs regardless
// of worker count.
func TestEvaluateStoresOrder(t *testing.T) {
	inputs := batchInputs(40)
	rules := schema.DefaultRuleSet()

	for _, workers := range []int{1, 4, 100} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			profiles, err := EvaluateStores(context.Background(), inputs, rules, workers)
			require.NoError(t, err)
			require.Len(t, profiles, len(inputs))
			for i, p := range profiles {
				assert.Equal(t, inputs[i].StoreID, p.StoreID)
			}
		})
	}
}

// TestEvaluateStoresDeterministic verifies parallel evaluation matches
// sequential evaluation store by store.
func TestEvaluateStoresDeterministic(t *testing.T) {
	inputs := batchInputs(25)
	rules := schema.DefaultRuleSet()

	parallel, err := EvaluateStores(context.Background(), inputs, rules, 8)
	require.NoError(t, err)

	for i, in := range inputs {
		assert.Equal(t, AggregateRisk(in, rules), parallel[i])
	}
}

// TestEvaluateStoresCancellation verifies a canceled context stops the
// batch and surfaces the context error with partial results.
func TestEvaluateStoresCancellation(t *testing.T) {
	inputs := batchInputs(200)
	rules := schema.DefaultRuleSet()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	profiles, err := EvaluateStores(ctx, inputs, rules, 4)
	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, len(profiles), len(inputs))
}

// TestEvaluateStoresEmpty verifies an empty batch is a no-op.
func TestEvaluateStoresEmpty(t *testing.T) {
	profiles, err := EvaluateStores(context.Background(), nil, schema.DefaultRuleSet(), 4)
	require.NoError(t, err)
	assert.Empty(t, profiles)
}
