package core

import (
	"sort"

	"github.com/franchops/storesense/schema"
)

// Rank sorts stores by the ranking metric and returns the top 'limit'
// entries. Direction is explicit per call, never inferred from the metric:
// TopDirection sorts descending (best first), BottomDirection ascending
// (worst performers first). The sort is stable so equal metrics keep input
// order. If limit exceeds the population, all stores are returned.
func Rank(scores []schema.StoreScore, direction schema.RankDirection, limit int) []schema.RankEntry {
	sorted := make([]schema.StoreScore, len(scores))
	copy(sorted, scores)

	if direction == schema.BottomDirection {
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Metric < sorted[j].Metric
		})
	} else {
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Metric > sorted[j].Metric
		})
	}

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	entries := make([]schema.RankEntry, 0, len(sorted))
	for i, s := range sorted {
		entries = append(entries, schema.RankEntry{
			Rank:    i + 1,
			StoreID: s.StoreID,
			Name:    s.Name,
			Metric:  s.Metric,
		})
	}
	return entries
}
