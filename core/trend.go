package core

import (
	"math"
	"sort"
	"time"

	"github.com/franchops/storesense/schema"
)

// periodKey groups scored events by calendar month.
const periodKeyLayout = "2006-01"

// Trend groups a time-ordered score series by month, computes the
// arithmetic mean per period, and reports period-over-period deltas in
// chronological order. With fewer than two periods the delta is 0 by
// policy, never NaN or null. An empty series yields an empty result, not
// an error. months limits the series to the most recent N periods
// (0 = no limit).
func Trend(events []schema.ScoredEvent, months int) schema.TrendResult {
	if len(events) == 0 {
		return schema.TrendResult{Points: []schema.TrendPoint{}}
	}

	type bucket struct {
		start time.Time
		sum   float64
		count int
	}
	buckets := make(map[string]*bucket)
	for _, ev := range events {
		key := ev.OccurredAt.Format(periodKeyLayout)
		b, ok := buckets[key]
		if !ok {
			start := time.Date(ev.OccurredAt.Year(), ev.OccurredAt.Month(), 1, 0, 0, 0, 0, ev.OccurredAt.Location())
			b = &bucket{start: start}
			buckets[key] = b
		}
		b.sum += ev.Score
		b.count++
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys) // chronological: the layout sorts lexically

	if months > 0 && len(keys) > months {
		keys = keys[len(keys)-months:]
	}

	points := make([]schema.TrendPoint, 0, len(keys))
	for i, k := range keys {
		b := buckets[k]
		avg := math.Round(b.sum/float64(b.count)*10) / 10
		delta := 0.0
		if i > 0 {
			delta = math.Round((avg-points[i-1].AvgScore)*10) / 10
		}
		points = append(points, schema.TrendPoint{
			Period:   k,
			Start:    b.start,
			AvgScore: avg,
			Delta:    delta,
			Count:    b.count,
		})
	}

	result := schema.TrendResult{Points: points}
	if len(events) > 0 {
		storeID := events[0].StoreID
		uniform := true
		for _, ev := range events[1:] {
			if ev.StoreID != storeID {
				uniform = false
				break
			}
		}
		if uniform {
			result.StoreID = storeID
		}
	}
	return result
}
