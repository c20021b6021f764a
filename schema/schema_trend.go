package schema

import "time"

// ScoredEvent is one time-stamped score for a store: a scored inspection
// or a risk snapshot, whichever series is being trended.
type ScoredEvent struct {
	StoreID    string    `json:"storeId"`
	OccurredAt time.Time `json:"occurredAt"`
	Score      float64   `json:"score"`
}

// TrendPoint is one period of a trend series: the arithmetic mean of all
// scores in that period plus the delta against the previous period.
// The first point of a series always reports a delta of 0.
type TrendPoint struct {
	Period   string    `json:"period"` // month key, e.g. "2026-03"
	Start    time.Time `json:"start"`
	AvgScore float64   `json:"avgScore"`
	Delta    float64   `json:"delta"`
	Count    int       `json:"count"` // events averaged into this point
}

// TrendResult holds a chronological trend series.
type TrendResult struct {
	StoreID string       `json:"storeId,omitempty"`
	Points  []TrendPoint `json:"points"`
}

// StoreScore is one store's value for a ranking metric (risk score,
// inspection score, revenue, ...).
type StoreScore struct {
	StoreID string  `json:"storeId"`
	Name    string  `json:"name,omitempty"`
	Metric  float64 `json:"metric"`
}

// RankEntry is one row of a top/bottom-N ranking.
type RankEntry struct {
	Rank    int     `json:"rank"`
	StoreID string  `json:"storeId"`
	Name    string  `json:"name,omitempty"`
	Metric  float64 `json:"metric"`
}
