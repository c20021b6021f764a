package schema

import "time"

// SnapshotStatus holds status information about the snapshot store backend.
type SnapshotStatus struct {
	Backend           string    `json:"backend"`
	Connected         bool      `json:"connected"`
	TotalInspections  int       `json:"totalInspections"`
	TotalRiskEntries  int       `json:"totalRiskEntries"`
	DistinctStores    int       `json:"distinctStores"`
	LastEvaluatedAt   time.Time `json:"lastEvaluatedAt,omitzero"`
	OldestEvaluatedAt time.Time `json:"oldestEvaluatedAt,omitzero"`
}
