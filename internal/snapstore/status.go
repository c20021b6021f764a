package snapstore

import (
	"fmt"

	"github.com/franchops/storesense/schema"
)

// PrintSnapshotStatus prints snapshot store status information.
func PrintSnapshotStatus(status schema.SnapshotStatus) {
	fmt.Printf("Snapshot Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Inspections: %d\n", status.TotalInspections)
	fmt.Printf("Total Risk Entries: %d\n", status.TotalRiskEntries)
	fmt.Printf("Distinct Stores: %d\n", status.DistinctStores)
	if !status.LastEvaluatedAt.IsZero() {
		fmt.Printf("Last Evaluation: %s\n", status.LastEvaluatedAt.Format("2006-01-02 15:04:05"))
	}
	if !status.OldestEvaluatedAt.IsZero() {
		fmt.Printf("Oldest Evaluation: %s\n", status.OldestEvaluatedAt.Format("2006-01-02 15:04:05"))
	}
}
