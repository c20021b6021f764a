// Package parquet provides data structures and functions for exporting
// assessment data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/franchops/storesense/schema"
	"github.com/parquet-go/parquet-go"
)

// TrendRow represents one period of a store's score trend.
// This struct maps to the store_score_trends warehouse table.
type TrendRow struct {
	// StoreID identifies the store the series belongs to (empty for chain-wide)
	StoreID string `parquet:"store_id,snappy"`

	// Period is the month key of the point, e.g. "2026-03"
	Period string `parquet:"period,snappy"`

	// Start is the first instant of the period (stored as TIMESTAMP with nanosecond precision)
	Start time.Time `parquet:"start,snappy"`

	// AvgScore is the arithmetic mean of all scores in the period
	AvgScore float64 `parquet:"avg_score,snappy"`

	// Delta is the change against the previous period (0 for the first)
	Delta float64 `parquet:"delta,snappy"`

	// EventCount is the number of scored events averaged into this point
	EventCount int32 `parquet:"event_count,snappy"`
}

// RankRow represents one entry of a store ranking.
// This struct maps to the store_rankings warehouse table.
type RankRow struct {
	// Rank is the 1-based position in the ranking
	Rank int32 `parquet:"rank,snappy"`

	// StoreID identifies the ranked store
	StoreID string `parquet:"store_id,snappy"`

	// StoreName is the display name (nullable)
	StoreName *string `parquet:"store_name,optional,snappy"`

	// Metric is the value the ranking was ordered by
	Metric float64 `parquet:"metric,snappy"`

	// Direction records whether this was a top or bottom ranking
	Direction string `parquet:"direction,snappy"`
}

// WriteTrendPointsParquet writes a slice of TrendRow structs to a Parquet file.
func WriteTrendPointsParquet(data []TrendRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the TrendRow struct tags
	writer := parquet.NewGenericWriter[TrendRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteRankEntriesParquet writes a slice of RankRow structs to a Parquet file.
func WriteRankEntriesParquet(data []RankRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the RankRow struct tags
	writer := parquet.NewGenericWriter[RankRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertTrendPoints converts schema.TrendPoint values to TrendRow for Parquet export.
func ConvertTrendPoints(storeID string, points []schema.TrendPoint) []TrendRow {
	result := make([]TrendRow, len(points))
	for i, p := range points {
		result[i] = TrendRow{
			StoreID:    storeID,
			Period:     p.Period,
			Start:      p.Start,
			AvgScore:   p.AvgScore,
			Delta:      p.Delta,
			EventCount: int32(p.Count),
		}
	}
	return result
}

// ConvertRankEntries converts schema.RankEntry values to RankRow for Parquet export.
func ConvertRankEntries(entries []schema.RankEntry, direction string) []RankRow {
	result := make([]RankRow, len(entries))
	for i, e := range entries {
		row := RankRow{
			Rank:      int32(e.Rank),
			StoreID:   e.StoreID,
			Metric:    e.Metric,
			Direction: direction,
		}
		if e.Name != "" {
			name := e.Name
			row.StoreName = &name
		}
		result[i] = row
	}
	return result
}
