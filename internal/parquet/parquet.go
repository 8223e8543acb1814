// Package parquet provides data structures and functions for exporting placard
// grading history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/placardhq/placard/schema"
)

// GradingRun represents a single placard grading run.
// This struct maps to the placard_grading_runs database table.
type GradingRun struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// Command is the CLI command that produced the run
	Command string `parquet:"command,snappy"`

	// StartedAt is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartedAt time.Time `parquet:"started_at,snappy"`

	// EndedAt is when the run completed (nullable)
	EndedAt *time.Time `parquet:"ended_at,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalLocations is the number of locations graded in this run
	TotalLocations int32 `parquet:"total_locations,snappy"`
}

// AuthorityScore is one authority's graded result for one location.
// This struct maps to the placard_authority_scores database table; there is
// deliberately no column combining the two pillars.
type AuthorityScore struct {
	RunID          int64    `parquet:"run_id,snappy"`
	LocationID     string   `parquet:"location_id,snappy"`
	Pillar         string   `parquet:"pillar,snappy"`
	IsOverlay      bool     `parquet:"is_overlay,snappy"`
	JurisdictionID string   `parquet:"jurisdiction_id,snappy"`
	GradingType    string   `parquet:"grading_type,snappy"`
	Grade          *string  `parquet:"grade,optional,snappy"`
	PassFail       *string  `parquet:"pass_fail,optional,snappy"`
	Status         string   `parquet:"status,snappy"`
	NumericScore   *float64 `parquet:"numeric_score,optional,snappy"`

	// ComputedAt is when the score was produced (stored as TIMESTAMP with nanosecond precision)
	ComputedAt time.Time `parquet:"computed_at,snappy"`
}

// writeRows writes rows of any struct type to a new Parquet file at outputPath.
// The schema is derived from the struct tags of T.
func writeRows[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteGradingRunsParquet writes a slice of GradingRun structs to a Parquet file.
func WriteGradingRunsParquet(data []GradingRun, outputPath string) error {
	return writeRows(data, outputPath)
}

// WriteAuthorityScoresParquet writes a slice of AuthorityScore structs to a Parquet file.
func WriteAuthorityScoresParquet(data []AuthorityScore, outputPath string) error {
	return writeRows(data, outputPath)
}

// ConvertGradingRunRecords converts schema.GradingRunRecord to GradingRun for Parquet export.
func ConvertGradingRunRecords(records []schema.GradingRunRecord) []GradingRun {
	result := make([]GradingRun, len(records))
	for i, record := range records {
		run := GradingRun{
			RunID:          record.RunID,
			Command:        record.Command,
			StartedAt:      record.StartedAt,
			EndedAt:        record.EndedAt,
			TotalLocations: record.TotalLocations,
		}
		if record.EndedAt != nil {
			ms := int32(record.EndedAt.Sub(record.StartedAt).Milliseconds())
			run.RunDurationMs = &ms
		}
		result[i] = run
	}
	return result
}

// ConvertAuthorityScoreRecords converts schema.AuthorityScoreRecord to AuthorityScore for Parquet export.
func ConvertAuthorityScoreRecords(records []schema.AuthorityScoreRecord) []AuthorityScore {
	result := make([]AuthorityScore, len(records))
	for i, record := range records {
		var passFail *string
		if record.PassFail != "" {
			pf := string(record.PassFail)
			passFail = &pf
		}
		result[i] = AuthorityScore{
			RunID:          record.RunID,
			LocationID:     record.LocationID,
			Pillar:         string(record.Pillar),
			IsOverlay:      record.Overlay,
			JurisdictionID: record.JurisdictionID,
			GradingType:    string(record.GradingType),
			Grade:          record.Grade,
			PassFail:       passFail,
			Status:         string(record.Status),
			NumericScore:   record.NumericScore,
			ComputedAt:     record.ComputedAt,
		}
	}
	return result
}

// ConvertLocationScores flattens location bundles into one row per authority,
// outside of any recorded run.
func ConvertLocationScores(scores []schema.LocationScore, computedAt time.Time) []AuthorityScore {
	var records []schema.AuthorityScoreRecord
	for _, ls := range scores {
		for _, s := range ls.Authorities() {
			records = append(records, schema.RecordFromScore(0, ls.LocationID, s, computedAt))
		}
	}
	return ConvertAuthorityScoreRecords(records)
}
