package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/placardhq/placard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradingRunStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	s := parquet.SchemaOf(new(GradingRun))
	require.NotNil(t, s)

	for _, colName := range []string{"run_id", "command", "started_at", "ended_at", "run_duration_ms", "total_locations"} {
		col, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestAuthorityScoreStructTags(t *testing.T) {
	s := parquet.SchemaOf(new(AuthorityScore))
	require.NotNil(t, s)

	expectedColumns := []string{
		"run_id", "location_id", "pillar", "is_overlay", "jurisdiction_id", "grading_type",
		"grade", "pass_fail", "status", "numeric_score", "computed_at",
	}
	for _, colName := range expectedColumns {
		_, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
	}
	assert.Len(t, s.Fields(), len(expectedColumns), "no extra columns, in particular no combined score")
}

func sampleRecords(now time.Time) []schema.AuthorityScoreRecord {
	gradeB, verdict := "B", schema.Fail
	return []schema.AuthorityScoreRecord{
		{
			RunID: 1, LocationID: "loc-1", Pillar: schema.FoodSafety, JurisdictionID: "riverside",
			GradingType: schema.LetterGradeStrict, Grade: &gradeB, PassFail: verdict,
			Status: schema.FailingStatus, NumericScore: schema.Float(88), ComputedAt: now,
		},
		{
			RunID: 1, LocationID: "loc-1", Pillar: schema.FireSafety, JurisdictionID: "sacramento_fire",
			GradingType: schema.PassReinspect, Status: schema.UnknownStatus, ComputedAt: now,
		},
	}
}

func TestWriteAuthorityScoresParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "authority_scores.parquet")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	data := ConvertAuthorityScoreRecords(sampleRecords(now))

	require.NoError(t, WriteAuthorityScoresParquet(data, outputPath))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[AuthorityScore](file)
	defer func() { _ = reader.Close() }()

	readData := make([]AuthorityScore, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	require.Equal(t, len(data), n)

	assert.Equal(t, "loc-1", readData[0].LocationID)
	assert.Equal(t, "food_safety", readData[0].Pillar)
	require.NotNil(t, readData[0].Grade)
	assert.Equal(t, "B", *readData[0].Grade)
	require.NotNil(t, readData[0].NumericScore)
	assert.InDelta(t, 88.0, *readData[0].NumericScore, 1e-9)
	assert.WithinDuration(t, now, readData[0].ComputedAt, time.Nanosecond)

	// Ungraded authority keeps its nulls
	assert.Nil(t, readData[1].Grade)
	assert.Nil(t, readData[1].PassFail)
	assert.Nil(t, readData[1].NumericScore)
	assert.Equal(t, "unknown", readData[1].Status)
}

func TestWriteGradingRunsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "grading_runs.parquet")
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(1500 * time.Millisecond)

	data := ConvertGradingRunRecords([]schema.GradingRunRecord{
		{RunID: 1, Command: "location", StartedAt: start, EndedAt: &end, TotalLocations: 4},
		{RunID: 2, Command: "location", StartedAt: end},
	})
	require.NotNil(t, data[0].RunDurationMs)
	assert.Equal(t, int32(1500), *data[0].RunDurationMs)
	assert.Nil(t, data[1].RunDurationMs)

	require.NoError(t, WriteGradingRunsParquet(data, outputPath))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[GradingRun](file)
	defer func() { _ = reader.Close() }()
	assert.Equal(t, int64(2), reader.NumRows())
}

func TestWriteParquet_EmptyData(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.parquet")
	require.NoError(t, WriteAuthorityScoresParquet([]AuthorityScore{}, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should contain schema even if empty")
}

func TestWriteParquet_InvalidPath(t *testing.T) {
	err := WriteGradingRunsParquet(nil, "/nonexistent/directory/output.parquet")
	require.Error(t, err, "Writing to invalid path should produce error")
}

func TestConvertLocationScores(t *testing.T) {
	grade := "A"
	overlay := schema.AuthorityScore{Pillar: schema.FoodSafety, JurisdictionID: "nps_food", Status: schema.PassingStatus, Federal: true}
	ls := schema.LocationScore{
		LocationID: "loc-2",
		FoodSafety: schema.FoodSafetyScore{AuthorityScore: schema.AuthorityScore{Pillar: schema.FoodSafety, Grade: &grade, PassFail: schema.Pass, Status: schema.PassingStatus}},
		FireSafety: schema.FireSafetyScore{AuthorityScore: schema.AuthorityScore{Pillar: schema.FireSafety, Status: schema.UnknownStatus}},
		Overlays:   schema.OverlayScores{FoodSafety: &overlay},
	}

	rows := ConvertLocationScores([]schema.LocationScore{ls}, time.Now())
	require.Len(t, rows, 3)
	assert.Equal(t, "food_safety", rows[0].Pillar)
	assert.Equal(t, "fire_safety", rows[1].Pillar)
	assert.True(t, rows[2].IsOverlay)
	for _, r := range rows {
		assert.Equal(t, "loc-2", r.LocationID)
		assert.Zero(t, r.RunID)
	}
}
