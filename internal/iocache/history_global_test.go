package iocache

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/placardhq/placard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearHistory_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := NewHistoryStore(schema.SQLiteBackend, path)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, ClearHistory(schema.SQLiteBackend, path, ""))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing twice is fine
	assert.NoError(t, ClearHistory(schema.SQLiteBackend, path, ""))
}

func TestClearHistory_Errors(t *testing.T) {
	assert.Error(t, ClearHistory(schema.SQLiteBackend, "", ""))
	assert.Error(t, ClearHistory(schema.DatabaseBackend("oracle"), "", ""))
	assert.NoError(t, ClearHistory(schema.NoneBackend, "", ""))
}

func TestMigrateHistory_SQLiteGlobal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	msg, err := MigrateHistory(schema.SQLiteBackend, path, -1)
	require.NoError(t, err)
	assert.Contains(t, msg, "to version 2")

	msg, err = MigrateHistory(schema.SQLiteBackend, path, -1)
	require.NoError(t, err)
	assert.Contains(t, msg, "No migration needed")

	// The migrated schema is usable by the store
	store, err := NewHistoryStore(schema.SQLiteBackend, path)
	require.NoError(t, err)
	runID, err := store.BeginRun(time.Now(), "location")
	require.NoError(t, err)
	require.NoError(t, store.RecordAuthorityScore(runID, "loc-1", foodScore(), time.Now()))
	require.NoError(t, store.Close())

	msg, err = MigrateHistory(schema.SQLiteBackend, path, 0)
	require.NoError(t, err)
	assert.Contains(t, msg, "rolled back")
}

func TestMigrateHistory_NoneBackendGlobal(t *testing.T) {
	_, err := MigrateHistory(schema.NoneBackend, "", -1)
	assert.Error(t, err)
}

func TestPrintHistoryStatus(t *testing.T) {
	var buf bytes.Buffer
	PrintHistoryStatus(&buf, schema.HistoryStatus{Backend: "none"})
	assert.Equal(t, "History Backend: none\nConnected: false\n", buf.String())

	buf.Reset()
	PrintHistoryStatus(&buf, schema.HistoryStatus{
		Backend:     "sqlite",
		Connected:   true,
		TotalRuns:   1,
		TotalScores: 2,
		LastRunID:   1,
		TableRows: map[string]int64{
			authorityScoresTable: 2,
			gradingRunsTable:     1,
		},
	})
	out := buf.String()
	assert.Contains(t, out, "Total Authority Scores: 2")
	assert.Contains(t, out, "  placard_authority_scores: 2 rows\n  placard_grading_runs: 1 rows\n")
}
