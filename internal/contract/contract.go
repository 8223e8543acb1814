// Package contract provides interfaces and shared utilities for placard's internal architecture.
package contract

import (
	"time"

	"github.com/placardhq/placard/schema"
)

// ScoreSource supplies the latest normalized score known for each authority of a location.
// This allows the engine to be tested without a fixture file or a live inspection feed.
type ScoreSource interface {
	// Scores returns the pillar scores for a location. Unknown locations yield the zero value.
	Scores(locationID string) schema.PillarScores
}

// HistoryManager defines the interface for managing the grading history store.
// This allows the persistence layer to be mocked for testing.
type HistoryManager interface {
	GetHistoryStore() HistoryStore
}

// HistoryStore defines the interface for tracking grading runs and the authority scores they produced.
type HistoryStore interface {
	// BeginRun creates a new grading run and returns its unique ID
	BeginRun(startTime time.Time, command string) (int64, error)

	// EndRun updates the grading run with completion data
	EndRun(runID int64, endTime time.Time, totalLocations int) error

	// RecordAuthorityScore stores one authority's score for a location. Pillars are
	// always stored as separate rows.
	RecordAuthorityScore(runID int64, locationID string, score schema.AuthorityScore, computedAt time.Time) error

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// GetAllGradingRuns returns every recorded run, oldest first
	GetAllGradingRuns() ([]schema.GradingRunRecord, error)

	// GetAllAuthorityScores returns every recorded authority score row
	GetAllAuthorityScores() ([]schema.AuthorityScoreRecord, error)

	// Close closes the underlying connection
	Close() error
}
