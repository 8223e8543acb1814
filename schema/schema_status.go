package schema

import "time"

// HistoryStatus represents the status of the grading history store.
type HistoryStatus struct {
	Backend       string           `json:"backend"`
	Connected     bool             `json:"connected"`
	TotalRuns     int              `json:"total_runs"`
	TotalScores   int              `json:"total_scores"`
	LastRunID     int64            `json:"last_run_id"`
	LastRunTime   time.Time        `json:"last_run_time"`
	OldestRunTime time.Time        `json:"oldest_run_time"`
	TableRows     map[string]int64 `json:"table_rows"`
}

// GradingRunRecord represents a row from the placard_grading_runs table.
type GradingRunRecord struct {
	RunID          int64
	Command        string
	StartedAt      time.Time
	EndedAt        *time.Time
	TotalLocations int32
}

// AuthorityScoreRecord represents a row from the placard_authority_scores table.
// Each row holds exactly one authority; pillars are never merged into one row.
type AuthorityScoreRecord struct {
	RunID          int64
	LocationID     string
	Pillar         Pillar
	Overlay        bool
	JurisdictionID string
	GradingType    GradingType
	Grade          *string
	PassFail       PassFail
	Status         Status
	NumericScore   *float64
	ComputedAt     time.Time
}

// RecordFromScore flattens one authority score into a history row.
func RecordFromScore(runID int64, locationID string, s AuthorityScore, at time.Time) AuthorityScoreRecord {
	return AuthorityScoreRecord{
		RunID:          runID,
		LocationID:     locationID,
		Pillar:         s.Pillar,
		Overlay:        s.Federal,
		JurisdictionID: s.JurisdictionID,
		GradingType:    s.GradingType,
		Grade:          s.Grade,
		PassFail:       s.PassFail,
		Status:         s.Status,
		NumericScore:   s.NumericScore,
		ComputedAt:     at,
	}
}
