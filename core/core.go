// Package core has the jurisdiction catalog, the location directory and the
// engine that grades authority scores. The grading algorithms live in core/algo.
package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/placardhq/placard/core/algo"
	"github.com/placardhq/placard/internal/contract"
	"github.com/placardhq/placard/internal/outwriter"
	"github.com/placardhq/placard/schema"
)

// Command names recorded in the grading history.
const (
	locationCommand = "location"
)

// ErrNoLocations is returned when a location run has nothing to grade.
var ErrNoLocations = errors.New("no locations to grade")

// ExecutorFunc defines the function signature for executing the grading commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, engine *Engine, mgr contract.HistoryManager) error

// ExecuteGrade grades one score against one jurisdiction and prints the outcome.
// It serves as the main entry point for the 'grade' command.
func ExecuteGrade(_ context.Context, cfg *contract.Config, engine *Engine, _ contract.HistoryManager) error {
	if !cfg.ScoreSet {
		return errors.New("--score is required")
	}
	start := time.Now()
	outcome := engine.GradeScore(cfg.Score, cfg.JurisdictionID)
	duration := time.Since(start)
	return outwriter.PrintGradeOutcome(outcome, cfg, duration)
}

// ExecuteCompare grades one score against every jurisdiction and prints the
// outcomes with failing jurisdictions first.
func ExecuteCompare(_ context.Context, cfg *contract.Config, engine *Engine, _ contract.HistoryManager) error {
	if !cfg.ScoreSet {
		return errors.New("--score is required")
	}
	start := time.Now()
	rows := engine.Compare(cfg.Score, cfg.Pillar)
	if len(rows) == 0 {
		return fmt.Errorf("no jurisdictions regulate pillar %s", cfg.Pillar)
	}
	ranked := algo.RankComparison(rows, cfg.ResultLimit)
	duration := time.Since(start)
	return outwriter.PrintComparisonResults(ranked, cfg, duration)
}

// ExecuteJurisdictions prints every catalog entry with its grading rule.
func ExecuteJurisdictions(_ context.Context, cfg *contract.Config, engine *Engine, _ contract.HistoryManager) error {
	start := time.Now()
	summaries := engine.Summaries()
	if cfg.Pillar != "" {
		filtered := summaries[:0]
		for _, s := range summaries {
			if s.Pillar == cfg.Pillar {
				filtered = append(filtered, s)
			}
		}
		summaries = filtered
	}
	duration := time.Since(start)
	return outwriter.PrintJurisdictions(summaries, cfg, duration)
}

// ExecuteLocation grades every authority of the selected locations, records
// the scores in the history store when one is configured, and prints them.
// Locations without an assigned jurisdiction are reported and skipped.
func ExecuteLocation(ctx context.Context, cfg *contract.Config, engine *Engine, mgr contract.HistoryManager) error {
	start := time.Now()

	ids := cfg.LocationIDs
	if len(ids) == 0 {
		ids = engine.LocationIDs()
	}
	if len(ids) == 0 {
		return ErrNoLocations
	}

	results := ScoreLocations(ctx, engine, mgr, ids)
	duration := time.Since(start)
	return outwriter.PrintLocationScores(results, cfg, duration)
}

// ScoreLocations grades each location in order and records every authority row
// under one history run when mgr has a store. Unassigned locations are skipped;
// no run is opened when none of the ids is assigned.
func ScoreLocations(ctx context.Context, engine *Engine, mgr contract.HistoryManager, ids []string) []schema.LocationScore {
	results := make([]schema.LocationScore, 0, len(ids))
	for _, id := range ids {
		ls := engine.ScoreLocation(id)
		if ls == nil {
			contract.LogWarn(fmt.Sprintf("Skipping location %s", id), errors.New("jurisdiction not yet assigned"))
			continue
		}
		results = append(results, *ls)
	}

	if len(results) > 0 && mgr != nil {
		recordRun(ctx, mgr.GetHistoryStore(), results)
	}
	return results
}

// recordRun wraps the rows of results in one history run.
func recordRun(ctx context.Context, store contract.HistoryStore, results []schema.LocationScore) {
	if store == nil {
		return
	}
	runID, err := store.BeginRun(time.Now(), locationCommand)
	if err != nil {
		contract.LogWarn("History tracking initialization failed", err)
		return
	}
	if runID <= 0 {
		return
	}

	ctx = withRunID(ctx, runID)
	for _, ls := range results {
		recordLocation(ctx, store, ls)
	}
	if err := store.EndRun(runID, time.Now(), len(results)); err != nil {
		contract.LogWarn("Failed to finalize history tracking", err)
	}
}

// recordLocation stores one history row per authority of the location.
func recordLocation(ctx context.Context, store contract.HistoryStore, ls schema.LocationScore) {
	runID := runIDFromContext(ctx)
	if store == nil || runID == 0 {
		return
	}
	now := time.Now()
	for _, s := range ls.Authorities() {
		if err := store.RecordAuthorityScore(runID, ls.LocationID, s, now); err != nil {
			contract.LogWarn(fmt.Sprintf("History tracking failed for %s %s", ls.LocationID, s.Pillar), err)
		}
	}
}
