package iocache

import (
	"errors"
	"fmt"
	"io"

	"github.com/placardhq/placard/internal/contract"
	"github.com/placardhq/placard/internal/parquet"
)

// ExecuteHistoryExport exports grading history to two Parquet files named after outputFile.
func ExecuteHistoryExport(w io.Writer, store contract.HistoryStore, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}
	if store == nil {
		return errors.New("history is disabled; set --history-backend to export")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no grading history found to export")
	}

	_, _ = fmt.Fprintf(w, "Exporting data from %s backend...\n", status.Backend)
	_, _ = fmt.Fprintf(w, "Total grading runs: %d\n", status.TotalRuns)
	_, _ = fmt.Fprintf(w, "Total authority scores: %d\n", status.TotalScores)

	runs, err := store.GetAllGradingRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve grading runs: %w", err)
	}
	scores, err := store.GetAllAuthorityScores()
	if err != nil {
		return fmt.Errorf("failed to retrieve authority scores: %w", err)
	}

	runRows := parquet.ConvertGradingRunRecords(runs)
	runsFile := outputFile + ".grading_runs.parquet"
	if err := parquet.WriteGradingRunsParquet(runRows, runsFile); err != nil {
		return fmt.Errorf("failed to write grading runs: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Exported %d grading runs to: %s\n", len(runRows), runsFile)

	scoreRows := parquet.ConvertAuthorityScoreRecords(scores)
	scoresFile := outputFile + ".authority_scores.parquet"
	if err := parquet.WriteAuthorityScoresParquet(scoreRows, scoresFile); err != nil {
		return fmt.Errorf("failed to write authority scores: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Exported %d authority score records to: %s\n", len(scoreRows), scoresFile)

	return nil
}
