// Package outwriter has output and writer logic.
package outwriter

import (
	"errors"
	"io"
	"time"

	"github.com/placardhq/placard/internal/contract"
	"github.com/placardhq/placard/internal/parquet"
	"github.com/placardhq/placard/schema"
)

// ErrParquetUnsupported is returned when parquet output is requested for a view
// that has no per-authority rows.
var ErrParquetUnsupported = errors.New("parquet output is only supported for location scores")

// PrintGradeOutcome writes a single grade outcome to stdout or the configured output file.
func PrintGradeOutcome(outcome schema.GradeOutcome, cfg *contract.Config, duration time.Duration) error {
	if cfg.Output == schema.ParquetOut {
		return ErrParquetUnsupported
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteGradeOutcome(w, outcome, cfg, duration)
	}, successMessage(cfg.Output))
}

// PrintComparisonResults writes cross-jurisdiction comparison rows.
func PrintComparisonResults(rows []schema.ComparisonRow, cfg *contract.Config, duration time.Duration) error {
	if cfg.Output == schema.ParquetOut {
		return ErrParquetUnsupported
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteComparisonResults(w, rows, cfg, duration)
	}, successMessage(cfg.Output))
}

// PrintJurisdictions writes the catalog summaries.
func PrintJurisdictions(summaries []schema.JurisdictionSummary, cfg *contract.Config, duration time.Duration) error {
	if cfg.Output == schema.ParquetOut {
		return ErrParquetUnsupported
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteJurisdictions(w, summaries, cfg, duration)
	}, successMessage(cfg.Output))
}

// PrintLocationScores writes location bundles, one row per authority.
// Parquet output goes straight to the configured output file.
func PrintLocationScores(scores []schema.LocationScore, cfg *contract.Config, duration time.Duration) error {
	if cfg.Output == schema.ParquetOut {
		rows := parquet.ConvertLocationScores(scores, time.Now())
		if err := parquet.WriteAuthorityScoresParquet(rows, cfg.OutputFile); err != nil {
			return err
		}
		logSuccess("Wrote Parquet", cfg.OutputFile)
		return nil
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteLocationScores(w, scores, cfg, duration)
	}, successMessage(cfg.Output))
}

func successMessage(mode schema.OutputMode) string {
	switch mode {
	case schema.JSONOut:
		return "Wrote JSON"
	case schema.CSVOut:
		return "Wrote CSV"
	default:
		return "Wrote table"
	}
}
