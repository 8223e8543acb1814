package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/placardhq/placard/internal/contract"
	"github.com/placardhq/placard/schema"
)

// WriteComparisonResults writes ranked comparison rows in the configured format.
func WriteComparisonResults(w io.Writer, rows []schema.ComparisonRow, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeJSON(w, rows)
	case schema.CSVOut:
		return writeComparisonCSV(w, rows, cfg)
	default:
		return writeComparisonTable(w, rows, cfg, duration)
	}
}

func writeComparisonCSV(w io.Writer, rows []schema.ComparisonRow, cfg *contract.Config) error {
	fmtFloat := createFormatters(cfg.Precision)
	header := []string{
		"rank",
		"jurisdiction_id",
		"county",
		"pillar",
		"grading_type",
		"score",
		"grade",
		"pass_fail",
		"display",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range rows {
			rec := []string{
				strconv.Itoa(r.Rank),
				r.JurisdictionID,
				r.County,
				string(r.Pillar),
				string(r.GradingType),
				fmtFloat(r.Score),
				r.Result.Grade,
				string(r.Result.PassFail),
				r.Result.Display,
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV record for %s: %w", r.JurisdictionID, err)
			}
		}
		return nil
	})
}

func writeComparisonTable(w io.Writer, rows []schema.ComparisonRow, cfg *contract.Config, duration time.Duration) error {
	maxDisplay := getMaxTableTextWidth(cfg, 70)
	headers := []string{"Rank", "Jurisdiction", "County", "Pillar", "Type", "Grade", "Verdict", "Display"}

	var passes, warnings, fails int
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		switch r.Result.PassFail {
		case schema.Pass:
			passes++
		case schema.Warning:
			warnings++
		default:
			fails++
		}
		data = append(data, []string{
			strconv.Itoa(r.Rank),
			r.JurisdictionID,
			contract.TruncateText(r.County, 20),
			string(r.Pillar),
			string(r.GradingType),
			r.Result.Grade,
			verdictLabel(cfg, r.Result.PassFail),
			contract.TruncateText(r.Result.Display, maxDisplay),
		})
	}

	table := tablewriter.NewWriter(w)
	table.Header(headers)
	table.Configure(func(config *tablewriter.Config) {
		config.Row.Alignment.Global = tw.AlignLeft
	})
	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("failed to write table data: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	score := "n/a"
	if len(rows) > 0 {
		score = createFormatters(cfg.Precision)(rows[0].Score)
	}
	_, _ = fmt.Fprintf(w, "Score %s across %d jurisdictions: %d pass, %d warning, %d fail. Compared in %v\n",
		score, len(rows), passes, warnings, fails, duration)
	return nil
}
