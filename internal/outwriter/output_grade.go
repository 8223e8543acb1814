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

// WriteGradeOutcome writes a grade outcome in the configured format.
func WriteGradeOutcome(w io.Writer, outcome schema.GradeOutcome, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeJSON(w, outcome)
	case schema.CSVOut:
		return writeGradeCSV(w, outcome, cfg)
	default:
		return writeGradeTable(w, outcome, cfg, duration)
	}
}

func writeGradeCSV(w io.Writer, outcome schema.GradeOutcome, cfg *contract.Config) error {
	fmtFloat := createFormatters(cfg.Precision)
	header := []string{
		"requested_jurisdiction_id",
		"jurisdiction_id",
		"fell_back",
		"score",
		"grade",
		"pass_fail",
		"display",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		return cw.Write([]string{
			outcome.RequestedID,
			outcome.JurisdictionID,
			strconv.FormatBool(outcome.FellBack),
			fmtFloat(outcome.Score),
			outcome.Result.Grade,
			string(outcome.Result.PassFail),
			outcome.Result.Display,
		})
	})
}

func writeGradeTable(w io.Writer, outcome schema.GradeOutcome, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatters(cfg.Precision)
	data := [][]string{
		{"Jurisdiction", outcome.JurisdictionID},
	}
	if outcome.FellBack {
		data = append(data, []string{"Requested", outcome.RequestedID + " (unknown)"})
	}
	data = append(data,
		[]string{"Score", fmtFloat(outcome.Score)},
		[]string{"Grade", outcome.Result.Grade},
		[]string{"Verdict", verdictLabel(cfg, outcome.Result.PassFail)},
		[]string{"Display", outcome.Result.Display},
	)
	data = append(data, detailRows(outcome.Result.Details, fmtFloat)...)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Field", "Value"})
	table.Configure(func(config *tablewriter.Config) {
		config.Row.Alignment.Global = tw.AlignLeft
	})
	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("failed to write table data: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	_, _ = fmt.Fprintf(w, "Graded in %v\n", duration)
	return nil
}

// detailRows flattens scheme details into table rows, skipping unset fields.
func detailRows(d *schema.SchemeDetails, fmtFloat func(float64) string) [][]string {
	if d == nil {
		return nil
	}
	var rows [][]string
	if d.Majors != nil {
		rows = append(rows, []string{"Majors", strconv.Itoa(*d.Majors)})
	}
	if d.Minors != nil {
		rows = append(rows, []string{"Minors", strconv.Itoa(*d.Minors)})
	}
	if d.UncorrectedMajors != nil {
		rows = append(rows, []string{"Uncorrected majors", strconv.Itoa(*d.UncorrectedMajors)})
	}
	if d.Points != nil {
		rows = append(rows, []string{"Points", fmtFloat(*d.Points)})
	}
	if d.NegativeScore != nil {
		rows = append(rows, []string{"Negative score", fmtFloat(*d.NegativeScore)})
	}
	if d.RequiredGrade != "" {
		rows = append(rows, []string{"Required grade", d.RequiredGrade})
	}
	if d.ImminentHealthRisk {
		rows = append(rows, []string{"Imminent health risk", "yes"})
	}
	return rows
}
