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

// WriteLocationScores writes location bundles in the configured format.
// JSON keeps the bundle shape; CSV and table flatten to one row per authority.
func WriteLocationScores(w io.Writer, scores []schema.LocationScore, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeJSON(w, scores)
	case schema.CSVOut:
		return writeLocationsCSV(w, scores, cfg)
	default:
		return writeLocationsTable(w, scores, cfg, duration)
	}
}

func writeLocationsCSV(w io.Writer, scores []schema.LocationScore, cfg *contract.Config) error {
	fmtFloat := createFormatters(cfg.Precision)
	header := []string{
		"location_id",
		"pillar",
		"federal",
		"jurisdiction_id",
		"agency_name",
		"grading_type",
		"grade",
		"numeric_score",
		"status",
		"grade_display",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, ls := range scores {
			for _, a := range ls.Authorities() {
				grade := ""
				if a.Grade != nil {
					grade = *a.Grade
				}
				rec := []string{
					ls.LocationID,
					string(a.Pillar),
					strconv.FormatBool(a.Federal),
					a.JurisdictionID,
					a.AgencyName,
					string(a.GradingType),
					grade,
					formatOptionalScoreCSV(a.NumericScore, fmtFloat),
					string(a.Status),
					a.GradeDisplay,
				}
				if err := cw.Write(rec); err != nil {
					return fmt.Errorf("failed to write CSV record for %s: %w", ls.LocationID, err)
				}
			}
		}
		return nil
	})
}

func writeLocationsTable(w io.Writer, scores []schema.LocationScore, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatters(cfg.Precision)
	maxDisplay := getMaxTableTextWidth(cfg, 75)

	var authorities, failing int
	data := make([][]string, 0, len(scores)*2)
	for _, ls := range scores {
		for _, a := range ls.Authorities() {
			authorities++
			if a.Status == schema.FailingStatus {
				failing++
			}
			authority := a.JurisdictionID
			if a.Federal {
				authority += " (federal)"
			}
			data = append(data, []string{
				contract.TruncateText(ls.LocationID, 20),
				string(a.Pillar),
				contract.TruncateText(authority, 24),
				formatGrade(a.Grade),
				formatOptionalScore(a.NumericScore, fmtFloat),
				statusLabel(cfg, a.Status),
				contract.TruncateText(a.GradeDisplay, maxDisplay),
			})
		}
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Location", "Pillar", "Authority", "Grade", "Score", "Status", "Display"})
	table.Configure(func(config *tablewriter.Config) {
		config.Row.Alignment.Global = tw.AlignLeft
	})
	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("failed to write table data: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	_, _ = fmt.Fprintf(w, "Scored %d authorities across %d locations (%d failing) in %v\n",
		authorities, len(scores), failing, duration)
	return nil
}
