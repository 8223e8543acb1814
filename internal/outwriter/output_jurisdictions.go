package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/placardhq/placard/internal/contract"
	"github.com/placardhq/placard/schema"
)

// WriteJurisdictions writes catalog summaries in the configured format.
func WriteJurisdictions(w io.Writer, summaries []schema.JurisdictionSummary, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeJSON(w, summaries)
	case schema.CSVOut:
		return writeJurisdictionsCSV(w, summaries)
	default:
		return writeJurisdictionsTable(w, summaries, cfg, duration)
	}
}

func writeJurisdictionsCSV(w io.Writer, summaries []schema.JurisdictionSummary) error {
	header := []string{"id", "county", "agency_name", "agency_contact", "pillar", "scoring_type", "grading_type", "rule"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, s := range summaries {
			rec := []string{
				s.ID,
				s.County,
				s.AgencyName,
				s.Contact,
				string(s.Pillar),
				string(s.ScoringType),
				string(s.GradingType),
				s.Rule,
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV record for %s: %w", s.ID, err)
			}
		}
		return nil
	})
}

func writeJurisdictionsTable(w io.Writer, summaries []schema.JurisdictionSummary, cfg *contract.Config, duration time.Duration) error {
	maxRule := getMaxTableTextWidth(cfg, 60)
	data := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		data = append(data, []string{
			s.ID,
			contract.TruncateText(s.County, 20),
			string(s.Pillar),
			string(s.GradingType),
			contract.TruncateText(s.Rule, maxRule),
		})
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"ID", "County", "Pillar", "Grading", "Rule"})
	table.Configure(func(config *tablewriter.Config) {
		config.Row.Alignment.Global = tw.AlignLeft
	})
	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("failed to write table data: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	_, _ = fmt.Fprintf(w, "Showing %d jurisdictions in %v\n", len(summaries), duration)
	return nil
}
