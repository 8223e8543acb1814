package algo

import (
	"sort"

	"github.com/placardhq/placard/schema"
)

// verdictSeverity orders verdicts so that worse outcomes sort first.
func verdictSeverity(pf schema.PassFail) int {
	switch pf {
	case schema.Fail:
		return 0
	case schema.Warning:
		return 1
	default:
		return 2
	}
}

// RankComparison orders comparison rows with failing jurisdictions first, then
// warnings, then passes. Rows with the same verdict keep their catalog order.
// Ranks are reassigned from 1 and the top 'limit' rows are returned; a limit
// of zero or less returns every row.
func RankComparison(rows []schema.ComparisonRow, limit int) []schema.ComparisonRow {
	sort.SliceStable(rows, func(i, j int) bool {
		return verdictSeverity(rows[i].Result.PassFail) < verdictSeverity(rows[j].Result.PassFail)
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}
