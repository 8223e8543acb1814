package cmd

import (
	"github.com/placardhq/placard/core"
	"github.com/spf13/cobra"
)

// gradeCmd grades one score against one jurisdiction.
var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade a normalized score against one jurisdiction",
	Long: `Translate a normalized 0-100 inspection score into the grade a single jurisdiction
would publish: a letter, a color placard, a raw score, a negative-scale value, a tier,
or a pass/reinspect verdict with estimated violation counts.

An unknown or empty --jurisdiction falls back to the first catalog entry. The output
names both the requested and the resolved jurisdiction so the fallback is visible.

Examples:
  # Letter grade in Los Angeles County
  placard grade --score 85 --jurisdiction los_angeles

  # Same score where only an A passes
  placard grade --score 85 --jurisdiction riverside

  # Machine-readable output
  placard grade --score 72.5 --jurisdiction maricopa --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor(core.ExecuteGrade, "grade")
	},
}

// compareCmd grades one score against every jurisdiction.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Grade one score against every jurisdiction in the catalog",
	Long: `Show how the same normalized score lands in every jurisdiction.

Failing jurisdictions are listed first, then warnings, then passes. Within each
verdict the catalog order is kept.

Examples:
  # Same score, different outcomes
  placard compare --score 88

  # Only fire authorities
  placard compare --score 78 --pillar fire

  # Export to CSV
  placard compare --score 88 --output csv --output-file compare.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor(core.ExecuteCompare, "comparison")
	},
}

// jurisdictionsCmd lists the catalog.
var jurisdictionsCmd = &cobra.Command{
	Use:   "jurisdictions",
	Short: "List catalog jurisdictions and their grading rules",
	Long: `List every jurisdiction in the catalog with its pillar, grading type and the
effective thresholds after defaults are applied.

The first entry is the fallback used for unknown jurisdiction ids.

Examples:
  placard jurisdictions
  placard jurisdictions --pillar fire
  placard jurisdictions --catalog ./my-counties.yaml --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor(core.ExecuteJurisdictions, "jurisdiction listing")
	},
}

// locationCmd grades every authority of one or more locations.
var locationCmd = &cobra.Command{
	Use:   "location [location-id...]",
	Short: "Grade every authority that regulates a location",
	Long: `Grade the food safety and fire safety authorities of each location, plus any
federal overlays. Each authority is graded on its own; no combined score is produced.

Locations without a jurisdiction assignment are skipped with a warning. A pillar
without a score is reported as "Not yet inspected" with status unknown.

Every computed authority score is recorded in the grading history when a history
backend is configured.

Examples:
  # All locations in the fixture file
  placard location

  # Selected locations
  placard location loc-001 loc-005

  # Parquet snapshot of the graded rows
  placard location --output parquet --output-file scores.parquet`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor(core.ExecuteLocation, "location grading")
	},
}
