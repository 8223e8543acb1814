package cmd

import (
	"fmt"
	"io"
	"runtime"

	"github.com/placardhq/placard/internal/catalog"
	"github.com/placardhq/placard/internal/iocache"
	"github.com/placardhq/placard/schema"
	"github.com/spf13/cobra"
)

// versionCmd shows which build produced a set of grades.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the placard build and the grading data it ships with.",
	Long: `Display the build that produced a grade, alongside the data baked into it.

Besides the release, commit, build time and Go runtime, this prints the number of
jurisdictions in the embedded demo catalog and the newest grading history schema
version. Compare the schema version with 'placard history status' before exporting
history written by an older release.

Examples:
  placard version
  placard --version`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		printVersion(cmd.OutOrStdout())
	},
}

// printVersion writes the build details and the embedded data versions.
func printVersion(w io.Writer) {
	_, _ = fmt.Fprintf(w, "placard CLI\n")
	_, _ = fmt.Fprintf(w, "  Version: %s\n", version)
	_, _ = fmt.Fprintf(w, "  Commit:  %s\n", commit)
	_, _ = fmt.Fprintf(w, "  Built:   %s\n", date)
	_, _ = fmt.Fprintf(w, "  Runtime: %s\n", runtime.Version())

	if profiles, err := catalog.LoadProfiles(""); err == nil {
		_, _ = fmt.Fprintf(w, "  Catalog: %d embedded jurisdictions\n", len(profiles))
	} else {
		_, _ = fmt.Fprintf(w, "  Catalog: unreadable (%v)\n", err)
	}
	if v, err := iocache.LatestSchemaVersion(schema.SQLiteBackend); err == nil {
		_, _ = fmt.Fprintf(w, "  History: schema v%d\n", v)
	} else {
		_, _ = fmt.Fprintf(w, "  History: unknown schema (%v)\n", err)
	}
}
