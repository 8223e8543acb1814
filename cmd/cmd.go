// Package cmd defines the command-line interface for placard.
package cmd

import (
	"github.com/placardhq/placard/internal/contract"
	"github.com/placardhq/placard/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(jurisdictionsCmd)
	rootCmd.AddCommand(locationCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns (0-2)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a jurisdiction catalog YAML (default: built-in demo catalog)")
	rootCmd.PersistentFlags().String("locations-file", "", "Path to a location fixture YAML (default: built-in demo locations)")
	rootCmd.PersistentFlags().String("history-backend", string(schema.SQLiteBackend), "History backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("emoji", "no", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("pillar", "", "Pillar filter: food or fire or all")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of gradeCmd to Viper
	gradeCmd.Flags().String("score", "", "Normalized 0-100 inspection score")
	gradeCmd.Flags().StringP("jurisdiction", "j", "", "Jurisdiction id (unknown ids fall back to the first catalog entry)")
	if err := viper.BindPFlags(gradeCmd.Flags()); err != nil {
		contract.LogFatal("Error binding grade flags", err)
	}

	// Bind all flags of compareCmd to Viper
	compareCmd.Flags().String("score", "", "Normalized 0-100 inspection score")
	if err := viper.BindPFlags(compareCmd.Flags()); err != nil {
		contract.LogFatal("Error binding compare flags", err)
	}

	// Bind all flags of locationCmd to Viper
	locationCmd.Flags().String("locations", "", "Comma-separated location ids (default: every location in the fixture file)")
	if err := viper.BindPFlags(locationCmd.Flags()); err != nil {
		contract.LogFatal("Error binding location flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("listen", contract.DefaultListenAddr, "Address for the HTTP server")
	serveCmd.Flags().Bool("record-history", false, "Record location lookups in the grading history")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
