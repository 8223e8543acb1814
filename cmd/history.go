package cmd

import (
	"fmt"
	"os"

	"github.com/placardhq/placard/internal/contract"
	"github.com/placardhq/placard/internal/iocache"
	"github.com/placardhq/placard/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// loadHistoryConfig reads the config file and validates the history backend settings.
func loadHistoryConfig() error {
	setConfigSource()
	if err := readConfigFile(); err != nil {
		return err
	}

	backend, err := contract.ParseBackend(viper.GetString("history-backend"))
	if err != nil {
		return err
	}
	connStr := viper.GetString("history-db-connect")
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")
	return nil
}

// historySetup loads minimal configuration needed for history operations.
// This is used by commands that need history access without full shared setup.
func historySetup() error {
	if err := loadHistoryConfig(); err != nil {
		return err
	}
	if err := iocache.InitStores(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return fmt.Errorf("failed to initialize history: %w", err)
	}
	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyMigrateSetup does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func historyMigrateSetup(_ *cobra.Command, _ []string) error {
	if err := loadHistoryConfig(); err != nil {
		return err
	}
	if cfg.HistoryBackend == schema.SQLiteBackend && cfg.HistoryDBConnect == "" {
		cfg.HistoryDBConnect = contract.GetHistoryDBFilePath()
	}
	return nil
}

// historyCmd focused on grading history management.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the grading history and exports",
	Long: `Manage the history of authority scores computed by 'placard location'.

Each run stores its metadata and one row per authority (food safety, fire safety and
federal overlays). No combined score is ever stored.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show history statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all history data
  migrate - Run database schema migrations

Examples:
  placard history status
  placard history export --output-file history`,
}

// historyStatusCmd shows history status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display grading history statistics and connection details",
	Long: `Show the history backend, its connection state, run and score counts, the
first and last run timestamps and the row count of each table.

Examples:
  placard history status
  PLACARD_HISTORY_BACKEND=postgresql PLACARD_HISTORY_DB_CONNECT="..." placard history status`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := iocache.Manager.GetHistoryStore()
		if store == nil {
			fmt.Println("History tracking is disabled.")
			return
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		iocache.PrintHistoryStatus(os.Stdout, status)
	},
}

// historyClearCmd clears the grading history.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all grading history",
	Long: `Delete every stored run and authority score.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the history tables

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  placard history export --output-file backup
  placard history clear`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return loadHistoryConfig()
	},
	Run: func(_ *cobra.Command, _ []string) {
		dbFilePath := cfg.HistoryDBConnect
		if dbFilePath == "" {
			dbFilePath = contract.GetHistoryDBFilePath()
		}
		if err := iocache.ClearHistory(cfg.HistoryBackend, dbFilePath, cfg.HistoryDBConnect); err != nil {
			contract.LogFatal("Failed to clear grading history", err)
		}
		fmt.Println("Grading history cleared successfully.")
	},
}

// historyExportCmd exports the grading history to Parquet files.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export grading history to Parquet for BI tools and analytics",
	Long: `Export all stored history to two Parquet files:
- <output-file>.grading_runs.parquet
- <output-file>.authority_scores.parquet

Requires: --output-file parameter

Examples:
  placard history export --output-file placard
  duckdb -c "SELECT status, count(*) FROM read_parquet('placard.authority_scores.parquet') GROUP BY 1"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExecuteHistoryExport(os.Stdout, iocache.Manager.GetHistoryStore(), cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export grading history", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage schema versions of the grading history store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  placard history migrate

  # Rollback to initial state
  placard history migrate --target-version 0`,
	PreRunE: historyMigrateSetup,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		msg, err := iocache.MigrateHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion)
		if err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
		fmt.Println(msg)
	},
}
