package contract

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/placardhq/placard/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 50
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
	DefaultListenAddr  = "127.0.0.1:8080"
)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for grading.
// This struct remains the "final, validated" config.
type Config struct {
	Score          float64 // Normalized 0-100 score for grade and compare
	ScoreSet       bool    // Whether --score was provided at all
	JurisdictionID string
	LocationIDs    []string
	Pillar         schema.Pillar // Empty means both pillars
	ResultLimit    int
	Precision      int
	Output         schema.OutputMode
	OutputFile     string
	Width          int // Terminal width override (0 = auto-detect)

	CatalogPath   string // Empty means the embedded demo catalog
	LocationsPath string // Empty means the embedded demo locations

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	ListenAddr    string
	RecordHistory bool // Record HTTP location lookups in the grading history

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	LocationArgs []string

	// --- Fields from rootCmd.PersistentFlags() ---
	OutputFile       string `mapstructure:"output-file"`
	Limit            int    `mapstructure:"limit"`
	Precision        int    `mapstructure:"precision"`
	Output           string `mapstructure:"output"`
	Width            int    `mapstructure:"width"`
	Catalog          string `mapstructure:"catalog"`
	LocationsFile    string `mapstructure:"locations-file"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
	Emoji            string `mapstructure:"emoji"`
	Color            string `mapstructure:"color"`

	// --- Fields from gradeCmd and compareCmd flags ---
	Score        string `mapstructure:"score"`
	Jurisdiction string `mapstructure:"jurisdiction"`
	Pillar       string `mapstructure:"pillar"`

	// --- Fields from locationCmd flags ---
	Locations string `mapstructure:"locations"`

	// --- Fields from serveCmd flags ---
	Listen        string `mapstructure:"listen"`
	RecordHistory bool   `mapstructure:"record-history"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.LocationIDs != nil {
		clone.LocationIDs = slices.Clone(c.LocationIDs)
	}
	return &clone
}

// CloneWithScore creates a copy of the Config graded against a different score.
func (c *Config) CloneWithScore(score float64) *Config {
	clone := c.Clone()
	clone.Score = score
	clone.ScoreSet = true
	return clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processGradingInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ParseBackend normalizes a backend name. An empty name disables history.
func ParseBackend(s string) (schema.DatabaseBackend, error) {
	if strings.TrimSpace(s) == "" {
		return schema.NoneBackend, nil
	}
	backend := schema.DatabaseBackend(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return "", fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", s)
	}
	return backend, nil
}

// validateBackendConfig validates the history backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	backend, err := ParseBackend(input.HistoryBackend)
	if err != nil {
		return err
	}
	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = input.HistoryDBConnect
	return ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect)
}

// validateSimpleInputs processes and validates the output and presentation fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.CatalogPath = strings.TrimSpace(input.Catalog)
	cfg.LocationsPath = strings.TrimSpace(input.LocationsFile)

	cfg.ListenAddr = strings.TrimSpace(input.Listen)
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}
	cfg.RecordHistory = input.RecordHistory

	emojis, err := parseBoolDefault(input.Emoji, false)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := parseBoolDefault(input.Color, true)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Precision and Output Validation ---
	if input.Precision < 0 || input.Precision > 2 {
		return fmt.Errorf("precision must be 0, 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for parquet output")
	}

	return nil
}

// processGradingInputs handles the score, jurisdiction, pillar and location selections.
func processGradingInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.ScoreSet = false
	if s := strings.TrimSpace(input.Score); s != "" {
		score, err := ParseScore(s)
		if err != nil {
			return err
		}
		cfg.Score = score
		cfg.ScoreSet = true
	}

	cfg.JurisdictionID = strings.TrimSpace(input.Jurisdiction)

	pillar, err := ParsePillar(input.Pillar)
	if err != nil {
		return err
	}
	cfg.Pillar = pillar

	if len(input.LocationArgs) > 0 {
		cfg.LocationIDs = SplitList(strings.Join(input.LocationArgs, ","))
	} else {
		cfg.LocationIDs = SplitList(input.Locations)
	}

	return nil
}

// ParseScore parses a normalized score. Values outside 0-100 are accepted and
// extrapolated by the grading schemes; non-finite values are rejected.
func ParseScore(s string) (float64, error) {
	score, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid score '%s': %w", s, err)
	}
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, fmt.Errorf("invalid score '%s': must be a finite number", s)
	}
	return score, nil
}

// ParsePillar parses a pillar filter. Empty and "all" select both pillars.
func ParsePillar(s string) (schema.Pillar, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "", "all":
		return "", nil
	case "food", string(schema.FoodSafety):
		return schema.FoodSafety, nil
	case "fire", string(schema.FireSafety):
		return schema.FireSafety, nil
	default:
		return "", fmt.Errorf("invalid pillar '%s'. must be food_safety, fire_safety, all", s)
	}
}

// parseBoolDefault parses a boolean flag, returning def when the flag is unset.
func parseBoolDefault(s string, def bool) (bool, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return ParseBoolString(strings.TrimSpace(s))
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
