package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/placardhq/placard/schema"
)

// Status label constants.
const (
	PassingValue = "Passing"
	AtRiskValue  = "At Risk"
	FailingValue = "Failing"
	UnknownValue = "Unknown"
)

// Color variables for console output.
var (
	FailingColor = color.New(color.FgRed, color.Bold) // FailingColor represents standard danger.
	AtRiskColor  = color.New(color.FgYellow)          // AtRiskColor represents standard caution, not bold.
	PassingColor = color.New(color.FgGreen)           // PassingColor represents a clean result.
	UnknownColor = color.New(color.FgCyan)            // UnknownColor represents missing data.
)

// GetPlainLabel returns a plain text label for an authority status. This is the
// core logic used for CSV, JSON, and table printing.
func GetPlainLabel(status schema.Status) string {
	switch status {
	case schema.PassingStatus:
		return PassingValue
	case schema.AtRiskStatus:
		return AtRiskValue
	case schema.FailingStatus:
		return FailingValue
	default:
		return UnknownValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(status schema.Status) string {
	text := GetPlainLabel(status)

	switch text {
	case FailingValue:
		return FailingColor.Sprint(text)
	case AtRiskValue:
		return AtRiskColor.Sprint(text)
	case PassingValue:
		return PassingColor.Sprint(text)
	default:
		return UnknownColor.Sprint(text)
	}
}

// GetVerdictLabel returns the plain label of a scheme verdict.
func GetVerdictLabel(pf schema.PassFail) string {
	return GetPlainLabel(schema.StatusFor(pf))
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for grading history.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".placard_history.db"
	}
	return filepath.Join(homeDir, ".placard_history.db")
}

// TruncateText truncates a value to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for "..." and at least one character.
func TruncateText(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return s
}

// SplitList splits a comma-separated list, trimming blanks and dropping duplicates
// while keeping first-seen order.
func SplitList(s string) []string {
	var out []string
	seen := make(map[string]struct{})
	for part := range strings.SplitSeq(s, ",") {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
