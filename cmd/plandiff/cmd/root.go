package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile   string
	logLevel  string
	logFormat string
	tolerance float64
	maxRows   int
	noColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "plandiff",
	Short: "Planning-tool CSV export comparator",
	Long: `A CLI tool that compares two CSV exports from a planning tool and
classifies every record as unchanged, changed, added, or removed.

Features:
  - Automatic detection of encoding, delimiter, header, and leading marker lines
  - Positional dimension/measure column classification
  - Tolerance-aware numeric comparison with per-row change percentages
  - Colored terminal summaries with capped row listings`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "plandiff.yaml",
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Display overrides
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored output")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel  string
	LogFormat string
	Tolerance float64
	MaxRows   int
	NoColor   bool
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:  logLevel,
		LogFormat: logFormat,
		Tolerance: tolerance,
		MaxRows:   maxRows,
		NoColor:   noColor,
	}
}
