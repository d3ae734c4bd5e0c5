// Package config provides configuration structures and loading for plandiff.
package config

// Config represents the complete application configuration.
type Config struct {
	Comparison ComparisonConfig `yaml:"comparison" mapstructure:"comparison"`
	Display    DisplayConfig    `yaml:"display" mapstructure:"display"`
	Logging    LoggingConfig    `yaml:"logging" mapstructure:"logging"`
}

// ComparisonConfig represents comparison engine settings.
type ComparisonConfig struct {
	// Tolerance is the maximum absolute difference under which two
	// numeric measure values are considered equal.
	Tolerance float64 `yaml:"tolerance" mapstructure:"tolerance"`
}

// DisplayConfig represents terminal output settings.
type DisplayConfig struct {
	MaxRows int    `yaml:"max_rows" mapstructure:"max_rows"` // rows listed per section before the "N more" marker
	Color   string `yaml:"color" mapstructure:"color"`       // auto, always, never
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Comparison: ComparisonConfig{
			Tolerance: 1e-10,
		},
		Display: DisplayConfig{
			MaxRows: 10,
			Color:   "auto",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// ApplyOverrides applies CLI flag values on top of the loaded configuration.
// Zero values leave the configured setting untouched.
func (c *Config) ApplyOverrides(logLevel, logFormat string, tolerance float64, maxRows int, noColor bool) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	if tolerance > 0 {
		c.Comparison.Tolerance = tolerance
	}
	if maxRows > 0 {
		c.Display.MaxRows = maxRows
	}
	if noColor {
		c.Display.Color = "never"
	}
}
