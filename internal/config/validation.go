package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	if c.Comparison.Tolerance <= 0 {
		errors = append(errors, ValidationError{
			Field:   "comparison.tolerance",
			Message: "must be greater than zero",
		})
	}

	if c.Display.MaxRows < 0 {
		errors = append(errors, ValidationError{
			Field:   "display.max_rows",
			Message: "must not be negative",
		})
	}

	switch c.Display.Color {
	case "auto", "always", "never", "":
	default:
		errors = append(errors, ValidationError{
			Field:   "display.color",
			Message: fmt.Sprintf("invalid value %q (expected auto, always, or never)", c.Display.Color),
		})
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error", "":
	default:
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid level %q (expected debug, info, warn, or error)", c.Logging.Level),
		})
	}

	switch c.Logging.Format {
	case "json", "text", "":
	default:
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid format %q (expected json or text)", c.Logging.Format),
		})
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}
