package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Comparison.Tolerance != 1e-10 {
		t.Errorf("expected default tolerance 1e-10, got %v", cfg.Comparison.Tolerance)
	}
	if cfg.Display.MaxRows != 10 {
		t.Errorf("expected default max_rows 10, got %d", cfg.Display.MaxRows)
	}
	if cfg.Display.Color != "auto" {
		t.Errorf("expected default color 'auto', got %s", cfg.Display.Color)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("expected default output 'stderr', got %s", cfg.Logging.Output)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()

	cfg.ApplyOverrides("debug", "json", 0.5, 25, true)

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected format 'json', got %s", cfg.Logging.Format)
	}
	if cfg.Comparison.Tolerance != 0.5 {
		t.Errorf("expected tolerance 0.5, got %v", cfg.Comparison.Tolerance)
	}
	if cfg.Display.MaxRows != 25 {
		t.Errorf("expected max_rows 25, got %d", cfg.Display.MaxRows)
	}
	if cfg.Display.Color != "never" {
		t.Errorf("expected color 'never', got %s", cfg.Display.Color)
	}
}

func TestApplyOverrides_ZeroValuesKeepConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "warn"
	cfg.Comparison.Tolerance = 0.01

	cfg.ApplyOverrides("", "", 0, 0, false)

	if cfg.Logging.Level != "warn" {
		t.Errorf("empty override should keep level 'warn', got %s", cfg.Logging.Level)
	}
	if cfg.Comparison.Tolerance != 0.01 {
		t.Errorf("zero override should keep tolerance 0.01, got %v", cfg.Comparison.Tolerance)
	}
	if cfg.Display.Color != "auto" {
		t.Errorf("false no-color should keep color 'auto', got %s", cfg.Display.Color)
	}
}
