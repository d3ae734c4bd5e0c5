package config

import (
	"strings"
	"testing"
)

func TestValidate_Defaults(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "zero tolerance",
			mutate:  func(c *Config) { c.Comparison.Tolerance = 0 },
			wantErr: "comparison.tolerance",
		},
		{
			name:    "negative tolerance",
			mutate:  func(c *Config) { c.Comparison.Tolerance = -1e-9 },
			wantErr: "comparison.tolerance",
		},
		{
			name:    "negative max rows",
			mutate:  func(c *Config) { c.Display.MaxRows = -1 },
			wantErr: "display.max_rows",
		},
		{
			name:    "bad color mode",
			mutate:  func(c *Config) { c.Display.Color = "rainbow" },
			wantErr: "display.color",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Comparison.Tolerance = -1
	cfg.Display.MaxRows = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 2 {
		t.Errorf("expected 2 validation errors, got %d", len(verrs))
	}
}
