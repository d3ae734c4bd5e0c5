package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test.yaml")

	configContent := `
comparison:
  tolerance: 0.001

display:
  max_rows: 5
  color: never

logging:
  level: debug
  format: json
  output: stdout
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Comparison.Tolerance != 0.001 {
		t.Errorf("expected tolerance 0.001, got %v", cfg.Comparison.Tolerance)
	}
	if cfg.Display.MaxRows != 5 {
		t.Errorf("expected max_rows 5, got %d", cfg.Display.MaxRows)
	}
	if cfg.Display.Color != "never" {
		t.Errorf("expected color 'never', got %s", cfg.Display.Color)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected format 'json', got %s", cfg.Logging.Format)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing config file should not error, got: %v", err)
	}
	if cfg.Comparison.Tolerance != 1e-10 {
		t.Errorf("expected default tolerance, got %v", cfg.Comparison.Tolerance)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.yaml")

	if err := os.WriteFile(configPath, []byte("display:\n  max_rows: 3\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Display.MaxRows != 3 {
		t.Errorf("expected max_rows 3, got %d", cfg.Display.MaxRows)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "bad.yaml")

	if err := os.WriteFile(configPath, []byte("display: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestEnvVarSubstitution(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "env.yaml")

	t.Setenv("PLANDIFF_LOG_FILE", "/tmp/plandiff-test.log")

	configContent := `
logging:
  output: ${PLANDIFF_LOG_FILE}
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Logging.Output != "/tmp/plandiff-test.log" {
		t.Errorf("expected env-substituted output, got %s", cfg.Logging.Output)
	}
}

func TestExpandEnvVar_Unset(t *testing.T) {
	if got := expandEnvVar("${PLANDIFF_DEFINITELY_UNSET_VAR}"); got != "" {
		t.Errorf("unset variable should expand to empty string, got %q", got)
	}
}
