package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommandStructure(t *testing.T) {
	assert.Equal(t, "plandiff", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)
}

func TestExecute(t *testing.T) {
	// Execute() calls os.Exit(1) on error, so the failure path is not
	// exercised here. This is primarily a compile-time check.
	assert.NotNil(t, Execute)
}

func TestVersionVariables(t *testing.T) {
	assert.NotEmpty(t, Version, "Version should not be empty")
	assert.NotEmpty(t, Commit, "Commit should not be empty")
}

func TestPersistentFlagDefaults(t *testing.T) {
	assert.Equal(t, "plandiff.yaml", GetConfigFile(), "config file should default to plandiff.yaml")

	flag := rootCmd.PersistentFlags().Lookup("log-level")
	if assert.NotNil(t, flag) {
		assert.Equal(t, "", flag.DefValue)
	}
	flag = rootCmd.PersistentFlags().Lookup("log-format")
	if assert.NotNil(t, flag) {
		assert.Equal(t, "", flag.DefValue)
	}
	flag = rootCmd.PersistentFlags().Lookup("no-color")
	if assert.NotNil(t, flag) {
		assert.Equal(t, "false", flag.DefValue)
	}
}

func TestGetCLIOverrides(t *testing.T) {
	overrides := GetCLIOverrides()

	assert.Equal(t, logLevel, overrides.LogLevel)
	assert.Equal(t, logFormat, overrides.LogFormat)
	assert.Equal(t, tolerance, overrides.Tolerance)
	assert.Equal(t, maxRows, overrides.MaxRows)
	assert.Equal(t, noColor, overrides.NoColor)
}

func TestRegisteredCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["diff"], "diff command should be registered")
	assert.True(t, names["inspect"], "inspect command should be registered")
	assert.True(t, names["version"], "version command should be registered")
}
