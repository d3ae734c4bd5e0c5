package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/plandiff/internal/config"
	"github.com/dbsmedya/plandiff/internal/logger"
	"github.com/dbsmedya/plandiff/internal/pipeline"
	"github.com/dbsmedya/plandiff/internal/render"
)

var diffCmd = &cobra.Command{
	Use:   "diff <baseline> <comparison>",
	Short: "Compare two CSV exports and show changes",
	Long: `Diff compares a baseline export against a comparison export and
classifies every record as unchanged, changed, added, or removed.

The file format (encoding, delimiter, header, leading marker lines) is
detected automatically. All columns except the last are used as the join
key; the last column is compared with the configured numeric tolerance.

Example:
  plandiff diff before.csv after.csv --tolerance 0.01`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().Float64Var(&tolerance, "tolerance", 0,
		"Override numeric comparison tolerance")
	diffCmd.Flags().IntVar(&maxRows, "max-rows", 0,
		"Override number of rows listed per section")
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	formatter := render.New(cfg.Display, cmd.OutOrStdout())

	result, err := pipeline.Run(args[0], args[1], pipeline.Options{
		Tolerance: cfg.Comparison.Tolerance,
		Logger:    log,
	})
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), formatter.RenderError(err))
		return errors.New("comparison aborted")
	}

	formatter.Print(formatter.Render(result))
	return nil
}

// loadConfig loads the configuration file and applies CLI overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.Tolerance, overrides.MaxRows, overrides.NoColor)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
