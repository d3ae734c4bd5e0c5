// Package pipeline sequences the comparison stages: validate paths, sniff
// both files, load both tables, classify dimensions, compare. Each stage
// short-circuits on the first failure and returns it unchanged.
package pipeline

import (
	"fmt"
	"os"

	"github.com/dbsmedya/plandiff/internal/diff"
	"github.com/dbsmedya/plandiff/internal/logger"
	"github.com/dbsmedya/plandiff/internal/sniff"
	"github.com/dbsmedya/plandiff/internal/table"
)

// Options controls a pipeline run.
type Options struct {
	// Tolerance for numeric measure equality. Zero means diff.DefaultTolerance.
	Tolerance float64
	Logger    *logger.Logger
}

// Run compares the exports at baselinePath and comparisonPath and returns
// the structured diff. Dimension columns are classified from the baseline,
// which the schema check guarantees is representative of both inputs.
func Run(baselinePath, comparisonPath string, opts Options) (*diff.Result, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	tolerance := opts.Tolerance
	if tolerance == 0 {
		tolerance = diff.DefaultTolerance
	}

	if err := validatePaths(baselinePath, comparisonPath); err != nil {
		return nil, err
	}

	baselineFormat, err := sniff.Analyze(baselinePath)
	if err != nil {
		return nil, err
	}
	comparisonFormat, err := sniff.Analyze(comparisonPath)
	if err != nil {
		return nil, err
	}
	log.WithStage("sniff").Debugw("formats detected",
		"baseline_encoding", baselineFormat.Encoding,
		"baseline_delimiter", string(baselineFormat.Delimiter),
		"baseline_skip_rows", baselineFormat.SkipRows,
		"comparison_encoding", comparisonFormat.Encoding,
		"comparison_delimiter", string(comparisonFormat.Delimiter),
		"comparison_skip_rows", comparisonFormat.SkipRows,
	)

	baseline, err := table.Load(baselinePath, baselineFormat)
	if err != nil {
		return nil, err
	}
	comparison, err := table.Load(comparisonPath, comparisonFormat)
	if err != nil {
		return nil, err
	}
	log.WithStage("load").Debugw("tables loaded",
		"baseline_rows", baseline.NumRows(),
		"comparison_rows", comparison.NumRows(),
	)

	dimensions, err := table.DimensionColumns(baseline)
	if err != nil {
		return nil, err
	}

	result, err := diff.Compare(baseline, comparison, dimensions, tolerance)
	if err != nil {
		return nil, err
	}
	result.Shape = baselineFormat.Shape

	log.WithStage("compare").Infow("comparison complete",
		"unchanged", result.Unchanged.NumRows(),
		"changed", result.Changed.NumRows(),
		"added", result.Added.NumRows(),
		"removed", result.Removed.NumRows(),
	)
	return result, nil
}

// validatePaths checks both inputs exist before any analysis starts.
func validatePaths(baselinePath, comparisonPath string) error {
	for _, path := range []string{baselinePath, comparisonPath} {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("%w: could not find %q", sniff.ErrFileNotFound, path)
		}
	}
	return nil
}
