package diff

import "errors"

// Sentinel errors for comparison validation and execution.
// Callers match with errors.Is.
var (
	// ErrInvalidTolerance indicates a non-positive comparison tolerance.
	ErrInvalidTolerance = errors.New("tolerance must be greater than zero")

	// ErrNoDimensions indicates an empty dimension column list.
	ErrNoDimensions = errors.New("no dimension columns specified")

	// ErrEmptyInput indicates one of the input tables has no rows.
	ErrEmptyInput = errors.New("input table is empty")

	// ErrSchemaMismatch indicates the two inputs have different column sets.
	ErrSchemaMismatch = errors.New("column sets do not match")

	// ErrUnknownDimension indicates a dimension column absent from the inputs.
	ErrUnknownDimension = errors.New("unknown dimension column")

	// ErrNoMeasures indicates no column remains after removing dimensions.
	ErrNoMeasures = errors.New("no measure columns found")

	// ErrComparisonFailed wraps an unexpected failure during join or
	// classification.
	ErrComparisonFailed = errors.New("comparison failed")
)
