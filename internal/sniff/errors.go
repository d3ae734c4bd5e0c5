package sniff

import "errors"

// Sentinel errors for format analysis failures. Callers match with errors.Is.
var (
	// ErrFileNotFound indicates the input path does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrEncodingDetection indicates the byte sample could not be read
	// for encoding detection.
	ErrEncodingDetection = errors.New("could not detect encoding")

	// ErrRead indicates the file could not be opened or decoded with the
	// detected encoding.
	ErrRead = errors.New("could not read file")

	// ErrNoData indicates every sampled line was blank or a marker line.
	ErrNoData = errors.New("no data lines found after page selectors")

	// ErrInsufficientColumns indicates the file has fewer than two columns.
	ErrInsufficientColumns = errors.New("file must have at least 2 columns")

	// ErrUnsupportedShape indicates the file does not match a supported
	// export layout.
	ErrUnsupportedShape = errors.New("last column must contain numeric values")
)
