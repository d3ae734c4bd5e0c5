// Package sniff infers the on-disk format of planning-tool CSV exports.
//
// Exports arrive with unpredictable encodings, delimiters, leading page
// selector lines, and optional headers. Analyze inspects a bounded sample
// of the file and produces a Format descriptor that the table loader can
// parse the full file with.
package sniff

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Shape identifies a supported export layout.
type Shape string

const (
	// ShapeTabularSingleColumn is the export layout where every column but
	// the last is a dimension and the last column holds the measure value.
	ShapeTabularSingleColumn Shape = "tabular_single_column"

	// ShapeTabularMultiColumn is the pivoted export layout with one column
	// per line item. Declared for completeness; detection is not implemented.
	ShapeTabularMultiColumn Shape = "tabular_multi_column"
)

// Format describes how to parse an export file. It is produced once per
// file by Analyze and never modified afterwards.
type Format struct {
	Encoding  string // lowercase encoding name, UTF-8 variants normalized to "utf-8"
	Delimiter rune
	HasHeader bool
	SkipRows  int // leading non-data lines to skip
	Shape     Shape
}

// Validate checks the Format invariants.
func (f Format) Validate() error {
	if f.Encoding == "" {
		return errors.New("encoding must be non-empty")
	}
	if f.Delimiter == 0 {
		return errors.New("delimiter must be non-empty")
	}
	if f.SkipRows < 0 {
		return errors.New("skip_rows must be non-negative")
	}
	return nil
}

const (
	maxSampleLines = 10
	maxShapeRows   = 100

	pageSelectorMarker = "Page Selectors:"
	totalMarker        = "Total:"
)

// delimiterCandidates is the detection priority order.
var delimiterCandidates = []rune{',', '\t', ';', '|'}

// Analyze inspects a bounded sample of the file at path and returns its
// detected format. The only side effect is reading that sample.
func Analyze(path string) (Format, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Format{}, fmt.Errorf("%w: could not find %q", ErrFileNotFound, path)
	}

	sample, err := readSample(path)
	if err != nil {
		return Format{}, fmt.Errorf("%w: %v", ErrEncodingDetection, err)
	}
	enc := detectEncoding(sample)

	lines, err := readSampleLines(path, enc)
	if err != nil {
		return Format{}, fmt.Errorf("%w: %v", ErrRead, err)
	}

	skipRows := countSkipRows(lines)
	dataLines := lines[skipRows:]
	if len(dataLines) == 0 {
		return Format{}, ErrNoData
	}

	delimiter := detectDelimiter(dataLines)
	hasHeader := detectHeader(dataLines, delimiter)

	f := Format{
		Encoding:  enc,
		Delimiter: delimiter,
		HasHeader: hasHeader,
		SkipRows:  skipRows,
	}

	shape, err := validateShape(path, f)
	if err != nil {
		return Format{}, err
	}
	f.Shape = shape

	return f, nil
}

// readSample reads the leading bytes used for encoding detection.
func readSample(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sample := make([]byte, sampleSize)
	n, err := f.Read(sample)
	if err != nil && err != io.EOF {
		return nil, err
	}
	return sample[:n], nil
}

// readSampleLines reads up to maxSampleLines decoded lines for structural
// analysis. Lines are whitespace-trimmed.
func readSampleLines(path, encodingName string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	decoded, err := NewReader(f, encodingName)
	if err != nil {
		return nil, err
	}

	var lines []string
	scanner := bufio.NewScanner(decoded)
	for len(lines) < maxSampleLines && scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// countSkipRows counts consecutive leading lines that are blank, contain a
// page selector marker, or start with a total marker. The count stops at
// the first line matching none of these.
func countSkipRows(lines []string) int {
	skip := 0
	for _, line := range lines {
		if line == "" || strings.Contains(line, pageSelectorMarker) || strings.HasPrefix(line, totalMarker) {
			skip++
			continue
		}
		break
	}
	return skip
}

// detectDelimiter picks the first candidate whose occurrence count is
// positive on every non-blank line and near-uniform across lines (at most
// two distinct counts). Defaults to comma.
func detectDelimiter(lines []string) rune {
	for _, candidate := range delimiterCandidates {
		var counts []int
		for _, line := range lines {
			if strings.TrimSpace(line) == "" {
				continue
			}
			counts = append(counts, strings.Count(line, string(candidate)))
		}
		if len(counts) == 0 {
			continue
		}

		allPositive := true
		distinct := make(map[int]struct{})
		for _, c := range counts {
			if c <= 0 {
				allPositive = false
				break
			}
			distinct[c] = struct{}{}
		}
		if allPositive && len(distinct) <= 2 {
			return candidate
		}
	}
	return ','
}

// detectHeader decides whether the first data line is a header by checking
// whether the last field of line 1 or line 2 parses as a float. A numeric
// last field on line 1 means line 1 is data; a numeric last field on line 2
// with a non-numeric line 1 means line 1 is a header. Defaults to header.
func detectHeader(lines []string, delimiter rune) bool {
	if len(lines) < 2 {
		return true
	}

	if lastFieldNumeric(lines[0], delimiter) {
		return false
	}
	if lastFieldNumeric(lines[1], delimiter) {
		return true
	}
	return true
}

func lastFieldNumeric(line string, delimiter rune) bool {
	fields := strings.Split(line, string(delimiter))
	if len(fields) == 0 {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(fields[len(fields)-1]), 64)
	return err == nil
}

// validateShape re-reads a bounded row sample with the detected format and
// checks the structural contract of the supported export layout: at least
// two columns, and a numeric last column.
func validateShape(path string, f Format) (Shape, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRead, err)
	}
	defer file.Close()

	decoded, err := NewReader(file, f.Encoding)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRead, err)
	}

	reader := bufio.NewReader(decoded)
	for i := 0; i < f.SkipRows; i++ {
		if _, err := reader.ReadString('\n'); err != nil {
			return "", ErrNoData
		}
	}

	cr := csv.NewReader(reader)
	cr.Comma = f.Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	first := true
	for rows := 0; rows < maxShapeRows; {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // malformed record, ignore in the sample
		}

		if len(record) < 2 {
			return "", ErrInsufficientColumns
		}

		if first && f.HasHeader {
			first = false
			continue
		}
		first = false
		rows++

		last := strings.TrimSpace(record[len(record)-1])
		if last == "" {
			continue
		}
		if _, err := strconv.ParseFloat(last, 64); err != nil {
			return "", fmt.Errorf("%w (found %q)", ErrUnsupportedShape, last)
		}
	}

	return ShapeTabularSingleColumn, nil
}
