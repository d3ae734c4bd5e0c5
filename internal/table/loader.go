package table

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/dbsmedya/plandiff/internal/sniff"
)

// Load parses the full file at path into a Table using the detected format.
// Parsing is permissive: records whose field count does not match the
// header width, and records the CSV reader rejects, are dropped rather
// than aborting the load.
func Load(path string, format sniff.Format) (*Table, error) {
	if err := format.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid format descriptor: %v", ErrLoad, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	defer file.Close()

	decoded, err := sniff.NewReader(file, format.Encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	reader := bufio.NewReader(decoded)
	for i := 0; i < format.SkipRows; i++ {
		if _, err := reader.ReadString('\n'); err != nil {
			return nil, fmt.Errorf("%w: file ends inside skipped rows", ErrLoad)
		}
	}

	cr := csv.NewReader(reader)
	cr.Comma = format.Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	first, err := readRecord(cr)
	if err == io.EOF {
		return nil, fmt.Errorf("%w: file has no records", ErrLoad)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	var header []string
	var pending [][]string
	if format.HasHeader {
		header = uniqueNames(first)
	} else {
		header = make([]string, len(first))
		for i := range first {
			header[i] = fmt.Sprintf("column_%d", i+1)
		}
		pending = append(pending, first)
	}

	t, err := New(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	appendRecord := func(record []string) {
		if len(record) != len(header) {
			return // malformed record, dropped
		}
		values := make([]any, len(record))
		for i, field := range record {
			values[i] = ParseValue(field)
		}
		t.AppendRow(values)
	}

	for _, record := range pending {
		appendRecord(record)
	}
	for {
		record, err := readRecord(cr)
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // unparseable record, dropped
		}
		appendRecord(record)
	}

	return t, nil
}

// readRecord reads one CSV record, normalizing parse errors so the caller
// can distinguish end-of-input from a droppable record.
func readRecord(cr *csv.Reader) ([]string, error) {
	record, err := cr.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// uniqueNames disambiguates duplicate header names by suffixing an index,
// so "Sales,Sales" becomes "Sales,Sales_2".
func uniqueNames(names []string) []string {
	seen := make(map[string]int, len(names))
	out := make([]string, len(names))
	for i, name := range names {
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s_%d", name, n)
			seen[name]++
		}
		out[i] = name
	}
	return out
}
