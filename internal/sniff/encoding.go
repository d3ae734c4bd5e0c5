package sniff

import (
	"fmt"
	"io"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// sampleSize is the number of leading bytes inspected for encoding detection.
const sampleSize = 10000

// detectEncoding guesses the character encoding of a byte sample using a
// statistical detector. UTF-8 variants are normalized to "utf-8"; the
// decoder strips a byte-order mark if present. An inconclusive sample
// (e.g. an empty file) falls back to utf-8.
func detectEncoding(sample []byte) string {
	result, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil || result.Charset == "" {
		return "utf-8"
	}

	name := strings.ToLower(result.Charset)
	if strings.HasPrefix(name, "utf-8") {
		return "utf-8"
	}
	return name
}

// encodingFor resolves an encoding name to a decoder. UTF-8 and UTF-16 are
// special-cased for BOM handling; everything else goes through the IANA index.
func encodingFor(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "utf-8", "utf-8-sig", "":
		return unicode.UTF8BOM, nil
	case "utf-16", "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return enc, nil
}

// NewReader wraps r with a decoder that converts text in the named encoding
// to UTF-8, stripping a leading byte-order mark where applicable.
func NewReader(r io.Reader, encodingName string) (io.Reader, error) {
	enc, err := encodingFor(encodingName)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
