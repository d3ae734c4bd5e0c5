package table

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseValue converts a raw CSV field into a typed cell value.
// Empty fields become nil, numeric fields float64, true/false bool,
// everything else stays a string.
func ParseValue(field string) any {
	s := strings.TrimSpace(field)
	if s == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}

// ToFloat64 converts a cell value to float64.
// Supports float and integer types; everything else reports false.
func ToFloat64(v any) (float64, bool) {
	switch f := v.(type) {
	case float64:
		return f, true
	case float32:
		return float64(f), true
	case int:
		return float64(f), true
	case int64:
		return float64(f), true
	case int32:
		return float64(f), true
	case int16:
		return float64(f), true
	case int8:
		return float64(f), true
	case uint:
		return float64(f), true
	case uint64:
		return float64(f), true
	case uint32:
		return float64(f), true
	case uint16:
		return float64(f), true
	case uint8:
		return float64(f), true
	default:
		return 0, false
	}
}

// FormatValue renders a cell value as a string for keys and display.
// Nil renders as the empty string.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
