package tably

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrUnsupportedStyle  = errors.New("unsupported style")
	ErrInvalidJSON       = errors.New("invalid json input")
	ErrInvalidTemplate   = errors.New("invalid template")
	ErrColumnNotFound    = errors.New("column not found")
)

// Format represents an input format tag.
type Format string

const (
	// Auto triggers detection; every other format bypasses it.
	Auto Format = "auto"

	// JSON is a meta tag resolved to one of the three concrete JSON
	// variants by classifying the whole input.
	JSON Format = "json"

	JSONArrayObjects Format = "json-array-objects"
	JSONArray        Format = "json-array"
	JSONObject       Format = "json-object"
	JSONL            Format = "jsonl"
	PythonKV         Format = "python-kv"
	KV               Format = "kv"
	List             Format = "list"
	CSV              Format = "csv"
	TSV              Format = "tsv"
	PSV              Format = "psv"
	SSV              Format = "ssv"
	Lines            Format = "lines"

	// Empty is the classification of whitespace-only input. It parses to a
	// table with zero columns and zero records.
	Empty Format = "empty"
)

var formats = []Format{Auto, JSON, JSONL, PythonKV, KV, List, CSV, TSV, PSV, SSV, Lines}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all format names selectable by a caller.
// The concrete JSON variants are not included because [JSON] resolves to
// them automatically.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string. Recognizes all selectable formats
// plus the concrete JSON variant tags produced by [Detect].
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	switch Format(s) {
	case JSONArrayObjects, JSONArray, JSONObject:
		return Format(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// delimiter returns the field delimiter for delimited formats.
func (f Format) delimiter() (rune, bool) {
	switch f {
	case CSV:
		return ',', true
	case TSV:
		return '\t', true
	case PSV:
		return '|', true
	case SSV:
		return ';', true
	default:
		return 0, false
	}
}
