package tably

import (
	"fmt"
	"strings"
)

type options struct {
	noHeader bool
}

// Option adjusts parsing behavior.
type Option func(*options)

// NoHeader treats the first row of delimited input as data rather than
// column names. Columns are named c1..cN. Other formats ignore it.
func NoHeader() Option {
	return func(o *options) { o.noHeader = true }
}

// Resolve returns the concrete format Parse will use for text: [Auto]
// detects, [JSON] classifies into one of its three variants, and anything
// else passes through unchanged. Whitespace-only input resolves to [Empty]
// regardless of the requested format.
func Resolve(text string, f Format) Format {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Empty
	}
	switch f {
	case Auto:
		return Detect(text)
	case JSON:
		if g, ok := classifyJSON(trimmed); ok {
			return g
		}
		return JSON
	default:
		return f
	}
}

// Parse normalizes text under the given format tag into a table. [Auto]
// runs detection first. Ambiguous input is never an error; only input that
// contradicts a forced format (e.g. forcing json on non-JSON text) fails.
func Parse(text string, f Format, opts ...Option) (*Table, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return NewTable(), nil
	}
	switch f {
	case Auto:
		return Parse(text, Detect(text), opts...)
	case JSON:
		g, ok := classifyJSON(trimmed)
		if !ok {
			return nil, fmt.Errorf("%w: not a JSON array or object", ErrInvalidJSON)
		}
		return Parse(text, g, opts...)
	case Empty:
		return NewTable(), nil
	case JSONArrayObjects:
		return parseJSONArrayObjects(text)
	case JSONArray:
		return parseJSONArray(text)
	case JSONObject:
		return parseJSONObject(text)
	case JSONL:
		return parseJSONL(text)
	case PythonKV:
		return parsePythonKV(text)
	case KV:
		return parseKV(text)
	case List:
		return parseList(text)
	case CSV, TSV, PSV, SSV:
		d, _ := f.delimiter()
		return parseDelimited(text, d, o.noHeader)
	case Lines:
		return parseLines(text)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
