package tably

import (
	"regexp"
	"testing"

	"github.com/buger/jsonparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSetKeepsPosition(t *testing.T) {
	t.Parallel()
	rec := Record{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}
	rec = rec.set("a", "updated")
	assert.Equal(t, Record{{Key: "a", Value: "updated"}, {Key: "b", Value: "2"}}, rec)
}

func TestRecordSetAppendsNewKey(t *testing.T) {
	t.Parallel()
	rec := Record{{Key: "a", Value: "1"}}
	rec = rec.set("b", "2")
	assert.Equal(t, Record{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}, rec)
}

func TestRecordGetLastWins(t *testing.T) {
	t.Parallel()
	rec := Record{{Key: "k", Value: "first"}, {Key: "k", Value: "second"}}
	v, ok := rec.Get("k")
	require.True(t, ok)
	assert.Equal(t, "second", v)
	_, ok = rec.Get("missing")
	assert.False(t, ok)
}

func TestTableAddColumnDeduplicates(t *testing.T) {
	t.Parallel()
	tbl := NewTable()
	tbl.addColumn("a")
	tbl.addColumn("b")
	tbl.addColumn("a")
	assert.Equal(t, []string{"a", "b"}, tbl.Columns())
}

func TestNonBlankLines(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  []string
	}{
		"simple":          {input: "a\nb", want: []string{"a", "b"}},
		"blanks dropped":  {input: "a\n\n  \nb\n", want: []string{"a", "b"}},
		"crlf trimmed":    {input: "a\r\nb\r\n", want: []string{"a", "b"}},
		"leading spaces":  {input: "  a  \n\tb", want: []string{"a", "b"}},
		"whitespace only": {input: " \n\t\n", want: nil},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, nonBlankLines(tt.input))
		})
	}
}

func TestMatchRatio(t *testing.T) {
	t.Parallel()
	re := regexp.MustCompile(`^x`)
	assert.Equal(t, 0.0, matchRatio(nil, re))
	assert.Equal(t, 0.5, matchRatio([]string{"x1", "y2"}, re))
	assert.Equal(t, 1.0, matchRatio([]string{"x1", "x2"}, re))
}

func TestDetectDelimited(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		lines  []string
		want   Format
		wantOK bool
	}{
		"consistent commas":  {lines: []string{"a,b", "1,2"}, want: CSV, wantOK: true},
		"tab beats comma":    {lines: []string{"a\tb,c", "1\t2,3"}, want: TSV, wantOK: true},
		"off by one allowed": {lines: []string{"a,b,c", "1,2"}, want: CSV, wantOK: true},
		"inconsistent":       {lines: []string{"a,b,c,d", "1,2", "plain"}, wantOK: false},
		"no delimiter":       {lines: []string{"alpha", "beta"}, wantOK: false},
		"semicolons":         {lines: []string{"a;b", "1;2"}, want: SSV, wantOK: true},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, ok := detectDelimited(tt.lines)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestScalarString(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value []byte
		dt    jsonparser.ValueType
		want  string
	}{
		"string":         {value: []byte("hello"), dt: jsonparser.String, want: "hello"},
		"escaped string": {value: []byte(`say \"hi\"`), dt: jsonparser.String, want: `say "hi"`},
		"number literal": {value: []byte("2.50"), dt: jsonparser.Number, want: "2.50"},
		"boolean":        {value: []byte("true"), dt: jsonparser.Boolean, want: "true"},
		"null":           {value: []byte("null"), dt: jsonparser.Null, want: ""},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, scalarString(tt.value, tt.dt))
		})
	}
}

func TestArrayValueString(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  string
	}{
		"scalars":       {input: `["a","b"]`, want: "a, b"},
		"numbers":       {input: `[1.50, 2]`, want: "1.50, 2"},
		"empty":         {input: `[]`, want: ""},
		"nested object": {input: `[{"a":1}]`, want: `[{"a":1}]`},
		"nested array":  {input: `[[1],[2]]`, want: `[[1],[2]]`},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, arrayValueString([]byte(tt.input)))
		})
	}
}

func TestJSONScalarString(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input  string
		want   string
		wantOK bool
	}{
		"integer": {input: "42", want: "42", wantOK: true},
		"decimal": {input: "2.50", want: "2.50", wantOK: true},
		"string":  {input: `"hi"`, want: "hi", wantOK: true},
		"bool":    {input: "false", want: "false", wantOK: true},
		"null":    {input: "null", want: "", wantOK: true},
		"garbage": {input: "nope", wantOK: false},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, ok := jsonScalarString(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatPreviewCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab   ", formatPreviewCell("ab", 5))
	assert.Equal(t, "ab", formatPreviewCell("ab", 2))
	assert.Equal(t, "a...", formatPreviewCell("abcdefgh", 4))
	assert.Equal(t, "abc", formatPreviewCell("abcdefgh", 3))
}
