package tably

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
)

var cellItemRe = regexp.MustCompile(`'([^']+)'|"([^"]+)"|([^,\[\]'"]+)`)

// SplitArrayString splits an array-like cell value into its elements.
// Handles JSON arrays (["a", "b"]), single-quoted lists (['a', 'b']),
// loosely bracketed text ([a, b]), and bare comma-separated values. A value
// with no list structure comes back as a single element.
func SplitArrayString(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if strings.HasPrefix(value, "[") {
		if items, ok := jsonArrayItems(value); ok {
			return items
		}
		if items, ok := jsonArrayItems(strings.ReplaceAll(value, "'", `"`)); ok {
			return items
		}
		inner := strings.TrimPrefix(value, "[")
		inner = strings.TrimSuffix(inner, "]")
		var items []string
		for _, m := range cellItemRe.FindAllStringSubmatch(inner, -1) {
			item := m[1]
			if item == "" {
				item = m[2]
			}
			if item == "" {
				item = m[3]
			}
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		if len(items) > 0 {
			return items
		}
	}
	if strings.Contains(value, ",") {
		var items []string
		for _, part := range strings.Split(value, ",") {
			if p := strings.TrimSpace(part); p != "" {
				items = append(items, p)
			}
		}
		return items
	}
	return []string{value}
}

func jsonArrayItems(s string) ([]string, bool) {
	data := []byte(s)
	if !json.Valid(data) {
		return nil, false
	}
	var items []string
	if _, err := jsonparser.ArrayEach(data, func(value []byte, dt jsonparser.ValueType, _ int, _ error) {
		items = append(items, rawValueString(value, dt))
	}); err != nil {
		return nil, false
	}
	return items, true
}

// ExtractColumn reads delimited text, locates the named column in the
// header (exact match first, then case-insensitive), and expands each row's
// array-literal cell into one record per element. Records carry the
// 1-based source row number and the element value.
func ExtractColumn(text, column string, comma rune) (*Table, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading delimited input: %w", err)
	}
	t := NewTable()
	if len(rows) == 0 {
		return t, nil
	}
	header := rows[0]
	idx := -1
	for i, h := range header {
		if h == column {
			idx = i
			break
		}
	}
	if idx < 0 {
		for i, h := range header {
			if strings.EqualFold(h, column) {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrColumnNotFound, column, strings.Join(header, ", "))
	}
	t.addColumn("row")
	t.addColumn("value")
	for n, row := range rows[1:] {
		if idx >= len(row) {
			t.skip()
			continue
		}
		for _, item := range SplitArrayString(row[idx]) {
			t.Append(Record{
				{Key: "row", Value: strconv.Itoa(n + 1)},
				{Key: "value", Value: item},
			})
		}
	}
	return t, nil
}
