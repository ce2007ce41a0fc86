package tably

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// parseDelimited reads delimiter-separated text. The first row supplies the
// column names unless noHeader is set, in which case columns are named
// c1..cN and every row is data. Rows whose field count differs from the
// header are skipped.
func parseDelimited(text string, comma rune, noHeader bool) (*Table, error) {
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
	data := rows[1:]
	if noHeader {
		header = make([]string, len(rows[0]))
		for i := range header {
			header[i] = fmt.Sprintf("c%d", i+1)
		}
		data = rows
	}
	for _, col := range header {
		t.addColumn(col)
	}
	for _, row := range data {
		if len(row) != len(header) {
			t.skip()
			continue
		}
		rec := make(Record, 0, len(header))
		for i, col := range header {
			rec = append(rec, KeyValue{Key: col, Value: row[i]})
		}
		t.Append(rec)
	}
	return t, nil
}
