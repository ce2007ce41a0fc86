package tably

import (
	"encoding/csv"
	"io"
)

// WriteCSV writes the table as CSV: a header row with the unified column
// order followed by one row per record. An empty table writes nothing.
func WriteCSV(w io.Writer, t *Table) error {
	if t.Empty() {
		return nil
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns()); err != nil {
		return err
	}
	for _, row := range t.Rows() {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
