package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/bjaus/tably"
)

// writeInspect emits the resolved format and schema as human-readable text
// instead of table output.
func writeInspect(w io.Writer, f tably.Format, t *tably.Table) error {
	cols := t.Columns()
	if _, err := fmt.Fprintf(w, "Format: %s\n", f); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Columns (%d): %s\n", len(cols), strings.Join(cols, ", ")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Rows: %d\n", t.Len()); err != nil {
		return err
	}
	if rows := t.Rows(); len(rows) > 0 {
		if _, err := fmt.Fprintf(w, "Sample row: %s\n", strings.Join(rows[0], ", ")); err != nil {
			return err
		}
	}
	return nil
}
