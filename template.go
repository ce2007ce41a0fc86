package tably

import (
	"fmt"
	"io"
	"text/template"
)

// WriteTemplate renders each record through a Go text/template, one line
// per record. The template executes against a map from column name to
// value, so dotted column names need the index function:
//
//	{{.name}}: {{index . "user.id"}}
func WriteTemplate(w io.Writer, tmplStr string, t *Table) error {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	cols := t.Columns()
	for _, row := range t.Rows() {
		m := make(map[string]string, len(cols))
		for i, col := range cols {
			m[col] = row[i]
		}
		if err := tmpl.Execute(w, m); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
