package tably

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Style controls the preview rendering.
type Style int

const (
	StylePlain Style = iota
	StyleRounded
	StyleASCII
	StyleMarkdown
)

// previewMaxCellWidth caps column widths; longer cells truncate with "...".
const previewMaxCellWidth = 40

// ParseStyle parses a preview style name. The empty string means plain.
func ParseStyle(s string) (Style, error) {
	switch s {
	case "", "plain":
		return StylePlain, nil
	case "rounded":
		return StyleRounded, nil
	case "ascii":
		return StyleASCII, nil
	case "markdown":
		return StyleMarkdown, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedStyle, s)
	}
}

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[Style]borderChars{
	StyleRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	StyleASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
}

// WritePreview renders a human-readable, column-aligned view of the table,
// limited to limit rows (no limit when limit <= 0), followed by a summary
// trailer. An empty table renders "(empty table)".
func WritePreview(w io.Writer, t *Table, limit int, style Style) error {
	if t.Empty() {
		_, err := fmt.Fprintln(w, "(empty table)")
		return err
	}
	cols := t.Columns()
	all := t.Rows()
	rows := all
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	var err error
	switch style {
	case StyleMarkdown:
		err = writeMarkdownTable(w, cols, rows)
	case StyleRounded, StyleASCII:
		err = writeBorderedPreview(w, cols, rows, borderSets[style])
	default:
		err = writePlainPreview(w, cols, rows)
	}
	if err != nil {
		return err
	}

	if len(all) > len(rows) {
		if _, err := fmt.Fprintf(w, "... and %d more rows\n", len(all)-len(rows)); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "\nTotal: %d columns, %d rows\n", len(cols), len(all))
	return err
}

func writePlainPreview(w io.Writer, cols []string, rows [][]string) error {
	widths := previewWidths(cols, rows)
	if err := writePreviewRow(w, cols, widths, " | "); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintln(w, strings.Join(sep, "-+-")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writePreviewRow(w, row, widths, " | "); err != nil {
			return err
		}
	}
	return nil
}

func writeBorderedPreview(w io.Writer, cols []string, rows [][]string, bc borderChars) error {
	widths := previewWidths(cols, rows)
	if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}
	if err := drawBorderedRow(w, cols, widths, bc.vertical); err != nil {
		return err
	}
	if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
		return err
	}
	for _, row := range rows {
		if err := drawBorderedRow(w, row, widths, bc.vertical); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

func writePreviewRow(w io.Writer, cells []string, widths []int, sep string) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = formatPreviewCell(cell, width)
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, sep), " "))
	return err
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBorderedRow(w io.Writer, cells []string, widths []int, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(" ")
		sb.WriteString(formatPreviewCell(cell, width))
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

// previewWidths computes per-column display widths over the header and the
// previewed rows, capped at previewMaxCellWidth.
func previewWidths(cols []string, rows [][]string) []int {
	widths := make([]int, len(cols))
	for i, col := range cols {
		widths[i] = runewidth.StringWidth(col)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] > previewMaxCellWidth {
			widths[i] = previewMaxCellWidth
		}
	}
	return widths
}

// formatPreviewCell truncates and left-pads a cell to width.
func formatPreviewCell(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		if width <= 3 {
			s = runewidth.Truncate(s, width, "")
		} else {
			s = runewidth.Truncate(s, width, "...")
		}
	}
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
