package tably

import "strings"

// parseKV turns each non-blank line into a two-column key/value record,
// splitting on the first occurrence of ':' or '=', whichever comes first.
// Lines without a separator are skipped.
func parseKV(text string) (*Table, error) {
	t := NewTable()
	for _, line := range nonBlankLines(text) {
		i := strings.IndexAny(line, ":=")
		if i < 0 {
			t.skip()
			continue
		}
		t.Append(Record{
			{Key: "key", Value: strings.TrimSpace(line[:i])},
			{Key: "value", Value: strings.TrimSpace(line[i+1:])},
		})
	}
	return t, nil
}
