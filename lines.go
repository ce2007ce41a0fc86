package tably

// parseLines is the fallback parser: one record per non-blank line, a
// single column named "value".
func parseLines(text string) (*Table, error) {
	t := NewTable()
	for _, line := range nonBlankLines(text) {
		t.Append(Record{{Key: "value", Value: line}})
	}
	return t, nil
}
