package tably

import (
	"regexp"
	"strings"
)

var listMarkerRe = regexp.MustCompile(`^([-*•]\s+|\d+\.\s+|\[[ xX]\]\s+)`)

// parseList strips the bullet, ordinal, or checkbox marker from each
// non-blank line and keeps the remainder as a single "item" column. Lines
// without a marker pass through unchanged.
func parseList(text string) (*Table, error) {
	t := NewTable()
	for _, line := range nonBlankLines(text) {
		item := strings.TrimSpace(listMarkerRe.ReplaceAllString(line, ""))
		if item == "" {
			continue
		}
		t.Append(Record{{Key: "item", Value: item}})
	}
	return t, nil
}
