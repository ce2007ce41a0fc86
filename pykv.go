package tably

import (
	"regexp"
	"strings"
)

var (
	pythonKVPairRe = regexp.MustCompile(`\['([^']+)'\]\s*:\s*\['([^']+)'\]`)
	loosePairRe    = regexp.MustCompile(`(\w+)\s*:\s*\[?([^\],\[]+)\]?`)
)

// parsePythonKV extracts bracket-quoted ['key']: ['value'] pairs in input
// order. Consecutive pairs accumulate into one record; a key repeating
// within the record-in-progress starts a new one. When no bracket pairs
// match (the format was forced), a looser word: value pattern is tried, and
// failing that the whole text becomes a single value record.
func parsePythonKV(text string) (*Table, error) {
	t := NewTable()
	pairs := pythonKVPairRe.FindAllStringSubmatch(text, -1)
	if len(pairs) == 0 {
		pairs = loosePairRe.FindAllStringSubmatch(text, -1)
	}
	if len(pairs) == 0 {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			t.Append(Record{{Key: "value", Value: trimmed}})
		}
		return t, nil
	}
	var rec Record
	for _, m := range pairs {
		key := strings.TrimSpace(m[1])
		value := strings.Trim(strings.TrimSpace(m[2]), `'"`)
		if rec.Has(key) {
			t.Append(rec)
			rec = nil
		}
		rec = rec.set(key, value)
	}
	if len(rec) > 0 {
		t.Append(rec)
	}
	return t, nil
}
