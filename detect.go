package tably

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/buger/jsonparser"
)

// Detection inspects a bounded prefix of the line set for efficiency.
const (
	jsonlSampleLines = 20
	delimSampleLines = 10
)

var (
	pythonKVRe = regexp.MustCompile(`\['[^']+'\]\s*:\s*\['[^']+'\]`)
	kvLineRe   = regexp.MustCompile(`^[^:=]+[:=].+`)
	listLineRe = regexp.MustCompile(`^([-*•]\s+|\d+\.\s+|\[[ xX]\]\s+)`)
)

// delimiterOrder fixes the precedence among delimited sub-tags.
var delimiterOrder = []struct {
	delim  string
	format Format
}{
	{"\t", TSV},
	{",", CSV},
	{"|", PSV},
	{";", SSV},
}

// Detect classifies raw text into a concrete format. The tests run in a
// fixed priority order and the first satisfied test wins, so classification
// is deterministic even when several formats would match. Detection never
// fails: plain lines is the fallback.
func Detect(text string) Format {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Empty
	}
	if f, ok := classifyJSON(trimmed); ok {
		return f
	}
	lines := nonBlankLines(text)
	if isJSONLines(lines) {
		return JSONL
	}
	if pythonKVRe.MatchString(text) {
		return PythonKV
	}
	if matchRatio(lines, kvLineRe) >= 0.5 {
		return KV
	}
	if matchRatio(lines, listLineRe) >= 0.5 {
		return List
	}
	if f, ok := detectDelimited(lines); ok {
		return f
	}
	return Lines
}

// classifyJSON classifies whole-input JSON. Valid JSON with a scalar at the
// top level reports no match so the line-oriented tests get their turn.
func classifyJSON(trimmed string) (Format, bool) {
	data := []byte(trimmed)
	if !json.Valid(data) {
		return "", false
	}
	switch trimmed[0] {
	case '[':
		allObjects := true
		if _, err := jsonparser.ArrayEach(data, func(_ []byte, dt jsonparser.ValueType, _ int, _ error) {
			if dt != jsonparser.Object {
				allObjects = false
			}
		}); err != nil {
			return "", false
		}
		if allObjects {
			return JSONArrayObjects, true
		}
		return JSONArray, true
	case '{':
		return JSONObject, true
	default:
		return "", false
	}
}

func isJSONLines(lines []string) bool {
	if len(lines) == 0 {
		return false
	}
	sample := lines
	if len(sample) > jsonlSampleLines {
		sample = sample[:jsonlSampleLines]
	}
	for _, line := range sample {
		if !json.Valid([]byte(line)) {
			return false
		}
	}
	return true
}

func matchRatio(lines []string, re *regexp.Regexp) float64 {
	if len(lines) == 0 {
		return 0
	}
	n := 0
	for _, line := range lines {
		if re.MatchString(line) {
			n++
		}
	}
	return float64(n) / float64(len(lines))
}

// detectDelimited looks for a delimiter whose per-line count is consistent
// (within one) and non-zero across the sampled lines.
func detectDelimited(lines []string) (Format, bool) {
	sample := lines
	if len(sample) > delimSampleLines {
		sample = sample[:delimSampleLines]
	}
	for _, d := range delimiterOrder {
		minCount, maxCount := -1, 0
		for _, line := range sample {
			n := strings.Count(line, d.delim)
			if minCount < 0 || n < minCount {
				minCount = n
			}
			if n > maxCount {
				maxCount = n
			}
		}
		if minCount > 0 && maxCount-minCount <= 1 {
			return d.format, true
		}
	}
	return "", false
}

// nonBlankLines splits text into trimmed, non-blank lines.
func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
