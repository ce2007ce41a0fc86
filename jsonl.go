package tably

import "encoding/json"

// parseJSONL treats each non-blank line as one JSON value. Lines that fail
// to parse are skipped, not fatal.
func parseJSONL(text string) (*Table, error) {
	t := NewTable()
	for _, line := range nonBlankLines(text) {
		data := []byte(line)
		if !json.Valid(data) {
			t.skip()
			continue
		}
		switch line[0] {
		case '{':
			rec, err := flattenObject(data, "", nil)
			if err != nil {
				t.skip()
				continue
			}
			t.Append(rec)
		case '[':
			t.Append(Record{{Key: "value", Value: arrayValueString(data)}})
		default:
			s, ok := jsonScalarString(line)
			if !ok {
				t.skip()
				continue
			}
			t.Append(Record{{Key: "value", Value: s}})
		}
	}
	return t, nil
}
