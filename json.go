package tably

import (
	"fmt"
	"strings"

	"github.com/buger/jsonparser"
)

func parseJSONArrayObjects(text string) (*Table, error) {
	t := NewTable()
	data := []byte(strings.TrimSpace(text))
	var inner error
	if _, err := jsonparser.ArrayEach(data, func(value []byte, dt jsonparser.ValueType, _ int, cbErr error) {
		if inner != nil {
			return
		}
		if cbErr != nil {
			inner = cbErr
			return
		}
		rec, err := flattenElement(value, dt)
		if err != nil {
			inner = err
			return
		}
		t.Append(rec)
	}); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidJSON, err)
	}
	if inner != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidJSON, inner)
	}
	return t, nil
}

func parseJSONArray(text string) (*Table, error) {
	t := NewTable()
	data := []byte(strings.TrimSpace(text))
	if _, err := jsonparser.ArrayEach(data, func(value []byte, dt jsonparser.ValueType, _ int, _ error) {
		t.Append(Record{{Key: "value", Value: rawValueString(value, dt)}})
	}); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidJSON, err)
	}
	return t, nil
}

// parseJSONObject renders a single object as a two-column key/value table,
// one record per top-level key in document order. Nested values keep their
// raw JSON text; this tag does not flatten.
func parseJSONObject(text string) (*Table, error) {
	t := NewTable()
	data := []byte(strings.TrimSpace(text))
	if err := jsonparser.ObjectEach(data, func(key, value []byte, dt jsonparser.ValueType, _ int) error {
		t.Append(Record{
			{Key: "key", Value: keyString(key)},
			{Key: "value", Value: rawValueString(value, dt)},
		})
		return nil
	}); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidJSON, err)
	}
	return t, nil
}
