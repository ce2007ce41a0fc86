package tably

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
)

// flattenObject folds a JSON object into rec, joining nested object keys
// with dots. Array values are not exploded into columns; they serialize to a
// single string. jsonparser walks the object in document order, which is
// what fixes the first-seen column order.
func flattenObject(data []byte, prefix string, rec Record) (Record, error) {
	err := jsonparser.ObjectEach(data, func(key, value []byte, dt jsonparser.ValueType, _ int) error {
		name := keyString(key)
		if prefix != "" {
			name = prefix + "." + name
		}
		switch dt {
		case jsonparser.Object:
			var ferr error
			rec, ferr = flattenObject(value, name, rec)
			return ferr
		case jsonparser.Array:
			rec = rec.set(name, arrayValueString(value))
		default:
			rec = rec.set(name, scalarString(value, dt))
		}
		return nil
	})
	return rec, err
}

// flattenElement converts one array element or JSONL entry into a record.
// Non-object elements become a single "value" column.
func flattenElement(value []byte, dt jsonparser.ValueType) (Record, error) {
	switch dt {
	case jsonparser.Object:
		return flattenObject(value, "", nil)
	case jsonparser.Array:
		return Record{{Key: "value", Value: arrayValueString(value)}}, nil
	default:
		return Record{{Key: "value", Value: scalarString(value, dt)}}, nil
	}
}

// scalarString renders a jsonparser scalar in its natural string form:
// strings unescaped, numbers and booleans as their input literal, null as
// the empty string.
func scalarString(value []byte, dt jsonparser.ValueType) string {
	switch dt {
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return string(value)
		}
		return s
	case jsonparser.Null:
		return ""
	default:
		return string(value)
	}
}

func keyString(key []byte) string {
	if s, err := jsonparser.ParseString(key); err == nil {
		return s
	}
	return string(key)
}

// arrayValueString serializes a JSON array used as a field value. A list of
// scalars joins with ", "; anything nested keeps its raw JSON text.
func arrayValueString(data []byte) string {
	var scalars []string
	allScalar := true
	if _, err := jsonparser.ArrayEach(data, func(value []byte, dt jsonparser.ValueType, _ int, _ error) {
		switch dt {
		case jsonparser.Object, jsonparser.Array:
			allScalar = false
		default:
			scalars = append(scalars, scalarString(value, dt))
		}
	}); err != nil {
		return string(data)
	}
	if allScalar {
		return strings.Join(scalars, ", ")
	}
	return string(data)
}

// rawValueString renders a top-level field value without flattening:
// objects and arrays keep their raw JSON text.
func rawValueString(value []byte, dt jsonparser.ValueType) string {
	switch dt {
	case jsonparser.Object, jsonparser.Array:
		return string(value)
	default:
		return scalarString(value, dt)
	}
}

// jsonScalarString decodes a standalone JSON scalar. Numbers keep their
// input literal via json.Number instead of round-tripping through float64.
func jsonScalarString(text string) (string, bool) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", false
	}
	switch vv := v.(type) {
	case nil:
		return "", true
	case bool:
		return strconv.FormatBool(vv), true
	case json.Number:
		return vv.String(), true
	case string:
		return vv, true
	default:
		return "", false
	}
}
