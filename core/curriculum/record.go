package curriculum

import (
	"fmt"
	"strings"
)

// Record is one loosely-typed lesson mapping as hand-authored by content
// editors. Any subset of the recognized field names may be present;
// unrecognized fields are ignored. Records are read-only inputs: accessors
// never mutate them.
type Record map[string]interface{}

// text returns the value at key rendered as display text. Strings are
// returned as-is, numeric and boolean scalars are stringified (hand-authored
// content routinely carries bare numbers). Missing, empty, nil and composite
// values report false.
func (r Record) text(key string) (string, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		if t == "" {
			return "", false
		}
		return t, true
	case bool, int, int64, uint64, float32:
		return fmt.Sprintf("%v", t), true
	case float64:
		// YAML/JSON hand off whole numbers as float64; keep "7" over "7e+00"
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t)), true
		}
		return fmt.Sprintf("%v", t), true
	}
	return "", false
}

// list returns the value at key when it is an array.
func (r Record) list(key string) ([]interface{}, bool) {
	v, ok := r[key]
	if !ok {
		return nil, false
	}
	l, ok := v.([]interface{})
	return l, ok
}

// texts returns the value at key when it is an array, with each scalar
// element rendered as text. Non-scalar elements are skipped.
func (r Record) texts(key string) ([]string, bool) {
	l, ok := r.list(key)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(l))
	for _, item := range l {
		if s, ok := asText(item); ok {
			out = append(out, s)
		}
	}
	return out, true
}

// records returns the value at key when it is an array, keeping only the
// object elements.
func (r Record) records(key string) ([]Record, bool) {
	l, ok := r.list(key)
	if !ok {
		return nil, false
	}
	out := make([]Record, 0, len(l))
	for _, item := range l {
		if rec, ok := asRecord(item); ok {
			out = append(out, rec)
		}
	}
	return out, true
}

// object returns the value at key when it is a non-array object.
func (r Record) object(key string) (Record, bool) {
	v, ok := r[key]
	if !ok {
		return nil, false
	}
	return asRecord(v)
}

func asRecord(v interface{}) (Record, bool) {
	switch t := v.(type) {
	case Record:
		return t, true
	case map[string]interface{}:
		return Record(t), true
	}
	return nil, false
}

func asText(v interface{}) (string, bool) {
	return Record{"v": v}.text("v")
}

// renderValue renders an arbitrary field value for key/value display:
// strings as-is, arrays joined by comma, anything else serialized.
func renderValue(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case []interface{}:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, renderValue(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", t)
	}
}
