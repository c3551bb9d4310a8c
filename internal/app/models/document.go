package models

import (
	"time"
)

// Document is a single record returned by a document store: its identifier
// plus the raw field mapping.
type Document struct {
	ID   string                 `json:"id"`
	Data map[string]interface{} `json:"data"`
}

type timeConvertible interface {
	Time() time.Time
}

func (d Document) value(field string) (interface{}, bool) {
	if d.Data == nil {
		return nil, false
	}
	v, ok := d.Data[field]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// String returns the field as a string, or "" when it is absent or not a string.
func (d Document) String(field string) string {
	v, ok := d.value(field)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Bool returns the field as a bool, false when absent.
func (d Document) Bool(field string) bool {
	v, ok := d.value(field)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// Time converts the field into an instant. Store-native timestamps exposing a
// Time() method and RFC3339 strings are accepted.
func (d Document) Time(field string) (time.Time, bool) {
	v, ok := d.value(field)
	if !ok {
		return time.Time{}, false
	}

	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, true
	case timeConvertible:
		return t.Time(), true
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, t)
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	default:
		return time.Time{}, false
	}
}

// Strings returns the string elements of an array field.
func (d Document) Strings(field string) []string {
	v, ok := d.value(field)
	if !ok {
		return nil
	}

	switch arr := v.(type) {
	case []string:
		return arr
	case []interface{}:
		result := make([]string, 0, len(arr))
		for _, item := range arr {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	default:
		return nil
	}
}
