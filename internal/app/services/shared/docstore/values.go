package docstore

import (
	"strings"
	"time"
)

type timeConvertible interface {
	Time() time.Time
}

func normalizeValue(v interface{}) interface{} {
	switch t := v.(type) {
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case float32:
		return float64(t)
	case *time.Time:
		if t == nil {
			return nil
		}
		return *t
	case time.Time:
		return t
	case timeConvertible:
		return t.Time()
	default:
		return v
	}
}

// compareValues orders two field values of the same kind. ok is false when the
// values cannot be compared.
func compareValues(a, b interface{}) (result int, ok bool) {
	a, b = normalizeValue(a), normalizeValue(b)

	switch x := a.(type) {
	case string:
		y, isString := b.(string)
		if !isString {
			return 0, false
		}
		return strings.Compare(x, y), true
	case float64:
		y, isNumber := b.(float64)
		if !isNumber {
			return 0, false
		}
		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		}
		return 0, true
	case time.Time:
		y, isTime := b.(time.Time)
		if !isTime {
			return 0, false
		}
		return x.Compare(y), true
	case bool:
		y, isBool := b.(bool)
		if !isBool {
			return 0, false
		}
		switch {
		case x == y:
			return 0, true
		case !x:
			return -1, true
		}
		return 1, true
	}
	return 0, false
}

func valuesEqual(a, b interface{}) bool {
	if result, ok := compareValues(a, b); ok {
		return result == 0
	}
	return a == nil && b == nil
}

func toSlice(v interface{}) ([]interface{}, bool) {
	switch t := v.(type) {
	case []interface{}:
		return t, true
	case []string:
		result := make([]interface{}, len(t))
		for i, s := range t {
			result[i] = s
		}
		return result, true
	}
	return nil, false
}
