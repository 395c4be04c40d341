// Package fields reads loosely typed document fields the way the mobile app
// writes them.
package fields

import (
	"fmt"
	"time"
)

// Truthy treats missing, null, false, zero, empty string and zero time as unset
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	case time.Time:
		return !t.IsZero()
	default:
		return true
	}
}

// String returns the field as text; non-string scalars are formatted
func String(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Time returns the field when it is a non-zero timestamp
func Time(m map[string]any, key string) *time.Time {
	if t, ok := m[key].(time.Time); ok && !t.IsZero() {
		return &t
	}
	return nil
}

// Bool is true only for a stored boolean true
func Bool(m map[string]any, key string) bool {
	b, ok := m[key].(bool)
	return ok && b
}

// Has reports key presence, including explicit nulls
func Has(m map[string]any, key string) bool {
	_, ok := m[key]
	return ok
}

// Strings returns nil when v is not an array; non-string entries are skipped
func Strings(v any) []string {
	var items []any
	switch t := v.(type) {
	case []any:
		items = t
	case []string:
		return append([]string{}, t...)
	default:
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
