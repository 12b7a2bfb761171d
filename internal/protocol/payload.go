package protocol

// Payload field accessors. Payloads arrive as generic decoded JSON, so
// numbers show up as float64 and missing keys must fall back to defaults.

// StringField returns the string value at key, or empty when absent or not
// a string.
func StringField(payload map[string]any, key string) string {
	s, _ := payload[key].(string)
	return s
}

// IntField returns the integer value at key, or def when absent or not a
// number.
func IntField(payload map[string]any, key string, def int) int {
	switch v := payload[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	default:
		return def
	}
}

// FloatField returns the float value at key, or 0 when absent or not a
// number.
func FloatField(payload map[string]any, key string) float64 {
	switch v := payload[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// SliceField returns the list value at key, or nil when absent.
func SliceField(payload map[string]any, key string) []any {
	s, _ := payload[key].([]any)
	return s
}

// MapField returns the object value at key, or nil when absent.
func MapField(payload map[string]any, key string) map[string]any {
	m, _ := payload[key].(map[string]any)
	return m
}
