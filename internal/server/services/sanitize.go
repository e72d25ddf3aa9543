package services

import (
	"encoding/json"
	"strconv"
)

// SanitizePayload filters a raw partial-update body: keys whose value is
// null or an empty string are dropped so they never reach the database as
// accidental blank writes. The caller decides what to do when nothing
// survives.
func SanitizePayload(payload map[string]any) map[string]any {
	cleaned := make(map[string]any, len(payload))
	for k, v := range payload {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		cleaned[k] = v
	}
	return cleaned
}

// coerceNumericText renders a JSON value as the decimal string form expected
// by text-encoded numeric columns. Strings pass through untouched.
func coerceNumericText(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case json.Number:
		return value.String()
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	default:
		return ""
	}
}
