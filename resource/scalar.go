package resource

import "strconv"

// ScalarKey converts a normalized scalar into its identity-key string form.
// Structured values and nil carry no usable identity and report false.
func ScalarKey(value Value) (string, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(typed), true
	default:
		return "", false
	}
}
