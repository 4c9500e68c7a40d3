package validator

import (
	"encoding/json"
	"strconv"
)

// Truthy reports whether a decoded JSON value counts as present: null, false,
// zero, the empty string and empty arrays or objects do not.
func Truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case json.Number:
		f, err := v.Float64()

		return err != nil || f != 0
	case float64:
		return v != 0
	case int:
		return v != 0
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}

// Text returns the text form of a truthy JSON value and an empty string for
// anything Truthy rejects.
func Text(value any) string {
	if !Truthy(value) {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		body, err := json.Marshal(v)
		if err != nil {
			return ""
		}

		return string(body)
	}
}
