// Package validate coerces loosely-typed request fields into domain values.
//
// Request bodies arrive as map[string]any decoded with json.Decoder.UseNumber,
// so a numeric field may show up as json.Number, float64, or a quoted string
// depending on the caller. The helpers here accept all three and reject
// anything that does not cleanly coerce.
package validate

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Error is a single-field validation failure carrying the stable wire code.
type Error struct {
	Field   string
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Missing builds the error for a required field that was not supplied.
func Missing(field, code string) *Error {
	return &Error{Field: field, Code: code, Message: field + " is required"}
}

// Invalid builds the error for a supplied field that failed coercion.
func Invalid(field, code, message string) *Error {
	return &Error{Field: field, Code: code, Message: message}
}

// String coerces v to a trimmed non-empty string. Whitespace-only input
// counts as empty.
func String(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}

// Float coerces v to a finite float64. NaN and infinities are rejected, as
// are non-numeric strings.
func Float(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Int coerces v to an integer. Fractional values are rejected rather than
// truncated.
func Int(v any) (int, bool) {
	f, ok := Float(v)
	if !ok {
		return 0, false
	}
	if f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
