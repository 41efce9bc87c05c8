package eval

import (
	"math"
	"strconv"
)

// Format renders a number for display. Floats use the shortest decimal
// that parses back to the same value, so 7.0 is "7" and 0.1 is "0.1".
// Infinities and NaN are spelled "inf", "-inf" and "NaN".
func Format[T Number](v T) string {
	switch x := any(v).(type) {
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		switch {
		case math.IsNaN(x):
			return "NaN"
		case math.IsInf(x, 1):
			return "inf"
		case math.IsInf(x, -1):
			return "-inf"
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return ""
}
