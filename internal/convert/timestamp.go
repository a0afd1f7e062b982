package convert

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ParseTimestamp converts a raw export id into an added-at timestamp.
//
// ParseTimestamp never fails. The id is read as a floating point number
// and truncated toward zero; anything that cannot be read that way yields 0:
//   - absent or null ids
//   - strings that are not numbers, NaN or infinite
//   - values outside the int64 range
//   - objects and arrays
//
// Numeric strings may carry surrounding whitespace. Booleans count as 1 and 0.
//
// Example:
//
//	ParseTimestamp(json.RawMessage(`1700000000.9`))   // 1700000000
//	ParseTimestamp(json.RawMessage(`"1700000000"`))   // 1700000000
//	ParseTimestamp(json.RawMessage(`"not-a-number"`)) // 0
func ParseTimestamp(raw json.RawMessage) int64 {
	ts, _ := parseTimestamp(raw)
	return ts
}

// parseTimestamp is ParseTimestamp that also reports whether the id was usable.
func parseTimestamp(raw json.RawMessage) (int64, bool) {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 {
		return 0, false
	}

	var text string
	switch v[0] {
	case 't':
		return 1, true
	case 'f':
		return 0, true
	case 'n', '{', '[':
		return 0, false
	case '"':
		if err := json.Unmarshal(v, &text); err != nil {
			return 0, false
		}
		text = strings.TrimSpace(text)
		// ParseFloat accepts hex floats and digit separators the tracker never wrote
		if strings.ContainsAny(text, "xX_") {
			return 0, false
		}
	default:
		text = string(v)
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	f = math.Trunc(f)
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}

	return int64(f), true
}
