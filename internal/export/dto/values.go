package dto

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/handiism/tracker-convert/internal/model"
)

// Truthy reports whether a raw JSON value counts as set.
//
// The export was written by a tool that treats these values as unset:
// absent, null, false, 0 (in any numeric spelling), "", [] and {}.
// Everything else is set.
func Truthy(raw json.RawMessage) bool {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 {
		return false
	}

	switch v[0] {
	case 'n', 'f':
		return false
	case 't':
		return true
	case '"':
		return len(v) > len(`""`)
	case '[', '{':
		return len(bytes.TrimSpace(v[1:len(v)-1])) > 0
	default:
		f, err := strconv.ParseFloat(string(v), 64)
		// Out of range numbers are huge, not zero
		return err != nil || f != 0
	}
}

// String returns the raw value as a string if it is a JSON string.
func String(raw json.RawMessage) (string, bool) {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 || v[0] != '"' {
		return "", false
	}

	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", false
	}
	return s, true
}

// StringList returns the string elements of a JSON array.
//
// Non-string elements are skipped. Anything other than an array yields an
// empty list.
func StringList(raw json.RawMessage) []string {
	out := []string{}

	v := bytes.TrimSpace(raw)
	if len(v) == 0 || v[0] != '[' {
		return out
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(v, &elems); err != nil {
		return out
	}

	for _, e := range elems {
		if s, ok := String(e); ok {
			out = append(out, s)
		}
	}
	return out
}

// Artists normalizes the albumArtists value.
//
// A single string becomes a one-element list, an array keeps its string
// elements and anything else becomes an empty list.
func Artists(raw json.RawMessage) []string {
	if s, ok := String(raw); ok {
		return []string{s}
	}
	return StringList(raw)
}

// FormatFlags decodes the "types" mapping, keeping the export's key order.
//
// A key that appears more than once keeps its first position and its last
// value. A value that is not an object yields no flags.
func FormatFlags(raw json.RawMessage) []model.FormatFlag {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 || v[0] != '{' {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(v))
	if _, err := dec.Token(); err != nil {
		return nil
	}

	var flags []model.FormatFlag
	seen := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return flags
		}
		key, ok := tok.(string)
		if !ok {
			return flags
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return flags
		}

		set := Truthy(value)
		if i, dup := seen[key]; dup {
			flags[i].Set = set
			continue
		}
		seen[key] = len(flags)
		flags = append(flags, model.FormatFlag{Key: key, Set: set})
	}

	return flags
}
