package ioutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// EncodeJSON encodes v as indented JSON.
//
// Unlike json.MarshalIndent, the characters <, > and & are written as-is.
// When asciiOnly is true every non-ASCII character is written as a \uXXXX
// escape, using a UTF-16 surrogate pair outside the Basic Multilingual
// Plane. An empty indent produces compact output.
//
// The output ends with a newline.
//
// Example:
//
//	data, _ := EncodeJSON([]string{"Björk"}, "  ", true)
//	// [
//	//   "Bj\u00f6rk"
//	// ]
func EncodeJSON(v any, indent string, asciiOnly bool) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	if !asciiOnly {
		return buf.Bytes(), nil
	}
	return escapeNonASCII(buf.Bytes()), nil
}

// escapeNonASCII rewrites every non-ASCII character as a JSON \u escape.
//
// Outside of strings valid JSON is pure ASCII, so the whole document can be
// rewritten without tracking string boundaries.
func escapeNonASCII(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for len(data) > 0 {
		c := data[0]
		if c < utf8.RuneSelf {
			out = append(out, c)
			data = data[1:]
			continue
		}

		r, size := utf8.DecodeRune(data)
		data = data[size:]
		if r >= 0x10000 {
			hi, lo := utf16.EncodeRune(r)
			out = fmt.Appendf(out, `\u%04x\u%04x`, hi, lo)
			continue
		}
		out = fmt.Appendf(out, `\u%04x`, r)
	}
	return out
}
