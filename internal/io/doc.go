// Package ioutils provides file system and JSON output utilities.
//
// This package contains functions for:
//   - Checking whether the input file exists
//   - Reading and writing whole files
//   - Directory creation
//   - Encoding the converted items as human-readable JSON
//
// # File Operations
//
//	// Check the input first
//	ok, err := ioutils.Exists("vinyl-cd-tracker-data.json")
//
//	// Write data to file, creating parent directories
//	err := ioutils.WriteFile(ctx, "/path/to/converted_data.json", data)
//
// # JSON Output
//
// EncodeJSON indents the document and can restrict it to ASCII:
//
//	data, err := ioutils.EncodeJSON(items, "  ", true)
package ioutils
