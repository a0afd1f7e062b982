package ioutils

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Exists reports whether a file exists at path.
//
// Only a "does not exist" error is reported as false; any other stat
// failure, such as a permission error on a parent directory, is returned.
//
// Example:
//
//	ok, err := Exists("vinyl-cd-tracker-data.json")
//	if err == nil && !ok {
//	    fmt.Println("File not found")
//	}
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// ReadFile reads a whole file.
//
// Returns ctx.Err() without touching the file system if ctx is already done.
func ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing. Missing parent directories are created.
// Returns ctx.Err() without writing if ctx is already done.
//
// Example:
//
//	err := WriteFile(ctx, "out/converted_data.json", data)
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
