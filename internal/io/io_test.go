package ioutils

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0644))

	ok, err := Exists(path)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Exists(filepath.Join(dir, "missing.json"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWriteFile_CreatesParentsAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.json")

	require.NoError(t, WriteFile(context.Background(), path, []byte("first, longer content")))
	require.NoError(t, WriteFile(context.Background(), path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestWriteFile_CancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WriteFile(ctx, path, []byte("data"))
	assert.ErrorIs(t, err, context.Canceled)

	ok, err := Exists(path)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReadFile_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadFile(ctx, "does-not-matter.json")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEncodeJSON(t *testing.T) {
	type entry struct {
		Name  string   `json:"name"`
		Items []string `json:"items"`
	}
	v := []entry{{Name: "Simon & Garfunkel <live>", Items: []string{}}}

	tests := []struct {
		name      string
		indent    string
		asciiOnly bool
		want      string
	}{
		{
			name:   "two space indent",
			indent: "  ",
			want:   "[\n  {\n    \"name\": \"Simon & Garfunkel <live>\",\n    \"items\": []\n  }\n]\n",
		},
		{
			name: "compact",
			want: "[{\"name\":\"Simon & Garfunkel <live>\",\"items\":[]}]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeJSON(v, tt.indent, tt.asciiOnly)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestEncodeJSON_ASCIIOnly(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		asciiOnly bool
		want      string
	}{
		{name: "latin", input: "Björk", asciiOnly: true, want: "\"Bj\\u00f6rk\"\n"},
		{name: "cjk", input: "坂本龍一", asciiOnly: true, want: "\"\\u5742\\u672c\\u9f8d\\u4e00\"\n"},
		{name: "astral", input: "🎵", asciiOnly: true, want: "\"\\ud83c\\udfb5\"\n"},
		{name: "plain ascii", input: "Abba", asciiOnly: true, want: "\"Abba\"\n"},
		{name: "utf-8 kept", input: "Björk", asciiOnly: false, want: "\"Björk\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeJSON(tt.input, "  ", tt.asciiOnly)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}
