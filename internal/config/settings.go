package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvInput     = "TRACKER_CONVERT_INPUT"
	EnvOutput    = "TRACKER_CONVERT_OUTPUT"
	EnvIndent    = "TRACKER_CONVERT_INDENT"
	EnvASCIIOnly = "TRACKER_CONVERT_ASCII_ONLY"
)

// Settings holds all configuration options.
type Settings struct {
	// File settings
	InputPath  string `json:"input_path" yaml:"input_path"`
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Output formatting
	Indent    string `json:"indent" yaml:"indent"`
	ASCIIOnly bool   `json:"ascii_only" yaml:"ascii_only"`

	// Run mode
	DryRun bool `json:"dry_run" yaml:"dry_run"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		InputPath:  "vinyl-cd-tracker-data.json",
		OutputPath: "converted_data.json",

		Indent:    "  ",
		ASCIIOnly: true,

		DryRun: false,
	}
}

// Load reads settings from a JSON or YAML file.
//
// Files ending in .yaml or .yml are read as YAML, everything else as JSON.
// Keys missing from the file keep their default values.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if isYAML(path) {
		err = yaml.Unmarshal(data, settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON or YAML file, chosen by extension.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides settings from environment variables.
//
// lookup is usually os.LookupEnv. Empty path variables are ignored;
// TRACKER_CONVERT_INDENT may be set to an empty string to disable
// indentation. An unparseable TRACKER_CONVERT_ASCII_ONLY is an error.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvInput); ok && v != "" {
		s.InputPath = v
	}
	if v, ok := lookup(EnvOutput); ok && v != "" {
		s.OutputPath = v
	}
	if v, ok := lookup(EnvIndent); ok {
		s.Indent = v
	}
	if v, ok := lookup(EnvASCIIOnly); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvASCIIOnly, v, err)
		}
		s.ASCIIOnly = b
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
