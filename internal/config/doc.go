// Package config provides configuration management for tracker-convert.
//
// This package handles:
//   - Default configuration values
//   - Loading and saving settings from JSON or YAML files
//   - Overrides from environment variables
//
// # Default Settings
//
// Use DefaultSettings() to get the defaults:
//
//	settings := config.DefaultSettings()
//	// Reads vinyl-cd-tracker-data.json
//	// Writes converted_data.json, indented by two spaces
//	// Escapes non-ASCII characters
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.yaml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Environment
//
//	err := settings.ApplyEnv(os.LookupEnv)
//
// Settings are layered: defaults, then the config file, then the
// environment, then command line flags.
package config
