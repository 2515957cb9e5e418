// Package config provides configuration management for songchart.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to the chart and scan package configs
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Top 40 by popularity, text output, library at ~/Music
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	// Uses defaults if the file doesn't exist
//
// # Saving Settings
//
//	settings.SortKey = "plays"
//	err := settings.Save("/path/to/config.json")
package config
