package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/mwhitford/songchart/internal/chart"
	"github.com/mwhitford/songchart/internal/scan"
)

// Settings holds all configuration options.
type Settings struct {
	// Input settings
	DatasetPath  string `json:"dataset_path"`
	DatasetURL   string `json:"dataset_url"`
	MusicDirPath string `json:"music_dir_path"`

	// Chart settings
	SortKey   string `json:"sort_key"`   // popularity, duration, year, plays
	ChartSize int    `json:"chart_size"` // number of songs in the chart, 0 = all

	// Output settings
	OutputFormat string `json:"output_format"` // text, csv, m3u, json
	OutputPath   string `json:"output_path"`   // empty = print to stdout
	M3UExtended  bool   `json:"m3u_extended"`

	// Library scan settings
	ScanConcurrency       int    `json:"scan_concurrency"`
	SaveCoverThumbnails   bool   `json:"save_cover_thumbnails"`
	CoverThumbnailDir     string `json:"cover_thumbnail_dir"`
	CoverThumbnailMaxSize int    `json:"cover_thumbnail_max_size"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		MusicDirPath: filepath.Join(homeDir, "Music"),

		SortKey:   "popularity",
		ChartSize: 40,

		OutputFormat: "text",
		M3UExtended:  true,

		ScanConcurrency:       4,
		SaveCoverThumbnails:   false,
		CoverThumbnailDir:     filepath.Join(homeDir, "Music", ".thumbnails"),
		CoverThumbnailMaxSize: 300,
	}
}

// Load reads settings from a JSON file.
//
// A missing file is not an error: defaults are returned, matching the
// first-run experience.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToSortKey converts the configured sort key string, falling back to
// popularity on unknown values.
func (s *Settings) ToSortKey() chart.SortKey {
	key, err := chart.ParseSortKey(s.SortKey)
	if err != nil {
		return chart.SortByPopularity
	}
	return key
}

// ToScanConfig converts settings to a scan.Config.
func (s *Settings) ToScanConfig() *scan.Config {
	return &scan.Config{
		Concurrency:         s.ScanConcurrency,
		SaveCoverThumbnails: s.SaveCoverThumbnails,
		ThumbnailDir:        s.CoverThumbnailDir,
		ThumbnailMaxSize:    s.CoverThumbnailMaxSize,
	}
}
