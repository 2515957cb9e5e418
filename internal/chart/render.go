package chart

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mwhitford/songchart/internal/model"
)

// OutputFormat represents supported chart output formats.
//
// Each format serves a different consumer:
//   - Text: human-readable ranked listing for terminals
//   - CSV: spreadsheet import / further processing
//   - M3U: media players (optionally with EXTINF lines)
//   - JSON: programmatic consumption
type OutputFormat int

const (
	// FormatText renders a plain ranked listing.
	FormatText OutputFormat = iota

	// FormatCSV renders comma-separated rows with a header line.
	FormatCSV

	// FormatM3U renders an .m3u playlist of the ranked songs.
	// Can be extended with EXTINF lines for duration/title info.
	FormatM3U

	// FormatJSON renders an indented JSON array of chart entries.
	FormatJSON
)

// ParseOutputFormat converts a user-supplied string into an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "text":
		return FormatText, nil
	case "csv":
		return FormatCSV, nil
	case "m3u":
		return FormatM3U, nil
	case "json":
		return FormatJSON, nil
	}
	return FormatText, fmt.Errorf("unknown output format %q (valid: text, csv, m3u, json)", s)
}

// Extension returns the file extension for the format, including the dot.
func (f OutputFormat) Extension() string {
	switch f {
	case FormatCSV:
		return ".csv"
	case FormatM3U:
		return ".m3u"
	case FormatJSON:
		return ".json"
	default:
		return ".txt"
	}
}

// Renderer generates chart output in various formats.
//
// Renderer takes an already-ranked song slice (from Collect or Top)
// and produces a string ready to be printed or written to a file.
//
// Example:
//
//	renderer := chart.NewRenderer(chart.FormatM3U, true)
//	content, err := renderer.Render("Top 40", chart.Top(list, 40))
//	if err == nil {
//	    os.WriteFile("top40.m3u", []byte(content), 0644)
//	}
type Renderer struct {
	format   OutputFormat
	extended bool // For M3U: include EXTINF lines with duration/title
}

// NewRenderer creates a new Renderer.
//
// Parameters:
//   - format: The output format to generate
//   - extended: For M3U format, whether to include #EXTINF lines
//     (ignored for other formats)
func NewRenderer(format OutputFormat, extended bool) *Renderer {
	return &Renderer{
		format:   format,
		extended: extended,
	}
}

// Render generates chart content for the given title and ranked songs.
func (r *Renderer) Render(title string, songs []*model.Song) (string, error) {
	switch r.format {
	case FormatCSV:
		return r.renderCSV(songs)
	case FormatM3U:
		return r.renderM3U(songs), nil
	case FormatJSON:
		return r.renderJSON(songs)
	default:
		return r.renderText(title, songs), nil
	}
}

// renderText generates a plain ranked listing.
//
//	Top 40
//	──────
//	  1. Artist - Title  3:45  (2019, popularity 87)
func (r *Renderer) renderText(title string, songs []*model.Song) string {
	var sb strings.Builder

	if title != "" {
		sb.WriteString(title + "\n")
		sb.WriteString(strings.Repeat("─", len([]rune(title))) + "\n")
	}

	for i, s := range songs {
		sb.WriteString(fmt.Sprintf("%3d. %s  %s  (%d, popularity %d)\n",
			i+1, s, s.DurationString(), s.Year, s.Popularity))
	}

	return sb.String()
}

// renderCSV generates comma-separated rows with a header line.
func (r *Renderer) renderCSV(songs []*model.Song) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	header := []string{"rank", "artist", "song", "album", "duration_ms", "year", "popularity", "play_count"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, s := range songs {
		row := []string{
			strconv.Itoa(i + 1),
			s.Artist,
			s.Title,
			s.Album,
			strconv.Itoa(s.DurationMS),
			strconv.Itoa(s.Year),
			strconv.Itoa(s.Popularity),
			strconv.FormatInt(s.PlayCount, 10),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	return sb.String(), w.Error()
}

// renderM3U generates an M3U playlist.
//
// Standard M3U format:
//
//	filename1.mp3
//	filename2.mp3
//
// Extended M3U format (when extended=true):
//
//	#EXTM3U
//	#EXTINF:180,Artist - Title
//	filename1.mp3
//
// Songs scanned from a library keep their real path; dataset songs fall
// back to a sanitized "Artist - Title.mp3" name.
func (r *Renderer) renderM3U(songs []*model.Song) string {
	var sb strings.Builder

	if r.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, s := range songs {
		if r.extended {
			sb.WriteString(fmt.Sprintf("#EXTINF:%d,%s - %s\n", s.DurationMS/1000, s.Artist, s.Title))
		}
		if s.Path != "" {
			sb.WriteString(s.Path + "\n")
		} else {
			sb.WriteString(s.FileName() + "\n")
		}
	}

	return sb.String()
}

// chartEntry is the JSON shape of one ranked song.
type chartEntry struct {
	Rank       int    `json:"rank"`
	Artist     string `json:"artist"`
	Title      string `json:"song"`
	Album      string `json:"album,omitempty"`
	DurationMS int    `json:"duration_ms"`
	Year       int    `json:"year"`
	Popularity int    `json:"popularity"`
	PlayCount  int64  `json:"play_count,omitempty"`
}

// renderJSON generates an indented JSON array of chart entries.
func (r *Renderer) renderJSON(songs []*model.Song) (string, error) {
	entries := make([]chartEntry, len(songs))
	for i, s := range songs {
		entries[i] = chartEntry{
			Rank:       i + 1,
			Artist:     s.Artist,
			Title:      s.Title,
			Album:      s.Album,
			DurationMS: s.DurationMS,
			Year:       s.Year,
			Popularity: s.Popularity,
			PlayCount:  s.PlayCount,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
