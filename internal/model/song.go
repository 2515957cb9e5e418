package model

import (
	"fmt"
	"strings"
)

// Song represents a single song record with the metadata used for
// chart ranking.
//
// Songs come from two sources:
//   - A CSV dataset row (dataset package), which fills the statistics
//     fields (DurationMS, Year, Popularity).
//   - A scanned MP3 file (scan package), which additionally fills Path
//     and, where POPM frames are present, PlayCount.
//
// Comparator is not an intrinsic property of the song: it is stamped by
// the chart builder from whichever field the configured sort key
// selects, immediately before the song is inserted into the ordered
// list. Code outside the chart builder should treat it as read-only.
//
// Example:
//
//	song := &model.Song{Artist: "The Beatles", Title: "Come Together", DurationMS: 259000}
//	fmt.Println(song)                  // "The Beatles - Come Together"
//	fmt.Println(song.DurationString()) // "4:19"
type Song struct {
	// Artist is the performing artist name.
	Artist string

	// Title is the song title.
	Title string

	// Album is the album title, if known. Empty for dataset rows that
	// carry no album column.
	Album string

	// DurationMS is the song length in milliseconds.
	DurationMS int

	// Year is the release year.
	Year int

	// Popularity is a 0-100 popularity score.
	Popularity int

	// PlayCount is the number of recorded plays (POPM counter for
	// scanned files). Zero when unknown.
	PlayCount int64

	// Path is the local file path for songs sourced from a library
	// scan. Empty for dataset rows.
	Path string

	// Comparator is the numeric ranking value used by the ordered
	// list. Assigned by the chart builder from the active sort key.
	Comparator int64
}

// String returns the song in "Artist - Title" form.
func (s *Song) String() string {
	return fmt.Sprintf("%s - %s", s.Artist, s.Title)
}

// DurationString formats the duration as m:ss (e.g. "4:19").
//
// Returns "0:00" when the duration is unknown or non-positive.
func (s *Song) DurationString() string {
	if s.DurationMS <= 0 {
		return "0:00"
	}
	totalSec := s.DurationMS / 1000
	return fmt.Sprintf("%d:%02d", totalSec/60, totalSec%60)
}

// FileName returns a filesystem-safe file name for the song, used when
// a playlist entry has no real path to point at.
//
// The name is "Artist - Title.mp3" with invalid path characters
// replaced, mirroring how scanned libraries are commonly laid out.
func (s *Song) FileName() string {
	name := fmt.Sprintf("%s - %s.mp3", s.Artist, s.Title)
	return sanitizeFileName(name)
}

// sanitizeFileName removes or replaces characters that are invalid in
// file names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars) are replaced with underscore
//   - Trailing dots are removed (Windows limitation)
//   - Multiple whitespace is collapsed to single space
//   - Trailing whitespace is removed
func sanitizeFileName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r < 0x20:
			b.WriteRune('_')
		case strings.ContainsRune(`<>:"/\|?*`, r):
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	name = b.String()

	name = strings.TrimRight(name, ".")
	name = strings.Join(strings.Fields(name), " ")
	return name
}
