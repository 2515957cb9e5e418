package chart

import (
	"fmt"

	"github.com/mwhitford/songchart/internal/model"
	"github.com/mwhitford/songchart/internal/songlist"
)

// SortKey selects which Song field drives the chart ranking.
type SortKey string

const (
	// SortByPopularity ranks by the 0-100 popularity score.
	SortByPopularity SortKey = "popularity"

	// SortByDuration ranks by song length in milliseconds.
	SortByDuration SortKey = "duration"

	// SortByYear ranks by release year.
	SortByYear SortKey = "year"

	// SortByPlays ranks by recorded play count.
	SortByPlays SortKey = "plays"
)

// ParseSortKey converts a user-supplied string into a SortKey.
//
// Returns an error naming the valid keys when s matches none of them.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortByPopularity, SortByDuration, SortByYear, SortByPlays:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("unknown sort key %q (valid: popularity, duration, year, plays)", s)
}

// Builder assembles songs into a ranked chart.
//
// Builder stamps each song's Comparator field from the configured sort
// key and inserts the songs one by one into an ordered song list, so
// the resulting chart descends by the chosen field with titles breaking
// ties.
//
// Example:
//
//	builder := chart.NewBuilder(chart.SortByPopularity)
//	list := builder.Build(songs)
//	for _, s := range chart.Top(list, 10) {
//	    fmt.Println(s)
//	}
type Builder struct {
	key SortKey
}

// NewBuilder creates a Builder ranking by the given key.
func NewBuilder(key SortKey) *Builder {
	return &Builder{key: key}
}

// Key returns the sort key this builder ranks by.
func (b *Builder) Key() SortKey {
	return b.key
}

// Build stamps comparators and inserts every song in ordered position.
//
// Returns the head of the resulting list (nil for no songs). The input
// slice is not reordered; only the songs' Comparator fields are
// written.
func (b *Builder) Build(songs []*model.Song) *songlist.Node {
	var list *songlist.Node
	for _, s := range songs {
		s.Comparator = b.comparatorFor(s)
		list = songlist.AddInorder(list, songlist.NewNode(s))
	}
	return list
}

// comparatorFor extracts the ranking value for the active sort key.
func (b *Builder) comparatorFor(s *model.Song) int64 {
	switch b.key {
	case SortByDuration:
		return int64(s.DurationMS)
	case SortByYear:
		return int64(s.Year)
	case SortByPlays:
		return s.PlayCount
	default:
		return int64(s.Popularity)
	}
}

// Collect returns the chart as a slice, head to tail.
func Collect(list *songlist.Node) []*model.Song {
	var songs []*model.Song
	songlist.Apply(list, func(n *songlist.Node) {
		songs = append(songs, n.Song)
	})
	return songs
}

// Top returns the first n songs of the chart. Returns the whole chart
// when it holds fewer than n songs; n <= 0 yields nil.
func Top(list *songlist.Node, n int) []*model.Song {
	if n <= 0 {
		return nil
	}
	var songs []*model.Song
	songlist.Apply(list, func(node *songlist.Node) {
		if len(songs) < n {
			songs = append(songs, node.Song)
		}
	})
	return songs
}

// Len returns the number of songs in the chart.
func Len(list *songlist.Node) int {
	count := 0
	songlist.Apply(list, func(*songlist.Node) { count++ })
	return count
}
