// Package model defines the core data structures used throughout
// songchart.
//
// # Song
//
// Song is the single record type the whole tool revolves around:
//
//	song := &model.Song{Artist: "Artist", Title: "Title", Popularity: 83}
//	fmt.Println(song)                  // "Artist - Title"
//	fmt.Println(song.DurationString()) // "3:45"
//
// Songs are produced by the dataset and scan packages and consumed by
// the chart builder, which stamps the Comparator field from the active
// sort key before ordered insertion into the song list.
package model
