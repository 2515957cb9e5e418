// Package scan builds song records from an ID3-tagged MP3 library.
//
// # Scanner
//
// The Scanner walks a directory tree and reads tags concurrently:
//
//	scanner := scan.NewScanner(&scan.Config{Concurrency: 8}, nil)
//	songs, err := scanner.Scan(ctx, "/music")
//
// Tag fields read per file:
//   - TPE1/TIT2/TALB (artist, title, album)
//   - TYER or TDRC (year)
//   - TLEN (duration in milliseconds)
//   - POPM (play counter; rating mapped onto 0-100 popularity)
//
// # Cover thumbnails
//
// With SaveCoverThumbnails enabled, the first embedded cover (APIC
// frame) seen for each album is resized and written as
// <ThumbnailDir>/<album>.jpg.
//
// Unreadable files are skipped with a warning progress event and never
// fail the scan.
package scan
