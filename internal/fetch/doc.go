// Package fetch provides an HTTP client for retrieving remote song
// datasets.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Timeout handling
//   - Streaming downloads with progress tracking
//
// # Basic Usage
//
//	client := fetch.NewClient()
//
//	// Fetch a CSV dataset into memory
//	csvText, err := client.GetString(ctx, "https://example.com/songs.csv")
//
//	// Stream a large dataset to disk with a progress callback
//	client.DownloadFile(ctx, url, "/tmp/songs.csv", func(written, total int64) {
//	    fmt.Printf("%d bytes\r", written)
//	})
package fetch
