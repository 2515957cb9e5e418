package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mwhitford/songchart/internal/model"
)

// ErrMissingColumns is returned when the CSV header lacks the required
// artist and song columns.
//
// This typically occurs when:
//   - The file is not a song dataset at all
//   - The dataset uses column names the parser does not recognize
//   - The file has no header row
var ErrMissingColumns = errors.New("required artist and song columns not found in header")

// Result holds the outcome of parsing a dataset.
type Result struct {
	// Songs are the successfully parsed records, in file order.
	Songs []*model.Song

	// Skipped counts rows dropped for having the wrong field count or
	// unparsable numeric values.
	Skipped int
}

// Parser reads song records out of CSV datasets.
//
// The parser is header-driven: it locates the columns it knows about
// by name (case-insensitive) and ignores everything else, so datasets
// with extra columns (danceability, energy, ...) parse cleanly.
//
// Recognized columns:
//   - artist (required)
//   - song or title (required)
//   - album
//   - duration_ms or duration
//   - year
//   - popularity
//   - play_count or plays
//
// Example usage:
//
//	parser := dataset.NewParser()
//	result, err := parser.ParseFile("songs_normalize.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d songs (%d rows skipped)\n", len(result.Songs), result.Skipped)
type Parser struct{}

// NewParser creates a new dataset Parser.
func NewParser() *Parser {
	return &Parser{}
}

// columns maps recognized header names to field indices (-1 = absent).
type columns struct {
	artist     int
	title      int
	album      int
	durationMS int
	year       int
	popularity int
	playCount  int
}

// ParseFile opens and parses a CSV dataset file.
func (p *Parser) ParseFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open dataset: %w", err)
	}
	defer f.Close()

	return p.Parse(f)
}

// Parse reads a CSV dataset from r.
//
// The first record is treated as the header. Rows whose field count
// does not match the header, or whose numeric fields fail to parse,
// are skipped and counted rather than failing the whole parse.
//
// Returns ErrMissingColumns when the header lacks artist/song columns.
func (p *Parser) Parse(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("could not read dataset header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Structurally broken row (bare quote etc.); drop it.
			result.Skipped++
			continue
		}
		if len(record) != len(header) {
			result.Skipped++
			continue
		}

		song, ok := cols.toSong(record)
		if !ok {
			result.Skipped++
			continue
		}
		result.Songs = append(result.Songs, song)
	}

	return result, nil
}

// mapColumns locates recognized columns in the header.
func mapColumns(header []string) (*columns, error) {
	cols := &columns{
		artist:     -1,
		title:      -1,
		album:      -1,
		durationMS: -1,
		year:       -1,
		popularity: -1,
		playCount:  -1,
	}

	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "artist":
			cols.artist = i
		case "song", "title":
			cols.title = i
		case "album":
			cols.album = i
		case "duration_ms", "duration":
			cols.durationMS = i
		case "year":
			cols.year = i
		case "popularity":
			cols.popularity = i
		case "play_count", "plays":
			cols.playCount = i
		}
	}

	if cols.artist == -1 || cols.title == -1 {
		return nil, ErrMissingColumns
	}
	return cols, nil
}

// toSong builds a Song from one CSV record. Returns false when a
// numeric field is present but unparsable.
func (c *columns) toSong(record []string) (*model.Song, bool) {
	song := &model.Song{
		Artist: strings.TrimSpace(record[c.artist]),
		Title:  strings.TrimSpace(record[c.title]),
	}
	if song.Artist == "" || song.Title == "" {
		return nil, false
	}

	if c.album != -1 {
		song.Album = strings.TrimSpace(record[c.album])
	}

	var ok bool
	if song.DurationMS, ok = intField(record, c.durationMS); !ok {
		return nil, false
	}
	if song.Year, ok = intField(record, c.year); !ok {
		return nil, false
	}
	if song.Popularity, ok = intField(record, c.popularity); !ok {
		return nil, false
	}

	if c.playCount != -1 {
		v, err := strconv.ParseInt(strings.TrimSpace(record[c.playCount]), 10, 64)
		if err != nil {
			return nil, false
		}
		song.PlayCount = v
	}

	return song, true
}

// intField parses the column at idx, treating an absent column as zero.
func intField(record []string, idx int) (int, bool) {
	if idx == -1 {
		return 0, true
	}
	v, err := strconv.Atoi(strings.TrimSpace(record[idx]))
	if err != nil {
		return 0, false
	}
	return v, true
}
