// Package dataset parses CSV song datasets into model.Song records.
//
// The parser is header-driven and tolerant: unknown columns are
// ignored, malformed rows are skipped and counted, and only a missing
// artist/song column pair fails the parse outright.
//
//	parser := dataset.NewParser()
//	result, err := parser.ParseFile("songs.csv")
//	if errors.Is(err, dataset.ErrMissingColumns) {
//	    // not a song dataset
//	}
package dataset
