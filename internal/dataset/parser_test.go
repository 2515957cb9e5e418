package dataset

import (
	"errors"
	"strings"
	"testing"
)

func TestParser_Parse(t *testing.T) {
	csvData := `artist,song,duration_ms,explicit,year,popularity
Britney Spears,Oops!...I Did It Again,211160,False,2000,77
blink-182,All The Small Things,167066,False,1999,79
Faith Hill,Breathe,250546,False,1999,66
`

	result, err := NewParser().Parse(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Songs) != 3 {
		t.Fatalf("parsed %d songs, want 3", len(result.Songs))
	}
	if result.Skipped != 0 {
		t.Errorf("skipped %d rows, want 0", result.Skipped)
	}

	first := result.Songs[0]
	if first.Artist != "Britney Spears" {
		t.Errorf("Artist = %q", first.Artist)
	}
	if first.Title != "Oops!...I Did It Again" {
		t.Errorf("Title = %q", first.Title)
	}
	if first.DurationMS != 211160 {
		t.Errorf("DurationMS = %d", first.DurationMS)
	}
	if first.Year != 2000 {
		t.Errorf("Year = %d", first.Year)
	}
	if first.Popularity != 77 {
		t.Errorf("Popularity = %d", first.Popularity)
	}
}

func TestParser_TitleColumnAlias(t *testing.T) {
	csvData := "Artist,Title,Year\nA,T,2010\n"

	result, err := NewParser().Parse(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Songs) != 1 || result.Songs[0].Title != "T" {
		t.Errorf("title alias not recognized: %+v", result.Songs)
	}
	if result.Songs[0].Year != 2010 {
		t.Errorf("Year = %d, want 2010", result.Songs[0].Year)
	}
}

func TestParser_SkipsMalformedRows(t *testing.T) {
	csvData := `artist,song,popularity
Good Artist,Good Song,50
Missing Field
Bad Number,Some Song,not-a-number
,Empty Artist,10
Another Artist,Another Song,60
`

	result, err := NewParser().Parse(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Songs) != 2 {
		t.Errorf("parsed %d songs, want 2", len(result.Songs))
	}
	if result.Skipped != 3 {
		t.Errorf("skipped %d rows, want 3", result.Skipped)
	}
}

func TestParser_PlayCountColumn(t *testing.T) {
	csvData := "artist,song,plays\nA,T,12345\n"

	result, err := NewParser().Parse(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Songs[0].PlayCount != 12345 {
		t.Errorf("PlayCount = %d, want 12345", result.Songs[0].PlayCount)
	}
}

func TestParser_MissingColumns(t *testing.T) {
	csvData := "id,name,value\n1,foo,2\n"

	_, err := NewParser().Parse(strings.NewReader(csvData))
	if !errors.Is(err, ErrMissingColumns) {
		t.Errorf("err = %v, want ErrMissingColumns", err)
	}
}

func TestParser_EmptyInput(t *testing.T) {
	_, err := NewParser().Parse(strings.NewReader(""))
	if err == nil {
		t.Error("empty input should fail to parse a header")
	}
}
