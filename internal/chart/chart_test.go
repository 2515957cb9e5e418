package chart

import (
	"testing"

	"github.com/mwhitford/songchart/internal/model"
)

func testSongs() []*model.Song {
	return []*model.Song{
		{Artist: "A", Title: "alpha", DurationMS: 180000, Year: 2001, Popularity: 40, PlayCount: 9},
		{Artist: "B", Title: "bravo", DurationMS: 240000, Year: 1999, Popularity: 85, PlayCount: 2},
		{Artist: "C", Title: "charlie", DurationMS: 200000, Year: 2015, Popularity: 60, PlayCount: 31},
	}
}

func TestParseSortKey(t *testing.T) {
	for _, valid := range []string{"popularity", "duration", "year", "plays"} {
		if _, err := ParseSortKey(valid); err != nil {
			t.Errorf("ParseSortKey(%q) unexpected error: %v", valid, err)
		}
	}

	if _, err := ParseSortKey("loudness"); err == nil {
		t.Error("ParseSortKey should reject unknown keys")
	}
}

func TestBuilder_ComparatorSelection(t *testing.T) {
	song := &model.Song{DurationMS: 200000, Year: 2015, Popularity: 60, PlayCount: 31}

	tests := []struct {
		key  SortKey
		want int64
	}{
		{SortByPopularity, 60},
		{SortByDuration, 200000},
		{SortByYear, 2015},
		{SortByPlays, 31},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			if got := NewBuilder(tt.key).comparatorFor(song); got != tt.want {
				t.Errorf("comparatorFor = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBuilder_BuildOrdersDescending(t *testing.T) {
	tests := []struct {
		key  SortKey
		want []string // titles, head to tail
	}{
		{SortByPopularity, []string{"bravo", "charlie", "alpha"}},
		{SortByDuration, []string{"bravo", "charlie", "alpha"}},
		{SortByYear, []string{"charlie", "alpha", "bravo"}},
		{SortByPlays, []string{"charlie", "alpha", "bravo"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			list := NewBuilder(tt.key).Build(testSongs())
			got := Collect(list)

			if len(got) != len(tt.want) {
				t.Fatalf("chart has %d songs, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i].Title != tt.want[i] {
					t.Errorf("rank %d = %q, want %q", i+1, got[i].Title, tt.want[i])
				}
			}
		})
	}
}

func TestBuilder_BuildEmpty(t *testing.T) {
	list := NewBuilder(SortByPopularity).Build(nil)
	if list != nil {
		t.Error("Build(nil) should return the empty list")
	}
	if got := Len(list); got != 0 {
		t.Errorf("Len(empty) = %d, want 0", got)
	}
}

func TestTop(t *testing.T) {
	list := NewBuilder(SortByPopularity).Build(testSongs())

	top := Top(list, 2)
	if len(top) != 2 {
		t.Fatalf("Top(2) returned %d songs", len(top))
	}
	if top[0].Title != "bravo" || top[1].Title != "charlie" {
		t.Errorf("Top(2) = [%s, %s], want [bravo, charlie]", top[0].Title, top[1].Title)
	}

	if got := Top(list, 100); len(got) != 3 {
		t.Errorf("Top larger than chart should return all songs, got %d", len(got))
	}

	if got := Top(list, 0); got != nil {
		t.Errorf("Top(0) should be nil, got %v", got)
	}
}

func TestLen(t *testing.T) {
	list := NewBuilder(SortByYear).Build(testSongs())
	if got := Len(list); got != 3 {
		t.Errorf("Len = %d, want 3", got)
	}
}
