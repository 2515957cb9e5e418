package songlist

import (
	"testing"

	"github.com/mwhitford/songchart/internal/model"
)

func song(comparator int64, artist, title string) *model.Song {
	return &model.Song{Artist: artist, Title: title, Comparator: comparator}
}

// collect returns "Artist/Title" for every node, head to tail.
func collect(list *Node) []string {
	var out []string
	Apply(list, func(n *Node) {
		out = append(out, n.Song.Artist+"/"+n.Song.Title)
	})
	return out
}

func length(list *Node) int {
	count := 0
	Apply(list, func(*Node) { count++ })
	return count
}

func assertOrder(t *testing.T, list *Node, want []string) {
	t.Helper()
	got := collect(list)
	if len(got) != len(want) {
		t.Fatalf("list = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("list = %v, want %v", got, want)
		}
	}
}

func TestNewNode(t *testing.T) {
	s := song(5, "A", "T")
	n := NewNode(s)
	if n.Song != s {
		t.Errorf("NewNode stored %v, want %v", n.Song, s)
	}
	if n.next != nil {
		t.Error("NewNode should create a node with no successor")
	}
}

func TestNewNode_NilSongPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewNode(nil) should panic")
		}
	}()
	NewNode(nil)
}

func TestAddFront(t *testing.T) {
	var list *Node
	list = AddFront(list, NewNode(song(1, "A", "first")))
	list = AddFront(list, NewNode(song(2, "B", "second")))

	assertOrder(t, list, []string{"B/second", "A/first"})
}

func TestAddEnd(t *testing.T) {
	var list *Node

	list = AddEnd(list, NewNode(song(1, "A", "first")))
	if list == nil || list.Song.Title != "first" {
		t.Fatal("AddEnd on empty list should return the node as head")
	}

	list = AddEnd(list, NewNode(song(2, "B", "second")))
	list = AddEnd(list, NewNode(song(3, "C", "third")))
	assertOrder(t, list, []string{"A/first", "B/second", "C/third"})
}

func TestAddEnd_ThenAddFront(t *testing.T) {
	var list *Node
	list = AddEnd(list, NewNode(song(1, "A", "a")))
	list = AddFront(list, NewNode(song(2, "B", "b")))

	assertOrder(t, list, []string{"B/b", "A/a"})
}

func TestPeekFront(t *testing.T) {
	if PeekFront(nil) != nil {
		t.Error("PeekFront(nil) should be nil")
	}

	list := NewNode(song(5, "A", "T"))
	if PeekFront(list) != list {
		t.Error("PeekFront should return the head without mutation")
	}
	if length(list) != 1 {
		t.Error("PeekFront must not alter the list")
	}
}

func TestRemoveFront(t *testing.T) {
	if RemoveFront(nil) != nil {
		t.Error("RemoveFront on empty list should return nil")
	}

	head := NewNode(song(5, "A", "T"))
	rest := RemoveFront(head)
	if rest != nil {
		t.Error("RemoveFront on a singleton should return the empty list")
	}
	// The detached node is untouched and still usable by the caller.
	if head.Song.Title != "T" {
		t.Error("detached node should keep its record")
	}

	head = AddEnd(nil, NewNode(song(1, "A", "a")))
	head = AddEnd(head, NewNode(song(2, "B", "b")))
	rest = RemoveFront(head)
	assertOrder(t, rest, []string{"B/b"})
}

func TestApply_NoOpLeavesListIntact(t *testing.T) {
	var list *Node
	list = AddEnd(list, NewNode(song(3, "A", "a")))
	list = AddEnd(list, NewNode(song(2, "B", "b")))
	list = AddEnd(list, NewNode(song(1, "C", "c")))

	before := collect(list)
	Apply(list, func(*Node) {})
	after := collect(list)

	if len(before) != len(after) {
		t.Fatalf("no-op Apply changed length: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("no-op Apply changed order: %v -> %v", before, after)
		}
	}
}

func TestApply_VisitsInOrder(t *testing.T) {
	var list *Node
	for _, title := range []string{"a", "b", "c"} {
		list = AddEnd(list, NewNode(song(1, "X", title)))
	}

	var visited []string
	Apply(list, func(n *Node) { visited = append(visited, n.Song.Title) })

	want := []string{"a", "b", "c"}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("Apply visited %v, want %v", visited, want)
		}
	}
}

func TestAddInorder_EmptyList(t *testing.T) {
	list := AddInorder(nil, NewNode(song(5, "A", "T")))
	assertOrder(t, list, []string{"A/T"})
}

func TestAddInorder_SingletonDistinctComparator(t *testing.T) {
	t.Run("new greater becomes head", func(t *testing.T) {
		list := NewNode(song(3, "A", "x"))
		list = AddInorder(list, NewNode(song(7, "B", "y")))
		assertOrder(t, list, []string{"B/y", "A/x"})
	})

	t.Run("new smaller goes after", func(t *testing.T) {
		list := NewNode(song(7, "A", "x"))
		list = AddInorder(list, NewNode(song(3, "B", "y")))
		assertOrder(t, list, []string{"A/x", "B/y"})
	})
}

// The one-element list breaks comparator ties on the artist field, not
// the title field used everywhere else. Inherited behavior, kept as-is.
func TestAddInorder_SingletonEqualComparatorArtistTieBreak(t *testing.T) {
	t.Run("existing artist not less than new", func(t *testing.T) {
		list := NewNode(song(3, "B", "x"))
		list = AddInorder(list, NewNode(song(3, "A", "y")))
		assertOrder(t, list, []string{"A/y", "B/x"})
	})

	t.Run("existing artist less than new", func(t *testing.T) {
		list := NewNode(song(3, "A", "x"))
		list = AddInorder(list, NewNode(song(3, "B", "y")))
		assertOrder(t, list, []string{"A/x", "B/y"})
	})
}

func TestAddInorder_MultiElementGreaterBecomesHead(t *testing.T) {
	var list *Node
	list = AddEnd(list, NewNode(song(5, "A", "a")))
	list = AddEnd(list, NewNode(song(2, "B", "b")))

	list = AddInorder(list, NewNode(song(9, "C", "c")))
	assertOrder(t, list, []string{"C/c", "A/a", "B/b"})
}

// Scenario: equal-comparator run ordered by title descending; the new
// title lands between the existing ones.
func TestAddInorder_MultiElementEqualComparatorTitleTieBreak(t *testing.T) {
	var list *Node
	list = AddEnd(list, NewNode(song(5, "artistX", "Z")))
	list = AddEnd(list, NewNode(song(5, "artistY", "M")))
	list = AddEnd(list, NewNode(song(2, "artistQ", "q")))

	list = AddInorder(list, NewNode(song(5, "artistW", "N")))
	assertOrder(t, list, []string{"artistX/Z", "artistW/N", "artistY/M", "artistQ/q"})
}

func TestAddInorder_MultiElementEqualComparatorNewTitleGreatest(t *testing.T) {
	var list *Node
	list = AddEnd(list, NewNode(song(5, "A", "M")))
	list = AddEnd(list, NewNode(song(5, "B", "K")))

	list = AddInorder(list, NewNode(song(5, "C", "Z")))
	assertOrder(t, list, []string{"C/Z", "A/M", "B/K"})
}

func TestAddInorder_MultiElementEqualComparatorRunsToTail(t *testing.T) {
	var list *Node
	list = AddEnd(list, NewNode(song(5, "A", "Z")))
	list = AddEnd(list, NewNode(song(5, "B", "M")))

	// Smallest title of the run: walks past the tail without falling
	// off and is appended.
	list = AddInorder(list, NewNode(song(5, "C", "A")))
	assertOrder(t, list, []string{"A/Z", "B/M", "C/A"})
}

func TestAddInorder_MultiElementSmallerComparator(t *testing.T) {
	t.Run("lands between runs", func(t *testing.T) {
		var list *Node
		list = AddEnd(list, NewNode(song(9, "A", "a")))
		list = AddEnd(list, NewNode(song(7, "B", "b")))
		list = AddEnd(list, NewNode(song(2, "C", "c")))

		list = AddInorder(list, NewNode(song(5, "D", "d")))
		assertOrder(t, list, []string{"A/a", "B/b", "D/d", "C/c"})
	})

	t.Run("lands at tail", func(t *testing.T) {
		var list *Node
		list = AddEnd(list, NewNode(song(9, "A", "a")))
		list = AddEnd(list, NewNode(song(7, "B", "b")))

		list = AddInorder(list, NewNode(song(1, "C", "c")))
		assertOrder(t, list, []string{"A/a", "B/b", "C/c"})
	})

	t.Run("joins an equal run further down", func(t *testing.T) {
		var list *Node
		list = AddEnd(list, NewNode(song(9, "A", "a")))
		list = AddEnd(list, NewNode(song(5, "B", "Z")))
		list = AddEnd(list, NewNode(song(5, "C", "M")))
		list = AddEnd(list, NewNode(song(2, "D", "d")))

		list = AddInorder(list, NewNode(song(5, "E", "N")))
		assertOrder(t, list, []string{"A/a", "B/Z", "E/N", "C/M", "D/d"})
	})
}

// After any insert sequence the comparator values are non-increasing
// and titles are non-increasing within equal-comparator runs.
func TestAddInorder_OrderingInvariant(t *testing.T) {
	inserts := []*model.Song{
		song(5, "a1", "delta"),
		song(2, "a2", "alpha"),
		song(9, "a3", "kilo"),
		song(5, "a4", "bravo"),
		song(5, "a5", "zulu"),
		song(9, "a6", "echo"),
		song(2, "a7", "mike"),
		song(7, "a8", "golf"),
		song(5, "a9", "bravo"),
	}

	var list *Node
	for _, s := range inserts {
		list = AddInorder(list, NewNode(s))
	}

	if length(list) != len(inserts) {
		t.Fatalf("list has %d nodes, want %d", length(list), len(inserts))
	}

	var prev *model.Song
	Apply(list, func(n *Node) {
		cur := n.Song
		if prev != nil {
			if cur.Comparator > prev.Comparator {
				t.Errorf("comparator increased: %d after %d", cur.Comparator, prev.Comparator)
			}
			if cur.Comparator == prev.Comparator && cur.Title > prev.Title {
				t.Errorf("title increased within run: %q after %q", cur.Title, prev.Title)
			}
		}
		prev = cur
	})
}
