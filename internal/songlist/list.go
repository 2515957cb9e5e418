package songlist

import (
	"github.com/mwhitford/songchart/internal/model"
)

// Node is a single element of a singly linked song list.
//
// There is no separate list type: a *Node is the list, and the head
// pointer is threaded through every mutating operation. A nil *Node is
// the empty list.
//
// The node holds a reference to its Song; it never copies or mutates
// the record, and the record's lifetime is the caller's concern.
type Node struct {
	// Song is the record this node carries. Never nil for nodes
	// created through NewNode.
	Song *model.Song

	next *Node
}

// NewNode creates a list node carrying the given song.
//
// Passing a nil song is a contract violation and panics immediately;
// there is no recoverable-error path for it.
func NewNode(song *model.Song) *Node {
	if song == nil {
		panic("songlist: NewNode called with nil song")
	}
	return &Node{Song: song}
}

// AddFront prepends node to list and returns the new head. O(1).
func AddFront(list, node *Node) *Node {
	node.next = list
	return node
}

// AddEnd appends node to list and returns the head. O(n).
//
// When list is empty the node itself becomes the head.
func AddEnd(list, node *Node) *Node {
	node.next = nil
	if list == nil {
		return node
	}

	curr := list
	for curr.next != nil {
		curr = curr.next
	}
	curr.next = node
	return list
}

// AddInorder inserts node into list preserving descending order by
// Comparator, and returns the (possibly new) head. O(n).
//
// Within a run of equal comparator values, titles are kept in
// descending lexicographic order. The one-element case instead breaks
// the tie on the artist field, in ascending order; the asymmetry is
// inherited behavior and deliberately kept (see DESIGN.md).
func AddInorder(list, node *Node) *Node {
	if list == nil {
		return node
	}

	if list.next == nil {
		switch {
		case list.Song.Comparator > node.Song.Comparator:
			list.next = node
			return list
		case list.Song.Comparator < node.Song.Comparator:
			node.next = list
			return node
		default:
			if list.Song.Artist < node.Song.Artist {
				list.next = node
				return list
			}
			node.next = list
			return node
		}
	}

	prev := list
	cur := list.next

	switch {
	case node.Song.Comparator > prev.Song.Comparator:
		node.next = prev
		return node

	case node.Song.Comparator == prev.Song.Comparator:
		if node.Song.Title > prev.Song.Title {
			node.next = prev
			return node
		}
		for cur != nil && node.Song.Comparator == cur.Song.Comparator && node.Song.Title < cur.Song.Title {
			prev = prev.next
			cur = cur.next
		}
		prev.next = node
		node.next = cur
		return list

	default:
		for cur != nil && node.Song.Comparator < cur.Song.Comparator {
			prev = prev.next
			cur = cur.next
		}
		for cur != nil && node.Song.Comparator == cur.Song.Comparator && node.Song.Title < cur.Song.Title {
			prev = prev.next
			cur = cur.next
		}
		prev.next = node
		node.next = cur
		return list
	}
}

// PeekFront returns the head node without mutating the list.
// Returns nil for the empty list.
func PeekFront(list *Node) *Node {
	return list
}

// RemoveFront detaches the head node and returns the new head.
//
// The caller already holds the old head pointer and now owns the
// detached node outright; the list keeps no reference to it. Returns
// nil when list is empty.
func RemoveFront(list *Node) *Node {
	if list == nil {
		return nil
	}
	return list.next
}

// Apply invokes fn on every node in head-to-tail order.
//
// Apply guarantees a full, in-order traversal and nothing else: all
// side effects belong to fn. Mutating the list structure from inside
// fn is undefined behavior.
func Apply(list *Node, fn func(*Node)) {
	for n := list; n != nil; n = n.next {
		fn(n)
	}
}
