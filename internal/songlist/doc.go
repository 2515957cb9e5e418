// Package songlist implements a singly linked list of song records
// with ordered insertion.
//
// The list has no wrapper object: a *Node is the list, nil is the
// empty list, and every mutating operation returns the new head, which
// the caller must keep.
//
//	var head *songlist.Node
//	head = songlist.AddInorder(head, songlist.NewNode(songA))
//	head = songlist.AddInorder(head, songlist.NewNode(songB))
//
//	songlist.Apply(head, func(n *songlist.Node) {
//	    fmt.Println(n.Song)
//	})
//
// AddInorder maintains descending order by Song.Comparator, breaking
// ties between equal comparator values on title (descending). See
// AddInorder for the one-element tie-break exception.
//
// The list is single-threaded and single-owner. Calling a mutating
// operation while a traversal is in progress on the same list is
// undefined behavior; callers needing concurrent access must serialize
// externally.
package songlist
