package dtree

import "github.com/google/btree"

// DiffStatus represents the status of an entry in the diff.
type DiffStatus string

const (
	Added     DiffStatus = "added"
	Removed   DiffStatus = "removed"
	Modified  DiffStatus = "modified"
	Unchanged DiffStatus = "unchanged"
)

// DiffNode represents an entry in the diff structure with its status.
type DiffNode struct {
	Name    string                   // Entry name, empty for the diff root
	Status  DiffStatus               // Diff status of the entry
	Entries *btree.BTreeG[*DiffNode] // Entry diffs as a B-Tree keyed by name
}

// NewDiffNode creates a new DiffNode.
func NewDiffNode(name string, status DiffStatus) *DiffNode {
	return &DiffNode{
		Name:   name,
		Status: status,
		Entries: btree.NewG(2, func(a, b *DiffNode) bool {
			return a.Name < b.Name
		}),
	}
}

// Diff compares two directory trees and returns a DiffNode tree with the
// differences, rooted at an unnamed node.
func Diff(current, next *DTree) *DiffNode {
	return diff("", current, next)
}

// diff is a recursive function that computes the differences between two
// directories.
func diff(name string, current, next *DTree) *DiffNode {
	root := NewDiffNode(name, Unchanged)

	// processes entries from the current directory.
	for _, entry := range current.Children {
		nextEntry, found := next.Search(entry.Name)
		if !found {
			root.Entries.ReplaceOrInsert(NewDiffNode(entry.Name, Removed))
			root.Status = Modified
			continue
		}

		sub := diff(entry.Name, &entry.Subdir, &nextEntry.Subdir)
		if sub.Status != Unchanged {
			root.Status = Modified
		}
		root.Entries.ReplaceOrInsert(sub)
	}

	// processes entries from the next directory that were not found in the
	// current directory.
	for _, entry := range next.Children {
		if _, found := current.Search(entry.Name); !found {
			root.Status = Modified
			root.Entries.ReplaceOrInsert(NewDiffNode(entry.Name, Added))
		}
	}

	return root
}
