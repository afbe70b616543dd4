package dtree

import (
	"sort"
	"strings"
)

// Separator is the path separator character. It is reserved: component names
// must not contain it.
const Separator = "/"

// DEnt represents a named entry in a directory.
type DEnt struct {
	Name   string `json:"name"`   // Entry name
	Subdir DTree  `json:"subdir"` // Subdirectory rooted at this entry
}

// DTree represents a directory: a collection of uniquely named entries, kept
// sorted by name.
type DTree struct {
	Children []*DEnt `json:"children,omitempty"` // Directory entries
}

// New creates a new empty directory tree.
func New() *DTree {
	return &DTree{}
}

// Search looks for an entry by name among the immediate children.
func (t *DTree) Search(name string) (*DEnt, bool) {
	i, found := sort.Find(len(t.Children), func(i int) int {
		return strings.Compare(name, t.Children[i].Name)
	})

	if found {
		return t.Children[i], true
	}
	return nil, false
}

// Mkdir creates an entry with the given name and an empty subdirectory in
// this directory. The entry is inserted at its sorted position.
func (t *DTree) Mkdir(name string) error {
	if strings.Contains(name, Separator) {
		return &InvalidNameError{Name: name}
	}

	i, found := sort.Find(len(t.Children), func(i int) int {
		return strings.Compare(name, t.Children[i].Name)
	})
	if found {
		return &ExistsError{Name: name}
	}

	t.Children = append(t.Children, nil)
	copy(t.Children[i+1:], t.Children[i:])
	t.Children[i] = &DEnt{Name: name}

	return nil
}

// Resolve walks path one component at a time, left to right, and returns the
// subdirectory it denotes. An empty path resolves to the receiver. The
// returned pointer refers into the tree, so the caller may read the resolved
// directory or mutate it in place, e.g. by calling Mkdir on it.
func (t *DTree) Resolve(path ...string) (*DTree, error) {
	if len(path) == 0 {
		return t, nil
	}

	entry, found := t.Search(path[0])
	if !found {
		return nil, &NoEntryError{Name: path[0]}
	}

	return entry.Subdir.Resolve(path[1:]...)
}

// Paths produces the path to each reachable leaf, in no particular order.
// Every component is followed by the separator and the whole path is
// prefixed with it, e.g. "/a/b/c/". A directory with no entries is itself a
// leaf and yields the single path "/".
func (t *DTree) Paths() []string {
	if len(t.Children) == 0 {
		return []string{Separator}
	}

	var paths []string
	for _, entry := range t.Children {
		for _, sub := range entry.paths() {
			paths = append(paths, Separator+sub)
		}
	}
	return paths
}

// paths renders the leaf paths beneath an entry, each prefixed with the
// entry's own name.
func (e *DEnt) paths() []string {
	if len(e.Subdir.Children) == 0 {
		return []string{e.Name + Separator}
	}

	var paths []string
	for _, entry := range e.Subdir.Children {
		for _, sub := range entry.paths() {
			paths = append(paths, e.Name+Separator+sub)
		}
	}
	return paths
}
