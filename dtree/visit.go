package dtree

import "path"

// Traverse recursively walks the tree depth first and applies the provided
// actionFunc to each entry. The function receives the entry together with its
// relative path from the receiver, e.g. "a/b". Traversal stops at the first
// error, which is returned.
func (t *DTree) Traverse(actionFunc func(entry *DEnt, relativePath string) error) error {
	return t.traverse("", actionFunc)
}

// traverse is a helper function that manages relative paths during the
// traversal process.
func (t *DTree) traverse(baseDir string, actionFunc func(entry *DEnt, relativePath string) error) error {
	for _, entry := range t.Children {
		relative := path.Join(baseDir, entry.Name)

		if err := actionFunc(entry, relative); err != nil {
			return err
		}

		if err := entry.Subdir.traverse(relative, actionFunc); err != nil {
			return err
		}
	}

	return nil
}

// Flatten collects every entry of the tree into a slice, together with a
// slice of relative paths. The optional filterFunc restricts the result to
// entries it accepts.
func (t *DTree) Flatten(filterFunc ...func(*DEnt) bool) (entries []*DEnt, relpaths []string) {
	t.Traverse(func(entry *DEnt, relativePath string) error {
		if len(filterFunc) == 0 || filterFunc[0](entry) {
			entries = append(entries, entry)
			relpaths = append(relpaths, relativePath)
		}
		return nil
	})
	return entries, relpaths
}

// Equal compares two directory trees for structural equality.
func (t *DTree) Equal(rhs *DTree) bool {
	if len(t.Children) != len(rhs.Children) {
		return false
	}

	for i, entry := range t.Children {
		other := rhs.Children[i]
		if entry.Name != other.Name || !entry.Subdir.Equal(&other.Subdir) {
			return false
		}
	}

	return true
}
