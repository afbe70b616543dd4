package dtree

import "fmt"

// InvalidNameError indicates a proposed component name containing the
// path separator.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("%s: slash in name is invalid", e.Name)
}

// ExistsError indicates an entry with the given name already exists in the
// target directory.
type ExistsError struct {
	Name string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("%s: directory exists", e.Name)
}

// NoEntryError indicates traversal consumed a path component that matches no
// entry at that level. Name is the component that was not found.
type NoEntryError struct {
	Name string
}

func (e *NoEntryError) Error() string {
	return fmt.Sprintf("%s: invalid element in path", e.Name)
}
