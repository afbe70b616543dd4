// Package sim provides an operating system stub over a directory tree: a
// session holding the tree together with a current working directory.
package sim

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dtreelab/dtree-sim/dtree"
)

// Session models operating system state: the directory tree and the current
// working directory. The zero value is a session with an empty tree,
// positioned at the root.
type Session struct {
	root dtree.DTree
	cwd  []string
}

// NewSession creates a session with an empty directory tree. The working
// directory is the root.
func NewSession() *Session {
	return &Session{}
}

// Root exposes the session's directory tree.
func (s *Session) Root() *dtree.DTree {
	return &s.root
}

// Cwd returns a copy of the working directory components. An empty result
// means the root.
func (s *Session) Cwd() []string {
	return append([]string(nil), s.cwd...)
}

// Mkdir creates a new subdirectory with the given name in the working
// directory.
func (s *Session) Mkdir(name string) error {
	if strings.Contains(name, dtree.Separator) {
		return &dtree.InvalidNameError{Name: name}
	}

	wd, err := s.root.Resolve(s.cwd...)
	if err != nil {
		// The working directory is validated on every change, so this is
		// unreachable unless the tree was mutated behind the session's back.
		return &InvalidCwdError{Cwd: s.Cwd(), cause: err}
	}

	if err := wd.Mkdir(name); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"name": name,
		"cwd":  s.cwd,
	}).Debug("Directory created")

	return nil
}

// Chdir changes the working directory to the subdirectory given by path,
// relative to the current working directory. An empty path changes to the
// root. There is no notion of "." or "..": every component is taken
// literally as a child name. On failure the working directory is left
// unchanged.
func (s *Session) Chdir(path ...string) error {
	if len(path) == 0 {
		s.cwd = nil
		return nil
	}

	candidate := append(s.Cwd(), path...)
	if _, err := s.root.Resolve(candidate...); err != nil {
		return err
	}

	s.cwd = candidate
	logrus.WithField("cwd", s.cwd).Debug("Working directory changed")

	return nil
}

// Paths produces the paths from the working directory to each reachable
// leaf, in no particular order.
func (s *Session) Paths() ([]string, error) {
	wd, err := s.root.Resolve(s.cwd...)
	if err != nil {
		return nil, &InvalidCwdError{Cwd: s.Cwd(), cause: err}
	}

	return wd.Paths(), nil
}
