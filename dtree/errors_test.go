package dtree_test

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"

	"github.com/dtreelab/dtree-sim/dtree"
	"gotest.tools/assert"
)

func extractNoEntryError(err error) *dtree.NoEntryError {
	var noEntry *dtree.NoEntryError
	if errors.As(err, &noEntry) {
		return noEntry
	}
	return nil
}

func TestErrorAs(t *testing.T) {
	err := fmt.Errorf("123")
	assert.Equal(t, extractNoEntryError(err) == nil, true)
	err = &dtree.NoEntryError{
		Name: "missing",
	}
	assert.DeepEqual(
		t,
		extractNoEntryError(errors.WithMessage(err, "failed to change directory")),
		err,
	)
	assert.DeepEqual(
		t,
		extractNoEntryError(errors.WithMessage(errors.WithMessage(err, "failed to resolve path"), "failed to list paths")),
		err,
	)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, (&dtree.InvalidNameError{Name: "a/b"}).Error(), "a/b: slash in name is invalid")
	assert.Equal(t, (&dtree.ExistsError{Name: "a"}).Error(), "a: directory exists")
	assert.Equal(t, (&dtree.NoEntryError{Name: "b"}).Error(), "b: invalid element in path")
}
