package dtree_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/dtreelab/dtree-sim/dtree"
)

func TestMkdir(t *testing.T) {
	tree := dtree.New()

	err := tree.Mkdir("test")
	assert.NoError(t, err)
	assert.Equal(t, []string{"/test/"}, tree.Paths())
}

func TestMkdirDuplicate(t *testing.T) {
	tree := dtree.New()

	assert.NoError(t, tree.Mkdir("a"))

	err := tree.Mkdir("a")
	assert.Error(t, err)

	var exists *dtree.ExistsError
	assert.True(t, errors.As(err, &exists))
	assert.Equal(t, "a", exists.Name)

	// the failed call must not have added an entry
	assert.Len(t, tree.Children, 1)
}

func TestMkdirSlashInName(t *testing.T) {
	tree := dtree.New()

	err := tree.Mkdir("a/b")
	assert.Error(t, err)

	var invalid *dtree.InvalidNameError
	assert.True(t, errors.As(err, &invalid))
	assert.Equal(t, "a/b", invalid.Name)

	assert.Empty(t, tree.Children)
}

func TestMkdirKeepsChildrenSorted(t *testing.T) {
	tree := dtree.New()

	assert.NoError(t, tree.Mkdir("c"))
	assert.NoError(t, tree.Mkdir("a"))
	assert.NoError(t, tree.Mkdir("b"))

	var names []string
	for _, entry := range tree.Children {
		names = append(names, entry.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestSearch(t *testing.T) {
	tree := dtree.New()
	assert.NoError(t, tree.Mkdir("child1"))
	assert.NoError(t, tree.Mkdir("child2"))

	entry, found := tree.Search("child1")
	assert.True(t, found)
	assert.Equal(t, "child1", entry.Name)

	entry, found = tree.Search("nonexistent")
	assert.False(t, found)
	assert.Nil(t, entry)
}

func TestEqual(t *testing.T) {
	build := func(t *testing.T) *dtree.DTree {
		tree := dtree.New()
		assert.NoError(t, tree.Mkdir("a"))
		sub, err := tree.Resolve("a")
		assert.NoError(t, err)
		assert.NoError(t, sub.Mkdir("b"))
		return tree
	}

	lhs := build(t)
	rhs := build(t)
	assert.True(t, lhs.Equal(rhs))

	assert.NoError(t, rhs.Mkdir("z"))
	assert.False(t, lhs.Equal(rhs))
}
