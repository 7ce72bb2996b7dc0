package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vogtb/go-calctree/internal/expr"
	"github.com/vogtb/go-calctree/internal/position"
)

func TestEnsureCreatesEmptyPlaceholder(t *testing.T) {
	tbl := New()
	root := tbl.Ensure(position.New(1, 1))
	assert.Nil(t, root.Child)
	assert.False(t, root.IsFormula)

	again := tbl.Ensure(position.New(1, 1))
	assert.Same(t, root, again)
}

func TestInstallReplacesChild(t *testing.T) {
	tbl := New()
	pos := position.New(1, 1)
	tbl.Install(pos, &expr.NumberLit{Value: 5}, false)
	root, ok := tbl.Lookup(pos)
	assert.True(t, ok)
	assert.Equal(t, &expr.NumberLit{Value: 5}, root.Child)
}

func TestEraseRemovesEntry(t *testing.T) {
	tbl := New()
	pos := position.New(1, 1)
	tbl.Ensure(pos)
	tbl.Erase(pos)
	_, ok := tbl.Lookup(pos)
	assert.False(t, ok)
}

func TestPositionsSortedByColumnThenRow(t *testing.T) {
	tbl := New()
	tbl.Ensure(position.New(2, 1))
	tbl.Ensure(position.New(1, 5))
	tbl.Ensure(position.New(1, 1))

	got := tbl.Positions()
	want := []position.Position{position.New(1, 1), position.New(1, 5), position.New(2, 1)}
	assert.Equal(t, want, got)
}

func TestClearRemovesEverything(t *testing.T) {
	tbl := New()
	tbl.Ensure(position.New(1, 1))
	tbl.Ensure(position.New(2, 2))
	tbl.Clear()
	assert.Equal(t, 0, tbl.Len())
}
