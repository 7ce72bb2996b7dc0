// Package table implements the Cell table: a sparse map from Position to
// *expr.Root, iterated in (column, row) order. A position referenced by a
// formula is materialized as an empty entry when that formula is parsed.
// Erase removes an entry even if some formula still references it, and a
// reference moved by a copy can point at a position with no entry; a
// CellRef evaluates both "no entry" and "empty cell" to Undefined.
package table

import (
	"sort"

	"github.com/vogtb/go-calctree/internal/expr"
	"github.com/vogtb/go-calctree/internal/position"
)

// Table is the concrete expr.Table implementation owned by a Sheet.
type Table struct {
	cells map[position.Position]*expr.Root
}

func New() *Table {
	return &Table{cells: map[position.Position]*expr.Root{}}
}

// Ensure returns the Root at pos, creating an empty placeholder if one
// isn't already present.
func (t *Table) Ensure(pos position.Position) *expr.Root {
	if r, ok := t.cells[pos]; ok {
		return r
	}
	r := &expr.Root{}
	t.cells[pos] = r
	return r
}

// Lookup returns the Root at pos without creating one.
func (t *Table) Lookup(pos position.Position) (*expr.Root, bool) {
	r, ok := t.cells[pos]
	return r, ok
}

// Install sets the child and formula flag of the Root at pos, creating
// the Root if absent. SetCell and CopyRect make a fully-built expression
// visible at pos only through this call, so they control exactly when
// that happens.
func (t *Table) Install(pos position.Position, child expr.Node, isFormula bool) {
	root := t.Ensure(pos)
	root.Child = child
	root.IsFormula = isFormula
}

// Erase removes pos entirely, including an empty placeholder.
func (t *Table) Erase(pos position.Position) {
	delete(t.cells, pos)
}

// Clear removes every entry.
func (t *Table) Clear() {
	t.cells = map[position.Position]*expr.Root{}
}

// Len reports how many positions are materialized, assigned or not.
func (t *Table) Len() int {
	return len(t.cells)
}

// Positions returns every materialized position, sorted by (column, row).
func (t *Table) Positions() []position.Position {
	out := make([]position.Position, 0, len(t.cells))
	for p := range t.cells {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
