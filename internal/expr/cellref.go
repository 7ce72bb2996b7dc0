package expr

import (
	"io"
	"strconv"

	"github.com/vogtb/go-calctree/internal/position"
	"github.com/vogtb/go-calctree/internal/value"
)

// CellRef refers to another cell in the same table. ColAbsolute and
// RowAbsolute name the axes that do NOT move under a relative copy and
// print with a leading "$" -- the source this engine is grounded on
// stores the flag inverted (named "relative" but meaning "does not move"
// under copy). Naming the fields for what they actually do avoids
// reproducing that confusion.
type CellRef struct {
	Pos         position.Position
	ColAbsolute bool
	RowAbsolute bool
	Table       Table
}

func (c *CellRef) Evaluate() value.Value {
	root, ok := c.Table.Lookup(c.Pos)
	if !ok || root.Child == nil {
		return value.Undefined
	}
	return root.Child.Evaluate()
}

// DeepCopy binds the copy to scratch instead of c.Table, and pre-creates
// an empty Root at Pos in scratch if one doesn't already exist there --
// this is what lets a copied subtree keep "every reference resolves"
// true in its new home.
func (c *CellRef) DeepCopy(scratch Table) Node {
	scratch.Ensure(c.Pos)
	return &CellRef{Pos: c.Pos, ColAbsolute: c.ColAbsolute, RowAbsolute: c.RowAbsolute, Table: scratch}
}

func (c *CellRef) MoveRelativelyBy(delta Offset) {
	if c.ColAbsolute {
		delta.Col = 0
	}
	if c.RowAbsolute {
		delta.Row = 0
	}
	c.Pos = c.Pos.Plus(delta.Col, delta.Row)
}

func (c *CellRef) Print(w io.Writer) {
	if c.ColAbsolute {
		io.WriteString(w, "$")
	}
	io.WriteString(w, c.Pos.ColumnText())
	if c.RowAbsolute {
		io.WriteString(w, "$")
	}
	io.WriteString(w, strconv.Itoa(c.Pos.Row))
}

// HasCycle marks Pos grey on entry and recurses into the target; on a
// clean (acyclic) return it flips Pos back to white so a later sibling
// branch that also reaches Pos isn't falsely flagged.
func (c *CellRef) HasCycle(visited map[position.Position]bool) bool {
	if visited[c.Pos] {
		return true
	}
	visited[c.Pos] = true
	detected := false
	if root, ok := c.Table.Lookup(c.Pos); ok {
		detected = root.HasCycle(visited)
	}
	if !detected {
		visited[c.Pos] = false
	}
	return detected
}
