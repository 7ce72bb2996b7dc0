// Package sheet implements the Sheet façade: SetCell, GetValue, CopyRect,
// Save/Load, and Clone. It owns the one cell table a Sheet wraps and is
// the only place that decides when a parsed expression becomes visible.
package sheet

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/vogtb/go-calctree/internal/builder"
	"github.com/vogtb/go-calctree/internal/expr"
	"github.com/vogtb/go-calctree/internal/parser"
	"github.com/vogtb/go-calctree/internal/position"
	"github.com/vogtb/go-calctree/internal/table"
	"github.com/vogtb/go-calctree/internal/value"
)

// Capability is a bit flag describing what an engine supports, mirroring
// the spreadsheet's own capabilities() query.
type Capability uint32

const (
	// CapabilityCyclicDeps means GetValue detects reference cycles and
	// returns Undefined instead of recursing forever.
	CapabilityCyclicDeps Capability = 1 << 0
)

// Capabilities reports this engine's fixed capability set.
func Capabilities() Capability {
	return CapabilityCyclicDeps
}

// Sheet is the façade over a single cell table.
type Sheet struct {
	table *table.Table
	log   *logrus.Entry
}

// New creates an empty Sheet.
func New() *Sheet {
	return &Sheet{table: table.New(), log: logrus.WithField("component", "sheet")}
}

// SetCell parses contents and, only if the parse succeeds, installs the
// resulting expression at pos. On failure the cell at pos is left exactly
// as it was -- the source this is grounded on built the Root in place as
// it parsed, which could leave a half-built Root live at pos if parsing
// failed partway through; parsing into a detached Builder and installing
// only on success avoids that.
func (s *Sheet) SetCell(pos position.Position, contents string) bool {
	isFormula := len(contents) > 0 && contents[0] == '='
	b := builder.New(s.table, isFormula)
	if err := parser.ParseCellText(contents, b); err != nil {
		s.log.WithFields(logrus.Fields{"pos": pos.String(), "error": err}).Debug("setCell parse failed")
		return false
	}
	root, err := b.Finish()
	if err != nil {
		s.log.WithFields(logrus.Fields{"pos": pos.String(), "error": err}).Debug("setCell parse failed")
		return false
	}
	s.table.Install(pos, root.Child, root.IsFormula)
	return true
}

// GetValue evaluates the cell at pos, returning Undefined if pos has
// never been touched, is unassigned, or reaches a reference cycle through
// its references (whether or not pos itself is on the cycle).
func (s *Sheet) GetValue(pos position.Position) value.Value {
	root, ok := s.table.Lookup(pos)
	if !ok {
		return value.Undefined
	}
	visited := map[position.Position]bool{pos: true}
	if root.HasCycle(visited) {
		return value.Undefined
	}
	return root.Evaluate()
}

// snapshot pairs a cell's child expression with its formula flag, taken
// before any destination write so overlapping copy rectangles behave as
// a simultaneous copy rather than reading back writes made earlier in
// the same CopyRect call.
type snapshot struct {
	child     expr.Node
	isFormula bool
}

// CopyRect copies the width x height rectangle starting at src to the
// rectangle starting at dst, applying the uniform delta (dst - src) to
// every relative reference it copies. Destinations whose source cell was
// empty or absent are erased rather than left untouched.
func (s *Sheet) CopyRect(dst, src position.Position, width, height int) {
	snapshots := make(map[position.Position]snapshot, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			from := src.Plus(x, y)
			root, ok := s.table.Lookup(from)
			if !ok || root.Child == nil {
				continue
			}
			snapshots[from] = snapshot{child: root.Child, isFormula: root.IsFormula}
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			from := src.Plus(x, y)
			to := dst.Plus(x, y)
			snap, ok := snapshots[from]
			if !ok {
				s.table.Erase(to)
				continue
			}
			copied := snap.child.DeepCopy(s.table)
			copied.MoveRelativelyBy(expr.Offset{Col: to.Col - from.Col, Row: to.Row - from.Row})
			s.table.Install(to, copied, snap.isFormula)
		}
	}
}

// Clone returns an independent deep copy of s: every CellRef in the copy
// binds to the clone's own table, never to s's.
func (s *Sheet) Clone() *Sheet {
	clone := New()
	for _, pos := range s.table.Positions() {
		srcRoot, _ := s.table.Lookup(pos)
		dstRoot := clone.table.Ensure(pos)
		if srcRoot.Child != nil {
			dstRoot.Child = srcRoot.Child.DeepCopy(clone.table)
		}
		dstRoot.IsFormula = srcRoot.IsFormula
	}
	return clone
}

// Positions returns every materialized position, sorted by (column,
// row), whether or not it has been assigned.
func (s *Sheet) Positions() []position.Position {
	return s.table.Positions()
}

// Dump writes a human-readable listing of every assigned cell as
// "<address>: <printed expression>" lines, one per cell. This is a
// debug aid distinct from the framed Save format -- it is not meant to
// round-trip through Load.
func (s *Sheet) Dump(w io.Writer) error {
	for _, pos := range s.table.Positions() {
		root, _ := s.table.Lookup(pos)
		if root.Child == nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: ", pos.String()); err != nil {
			return err
		}
		root.Print(w)
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
