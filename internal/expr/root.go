package expr

import (
	"io"

	"github.com/vogtb/go-calctree/internal/position"
	"github.com/vogtb/go-calctree/internal/value"
)

// Root sits above every cell's expression tree. Child is nil for a cell
// that exists only because something references it but hasn't been
// assigned yet. IsFormula controls whether Print emits a leading "=".
type Root struct {
	Child     Node
	IsFormula bool
}

func (r *Root) Evaluate() value.Value {
	if r.Child == nil {
		return value.Undefined
	}
	return r.Child.Evaluate()
}

func (r *Root) DeepCopy(scratch Table) Node {
	copied := &Root{IsFormula: r.IsFormula}
	if r.Child != nil {
		copied.Child = r.Child.DeepCopy(scratch)
	}
	return copied
}

func (r *Root) MoveRelativelyBy(delta Offset) {
	if r.Child != nil {
		r.Child.MoveRelativelyBy(delta)
	}
}

func (r *Root) Print(w io.Writer) {
	if r.IsFormula {
		io.WriteString(w, "=")
	}
	if r.Child != nil {
		r.Child.Print(w)
	}
}

func (r *Root) HasCycle(visited map[position.Position]bool) bool {
	if r.Child == nil {
		return false
	}
	return r.Child.HasCycle(visited)
}
