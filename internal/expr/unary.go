package expr

import (
	"fmt"
	"io"

	"github.com/vogtb/go-calctree/internal/position"
	"github.com/vogtb/go-calctree/internal/value"
)

// Unary is a single-operand expression, e.g. negation.
type Unary struct {
	Op    UnaryOp
	Child Node
}

func (n *Unary) Evaluate() value.Value {
	v := n.Child.Evaluate()
	switch n.Op {
	case OpNeg:
		if !v.IsNumber() {
			return value.Undefined
		}
		return value.Number(-v.Num)
	default:
		return value.Undefined
	}
}

func (n *Unary) DeepCopy(scratch Table) Node {
	return &Unary{Op: n.Op, Child: n.Child.DeepCopy(scratch)}
}

func (n *Unary) MoveRelativelyBy(delta Offset) {
	n.Child.MoveRelativelyBy(delta)
}

func (n *Unary) Print(w io.Writer) {
	fmt.Fprintf(w, "(%s", unaryOpSymbols[n.Op])
	n.Child.Print(w)
	io.WriteString(w, ")")
}

func (n *Unary) HasCycle(visited map[position.Position]bool) bool {
	return n.Child.HasCycle(visited)
}
