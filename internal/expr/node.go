// Package expr implements the expression tree: NumberLit, StringLit,
// CellRef, Unary, Binary and Root node kinds, and the four operations
// every node supports (Evaluate, DeepCopy, MoveRelativelyBy, Print) plus
// cycle detection. Nodes are tagged variants, not a class hierarchy --
// each concrete type just implements the Node interface directly.
package expr

import (
	"io"

	"github.com/vogtb/go-calctree/internal/position"
	"github.com/vogtb/go-calctree/internal/value"
)

// Table is the non-owning handle a CellRef uses to resolve the cell it
// points at. The real implementation lives in package table; expr only
// depends on this interface so the two packages don't import each other.
type Table interface {
	// Ensure returns the Root at pos, creating an empty one if absent.
	Ensure(pos position.Position) *Root
	// Lookup returns the Root at pos without creating one.
	Lookup(pos position.Position) (*Root, bool)
}

// Offset is a (column, row) delta applied by MoveRelativelyBy.
type Offset struct {
	Col int
	Row int
}

// Node is the contract every expression tree member satisfies.
type Node interface {
	Evaluate() value.Value
	DeepCopy(scratch Table) Node
	MoveRelativelyBy(delta Offset)
	Print(w io.Writer)
	HasCycle(visited map[position.Position]bool) bool
}

// BinaryOp enumerates the binary/relational operators. The pop order used
// to build these from a stack is uniform across every member, including
// multiplication -- the original source popped Mul's operands in the
// opposite order from every other binary op, which only mattered for
// Print() on non-commutative expressions, and the engine never
// reconstructs a Mul as non-commutative, so this port uses one convention
// throughout instead of reproducing the inconsistency.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
)

var binaryOpSymbols = map[BinaryOp]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpPow: "^",
	OpEq:  "=",
	OpNe:  "<>",
	OpLt:  "<",
	OpLe:  "<=",
	OpGt:  ">",
	OpGe:  ">=",
}

// UnaryOp enumerates the unary operators. Only negation exists today but
// the type mirrors BinaryOp for symmetry and room to grow.
type UnaryOp int

const (
	OpNeg UnaryOp = iota
)

var unaryOpSymbols = map[UnaryOp]string{
	OpNeg: "-",
}
