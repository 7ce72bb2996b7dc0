// Package builder implements the operand-stack event sink that a parser
// drives while reading a cell's text. It is the only contract between
// this engine and whatever produces the event stream (lexer/parser or
// otherwise) -- grammar and tokenization are the parser's problem.
package builder

import (
	"github.com/vogtb/go-calctree/internal/cellerr"
	"github.com/vogtb/go-calctree/internal/expr"
)

// EventSink is the event table a parser calls into while consuming one
// cell's text. valRange and funcCall exist in the table because the
// grammar can mention them, but range values and user-defined functions
// are out of scope, so both are no-ops.
type EventSink interface {
	ValNumber(v float64)
	ValString(s string)
	ValReference(text string) error
	OpAdd()
	OpSub()
	OpMul()
	OpDiv()
	OpPow()
	OpNeg()
	OpEq()
	OpNe()
	OpLt()
	OpLe()
	OpGt()
	OpGe()
	ValRange(text string)
	FuncCall(name string, argc int)
}

// Builder is the concrete EventSink. It owns an operand stack and the
// table handle new CellRef nodes bind to.
type Builder struct {
	table     expr.Table
	isFormula bool
	stack     []expr.Node
}

// New creates a Builder. isFormula is fixed at construction time (it
// mirrors whether the cell's text began with "=") and governs how string
// literals encountered during this parse print back out.
func New(table expr.Table, isFormula bool) *Builder {
	return &Builder{table: table, isFormula: isFormula}
}

func (b *Builder) push(n expr.Node) { b.stack = append(b.stack, n) }

func (b *Builder) pop() expr.Node {
	n := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return n
}

func (b *Builder) ValNumber(v float64) {
	b.push(&expr.NumberLit{Value: v})
}

func (b *Builder) ValString(s string) {
	b.push(&expr.StringLit{Text: s, Quoted: b.isFormula})
}

func (b *Builder) ValReference(text string) error {
	pos, colAbs, rowAbs, err := parseReferenceText(text)
	if err != nil {
		return err
	}
	b.table.Ensure(pos)
	b.push(&expr.CellRef{Pos: pos, ColAbsolute: colAbs, RowAbsolute: rowAbs, Table: b.table})
	return nil
}

// binary pops the right operand then the left, matching every operator
// uniformly -- including Mul, where the source this is grounded on
// popped in the opposite order from its siblings.
func (b *Builder) binary(op expr.BinaryOp) {
	right := b.pop()
	left := b.pop()
	b.push(&expr.Binary{Op: op, Left: left, Right: right})
}

func (b *Builder) OpAdd() { b.binary(expr.OpAdd) }
func (b *Builder) OpSub() { b.binary(expr.OpSub) }
func (b *Builder) OpMul() { b.binary(expr.OpMul) }
func (b *Builder) OpDiv() { b.binary(expr.OpDiv) }
func (b *Builder) OpPow() { b.binary(expr.OpPow) }
func (b *Builder) OpEq()  { b.binary(expr.OpEq) }
func (b *Builder) OpNe()  { b.binary(expr.OpNe) }
func (b *Builder) OpLt()  { b.binary(expr.OpLt) }
func (b *Builder) OpLe()  { b.binary(expr.OpLe) }
func (b *Builder) OpGt()  { b.binary(expr.OpGt) }
func (b *Builder) OpGe()  { b.binary(expr.OpGe) }

func (b *Builder) OpNeg() {
	child := b.pop()
	b.push(&expr.Unary{Op: expr.OpNeg, Child: child})
}

func (b *Builder) ValRange(text string)           {}
func (b *Builder) FuncCall(name string, argc int) {}

// Finish pops the single remaining operand and wraps it in a fresh Root.
// It does not touch the sheet's table -- the caller installs the result
// only once it has decided the whole parse succeeded, which is what
// keeps a failed parse from leaving a half-built Root live in the table.
func (b *Builder) Finish() (*expr.Root, error) {
	if len(b.stack) != 1 {
		return nil, cellerr.New(cellerr.ParseFailure, "malformed expression: operand stack did not reduce to one value")
	}
	return &expr.Root{Child: b.stack[0], IsFormula: b.isFormula}, nil
}
