package expr

import (
	"fmt"
	"io"
	"strings"

	"github.com/vogtb/go-calctree/internal/position"
	"github.com/vogtb/go-calctree/internal/value"
)

// NumberLit is a numeric literal.
type NumberLit struct {
	Value float64
}

func (n *NumberLit) Evaluate() value.Value { return value.Number(n.Value) }

func (n *NumberLit) DeepCopy(scratch Table) Node {
	return &NumberLit{Value: n.Value}
}

func (n *NumberLit) MoveRelativelyBy(delta Offset) {}

func (n *NumberLit) Print(w io.Writer) {
	fmt.Fprint(w, value.FormatNumber(n.Value))
}

func (n *NumberLit) HasCycle(visited map[position.Position]bool) bool { return false }

// StringLit is a string literal. Quoted controls how Print renders it:
// formula-embedded strings print quoted (with embedded quotes doubled),
// while a bare non-formula cell's text prints raw.
type StringLit struct {
	Text   string
	Quoted bool
}

func (n *StringLit) Evaluate() value.Value { return value.String(n.Text) }

func (n *StringLit) DeepCopy(scratch Table) Node {
	return &StringLit{Text: n.Text, Quoted: n.Quoted}
}

func (n *StringLit) MoveRelativelyBy(delta Offset) {}

func (n *StringLit) Print(w io.Writer) {
	if !n.Quoted {
		io.WriteString(w, n.Text)
		return
	}
	fmt.Fprintf(w, "\"%s\"", strings.ReplaceAll(n.Text, "\"", "\"\""))
}

func (n *StringLit) HasCycle(visited map[position.Position]bool) bool { return false }
