package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vogtb/go-calctree/internal/expr"
	"github.com/vogtb/go-calctree/internal/position"
	"github.com/vogtb/go-calctree/internal/table"
	"github.com/vogtb/go-calctree/internal/value"
)

func TestValNumberThenFinishProducesRoot(t *testing.T) {
	b := New(table.New(), false)
	b.ValNumber(42)
	root, err := b.Finish()
	require.NoError(t, err)
	assert.False(t, root.IsFormula)
	assert.Equal(t, value.Number(42), root.Evaluate())
}

func TestBinaryOpsPopRightThenLeft(t *testing.T) {
	b := New(table.New(), true)
	b.ValNumber(10)
	b.ValNumber(3)
	b.OpSub()
	root, err := b.Finish()
	require.NoError(t, err)
	assert.Equal(t, value.Number(7), root.Evaluate())
}

func TestOpMulUsesSamePopOrderAsOtherBinaryOps(t *testing.T) {
	b := New(table.New(), true)
	b.ValNumber(10)
	b.ValNumber(3)
	b.OpMul()
	root, err := b.Finish()
	require.NoError(t, err)

	bin := root.Child.(*expr.Binary)
	assert.Equal(t, value.Number(10), bin.Left.Evaluate())
	assert.Equal(t, value.Number(3), bin.Right.Evaluate())
}

func TestValReferenceParsesDollarFlags(t *testing.T) {
	tbl := table.New()
	b := New(tbl, true)
	err := b.ValReference("$A$1")
	require.NoError(t, err)
	root, err := b.Finish()
	require.NoError(t, err)

	ref := root.Child.(*expr.CellRef)
	assert.Equal(t, position.New(1, 1), ref.Pos)
	assert.True(t, ref.ColAbsolute)
	assert.True(t, ref.RowAbsolute)
}

func TestValReferenceEnsuresPlaceholderInTable(t *testing.T) {
	tbl := table.New()
	b := New(tbl, true)
	require.NoError(t, b.ValReference("B2"))
	_, ok := tbl.Lookup(position.New(2, 2))
	assert.True(t, ok)
}

func TestValStringUsesBuilderIsFormulaFlagForQuoting(t *testing.T) {
	formula := New(table.New(), true)
	formula.ValString("hi")
	root, err := formula.Finish()
	require.NoError(t, err)
	assert.True(t, root.Child.(*expr.StringLit).Quoted)

	plain := New(table.New(), false)
	plain.ValString("hi")
	root, err = plain.Finish()
	require.NoError(t, err)
	assert.False(t, root.Child.(*expr.StringLit).Quoted)
}

func TestFinishFailsOnMalformedStack(t *testing.T) {
	b := New(table.New(), true)
	b.ValNumber(1)
	b.ValNumber(2)
	_, err := b.Finish()
	assert.Error(t, err)
}

func TestOpNegWrapsOperand(t *testing.T) {
	b := New(table.New(), true)
	b.ValNumber(5)
	b.OpNeg()
	root, err := b.Finish()
	require.NoError(t, err)
	assert.Equal(t, value.Number(-5), root.Evaluate())
}
