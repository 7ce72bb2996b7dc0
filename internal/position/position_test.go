package position

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndColumnText(t *testing.T) {
	cases := []struct {
		text string
		col  int
		row  int
	}{
		{"A1", 1, 1},
		{"Z1", 26, 1},
		{"AA1", 27, 1},
		{"AZ10", 52, 10},
		{"az10", 52, 10},
		{"BA1", 53, 1},
	}
	for _, c := range cases {
		pos, err := Parse(c.text)
		require.NoError(t, err, c.text)
		assert.Equal(t, c.col, pos.Col, c.text)
		assert.Equal(t, c.row, pos.Row, c.text)
		assert.Equal(t, pos.ColumnText()+strconv.Itoa(c.row), pos.String())
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, text := range []string{"", "1A", "A", "12", "A-1", "A1B", "$A1"} {
		_, err := Parse(text)
		assert.Error(t, err, text)
	}
}

func TestRoundTripBijective(t *testing.T) {
	for col := 1; col <= 1_000_000; col += 997 {
		p := New(col, 1)
		back, err := Parse(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, back)
	}
}

func TestPlusAndLess(t *testing.T) {
	a := New(1, 1)
	b := a.Plus(2, 3)
	assert.Equal(t, New(3, 4), b)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, New(1, 5).Less(New(2, 1)))
}
