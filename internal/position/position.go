// Package position implements the A1-style addressing algebra: parsing,
// printing, and offsetting of (column, row) coordinates. Columns use
// bijective base-26 (A=1, Z=26, AA=27, ...), rows are plain 1-based
// decimal integers.
package position

import (
	"strconv"
	"strings"

	"github.com/vogtb/go-calctree/internal/cellerr"
)

// Position is a single cell coordinate. Col and Row are both 1-based.
type Position struct {
	Col int
	Row int
}

// New builds a Position from already-resolved column/row numbers. It does
// not validate that Col/Row are positive; callers that accept raw text
// should go through Parse instead.
func New(col, row int) Position {
	return Position{Col: col, Row: row}
}

// Parse reads an A1-style identifier such as "B12" or "aa7" and returns
// the corresponding Position. Letters are case-insensitive; there must be
// at least one letter followed by at least one digit and nothing else.
func Parse(text string) (Position, error) {
	i := 0
	for i < len(text) && isAlpha(text[i]) {
		i++
	}
	if i == 0 || i == len(text) {
		return Position{}, cellerr.New(cellerr.InvalidIdentifier, "malformed cell identifier: "+text)
	}
	colText := strings.ToUpper(text[:i])
	rowText := text[i:]
	for _, c := range rowText {
		if c < '0' || c > '9' {
			return Position{}, cellerr.New(cellerr.InvalidIdentifier, "malformed cell identifier: "+text)
		}
	}
	row, err := strconv.Atoi(rowText)
	if err != nil || row <= 0 {
		return Position{}, cellerr.New(cellerr.InvalidIdentifier, "malformed cell identifier: "+text)
	}
	return Position{Col: columnTextToNumber(colText), Row: row}, nil
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func columnTextToNumber(colText string) int {
	col := 0
	for _, c := range colText {
		col = col*26 + int(c-'A'+1)
	}
	return col
}

// ColumnText renders the Col component in bijective base-26, e.g. 1->"A",
// 26->"Z", 27->"AA".
func (p Position) ColumnText() string {
	n := p.Col
	var buf []byte
	for n > 0 {
		n--
		buf = append([]byte{byte('A' + n%26)}, buf...)
		n /= 26
	}
	return string(buf)
}

// String renders the full A1 identifier, e.g. "AA12".
func (p Position) String() string {
	return p.ColumnText() + strconv.Itoa(p.Row)
}

// Plus returns a new Position offset by (dCol, dRow).
func (p Position) Plus(dCol, dRow int) Position {
	return Position{Col: p.Col + dCol, Row: p.Row + dRow}
}

// Less orders positions by (column, row), which is the iteration order
// used throughout the cell table.
func (p Position) Less(o Position) bool {
	if p.Col != o.Col {
		return p.Col < o.Col
	}
	return p.Row < o.Row
}
