package builder

import "github.com/vogtb/go-calctree/internal/position"

// parseReferenceText splits a raw reference token like "$A$1", "B12" or
// "$C9" into its bare A1 identifier plus the two absolute-axis flags.
func parseReferenceText(text string) (pos position.Position, colAbsolute, rowAbsolute bool, err error) {
	i := 0
	if i < len(text) && text[i] == '$' {
		colAbsolute = true
		i++
	}
	colStart := i
	for i < len(text) && isAlpha(text[i]) {
		i++
	}
	colText := text[colStart:i]

	if i < len(text) && text[i] == '$' {
		rowAbsolute = true
		i++
	}
	rowText := text[i:]

	pos, err = position.Parse(colText + rowText)
	return pos, colAbsolute, rowAbsolute, err
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
