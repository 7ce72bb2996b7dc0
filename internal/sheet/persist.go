package sheet

import (
	"bufio"
	"bytes"
	"io"

	"github.com/vogtb/go-calctree/internal/cellerr"
	"github.com/vogtb/go-calctree/internal/position"
)

// The persisted format frames a sheet as:
//
//	'{' US (<position-text> RS ':' RS <expression-text> US)* '}'
//
// where US is 0x1F, RS is 0x1E, position-text is column-letters directly
// followed by the decimal row (no separator), and expression-text is the
// Root's Print() output, including a leading "=" for formula cells.
const (
	recordOpen  = '{'
	recordClose = '}'
	fieldSep    = 0x1F
	recordSep   = 0x1E
)

// Save writes every materialized cell, assigned or not, to w in the
// framed format above.
func (s *Sheet) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := bw.WriteByte(recordOpen); err != nil {
		return cellerr.New(cellerr.IOFailure, err.Error())
	}
	if err := bw.WriteByte(fieldSep); err != nil {
		return cellerr.New(cellerr.IOFailure, err.Error())
	}
	for _, pos := range s.table.Positions() {
		root, _ := s.table.Lookup(pos)
		if _, err := bw.WriteString(pos.String()); err != nil {
			return cellerr.New(cellerr.IOFailure, err.Error())
		}
		if err := bw.WriteByte(recordSep); err != nil {
			return cellerr.New(cellerr.IOFailure, err.Error())
		}
		if err := bw.WriteByte(':'); err != nil {
			return cellerr.New(cellerr.IOFailure, err.Error())
		}
		if err := bw.WriteByte(recordSep); err != nil {
			return cellerr.New(cellerr.IOFailure, err.Error())
		}
		var buf bytes.Buffer
		root.Print(&buf)
		if _, err := bw.Write(buf.Bytes()); err != nil {
			return cellerr.New(cellerr.IOFailure, err.Error())
		}
		if err := bw.WriteByte(fieldSep); err != nil {
			return cellerr.New(cellerr.IOFailure, err.Error())
		}
	}
	if err := bw.WriteByte(recordClose); err != nil {
		return cellerr.New(cellerr.IOFailure, err.Error())
	}
	return bw.Flush()
}

// Load replaces s's entire state with the contents read from r. A
// missing opening frame or leading field separator returns an error
// before s is touched. After that, s is cleared, and a framing mismatch
// or read error returns an error and leaves s holding only the cells read
// before it; a malformed expression for some cell does too, since persisted data is
// assumed to have come from a prior Save and any corruption there is
// worth surfacing rather than silently dropping cells.
func (s *Sheet) Load(r io.Reader) error {
	br := bufio.NewReader(r)

	open, err := br.ReadByte()
	if err != nil || open != recordOpen {
		return cellerr.New(cellerr.IOFailure, "missing opening frame")
	}
	lead, err := br.ReadByte()
	if err != nil || lead != fieldSep {
		return cellerr.New(cellerr.IOFailure, "missing leading field separator")
	}

	s.table.Clear()

	for {
		b, err := br.ReadByte()
		if err != nil {
			return cellerr.New(cellerr.IOFailure, "unexpected end of input")
		}
		if b == recordClose {
			return nil
		}
		if err := br.UnreadByte(); err != nil {
			return cellerr.New(cellerr.IOFailure, err.Error())
		}

		posText, err := readUntil(br, recordSep)
		if err != nil {
			return err
		}
		colon, err := br.ReadByte()
		if err != nil || colon != ':' {
			return cellerr.New(cellerr.IOFailure, "malformed record separator")
		}
		sep, err := br.ReadByte()
		if err != nil || sep != recordSep {
			return cellerr.New(cellerr.IOFailure, "malformed record separator")
		}
		exprText, err := readUntil(br, fieldSep)
		if err != nil {
			return err
		}

		pos, err := position.Parse(posText)
		if err != nil {
			return err
		}
		if exprText == "" {
			// an empty expression-text marks a placeholder cell that was
			// only materialized because something referenced it; skip it
			// here and let whichever referencing cell we load next
			// re-materialize it via its own parse.
			continue
		}
		if !s.SetCell(pos, exprText) {
			return cellerr.New(cellerr.IOFailure, "malformed persisted expression at "+posText)
		}
	}
}

func readUntil(br *bufio.Reader, stop byte) (string, error) {
	var buf bytes.Buffer
	for {
		b, err := br.ReadByte()
		if err != nil {
			return "", cellerr.New(cellerr.IOFailure, "unexpected end of input")
		}
		if b == stop {
			return buf.String(), nil
		}
		buf.WriteByte(b)
	}
}
