package attr

import (
	"go/token"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Source is attribute text together with its location in a file.
type Source struct {
	Text string
	// Pos is the position of the first byte of Text, or token.NoPos.
	Pos token.Pos
	// Offsets maps each byte of Text to its distance from Pos in the file.
	// It is nil when Text was copied verbatim from the file.
	Offsets []int
}

// PosAt returns the file position of the byte at offset in Text.
func (s Source) PosAt(offset int) token.Pos {
	if !s.Pos.IsValid() {
		return token.NoPos
	}

	if s.Offsets == nil {
		return s.Pos + token.Pos(offset)
	}

	if offset < len(s.Offsets) {
		return s.Pos + token.Pos(s.Offsets[offset])
	}

	// One past the end: the closing quote of the literal.
	if len(s.Offsets) > 0 {
		return s.Pos + token.Pos(s.Offsets[len(s.Offsets)-1]+1)
	}

	return s.Pos
}

// Unquote decodes the Go string literal lit found at pos. The returned Source
// keeps the mapping from decoded bytes back to the literal, so escaped quotes
// do not shift diagnostic positions.
func Unquote(lit string, pos token.Pos) (Source, error) {
	if len(lit) < 2 || lit[0] != '"' || lit[len(lit)-1] != '"' {
		return Source{}, strconv.ErrSyntax
	}

	body := lit[1 : len(lit)-1]

	var (
		out     strings.Builder
		offsets []int
	)

	for i := 0; i < len(body); {
		r, multibyte, tail, err := strconv.UnquoteChar(body[i:], '"')
		if err != nil {
			return Source{}, err
		}

		var n int
		if r < utf8.RuneSelf || !multibyte {
			out.WriteByte(byte(r))
			n = 1
		} else {
			n, _ = out.WriteRune(r)
		}

		for range n {
			offsets = append(offsets, i)
		}

		i = len(body) - len(tail)
	}

	src := Source{Text: out.String(), Offsets: offsets}
	if pos.IsValid() {
		src.Pos = pos + 1
	}

	return src, nil
}
