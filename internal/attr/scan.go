package attr

import (
	"go/scanner"
	"go/token"
	"strconv"

	"property-generator/internal/diagnostic"
)

// Scan parses text into entries. base is the position of the first byte of
// text in the caller's file set; pass token.NoPos when text does not come from
// a file, entry positions are then NoPos and only offsets are meaningful.
func Scan(text string, base token.Pos) ([]Entry, error) {
	return Source{Text: text, Pos: base}.Scan()
}

// Scan parses the source text into entries.
func (s Source) Scan() ([]Entry, error) {
	text := s.Text
	p := newParser(text, s.PosAt)

	entries, err := p.entries(token.EOF)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, p.errorAt(diagnostic.CodeMalformed, 0, len(text), "attribute should not be empty")
	}

	return entries, nil
}

type lexeme struct {
	tok    token.Token
	lit    string
	offset int
}

type parser struct {
	text  string
	posAt func(offset int) token.Pos

	sc   scanner.Scanner
	file *token.File
	err  *diagnostic.Error

	cur lexeme
}

func newParser(text string, posAt func(int) token.Pos) *parser {
	p := &parser{text: text, posAt: posAt}

	fset := token.NewFileSet()
	p.file = fset.AddFile("", fset.Base(), len(text))
	p.sc.Init(p.file, []byte(text), p.onError, 0)
	p.next()

	return p
}

func (p *parser) onError(pos token.Position, msg string) {
	if p.err != nil {
		return
	}

	p.err = p.errorAt(diagnostic.CodeMalformed, pos.Offset, pos.Offset, "%s", msg)
}

func (p *parser) next() {
	for {
		pos, tok, lit := p.sc.Scan()
		// The scanner inserts semicolons at line ends; a tag never contains one
		// that matters.
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}

		p.cur = lexeme{tok: tok, lit: lit, offset: p.file.Offset(pos)}

		return
	}
}

func (p *parser) pos(offset int) token.Pos {
	return p.posAt(offset)
}

func (p *parser) errorAt(code diagnostic.Code, from, to int, format string, args ...any) *diagnostic.Error {
	return diagnostic.Errorf(code, p.pos(from), p.pos(to), from, format, args...)
}

func (p *parser) fail() error {
	if p.err != nil {
		return p.err
	}

	return nil
}

// ident accepts identifiers and Go keywords, so that `type` works as a key.
func (p *parser) ident() (string, bool) {
	if p.cur.tok == token.IDENT || p.cur.tok.IsKeyword() {
		name := p.cur.lit
		if name == "" {
			name = p.cur.tok.String()
		}

		return name, true
	}

	return "", false
}

func (p *parser) describe() string {
	switch {
	case p.cur.tok == token.EOF:
		return "end of attribute"
	case p.cur.lit != "":
		return strconv.Quote(p.cur.lit)
	default:
		return "`" + p.cur.tok.String() + "`"
	}
}

func (p *parser) entries(closing token.Token) ([]Entry, error) {
	var out []Entry

	for {
		if err := p.fail(); err != nil {
			return nil, err
		}

		if p.cur.tok == closing {
			return out, nil
		}

		e, err := p.entry()
		if err != nil {
			return nil, err
		}

		out = append(out, e)

		switch p.cur.tok {
		case token.COMMA:
			p.next()
		case closing:
		default:
			return nil, p.errorAt(diagnostic.CodeMalformed, p.cur.offset, p.cur.offset,
				"expected `,` or %s, found %s", closingName(closing), p.describe())
		}
	}
}

func closingName(tok token.Token) string {
	if tok == token.EOF {
		return "end of attribute"
	}

	return "`" + tok.String() + "`"
}

func (p *parser) entry() (Entry, error) {
	name, ok := p.ident()
	if !ok {
		return Entry{}, p.errorAt(diagnostic.CodeMalformed, p.cur.offset, p.cur.offset,
			"expected an option name, found %s", p.describe())
	}

	e := Entry{
		Kind:   KindFlag,
		Name:   name,
		Pos:    p.pos(p.cur.offset),
		Offset: p.cur.offset,
	}
	end := p.cur.offset + len(name)
	p.next()

	switch p.cur.tok {
	case token.LPAREN:
		p.next()

		items, err := p.entries(token.RPAREN)
		if err != nil {
			return Entry{}, err
		}

		e.Kind = KindList
		e.Items = items
		end = p.cur.offset + 1
		p.next()

	case token.ASSIGN:
		assignAt := p.cur.offset
		p.next()

		if err := p.fail(); err != nil {
			return Entry{}, err
		}

		switch p.cur.tok {
		case token.STRING:
			value, err := strconv.Unquote(p.cur.lit)
			if err != nil {
				return Entry{}, p.errorAt(diagnostic.CodeMalformed, p.cur.offset, p.cur.offset+len(p.cur.lit),
					"invalid string literal %s", p.cur.lit)
			}

			e.Kind = KindValue
			e.Value = value
			e.ValuePos = p.pos(p.cur.offset)
			e.ValueOffset = p.cur.offset
			end = p.cur.offset + len(p.cur.lit)
			p.next()

		case token.COMMA, token.RPAREN, token.EOF:
			return Entry{}, p.errorAt(diagnostic.CodeMissingValue, e.Offset, assignAt+1,
				"`%s` expects a string literal value", name)

		default:
			return Entry{}, p.errorAt(diagnostic.CodeMalformed, p.cur.offset, p.cur.offset,
				"`%s` value should be a string literal, found %s", name, p.describe())
		}
	}

	e.End = p.pos(end)

	return e, nil
}
