package analyze

import (
	"go/ast"
	"go/token"
	"strconv"

	"property-generator/internal/attr"
	"property-generator/internal/diagnostic"
)

// lookupTag finds key in a struct tag like reflect.StructTag.Lookup, but
// returns the still quoted value and its byte offset in tag.
func lookupTag(tag, key string) (string, int, bool) {
	consumed := 0

	for tag != "" {
		i := 0
		for i < len(tag) && tag[i] == ' ' {
			i++
		}

		tag = tag[i:]
		consumed += i

		if tag == "" {
			break
		}

		i = 0
		for i < len(tag) && tag[i] > ' ' && tag[i] != ':' && tag[i] != '"' && tag[i] != 0x7f {
			i++
		}

		if i == 0 || i+1 >= len(tag) || tag[i] != ':' || tag[i+1] != '"' {
			break
		}

		name := tag[:i]
		tag = tag[i+1:]
		consumed += i + 1

		i = 1
		for i < len(tag) && tag[i] != '"' {
			if tag[i] == '\\' {
				i++
			}
			i++
		}

		if i >= len(tag) {
			break
		}

		if name == key {
			return tag[:i+1], consumed, true
		}

		tag = tag[i+1:]
		consumed += i + 1
	}

	return "", 0, false
}

// fieldTag extracts the attribute source stored under key in a field tag. It
// returns nil when the tag has no such key.
func fieldTag(lit *ast.BasicLit, key string) (*attr.Source, error) {
	if lit == nil || len(lit.Value) < 2 {
		return nil, nil
	}

	raw := lit.Value[0] == '`'

	content := lit.Value[1 : len(lit.Value)-1]
	if !raw {
		var err error
		if content, err = strconv.Unquote(lit.Value); err != nil {
			return nil, diagnostic.Errorf(diagnostic.CodeMalformed, lit.Pos(), lit.End(), -1,
				"invalid struct tag literal: %v", err)
		}
	}

	quoted, offset, ok := lookupTag(content, key)
	if !ok {
		return nil, nil
	}

	valuePos := token.NoPos
	if raw && lit.ValuePos.IsValid() {
		valuePos = lit.ValuePos + 1 + token.Pos(offset)
	}

	src, err := attr.Unquote(quoted, valuePos)
	if err != nil {
		return nil, diagnostic.Errorf(diagnostic.CodeMalformed, lit.Pos(), lit.End(), -1,
			"invalid `%s` tag value %s: %v", key, quoted, err)
	}

	if !raw && lit.ValuePos.IsValid() {
		// Escapes of an interpreted tag literal cannot be mapped back, so
		// every byte points at the tag itself.
		src.Pos = lit.ValuePos
		src.Offsets = make([]int, len(src.Text))
	}

	return &src, nil
}
