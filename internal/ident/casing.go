// Package ident converts the raw method names produced by the planner into Go
// identifiers and offers spelling suggestions for diagnostics.
package ident

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tokenize splits an identifier into words on underscores, dashes and case
// transitions. Acronyms stay together:
//
//	"set_count"  -> ["set", "count"]
//	"mut_HTTPUrl" -> ["mut", "HTTP", "Url"]
func Tokenize(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()

			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

// Exported renders s as an exported Go identifier: "set_count" -> "SetCount".
func Exported(s string) string {
	title := newTitle()

	tokens := Tokenize(s)
	for i, t := range tokens {
		tokens[i] = title.String(t)
	}

	return strings.Join(tokens, "")
}

// Unexported renders s as an unexported Go identifier: "set_count" ->
// "setCount", "URL" -> "url".
func Unexported(s string) string {
	tokens := Tokenize(s)
	if len(tokens) == 0 {
		return ""
	}

	if isUpperWord(tokens[0]) {
		tokens[0] = strings.ToLower(tokens[0])
	} else {
		r, size := utf8.DecodeRuneInString(tokens[0])
		tokens[0] = string(unicode.ToLower(r)) + tokens[0][size:]
	}

	title := newTitle()
	for i := 1; i < len(tokens); i++ {
		tokens[i] = title.String(tokens[i])
	}

	return strings.Join(tokens, "")
}

// IsExported reports whether s starts with an upper-case letter.
func IsExported(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)

	return unicode.IsUpper(r)
}

// newTitle returns a title caser. Casers keep state and cannot be shared
// between goroutines.
func newTitle() cases.Caser {
	return cases.Title(language.English, cases.NoLower)
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

func isUpperWord(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
	}

	return true
}

// startsToken reports whether a new word begins at runes[i].
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]

	if !unicode.IsUpper(r) {
		return false
	}

	if !unicode.IsUpper(prev) && !isSeparator(prev) {
		return true
	}

	// "XMLParser": the acronym ends before the 'P'.
	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
