package common

import (
	"path"
	"strconv"
	"strings"
	"unicode"
)

// PkgAlias returns the name a package is referred to by when imported without
// an explicit name, guessed from its import path the way goimports does:
// "gopkg.in/yaml.v3" is "yaml", "github.com/org/go-spew" is "spew" and
// "example.com/mod/v2" is "mod". Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)

	if strings.HasPrefix(base, "v") {
		if _, err := strconv.Atoi(base[1:]); err == nil {
			if dir := path.Dir(pkgPath); dir != "." {
				base = path.Base(dir)
			}
		}
	}

	base = strings.TrimPrefix(base, "go-")

	if i := strings.IndexFunc(base, notIdentifier); i >= 0 {
		base = base[:i]
	}

	return base
}

func notIdentifier(r rune) bool {
	return !(r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r))
}
