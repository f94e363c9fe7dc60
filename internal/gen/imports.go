package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"sort"
	"strings"

	"property-generator/internal/analyze"
	"property-generator/internal/plan"
)

type importSpec struct {
	// Alias is set when the source file names the import explicitly.
	Alias string
	Path  string
}

// importSet collects the imports of one generated file, keyed by the name
// the code refers to them by.
type importSet struct {
	byName map[string]importSpec
}

func newImportSet() *importSet {
	return &importSet{byName: make(map[string]importSpec)}
}

// check reports whether every import of pending can join the set.
func (s *importSet) check(pending map[string]importSpec) error {
	for name, spec := range pending {
		if have, ok := s.byName[name]; ok && have.Path != spec.Path {
			return fmt.Errorf("package name %q refers to both %q and %q", name, have.Path, spec.Path)
		}
	}

	return nil
}

func (s *importSet) merge(pending map[string]importSpec) {
	for name, spec := range pending {
		s.byName[name] = spec
	}
}

// names returns the names taken by imports.
func (s *importSet) names() map[string]bool {
	out := make(map[string]bool, len(s.byName))
	for name := range s.byName {
		out[name] = true
	}

	return out
}

// groups returns the imports sorted by path, standard library first.
func (s *importSet) groups() [][]importSpec {
	var std, other []importSpec

	for _, spec := range s.byName {
		if isStdlib(spec.Path) {
			std = append(std, spec)
		} else {
			other = append(other, spec)
		}
	}

	var out [][]importSpec

	for _, group := range [][]importSpec{std, other} {
		if len(group) == 0 {
			continue
		}

		sort.Slice(group, func(i, j int) bool { return group[i].Path < group[j].Path })
		out = append(out, group)
	}

	return out
}

// isStdlib reports whether path looks like a standard library package: its
// first element has no dot.
func isStdlib(path string) bool {
	first, _, _ := strings.Cut(path, "/")

	return !strings.Contains(first, ".")
}

// importIndex maps the names a source file refers to its imports by.
func importIndex(imports []analyze.Import) map[string]importSpec {
	index := make(map[string]importSpec, len(imports))

	for _, imp := range imports {
		switch imp.Name {
		case "_", ".":
			continue
		case "":
			index[imp.LocalName()] = importSpec{Path: imp.Path}
		default:
			index[imp.Name] = importSpec{Alias: imp.Name, Path: imp.Path}
		}
	}

	return index
}

// resolveImports returns the imports the rendered methods of a container
// depend on.
func resolveImports(def *plan.ContainerDef, renders []render) (map[string]importSpec, error) {
	index := importIndex(def.Imports)
	needed := make(map[string]importSpec)

	for _, r := range renders {
		for _, pkg := range r.std {
			needed[pkg] = importSpec{Path: pkg}
		}

		for _, typ := range r.types {
			names, err := qualifiers(typ)
			if err != nil {
				return nil, err
			}

			for _, name := range names {
				spec, ok := index[name]
				if !ok {
					return nil, fmt.Errorf("cannot find the import of package %q used by `%s`", name, typ)
				}

				if have, ok := needed[name]; ok && have.Path != spec.Path {
					return nil, fmt.Errorf("package name %q refers to both %q and %q", name, have.Path, spec.Path)
				}

				needed[name] = spec
			}
		}
	}

	return needed, nil
}

// qualifiers returns the package names a type expression qualifies
// identifiers with.
func qualifiers(typ string) ([]string, error) {
	expr, err := parser.ParseExpr(typ)
	if err != nil {
		return nil, fmt.Errorf("failed to parse type expression %q: %w", typ, err)
	}

	var names []string

	ast.Inspect(expr, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}

		if id, ok := sel.X.(*ast.Ident); ok {
			names = append(names, id.Name)
		}

		return false
	})

	return names, nil
}
