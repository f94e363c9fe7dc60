package taxonomy

import (
	"fmt"
	"go/ast"
	"go/parser"
)

var numberNames = map[string]bool{
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"uintptr": true, "byte": true,
	"float32": true, "float64": true,
	"complex64": true, "complex128": true,
}

var optionalNames = map[string]bool{
	"Null":     true,
	"Option":   true,
	"Optional": true,
}

// Classify returns the taxonomy variant of a type expression. The first
// matching rule wins:
//
//  1. numeric predeclared names
//  2. bool
//  3. rune
//  4. []T
//  5. *T
//  6. generic Null[T], Option[T], Optional[T], qualified or not
//  7. string
//  8. [N]T
//  9. anything with a trailing name, including map[K]V as "map"
//  10. everything else
func Classify(expr ast.Expr) Type {
	expr = Unparen(expr)

	if id, ok := expr.(*ast.Ident); ok {
		switch {
		case numberNames[id.Name]:
			return Number{}
		case id.Name == "bool":
			return Boolean{}
		case id.Name == "rune":
			return Character{}
		}
	}

	if arr, ok := expr.(*ast.ArrayType); ok && arr.Len == nil {
		return Vector{Elem: arr.Elt}
	}

	if star, ok := expr.(*ast.StarExpr); ok {
		return Boxed{Args: []ast.Expr{star.X}}
	}

	if base, args, ok := Instance(expr); ok && optionalNames[TrailingName(base)] {
		return Optional{Args: args}
	}

	if id, ok := expr.(*ast.Ident); ok && id.Name == "string" {
		return String{}
	}

	if arr, ok := expr.(*ast.ArrayType); ok {
		return FixedArray{Elem: arr.Elt, Len: arr.Len}
	}

	return Unrecognized{Name: TrailingName(expr)}
}

// ParseAndClassify parses src as a type expression and classifies it.
func ParseAndClassify(src string) (Type, error) {
	expr, err := parser.ParseExpr(src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse type expression %q: %w", src, err)
	}

	return Classify(expr), nil
}

// Unparen strips any enclosing parentheses.
func Unparen(expr ast.Expr) ast.Expr {
	for {
		p, ok := expr.(*ast.ParenExpr)
		if !ok {
			return expr
		}

		expr = p.X
	}
}

// Instance splits a generic instantiation into its base and type arguments.
func Instance(expr ast.Expr) (ast.Expr, []ast.Expr, bool) {
	switch e := Unparen(expr).(type) {
	case *ast.IndexExpr:
		return e.X, []ast.Expr{e.Index}, true
	case *ast.IndexListExpr:
		return e.X, e.Indices, true
	default:
		return nil, nil, false
	}
}

// TrailingName returns the last identifier naming a type: "Time" for
// time.Time, "List" for list.List[int], "map" for any map type. It is empty
// for types without a name.
func TrailingName(expr ast.Expr) string {
	switch e := Unparen(expr).(type) {
	case *ast.Ident:
		return e.Name
	case *ast.SelectorExpr:
		return e.Sel.Name
	case *ast.IndexExpr:
		return TrailingName(e.X)
	case *ast.IndexListExpr:
		return TrailingName(e.X)
	case *ast.MapType:
		return "map"
	default:
		return ""
	}
}

// IsIdent reports whether expr is the bare identifier name.
func IsIdent(expr ast.Expr, name string) bool {
	id, ok := Unparen(expr).(*ast.Ident)

	return ok && id.Name == name
}
