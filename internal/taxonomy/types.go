// Package taxonomy classifies the syntax of a field type into a small fixed
// set of shapes that drive the accessor policy.
//
// Classification looks at syntax only. Names are matched shallowly, so a
// defined type such as `type Celsius float64` is Unrecognized("Celsius"), and
// any generic type named Null, Option or Optional counts as optional.
package taxonomy

import (
	"go/ast"
	"go/types"
	"strings"
)

// Type is one taxonomy variant. The set of implementations is closed.
type Type interface {
	Kind() Kind
	String() string

	sealed()
}

type (
	Number    struct{}
	Boolean   struct{}
	Character struct{}
	String    struct{}

	// Vector is the growable sequence []Elem.
	Vector struct {
		Elem ast.Expr
	}

	// FixedArray is [Len]Elem.
	FixedArray struct {
		Elem ast.Expr
		Len  ast.Expr
	}

	// Optional is a generic Null[T], Option[T] or Optional[T].
	Optional struct {
		Args []ast.Expr
	}

	// Boxed is a single owner indirection *T. Args always has one element.
	Boxed struct {
		Args []ast.Expr
	}

	// Unrecognized carries the trailing name of the type, or "" when it has
	// none (func, chan, interface and struct literals).
	Unrecognized struct {
		Name string
	}
)

func (Number) Kind() Kind       { return KindNumber }
func (Boolean) Kind() Kind      { return KindBoolean }
func (Character) Kind() Kind    { return KindCharacter }
func (String) Kind() Kind       { return KindString }
func (Vector) Kind() Kind       { return KindVector }
func (FixedArray) Kind() Kind   { return KindFixedArray }
func (Optional) Kind() Kind     { return KindOptional }
func (Boxed) Kind() Kind        { return KindBoxed }
func (Unrecognized) Kind() Kind { return KindUnrecognized }

func (Number) String() string    { return KindNumber.String() }
func (Boolean) String() string   { return KindBoolean.String() }
func (Character) String() string { return KindCharacter.String() }
func (String) String() string    { return KindString.String() }

func (t Vector) String() string {
	return KindVector.String() + "(" + ExprString(t.Elem) + ")"
}

func (t FixedArray) String() string {
	return KindFixedArray.String() + "(" + ExprString(t.Elem) + ", " + ExprString(t.Len) + ")"
}

func (t Optional) String() string {
	return KindOptional.String() + "(" + exprList(t.Args) + ")"
}

func (t Boxed) String() string {
	return KindBoxed.String() + "(" + exprList(t.Args) + ")"
}

func (t Unrecognized) String() string {
	if t.Name == "" {
		return KindUnrecognized.String()
	}

	return KindUnrecognized.String() + "(" + t.Name + ")"
}

func (Number) sealed()       {}
func (Boolean) sealed()      {}
func (Character) sealed()    {}
func (String) sealed()       {}
func (Vector) sealed()       {}
func (FixedArray) sealed()   {}
func (Optional) sealed()     {}
func (Boxed) sealed()        {}
func (Unrecognized) sealed() {}

// ExprString renders a type expression as Go source.
func ExprString(expr ast.Expr) string {
	if expr == nil {
		return ""
	}

	return types.ExprString(expr)
}

func exprList(exprs []ast.Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = ExprString(e)
	}

	return strings.Join(parts, ", ")
}
