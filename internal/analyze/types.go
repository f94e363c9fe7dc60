package analyze

import (
	"go/ast"
	"go/token"

	"property-generator/internal/attr"
	"property-generator/internal/common"
)

// RecordID uniquely identifies a record by its package path and name.
type RecordID struct {
	PkgPath string // e.g., "property-generator/store"
	Name    string // e.g., "Product"
}

// String returns a human-readable representation of the RecordID.
func (r RecordID) String() string {
	if r.PkgPath == "" {
		return r.Name
	}

	return r.PkgPath + "." + r.Name
}

// Shape is the syntactic form of a type declaration.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeStruct        // type T struct{...}
	ShapeAlias         // type T = U
	ShapeDefined       // type T U, U not a struct literal
)

// String returns a human-readable representation of the Shape.
func (s Shape) String() string {
	switch s {
	case ShapeStruct:
		return "struct"
	case ShapeAlias:
		return "alias"
	case ShapeDefined:
		return "defined"
	default:
		return common.UnknownStr
	}
}

// TypeParam is one type parameter of a generic record.
type TypeParam struct {
	Name       string
	Constraint string
}

// Import is an import of the file declaring a record.
type Import struct {
	Name string // explicit name, empty when the default package name is used
	Path string
	// Package is the declared name of the imported package, known when the
	// file was type checked.
	Package string
}

// LocalName returns the name the file refers to the import by. Without an
// explicit or a loaded name it is guessed from the path.
func (i Import) LocalName() string {
	switch {
	case i.Name != "":
		return i.Name
	case i.Package != "":
		return i.Package
	default:
		return common.PkgAlias(i.Path)
	}
}

// Field is one named struct field.
type Field struct {
	Name     string
	Type     ast.Expr
	Embedded bool
	Pos      token.Pos
	// Tag is the property attribute of the field, nil when the tag has none.
	Tag *attr.Source
	// Cloneable is set when type information shows a Clone method returning
	// the field type.
	Cloneable bool
}

// Record is a type declaration selected for generation.
type Record struct {
	ID         RecordID
	PkgName    string
	File       string // absolute file name
	Pos        token.Pos
	Shape      Shape
	TypeParams []TypeParam
	// Directives are the property comment lines of the type, in order.
	Directives []attr.Source
	// Marked is set when the type doc carries a bare property marker.
	Marked  bool
	Fields  []Field
	Imports []Import
	Fset    *token.FileSet
	// Err is set when an attribute could not be extracted from the source.
	Err error
}

// Name returns the type name.
func (r *Record) Name() string {
	return r.ID.Name
}

// Position returns the resolved declaration position.
func (r *Record) Position() token.Position {
	if r.Fset == nil {
		return token.Position{}
	}

	return r.Fset.Position(r.Pos)
}

// HasAttributes reports whether the record carries any property attribute.
func (r *Record) HasAttributes() bool {
	if r.Marked || len(r.Directives) > 0 {
		return true
	}

	for _, f := range r.Fields {
		if f.Tag != nil {
			return true
		}
	}

	return false
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path    string // Import path
	Name    string // Package name
	Dir     string
	Records []RecordID // Records in declaration order
}

// Graph holds all records of the loaded packages.
type Graph struct {
	// Records maps RecordID to its Record.
	Records map[RecordID]*Record
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
	// Order lists the package paths in load order.
	Order []string
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		Records:  make(map[RecordID]*Record),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetRecord returns the Record for id, or nil if not found.
func (g *Graph) GetRecord(id RecordID) *Record {
	return g.Records[id]
}

// PackageRecords returns the records of one package in declaration order.
func (g *Graph) PackageRecords(pkgPath string) []*Record {
	info := g.Packages[pkgPath]
	if info == nil {
		return nil
	}

	out := make([]*Record, 0, len(info.Records))
	for _, id := range info.Records {
		out = append(out, g.Records[id])
	}

	return out
}

func (g *Graph) add(info *PackageInfo, records []*Record) {
	if _, seen := g.Packages[info.Path]; !seen {
		g.Order = append(g.Order, info.Path)
	}

	g.Packages[info.Path] = info

	for _, r := range records {
		g.Records[r.ID] = r
		info.Records = append(info.Records, r.ID)
	}
}
