// Package analyze loads Go packages and extracts the struct declarations that
// carry property attributes.
//
// It works on syntax: golang.org/x/tools/go/packages parses the packages and
// the records keep raw ast.Expr field types. No type checking is required,
// so packages with errors in unrelated files can still be processed.
//
// Key types:
//   - RecordID: package import path + type name
//   - Record: one type declaration with directives, fields and file imports
//   - Field: field name, raw type expression and the property tag source
package analyze
