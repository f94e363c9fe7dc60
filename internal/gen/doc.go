// Package gen renders accessor plans as Go source.
//
// Generation uses text/template + go/format, one file per package holding the
// methods of every planned record of that package. Method names are turned
// into Go identifiers here, which is also where clashes with fields and other
// methods are detected.
//
// Method bodies:
//   - read: copy, clone, borrowed pointer, string and slice views, optional
//     values with nil for absent
//   - write: assignment, sequence copy, optional wrapping; chaining, owned
//     copy or previous value results
//   - mutable: pointer to the field
//   - clear: zero, empty, type default, built-in clear or Clear method
package gen
