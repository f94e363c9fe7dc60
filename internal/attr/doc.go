// Package attr scans the raw text of a property attribute into a tree of
// entries.
//
// The same syntax is used by struct tags and by comment directives:
//
//	skip
//	get(public, name="Count")
//	set(type="own", prefix="with_"), clr(crate, scope="all")
//
// An entry is a bare flag, a key with a string literal value, or a named
// list of nested entries. Scanning is purely syntactic; which names are
// allowed where is decided by package conf.
package attr
