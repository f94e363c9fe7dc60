package attr

import (
	"go/token"

	"property-generator/internal/common"
)

// Kind tells the syntactic form of an Entry.
type Kind int

const (
	KindFlag  Kind = iota // name
	KindValue             // name="literal"
	KindList              // name(entries...)
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindValue:
		return "value"
	case KindList:
		return "list"
	default:
		return common.UnknownStr
	}
}

// Entry is one raw attribute entry.
type Entry struct {
	Kind Kind
	Name string
	// Value is the unquoted literal of a KindValue entry.
	Value string
	// Items are the nested entries of a KindList entry.
	Items []Entry

	Pos    token.Pos // start of Name
	End    token.Pos // end of the whole entry
	Offset int       // byte offset of Name in the scanned text

	ValuePos    token.Pos // start of the literal
	ValueOffset int       // byte offset of the literal in the scanned text
}

// IsFlag reports whether e is a bare flag named name.
func (e Entry) IsFlag(name string) bool {
	return e.Kind == KindFlag && e.Name == name
}
