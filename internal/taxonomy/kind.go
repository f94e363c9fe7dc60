package taxonomy

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind enumerates the taxonomy variants.
type Kind int

const (
	KindNumber Kind = iota
	KindBoolean
	KindCharacter
	KindString
	KindVector
	KindFixedArray
	KindOptional
	KindBoxed
	KindUnrecognized
)
