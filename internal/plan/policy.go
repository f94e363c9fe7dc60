package plan

import (
	"fmt"

	"property-generator/internal/conf"
	"property-generator/internal/taxonomy"
)

// ReadKind is the resolved shape of a read method.
type ReadKind int

const (
	ReadCopy ReadKind = iota
	ReadClone
	ReadRef
	ReadString
	ReadSlice
	ReadBoxed
	ReadBoxedString
	ReadOptionalRef
)

// WriteKind is the resolved parameter shape of a write method.
type WriteKind int

const (
	WriteDirect   WriteKind = iota // parameter of the field type
	WriteSequence                  // variadic element parameter
	WriteWrapped                   // inner value of an optional
)

// ClrAction is the natural way to clear a field.
type ClrAction int

const (
	ClrNone ClrAction = iota
	ClrSetZero
	ClrSetEmpty
	ClrSetDefault
	ClrCallClear
	ClrFillDefault
)

// clearable are the trailing type names known to support clearing: maps
// through the built-in, container types through a Clear method.
var clearable = map[string]bool{
	"map":           true,
	"List":          true,
	"Deque":         true,
	"Queue":         true,
	"PriorityQueue": true,
	"Map":           true,
	"OrderedMap":    true,
	"TreeMap":       true,
	"Set":           true,
	"OrderedSet":    true,
	"TreeSet":       true,
}

// ReadPolicy resolves the read method shape of a field.
func ReadPolicy(t taxonomy.Type, get conf.GetType) ReadKind {
	switch get {
	case conf.GetRef:
		return ReadRef
	case conf.GetCopy:
		return ReadCopy
	case conf.GetClone:
		return ReadClone
	case conf.GetAuto:
		return autoRead(t)
	default:
		panic(fmt.Sprintf("unexpected get type %d", get))
	}
}

func autoRead(t taxonomy.Type) ReadKind {
	switch t := t.(type) {
	case taxonomy.Number, taxonomy.Boolean, taxonomy.Character:
		return ReadCopy
	case taxonomy.String:
		return ReadString
	case taxonomy.Vector, taxonomy.FixedArray:
		return ReadSlice
	case taxonomy.Boxed:
		if len(t.Args) == 1 && taxonomy.IsIdent(t.Args[0], "string") {
			return ReadBoxedString
		}

		return ReadBoxed
	case taxonomy.Optional:
		if len(t.Args) != 1 {
			return ReadRef
		}

		if autoRead(taxonomy.Classify(t.Args[0])) == ReadCopy {
			return ReadCopy
		}

		return ReadOptionalRef
	case taxonomy.Unrecognized:
		return ReadRef
	default:
		panic(fmt.Sprintf("unexpected taxonomy type %T", t))
	}
}

// WritePolicy resolves the parameter shape of a write method.
func WritePolicy(t taxonomy.Type, set conf.SetConf) WriteKind {
	switch t := t.(type) {
	case taxonomy.Vector:
		return WriteSequence
	case taxonomy.Optional:
		if !set.FullOption && len(t.Args) == 1 {
			return WriteWrapped
		}

		return WriteDirect
	case taxonomy.Number, taxonomy.Boolean, taxonomy.Character, taxonomy.String,
		taxonomy.FixedArray, taxonomy.Boxed, taxonomy.Unrecognized:
		return WriteDirect
	default:
		panic(fmt.Sprintf("unexpected taxonomy type %T", t))
	}
}

// ClearPolicy resolves the clear action of a field under scope.
func ClearPolicy(t taxonomy.Type, scope conf.ClrScope) ClrAction {
	action := naturalClear(t)

	switch scope {
	case conf.ClrAuto:
		return action
	case conf.ClrOption:
		if action == ClrSetEmpty {
			return action
		}

		return ClrNone
	case conf.ClrAll:
		if action == ClrNone {
			return ClrSetDefault
		}

		return action
	default:
		panic(fmt.Sprintf("unexpected clr scope %d", scope))
	}
}

func naturalClear(t taxonomy.Type) ClrAction {
	switch t := t.(type) {
	case taxonomy.Number:
		return ClrSetZero
	case taxonomy.Optional:
		return ClrSetEmpty
	case taxonomy.Boolean, taxonomy.Character:
		return ClrSetDefault
	case taxonomy.String, taxonomy.Vector:
		return ClrCallClear
	case taxonomy.FixedArray:
		return ClrFillDefault
	case taxonomy.Boxed:
		if len(t.Args) == 1 && clearable[taxonomy.TrailingName(t.Args[0])] {
			return ClrCallClear
		}

		return ClrNone
	case taxonomy.Unrecognized:
		if clearable[t.Name] {
			return ClrCallClear
		}

		return ClrNone
	default:
		panic(fmt.Sprintf("unexpected taxonomy type %T", t))
	}
}
