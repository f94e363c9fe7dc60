package conf

import (
	"property-generator/internal/common"
)

// Visibility controls whether a method is emitted and how it is exported.
type Visibility int

const (
	VisibilityDisabled Visibility = iota
	VisibilityPublic
	VisibilityCrate
	VisibilityPrivate
)

var visibilityNames = []string{"disable", "public", "crate", "private"}

// String returns the attribute spelling of v.
func (v Visibility) String() string {
	return enumName(visibilityNames, int(v))
}

// Enabled reports whether a method with this visibility is emitted.
func (v Visibility) Enabled() bool {
	return v != VisibilityDisabled
}

// Exported reports whether the method name is rendered as an exported
// identifier. Only Public is; Go has no finer grained privacy.
func (v Visibility) Exported() bool {
	return v == VisibilityPublic
}

// GetType selects the shape of the read method.
type GetType int

const (
	GetAuto GetType = iota
	GetRef
	GetCopy
	GetClone
)

var getTypeNames = []string{"auto", "ref", "copy", "clone"}

func (t GetType) String() string {
	return enumName(getTypeNames, int(t))
}

// SetType selects the shape of the write method.
type SetType int

const (
	SetRef SetType = iota
	SetOwn
	SetNone
	SetReplace
)

var setTypeNames = []string{"ref", "own", "none", "replace"}

func (t SetType) String() string {
	return enumName(setTypeNames, int(t))
}

// ClrScope limits which clear actions are kept.
type ClrScope int

const (
	ClrAuto ClrScope = iota
	ClrOption
	ClrAll
)

var clrScopeNames = []string{"auto", "option", "all"}

func (s ClrScope) String() string {
	return enumName(clrScopeNames, int(s))
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return common.UnknownStr
	}

	return names[i]
}

// Level identifies where attributes were written.
type Level int

const (
	LevelContainer Level = iota
	LevelField
)

func (l Level) String() string {
	switch l {
	case LevelContainer:
		return "container"
	case LevelField:
		return "field"
	default:
		return common.UnknownStr
	}
}

// GetConf configures the read method.
type GetConf struct {
	Visibility Visibility
	Naming     Naming
	Type       GetType
}

// SetConf configures the write method. With FullOption an optional field is
// written as a whole instead of through its inner value.
type SetConf struct {
	Visibility Visibility
	Naming     Naming
	Type       SetType
	FullOption bool
}

// MutConf configures the mutable accessor.
type MutConf struct {
	Visibility Visibility
	Naming     Naming
}

// ClrConf configures the clear method.
type ClrConf struct {
	Visibility Visibility
	Naming     Naming
	Scope      ClrScope
}

// FieldConf is the complete configuration of one field.
type FieldConf struct {
	Skip bool
	Get  GetConf
	Set  SetConf
	Mut  MutConf
	Clr  ClrConf
}

// Default returns the built-in configuration: a crate getter named after the
// field and a crate "set_" setter. Mutable and clear accessors are off.
func Default() FieldConf {
	return FieldConf{
		Get: GetConf{
			Visibility: VisibilityCrate,
			Naming:     Format("", ""),
			Type:       GetAuto,
		},
		Set: SetConf{
			Visibility: VisibilityCrate,
			Naming:     Format("set_", ""),
			Type:       SetRef,
		},
		Mut: MutConf{
			Visibility: VisibilityDisabled,
			Naming:     Format("mut_", ""),
		},
		Clr: ClrConf{
			Visibility: VisibilityDisabled,
			Naming:     Format("clear_", ""),
			Scope:      ClrOption,
		},
	}
}
