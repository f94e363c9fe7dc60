package plan

import (
	"go/ast"
	"go/token"
	"strings"

	"property-generator/internal/analyze"
	"property-generator/internal/common"
	"property-generator/internal/conf"
	"property-generator/internal/taxonomy"
)

// ContainerDef is a record whose attributes have been parsed and validated.
type ContainerDef struct {
	ID         analyze.RecordID
	PkgName    string
	File       string
	TypeParams []analyze.TypeParam
	// Fields are the non-empty, ordered fields of the record.
	Fields  []FieldDef
	Imports []analyze.Import
	Pos     token.Pos
	Fset    *token.FileSet
}

// Name returns the type name.
func (c *ContainerDef) Name() string {
	return c.ID.Name
}

// TypeRef returns the type as used in a method receiver, with its type
// parameters: "Box[T, K]".
func (c *ContainerDef) TypeRef() string {
	if len(c.TypeParams) == 0 {
		return c.ID.Name
	}

	names := make([]string, len(c.TypeParams))
	for i, tp := range c.TypeParams {
		names[i] = tp.Name
	}

	return c.ID.Name + "[" + strings.Join(names, ", ") + "]"
}

// FieldDef is one field with its effective configuration.
type FieldDef struct {
	Name string
	Type ast.Expr
	Conf conf.FieldConf
	Pos  token.Pos
	// Cloneable is set when the field type has a Clone method returning it.
	Cloneable bool
}

// Op is an accessor operation.
type Op int

const (
	OpGet Op = iota
	OpSet
	OpMut
	OpClr
)

// String returns the attribute scope name of the operation.
func (o Op) String() string {
	switch o {
	case OpGet:
		return "get"
	case OpSet:
		return "set"
	case OpMut:
		return "mut"
	case OpClr:
		return "clr"
	default:
		return common.UnknownStr
	}
}

// Receiver is the kind of method receiver.
type Receiver int

const (
	ReceiverPointer Receiver = iota
	ReceiverValue
)

// String returns a human-readable receiver kind.
func (r Receiver) String() string {
	switch r {
	case ReceiverPointer:
		return "pointer"
	case ReceiverValue:
		return "value"
	default:
		return common.UnknownStr
	}
}

// ReturnKind describes what a method returns.
type ReturnKind int

const (
	ReturnNone         ReturnKind = iota
	ReturnValue                   // a copy of the field
	ReturnString                  // a string view
	ReturnSlice                   // a slice view of a sequence
	ReturnPointer                 // a borrowed pointer to the field
	ReturnBoxed                   // the pointer stored in the field
	ReturnOptional                // a borrowed pointer to the optional value, nil when absent
	ReturnOwner                   // the modified owner, by value
	ReturnOwnerPointer            // the owner, for chaining
	ReturnPrevious                // the replaced field value
)

// String returns a human-readable return kind.
func (k ReturnKind) String() string {
	switch k {
	case ReturnNone:
		return "none"
	case ReturnValue:
		return "value"
	case ReturnString:
		return "string"
	case ReturnSlice:
		return "slice"
	case ReturnPointer:
		return "pointer"
	case ReturnBoxed:
		return "boxed"
	case ReturnOptional:
		return "optional"
	case ReturnOwner:
		return "owner"
	case ReturnOwnerPointer:
		return "owner_pointer"
	case ReturnPrevious:
		return "previous"
	default:
		return common.UnknownStr
	}
}

// Behavior is the body of a method.
type Behavior int

const (
	// Read behaviors.
	BehaviorCopy        Behavior = iota // return s.f
	BehaviorClone                       // return a deep copy of s.f
	BehaviorBorrow                      // return &s.f
	BehaviorStringView                  // return s.f
	BehaviorBoxedString                 // return *s.f, "" when nil
	BehaviorSliceView                   // return s.f, arrays sliced
	BehaviorBoxed                       // return s.f
	BehaviorOptionalRef                 // return &s.f.V, nil when not valid

	// Write behaviors.
	BehaviorAssign         // s.f = val
	BehaviorAssignSequence // s.f = copy of val...
	BehaviorAssignWrapped  // s.f = T{V: val, Valid: true}

	// Mutable accessor.
	BehaviorMutable // return &s.f

	// Clear behaviors.
	BehaviorClearZero     // s.f = 0
	BehaviorClearEmpty    // s.f = T{}
	BehaviorClearDefault  // s.f = zero value of T
	BehaviorClearString   // s.f = ""
	BehaviorClearTruncate // s.f = s.f[:0]
	BehaviorClearFill     // clear(s.f[:])
	BehaviorClearMap      // clear(s.f)
	BehaviorClearMethod   // s.f.Clear()
	BehaviorClearInit     // s.f.Init(), container/list
)

var behaviorNames = [...]string{
	BehaviorCopy:           "copy",
	BehaviorClone:          "clone",
	BehaviorBorrow:         "borrow",
	BehaviorStringView:     "string_view",
	BehaviorBoxedString:    "boxed_string",
	BehaviorSliceView:      "slice_view",
	BehaviorBoxed:          "boxed",
	BehaviorOptionalRef:    "optional_ref",
	BehaviorAssign:         "assign",
	BehaviorAssignSequence: "assign_sequence",
	BehaviorAssignWrapped:  "assign_wrapped",
	BehaviorMutable:        "mutable",
	BehaviorClearZero:      "set_zero",
	BehaviorClearEmpty:     "set_empty",
	BehaviorClearDefault:   "set_default",
	BehaviorClearString:    "clear_string",
	BehaviorClearTruncate:  "truncate",
	BehaviorClearFill:      "fill_default",
	BehaviorClearMap:       "clear_map",
	BehaviorClearMethod:    "call_clear",
	BehaviorClearInit:      "call_init",
}

// String returns a human-readable behavior name.
func (b Behavior) String() string {
	if b < 0 || int(b) >= len(behaviorNames) {
		return common.UnknownStr
	}

	return behaviorNames[b]
}

// CloneKind is how a cloning read method duplicates the field.
type CloneKind int

const (
	CloneCopy    CloneKind = iota // plain assignment copy
	CloneSlice                    // slices.Clone
	CloneMap                      // maps.Clone
	ClonePointer                  // new pointer to a copy of the pointee
	CloneMethod                   // the Clone method of the type
)

// String returns a human-readable clone kind.
func (k CloneKind) String() string {
	switch k {
	case CloneCopy:
		return "copy"
	case CloneSlice:
		return "slices.Clone"
	case CloneMap:
		return "maps.Clone"
	case ClonePointer:
		return "pointer"
	case CloneMethod:
		return "method"
	default:
		return common.UnknownStr
	}
}

// Param is the single parameter of a write method.
type Param struct {
	Name string
	// Type is the Go source of the parameter type, without the ellipsis of a
	// variadic parameter.
	Type     string
	Variadic bool
}

// Return is the result of a method.
type Return struct {
	Kind ReturnKind
	// Type is the Go source of the result type, empty for ReturnNone.
	Type string
}

// Method describes one accessor to emit.
type Method struct {
	Op         Op
	Visibility conf.Visibility
	// Name is the raw method name produced by the naming rule, e.g.
	// "set_count". The emitter turns it into a Go identifier.
	Name      string
	Field     string
	FieldType string
	Type      taxonomy.Type
	Receiver  Receiver
	Param     *Param
	Return    Return
	Behavior  Behavior
	// Clone is set for BehaviorClone.
	Clone CloneKind
	// Elem is the Go source of the element or inner type the behavior works
	// on, when it has one.
	Elem string
}

// Plan is the list of accessors of one container, ordered by field and then
// by operation (get, set, mut, clr).
type Plan struct {
	Container  string
	ID         analyze.RecordID
	TypeParams []analyze.TypeParam
	Methods    []Method
	// Skipped lists enabled operations that produce no method.
	Skipped []Skipped
	// Def is the container the plan was built from.
	Def *ContainerDef
}

// Skipped is an enabled operation left out of a plan, such as a clear
// method for a type that cannot be cleared under the configured scope.
type Skipped struct {
	Op     Op
	Field  string
	Reason string
}

// Result is the outcome of planning one record. Exactly one of Plan and Err
// is set.
type Result struct {
	Record *analyze.Record
	Plan   *Plan
	Err    error
}
