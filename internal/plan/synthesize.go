package plan

import (
	"fmt"
	"go/ast"

	"property-generator/internal/analyze"
	"property-generator/internal/conf"
	"property-generator/internal/taxonomy"
)

const paramName = "val"

// synthesizeField returns the methods of one field in operation order, and
// the enabled operations that produce no method.
func synthesizeField(def *ContainerDef, f FieldDef) ([]Method, []Skipped) {
	if f.Conf.Skip {
		return nil, nil
	}

	t := taxonomy.Classify(f.Type)
	base := Method{
		Field:     f.Name,
		FieldType: taxonomy.ExprString(f.Type),
		Type:      t,
		Receiver:  ReceiverPointer,
	}

	var (
		out     []Method
		skipped []Skipped
	)

	if get := f.Conf.Get; get.Visibility.Enabled() {
		m := base
		m.Op = OpGet
		m.Visibility = get.Visibility
		m.Name = get.Naming.Apply(f.Name)
		shapeRead(&m, t, ReadPolicy(t, get.Type))

		if m.Behavior == BehaviorClone {
			m.Clone = cloneKind(t, f.Cloneable)
		}

		out = append(out, m)
	}

	if set := f.Conf.Set; set.Visibility.Enabled() {
		m := base
		m.Op = OpSet
		m.Visibility = set.Visibility
		m.Name = set.Naming.Apply(f.Name)
		shapeWrite(&m, t, def.TypeRef(), set)
		out = append(out, m)
	}

	if mut := f.Conf.Mut; mut.Visibility.Enabled() {
		m := base
		m.Op = OpMut
		m.Visibility = mut.Visibility
		m.Name = mut.Naming.Apply(f.Name)
		m.Return = Return{Kind: ReturnPointer, Type: "*" + m.FieldType}
		m.Behavior = BehaviorMutable
		out = append(out, m)
	}

	if clr := f.Conf.Clr; clr.Visibility.Enabled() {
		if action := ClearPolicy(t, clr.Scope); action != ClrNone {
			m := base
			m.Op = OpClr
			m.Visibility = clr.Visibility
			m.Name = clr.Naming.Apply(f.Name)
			m.Behavior = clearBehavior(t, f.Type, def.Imports, action)
			out = append(out, m)
		} else {
			skipped = append(skipped, Skipped{
				Op:    OpClr,
				Field: f.Name,
				Reason: fmt.Sprintf("`%s` of type %s has no clear action under scope %q",
					f.Name, base.FieldType, clr.Scope),
			})
		}
	}

	return out, skipped
}

func shapeRead(m *Method, t taxonomy.Type, kind ReadKind) {
	switch kind {
	case ReadCopy:
		m.Return = Return{Kind: ReturnValue, Type: m.FieldType}
		m.Behavior = BehaviorCopy
	case ReadClone:
		m.Return = Return{Kind: ReturnValue, Type: m.FieldType}
		m.Behavior = BehaviorClone
	case ReadRef:
		m.Return = Return{Kind: ReturnPointer, Type: "*" + m.FieldType}
		m.Behavior = BehaviorBorrow
	case ReadString:
		m.Return = Return{Kind: ReturnString, Type: "string"}
		m.Behavior = BehaviorStringView
	case ReadSlice:
		m.Elem = elemOf(t)
		m.Return = Return{Kind: ReturnSlice, Type: "[]" + m.Elem}
		m.Behavior = BehaviorSliceView
	case ReadBoxed:
		m.Return = Return{Kind: ReturnBoxed, Type: m.FieldType}
		m.Behavior = BehaviorBoxed
	case ReadBoxedString:
		m.Return = Return{Kind: ReturnString, Type: "string"}
		m.Behavior = BehaviorBoxedString
	case ReadOptionalRef:
		m.Elem = elemOf(t)
		m.Return = Return{Kind: ReturnOptional, Type: "*" + m.Elem}
		m.Behavior = BehaviorOptionalRef
	default:
		panic(fmt.Sprintf("unexpected read kind %d", kind))
	}
}

func shapeWrite(m *Method, t taxonomy.Type, owner string, set conf.SetConf) {
	switch WritePolicy(t, set) {
	case WriteSequence:
		m.Elem = elemOf(t)
		m.Param = &Param{Name: paramName, Type: m.Elem, Variadic: true}
		m.Behavior = BehaviorAssignSequence
	case WriteWrapped:
		m.Elem = elemOf(t)
		m.Param = &Param{Name: paramName, Type: m.Elem}
		m.Behavior = BehaviorAssignWrapped
	case WriteDirect:
		m.Param = &Param{Name: paramName, Type: m.FieldType}
		m.Behavior = BehaviorAssign
	}

	switch set.Type {
	case conf.SetRef:
		m.Return = Return{Kind: ReturnOwnerPointer, Type: "*" + owner}
	case conf.SetOwn:
		m.Receiver = ReceiverValue
		m.Return = Return{Kind: ReturnOwner, Type: owner}
	case conf.SetNone:
		m.Return = Return{Kind: ReturnNone}
	case conf.SetReplace:
		m.Return = Return{Kind: ReturnPrevious, Type: m.FieldType}
	default:
		panic(fmt.Sprintf("unexpected set type %d", set.Type))
	}
}

func clearBehavior(t taxonomy.Type, expr ast.Expr, imports []analyze.Import, action ClrAction) Behavior {
	switch action {
	case ClrSetZero:
		return BehaviorClearZero
	case ClrSetEmpty:
		return BehaviorClearEmpty
	case ClrSetDefault:
		return BehaviorClearDefault
	case ClrFillDefault:
		return BehaviorClearFill
	case ClrCallClear:
		switch t := t.(type) {
		case taxonomy.String:
			return BehaviorClearString
		case taxonomy.Vector:
			return BehaviorClearTruncate
		case taxonomy.Boxed:
			expr = t.Args[0]
		}

		switch {
		case taxonomy.TrailingName(expr) == "map":
			return BehaviorClearMap
		case isStdList(expr, imports):
			return BehaviorClearInit
		default:
			return BehaviorClearMethod
		}
	}

	panic(fmt.Sprintf("unexpected clear action %d for %s", action, t))
}

// isStdList reports whether expr names container/list.List, which clears
// with Init rather than Clear.
func isStdList(expr ast.Expr, imports []analyze.Import) bool {
	sel, ok := taxonomy.Unparen(expr).(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "List" {
		return false
	}

	pkg, ok := sel.X.(*ast.Ident)
	if !ok {
		return false
	}

	for _, imp := range imports {
		if imp.LocalName() == pkg.Name {
			return imp.Path == "container/list"
		}
	}

	return false
}

// cloneKind picks how a clone getter duplicates a field. A named type is
// cloned through its Clone method only when the loader saw one; otherwise
// the value copy is the duplicate.
func cloneKind(t taxonomy.Type, cloneable bool) CloneKind {
	switch t := t.(type) {
	case taxonomy.Vector:
		return CloneSlice
	case taxonomy.Boxed:
		return ClonePointer
	case taxonomy.Unrecognized:
		switch {
		case t.Name == "map":
			return CloneMap
		case cloneable:
			return CloneMethod
		default:
			return CloneCopy
		}
	default:
		return CloneCopy
	}
}

// elemOf returns the element type of a sequence or the inner type of an
// optional or pointer.
func elemOf(t taxonomy.Type) string {
	switch t := t.(type) {
	case taxonomy.Vector:
		return taxonomy.ExprString(t.Elem)
	case taxonomy.FixedArray:
		return taxonomy.ExprString(t.Elem)
	case taxonomy.Optional:
		return taxonomy.ExprString(t.Args[0])
	case taxonomy.Boxed:
		return taxonomy.ExprString(t.Args[0])
	default:
		return ""
	}
}
