package gen

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"property-generator/internal/plan"
	"property-generator/internal/taxonomy"
)

// Local names used by method bodies. The receiver never takes one of them.
var bodyLocals = map[string]bool{"val": true, "prev": true, "zero": true, "cp": true}

// render is one method turned into template data, plus what it needs from
// the file around it.
type render struct {
	method methodData
	// types are the Go sources of the types the method spells out.
	types []string
	// std are standard packages the body calls into.
	std []string
}

// receiverName picks the receiver variable of a container: its lower-cased
// initial, or "recv" when that would shadow something the methods use.
func receiverName(def *plan.ContainerDef, taken map[string]bool) string {
	r, _ := utf8.DecodeRuneInString(def.Name())
	name := string(unicode.ToLower(r))

	if !isASCIILetter(name) || bodyLocals[name] || taken[name] {
		return "recv"
	}

	for _, tp := range def.TypeParams {
		if tp.Name == name {
			return "recv"
		}
	}

	return name
}

func isASCIILetter(s string) bool {
	return len(s) == 1 && s[0] >= 'a' && s[0] <= 'z'
}

func renderMethod(def *plan.ContainerDef, recv, name string, m plan.Method, comments bool) render {
	out := render{
		method: methodData{Name: name},
	}

	owner := def.TypeRef()
	if m.Receiver == plan.ReceiverValue {
		out.method.Receiver = recv + " " + owner
	} else {
		out.method.Receiver = recv + " *" + owner
	}

	if m.Param != nil {
		typ := m.Param.Type
		if m.Param.Variadic {
			typ = "..." + typ
		}

		out.method.Params = m.Param.Name + " " + typ
		out.types = append(out.types, m.Param.Type)
	}

	if m.Return.Kind != plan.ReturnNone {
		out.method.Results = m.Return.Type
		out.types = append(out.types, m.Return.Type)
	}

	field := recv + "." + m.Field

	switch m.Op {
	case plan.OpGet:
		out.method.Body = readBody(&out, field, m)
	case plan.OpSet:
		out.method.Body = writeBody(&out, recv, field, m)
	case plan.OpMut:
		out.method.Body = []string{"return &" + field}
	case plan.OpClr:
		out.method.Body = clearBody(&out, field, m)
	}

	if comments {
		out.method.Doc = name + " " + describe(m)
	}

	return out
}

func readBody(out *render, field string, m plan.Method) []string {
	switch m.Behavior {
	case plan.BehaviorCopy, plan.BehaviorStringView, plan.BehaviorBoxed:
		return []string{"return " + field}
	case plan.BehaviorBorrow:
		return []string{"return &" + field}
	case plan.BehaviorBoxedString:
		return []string{
			"if " + field + " == nil {",
			"\treturn \"\"",
			"}",
			"return *" + field,
		}
	case plan.BehaviorSliceView:
		if _, ok := m.Type.(taxonomy.FixedArray); ok {
			return []string{"return " + field + "[:]"}
		}

		return []string{"return " + field}
	case plan.BehaviorOptionalRef:
		return []string{
			"if !" + field + ".Valid {",
			"\treturn nil",
			"}",
			"return &" + field + ".V",
		}
	case plan.BehaviorClone:
		return cloneBody(out, field, m)
	default:
		panic(fmt.Sprintf("unexpected read behavior %s", m.Behavior))
	}
}

func cloneBody(out *render, field string, m plan.Method) []string {
	switch m.Clone {
	case plan.CloneSlice:
		out.std = append(out.std, "slices")

		return []string{"return slices.Clone(" + field + ")"}
	case plan.CloneMap:
		out.std = append(out.std, "maps")

		return []string{"return maps.Clone(" + field + ")"}
	case plan.ClonePointer:
		return []string{
			"if " + field + " == nil {",
			"\treturn nil",
			"}",
			"cp := *" + field,
			"return &cp",
		}
	case plan.CloneMethod:
		return []string{"return " + field + ".Clone()"}
	default:
		return []string{"return " + field}
	}
}

func writeBody(out *render, recv, field string, m plan.Method) []string {
	var body []string

	if m.Return.Kind == plan.ReturnPrevious {
		body = append(body, "prev := "+field)
	}

	switch m.Behavior {
	case plan.BehaviorAssign:
		body = append(body, field+" = val")
	case plan.BehaviorAssignSequence:
		out.std = append(out.std, "slices")
		body = append(body, field+" = slices.Clone(val)")
	case plan.BehaviorAssignWrapped:
		out.types = append(out.types, m.FieldType)
		body = append(body, field+" = "+m.FieldType+"{V: val, Valid: true}")
	default:
		panic(fmt.Sprintf("unexpected write behavior %s", m.Behavior))
	}

	switch m.Return.Kind {
	case plan.ReturnOwner, plan.ReturnOwnerPointer:
		body = append(body, "return "+recv)
	case plan.ReturnPrevious:
		body = append(body, "return prev")
	}

	return body
}

func clearBody(out *render, field string, m plan.Method) []string {
	_, boxed := m.Type.(taxonomy.Boxed)

	switch m.Behavior {
	case plan.BehaviorClearZero:
		return []string{field + " = 0"}
	case plan.BehaviorClearEmpty:
		out.types = append(out.types, m.FieldType)

		return []string{field + " = " + m.FieldType + "{}"}
	case plan.BehaviorClearString:
		return []string{field + ` = ""`}
	case plan.BehaviorClearTruncate:
		return []string{field + " = " + field + "[:0]"}
	case plan.BehaviorClearFill:
		return []string{"clear(" + field + "[:])"}
	case plan.BehaviorClearMap:
		if boxed {
			return nilGuarded(field, "clear(*"+field+")")
		}

		return []string{"clear(" + field + ")"}
	case plan.BehaviorClearMethod:
		if boxed {
			return nilGuarded(field, field+".Clear()")
		}

		return []string{field + ".Clear()"}
	case plan.BehaviorClearInit:
		if boxed {
			return nilGuarded(field, field+".Init()")
		}

		return []string{field + ".Init()"}
	case plan.BehaviorClearDefault:
		switch m.Type.(type) {
		case taxonomy.Boolean:
			return []string{field + " = false"}
		case taxonomy.Character:
			return []string{field + " = 0"}
		case taxonomy.Boxed:
			return []string{field + " = nil"}
		}

		out.types = append(out.types, m.FieldType)

		return []string{
			"var zero " + m.FieldType,
			field + " = zero",
		}
	default:
		panic(fmt.Sprintf("unexpected clear behavior %s", m.Behavior))
	}
}

func nilGuarded(field, stmt string) []string {
	return []string{
		"if " + field + " != nil {",
		"\t" + stmt,
		"}",
	}
}

// describe returns the doc comment of a method, without its name.
func describe(m plan.Method) string {
	f := m.Field

	switch m.Op {
	case plan.OpGet:
		switch m.Behavior {
		case plan.BehaviorClone:
			return "returns a copy of the " + f + " field."
		case plan.BehaviorBorrow:
			return "returns a pointer to the " + f + " field."
		case plan.BehaviorBoxedString:
			return "returns the string " + f + ` points to, or "" when it is nil.`
		case plan.BehaviorSliceView:
			return "returns the elements of the " + f + " field."
		case plan.BehaviorOptionalRef:
			return "returns a pointer to the " + f + " value, or nil when it is not set."
		default:
			return "returns the " + f + " field."
		}
	case plan.OpSet:
		what := "sets the " + f + " field"
		if m.Param != nil && m.Param.Variadic {
			what = "sets the " + f + " field to a copy of val"
		}

		switch m.Return.Kind {
		case plan.ReturnOwner:
			return what + " on a copy of the receiver and returns the copy."
		case plan.ReturnOwnerPointer:
			return what + " and returns the receiver."
		case plan.ReturnPrevious:
			return what + " and returns its previous value."
		default:
			return what + "."
		}
	case plan.OpMut:
		return "returns a pointer for modifying the " + f + " field."
	case plan.OpClr:
		return "resets the " + f + " field."
	default:
		return ""
	}
}
