package gen

import (
	"go/token"

	"property-generator/internal/diagnostic"
	"property-generator/internal/ident"
	"property-generator/internal/plan"
)

// MethodName turns the raw name of a method into a Go identifier, exported
// for public methods.
func MethodName(m plan.Method) string {
	if m.Visibility.Exported() {
		return ident.Exported(m.Name)
	}

	return ident.Unexported(m.Name)
}

// MethodNames resolves the identifiers of every method of p, in order. It
// fails on the first name that is not a valid identifier or that is taken by
// a field or an earlier method of the same type.
func MethodNames(p *plan.Plan) ([]string, error) {
	def := p.Def

	fields := make(map[string]plan.FieldDef, len(def.Fields))
	for _, f := range def.Fields {
		fields[f.Name] = f
	}

	owners := make(map[string]plan.Method, len(p.Methods))
	names := make([]string, len(p.Methods))

	for i, m := range p.Methods {
		name := MethodName(m)
		pos := fields[m.Field].Pos

		switch {
		case name == "" || name == "_" || !token.IsIdentifier(name):
			return nil, collision(def, pos, "method name %q of field `%s` is not a valid Go identifier", m.Name, m.Field)
		case fields[name].Name != "":
			return nil, collision(def, pos, "%s method `%s` of field `%s` has the same name as field `%s`",
				m.Op, name, m.Field, name)
		}

		if prev, ok := owners[name]; ok {
			return nil, collision(def, pos, "%s method `%s` of field `%s` is already generated as the %s method of field `%s`",
				m.Op, name, m.Field, prev.Op, prev.Field)
		}

		owners[name] = m
		names[i] = name
	}

	return names, nil
}

func collision(def *plan.ContainerDef, pos token.Pos, format string, args ...any) error {
	err := diagnostic.Errorf(diagnostic.CodeNameCollision, pos, token.NoPos, -1, format, args...)

	return err.WithFileSet(def.Fset)
}
