package plan

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Export is the serializable form of a set of plans.
type Export struct {
	Records []RecordExport `yaml:"records"`
}

// RecordExport describes the accessors of one record.
type RecordExport struct {
	Name       string         `yaml:"name"`
	Package    string         `yaml:"package,omitempty"`
	TypeParams []string       `yaml:"type_params,omitempty"`
	Methods    []MethodExport `yaml:"methods"`
}

// MethodExport describes one accessor.
type MethodExport struct {
	Op         string `yaml:"op"`
	Name       string `yaml:"name"`
	Field      string `yaml:"field"`
	FieldType  string `yaml:"field_type"`
	Taxonomy   string `yaml:"taxonomy"`
	Visibility string `yaml:"visibility"`
	Receiver   string `yaml:"receiver"`
	Param      string `yaml:"param,omitempty"`
	Returns    string `yaml:"returns,omitempty"`
	Behavior   string `yaml:"behavior"`
}

// ExportPlans converts plans into their serializable form.
func ExportPlans(plans []*Plan) *Export {
	out := &Export{Records: make([]RecordExport, 0, len(plans))}

	for _, p := range plans {
		out.Records = append(out.Records, exportPlan(p))
	}

	return out
}

// ExportYAML renders plans as YAML.
func ExportYAML(plans []*Plan) ([]byte, error) {
	data, err := yaml.Marshal(ExportPlans(plans))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plans: %w", err)
	}

	return data, nil
}

func exportPlan(p *Plan) RecordExport {
	re := RecordExport{
		Name:    p.Container,
		Package: p.ID.PkgPath,
		Methods: make([]MethodExport, 0, len(p.Methods)),
	}

	for _, tp := range p.TypeParams {
		re.TypeParams = append(re.TypeParams, tp.Name+" "+tp.Constraint)
	}

	for _, m := range p.Methods {
		re.Methods = append(re.Methods, exportMethod(m))
	}

	return re
}

func exportMethod(m Method) MethodExport {
	me := MethodExport{
		Op:         m.Op.String(),
		Name:       m.Name,
		Field:      m.Field,
		FieldType:  m.FieldType,
		Taxonomy:   m.Type.String(),
		Visibility: m.Visibility.String(),
		Receiver:   m.Receiver.String(),
		Returns:    m.Return.Type,
		Behavior:   m.Behavior.String(),
	}

	if m.Behavior == BehaviorClone {
		me.Behavior += " (" + m.Clone.String() + ")"
	}

	if m.Param != nil {
		me.Param = m.Param.Type
		if m.Param.Variadic {
			me.Param = "..." + me.Param
		}
	}

	return me
}
