package gen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/format"
	"path/filepath"
	"strings"
	"text/template"

	"property-generator/internal/common"
	"property-generator/internal/logger"
	"property-generator/internal/plan"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Filename is the name of the file written into each package directory.
	Filename string
	// GenerateComments enables doc comments on generated methods.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Filename:         common.DefaultOutput,
		GenerateComments: true,
	}
}

// Generator generates Go code from accessor plans.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Filename == "" {
		config.Filename = common.DefaultOutput
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the package directory the file belongs in.
	Dir string
	// Filename is the name of the file (e.g., "property_gen.go").
	Filename string
	// PkgPath is the import path of the package.
	PkgPath string
	// Content is the formatted Go source code.
	Content []byte
	// Records lists the types whose methods the file holds.
	Records []string
	// Unformatted is set when Content could not be formatted.
	Unformatted bool
}

// Path returns the full output path of the file.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// Generate renders one file per package, in the order packages first appear
// in plans. A record that cannot be rendered is left out of its file and
// reported in the returned error; the files of all other records are still
// returned.
func (g *Generator) Generate(ctx context.Context, plans []*plan.Plan) ([]GeneratedFile, error) {
	log := logger.FromContext(ctx)

	var (
		order  []string
		groups = make(map[string][]*plan.Plan)
		errs   []error
	)

	for _, p := range plans {
		key := p.ID.PkgPath
		if isTestFile(p.Def.File) {
			key += " [test]"
		}

		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}

		groups[key] = append(groups[key], p)
	}

	files := make([]GeneratedFile, 0, len(order))

	for _, key := range order {
		if err := ctx.Err(); err != nil {
			return files, err
		}

		file, err := g.GeneratePackage(groups[key])
		if err != nil {
			errs = append(errs, err)
		}

		if file == nil {
			continue
		}

		log.Debug("rendered package", "path", file.PkgPath, "records", len(file.Records))
		files = append(files, *file)
	}

	return files, errors.Join(errs...)
}

// GeneratePackage renders the plans of one package into a single file. The
// file is nil when no record could be rendered. Records declared in test
// files go to a _test.go variant of the file name; plans passed together
// must agree on this.
func (g *Generator) GeneratePackage(plans []*plan.Plan) (*GeneratedFile, error) {
	if len(plans) == 0 {
		return nil, nil
	}

	first := plans[0].Def

	data := &templateData{
		Generator:   common.GeneratorName,
		PackageName: first.PkgName,
	}

	imports := newImportSet()

	var (
		records []string
		errs    []error
	)

	for _, p := range plans {
		td, err := g.buildTypeData(p, imports)
		if err != nil {
			errs = append(errs, err)

			continue
		}

		data.Types = append(data.Types, *td)
		records = append(records, p.Container)
	}

	if len(data.Types) == 0 {
		return nil, errors.Join(errs...)
	}

	data.Imports = imports.groups()

	filename := g.config.Filename
	if isTestFile(first.File) {
		filename = strings.TrimSuffix(filename, ".go") + "_test.go"
	}

	file := &GeneratedFile{
		Dir:      filepath.Dir(first.File),
		Filename: filename,
		PkgPath:  first.ID.PkgPath,
		Records:  records,
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		file.Content = buf.Bytes()
		file.Unformatted = true

		return file, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	file.Content = formatted

	return file, errors.Join(errs...)
}

func isTestFile(name string) bool {
	return strings.HasSuffix(name, "_test.go")
}

// templateData holds all data needed for the file template.
type templateData struct {
	Generator   string
	PackageName string
	// Imports holds the standard library group, then everything else.
	Imports [][]importSpec
	Types   []typeData
}

type typeData struct {
	Name    string
	Methods []methodData
}

type methodData struct {
	Doc      string
	Receiver string
	Name     string
	Params   string
	Results  string
	Body     []string
}

var fileTemplate = template.Must(template.New("property").Parse(`// Code generated by {{.Generator}}. DO NOT EDIT.

package {{.PackageName}}
{{if .Imports}}
import (
{{range $i, $group := .Imports}}{{if $i}}
{{end}}{{range $group}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}}{{end}})
{{end}}
{{- range .Types}}{{range .Methods}}
{{if .Doc}}// {{.Doc}}
{{end}}func ({{.Receiver}}) {{.Name}}({{.Params}}){{if .Results}} {{.Results}}{{end}} {
{{range .Body}}	{{.}}
{{end}}}
{{end}}{{end}}`))

// buildTypeData renders the methods of one plan. Imports are merged into
// imports only when the whole plan renders.
func (g *Generator) buildTypeData(p *plan.Plan, imports *importSet) (*typeData, error) {
	names, err := MethodNames(p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Container, err)
	}

	recv := receiverName(p.Def, imports.names())

	renders := make([]render, len(p.Methods))
	for i, m := range p.Methods {
		renders[i] = renderMethod(p.Def, recv, names[i], m, g.config.GenerateComments)
	}

	needed, err := resolveImports(p.Def, renders)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Container, err)
	}

	if err := imports.check(needed); err != nil {
		return nil, fmt.Errorf("%s: %w", p.Container, err)
	}

	// The receiver must not shadow a package the methods refer to.
	if _, ok := needed[recv]; ok {
		recv = "recv"
		for i, m := range p.Methods {
			renders[i] = renderMethod(p.Def, recv, names[i], m, g.config.GenerateComments)
		}
	}

	imports.merge(needed)

	td := &typeData{Name: p.Container, Methods: make([]methodData, len(renders))}
	for i, r := range renders {
		td.Methods[i] = r.method
	}

	return td, nil
}
