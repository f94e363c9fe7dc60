// Package propertyanalysis reports invalid property attributes as analysis
// diagnostics, for use with go vet style drivers and golangci-lint.
package propertyanalysis

import (
	"errors"
	"go/ast"

	"golang.org/x/tools/go/analysis"

	"property-generator/internal/analyze"
	"property-generator/internal/common"
	"property-generator/internal/diagnostic"
	"property-generator/internal/gen"
	"property-generator/internal/plan"
)

// Analyzer validates the property attributes of the package: attribute
// syntax and options, record shapes and generated method names.
var Analyzer = &analysis.Analyzer{
	Name: "property",
	Doc:  "checks property accessor attributes",
	Run:  run,
}

var (
	tagKey       string
	directiveKey string
)

func init() {
	Analyzer.Flags.StringVar(&tagKey, "tag", common.DefaultKey, "struct tag key holding field attributes")
	Analyzer.Flags.StringVar(&directiveKey, "directive", common.DefaultKey, "name of the type comment directive")
}

func run(pass *analysis.Pass) (any, error) {
	opts := analyze.Options{TagKey: tagKey, DirectiveKey: directiveKey}

	for _, file := range pass.Files {
		if ast.IsGenerated(file) {
			continue
		}

		for _, r := range analyze.RecordsFromFile(pass.Fset, file, pass.Pkg.Path(), pass.TypesInfo, opts) {
			if err := check(r); err != nil {
				report(pass, r, err)
			}
		}
	}

	return nil, nil
}

// check runs the record through planning and method naming, the steps that
// can reject it before code is written.
func check(r *analyze.Record) error {
	p, err := plan.BuildRecord(r, plan.Options{})
	if err != nil {
		return err
	}

	_, err = gen.MethodNames(p)

	return err
}

func report(pass *analysis.Pass, r *analyze.Record, err error) {
	e, ok := diagnostic.AsError(err)
	if !ok || !e.Pos.IsValid() {
		pass.Report(analysis.Diagnostic{
			Pos:      r.Pos,
			Category: category(err),
			Message:  err.Error(),
		})

		return
	}

	d := analysis.Diagnostic{
		Pos:      e.Pos,
		Category: string(e.Code),
		Message:  e.Text(),
	}

	if e.End.IsValid() && e.End > e.Pos {
		d.End = e.End
	}

	pass.Report(d)
}

func category(err error) string {
	var code diagnostic.Code
	if errors.As(err, &code) {
		return string(code)
	}

	return ""
}
