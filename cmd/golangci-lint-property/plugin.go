// Package golangcilintproperty registers the property analyzer as a
// golangci-lint module plugin. To build a custom golangci-lint binary with
// it, run the following command at this package's directory:
//
//	golangci-lint custom
package golangcilintproperty

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"property-generator/pkg/propertyanalysis"
)

func init() {
	register.Plugin("property", New)
}

// New returns the linter. It takes no settings.
func New(settings any) (register.LinterPlugin, error) {
	return PropertyLinter{}, nil
}

type PropertyLinter struct{}

func (PropertyLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{propertyanalysis.Analyzer}, nil
}

// GetLoadMode returns the syntax mode: the analyzer reads declarations only.
func (PropertyLinter) GetLoadMode() string {
	return register.LoadModeSyntax
}
