package analyze

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"property-generator/internal/logger"
)

// LoadMode specifies what information to load from packages. Records are
// extracted from syntax; type information names imports and finds Clone
// methods, and is used as far as it is available.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedModule |
	packages.NeedImports |
	packages.NeedDeps |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Analyzer loads Go packages and collects their records.
type Analyzer struct {
	opts  Options
	graph *Graph
	fset  *token.FileSet
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts Options) *Analyzer {
	return &Analyzer{
		opts:  opts.withDefaults(),
		graph: NewGraph(),
		fset:  token.NewFileSet(),
	}
}

// Graph returns the records collected so far.
func (a *Analyzer) Graph() *Graph {
	return a.graph
}

// FileSet returns the file set positions of every record refer to.
func (a *Analyzer) FileSet() *token.FileSet {
	return a.fset
}

// LoadPackages loads the packages matching patterns (e.g., "./store",
// "property-generator/warehouse") and extracts their records.
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) (*Graph, error) {
	log := logger.FromContext(ctx)

	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
		Fset:    a.fset,
		Tests:   a.opts.Tests,
	}

	if len(a.opts.BuildTags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(a.opts.BuildTags, ",")}
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error

	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			// Records come from syntax; type errors only cost type information.
			if e.Kind == packages.TypeError {
				continue
			}

			errs = append(errs, e)
		}
	})

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		// With Tests, a package shows up again as its test variant; the
		// variant carries every file, so it replaces the plain one.
		if a.opts.Tests && strings.HasSuffix(pkg.ID, ".test") {
			continue
		}

		a.processPackage(pkg)

		log.Debug("loaded package", "path", pkg.PkgPath, "records", len(a.graph.Packages[pkg.PkgPath].Records))
	}

	return a.graph, nil
}

func (a *Analyzer) processPackage(pkg *packages.Package) {
	info := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	if len(pkg.GoFiles) > 0 {
		info.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	// The test variant of a package is loaded after the plain one and holds a
	// superset of its files.
	if prev, ok := a.graph.Packages[pkg.PkgPath]; ok {
		for _, id := range prev.Records {
			delete(a.graph.Records, id)
		}
	}

	var records []*Record

	for _, file := range pkg.Syntax {
		// External test packages (package foo_test) cannot receive methods.
		if strings.HasSuffix(file.Name.Name, "_test") {
			continue
		}

		if ast.IsGenerated(file) {
			continue
		}

		records = append(records, RecordsFromFile(a.fset, file, pkg.PkgPath, pkg.TypesInfo, a.opts)...)
	}

	a.graph.add(info, records)
}

// ParseFile parses a single file and extracts its records into the graph
// under pkgPath. src follows go/parser.ParseFile: nil reads filename. The file
// is not type checked, so unaliased imports are named after their path and
// no field is Cloneable.
func (a *Analyzer) ParseFile(pkgPath, filename string, src any) ([]*Record, error) {
	file, err := parser.ParseFile(a.fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	records := RecordsFromFile(a.fset, file, pkgPath, nil, a.opts)

	info := a.graph.Packages[pkgPath]
	if info == nil {
		info = &PackageInfo{Path: pkgPath, Name: file.Name.Name, Dir: filepath.Dir(filename)}
	}

	a.graph.add(info, records)

	return records, nil
}
