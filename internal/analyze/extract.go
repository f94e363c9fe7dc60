package analyze

import (
	"go/ast"
	"go/token"
	"go/types"
	"slices"
	"strconv"
	"strings"

	"property-generator/internal/attr"
	"property-generator/internal/common"
	"property-generator/internal/diagnostic"
	"property-generator/internal/taxonomy"
)

// MarkerBody is the directive body that selects a type without changing its
// configuration: //property:generate. Unlike a bare //property line it is
// kept as is by gofmt.
const MarkerBody = "generate"

// Options controls which declarations become records.
type Options struct {
	// TagKey is the struct tag key holding field attributes.
	TagKey string
	// DirectiveKey names the comment directive: //<key>:<attributes>.
	DirectiveKey string
	// Types restricts extraction to the named types. Listed types are
	// selected even when they carry no attribute.
	Types []string
	// Tests also loads the test files of each package.
	Tests bool
	// BuildTags are passed to the build system.
	BuildTags []string
}

func (o Options) withDefaults() Options {
	if o.TagKey == "" {
		o.TagKey = common.DefaultKey
	}

	if o.DirectiveKey == "" {
		o.DirectiveKey = common.DefaultKey
	}

	return o
}

// RecordsFromFile extracts the selected type declarations of one file.
// pkgPath may be empty when the file is not part of a loaded package. info
// may be nil; with it, import names and Clone methods come from the type
// checker.
func RecordsFromFile(fset *token.FileSet, file *ast.File, pkgPath string, info *types.Info, opts Options) []*Record {
	opts = opts.withDefaults()

	imports := fileImports(file, info)
	filename := fset.Position(file.Package).Filename

	var records []*Record

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}

		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			doc := ts.Doc
			if doc == nil && !gen.Lparen.IsValid() {
				doc = gen.Doc
			}

			r := newRecord(fset, ts, doc, info, opts)
			r.ID.PkgPath = pkgPath
			r.PkgName = file.Name.Name
			r.File = filename
			r.Imports = imports

			if !selected(r, opts) {
				continue
			}

			records = append(records, r)
		}
	}

	return records
}

func selected(r *Record, opts Options) bool {
	if len(opts.Types) > 0 {
		return slices.Contains(opts.Types, r.Name())
	}

	return r.Err != nil || r.HasAttributes()
}

func newRecord(fset *token.FileSet, ts *ast.TypeSpec, doc *ast.CommentGroup, info *types.Info, opts Options) *Record {
	r := &Record{
		ID:   RecordID{Name: ts.Name.Name},
		Pos:  ts.Name.Pos(),
		Fset: fset,
	}

	r.Marked, r.Directives, r.Err = directives(doc, opts.DirectiveKey)

	if ts.TypeParams != nil {
		for _, field := range ts.TypeParams.List {
			constraint := types.ExprString(field.Type)
			for _, name := range field.Names {
				r.TypeParams = append(r.TypeParams, TypeParam{Name: name.Name, Constraint: constraint})
			}
		}
	}

	st, isStruct := ts.Type.(*ast.StructType)

	switch {
	case ts.Assign.IsValid():
		r.Shape = ShapeAlias
	case isStruct:
		r.Shape = ShapeStruct
	default:
		r.Shape = ShapeDefined
	}

	if r.Shape != ShapeStruct || st.Fields == nil {
		return r
	}

	for _, f := range st.Fields.List {
		tag, err := fieldTag(f.Tag, opts.TagKey)
		if err != nil && r.Err == nil {
			r.Err = err
		}

		if len(f.Names) == 0 {
			name := taxonomy.TrailingName(embeddedBase(f.Type))
			r.Fields = append(r.Fields, Field{
				Name:      name,
				Type:      f.Type,
				Embedded:  true,
				Pos:       f.Type.Pos(),
				Tag:       tag,
				Cloneable: hasCloneMethod(info, f.Type),
			})

			continue
		}

		for _, name := range f.Names {
			if name.Name == "_" {
				continue
			}

			r.Fields = append(r.Fields, Field{
				Name:      name.Name,
				Type:      f.Type,
				Pos:       name.Pos(),
				Tag:       tag,
				Cloneable: hasCloneMethod(info, f.Type),
			})
		}
	}

	return r
}

func embeddedBase(expr ast.Expr) ast.Expr {
	if star, ok := taxonomy.Unparen(expr).(*ast.StarExpr); ok {
		return star.X
	}

	return expr
}

// hasCloneMethod reports whether the type of expr has a method Clone()
// returning that same type. It is false without type information.
func hasCloneMethod(info *types.Info, expr ast.Expr) bool {
	if info == nil {
		return false
	}

	t := info.TypeOf(expr)
	if t == nil {
		return false
	}

	obj, _, _ := types.LookupFieldOrMethod(t, true, nil, "Clone")

	fn, ok := obj.(*types.Func)
	if !ok {
		return false
	}

	sig, ok := fn.Type().(*types.Signature)

	return ok && sig.Params().Len() == 0 && sig.Results().Len() == 1 &&
		types.Identical(sig.Results().At(0).Type(), t)
}

// directives returns the marker flag and the attribute lines of a doc
// comment. "//key:generate", "//key:" and "//key" mark the type,
// "//key:attrs" carries attributes. A line gofmt has turned into prose by
// inserting a space, "// key" or "// key:attrs", is an error.
func directives(doc *ast.CommentGroup, key string) (bool, []attr.Source, error) {
	if doc == nil {
		return false, nil, nil
	}

	marker := "//" + key
	prefix := marker + ":"

	var (
		marked bool
		out    []attr.Source
		err    error
	)

	for _, c := range doc.List {
		switch {
		case strings.HasPrefix(c.Text, prefix):
			body := c.Text[len(prefix):]
			if trimmed := strings.TrimSpace(body); trimmed == "" || trimmed == MarkerBody {
				marked = true

				continue
			}

			out = append(out, attr.Source{
				Text: body,
				Pos:  c.Slash + token.Pos(len(prefix)),
			})
		case strings.TrimRight(c.Text, " \t") == marker:
			marked = true
		case err == nil && spacedDirective(c.Text, key):
			err = diagnostic.Errorf(diagnostic.CodeMalformed, c.Slash, c.End(), -1,
				"comment %q is not a directive, remove the space after // (mark a type with %s%s)",
				c.Text, prefix, MarkerBody)
		}
	}

	return marked, out, err
}

// spacedDirective reports whether text reads "// key" or "// key:...".
func spacedDirective(text, key string) bool {
	rest, ok := strings.CutPrefix(text, "//")
	if !ok {
		return false
	}

	trimmed := strings.TrimLeft(rest, " \t")
	if len(trimmed) == len(rest) {
		return false
	}

	after, ok := strings.CutPrefix(trimmed, key)
	if !ok {
		return false
	}

	after = strings.TrimRight(after, " \t")

	return after == "" || strings.HasPrefix(after, ":")
}

func fileImports(file *ast.File, info *types.Info) []Import {
	out := make([]Import, 0, len(file.Imports))

	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		imp := Import{Path: path}
		if spec.Name != nil {
			imp.Name = spec.Name.Name
		}

		if info != nil {
			if pn := info.PkgNameOf(spec); pn != nil {
				imp.Package = pn.Imported().Name()
			}
		}

		out = append(out, imp)
	}

	return out
}
