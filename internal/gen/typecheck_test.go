package gen

import (
	"context"
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-generator/internal/analyze"
	"property-generator/internal/plan"
)

type importerFunc func(path string) (*types.Package, error)

func (f importerFunc) Import(path string) (*types.Package, error) { return f(path) }

func typeCheck(fset *token.FileSet, imp types.Importer, path string, files ...*ast.File) (*types.Package, *types.Info, error) {
	info := &types.Info{
		Types:     make(map[ast.Expr]types.TypeAndValue),
		Defs:      make(map[*ast.Ident]types.Object),
		Uses:      make(map[*ast.Ident]types.Object),
		Implicits: make(map[ast.Node]types.Object),
	}

	conf := types.Config{Importer: imp}
	pkg, err := conf.Check(path, fset, files, info)

	return pkg, info, err
}

// compileGenerated type checks src, generates its accessors and type checks
// the source together with the generated file. It returns the generated code.
func compileGenerated(t *testing.T, imp types.Importer, src string) string {
	t.Helper()

	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, "model/model.go", src, parser.ParseComments)
	require.NoError(t, err)

	_, info, err := typeCheck(fset, imp, testPkg, file)
	require.NoError(t, err, "input does not compile")

	records := analyze.RecordsFromFile(fset, file, testPkg, info, analyze.Options{})
	require.NotEmpty(t, records)

	plans := make([]*plan.Plan, 0, len(records))

	for _, r := range records {
		p, err := plan.BuildRecord(r, plan.Options{})
		require.NoError(t, err)

		plans = append(plans, p)
	}

	files, err := NewGenerator(DefaultGeneratorConfig()).Generate(context.Background(), plans)
	require.NoError(t, err)
	require.Len(t, files, 1)

	out := string(files[0].Content)

	generated, err := parser.ParseFile(fset, filepath.Join("model", files[0].Filename), out, parser.ParseComments)
	require.NoError(t, err, out)

	_, _, err = typeCheck(fset, imp, testPkg, file, generated)
	require.NoError(t, err, out)

	return out
}

func TestGenerator_OutputCompiles(t *testing.T) {
	std := importer.Default()

	tests := []struct {
		name   string
		src    string
		want   []string
		absent []string
	}{
		{
			name: "plain marker",
			src: `package model

//property:generate
type Counter struct {
	Hits uint32
}
`,
			want: []string{"return c.Hits", "c.Hits = val"},
		},
		{
			name: "read",
			src: `package model

import (
	"database/sql"
	"time"
)

//property:get(public),set(disable)
type Reading struct {
	n      int
	ok     bool
	r      rune
	s      string
	xs     []int
	hash   [4]byte
	p      *int
	name   *string
	cnt    sql.Null[int]
	label  sql.Null[string]
	at     time.Time
	copyAt time.Time ` + "`property:\"get(type=\\\"copy\\\")\"`" + `
	ref    int       ` + "`property:\"get(type=\\\"ref\\\")\"`" + `
}
`,
			want: []string{
				"return r.hash[:]",
				"return &r.at",
				"return r.copyAt",
				"return &r.ref",
				"return &r.label.V",
				"func (r *Reading) Cnt() sql.Null[int] {",
			},
		},
		{
			name: "clone",
			src: `package model

import (
	"database/sql"
	"slices"
	"time"
)

type Status string

type Tags []string

func (t Tags) Clone() Tags { return slices.Clone(t) }

//property:get(public, type="clone"),set(disable)
type Snapshot struct {
	ids    []string
	meta   map[string]int
	p      *int
	at     time.Time
	status Status
	tags   Tags
	ptags  *Tags
	cnt    sql.Null[int]
	n      int
}
`,
			want: []string{
				"return slices.Clone(s.ids)",
				"return maps.Clone(s.meta)",
				"cp := *s.p",
				"return s.at\n",
				"return s.status\n",
				"return s.tags.Clone()",
				"cp := *s.ptags",
			},
			absent: []string{"s.at.Clone()", "s.status.Clone()"},
		},
		{
			name: "write",
			src: `package model

import "database/sql"

//property:get(disable),set(public)
type Draft struct {
	title  string
	count  int
	tags   []string         ` + "`property:\"set(type=\\\"replace\\\")\"`" + `
	score  sql.Null[int]    ` + "`property:\"set(full_option)\"`" + `
	label  sql.Null[string]
	digest [4]byte          ` + "`property:\"set(type=\\\"none\\\")\"`" + `
	parent *Draft           ` + "`property:\"set(type=\\\"own\\\")\"`" + `
}
`,
			want: []string{
				"func (d *Draft) SetTags(val ...string) []string {",
				"d.tags = slices.Clone(val)",
				"func (d *Draft) SetScore(val sql.Null[int]) *Draft {",
				"d.label = sql.Null[string]{V: val, Valid: true}",
				"func (d *Draft) SetDigest(val [4]byte) {",
				"func (d Draft) SetParent(val *Draft) Draft {",
			},
		},
		{
			name: "mut",
			src: `package model

import "database/sql"

//property:get(disable),set(disable),mut(public)
type Knobs struct {
	level int
	hosts []string
	opt   sql.Null[int]
}
`,
			want: []string{"return &k.level", "func (k *Knobs) MutOpt() *sql.Null[int] {"},
		},
		{
			name: "clear",
			src: `package model

import (
	"container/list"
	"database/sql"
	"time"
)

type Set map[string]struct{}

func (s Set) Clear() { clear(s) }

//property:get(disable),set(disable),clr(public, scope="all")
type Reset struct {
	n      int
	opt    sql.Null[int]
	ok     bool
	c      rune
	s      string
	xs     []int
	arr    [3]string
	m      map[string]int
	pm     *map[string]int
	set    Set
	pset   *Set
	l      list.List
	pl     *list.List
	p      *int
	at     time.Time
	ch     chan int
	fn     func()
}
`,
			want: []string{
				"r.n = 0",
				"r.opt = sql.Null[int]{}",
				"r.ok = false",
				"r.s = \"\"",
				"r.xs = r.xs[:0]",
				"clear(r.arr[:])",
				"clear(r.m)",
				"clear(*r.pm)",
				"r.set.Clear()",
				"r.pset.Clear()",
				"r.l.Init()",
				"r.pl.Init()",
				"r.p = nil",
				"var zero time.Time",
				"var zero chan int",
				"var zero func()",
			},
			absent: []string{"r.l.Clear()", "r.pl.Clear()"},
		},
		{
			name: "generic",
			src: `package model

import "database/sql"

//property:get(public),set(public),mut(public),clr(public, scope="all")
type Box[T any, K comparable] struct {
	items []T
	index map[K]T
	value T
	ptr   *T
	opt   sql.Null[T]
}
`,
			want: []string{
				"func (b *Box[T, K]) SetItems(val ...T) *Box[T, K] {",
				"return &b.opt.V",
				"var zero T",
				"clear(b.index)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := compileGenerated(t, std, tt.src)

			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}

			for _, absent := range tt.absent {
				assert.NotContains(t, out, absent)
			}
		})
	}
}

func TestGenerator_ImportsUseDeclaredPackageName(t *testing.T) {
	fset := token.NewFileSet()

	apiFile, err := parser.ParseFile(fset, "v1/types.go", `package v1

type Pod struct{ Name string }

func (p Pod) Clone() Pod { return p }
`, 0)
	require.NoError(t, err)

	api, _, err := typeCheck(fset, nil, "example.com/api/core/v1", apiFile)
	require.NoError(t, err)

	std := importer.Default()
	imp := importerFunc(func(path string) (*types.Package, error) {
		if path == api.Path() {
			return api, nil
		}

		pkg, err := std.Import(path)
		if err != nil {
			return nil, fmt.Errorf("importing %s: %w", path, err)
		}

		return pkg, nil
	})

	out := compileGenerated(t, imp, `package model

import "example.com/api/core/v1"

//property:get(public, type="clone"),set(public)
type Deployment struct {
	pod v1.Pod
}
`)

	assert.Contains(t, out, "\t\"example.com/api/core/v1\"\n")
	assert.NotContains(t, out, "core \"example.com/api/core/v1\"")
	assert.Contains(t, out, "func (d *Deployment) SetPod(val v1.Pod) *Deployment {")
	assert.Contains(t, out, "return d.pod.Clone()")
}
