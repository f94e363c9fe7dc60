package plan

import (
	"context"
	"errors"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-generator/internal/analyze"
	"property-generator/internal/conf"
	"property-generator/internal/diagnostic"
)

const testPkg = "example.com/model"

func parseRecords(t *testing.T, src string) []*analyze.Record {
	t.Helper()

	a := analyze.NewAnalyzer(analyze.Options{})
	records, err := a.ParseFile(testPkg, "model.go", "package model\n\n"+src)
	require.NoError(t, err)

	return records
}

func buildOne(t *testing.T, src string) *Plan {
	t.Helper()

	records := parseRecords(t, src)
	require.Len(t, records, 1)

	p, err := BuildRecord(records[0], Options{})
	require.NoError(t, err)

	return p
}

func methodsOf(p *Plan, op Op) []Method {
	var out []Method

	for _, m := range p.Methods {
		if m.Op == op {
			out = append(out, m)
		}
	}

	return out
}

func TestBuild_DefaultNumberField(t *testing.T) {
	p := buildOne(t, `
//property:generate
type Counter struct {
	Count uint32
}`)

	require.Len(t, p.Methods, 2)

	get := p.Methods[0]
	assert.Equal(t, OpGet, get.Op)
	assert.Equal(t, conf.VisibilityCrate, get.Visibility)
	assert.Equal(t, "Count", get.Name)
	assert.Equal(t, ReceiverPointer, get.Receiver)
	assert.Nil(t, get.Param)
	assert.Equal(t, Return{Kind: ReturnValue, Type: "uint32"}, get.Return)
	assert.Equal(t, BehaviorCopy, get.Behavior)

	set := p.Methods[1]
	assert.Equal(t, OpSet, set.Op)
	assert.Equal(t, conf.VisibilityCrate, set.Visibility)
	assert.Equal(t, "set_Count", set.Name)
	assert.Equal(t, &Param{Name: "val", Type: "uint32"}, set.Param)
	assert.Equal(t, Return{Kind: ReturnOwnerPointer, Type: "*Counter"}, set.Return)
	assert.Equal(t, BehaviorAssign, set.Behavior)
}

func TestBuild_DisabledEmitsNothing(t *testing.T) {
	p := buildOne(t, `
//property:get(disable),set(disable),mut(disable),clr(disable,scope="all")
type All struct {
	A int
	B bool
	C rune
	D string
	E []int
	F [2]int
	G sql.Null[int]
	H *Node
	I time.Time
	J func()
}`)

	assert.Empty(t, p.Methods)
}

func TestBuild_NumberClear(t *testing.T) {
	p := buildOne(t, `
type Counter struct {
	Hits int64 `+"`property:\"clr(public, scope=\\\"auto\\\")\"`"+`
}`)

	clr := methodsOf(p, OpClr)
	require.Len(t, clr, 1)
	assert.Equal(t, "clear_Hits", clr[0].Name)
	assert.Equal(t, BehaviorClearZero, clr[0].Behavior)
	assert.Equal(t, ReturnNone, clr[0].Return.Kind)

	get := methodsOf(p, OpGet)
	require.Len(t, get, 1)
	assert.Equal(t, BehaviorCopy, get[0].Behavior)
}

func TestBuild_Optional(t *testing.T) {
	p := buildOne(t, `
type User struct {
	Age   sql.Null[int32]  `+"`property:\"clr(crate)\"`"+`
	Email sql.Null[string] `+"`property:\"set(full_option)\"`"+`
}`)

	require.Len(t, p.Methods, 5)

	ageGet, ageSet, ageClr := p.Methods[0], p.Methods[1], p.Methods[2]
	assert.Equal(t, Return{Kind: ReturnValue, Type: "sql.Null[int32]"}, ageGet.Return)
	assert.Equal(t, &Param{Name: "val", Type: "int32"}, ageSet.Param)
	assert.Equal(t, BehaviorAssignWrapped, ageSet.Behavior)
	assert.Equal(t, "int32", ageSet.Elem)
	assert.Equal(t, OpClr, ageClr.Op)
	assert.Equal(t, BehaviorClearEmpty, ageClr.Behavior)

	emailGet, emailSet := p.Methods[3], p.Methods[4]
	assert.Equal(t, Return{Kind: ReturnOptional, Type: "*string"}, emailGet.Return)
	assert.Equal(t, BehaviorOptionalRef, emailGet.Behavior)
	assert.Equal(t, &Param{Name: "val", Type: "sql.Null[string]"}, emailSet.Param)
	assert.Equal(t, BehaviorAssign, emailSet.Behavior)
}

func TestBuild_Sequences(t *testing.T) {
	p := buildOne(t, `
//property:clr(public, scope="auto")
type Buffer struct {
	Tags []string
	Hash [4]byte
}`)

	require.Len(t, p.Methods, 6)

	tagsGet, tagsSet, tagsClr := p.Methods[0], p.Methods[1], p.Methods[2]
	assert.Equal(t, Return{Kind: ReturnSlice, Type: "[]string"}, tagsGet.Return)
	assert.Equal(t, &Param{Name: "val", Type: "string", Variadic: true}, tagsSet.Param)
	assert.Equal(t, BehaviorAssignSequence, tagsSet.Behavior)
	assert.Equal(t, BehaviorClearTruncate, tagsClr.Behavior)

	hashGet, hashSet, hashClr := p.Methods[3], p.Methods[4], p.Methods[5]
	assert.Equal(t, Return{Kind: ReturnSlice, Type: "[]byte"}, hashGet.Return)
	assert.Equal(t, &Param{Name: "val", Type: "[4]byte"}, hashSet.Param)
	assert.Equal(t, BehaviorClearFill, hashClr.Behavior)
}

func TestBuild_SetVariants(t *testing.T) {
	p := buildOne(t, `
type Box[T any, K comparable] struct {
	A T `+"`property:\"get(disable),set(type=\\\"ref\\\")\"`"+`
	B T `+"`property:\"get(disable),set(type=\\\"own\\\")\"`"+`
	C T `+"`property:\"get(disable),set(type=\\\"none\\\")\"`"+`
	D K `+"`property:\"get(disable),set(type=\\\"replace\\\")\"`"+`
}`)

	require.Len(t, p.Methods, 4)
	assert.Equal(t, []analyze.TypeParam{{Name: "T", Constraint: "any"}, {Name: "K", Constraint: "comparable"}}, p.TypeParams)

	assert.Equal(t, ReceiverPointer, p.Methods[0].Receiver)
	assert.Equal(t, Return{Kind: ReturnOwnerPointer, Type: "*Box[T, K]"}, p.Methods[0].Return)

	assert.Equal(t, ReceiverValue, p.Methods[1].Receiver)
	assert.Equal(t, Return{Kind: ReturnOwner, Type: "Box[T, K]"}, p.Methods[1].Return)

	assert.Equal(t, ReceiverPointer, p.Methods[2].Receiver)
	assert.Equal(t, Return{Kind: ReturnNone}, p.Methods[2].Return)

	assert.Equal(t, Return{Kind: ReturnPrevious, Type: "K"}, p.Methods[3].Return)
}

func TestBuild_ReadVariants(t *testing.T) {
	p := buildOne(t, `
//property:set(disable)
type Doc struct {
	Title   *string
	Parent  *Doc
	Created time.Time
	Labels  map[string]string `+"`property:\"get(type=\\\"clone\\\")\"`"+`
	Items   []int             `+"`property:\"get(type=\\\"clone\\\")\"`"+`
	Owner   *User             `+"`property:\"get(type=\\\"clone\\\")\"`"+`
	Rev     int               `+"`property:\"get(type=\\\"ref\\\")\"`"+`
}`)

	require.Len(t, p.Methods, 7)

	assert.Equal(t, Return{Kind: ReturnString, Type: "string"}, p.Methods[0].Return)
	assert.Equal(t, BehaviorBoxedString, p.Methods[0].Behavior)

	assert.Equal(t, Return{Kind: ReturnBoxed, Type: "*Doc"}, p.Methods[1].Return)
	assert.Equal(t, Return{Kind: ReturnPointer, Type: "*time.Time"}, p.Methods[2].Return)
	assert.Equal(t, BehaviorBorrow, p.Methods[2].Behavior)

	assert.Equal(t, CloneMap, p.Methods[3].Clone)
	assert.Equal(t, CloneSlice, p.Methods[4].Clone)
	assert.Equal(t, ClonePointer, p.Methods[5].Clone)

	assert.Equal(t, Return{Kind: ReturnPointer, Type: "*int"}, p.Methods[6].Return)
}

func TestBuild_MutAndNaming(t *testing.T) {
	p := buildOne(t, `
//property:get(public, prefix="Get"),mut(public)
type Config struct {
	Port  int
	Hosts []string `+"`property:\"mut(name=\\\"HostList\\\"), get(suffix=\\\"Slice\\\")\"`"+`
	Debug bool     `+"`property:\"skip\"`"+`
}`)

	names := make([]string, 0, len(p.Methods))
	for _, m := range p.Methods {
		names = append(names, m.Op.String()+":"+m.Name)
	}

	assert.Equal(t, []string{
		"get:GetPort", "set:set_Port", "mut:mut_Port",
		"get:HostsSlice", "set:set_Hosts", "mut:HostList",
	}, names)

	mut := methodsOf(p, OpMut)
	assert.Equal(t, Return{Kind: ReturnPointer, Type: "*[]string"}, mut[1].Return)
	assert.Equal(t, BehaviorMutable, mut[1].Behavior)
}

func TestBuild_ClearCalls(t *testing.T) {
	p := buildOne(t, `
//property:get(disable),set(disable),clr(public,scope="auto")
type Index struct {
	Name  string
	Byid  map[int]string
	Tree  *treemap.Map
	Queue arraylist.List
	Other *Node
}`)

	clr := methodsOf(p, OpClr)
	require.Len(t, clr, 4)
	assert.Equal(t, BehaviorClearString, clr[0].Behavior)
	assert.Equal(t, BehaviorClearMap, clr[1].Behavior)
	assert.Equal(t, BehaviorClearMethod, clr[2].Behavior)
	assert.Equal(t, "Tree", clr[2].Field)
	assert.Equal(t, BehaviorClearMethod, clr[3].Behavior)
}

func TestBuild_CloneNamedTypes(t *testing.T) {
	records := parseRecords(t, `
//property:get(public, type="clone"),set(disable)
type Event struct {
	At     time.Time
	Status Status
	Tags   Tags
}`)
	require.Len(t, records, 1)

	records[0].Fields[2].Cloneable = true

	p, err := BuildRecord(records[0], Options{})
	require.NoError(t, err)
	require.Len(t, p.Methods, 3)

	assert.Equal(t, CloneCopy, p.Methods[0].Clone)
	assert.Equal(t, CloneCopy, p.Methods[1].Clone)
	assert.Equal(t, CloneMethod, p.Methods[2].Clone)
}

func TestBuild_ClearStdList(t *testing.T) {
	p := buildOne(t, `
import (
	"container/list"

	"github.com/emirpasic/gods/lists/arraylist"
	glist "github.com/example/generic/list"
)

//property:get(disable),set(disable),clr(public,scope="auto")
type Queue struct {
	Pending list.List
	Done    *list.List
	Own     arraylist.List
	Other   glist.List
}`)

	clr := methodsOf(p, OpClr)
	require.Len(t, clr, 4)
	assert.Equal(t, BehaviorClearInit, clr[0].Behavior)
	assert.Equal(t, BehaviorClearInit, clr[1].Behavior)
	assert.Equal(t, BehaviorClearMethod, clr[2].Behavior)
	assert.Equal(t, BehaviorClearMethod, clr[3].Behavior)
	assert.Equal(t, "call_init", clr[0].Behavior.String())
}

func TestNewContainer_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diagnostic.Code
		msg  string
	}{
		{
			"not a struct",
			"//property\ntype Celsius float64",
			diagnostic.CodeUnsupportedShape,
			"model.go:4:6: [unsupported_shape] only struct types are supported, `Celsius` is not a struct",
		},
		{
			"alias",
			"//property\ntype Alias = struct{ X int }",
			diagnostic.CodeUnsupportedShape,
			"is an alias",
		},
		{
			"no fields",
			"//property\ntype Empty struct{}",
			diagnostic.CodeUnsupportedShape,
			"`Empty` has no fields",
		},
		{
			"bad directive",
			"//property:get(publc)\ntype T struct{ X int }",
			diagnostic.CodeUnknownOption,
			"T: model.go:3:16: [unknown_option] unknown option `publc` in `get` (did you mean `public`?)",
		},
		{
			"skip on container",
			"//property:skip\ntype T struct{ X int }",
			diagnostic.CodeUnknownOption,
			"only allowed on fields",
		},
		{
			"bad field tag",
			"type T struct {\n\tX int `property:\"get(public, public)\"`\n}",
			diagnostic.CodeDuplicateOption,
			"T.X: model.go:4:31: [duplicate_option]",
		},
		{
			"conflicting naming",
			"type T struct {\n\tX int `property:\"set(name=\\\"a\\\", prefix=\\\"b\\\")\"`\n}",
			diagnostic.CodeConflictingNaming,
			"T.X:",
		},
		{
			"broken tag value",
			"type T struct {\n\tX int `property:\"get(\\q)\"`\n}",
			diagnostic.CodeMalformed,
			"invalid `property` tag value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := parseRecords(t, tt.src)
			require.Len(t, records, 1)

			def, err := NewContainer(records[0], Options{})
			require.Error(t, err)
			assert.Nil(t, def)
			assert.True(t, errors.Is(err, tt.code), "got %v", err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestNewContainer_CustomDefaults(t *testing.T) {
	records := parseRecords(t, "//property\ntype T struct{ X int }")
	require.Len(t, records, 1)

	defaults := conf.Default()
	defaults.Set.Visibility = conf.VisibilityDisabled
	defaults.Get.Visibility = conf.VisibilityPublic

	def, err := NewContainer(records[0], Options{Defaults: &defaults})
	require.NoError(t, err)
	require.Len(t, def.Fields, 1)
	assert.Equal(t, conf.VisibilityPublic, def.Fields[0].Conf.Get.Visibility)

	p := Build(def)
	require.Len(t, p.Methods, 1)
	assert.Equal(t, OpGet, p.Methods[0].Op)
}

func TestNewContainer_ConfiguredDefaultsReplaceBuiltIn(t *testing.T) {
	defaults, err := conf.ParseText(conf.Default(), `get(public), set(prefix="with_")`, token.NoPos, conf.LevelContainer)
	require.NoError(t, err)

	records := parseRecords(t, `
//property:get(private)
type T struct {
	X int `+"`property:\"set(type=\\\"own\\\")\"`"+`
}`)
	require.Len(t, records, 1)

	// The directive sets get again on top of the configured default; that is
	// an override, not a duplicate.
	def, err := NewContainer(records[0], Options{Defaults: &defaults})
	require.NoError(t, err)

	fc := def.Fields[0].Conf
	assert.Equal(t, conf.VisibilityPrivate, fc.Get.Visibility)
	assert.Equal(t, conf.Format("with_", ""), fc.Set.Naming)
	assert.Equal(t, conf.SetOwn, fc.Set.Type)
	assert.Equal(t, conf.VisibilityDisabled, fc.Mut.Visibility)
}

func TestBuildAll_IsolatesFailures(t *testing.T) {
	records := parseRecords(t, `
//property
type Good struct{ A int }

//property
type Empty struct{}

//property:get(type="wrong")
type Bad struct{ B int }

//property
type AlsoGood struct{ C string }
`)
	require.Len(t, records, 4)

	results := BuildAll(context.Background(), records, Options{Parallelism: 2})
	require.Len(t, results, 4)

	assert.NoError(t, results[0].Err)
	assert.Equal(t, "Good", results[0].Plan.Container)

	assert.True(t, errors.Is(results[1].Err, diagnostic.CodeUnsupportedShape))
	assert.Nil(t, results[1].Plan)

	assert.True(t, errors.Is(results[2].Err, diagnostic.CodeUnknownOption))
	assert.Nil(t, results[2].Plan)

	assert.NoError(t, results[3].Err)
	assert.Equal(t, "AlsoGood", results[3].Plan.Container)

	for i, r := range results {
		assert.Same(t, records[i], r.Record)
	}
}

func TestBuildAll_Cancelled(t *testing.T) {
	records := parseRecords(t, "//property\ntype A struct{ X int }")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := BuildAll(ctx, records, Options{})
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, context.Canceled)
}

func TestBuild_SkippedClear(t *testing.T) {
	p := buildOne(t, `
type Counter struct {
	Hits int64 `+"`property:\"clr(public)\"`"+`
}`)

	assert.Empty(t, methodsOf(p, OpClr))
	require.Len(t, p.Skipped, 1)
	assert.Equal(t, OpClr, p.Skipped[0].Op)
	assert.Equal(t, "Hits", p.Skipped[0].Field)
	assert.Equal(t, "`Hits` of type int64 has no clear action under scope \"option\"", p.Skipped[0].Reason)
}
