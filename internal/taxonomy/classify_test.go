package taxonomy

import (
	"go/ast"
	"go/parser"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		src  string
		kind Kind
		want string
	}{
		{"int", KindNumber, "Number"},
		{"uint32", KindNumber, "Number"},
		{"byte", KindNumber, "Number"},
		{"uintptr", KindNumber, "Number"},
		{"float64", KindNumber, "Number"},
		{"complex128", KindNumber, "Number"},
		{"(int64)", KindNumber, "Number"},
		{"bool", KindBoolean, "Boolean"},
		{"rune", KindCharacter, "Character"},
		{"string", KindString, "String"},

		{"[]int", KindVector, "Vector(int)"},
		{"[]*Node", KindVector, "Vector(*Node)"},
		{"[][]byte", KindVector, "Vector([]byte)"},
		{"[4]byte", KindFixedArray, "FixedArray(byte, 4)"},
		{"[Size]string", KindFixedArray, "FixedArray(string, Size)"},

		{"*int", KindBoxed, "Boxed(int)"},
		{"*string", KindBoxed, "Boxed(string)"},
		{"*list.List", KindBoxed, "Boxed(list.List)"},

		{"sql.Null[int64]", KindOptional, "Optional(int64)"},
		{"Option[string]", KindOptional, "Optional(string)"},
		{"opt.Optional[[]byte]", KindOptional, "Optional([]byte)"},
		{"Null[K, V]", KindOptional, "Optional(K, V)"},

		{"time.Time", KindUnrecognized, "Unrecognized(Time)"},
		{"Celsius", KindUnrecognized, "Unrecognized(Celsius)"},
		{"map[string]int", KindUnrecognized, "Unrecognized(map)"},
		{"treemap.Map", KindUnrecognized, "Unrecognized(Map)"},
		{"list.List[int]", KindUnrecognized, "Unrecognized(List)"},
		{"sql.NullString", KindUnrecognized, "Unrecognized(NullString)"},
		{"any", KindUnrecognized, "Unrecognized(any)"},
		{"error", KindUnrecognized, "Unrecognized(error)"},

		{"func()", KindUnrecognized, "Unrecognized"},
		{"chan int", KindUnrecognized, "Unrecognized"},
		{"interface{ Close() error }", KindUnrecognized, "Unrecognized"},
		{"struct{ X int }", KindUnrecognized, "Unrecognized"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := ParseAndClassify(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, got.Kind())
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	for _, src := range []string{"[]string", "*Node", "sql.Null[bool]", "map[int]int"} {
		first, err := ParseAndClassify(src)
		require.NoError(t, err)

		second, err := ParseAndClassify(src)
		require.NoError(t, err)

		assert.Equal(t, first.String(), second.String())
	}
}

func TestParseAndClassify_Invalid(t *testing.T) {
	_, err := ParseAndClassify("[]")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse type expression")
}

func TestTrailingName(t *testing.T) {
	tests := map[string]string{
		"Time":             "Time",
		"time.Time":        "Time",
		"list.List[int]":   "List",
		"Pair[int, bool]":  "Pair",
		"map[string]int":   "map",
		"(a.B)":            "B",
		"[]int":            "",
		"func(int) string": "",
	}

	for src, want := range tests {
		expr := mustParse(t, src)
		assert.Equal(t, want, TrailingName(expr), src)
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "FixedArray", KindFixedArray.String())
	assert.Equal(t, "Unrecognized", KindUnrecognized.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func mustParse(t *testing.T, src string) ast.Expr {
	t.Helper()

	expr, err := parser.ParseExpr(src)
	require.NoError(t, err)

	return expr
}
