package attr

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnquote(t *testing.T) {
	fset := token.NewFileSet()
	file := fset.AddFile("model.go", -1, 100)
	lit := `"get(name=\"Count\")"`
	pos := file.Pos(10)

	src, err := Unquote(lit, pos)
	require.NoError(t, err)
	assert.Equal(t, `get(name="Count")`, src.Text)
	assert.Equal(t, pos+1, src.PosAt(0))

	// The literal "Count" starts after an escaped quote, one byte later in the
	// file than in the decoded text.
	entries, err := src.Scan()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	name := entries[0].Items[0]
	assert.Equal(t, 9, name.ValueOffset)
	assert.Equal(t, pos+1+token.Pos(9), name.ValuePos)
	assert.Equal(t, pos+1+token.Pos(len(`get(name=\"Count\")`)), entries[0].End)
}

func TestUnquote_Invalid(t *testing.T) {
	_, err := Unquote(`get`, token.NoPos)
	require.Error(t, err)

	_, err = Unquote(`"\q"`, token.NoPos)
	require.Error(t, err)
}

func TestSource_NoPos(t *testing.T) {
	src, err := Unquote(`"a\\b"`, token.NoPos)
	require.NoError(t, err)
	assert.Equal(t, `a\b`, src.Text)
	assert.Equal(t, token.NoPos, src.PosAt(1))
}
