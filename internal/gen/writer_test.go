package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()

	files := []GeneratedFile{
		{Dir: filepath.Join(dir, "a"), Filename: "property_gen.go", Content: []byte("package a\n")},
		{Dir: filepath.Join(dir, "b", "c"), Filename: "property_gen.go", Content: []byte("package c\n")},
	}

	stale, err := StaleFiles(files)
	require.NoError(t, err)
	assert.Len(t, stale, 2)

	require.NoError(t, WriteFiles(files))

	got, err := os.ReadFile(filepath.Join(dir, "b", "c", "property_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, "package c\n", string(got))

	stale, err = StaleFiles(files)
	require.NoError(t, err)
	assert.Empty(t, stale)

	files[0].Content = []byte("package a\n\nvar x int\n")

	stale, err = StaleFiles(files)
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, files[0].Path(), stale[0].Path())
}

func TestWriteFiles_Unformatted(t *testing.T) {
	dir := t.TempDir()

	files := []GeneratedFile{{
		Dir:         dir,
		Filename:    "property_gen.go",
		Content:     []byte("package a\nfunc {"),
		Unformatted: true,
	}}

	err := WriteFiles(files)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not format")

	assert.NoFileExists(t, filepath.Join(dir, "property_gen.go"))
	assert.FileExists(t, filepath.Join(dir, "property_gen.go.unformatted"))
}
