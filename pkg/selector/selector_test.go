package selector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel string, data []byte) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestParsePatterns(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "single", raw: "**/*.go", want: []string{"**/*.go"}},
		{name: "trims whitespace", raw: " **/*.go , docs/* ", want: []string{"**/*.go", "docs/*"}},
		{name: "drops empties", raw: "a.txt,,  ,b.txt", want: []string{"a.txt", "b.txt"}},
		{name: "empty input", raw: "", want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParsePatterns(tc.raw))
		})
	}
}

func TestSelectIncludeExclude(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", []byte("a"))
	writeFile(t, root, "dir/b.txt", []byte("b"))
	writeFile(t, root, "dir/c.md", []byte("c"))
	writeFile(t, root, "skip/d.txt", []byte("d"))

	paths, err := Select(Options{
		Root:    root,
		Include: []string{"**/*.txt"},
		Exclude: []string{"skip/**"},
	})
	require.NoError(t, err)

	want := []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "dir", "b.txt"),
	}
	assert.Equal(t, want, paths)
}

func TestSelectDeduplicatesOverlappingPatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", []byte("a"))

	paths, err := Select(Options{
		Root:    root,
		Include: []string{"**/*.txt", "a.txt"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "a.txt")}, paths)
}

func TestSelectDropsDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "dir/b.txt", []byte("b"))

	paths, err := Select(Options{
		Root:    root,
		Include: []string{"**/*"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "dir", "b.txt")}, paths)
}

func TestSelectResultIsSorted(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "z/a.txt", []byte("za"))
	writeFile(t, root, "aa.txt", []byte("aa"))

	paths, err := Select(Options{
		Root:    root,
		Include: []string{"**/*.txt"},
	})
	require.NoError(t, err)

	want := []string{
		filepath.Join(root, "aa.txt"),
		filepath.Join(root, "z", "a.txt"),
	}
	assert.Equal(t, want, paths)
}

func TestSelectInvalidExcludePattern(t *testing.T) {
	_, err := Select(Options{
		Root:    t.TempDir(),
		Include: []string{"**/*"},
		Exclude: []string{"["},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exclude pattern")
}

func TestSelectSkipsBinaryFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "text.txt", []byte("plain text"))
	binaryPath := writeFile(t, root, "blob.dat", []byte{0x00, 0x01, 0x02, 'x'})

	paths, err := Select(Options{
		Root:       root,
		Include:    []string{"**/*"},
		SkipBinary: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "text.txt")}, paths)

	paths, err = Select(Options{
		Root:    root,
		Include: []string{"**/*"},
	})
	require.NoError(t, err)
	assert.Contains(t, paths, binaryPath)
}

func TestIsBinaryFile(t *testing.T) {
	root := t.TempDir()

	text := writeFile(t, root, "a.go", []byte("package main\n"))
	nulBytes := writeFile(t, root, "a.dat", []byte{'a', 0x00, 'b'})
	byExtension := writeFile(t, root, "icon.png", []byte("actually text"))
	empty := writeFile(t, root, "empty.txt", nil)

	for path, want := range map[string]bool{
		text:        false,
		nulBytes:    true,
		byExtension: true,
		empty:       false,
	} {
		got, err := isBinaryFile(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, path)
	}
}
