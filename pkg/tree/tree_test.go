package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOrderIndependent(t *testing.T) {
	permutations := [][]string{
		{"a.txt", "dir/b.txt", "dir/c.txt"},
		{"dir/c.txt", "a.txt", "dir/b.txt"},
		{"dir/b.txt", "dir/c.txt", "a.txt"},
	}

	want := Build(permutations[0]).Render()
	for _, paths := range permutations {
		assert.Equal(t, want, Build(paths).Render())
	}
}

func TestBuildIdempotent(t *testing.T) {
	paths := []string{"a.txt", "dir/b.txt", "dir/c.txt"}
	doubled := append(append([]string{}, paths...), paths...)

	once := Build(paths)
	twice := Build(doubled)

	assert.Equal(t, once.Render(), twice.Render())
	assert.Equal(t, once.Len(), twice.Len())
}

func TestRenderGolden(t *testing.T) {
	tr := Build([]string{"dir/b.txt", "dir/c.txt", "a.txt"})

	want := "├── a.txt\n" +
		"└── dir\n" +
		"    ├── b.txt\n" +
		"    └── c.txt\n"
	assert.Equal(t, want, tr.Render())
}

func TestRenderDeepNesting(t *testing.T) {
	tr := Build([]string{
		"cmd/root.go",
		"cmd/sub/run.go",
		"main.go",
	})

	want := "├── cmd\n" +
		"│   ├── root.go\n" +
		"│   └── sub\n" +
		"│       └── run.go\n" +
		"└── main.go\n"
	assert.Equal(t, want, tr.Render())
}

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "", New().Render())
	assert.Equal(t, "", Build(nil).Render())
}

func TestRenderSingleFile(t *testing.T) {
	tr := Build([]string{"readme.md"})
	assert.Equal(t, "└── readme.md\n", tr.Render())
}

func TestInsertFileMarkerIsMonotonic(t *testing.T) {
	// A path can be both a leaf and an intermediate directory; whichever
	// order the paths arrive in, the render must be identical.
	first := Build([]string{"a", "a/b"})
	second := Build([]string{"a/b", "a"})
	assert.Equal(t, first.Render(), second.Render())
}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name string
		path string
		root string
		want string
	}{
		{name: "relative path unchanged", path: "dir/b.txt", root: "/work", want: "dir/b.txt"},
		{name: "absolute made relative", path: "/work/dir/b.txt", root: "/work", want: "dir/b.txt"},
		{name: "relativization impossible", path: "/elsewhere/b.txt", root: "work", want: "/elsewhere/b.txt"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.path, tc.root))
		})
	}
}

func TestSplitDropsEmptySegments(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, Split("a//b/"))
	require.Empty(t, Split(""))
	require.Empty(t, Split("/"))
}
