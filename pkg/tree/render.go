package tree

import (
	"sort"
	"strings"
)

// Render produces the ASCII representation of the tree, one line per node.
// Children at every level are ordered by a case-sensitive bytewise comparison
// of their names, so the output is stable regardless of insertion order. An
// empty tree renders as an empty string.
func (t *Tree) Render() string {
	var b strings.Builder
	t.renderNode(&b, 0, "")
	return b.String()
}

func (t *Tree) renderNode(b *strings.Builder, id int, prefix string) {
	names := make([]string, 0, len(t.nodes[id].children))
	for name := range t.nodes[id].children {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		connector, extension := "├── ", "│   "
		if i == len(names)-1 {
			connector, extension = "└── ", "    "
		}

		b.WriteString(prefix)
		b.WriteString(connector)
		b.WriteString(name)
		b.WriteByte('\n')

		child := t.nodes[id].children[name]
		if !t.nodes[child].isFile && len(t.nodes[child].children) > 0 {
			t.renderNode(b, child, prefix+extension)
		}
	}
}
