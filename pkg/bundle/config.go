package bundle

import "fmt"

// Format selects the surface framing of the bundled artifact. Both formats
// share the same selection and tree-building semantics and differ only in
// how the tree and file sections are framed.
type Format string

const (
	// FormatPlain frames file sections with --- delimiters and prefixes the
	// tree with a literal header line.
	FormatPlain Format = "plain"
	// FormatXML wraps the tree and each file section in markup tags.
	FormatXML Format = "xml"
)

// ErrorSentinel replaces the content of files that cannot be read.
const ErrorSentinel = "@@ERROR READING FILE@@"

// ParseFormat converts a format name into a Format.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatPlain:
		return FormatPlain, nil
	case FormatXML:
		return FormatXML, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected %q or %q)", name, FormatPlain, FormatXML)
	}
}

// Config holds the options for one bundling run.
type Config struct {
	Root        string   // Working root used to relativize absolute paths.
	Include     []string // Include patterns, echoed in the description block.
	Exclude     []string // Exclude patterns, echoed in the description block.
	Format      Format
	Description bool // Emit the human-readable pattern summary.
	Workers     int  // Concurrent content readers; <= 0 uses all CPUs.
}

// FileRecord pairs a display path with its fetched content. Records are
// independent of each other; their only ordering is the final concatenation
// order, which follows the selection order.
type FileRecord struct {
	Path    string
	Content string
}
