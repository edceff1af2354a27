package bundle

import (
	"fmt"
	"strings"
)

// framer is a stateless rendering strategy. One tree/selection engine feeds
// either framer; the strategies never differ in what is selected, only in
// how it is framed.
type framer interface {
	description(include, exclude []string) string
	tree(rendered string) string
	file(rec FileRecord) string
}

func newFramer(format Format) (framer, error) {
	switch format {
	case FormatPlain:
		return plainFramer{}, nil
	case FormatXML:
		return xmlFramer{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

type plainFramer struct{}

func (plainFramer) description(include, exclude []string) string {
	return describePatterns(include, exclude) + "\n"
}

func (plainFramer) tree(rendered string) string {
	return "Directory structure:\n" + rendered + "\n"
}

func (plainFramer) file(rec FileRecord) string {
	return fmt.Sprintf("---\nFile: %s\n---\n\n%s\n", rec.Path, rec.Content)
}

// xmlFramer wraps the tree once, at the top level only; the recursive tree
// renderer itself knows nothing about the wrapping. Path names and attribute
// values are emitted verbatim, so a quote or angle bracket in a file name
// will corrupt the markup. This matches the established output format.
type xmlFramer struct{}

func (xmlFramer) description(include, exclude []string) string {
	return "<description>\n" + describePatterns(include, exclude) + "</description>\n\n"
}

func (xmlFramer) tree(rendered string) string {
	return "<directory_structure>\n" + rendered + "</directory_structure>\n\n"
}

func (xmlFramer) file(rec FileRecord) string {
	return fmt.Sprintf("<file path=\"%s\">\n%s</file>\n", rec.Path, rec.Content)
}

// describePatterns formats the pattern summary shared by both framers. Pure
// formatting; no selection logic.
func describePatterns(include, exclude []string) string {
	var b strings.Builder
	b.WriteString("Repository contents bundled from glob patterns.\n")
	b.WriteString("Include: " + strings.Join(include, ", ") + "\n")
	if len(exclude) > 0 {
		b.WriteString("Exclude: " + strings.Join(exclude, ", ") + "\n")
	}
	return b.String()
}
