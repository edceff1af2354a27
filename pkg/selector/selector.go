// Package selector expands include and exclude glob patterns into the sorted
// list of regular files to bundle.
package selector

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

// Options controls file selection.
type Options struct {
	Root       string   // Directory the patterns are expanded against.
	Include    []string // Include glob patterns; supports ** wildcards.
	Exclude    []string // Paths matching any of these are dropped.
	SkipBinary bool     // Drop files whose content looks binary.
	Logger     *zap.Logger
}

// ParsePatterns splits a comma-separated pattern list, trimming whitespace
// and dropping empty entries.
func ParsePatterns(raw string) []string {
	var patterns []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			patterns = append(patterns, part)
		}
	}
	return patterns
}

// Select expands the include patterns under the root, removes excluded and
// non-regular entries, and returns a deduplicated, sorted list of absolute
// paths. A malformed pattern fails the whole selection.
func Select(opts Options) ([]string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %s: %w", root, err)
	}

	// Validate exclude patterns up front so a malformed pattern fails the
	// run instead of silently matching nothing.
	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	seen := make(map[string]struct{})
	var selected []string

	for _, pattern := range opts.Include {
		matches, err := doublestar.FilepathGlob(filepath.Join(absRoot, pattern))
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if _, dup := seen[match]; dup {
				continue
			}

			info, err := os.Stat(match)
			if err != nil {
				logger.Warn("Cannot stat matched path", zap.String("path", match), zap.Error(err))
				continue
			}
			if !info.Mode().IsRegular() {
				continue
			}

			relPath := filepath.ToSlash(mustRel(absRoot, match))
			if excluded, matched := matchesAny(opts.Exclude, relPath); excluded {
				logger.Debug("Excluded by pattern",
					zap.String("path", relPath),
					zap.String("pattern", matched))
				continue
			}

			if opts.SkipBinary {
				binary, err := isBinaryFile(match)
				if err != nil {
					logger.Warn("Failed to check if file is binary", zap.String("path", match), zap.Error(err))
					continue
				}
				if binary {
					logger.Warn("Skipping binary file", zap.String("path", relPath))
					continue
				}
			}

			seen[match] = struct{}{}
			selected = append(selected, match)
		}
	}

	sort.Strings(selected)
	logger.Debug("File selection complete",
		zap.Int("files", len(selected)),
		zap.Strings("include", opts.Include),
		zap.Strings("exclude", opts.Exclude))
	return selected, nil
}

// matchesAny reports whether relPath matches one of the patterns, returning
// the pattern that matched. Patterns were validated beforehand.
func matchesAny(patterns []string, relPath string) (bool, string) {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, relPath); ok {
			return true, pattern
		}
	}
	return false, ""
}

func mustRel(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
