// Package bundle assembles a set of selected files into a single text
// artifact: an optional description block, a rendered directory tree, and
// one content section per file.
package bundle

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/phillipdupuis/llm-repo-bundler/pkg/tree"
)

// Run bundles the selected paths into one artifact. Paths are expected to be
// deduplicated and sorted by the selector; per-file sections keep that order
// while the rendered tree orders entries lexicographically per directory.
// Every invocation recomputes from scratch.
func Run(paths []string, cfg Config, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	fr, err := newFramer(cfg.Format)
	if err != nil {
		return "", err
	}

	startTime := time.Now()
	logger.Debug("Starting bundle run",
		zap.Int("files", len(paths)),
		zap.String("format", string(cfg.Format)))

	t := tree.New()
	for _, path := range paths {
		t.Insert(tree.Normalize(path, cfg.Root))
	}

	records := fetchAll(paths, cfg.Root, cfg.Workers, logger)

	var b strings.Builder
	if cfg.Description {
		b.WriteString(fr.description(cfg.Include, cfg.Exclude))
	}
	b.WriteString(fr.tree(t.Render()))
	for _, rec := range records {
		b.WriteString(fr.file(rec))
	}

	logger.Info("Bundle assembled",
		zap.Int("files", len(records)),
		zap.Int("bytes", b.Len()),
		zap.Duration("elapsed", time.Since(startTime)))
	return b.String(), nil
}
