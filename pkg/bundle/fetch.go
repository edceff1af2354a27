package bundle

import (
	"os"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/phillipdupuis/llm-repo-bundler/pkg/tree"
)

// fetchAll reads every file concurrently and returns one record per path, in
// the same order as paths. Each worker writes into its own slot of the
// result slice, so no synchronization beyond the final join is needed. A
// file that cannot be read yields ErrorSentinel as its content; read
// failures never abort the batch.
func fetchAll(paths []string, root string, workers int, logger *zap.Logger) []FileRecord {
	if workers <= 0 {
		workers = runtime.NumCPU()
		logger.Debug("Adjusted worker count", zap.Int("workers", workers))
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	records := make([]FileRecord, len(paths))
	jobs := make(chan int, len(paths))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				records[i] = fetchOne(paths[i], root, logger)
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	logger.Debug("All files fetched", zap.Int("files", len(records)))
	return records
}

// fetchOne reads a single file. On any read failure the sentinel is
// substituted and a warning logged; the error is not propagated.
func fetchOne(path, root string, logger *zap.Logger) FileRecord {
	display := tree.Normalize(path, root)

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Failed to read file, substituting sentinel",
			zap.String("file", path),
			zap.Error(err))
		return FileRecord{Path: display, Content: ErrorSentinel}
	}

	return FileRecord{Path: display, Content: string(data)}
}
