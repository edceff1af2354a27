package main

import (
	"log"
	"os"
	"strings"

	"github.com/phillipdupuis/llm-repo-bundler/cmd"
	"github.com/phillipdupuis/llm-repo-bundler/pkg/logging"
	"github.com/phillipdupuis/llm-repo-bundler/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	logger, err := logging.Setup(debugRequested(), "llm-repo-bundler", version.Get().Version)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if err := cmd.Execute(logger); err != nil {
		logger.Error("llm-repo-bundler execution failed", zap.Error(err))
		syncLogger(logger)
		os.Exit(1)
	}

	syncLogger(logger)
}

// debugRequested scans the raw arguments for --debug before cobra parses
// them, so the logger can be configured up front.
func debugRequested() bool {
	for _, arg := range os.Args[1:] {
		if arg == "--debug" {
			return true
		}
	}
	return false
}

// syncLogger flushes the logger, but only when stderr can actually be
// synced. Syncing a terminal stderr fails with "invalid argument" on some
// platforms.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if syncErr := logger.Sync(); syncErr != nil {
		lowerErr := strings.ToLower(syncErr.Error())
		if !strings.Contains(lowerErr, "invalid argument") {
			log.Printf("Logger sync failed: %v", syncErr)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
