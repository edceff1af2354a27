package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootLogger is attached by Execute and shared by all subcommands.
var rootLogger *zap.Logger

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "llm-repo-bundler",
	Short: "Bundle repository files into a single LLM-ready document",
	Long: `llm-repo-bundler selects files with include/exclude glob patterns and
serializes their directory tree plus contents into one text artifact,
suitable for feeding to a language model.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it with the
// provided logger.
func Execute(logger *zap.Logger) error {
	rootLogger = logger
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
