package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/phillipdupuis/llm-repo-bundler/pkg/bundle"
	"github.com/phillipdupuis/llm-repo-bundler/pkg/clipboard"
	"github.com/phillipdupuis/llm-repo-bundler/pkg/selector"
	"github.com/phillipdupuis/llm-repo-bundler/pkg/tokens"
)

// configFileName is the basename of the optional per-project configuration
// file, looked up in the working root. Flags override file values.
const configFileName = ".llmbundler"

var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Bundle matching files into one artifact",
	Long: `Bundle expands the include glob patterns under the working root, drops
paths matching the exclude patterns, and serializes the resulting directory
tree plus each file's contents into one text artifact.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBundle(cmd)
	},
}

func init() {
	flags := bundleCmd.Flags()
	flags.StringP("include", "i", "**/*", "Comma-separated include glob patterns")
	flags.StringP("exclude", "e", "", "Comma-separated exclude glob patterns")
	flags.StringP("format", "f", string(bundle.FormatPlain), "Output format: plain or xml")
	flags.StringP("output", "o", "", "Output file; empty writes to stdout")
	flags.StringP("root", "r", ".", "Working root for pattern expansion")
	flags.Int("workers", 0, "Concurrent file readers; 0 uses all CPUs")
	flags.Bool("description", true, "Emit the pattern summary header")
	flags.Bool("tokens", false, "Log the token count of the artifact")
	flags.String("model", "gpt-4o", "Tokenizer model used with --tokens")
	flags.Bool("clipboard", false, "Copy the artifact to the system clipboard")
	flags.Bool("include-binary", false, "Bundle files whose content looks binary")

	RootCmd.AddCommand(bundleCmd)
}

func runBundle(cmd *cobra.Command) error {
	logger := rootLogger
	if logger == nil {
		logger = zap.NewNop()
	}

	root, err := cmd.Flags().GetString("root")
	if err != nil {
		return fmt.Errorf("error reading flags: %w", err)
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve root %s: %w", root, err)
	}

	v, err := loadConfig(cmd, absRoot, logger)
	if err != nil {
		return err
	}

	format, err := bundle.ParseFormat(v.GetString("format"))
	if err != nil {
		return err
	}

	include := selector.ParsePatterns(v.GetString("include"))
	exclude := selector.ParsePatterns(v.GetString("exclude"))

	paths, err := selector.Select(selector.Options{
		Root:       absRoot,
		Include:    include,
		Exclude:    exclude,
		SkipBinary: !v.GetBool("include-binary"),
		Logger:     logger,
	})
	if err != nil {
		logger.Error("File selection failed", zap.Error(err))
		return fmt.Errorf("file selection failed: %w", err)
	}
	if len(paths) == 0 {
		logger.Warn("No files matched the include patterns",
			zap.Strings("include", include),
			zap.Strings("exclude", exclude))
	}

	artifact, err := bundle.Run(paths, bundle.Config{
		Root:        absRoot,
		Include:     include,
		Exclude:     exclude,
		Format:      format,
		Description: v.GetBool("description"),
		Workers:     v.GetInt("workers"),
	}, logger)
	if err != nil {
		return fmt.Errorf("bundling failed: %w", err)
	}

	if err := publish(cmd, v.GetString("output"), artifact, logger); err != nil {
		return err
	}

	if v.GetBool("clipboard") {
		if err := clipboard.NewService().Copy(artifact); err != nil {
			logger.Warn("Failed to copy artifact to clipboard", zap.Error(err))
		} else {
			logger.Info("Copied artifact to clipboard", zap.Int("bytes", len(artifact)))
		}
	}

	if v.GetBool("tokens") {
		reportTokens(artifact, v.GetString("model"), logger)
	}

	return nil
}

// loadConfig reads the optional config file from the working root and layers
// the command flags on top of it.
func loadConfig(cmd *cobra.Command, absRoot string, logger *zap.Logger) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(absRoot)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		logger.Debug("Loaded configuration file", zap.String("file", v.ConfigFileUsed()))
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	return v, nil
}

// publish writes the artifact to the output file, or to stdout when no file
// is given.
func publish(cmd *cobra.Command, output, artifact string, logger *zap.Logger) error {
	if output == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), artifact)
		return err
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(output, []byte(artifact), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logger.Info("Wrote bundled artifact",
		zap.String("file", output),
		zap.Int("bytes", len(artifact)))
	return nil
}

// reportTokens is best effort: tokenizer setup needs encoding data that may
// be unavailable offline, so failures downgrade to a warning.
func reportTokens(artifact, model string, logger *zap.Logger) {
	counter, err := tokens.NewCounter(model)
	if err != nil {
		logger.Warn("Failed to initialize tokenizer", zap.String("model", model), zap.Error(err))
		return
	}
	logger.Info("Token count",
		zap.Int("tokens", counter.Count(artifact)),
		zap.String("model", counter.Name()))
}
