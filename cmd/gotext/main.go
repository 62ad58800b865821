package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"GoText/internal/config"
	"GoText/internal/logging"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// configFlags are the persistent flags that override configuration keys.
var configFlags = []string{
	"min-ngram", "max-ngram", "window-size", "window-mode", "language",
	"only-real-sentences", "workers", "hash-buckets", "stem",
	"remove-stopwords", "log-level", "match-timeout",
}

func newRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()
	root := &cobra.Command{
		Use:           "gotext",
		Short:         "Tokenize, split and tag text",
		Long:          "gotext splits text into sentences, words and n-grams and tags candidate named entities. Results are written as JSON.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := root.PersistentFlags()
	f.String("env-file", "", "dotenv file with GOTEXT_* settings")
	f.Int("min-ngram", defaults.MinNGram, "minimum n-gram length")
	f.Int("max-ngram", defaults.MaxNGram, "maximum n-gram length")
	f.Int("window-size", defaults.WindowSize, "context window size")
	f.String("window-mode", defaults.WindowMode, "context window mode (characters|words)")
	f.String("language", defaults.Language, "sentence splitting language (en|de)")
	f.Bool("only-real-sentences", defaults.OnlyRealSentences, "drop headlines and fragments")
	f.Int("workers", defaults.Workers, "documents processed concurrently")
	f.Int("hash-buckets", defaults.HashBuckets, "dimension of hashed n-gram vectors")
	f.Bool("stem", defaults.Stem, "stem tokens")
	f.Bool("remove-stopwords", defaults.RemoveStopwords, "drop stopwords from n-grams")
	f.String("log-level", defaults.LogLevel, "log level (debug|info|warn|error)")
	f.Duration("match-timeout", defaults.MatchTimeout, "limit for a single pattern match, 0 for none")

	root.AddCommand(
		newTokenizeCmd(),
		newNGramsCmd(),
		newSentencesCmd(),
		newTagCmd(),
		newProcessCmd(),
	)
	return root
}

// loadConfig merges the environment, the env file and changed flags, in
// increasing precedence.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return config.Config{}, err
	}
	if envFile != "" {
		if _, err := config.Load(envFile); err != nil {
			return config.Config{}, err
		}
	}

	m := config.Environ()
	for _, name := range configFlags {
		if fl := cmd.Flags().Lookup(name); fl != nil && fl.Changed {
			m[strings.ReplaceAll(name, "-", "_")] = fl.Value.String()
		}
	}
	return config.FromMap(m)
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("version", Version)), nil
}

// readInput returns the contents of path, or stdin when path is empty or "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", errors.Wrap(err, "read input")
	}
	return string(data), nil
}

func inputPath(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gotext: %v\n", err)
		os.Exit(1)
	}
}
