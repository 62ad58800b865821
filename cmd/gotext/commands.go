package main

import (
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"GoText/internal/analysis"
	"GoText/internal/pipeline"
	"GoText/internal/sentence"
	"GoText/internal/tagger"
)

func newTokenizeCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "tokenize [file]",
		Short: "Split text into tokens",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := analysis.NewRegistry().Get(name)
			if err != nil {
				return err
			}
			text, err := readInput(cmd, inputPath(args))
			if err != nil {
				return err
			}
			tokens, err := analysis.Collect(tok.Iterate(text))
			if err != nil {
				return err
			}
			return writeJSON(cmd, nonNil(tokens))
		},
	}
	cmd.Flags().StringVar(&name, "tokenizer", "word", "tokenizer name (word|standard|whitespace|keyword)")
	return cmd
}

func newNGramsCmd() *cobra.Command {
	var chars bool
	cmd := &cobra.Command{
		Use:   "ngrams [file]",
		Short: "Emit word or character n-grams",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			text, err := readInput(cmd, inputPath(args))
			if err != nil {
				return err
			}

			var it analysis.Iterator
			if chars {
				t, err := analysis.NewCharacterNGramTokenizer(cfg.MinNGram, cfg.MaxNGram)
				if err != nil {
					return err
				}
				it = t.Iterate(text)
			} else {
				words := analysis.NewWordTokenizer(cfg.MatchTimeout)
				if it, err = analysis.NewNGramIterator(words.Iterate(text), cfg.MinNGram, cfg.MaxNGram); err != nil {
					return err
				}
			}
			grams, err := analysis.Collect(it)
			if err != nil {
				return err
			}
			return writeJSON(cmd, nonNil(grams))
		},
	}
	cmd.Flags().BoolVar(&chars, "chars", false, "character n-grams instead of word n-grams")
	return cmd
}

func newSentencesCmd() *cobra.Command {
	var position int
	cmd := &cobra.Command{
		Use:   "sentences [file]",
		Short: "Split text into sentences",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			text, err := readInput(cmd, inputPath(args))
			if err != nil {
				return err
			}
			lang, err := sentence.ParseLanguage(cfg.Language)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("at") {
				s, err := sentence.SentenceAt(text, position, lang)
				if err != nil {
					return err
				}
				return writeJSON(cmd, s)
			}

			d, err := sentence.NewDetector(lang, sentence.WithMatchTimeout(cfg.MatchTimeout))
			if err != nil {
				return err
			}
			spans, err := d.Annotate(text)
			if err != nil {
				return err
			}
			if cfg.OnlyRealSentences {
				var kept []analysis.Token
				for _, s := range spans {
					if _, ok := sentence.RealSentence(s.Value); ok {
						kept = append(kept, s)
					}
				}
				spans = kept
			}
			return writeJSON(cmd, nonNil(spans))
		},
	}
	cmd.Flags().IntVar(&position, "at", -1, "print only the sentence containing this character offset")
	return cmd
}

func newTagCmd() *cobra.Command {
	var partial bool
	cmd := &cobra.Command{
		Use:   "tag [file]",
		Short: "Tag candidate named entities with their context",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			text, err := readInput(cmd, inputPath(args))
			if err != nil {
				return err
			}
			mode, err := tagger.ParseWindowMode(cfg.WindowMode)
			if err != nil {
				return err
			}
			ct, err := tagger.NewContextTagger(mode, cfg.WindowSize)
			if err != nil {
				return err
			}
			st, err := tagger.NewStringTagger(tagger.WithContextTagger(ct), tagger.WithMatchTimeout(cfg.MatchTimeout))
			if err != nil {
				return err
			}

			cands, err := st.Candidates(text)
			if err != nil {
				return err
			}
			if partial {
				cands = append(cands, tagger.SplitHyphenParts(cands)...)
				sort.SliceStable(cands, func(i, j int) bool { return cands[i].Start < cands[j].Start })
			}
			return writeJSON(cmd, nonNil(ct.Tag(text, cands)))
		},
	}
	cmd.Flags().BoolVar(&partial, "partial", false, "also emit capitalized parts of hyphenated candidates")
	return cmd
}

func newProcessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "process [files...]",
		Short: "Run the full analysis over documents",
		Long:  "process analyzes every file as one document, or stdin when no file is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			var docs []pipeline.Document
			if len(args) == 0 {
				text, err := readInput(cmd, "")
				if err != nil {
					return err
				}
				docs = append(docs, pipeline.Document{ID: "stdin", Text: text})
			}
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return errors.Wrapf(err, "read %s", path)
				}
				docs = append(docs, pipeline.Document{ID: path, Text: string(data)})
			}

			p, err := pipeline.New(cfg, logger)
			if err != nil {
				return err
			}
			logger.Debug("processing documents", zap.Int("documents", len(docs)), zap.Int("workers", cfg.Workers))
			results, err := p.ProcessAll(cmd.Context(), docs)
			if err != nil {
				return err
			}
			return writeJSON(cmd, results)
		},
	}
}

// nonNil keeps empty results encoding as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
