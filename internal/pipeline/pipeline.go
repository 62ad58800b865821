// Package pipeline runs the complete analysis chain over documents: sentence
// splitting, word tokenization and filtering, word n-grams, feature hashing
// and candidate entity tagging.
package pipeline

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"GoText/internal/analysis"
	"GoText/internal/config"
	"GoText/internal/features"
	"GoText/internal/sentence"
	"GoText/internal/tagger"
)

// Document is a unit of input text.
type Document struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Result is the analysis of one document. A failed document carries Error
// and no other output.
type Result struct {
	ID        string                       `json:"id"`
	Sentences []analysis.Token             `json:"sentences"`
	Tokens    []analysis.Token             `json:"tokens"`
	NGrams    []string                     `json:"ngrams"`
	Vector    *features.Vector             `json:"vector,omitempty"`
	Entities  []analysis.ContextAnnotation `json:"entities"`
	TookMs    int64                        `json:"took_ms"`
	Error     string                       `json:"error,omitempty"`
}

// stemmers maps sentence languages to snowball stemmer names.
var stemmers = map[sentence.Language]string{
	sentence.English: "english",
	sentence.German:  "german",
}

var stopwords = map[sentence.Language][]string{
	sentence.English: analysis.EnglishStopwords,
	sentence.German:  analysis.GermanStopwords,
}

// Pipeline is safe for concurrent use.
type Pipeline struct {
	config   config.Config
	lang     sentence.Language
	detector *sentence.Detector
	words    *analysis.WordTokenizer
	hasher   *features.Hasher
	tagger   *tagger.StringTagger
	logger   *zap.Logger
}

// New creates a Pipeline from cfg. A nil logger discards log output.
func New(cfg config.Config, logger *zap.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lang, err := sentence.ParseLanguage(cfg.Language)
	if err != nil {
		return nil, err
	}
	detector, err := sentence.NewDetector(lang, sentence.WithMatchTimeout(cfg.MatchTimeout))
	if err != nil {
		return nil, err
	}
	if cfg.Stem {
		// Fail at construction rather than on the first document.
		if _, err := analysis.NewStemFilter(analysis.NewSliceIterator(nil), stemmers[lang]); err != nil {
			return nil, err
		}
	}
	hasher, err := features.NewHasher(cfg.HashBuckets)
	if err != nil {
		return nil, err
	}
	mode, err := tagger.ParseWindowMode(cfg.WindowMode)
	if err != nil {
		return nil, err
	}
	ct, err := tagger.NewContextTagger(mode, cfg.WindowSize)
	if err != nil {
		return nil, err
	}
	st, err := tagger.NewStringTagger(tagger.WithContextTagger(ct), tagger.WithMatchTimeout(cfg.MatchTimeout))
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		config:   cfg,
		lang:     lang,
		detector: detector,
		words:    analysis.NewWordTokenizer(cfg.MatchTimeout),
		hasher:   hasher,
		tagger:   st,
		logger:   logger,
	}, nil
}

// Config returns the configuration the pipeline was built with.
func (p *Pipeline) Config() config.Config {
	return p.config
}

// Process analyzes one document.
func (p *Pipeline) Process(ctx context.Context, doc Document) (*Result, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	spans, err := p.sentences(doc.Text)
	if err != nil {
		return nil, errors.Wrapf(err, "document %s", doc.ID)
	}

	res := &Result{ID: doc.ID, Sentences: spans}
	var grams []analysis.Token
	for _, s := range spans {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		toks, ngrams, err := p.analyzeSentence(s)
		if err != nil {
			return nil, errors.Wrapf(err, "document %s", doc.ID)
		}
		res.Tokens = append(res.Tokens, toks...)
		grams = append(grams, ngrams...)
	}
	for _, g := range grams {
		res.NGrams = append(res.NGrams, g.Value)
	}

	res.Vector, err = p.hasher.Vectorize(analysis.NewSliceIterator(grams))
	if err != nil {
		return nil, errors.Wrapf(err, "document %s", doc.ID)
	}
	res.Entities, err = p.tagger.TaggedEntities(doc.Text)
	if err != nil {
		return nil, errors.Wrapf(err, "document %s", doc.ID)
	}

	res.TookMs = time.Since(start).Milliseconds()
	p.logger.Debug("document processed",
		zap.String("id", doc.ID),
		zap.Int("sentences", len(res.Sentences)),
		zap.Int("tokens", len(res.Tokens)),
		zap.Int("entities", len(res.Entities)),
		zap.Int64("took_ms", res.TookMs),
	)
	return res, nil
}

// sentences returns the sentence spans of text, keeping only real sentences
// when configured to.
func (p *Pipeline) sentences(text string) ([]analysis.Token, error) {
	spans, err := p.detector.Annotate(text)
	if err != nil {
		return nil, err
	}
	if !p.config.OnlyRealSentences {
		return spans, nil
	}
	kept := spans[:0]
	for _, s := range spans {
		clean, ok := sentence.RealSentence(s.Value)
		if !ok {
			continue
		}
		// clean is a suffix of the span value.
		prefix := s.Value[:len(s.Value)-len(clean)]
		kept = append(kept, analysis.Token{Start: s.Start + utf8.RuneCountInString(prefix), Value: clean})
	}
	return kept, nil
}

// analyzeSentence returns the filtered word tokens of a sentence and its word
// n-grams. Offsets refer to the document.
func (p *Pipeline) analyzeSentence(s analysis.Token) ([]analysis.Token, []analysis.Token, error) {
	it := analysis.NewLowercaseFilter(p.words.Iterate(s.Value))
	if p.config.RemoveStopwords {
		it = analysis.NewStopwordFilter(it, stopwords[p.lang])
	}
	if p.config.Stem {
		var err error
		if it, err = analysis.NewStemFilter(it, stemmers[p.lang]); err != nil {
			return nil, nil, err
		}
	}
	toks, err := analysis.Collect(it)
	if err != nil {
		return nil, nil, err
	}
	for i := range toks {
		toks[i].Start += s.Start
	}

	ngrams, err := analysis.NewNGramIterator(analysis.NewSliceIterator(toks), p.config.MinNGram, p.config.MaxNGram)
	if err != nil {
		return nil, nil, err
	}
	grams, err := analysis.Collect(ngrams)
	if err != nil {
		return nil, nil, err
	}
	return toks, grams, nil
}

// ProcessAll analyzes docs with up to Workers goroutines and returns one
// result per document in input order. A document that fails is reported in
// its result's Error field; the returned error is only set when ctx is done.
func (p *Pipeline) ProcessAll(ctx context.Context, docs []Document) ([]Result, error) {
	start := time.Now()
	results := make([]Result, len(docs))

	jobs := make(chan int)
	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := 0

	workers := p.config.Workers
	if workers > len(docs) {
		workers = len(docs)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := p.Process(ctx, docs[i])
				if err != nil {
					p.logger.Warn("document failed",
						zap.String("id", docs[i].ID),
						zap.Error(err),
					)
					mu.Lock()
					failed++
					mu.Unlock()
					results[i] = Result{ID: docs[i].ID, Error: err.Error()}
					continue
				}
				results[i] = *res
			}
		}()
	}

	var err error
feed:
	for i := range docs {
		select {
		case jobs <- i:
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return nil, err
	}
	p.logger.Info("documents processed",
		zap.Int("documents", len(docs)),
		zap.Int("failed", failed),
		zap.Int("workers", workers),
		zap.Duration("took", time.Since(start)),
	)
	return results, nil
}
