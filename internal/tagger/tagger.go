// Package tagger finds candidate named entity spans in text and attaches
// the text surrounding each span.
package tagger

import (
	"time"

	"github.com/dlclark/regexp2"
	"github.com/pkg/errors"

	"GoText/internal/analysis"
)

const (
	// TagCandidate labels a span found by the StringTagger.
	TagCandidate = "CANDIDATE"
	// TagPartialCandidate labels a part of a candidate produced by
	// SplitHyphenParts.
	TagPartialCandidate = "PARTIAL_CANDIDATE"
)

// DefaultGlueWords may connect two capitalized runs into one candidate.
var DefaultGlueWords = []string{
	"of", "the", "and", "for",
	"de", "da", "di", "del", "des", "du", "la", "le", "y",
	"van", "von", "der",
}

const (
	sep = `[ \u00A0]`

	// titles are abbreviations that only start a candidate when a
	// capitalized word follows.
	title = `(?:Mr|Mrs|Ms|Dr|St|Prof|Rev|Gen|Col|Capt|Lt|Sgt|Mt|Hon|Jr|Sr)\.` + sep + `(?=\p{Lu})`

	element = `(?:(?:\p{Lu}\.)+|\p{Ll}+\p{Lu}[\p{L}\p{N}]*|\p{Lu}[\p{L}\p{N}]*)`

	// elementJoin separates two elements: a single space, or nothing after a dotted
	// initial that runs straight into a capital ("T.O'Brien").
	elementJoin = `(?:` + sep + `|(?<=\p{Lu}\.)(?=\p{Lu}))`

	// candidatePattern matches runs of capitalized, camel case or dotted
	// initial elements. A run never starts inside a word.
	candidatePattern = `(?<![\p{L}\p{N}])(?:` + title + `)?` + element + `(?:` + elementJoin + element + `)*`
)

// StringTagger detects capitalized phrases that may name an entity. It is
// safe for concurrent use.
type StringTagger struct {
	re       *regexp2.Regexp
	glue     map[string]struct{}
	rules    []Rule
	context  *ContextTagger
	rulesSet bool
}

// Option configures a StringTagger.
type Option func(t *StringTagger) error

// WithGlueWords replaces the connecting words used by the glue rule.
func WithGlueWords(words ...string) Option {
	return func(t *StringTagger) error {
		t.glue = make(map[string]struct{}, len(words))
		for _, w := range words {
			if w == "" {
				return errors.Wrap(analysis.ErrInvalidArgument, "glue word must not be empty")
			}
			t.glue[w] = struct{}{}
		}
		return nil
	}
}

// WithContextTagger sets the tagger used by TaggedEntities.
func WithContextTagger(ct *ContextTagger) Option {
	return func(t *StringTagger) error {
		if ct == nil {
			return errors.Wrap(analysis.ErrInvalidArgument, "context tagger must not be nil")
		}
		t.context = ct
		return nil
	}
}

// WithRules replaces the rule pipeline applied to the raw matches.
func WithRules(rules ...Rule) Option {
	return func(t *StringTagger) error {
		for _, r := range rules {
			if r.Apply == nil {
				return errors.Wrapf(analysis.ErrInvalidArgument, "rule %q has no transform", r.Name)
			}
		}
		t.rules = rules
		t.rulesSet = true
		return nil
	}
}

// WithMatchTimeout bounds the time spent on a single match. Zero keeps the
// default of no limit.
func WithMatchTimeout(timeout time.Duration) Option {
	return func(t *StringTagger) error {
		if timeout < 0 {
			return errors.Wrapf(analysis.ErrInvalidArgument, "match timeout must not be negative, got %s", timeout)
		}
		if timeout > 0 {
			t.re.MatchTimeout = timeout
		}
		return nil
	}
}

// NewStringTagger creates a StringTagger with the default glue words, rule
// pipeline and a three word context window.
func NewStringTagger(opts ...Option) (*StringTagger, error) {
	ct, err := NewContextTagger(Words, 3)
	if err != nil {
		return nil, err
	}
	t := &StringTagger{
		re:      regexp2.MustCompile(candidatePattern, regexp2.None),
		context: ct,
	}
	if err := WithGlueWords(DefaultGlueWords...)(t); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, errors.Wrap(err, "failed to apply option")
		}
	}
	if !t.rulesSet {
		t.rules = DefaultRules(t.glue)
	}
	return t, nil
}

// Candidates returns the candidate spans of text ordered by start offset.
// No two spans overlap.
func (t *StringTagger) Candidates(text string) ([]analysis.Annotation, error) {
	runes := []rune(text)
	tokens, err := analysis.Collect(analysis.NewRegexpIterator(t.re, text))
	if err != nil {
		return nil, errors.Wrap(err, "find candidates")
	}
	cands := make([]analysis.Annotation, 0, len(tokens))
	for _, tok := range tokens {
		cands = append(cands, analysis.Annotation{Token: tok, Tag: TagCandidate})
	}
	for _, r := range t.rules {
		cands = r.Apply(runes, cands)
	}
	return cands, nil
}

// TaggedEntities returns the candidates of text with their surrounding text.
func (t *StringTagger) TaggedEntities(text string) ([]analysis.ContextAnnotation, error) {
	cands, err := t.Candidates(text)
	if err != nil {
		return nil, err
	}
	return t.context.Tag(text, cands), nil
}
