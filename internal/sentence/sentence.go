// Package sentence splits text into sentences with language specific
// abbreviation rules.
package sentence

import (
	"strings"
	"time"
	"unicode"

	"github.com/dlclark/regexp2"
	"github.com/pkg/errors"

	"GoText/internal/analysis"
)

// Language selects the abbreviation and lookahead rules used for splitting.
type Language string

const (
	English Language = "en"
	German  Language = "de"
)

// ParseLanguage accepts ISO codes and English language names.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en", "english":
		return English, nil
	case "de", "german":
		return German, nil
	}
	return "", errors.Wrapf(analysis.ErrInvalidArgument, "unsupported language %q", s)
}

// A sentence ends at a period, question or exclamation mark unless the mark
// follows an abbreviation, initials or an opening bracket, or is followed by
// a digit, a domain suffix, closing punctuation or a dotted continuation.
const (
	englishPattern = `(?<!(\.|\()|([A-Z]\.[A-Z]){1,10}|St|Mr|mr|Vers|Dr|dr|Prof|Nr|Rev|Mrs|mrs|Jr|jr|vs| eg|e\.g|ca|max|Min|etc| cu| sq| ft)` +
		`((\.|\?|\!)(’|”|")+(?=\s+[A-Z])|\.|\?+|\!+)` +
		`(?!(\.|[0-9]|"|”|'|\)|[!?]|(com|de|fr|uk|au|ca|cn|org|net)/?\s|\()|[A-Za-z]{1,15}\.|[A-Za-z]{1,15}\(\))`

	germanPattern = `(?<!(\.|\()|([A-Z]\.[A-Z]){1,10}|St|[mM]r|[dD]r|Ca|Mio|Mind|u\.A|Inkl|Vers|Prof|[mM]s|zusätzl|äquiv|komp|quiet|elektr\.|[jJ]r|vs|ca|engl|evtl|max|mind.|etc|Nr|Rev| sog| ident|bzw|i\.d\.R|v\.a|u\.v\.m|o\.k|zzgl|Min|Keyb|Elec|bspw|bsp|m\.E|bezügl|bzgl|inkl|exkl|ggf|z\.\s?[bB]| max| min|\s[a-z]|u\.s\.w|u\.\s?a|d\.h)` +
		`((\.|\?|\!)(”|")\s[A-Z]|\.|\?+|\!+)` +
		`(?!(\.|[0-9]|"|”|'|\)| B\.|[!?]|(com|de|fr|uk|au|ca|cn|org|net)/?\s|\()|[A-Za-z]{1,15}\.|[A-Za-z]{1,15}\(\))`
)

var patterns = map[Language]string{
	English: englishPattern,
	German:  germanPattern,
}

// Detector finds sentence boundaries. It is safe for concurrent use.
type Detector struct {
	lang Language
	re   *regexp2.Regexp
}

// Option configures a Detector.
type Option func(d *Detector) error

// WithMatchTimeout bounds the time spent searching for one boundary. Zero
// keeps the default of no limit.
func WithMatchTimeout(timeout time.Duration) Option {
	return func(d *Detector) error {
		if timeout < 0 {
			return errors.Wrapf(analysis.ErrInvalidArgument, "match timeout must not be negative, got %s", timeout)
		}
		if timeout > 0 {
			d.re.MatchTimeout = timeout
		}
		return nil
	}
}

// NewDetector creates a Detector for lang.
func NewDetector(lang Language, opts ...Option) (*Detector, error) {
	pattern, ok := patterns[lang]
	if !ok {
		return nil, errors.Wrapf(analysis.ErrInvalidArgument, "unsupported language %q", lang)
	}
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, errors.Wrapf(err, "compile %s sentence pattern", lang)
	}
	d := &Detector{lang: lang, re: re}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, errors.Wrap(err, "failed to apply option")
		}
	}
	return d, nil
}

// Language returns the language the detector splits for.
func (d *Detector) Language() Language {
	return d.lang
}

// Iterate returns the sentences of text as tokens, trimmed of surrounding
// whitespace. Offsets refer to text.
func (d *Detector) Iterate(text string) analysis.Iterator {
	runes := []rune(text)
	return &iterator{
		runes:  runes,
		masked: mask(runes),
		re:     d.re,
	}
}

// Annotate returns all sentence spans of text.
func (d *Detector) Annotate(text string) ([]analysis.Token, error) {
	return analysis.Collect(d.Iterate(text))
}

// Sentences returns the sentences of text.
func (d *Detector) Sentences(text string) ([]string, error) {
	return analysis.Values(d.Iterate(text))
}

// Split returns the sentences of text in lang. With onlyRealSentences,
// headline-like fragments are dropped, see FilterRealSentences.
func Split(text string, lang Language, onlyRealSentences bool) ([]string, error) {
	d, err := NewDetector(lang)
	if err != nil {
		return nil, err
	}
	sentences, err := d.Sentences(text)
	if err != nil {
		return nil, err
	}
	if onlyRealSentences {
		sentences = FilterRealSentences(sentences)
	}
	return sentences, nil
}

type iterator struct {
	runes  []rune
	masked []rune
	re     *regexp2.Regexp
	match  *regexp2.Match
	last   int
	done   bool
	tok    analysis.Token
	err    error
}

func (it *iterator) Next() bool {
	for !it.done {
		var (
			m   *regexp2.Match
			err error
		)
		if it.match == nil {
			m, err = it.re.FindRunesMatch(it.masked)
		} else {
			m, err = it.re.FindNextMatch(it.match)
		}
		if err != nil {
			it.err = errors.Wrap(err, "split sentences")
			it.done = true
			return false
		}
		if m == nil {
			// Unterminated trailing fragment.
			it.done = true
			return it.emit(it.last, len(it.runes))
		}
		it.match = m
		start, end := it.last, m.Index+m.Length
		it.last = end
		if it.emit(start, end) {
			return true
		}
	}
	return false
}

func (it *iterator) emit(start, end int) bool {
	for start < end && unicode.IsSpace(it.runes[start]) {
		start++
	}
	for end > start && unicode.IsSpace(it.runes[end-1]) {
		end--
	}
	if start >= end {
		return false
	}
	it.tok = analysis.Token{Start: start, Value: string(it.runes[start:end])}
	return true
}

func (it *iterator) Token() analysis.Token {
	return it.tok
}

func (it *iterator) Err() error {
	return it.err
}
