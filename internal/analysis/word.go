package analysis

import (
	"time"

	"github.com/dlclark/regexp2"
	"github.com/pkg/errors"
)

// WordPattern is the token expression in precedence order: dotted
// abbreviations, alphanumeric runs with inner joins, dot words, tags, dollar
// amounts and punctuation runs.
const WordPattern = `(?:[A-Z][a-z]?\.)+|[\p{L}\w+]+(?:[-\.,][\p{L}\w]+)*|\.[\p{L}\w]+|</?[\p{L}\w]+>|\$\d+\.\d+|[^\w\s<]+`

// WordTokenizer splits text into word level tokens.
type WordTokenizer struct {
	re *regexp2.Regexp
}

// NewWordTokenizer creates a WordTokenizer. A positive timeout bounds the
// time spent on a single match; zero means no limit.
func NewWordTokenizer(timeout time.Duration) *WordTokenizer {
	re := regexp2.MustCompile(WordPattern, regexp2.IgnoreCase|regexp2.Singleline)
	if timeout > 0 {
		re.MatchTimeout = timeout
	}
	return &WordTokenizer{re: re}
}

// Iterate returns a lazy iterator performing one match per Next call.
func (t *WordTokenizer) Iterate(text string) Iterator {
	return NewRegexpIterator(t.re, text)
}

// RegexpIterator emits every successive match of an expression as a token.
type RegexpIterator struct {
	re    *regexp2.Regexp
	runes []rune
	match *regexp2.Match
	done  bool
	err   error
}

// NewRegexpIterator creates an iterator over the matches of re in text.
func NewRegexpIterator(re *regexp2.Regexp, text string) *RegexpIterator {
	return &RegexpIterator{re: re, runes: []rune(text)}
}

func (it *RegexpIterator) Next() bool {
	if it.done {
		return false
	}
	var (
		m   *regexp2.Match
		err error
	)
	if it.match == nil {
		m, err = it.re.FindRunesMatch(it.runes)
	} else {
		m, err = it.re.FindNextMatch(it.match)
	}
	if err != nil {
		it.err = errors.Wrap(err, "match tokens")
		it.done = true
		return false
	}
	if m == nil {
		it.done = true
		return false
	}
	it.match = m
	return true
}

func (it *RegexpIterator) Token() Token {
	return Token{Start: it.match.Index, Value: it.match.String()}
}

func (it *RegexpIterator) Err() error {
	return it.err
}
