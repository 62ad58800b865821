package analysis

import (
	"strings"

	"github.com/pkg/errors"
)

// NGramIterator regroups the tokens of another iterator into word n-grams of
// min..max consecutive tokens joined by a single space. An n-gram starts
// where its first constituent starts.
//
// N-grams that contain a removed token are skipped.
type NGramIterator struct {
	src    Iterator
	min    int
	max    int
	queue  []Token
	length int
	srcEOF bool
	tok    Token
	err    error
}

// NewNGramIterator wraps src.
func NewNGramIterator(src Iterator, min, max int) (*NGramIterator, error) {
	if err := validateRange(min, max); err != nil {
		return nil, err
	}
	return &NGramIterator{
		src:    src,
		min:    min,
		max:    max,
		queue:  make([]Token, 0, max),
		length: min,
	}, nil
}

func (it *NGramIterator) Next() bool {
	for {
		it.fill()
		if it.err != nil {
			return false
		}
		if len(it.queue) < it.min {
			return false
		}
		if it.length <= it.max && it.length <= len(it.queue) {
			window := it.queue[:it.length]
			it.length++
			if containsRemoved(window) {
				continue
			}
			it.tok = joinTokens(window)
			return true
		}
		// Slide the window by one source token.
		copy(it.queue, it.queue[1:])
		it.queue = it.queue[:len(it.queue)-1]
		it.length = it.min
	}
}

func (it *NGramIterator) Token() Token {
	return it.tok
}

func (it *NGramIterator) Err() error {
	return it.err
}

func (it *NGramIterator) fill() {
	for !it.srcEOF && len(it.queue) < it.max {
		if !it.src.Next() {
			it.srcEOF = true
			if err := it.src.Err(); err != nil {
				it.err = errors.Wrap(err, "ngram source")
			}
			return
		}
		it.queue = append(it.queue, it.src.Token())
	}
}

func containsRemoved(tokens []Token) bool {
	for _, t := range tokens {
		if t.Removed {
			return true
		}
	}
	return false
}

func joinTokens(tokens []Token) Token {
	var sb strings.Builder
	for i, t := range tokens {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.Value)
	}
	return Token{Start: tokens[0].Start, Value: sb.String()}
}
