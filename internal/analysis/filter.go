package analysis

import (
	"strings"

	"github.com/kljensen/snowball"
	"github.com/pkg/errors"
)

// EnglishStopwords is a short list of English function words.
var EnglishStopwords = []string{
	"a", "an", "and", "are", "as", "at", "be", "but", "by", "for", "from",
	"has", "have", "he", "her", "his", "if", "in", "into", "is", "it", "its",
	"of", "on", "or", "she", "that", "the", "their", "them", "they", "this",
	"to", "was", "we", "were", "which", "will", "with", "you",
}

// GermanStopwords is a short list of German function words.
var GermanStopwords = []string{
	"aber", "als", "am", "an", "auch", "auf", "aus", "bei", "bin", "bis",
	"das", "dass", "dem", "den", "der", "des", "die", "ein", "eine", "einen",
	"er", "es", "für", "hat", "ich", "ist", "mit", "nicht", "noch", "oder",
	"sie", "sind", "und", "von", "war", "wie", "wir", "zu", "zum", "zur",
}

// filterIterator applies fn to every token of src. An error from fn ends the
// traversal.
type filterIterator struct {
	src Iterator
	fn  func(Token) (Token, error)
	tok Token
	err error
}

func (it *filterIterator) Next() bool {
	if it.err != nil || !it.src.Next() {
		if it.err == nil {
			it.err = it.src.Err()
		}
		return false
	}
	tok, err := it.fn(it.src.Token())
	if err != nil {
		it.err = err
		return false
	}
	it.tok = tok
	return true
}

func (it *filterIterator) Token() Token {
	return it.tok
}

func (it *filterIterator) Err() error {
	return it.err
}

// NewStopwordFilter marks tokens found in words as removed. Matching ignores
// case. Removed tokens stay in the stream at their original position.
func NewStopwordFilter(src Iterator, words []string) Iterator {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &filterIterator{src: src, fn: func(t Token) (Token, error) {
		if _, ok := set[strings.ToLower(t.Value)]; ok {
			t.Removed = true
		}
		return t, nil
	}}
}

// NewLowercaseFilter lowercases token values.
func NewLowercaseFilter(src Iterator) Iterator {
	return &filterIterator{src: src, fn: func(t Token) (Token, error) {
		if !t.Removed {
			t.Value = strings.ToLower(t.Value)
		}
		return t, nil
	}}
}

// NewStemFilter replaces token values with their snowball stem. language is
// a snowball language name such as "english".
func NewStemFilter(src Iterator, language string) (Iterator, error) {
	if _, err := snowball.Stem("probe", language, true); err != nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "no stemmer for language %q", language)
	}
	return &filterIterator{src: src, fn: func(t Token) (Token, error) {
		if t.Removed {
			return t, nil
		}
		stem, err := snowball.Stem(t.Value, language, true)
		if err != nil {
			return Token{}, errors.Wrapf(err, "stem %q at %d", t.Value, t.Start)
		}
		t.Value = stem
		return t, nil
	}}, nil
}
