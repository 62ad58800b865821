package analysis

import "unicode"

// StandardTokenizer emits maximal runs of letters, digits and underscores.
// It keeps the original case; lowercase with NewLowercaseFilter.
type StandardTokenizer struct{}

// NewStandardTokenizer creates a new StandardTokenizer.
func NewStandardTokenizer() *StandardTokenizer {
	return &StandardTokenizer{}
}

// Iterate returns the word runs of text.
func (t *StandardTokenizer) Iterate(text string) Iterator {
	return newRunIterator(text, isWordRune)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// runIterator emits maximal runs of runes accepted by keep.
type runIterator struct {
	runes []rune
	keep  func(rune) bool
	pos   int
	tok   Token
}

func newRunIterator(text string, keep func(rune) bool) *runIterator {
	return &runIterator{runes: []rune(text), keep: keep}
}

func (it *runIterator) Next() bool {
	// Skip rejected runes.
	for it.pos < len(it.runes) && !it.keep(it.runes[it.pos]) {
		it.pos++
	}
	if it.pos >= len(it.runes) {
		return false
	}

	start := it.pos
	for it.pos < len(it.runes) && it.keep(it.runes[it.pos]) {
		it.pos++
	}
	it.tok = Token{Start: start, Value: string(it.runes[start:it.pos])}
	return true
}

func (it *runIterator) Token() Token {
	return it.tok
}

func (it *runIterator) Err() error {
	return nil
}
