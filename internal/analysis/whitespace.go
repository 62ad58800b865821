package analysis

import "unicode"

// WhitespaceTokenizer splits text on whitespace without any normalization.
type WhitespaceTokenizer struct{}

// NewWhitespaceTokenizer creates a new WhitespaceTokenizer.
func NewWhitespaceTokenizer() *WhitespaceTokenizer {
	return &WhitespaceTokenizer{}
}

// Iterate splits text on whitespace, preserving case and punctuation.
func (t *WhitespaceTokenizer) Iterate(text string) Iterator {
	return newRunIterator(text, func(r rune) bool { return !unicode.IsSpace(r) })
}
