package analysis

// KeywordTokenizer passes the entire input as a single token.
type KeywordTokenizer struct{}

// NewKeywordTokenizer creates a new KeywordTokenizer.
func NewKeywordTokenizer() *KeywordTokenizer {
	return &KeywordTokenizer{}
}

// Iterate returns the entire input as one token, or nothing for empty input.
func (t *KeywordTokenizer) Iterate(text string) Iterator {
	if text == "" {
		return NewSliceIterator(nil)
	}
	return NewSliceIterator([]Token{{Start: 0, Value: text}})
}
