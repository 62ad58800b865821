package analysis

// CharacterNGramTokenizer emits every character n-gram of length min..max.
type CharacterNGramTokenizer struct {
	min int
	max int
}

// NewCharacterNGramTokenizer creates a tokenizer for n-grams of min..max
// characters.
func NewCharacterNGramTokenizer(min, max int) (*CharacterNGramTokenizer, error) {
	if err := validateRange(min, max); err != nil {
		return nil, err
	}
	return &CharacterNGramTokenizer{min: min, max: max}, nil
}

// Iterate returns n-grams grouped by start offset, shortest first.
func (t *CharacterNGramTokenizer) Iterate(text string) Iterator {
	return &charNGramIterator{
		runes:  []rune(text),
		min:    t.min,
		max:    t.max,
		length: t.min,
	}
}

type charNGramIterator struct {
	runes  []rune
	min    int
	max    int
	offset int
	length int
	tok    Token
}

func (it *charNGramIterator) Next() bool {
	for {
		if it.offset+it.min > len(it.runes) {
			return false
		}
		if it.length > it.max || it.offset+it.length > len(it.runes) {
			it.offset++
			it.length = it.min
			continue
		}
		it.tok = Token{
			Start: it.offset,
			Value: string(it.runes[it.offset : it.offset+it.length]),
		}
		it.length++
		return true
	}
}

func (it *charNGramIterator) Token() Token {
	return it.tok
}

func (it *charNGramIterator) Err() error {
	return nil
}
