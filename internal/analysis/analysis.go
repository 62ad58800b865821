package analysis

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrInvalidArgument is wrapped by every construction or call that rejects its
// parameters. Match it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// Token is a piece of source text located by its character offset.
// Start counts runes, not bytes.
type Token struct {
	Start int    `json:"start"`
	Value string `json:"value"`

	// Removed marks a token dropped by an upstream filter. It keeps its
	// position so that consumers can tell a gap from adjacency.
	Removed bool `json:"removed,omitempty"`
}

// End returns the offset one past the last character of the token.
func (t Token) End() int {
	return t.Start + utf8.RuneCountInString(t.Value)
}

// Annotation is a token with an optional label.
type Annotation struct {
	Token
	Tag string `json:"tag,omitempty"`
}

// ContextAnnotation is an annotation together with the text around it.
type ContextAnnotation struct {
	Annotation
	LeftContext  string `json:"left_context"`
	RightContext string `json:"right_context"`
}

// Iterator is a single pass over a token stream.
type Iterator interface {
	// Next advances to the next token. Returns false when the stream is
	// exhausted or the traversal failed.
	Next() bool

	// Token returns the current token. Valid only after Next() returns true.
	Token() Token

	// Err returns the error that stopped the traversal, if any.
	Err() error
}

// Tokenizer turns text into a token stream. Tokenizers hold no per-call
// state and may be shared; the iterators they return may not.
type Tokenizer interface {
	Iterate(text string) Iterator
}

// Collect drains it into a slice.
func Collect(it Iterator) ([]Token, error) {
	var tokens []Token
	for it.Next() {
		tokens = append(tokens, it.Token())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

// Values drains it and returns the token values in stream order.
func Values(it Iterator) ([]string, error) {
	var values []string
	for it.Next() {
		values = append(values, it.Token().Value)
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// SliceIterator is an in-memory Iterator backed by a token slice.
type SliceIterator struct {
	tokens []Token
	pos    int
}

// NewSliceIterator creates an Iterator over tokens, which must already be
// ordered by Start.
func NewSliceIterator(tokens []Token) *SliceIterator {
	return &SliceIterator{tokens: tokens, pos: -1}
}

func (it *SliceIterator) Next() bool {
	if it.pos < len(it.tokens) {
		it.pos++
	}
	return it.pos < len(it.tokens)
}

func (it *SliceIterator) Token() Token {
	return it.tokens[it.pos]
}

func (it *SliceIterator) Err() error {
	return nil
}
