package analysis

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordTokenizer(t *testing.T) {
	tok := NewWordTokenizer(0)

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"dollar amount", "That poster costs $22.40. twenty-one.",
			[]string{"That", "poster", "costs", "$22.40", ".", "twenty-one", "."}},
		{"tags", "Mr. <MUSICIAN>John Hiatt</MUSICIAN> is awesome.",
			[]string{"Mr.", "<MUSICIAN>", "John", "Hiatt", "</MUSICIAN>", "is", "awesome", "."}},
		{"quoted tags", "Mr. '<MUSICIAN>John Hiatt</MUSICIAN>' is awesome.",
			[]string{"Mr.", "'", "<MUSICIAN>", "John", "Hiatt", "</MUSICIAN>", "'", "is", "awesome", "."}},
		{"punctuation runs", "Mr. ^<MUSICIAN>John Hiatt</MUSICIAN>) is awesome!!!",
			[]string{"Mr.", "^", "<MUSICIAN>", "John", "Hiatt", "</MUSICIAN>", ")", "is", "awesome", "!!!"}},
		{"versions and domains", "asp.net is very web 2.0. isn't it? web2.0, .net",
			[]string{"asp.net", "is", "very", "web", "2.0", ".", "isn", "'", "t", "it", "?", "web2.0", ",", ".net"}},
		{"grouped number", "40,000 residents", []string{"40,000", "residents"}},
		{"joins", "web2.0 web 2.0 .net asp.net test-test 30,000 people",
			[]string{"web2.0", "web", "2.0", ".net", "asp.net", "test-test", "30,000", "people"}},
		{"initials", "Mr. A. Anderson.", []string{"Mr.", "A.", "Anderson", "."}},
		{"abbreviation", "the U.S. army", []string{"the", "U.S.", "army"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Values(tok.Iterate(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWordTokenizer_LongSentence(t *testing.T) {
	text := "The United States of America are often called the USA, the U.S., or the U.S.A.; in 2010, 308,745,538 people lived on the east coast."
	got, err := Collect(NewWordTokenizer(0).Iterate(text))
	require.NoError(t, err)
	assert.Len(t, got, 30)
}

func TestWordTokenizer_Offsets(t *testing.T) {
	text := "Grüße aus Köln, 2.0!"
	tokens, err := Collect(NewWordTokenizer(0).Iterate(text))
	require.NoError(t, err)

	want := []Token{
		{Start: 0, Value: "Grüße"},
		{Start: 6, Value: "aus"},
		{Start: 10, Value: "Köln"},
		{Start: 14, Value: ","},
		{Start: 16, Value: "2.0"},
		{Start: 19, Value: "!"},
	}
	assert.Equal(t, want, tokens)
	assert.Equal(t, 20, tokens[len(tokens)-1].End())
}

func TestCharacterNGramTokenizer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		min   int
		max   int
		count int
	}{
		{"trigrams", "allthelilacsinohio", 3, 3, 16},
		{"whole word", "hiatt", 5, 5, 1},
		{"too short", "hiatt", 6, 6, 0},
		{"hiatt trigrams", "hiatt", 3, 3, 3},
		{"empty", "", 1, 3, 0},
		{"range", "abc", 1, 3, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := NewCharacterNGramTokenizer(tt.min, tt.max)
			require.NoError(t, err)
			got, err := Collect(tok.Iterate(tt.input))
			require.NoError(t, err)
			assert.Len(t, got, tt.count)
		})
	}
}

func TestCharacterNGramTokenizer_Order(t *testing.T) {
	tok, err := NewCharacterNGramTokenizer(1, 2)
	require.NoError(t, err)
	got, err := Collect(tok.Iterate("abc"))
	require.NoError(t, err)

	want := []Token{
		{Start: 0, Value: "a"},
		{Start: 0, Value: "ab"},
		{Start: 1, Value: "b"},
		{Start: 1, Value: "bc"},
		{Start: 2, Value: "c"},
	}
	assert.Equal(t, want, got)
}

func TestCharacterNGramTokenizer_InvalidArguments(t *testing.T) {
	for _, tc := range []struct{ min, max int }{{0, 3}, {-1, 2}, {3, 2}} {
		_, err := NewCharacterNGramTokenizer(tc.min, tc.max)
		assert.ErrorIs(t, err, ErrInvalidArgument, "min=%d max=%d", tc.min, tc.max)
	}
}

func TestNGramIterator(t *testing.T) {
	tests := []struct {
		name  string
		input string
		min   int
		max   int
		want  []string
	}{
		{"bigrams", "all the lilacs in ohio", 2, 2,
			[]string{"all the", "the lilacs", "lilacs in", "in ohio"}},
		{"too few tokens", "all the lilacs in ohio", 6, 6, nil},
		{"whole text", "all the lilacs in ohio", 5, 5, []string{"all the lilacs in ohio"}},
		{"mixed lengths", "all the lilacs", 1, 2,
			[]string{"all", "all the", "the", "the lilacs", "lilacs"}},
		{"collapses whitespace", "all the lilacs\n\n\nin   ohio", 2, 2,
			[]string{"all the", "the lilacs", "lilacs in", "in ohio"}},
		{"empty", "", 1, 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := NewNGramIterator(NewWordTokenizer(0).Iterate(tt.input), tt.min, tt.max)
			require.NoError(t, err)
			got, err := Values(it)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNGramIterator_StartOffsets(t *testing.T) {
	it, err := NewNGramIterator(NewWordTokenizer(0).Iterate("all the  lilacs"), 2, 2)
	require.NoError(t, err)
	got, err := Collect(it)
	require.NoError(t, err)

	assert.Equal(t, []Token{
		{Start: 0, Value: "all the"},
		{Start: 4, Value: "the lilacs"},
	}, got)
}

func TestNGramIterator_SkipsRemoved(t *testing.T) {
	src := NewSliceIterator([]Token{
		{Start: 0, Value: "a"},
		{Start: 2, Value: "b", Removed: true},
		{Start: 4, Value: "c"},
		{Start: 6, Value: "d"},
	})
	it, err := NewNGramIterator(src, 1, 2)
	require.NoError(t, err)
	got, err := Values(it)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "c d", "d"}, got)
}

func TestNGramIterator_InvalidArguments(t *testing.T) {
	_, err := NewNGramIterator(NewSliceIterator(nil), 0, 2)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewNGramIterator(NewSliceIterator(nil), 3, 2)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

type failingIterator struct {
	tokens []Token
	pos    int
	err    error
}

func (it *failingIterator) Next() bool {
	if it.pos >= len(it.tokens) {
		return false
	}
	it.pos++
	return true
}

func (it *failingIterator) Token() Token { return it.tokens[it.pos-1] }

func (it *failingIterator) Err() error {
	if it.pos >= len(it.tokens) {
		return it.err
	}
	return nil
}

func TestNGramIterator_PropagatesSourceError(t *testing.T) {
	boom := errors.New("boom")
	src := &failingIterator{
		tokens: []Token{{Start: 0, Value: "a"}, {Start: 2, Value: "b"}},
		err:    boom,
	}
	it, err := NewNGramIterator(src, 1, 3)
	require.NoError(t, err)

	_, err = Collect(it)
	assert.ErrorIs(t, err, boom)
}

func TestStopwordFilter(t *testing.T) {
	it := NewStopwordFilter(NewWordTokenizer(0).Iterate("The lilacs of Ohio"), EnglishStopwords)
	tokens, err := Collect(it)
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	assert.True(t, tokens[0].Removed)
	assert.False(t, tokens[1].Removed)
	assert.True(t, tokens[2].Removed)
	assert.Equal(t, 15, tokens[3].End())
}

func TestStopwordFilter_NGramGaps(t *testing.T) {
	src := NewStopwordFilter(NewWordTokenizer(0).Iterate("lilacs of the ohio valley"), EnglishStopwords)
	it, err := NewNGramIterator(src, 2, 2)
	require.NoError(t, err)
	got, err := Values(it)
	require.NoError(t, err)
	assert.Equal(t, []string{"ohio valley"}, got)
}

func TestLowercaseFilter(t *testing.T) {
	got, err := Values(NewLowercaseFilter(NewWordTokenizer(0).Iterate("The Quick FOX")))
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "quick", "fox"}, got)
}

func TestStemFilter(t *testing.T) {
	it, err := NewStemFilter(NewWordTokenizer(0).Iterate("running cats"), "english")
	require.NoError(t, err)
	got, err := Values(it)
	require.NoError(t, err)
	assert.Equal(t, []string{"run", "cat"}, got)
}

func TestStemFilter_UnknownLanguage(t *testing.T) {
	_, err := NewStemFilter(NewSliceIterator(nil), "klingon")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestStandardTokenizer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"basic", "The Quick Brown Fox", []string{"The", "Quick", "Brown", "Fox"}},
		{"empty", "", nil},
		{"punctuation", "hello, world! foo-bar", []string{"hello", "world", "foo", "bar"}},
		{"numbers", "test123 456abc", []string{"test123", "456abc"}},
		{"unicode", "café résumé", []string{"café", "résumé"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Values(NewStandardTokenizer().Iterate(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWhitespaceTokenizer(t *testing.T) {
	tokens, err := Collect(NewWhitespaceTokenizer().Iterate("  hello,   wörld!  "))
	require.NoError(t, err)
	assert.Equal(t, []Token{
		{Start: 2, Value: "hello,"},
		{Start: 11, Value: "wörld!"},
	}, tokens)
}

func TestKeywordTokenizer(t *testing.T) {
	tokens, err := Collect(NewKeywordTokenizer().Iterate("hello world"))
	require.NoError(t, err)
	assert.Equal(t, []Token{{Start: 0, Value: "hello world"}}, tokens)

	tokens, err = Collect(NewKeywordTokenizer().Iterate(""))
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestRegistry_BuiltinTokenizers(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"word", "standard", "whitespace", "keyword"} {
		tok, err := r.Get(name)
		assert.NoError(t, err, name)
		assert.NotNil(t, tok, name)
	}
	assert.Equal(t, []string{"keyword", "standard", "whitespace", "word"}, r.Names())
}

func TestRegistry_UnknownTokenizer(t *testing.T) {
	_, err := NewRegistry().Get("nonexistent")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	trigrams, err := NewCharacterNGramTokenizer(3, 3)
	require.NoError(t, err)

	require.NoError(t, r.Register("trigram", trigrams))
	got, err := r.Get("trigram")
	require.NoError(t, err)
	assert.Same(t, trigrams, got)

	assert.Error(t, r.Register("word", NewKeywordTokenizer()))
}
