package analysis

import (
	"strings"

	"github.com/pkg/errors"
)

var defaultWordTokenizer = NewWordTokenizer(0)

// Tokenize returns the word tokens of text.
func Tokenize(text string) ([]string, error) {
	return Values(defaultWordTokenizer.Iterate(text))
}

// CharNGrams returns the distinct character n-grams of text in order of
// first occurrence.
func CharNGrams(text string, n int) ([]string, error) {
	return AllCharNGrams(text, n, n)
}

// AllCharNGrams returns the distinct character n-grams of text for every n in
// n1..n2.
func AllCharNGrams(text string, n1, n2 int) ([]string, error) {
	t, err := NewCharacterNGramTokenizer(n1, n2)
	if err != nil {
		return nil, err
	}
	values, err := Values(t.Iterate(text))
	if err != nil {
		return nil, err
	}
	return distinct(values), nil
}

// CharEdgeNGrams returns the n character prefix and suffix of text. With
// mustHitLeftEdge only the prefix is returned.
func CharEdgeNGrams(text string, n int, mustHitLeftEdge bool) []string {
	runes := []rune(text)
	if n <= 0 || len(runes) < n {
		return nil
	}
	grams := []string{string(runes[:n])}
	if !mustHitLeftEdge && len(runes) > n {
		grams = append(grams, string(runes[len(runes)-n:]))
	}
	return distinct(grams)
}

// AllCharEdgeNGrams returns the edge n-grams, n in n1..n2, of every space
// separated part of text.
func AllCharEdgeNGrams(text string, n1, n2 int, mustHitLeftEdge bool) ([]string, error) {
	if err := validateRange(n1, n2); err != nil {
		return nil, err
	}
	var grams []string
	for _, part := range strings.Split(text, " ") {
		for n := n1; n <= n2; n++ {
			grams = append(grams, CharEdgeNGrams(part, n, mustHitLeftEdge)...)
		}
	}
	return distinct(grams), nil
}

// WordNGramsList returns the word n-grams of text in stream order, with
// repetitions.
func WordNGramsList(text string, n int) ([]string, error) {
	it, err := NewNGramIterator(defaultWordTokenizer.Iterate(text), n, n)
	if err != nil {
		return nil, err
	}
	return Values(it)
}

// WordNGrams returns the distinct word n-grams of text.
func WordNGrams(text string, n int) ([]string, error) {
	grams, err := WordNGramsList(text, n)
	if err != nil {
		return nil, err
	}
	return distinct(grams), nil
}

// AllWordNGrams returns the distinct word n-grams of text for every n in
// n1..n2.
func AllWordNGrams(text string, n1, n2 int) ([]string, error) {
	if err := validateRange(n1, n2); err != nil {
		return nil, err
	}
	var grams []string
	for n := n1; n <= n2; n++ {
		g, err := WordNGramsList(text, n)
		if err != nil {
			return nil, err
		}
		grams = append(grams, g...)
	}
	return distinct(grams), nil
}

// StartingWordNGrams returns the word n-grams that start at the first word of
// text, longest first.
func StartingWordNGrams(text string, n1, n2 int) []string {
	words := strings.Fields(text)
	var grams []string
	for _, n := range startingLengths(len(words), n1, n2) {
		grams = append(grams, strings.Join(words[:n], " "))
	}
	return grams
}

// ComputeSplits returns the ways text can be cut into consecutive word
// n-grams of n1..n2 words. At most maxSplits splits are collected.
func ComputeSplits(text string, n1, n2, maxSplits int) ([][]string, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "cannot split empty text")
	}
	if err := validateRange(n1, n2); err != nil {
		return nil, err
	}
	s := &splitter{n1: n1, n2: n2, max: maxSplits, seen: make(map[string]struct{})}
	s.split(words, nil)
	return s.splits, nil
}

type splitter struct {
	n1, n2 int
	max    int
	seen   map[string]struct{}
	splits [][]string
}

func (s *splitter) split(words, current []string) {
	if len(words) == 0 {
		key := strings.Join(current, "\x00")
		if _, ok := s.seen[key]; !ok {
			s.seen[key] = struct{}{}
			s.splits = append(s.splits, append([]string(nil), current...))
		}
		return
	}
	if len(s.splits) >= s.max {
		return
	}
	for _, n := range startingLengths(len(words), s.n1, s.n2) {
		s.split(words[n:], append(current, strings.Join(words[:n], " ")))
	}
}

// startingLengths lists the n-gram lengths, longest first, that fit into the
// first count words.
func startingLengths(count, n1, n2 int) []int {
	n2 = min(n2, count)
	var lengths []int
	for i := 0; i < min(count, n2-n1+1); i++ {
		if n2-i > 0 {
			lengths = append(lengths, n2-i)
		}
	}
	return lengths
}

func validateRange(n1, n2 int) error {
	if n1 <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "min length must be greater than zero, got %d", n1)
	}
	if n2 < n1 {
		return errors.Wrapf(ErrInvalidArgument, "max length %d is smaller than min length %d", n2, n1)
	}
	return nil
}

func distinct(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := values[:0:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
