package testutil

import (
	"strings"
	"testing"

	"GoText/internal/analysis"
)

// Sample is a named test document.
type Sample struct {
	ID   string
	Text string
}

// Samples returns a small set of English test documents.
func Samples() []Sample {
	return []Sample{
		{ID: "doc-1", Text: "The United States of America (USA) are often called the USA. " +
			"The largest city in the U.S. is New York City, with a population of several million."},
		{ID: "doc-2", Text: "Mr. Yakomoto, John J. Smith, Bill Drody cooperate with T. Sukimoto. " +
			"They met in St. Paul on Tuesday."},
		{ID: "doc-3", Text: "The mayan calendar ends on 21.12.2012, nobody knows what happens after end of 12/2012. " +
			"Visit www.example.com for details :) or don't."},
		{ID: "doc-4", Text: "Dolce & Gabana opened a store near the MG-Gym. " +
			"The new iPhone 4 costs ca. 4,500 dollars, said O'Sullivan."},
		{ID: "doc-5", Text: "web2.0 web 2.0 .net asp.net test-test 30,000 people. " +
			"Covers approximately 150 sq. ft. per kit. Such a great place."},
	}
}

// SampleTexts returns the texts of Samples in order.
func SampleTexts() []string {
	samples := Samples()
	texts := make([]string, len(samples))
	for i, s := range samples {
		texts[i] = s.Text
	}
	return texts
}

// LongText concatenates all sample texts n times.
func LongText(n int) string {
	return strings.Repeat(strings.Join(SampleTexts(), " ")+" ", n)
}

// AssertOffsets checks that every token value appears in text at its start
// offset, counted in characters.
func AssertOffsets(t testing.TB, text string, tokens []analysis.Token) {
	t.Helper()
	runes := []rune(text)
	for _, tok := range tokens {
		end := tok.End()
		if tok.Start < 0 || end > len(runes) {
			t.Errorf("token %q at %d exceeds text of length %d", tok.Value, tok.Start, len(runes))
			continue
		}
		if got := string(runes[tok.Start:end]); got != tok.Value {
			t.Errorf("text at %d = %q, want %q", tok.Start, got, tok.Value)
		}
	}
}

// AssertOrdered checks that token starts never decrease.
func AssertOrdered(t testing.TB, tokens []analysis.Token) {
	t.Helper()
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Start < tokens[i-1].Start {
			t.Errorf("token %d (%q at %d) starts before token %d (%q at %d)",
				i, tokens[i].Value, tokens[i].Start, i-1, tokens[i-1].Value, tokens[i-1].Start)
		}
	}
}
