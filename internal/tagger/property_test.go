package tagger

import (
	"testing"

	"pgregory.net/rapid"
)

func TestProperty_CandidatesOrderedAndDisjoint(t *testing.T) {
	tagger, err := NewStringTagger()
	if err != nil {
		t.Fatal(err)
	}
	words := []string{"the", "of", "New", "York", "U.S.", "The", "iPhone", "4", "O'Neil", "MG-Gym", "Real-", "&", "S&P", "and", "ex-Chef", ",", ".", "Köln"}

	rapid.Check(t, func(t *rapid.T) {
		parts := rapid.SliceOf(rapid.SampledFrom(words)).Draw(t, "words")
		text := ""
		for i, p := range parts {
			if i > 0 {
				text += " "
			}
			text += p
		}
		runes := []rune(text)

		got, err := tagger.Candidates(text)
		if err != nil {
			t.Fatalf("Candidates(%q): %v", text, err)
		}
		lastEnd := 0
		for _, a := range got {
			if a.Start < lastEnd {
				t.Fatalf("overlap at %d in %q: %+v", a.Start, text, got)
			}
			if a.End() > len(runes) || string(runes[a.Start:a.End()]) != a.Value {
				t.Fatalf("offset mismatch for %+v in %q", a, text)
			}
			if a.Tag != TagCandidate {
				t.Fatalf("unexpected tag %q", a.Tag)
			}
			lastEnd = a.End()
		}
	})
}
