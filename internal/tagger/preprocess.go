package tagger

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"GoText/internal/analysis"
)

// inSentence matches a left context ending in a word or comma followed by a
// single whitespace character on the same line.
var inSentence = regexp2.MustCompile(`^.*[A-Za-z0-9,]+\s\z`, regexp2.None)

// IsWithinSentence reports whether the annotation follows other words of its
// sentence, i.e. it is not the first word of a sentence or paragraph.
func IsWithinSentence(a analysis.ContextAnnotation) bool {
	ok, err := inSentence.MatchString(a.LeftContext)
	return err == nil && ok
}

// SplitHyphenParts returns a PARTIAL_CANDIDATE annotation for every
// capitalized part of a hyphenated annotation ("Baden-Württemberg" yields
// "Baden" and "Württemberg").
func SplitHyphenParts(annotations []analysis.Annotation) []analysis.Annotation {
	var parts []analysis.Annotation
	for _, a := range annotations {
		if !strings.Contains(a.Value, "-") {
			continue
		}
		offset := a.Start
		for _, part := range strings.Split(a.Value, "-") {
			if r, _ := utf8.DecodeRuneInString(part); part != "" && unicode.IsUpper(r) {
				parts = append(parts, analysis.Annotation{
					Token: analysis.Token{Start: offset, Value: part},
					Tag:   TagPartialCandidate,
				})
			}
			offset += utf8.RuneCountInString(part) + 1
		}
	}
	return parts
}
