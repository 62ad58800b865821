package tagger

import (
	"sort"
	"unicode"

	"GoText/internal/analysis"
)

// Rule is one step of the candidate pipeline. Apply receives the source
// text as runes and the candidates ordered by start offset, and returns the
// transformed candidates in the same order.
type Rule struct {
	Name  string
	Apply func(text []rune, cands []analysis.Annotation) []analysis.Annotation
}

// sentenceStarters are words that begin a new sentence after a dotted
// acronym rather than continue a name.
var sentenceStarters = map[string]struct{}{
	"The": {}, "A": {}, "An": {}, "This": {}, "That": {}, "These": {}, "Those": {},
	"It": {}, "He": {}, "She": {}, "We": {}, "They": {}, "I": {}, "You": {},
	"In": {}, "On": {}, "At": {}, "But": {}, "And": {}, "Or": {}, "So": {},
	"If": {}, "When": {}, "While": {}, "After": {}, "Before": {}, "There": {},
}

// DefaultRules returns the rule pipeline used by NewStringTagger. Order
// matters: splits run before joins and overlap resolution runs last.
func DefaultRules(glue map[string]struct{}) []Rule {
	return []Rule{
		{Name: "acronym", Apply: splitAcronyms},
		{Name: "apostrophe", Apply: joinApostrophes},
		{Name: "hyphen", Apply: joinHyphens},
		{Name: "ampersand", Apply: joinAmpersands},
		{Name: "glue", Apply: glueRule(glue)},
		{Name: "number", Apply: attachNumbers},
		{Name: "overlap", Apply: resolveOverlaps},
	}
}

func span(text []rune, start, end int, tag string) analysis.Annotation {
	return analysis.Annotation{
		Token: analysis.Token{Start: start, Value: string(text[start:end])},
		Tag:   tag,
	}
}

// mergeAdjacent joins each candidate with its predecessor when join accepts
// the text between them.
func mergeAdjacent(text []rune, cands []analysis.Annotation, join func(gap []rune) bool) []analysis.Annotation {
	out := make([]analysis.Annotation, 0, len(cands))
	for _, c := range cands {
		if n := len(out); n > 0 {
			prev := out[n-1]
			if prev.End() <= c.Start && join(text[prev.End():c.Start]) {
				out[n-1] = span(text, prev.Start, c.End(), prev.Tag)
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

func isSep(r rune) bool {
	return r == ' ' || r == '\u00A0'
}

// isAcronym reports whether s is a dotted acronym of two or more letters
// such as "U.S.".
func isAcronym(s []rune) bool {
	if len(s) < 4 || len(s)%2 != 0 {
		return false
	}
	for i := 0; i < len(s); i += 2 {
		if !unicode.IsUpper(s[i]) || s[i+1] != '.' {
			return false
		}
	}
	return true
}

// splitAcronyms cuts a candidate after a dotted acronym that is followed by
// a sentence starter, as in "U.S. The U.N.".
func splitAcronyms(text []rune, cands []analysis.Annotation) []analysis.Annotation {
	out := make([]analysis.Annotation, 0, len(cands))
	for _, c := range cands {
		start, end := c.Start, c.End()
		pieceStart := start
		elemStart := start
		var prevElem []rune
		for i := start; i <= end; i++ {
			if i < end && !isSep(text[i]) {
				continue
			}
			elem := text[elemStart:i]
			if prevElem != nil && isAcronym(prevElem) {
				if _, ok := sentenceStarters[string(elem)]; ok {
					out = append(out, span(text, pieceStart, elemStart-1, c.Tag))
					pieceStart = elemStart
				}
			}
			prevElem = elem
			elemStart = i + 1
		}
		if pieceStart == start {
			out = append(out, c)
		} else {
			out = append(out, span(text, pieceStart, end, c.Tag))
		}
	}
	return out
}

func joinApostrophes(text []rune, cands []analysis.Annotation) []analysis.Annotation {
	return mergeAdjacent(text, cands, func(gap []rune) bool {
		return len(gap) == 1 && (gap[0] == '\'' || gap[0] == '’')
	})
}

// joinHyphens joins candidates separated only by hyphens and extends
// candidates over attached lowercase parts ("Ontario-based",
// "ex-President"). A hyphen followed by a space never joins.
func joinHyphens(text []rune, cands []analysis.Annotation) []analysis.Annotation {
	joined := mergeAdjacent(text, cands, func(gap []rune) bool {
		if len(gap) == 0 {
			return false
		}
		for _, r := range gap {
			if r != '-' {
				return false
			}
		}
		return true
	})

	out := make([]analysis.Annotation, len(joined))
	for i, c := range joined {
		start, end := c.Start, c.End()
		// Trailing "-lower" parts.
		for end+1 < len(text) && text[end] == '-' && unicode.IsLower(text[end+1]) {
			j := end + 1
			for j < len(text) && (unicode.IsLetter(text[j]) || unicode.IsDigit(text[j])) {
				j++
			}
			end = j
		}
		// A leading "lower-" prefix that is itself not inside a word.
		if start >= 2 && text[start-1] == '-' && unicode.IsLower(text[start-2]) {
			j := start - 2
			for j > 0 && unicode.IsLower(text[j-1]) {
				j--
			}
			if j == 0 || !(unicode.IsLetter(text[j-1]) || unicode.IsDigit(text[j-1])) {
				start = j
			}
		}
		if start != c.Start || end != c.End() {
			c = span(text, start, end, c.Tag)
		}
		out[i] = c
	}
	return out
}

// joinAmpersands joins candidates around an ampersand ("Dolce & Gabana",
// "S&P"). When the right side is a single initial followed by more words, as
// in "S&P. Investors", only the letter joins and the words after the period
// stay a candidate of their own.
func joinAmpersands(text []rune, cands []analysis.Annotation) []analysis.Annotation {
	out := make([]analysis.Annotation, 0, len(cands))
	for _, c := range cands {
		if n := len(out); n > 0 {
			prev := out[n-1]
			if prev.End() <= c.Start && isAmpersandGap(text[prev.End():c.Start]) {
				if rest := initialRest(text, c); rest > 0 {
					out[n-1] = span(text, prev.Start, c.Start+1, prev.Tag)
					out = append(out, span(text, rest, c.End(), c.Tag))
					continue
				}
				out[n-1] = span(text, prev.Start, c.End(), prev.Tag)
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

func isAmpersandGap(gap []rune) bool {
	switch len(gap) {
	case 1:
		return gap[0] == '&'
	case 2:
		return (gap[0] == '&' && isSep(gap[1])) || (isSep(gap[0]) && gap[1] == '&')
	case 3:
		return isSep(gap[0]) && gap[1] == '&' && isSep(gap[2])
	}
	return false
}

// initialRest returns the offset of the words that follow a leading
// single-letter initial in c, or 0 when c does not start with one.
func initialRest(text []rune, c analysis.Annotation) int {
	s := c.Start
	if c.End()-s < 4 || !unicode.IsUpper(text[s]) || text[s+1] != '.' || !isSep(text[s+2]) {
		return 0
	}
	return s + 3
}

// glueRule joins candidates separated by exactly one glue word.
func glueRule(glue map[string]struct{}) func([]rune, []analysis.Annotation) []analysis.Annotation {
	return func(text []rune, cands []analysis.Annotation) []analysis.Annotation {
		return mergeAdjacent(text, cands, func(gap []rune) bool {
			if len(gap) < 3 || !isSep(gap[0]) || !isSep(gap[len(gap)-1]) {
				return false
			}
			_, ok := glue[string(gap[1:len(gap)-1])]
			return ok
		})
	}
}

// attachNumbers extends a candidate whose last word is a product-like name
// over a directly following integer ("iPhone 4", "PlayStation 3"). Plain
// capitalized words ("In 2012") and decimal or grouped numbers are left alone.
func attachNumbers(text []rune, cands []analysis.Annotation) []analysis.Annotation {
	out := make([]analysis.Annotation, len(cands))
	for i, c := range cands {
		out[i] = c
		end := c.End()
		if end >= len(text) || !isSep(text[end]) || !isProductName(lastElement(text, c)) {
			continue
		}
		j := end + 1
		for j < len(text) && unicode.IsDigit(text[j]) {
			j++
		}
		if j == end+1 {
			continue
		}
		if j < len(text) {
			if unicode.IsLetter(text[j]) {
				continue
			}
			if (text[j] == '.' || text[j] == ',') && j+1 < len(text) && unicode.IsDigit(text[j+1]) {
				continue
			}
		}
		if i+1 < len(cands) && cands[i+1].Start < j {
			continue
		}
		out[i] = span(text, c.Start, j, c.Tag)
	}
	return out
}

func lastElement(text []rune, c analysis.Annotation) []rune {
	start := c.Start
	for i := c.End() - 1; i > c.Start; i-- {
		if isSep(text[i]) {
			start = i + 1
			break
		}
	}
	return text[start:c.End()]
}

// isProductName reports whether word is camel case or mixes letters and
// digits.
func isProductName(word []rune) bool {
	seenLower := false
	for _, r := range word {
		switch {
		case unicode.IsDigit(r):
			return true
		case unicode.IsLower(r):
			seenLower = true
		case unicode.IsUpper(r) && seenLower:
			return true
		}
	}
	return false
}

// resolveOverlaps orders candidates by start, preferring the longer span,
// and drops every candidate that overlaps an earlier one or has no letter.
func resolveOverlaps(_ []rune, cands []analysis.Annotation) []analysis.Annotation {
	sorted := make([]analysis.Annotation, len(cands))
	copy(sorted, cands)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End() > sorted[j].End()
	})

	out := make([]analysis.Annotation, 0, len(sorted))
	lastEnd := -1
	for _, c := range sorted {
		if c.Start < lastEnd || !hasLetter(c.Value) {
			continue
		}
		out = append(out, c)
		lastEnd = c.End()
	}
	return out
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
