package sentence

import (
	"regexp"
	"strings"
	"unicode"
)

var multipleSpaces = regexp.MustCompile(` {2,}`)

// FilterRealSentences keeps the sentences accepted by RealSentence, in
// their cleaned form. Headlines are typically dropped.
func FilterRealSentences(sentences []string) []string {
	var kept []string
	for _, s := range sentences {
		if clean, ok := RealSentence(s); ok {
			kept = append(kept, clean)
		}
	}
	return kept
}

// RealSentence reports whether s looks like running text: its last line must
// end with terminal punctuation, and without quotes it must be longer than 8
// characters and contain more than 2 words. It returns the trimmed last line.
func RealSentence(s string) (string, bool) {
	lines := strings.Split(s, "\n")
	last := lines[len(lines)-1]
	if !endsSentence(last) {
		return "", false
	}
	clean := strings.Trim(strings.TrimSpace(last), "“”\"")
	words := strings.Count(clean, " ") + 1
	if len([]rune(clean)) <= 8 || words <= 2 {
		return "", false
	}
	return strings.TrimSpace(last), true
}

func endsSentence(s string) bool {
	for _, suffix := range []string{".", "?", "!", ".”", ".\""} {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

// SentenceAt returns the sentence of text that contains position, a
// character offset. A negative position returns the whole text.
func SentenceAt(text string, position int, lang Language) (string, error) {
	if position < 0 {
		return text, nil
	}
	d, err := NewDetector(lang)
	if err != nil {
		return "", err
	}
	sentences, err := d.Annotate(text)
	if err != nil {
		return "", err
	}
	picked := ""
	for _, s := range sentences {
		if s.Start > position {
			break
		}
		picked = s.Value
	}
	return picked, nil
}

// PhraseToEndOfSentence cuts s after the first mark that ends a sentence,
// e.g. "Although, many of them (30.2%) are good. As long as" becomes
// "Although, many of them (30.2%) are good.".
func PhraseToEndOfSentence(s string) string {
	r := []rune(s)
	end := indexRune(r, '.', 0)

	// Periods between digits, as in 30.2%, do not end a sentence.
	delimiter := false
	for end > -1 {
		if end > 0 {
			delimiter = !unicode.IsDigit(r[end-1])
		}
		if end < len(r)-1 {
			next := r[end+1]
			delimiter = (!unicode.IsDigit(next) && unicode.IsUpper(next)) ||
				isBracket(next) ||
				(end > 0 && r[end-1] == '"')
		}
		if !delimiter && end < len(r)-2 {
			second := r[end+2]
			delimiter = !unicode.IsDigit(second) &&
				(unicode.IsUpper(second) || isBracket(second)) &&
				r[end+1] == ' '
		}
		if !delimiter && (len(r) == end+1 || r[end+1] == '\n') {
			delimiter = true
		}
		if delimiter {
			break
		}
		if end < len(r)-1 {
			end = indexRune(r, '.', end+1)
		} else {
			end = -1
		}
	}

	for _, mark := range []rune{'!', '?'} {
		if i := indexRune(r, mark, 0); i > -1 && (i < end || end == -1) {
			end = i
		}
	}

	if end == -1 {
		return s
	}
	return string(r[:end+1])
}

// PhraseFromBeginningOfSentence returns the tail of s that starts the
// current sentence, e.g. "...now. Although, many of them" becomes
// "Although, many of them". Runs of spaces are collapsed.
func PhraseFromBeginningOfSentence(s string) string {
	r := []rune(multipleSpaces.ReplaceAllString(s, " "))
	start := max(lastIndexRune(r, '.', len(r)), lastIndexRune(r, '\n', len(r)))

	delimiter := false
	for start > -1 {
		if start >= len(r)-1 {
			break
		}
		if start > 0 {
			delimiter = !unicode.IsDigit(r[start-1]) && unicode.IsUpper(r[start+1])
		}
		if !delimiter && start < len(r)-2 {
			second := r[start+2]
			delimiter = (unicode.IsUpper(second) || second == '-' || second == '=') && r[start+1] == ' '
		}
		if !delimiter && (r[start+1] == '\n' || r[start] == '\n') {
			delimiter = true
		}
		if delimiter {
			break
		}
		start = lastIndexRune(r, '.', start)
	}

	for _, mark := range []rune{'!', '?', ':'} {
		if i := lastIndexRune(r, mark, len(r)); i > start {
			start = i
		}
	}

	r = r[start+1:]
	if len(r) > 0 && r[0] == ' ' {
		r = r[1:]
	}
	return string(r)
}

func isBracket(c rune) bool {
	return strings.ContainsRune("(){}[]", c)
}

func indexRune(r []rune, c rune, from int) int {
	for i := from; i < len(r); i++ {
		if r[i] == c {
			return i
		}
	}
	return -1
}

// lastIndexRune returns the last index of c before limit.
func lastIndexRune(r []rune, c rune, limit int) int {
	for i := limit - 1; i >= 0; i-- {
		if r[i] == c {
			return i
		}
	}
	return -1
}
