package sentence

import "github.com/dlclark/regexp2"

const (
	fullMonths = `(?:January|February|March|April|May|June|July|August|September|October|November|December|` +
		`Januar|Februar|März|Mai|Juni|Juli|Oktober|Dezember)`
	shortMonths = `(?:Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sept|Sep|Oct|Nov|Dec|Mär|Okt|Dez)`

	// Only abbreviated month names take a trailing period; after a full
	// name the period ends the sentence.
	month = `(?:` + fullMonths + `\b|` + shortMonths + `\b\.?)`

	urlPattern = `(?:(?:https?|ftp)://|www\.)[^\s<>"“”]*[^\s<>"“”.,;:!?'’)\]]`

	datePattern = `\b\d{1,2}\.\d{1,2}\.(?:\d{4}|\d{2})\b` +
		`|\b\d{1,2}\.\s?` + month + `(?:\s\d{4}\b)?` +
		`|\b` + month + `\s\d{1,2}(?:st|nd|rd|th)?\b(?:,?\s\d{4}\b)?` +
		`|\b` + month + `\s\d{4}\b`

	smileyPattern = `(?<![\p{L}\p{N}])(?:[:;=]-?[()DPp]|\^\^|<3)(?![\p{L}\p{N}])`
)

// maskFiller replaces masked characters. It is an uppercase letter so that
// a masked span still reads as the start of a sentence.
const maskFiller = 'X'

// Spans are masked in this order; later expressions only see the text left
// unmasked by earlier ones.
var masks = []*regexp2.Regexp{
	regexp2.MustCompile(urlPattern, regexp2.IgnoreCase),
	regexp2.MustCompile(datePattern, regexp2.None),
	regexp2.MustCompile(smileyPattern, regexp2.None),
}

// mask returns a copy of runes in which URLs, dates and smileys are
// overwritten with maskFiller. The copy has the same length, so offsets in
// it are offsets in the original.
func mask(runes []rune) []rune {
	masked := make([]rune, len(runes))
	copy(masked, runes)
	for _, re := range masks {
		m, err := re.FindRunesMatch(masked)
		for m != nil && err == nil {
			for i := m.Index; i < m.Index+m.Length; i++ {
				masked[i] = maskFiller
			}
			m, err = re.FindNextMatch(m)
		}
	}
	return masked
}
