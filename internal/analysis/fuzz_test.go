package analysis

import (
	"testing"
)

func FuzzWordTokenizer(f *testing.F) {
	f.Add("Hello World")
	f.Add("")
	f.Add("Mr. <MUSICIAN>John Hiatt</MUSICIAN> is awesome!!!")
	f.Add("web2.0 .net $22.40 30,000")
	f.Add("café résumé naïve")

	tok := NewWordTokenizer(0)
	f.Fuzz(func(t *testing.T, input string) {
		runes := []rune(input)
		tokens, err := Collect(tok.Iterate(input))
		if err != nil {
			t.Fatal(err)
		}
		for _, tk := range tokens {
			if tk.Value == "" {
				t.Error("empty token produced")
			}
			if tk.Start < 0 || tk.End() > len(runes) {
				t.Errorf("invalid offsets: start=%d end=%d runes=%d", tk.Start, tk.End(), len(runes))
			}
		}
	})
}

func FuzzCharacterNGramTokenizer(f *testing.F) {
	f.Add("allthelilacsinohio", 3, 8)
	f.Add("", 1, 1)
	f.Add("äöü", 1, 2)

	f.Fuzz(func(t *testing.T, input string, min, max int) {
		tok, err := NewCharacterNGramTokenizer(min, max)
		if err != nil {
			return
		}
		if max > 64 {
			return
		}
		it := tok.Iterate(input)
		for it.Next() {
			n := it.Token().End() - it.Token().Start
			if n < min || n > max {
				t.Errorf("n-gram length %d outside %d..%d", n, min, max)
			}
		}
	})
}
