package benchmark

import (
	"testing"

	"GoText/internal/analysis"
	"GoText/internal/sentence"
	"GoText/internal/tagger"
	"GoText/internal/testutil"
)

func drain(b *testing.B, it analysis.Iterator) {
	for it.Next() {
		_ = it.Token()
	}
	if err := it.Err(); err != nil {
		b.Fatal(err)
	}
}

func BenchmarkWordTokenizer_Short(b *testing.B) {
	t := analysis.NewWordTokenizer(0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		drain(b, t.Iterate("The Quick Brown Fox"))
	}
}

func BenchmarkWordTokenizer_Long(b *testing.B) {
	t := analysis.NewWordTokenizer(0)
	text := testutil.LongText(4)
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		drain(b, t.Iterate(text))
	}
}

func BenchmarkStandardTokenizer_Long(b *testing.B) {
	t := analysis.NewStandardTokenizer()
	text := testutil.LongText(4)
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		drain(b, t.Iterate(text))
	}
}

func BenchmarkCharacterNGrams(b *testing.B) {
	t, err := analysis.NewCharacterNGramTokenizer(1, 3)
	if err != nil {
		b.Fatal(err)
	}
	text := testutil.SampleTexts()[0]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		drain(b, t.Iterate(text))
	}
}

func BenchmarkWordNGrams(b *testing.B) {
	words := analysis.NewWordTokenizer(0)
	text := testutil.LongText(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it, err := analysis.NewNGramIterator(words.Iterate(text), 1, 3)
		if err != nil {
			b.Fatal(err)
		}
		drain(b, it)
	}
}

func BenchmarkSentenceDetector(b *testing.B) {
	d, err := sentence.NewDetector(sentence.English)
	if err != nil {
		b.Fatal(err)
	}
	text := testutil.LongText(4)
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		drain(b, d.Iterate(text))
	}
}

func BenchmarkStringTagger(b *testing.B) {
	st, err := tagger.NewStringTagger()
	if err != nil {
		b.Fatal(err)
	}
	text := testutil.LongText(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := st.TaggedEntities(text); err != nil {
			b.Fatal(err)
		}
	}
}
