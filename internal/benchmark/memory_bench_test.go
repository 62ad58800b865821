package benchmark

import (
	"context"
	"testing"

	"GoText/internal/analysis"
	"GoText/internal/config"
	"GoText/internal/features"
	"GoText/internal/pipeline"
	"GoText/internal/testutil"
)

func BenchmarkMemory_Vectorize(b *testing.B) {
	h, err := features.NewHasher(1 << 20)
	if err != nil {
		b.Fatal(err)
	}
	tokens, err := analysis.Collect(analysis.NewWordTokenizer(0).Iterate(testutil.LongText(1)))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := h.Vectorize(analysis.NewSliceIterator(tokens)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMemory_NGramWindow(b *testing.B) {
	tokens, err := analysis.Collect(analysis.NewWordTokenizer(0).Iterate(testutil.LongText(1)))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it, err := analysis.NewNGramIterator(analysis.NewSliceIterator(tokens), 2, 4)
		if err != nil {
			b.Fatal(err)
		}
		drain(b, it)
	}
}

func BenchmarkMemory_ProcessAll(b *testing.B) {
	p, err := pipeline.New(config.DefaultConfig(), nil)
	if err != nil {
		b.Fatal(err)
	}
	var docs []pipeline.Document
	for _, s := range testutil.Samples() {
		docs = append(docs, pipeline.Document{ID: s.ID, Text: s.Text})
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.ProcessAll(context.Background(), docs); err != nil {
			b.Fatal(err)
		}
	}
}
