package stem_test

import (
	"testing"

	"github.com/katalvlaran/genling/grammar"
	"github.com/katalvlaran/genling/sampler"
	"github.com/katalvlaran/genling/stem"
)

// BenchmarkGenerate measures a filtered CVC grammar of up to five syllables.
func BenchmarkGenerate(b *testing.B) {
	cvc := grammar.NewSyllable([]grammar.Segment{
		grammar.NewSegment([]grammar.Phoneme{grammar.P("_", 16), grammar.P("k", 5), grammar.P("s", 4), grammar.P("t", 4)}),
		grammar.NewSegment([]grammar.Phoneme{grammar.P("a", 5), grammar.P("i", 4), grammar.P("u", 4)}),
		grammar.NewSegment([]grammar.Phoneme{grammar.P("_", 15), grammar.P("n", 9)}),
	}, grammar.WithAffixes("<", "", ">"))
	st, err := stem.New([]grammar.Syllable{cvc},
		stem.WithBalance(2, 12, 8, 2, 1),
		stem.WithFilters(stem.MustMatch(`n><_`)),
	)
	if err != nil {
		b.Fatal(err)
	}
	src := sampler.NewSeeded(1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := st.Generate(src, nil); err != nil {
			b.Fatal(err)
		}
	}
}
