package lexicon_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"golang.org/x/text/language"

	"github.com/katalvlaran/genling/grammar"
	"github.com/katalvlaran/genling/lexicon"
	"github.com/katalvlaran/genling/sampler"
	"github.com/katalvlaran/genling/stem"
	"github.com/katalvlaran/genling/word"
)

// tinyLanguage generates exactly three distinct stems: <a>, <b> and <c>.
func tinyLanguage(t *testing.T, filters ...stem.Filter) *lexicon.Language {
	t.Helper()
	seg := grammar.NewSegment([]grammar.Phoneme{grammar.P("a"), grammar.P("b"), grammar.P("c")})
	syl := grammar.NewSyllable([]grammar.Segment{seg}, grammar.WithAffixes("<", "", ">"))
	s, err := stem.New([]grammar.Syllable{syl}, stem.WithFilters(filters...))
	require.NoError(t, err)
	return &lexicon.Language{
		Name: "Tiny",
		Stem: s,
		Scripts: []lexicon.Script{
			{Name: "Plain", Tag: language.MustParse("und-Latn"), Word: word.New([]word.Replacement{word.MustPattern(`[<>]`, "")})},
			{Name: "Upper", Tag: language.MustParse("und-Latn"), Word: word.New([]word.Replacement{
				word.MustPattern(`[<>]`, ""),
				word.Literal("a", "A"),
			})},
		},
	}
}

func TestGenerate_Plain(t *testing.T) {
	g := &lexicon.Generator{Language: tinyLanguage(t), Source: rand.New(rand.NewSource(1))}
	out, err := g.Generate(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, out, 50)
	for _, s := range out {
		assert.Contains(t, []string{"<a>", "<b>", "<c>"}, s)
	}
}

func TestGenerate_Unique(t *testing.T) {
	g := &lexicon.Generator{
		Language: tinyLanguage(t),
		Source:   rand.New(rand.NewSource(2)),
		Unique:   true,
	}
	out, stats, err := g.GenerateStats(context.Background(), 3)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"<a>", "<b>", "<c>"}, out)
	assert.GreaterOrEqual(t, stats.Duplicates, 0)
}

func TestGenerate_UniqueExhausted(t *testing.T) {
	budget := stem.Attempts(200)
	g := &lexicon.Generator{
		Language: tinyLanguage(t),
		Source:   rand.New(rand.NewSource(3)),
		Budget:   &budget,
		Unique:   true,
	}
	out, stats, err := g.GenerateStats(context.Background(), 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, lexicon.ErrGenerationExhausted)
	assert.Nil(t, out, "no partial batch")
	assert.GreaterOrEqual(t, stats.Duplicates, 200)
}

func TestGenerate_ZeroAndInvalid(t *testing.T) {
	g := &lexicon.Generator{Language: tinyLanguage(t), Source: rand.New(rand.NewSource(4)), Unique: true}
	out, err := g.Generate(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = g.Generate(context.Background(), -1)
	assert.ErrorIs(t, err, lexicon.ErrInvalidCount)

	_, err = (&lexicon.Generator{Language: tinyLanguage(t)}).Generate(context.Background(), 1)
	assert.ErrorIs(t, err, sampler.ErrNilSource)

	_, err = (&lexicon.Generator{Source: rand.New(rand.NewSource(4))}).Generate(context.Background(), 1)
	assert.ErrorIs(t, err, lexicon.ErrInvalidLanguage)
}

func TestGenerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, unique := range []bool{false, true} {
		g := &lexicon.Generator{Language: tinyLanguage(t), Source: rand.New(rand.NewSource(5)), Unique: unique}
		out, err := g.Generate(ctx, 2)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, out)
	}
}

func TestGenerate_CancelledWhileFiltering(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	budget := stem.Attempts(1_000_000)
	rejected := 0
	g := &lexicon.Generator{
		Language: tinyLanguage(t, stem.Predicate("everything", func(string) bool { return true })),
		Source:   rand.New(rand.NewSource(7)),
		Budget:   &budget,
		Unique:   true,
		OnRejected: func(string, stem.Filter) {
			if rejected++; rejected == 5 {
				cancel()
			}
		},
	}
	out, err := g.Generate(ctx, 3)
	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, stem.ErrGenerationExhausted)
	assert.Nil(t, out)
	assert.Equal(t, 5, rejected)
}

func TestGenerate_RejectedObserver(t *testing.T) {
	var seen []string
	g := &lexicon.Generator{
		Language: tinyLanguage(t, stem.Contains("a")),
		Source:   rand.New(rand.NewSource(6)),
		OnRejected: func(candidate string, by stem.Filter) {
			seen = append(seen, candidate)
			assert.Equal(t, stem.ContainsFilter, by.Kind())
		},
	}
	out, stats, err := g.GenerateStats(context.Background(), 100)
	require.NoError(t, err)
	assert.NotContains(t, out, "<a>")
	assert.Equal(t, len(seen), stats.Rejected)
	assert.Positive(t, stats.Rejected)
}

func TestGenerate_Span(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	g := &lexicon.Generator{
		Language: tinyLanguage(t),
		Source:   rand.New(rand.NewSource(7)),
		Unique:   true,
		Tracer:   tp.Tracer("test"),
	}
	_, err := g.Generate(context.Background(), 2)
	require.NoError(t, err)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "lexicon.Generate", spans[0].Name())
	attrs := spans[0].Attributes()
	assert.Contains(t, attrs, attribute.String("genling.language", "Tiny"))
	assert.Contains(t, attrs, attribute.Int("genling.count", 2))
	assert.Contains(t, attrs, attribute.Bool("genling.unique", true))
}

func TestLanguage_Script(t *testing.T) {
	l := tinyLanguage(t)

	first, err := l.Script("")
	require.NoError(t, err)
	assert.Equal(t, "Plain", first.Name)

	upper, err := l.Script("upper")
	require.NoError(t, err)
	assert.Equal(t, "Upper", upper.Name)

	raw, err := l.Script("RAW")
	require.NoError(t, err)
	assert.True(t, raw.Raw())
	assert.Equal(t, lexicon.RawScript, raw.Name)

	_, err = l.Script("Cyrillic")
	assert.ErrorIs(t, err, lexicon.ErrUnknownScript)

	assert.Equal(t, []string{"Plain", "Upper", "Raw"}, l.ScriptNames())

	empty := &lexicon.Language{Name: "Bare", Stem: l.Stem}
	s, err := empty.Script("")
	require.NoError(t, err)
	assert.True(t, s.Raw())
}

func TestLanguage_Validate(t *testing.T) {
	l := tinyLanguage(t)
	require.NoError(t, l.Validate())

	dup := *l
	dup.Scripts = append(dup.Scripts, lexicon.Script{Name: "plain"})
	assert.ErrorIs(t, dup.Validate(), lexicon.ErrInvalidLanguage)

	raw := *l
	raw.Scripts = []lexicon.Script{{Name: "Raw"}}
	assert.ErrorIs(t, raw.Validate(), lexicon.ErrInvalidLanguage)
}

func TestRender(t *testing.T) {
	l := tinyLanguage(t)
	script, err := l.Script("Upper")
	require.NoError(t, err)

	entries, err := lexicon.Render(nil, []string{"<a>", "<b>"}, script)
	require.NoError(t, err)
	assert.Equal(t, []lexicon.Entry{
		{Stem: "<a>", Script: "Upper", Word: "A"},
		{Stem: "<b>", Script: "Upper", Word: "b"},
	}, entries)
	assert.Equal(t, []string{"A", "b"}, lexicon.Words(entries))

	raw, _ := l.Script(lexicon.RawScript)
	entries, err = lexicon.Render(nil, []string{"<a>"}, raw)
	require.NoError(t, err)
	assert.Equal(t, "<a>", entries[0].Word)
}
