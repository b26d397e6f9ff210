package grammarfile_test

import (
	"math/rand"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/katalvlaran/genling/grammarfile"
	"github.com/katalvlaran/genling/stem"
)

const minimal = `
name: Mini
stem:
  balance: [1, 1]
  infix: "#"
  budget: {attempts: 500}
  syllables:
    - position: 0
      segments:
        - phonemes: [["k", 2], "t"]
        - phonemes: ["a"]
    - position: [1, -1]
      weight: 2
      segments:
        - prefix: "("
          suffix: ")"
          phonemes: [{grapheme: "o", weight: 3}]
  filters:
    - contains: "t#"
    - match: "^t"
      chance: 0.5
tables:
  vowels: {"a": "A", "(o)": "O"}
shared:
  helpers:
    - literal: "#"
      with: ""
scripts:
  - name: Upper
    tag: und-Latn
    normalize: NFC
    replacements:
      - pattern: "a|\\(o\\)"
        table: vowels
      - include: helpers
  - name: Doubled
    replacements:
      - pattern: "k(.)"
        with: "kk${1}"
        chance: 1
      - include: helpers
`

func TestDecode_Minimal(t *testing.T) {
	lang, err := grammarfile.Decode(strings.NewReader(minimal))
	require.NoError(t, err)

	assert.Equal(t, "Mini", lang.Name)
	assert.Equal(t, []float64{1, 1}, lang.Stem.Balance())
	assert.Equal(t, stem.Attempts(500), lang.Stem.Budget())
	require.Len(t, lang.Stem.Filters(), 2)
	assert.Equal(t, stem.ContainsFilter, lang.Stem.Filters()[0].Kind())
	assert.Equal(t, stem.ChanceFilter, lang.Stem.Filters()[1].Kind())
	assert.Equal(t, []string{"Upper", "Doubled", "Raw"}, lang.ScriptNames())

	upper, err := lang.Script("upper")
	require.NoError(t, err)
	assert.Equal(t, language.MustParse("und-Latn"), upper.Tag)
	got, err := upper.Word.Create(nil, "ka#(o)")
	require.NoError(t, err)
	assert.Equal(t, "kAO", got)

	doubled, err := lang.Script("Doubled")
	require.NoError(t, err)
	assert.Equal(t, language.Und, doubled.Tag)
	got, err = doubled.Word.Create(rand.New(rand.NewSource(1)), "ka#(o)")
	require.NoError(t, err)
	assert.Equal(t, "kka(o)", got)
}

func TestDecode_Generates(t *testing.T) {
	lang, err := grammarfile.Decode(strings.NewReader(minimal))
	require.NoError(t, err)

	src := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		s, err := lang.Stem.Generate(src, nil)
		require.NoError(t, err)
		assert.True(t, s == "ka" || s == "ta" || s == "ka#(o)", "unexpected stem %q", s)
	}
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"mini.yaml": {Data: []byte(minimal)}}
	lang, err := grammarfile.Load(fsys, "mini.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Mini", lang.Name)

	_, err = grammarfile.Load(fsys, "missing.yaml")
	assert.Error(t, err)
}

func TestDecode_Invalid(t *testing.T) {
	base := func(stemBody, scripts string) string {
		return "name: Bad\nstem:\n" + stemBody + "\nscripts:\n" + scripts + "\n"
	}
	okStem := "  syllables:\n    - segments:\n        - phonemes: [a]"
	okScripts := "  - name: S\n    replacements: []"

	tests := []struct {
		name    string
		doc     string
		grammar bool
	}{
		{name: "empty", doc: ""},
		{name: "no name", doc: "stem:\n" + okStem},
		{name: "unknown key", doc: base(okStem+"\n  colour: red", okScripts)},
		{name: "no syllables", doc: base("  balance: [1]", okScripts)},
		{name: "no segments", doc: base("  syllables:\n    - weight: 1", okScripts)},
		{name: "empty segment", doc: base("  syllables:\n    - segments:\n        - phonemes: []", okScripts), grammar: true},
		{name: "zero phoneme weight", doc: base("  syllables:\n    - segments:\n        - phonemes: [[a, 0]]", okScripts), grammar: true},
		{name: "bad position", doc: base("  syllables:\n    - position: [1, 2, 3]\n      segments:\n        - phonemes: [a]", okScripts)},
		{name: "unreachable position", doc: base("  balance: [0, 1]\n  syllables:\n    - position: 0\n      segments:\n        - phonemes: [a]", okScripts), grammar: true},
		{name: "negative balance", doc: base("  balance: [-1]\n"+okStem, okScripts)},
		{name: "bad timeout", doc: base("  budget: {timeout: soon}\n"+okStem, okScripts)},
		{name: "negative attempts", doc: base("  budget: {attempts: -1}\n"+okStem, okScripts)},
		{name: "bad regexp", doc: base(okStem+"\n  filters:\n    - match: \"(\"", okScripts)},
		{name: "empty filter", doc: base(okStem+"\n  filters:\n    - {}", okScripts)},
		{name: "chance out of range", doc: base(okStem+"\n  filters:\n    - {match: a, chance: 2}", okScripts)},
		{name: "chance not a number", doc: base(okStem+"\n  filters:\n    - {match: a, chance: .nan}", okScripts)},
		{name: "replacement chance not a number", doc: base(okStem, "  - name: S\n    replacements:\n      - {literal: a, with: b, chance: .nan}")},
		{name: "bad tag", doc: base(okStem, "  - name: S\n    tag: \"not a tag!\"")},
		{name: "bad normalize", doc: base(okStem, "  - name: S\n    normalize: NFX")},
		{name: "unnamed script", doc: base(okStem, "  - replacements: []")},
		{name: "raw script name", doc: base(okStem, "  - name: raw")},
		{name: "duplicate script", doc: base(okStem, "  - name: S\n  - name: s")},
		{name: "pattern without with", doc: base(okStem, "  - name: S\n    replacements:\n      - pattern: a")},
		{name: "unknown table", doc: base(okStem, "  - name: S\n    replacements:\n      - {pattern: a, table: nope}")},
		{name: "unknown include", doc: base(okStem, "  - name: S\n    replacements:\n      - include: nope")},
		{name: "literal without with", doc: base(okStem, "  - name: S\n    replacements:\n      - literal: a")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := grammarfile.Decode(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, grammarfile.ErrInvalidDefinition)
			if tt.grammar {
				assert.ErrorIs(t, err, stem.ErrInvalidGrammar)
			}
		})
	}
}

func TestDecode_IncludeCycle(t *testing.T) {
	doc := `
name: Loop
stem:
  syllables:
    - segments:
        - phonemes: [a]
shared:
  one: [{include: two}]
  two: [{include: one}]
scripts:
  - name: S
    replacements: [{include: one}]
`
	_, err := grammarfile.Decode(strings.NewReader(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, grammarfile.ErrInvalidDefinition)
	assert.Contains(t, err.Error(), "cycle")
}
