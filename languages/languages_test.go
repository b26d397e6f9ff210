package languages_test

import (
	"context"
	"math/rand"
	"regexp"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/genling/grammarfile"
	"github.com/katalvlaran/genling/languages"
	"github.com/katalvlaran/genling/lexicon"
)

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"Conlang", "Japanese"}, languages.Names())

	all, err := languages.All()
	require.NoError(t, err)
	require.Len(t, all, 2)

	ja, err := languages.Lookup("japanese")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hiragana", "Hepburn", "Nihon-shiki", "Kunrei-shiki", "Raw"}, ja.ScriptNames())

	con, err := languages.Lookup(" Conlang ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Latin", "Rough", "Raw"}, con.ScriptNames())
	assert.Equal(t, []float64{5, 2}, con.Stem.Balance())

	_, err = languages.Lookup("Klingon")
	assert.ErrorIs(t, err, languages.ErrUnknownLanguage)
}

func TestLoadDir(t *testing.T) {
	def := func(name string) *fstest.MapFile {
		return &fstest.MapFile{Data: []byte("name: " + name + `
stem:
  syllables:
    - segments:
        - phonemes: [a]
`)}
	}

	fsys := fstest.MapFS{
		"defs/b.yaml":   def("Beta"),
		"defs/a.yaml":   def("Alpha"),
		"defs/notes.md": {Data: []byte("ignored")},
	}
	langs, err := languages.LoadDir(fsys, "defs")
	require.NoError(t, err)
	require.Len(t, langs, 2)
	assert.Equal(t, "Alpha", langs[0].Name)
	assert.Equal(t, "Beta", langs[1].Name)

	found, err := languages.Find(langs, "beta")
	require.NoError(t, err)
	assert.Same(t, langs[1], found)

	fsys["defs/c.yaml"] = def("alpha")
	_, err = languages.LoadDir(fsys, "defs")
	assert.ErrorIs(t, err, grammarfile.ErrInvalidDefinition)
}

type renderCase struct {
	script string
	stem   string
	want   string
}

type ScriptSuite struct {
	suite.Suite
	langs map[string]*lexicon.Language
}

func (s *ScriptSuite) SetupSuite() {
	s.langs = make(map[string]*lexicon.Language)
	for _, name := range languages.Names() {
		l, err := languages.Lookup(name)
		s.Require().NoError(err)
		s.langs[name] = l
	}
}

func (s *ScriptSuite) render(lang string, cases []renderCase) {
	l := s.langs[lang]
	for _, c := range cases {
		script, err := l.Script(c.script)
		s.Require().NoError(err)
		got, err := script.Word.Create(nil, c.stem)
		s.Require().NoError(err)
		s.Equal(c.want, got, "%s %s(%q)", lang, c.script, c.stem)
	}
}

func (s *ScriptSuite) TestJapanese() {
	s.render("Japanese", []renderCase{
		{"Hepburn", "<s_i_><t_u_>", "shitsu"},
		{"Hepburn", "<k_an><_a_>", "kan'a"},
		{"Hepburn", "<k_ax><t_a_>", "katta"},
		{"Hepburn", "<k_o_><_u_>", "kō"},
		{"Hepburn", "<k_ax><t_y_a_>", "kaccha"},
		{"Nihon-shiki", "<d_i_>", "di"},
		{"Nihon-shiki", "<s_i_><t_u_>", "situ"},
		{"Kunrei-shiki", "<d_i_>", "zi"},
		{"Hiragana", "<k_y_a_>", "きゃ"},
		{"Hiragana", "<k_an><n_a_>", "かんな"},
		{"Hiragana", "<k_ax><t_a_>", "かった"},
		{"Raw", "<k_a_>", "<k_a_>"},
	})
}

func (s *ScriptSuite) TestConlang() {
	s.render("Conlang", []renderCase{
		{"Latin", "_koex#Ta", "køþþa"},
		{"Latin", "_kA_", "kı"},
		{"Latin", "hDa_#na", "hðana"},
		{"Rough", "_koex#Ta", "koexTa"},
	})
}

// TestGeneratedWordsAreClean generates real batches and checks that no
// helper marker survives rendering in any script.
func (s *ScriptSuite) TestGeneratedWordsAreClean() {
	helpers := regexp.MustCompile(`[<>_#]`)
	for name, l := range s.langs {
		g := &lexicon.Generator{Language: l, Source: rand.New(rand.NewSource(7)), Unique: true}
		stems, err := g.Generate(context.Background(), 100)
		s.Require().NoError(err, name)
		s.Len(stems, 100)

		for _, scriptName := range l.ScriptNames() {
			script, err := l.Script(scriptName)
			s.Require().NoError(err)
			entries, err := lexicon.Render(rand.New(rand.NewSource(1)), stems, script)
			s.Require().NoError(err)
			for _, e := range entries {
				if script.Raw() {
					s.Equal(e.Stem, e.Word)
					continue
				}
				s.False(helpers.MatchString(e.Word), "%s/%s rendered %q from %q", name, scriptName, e.Word, e.Stem)
				s.NotEmpty(strings.TrimSpace(e.Word))
			}
		}
	}
}

func (s *ScriptSuite) TestFiltersHold() {
	ja := s.langs["Japanese"]
	g := &lexicon.Generator{Language: ja, Source: rand.New(rand.NewSource(9))}
	stems, err := g.Generate(context.Background(), 500)
	s.Require().NoError(err)
	for _, st := range stems {
		s.NotContains(st, "_y")
		s.False(strings.HasSuffix(st, "x>"), st)
		s.False(strings.HasPrefix(st, "<d_i") || strings.HasPrefix(st, "<d_u"), st)
	}

	con := s.langs["Conlang"]
	g = &lexicon.Generator{Language: con, Source: rand.New(rand.NewSource(9))}
	stems, err = g.Generate(context.Background(), 500)
	s.Require().NoError(err)
	for _, st := range stems {
		s.NotContains(st, "cs")
		s.NotContains(st, "n#m")
		s.NotRegexp(`l#l|r#r|[lx]#r|[xhc]$|^._`, st)
	}
}

func TestScripts(t *testing.T) {
	suite.Run(t, new(ScriptSuite))
}
