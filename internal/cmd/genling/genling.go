// SPDX-License-Identifier: MIT
// Package: genling/internal/cmd/genling
//
// genling.go — genling command configuration and run loop.

// Package genling parses the genling command configuration and runs it.
package genling

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/genling/grammarfile"
	entrypoint "github.com/katalvlaran/genling/internal/platform/cmd"
	"github.com/katalvlaran/genling/languages"
	"github.com/katalvlaran/genling/lexicon"
	"github.com/katalvlaran/genling/lexicon/sqlite"
	"github.com/katalvlaran/genling/sampler"
	"github.com/katalvlaran/genling/stem"
	"github.com/katalvlaran/genling/word"
)

const defaultLanguage = "Conlang"

// Config holds genling command configuration.
type Config struct {
	Language string        `env:"GENLING_LANGUAGE"`
	Script   string        `env:"GENLING_SCRIPT"`
	Amount   int           `env:"GENLING_AMOUNT" envDefault:"10"`
	Seed     int64         `env:"GENLING_SEED"`
	Unique   bool          `env:"GENLING_UNIQUE"`
	Attempts int           `env:"GENLING_ATTEMPTS"`
	Timeout  time.Duration `env:"GENLING_TIMEOUT"`
	Grammar  string        `env:"GENLING_GRAMMAR"`
	DB       string        `env:"GENLING_DB"`
	Lines    bool          `env:"GENLING_LINES"`
	Verbose  bool          `env:"GENLING_VERBOSE"`
	List     bool
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Language, "lang", cfg.Language, "language to generate (default Conlang, or the -grammar language)")
	fs.StringVar(&cfg.Script, "script", cfg.Script, "writing system; \"raw\" prints stems (default: the language's first script)")
	fs.IntVar(&cfg.Amount, "n", cfg.Amount, "number of words")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducibility (0 = random)")
	fs.BoolVar(&cfg.Unique, "unique", cfg.Unique, "never print the same stem twice")
	fs.IntVar(&cfg.Attempts, "attempts", cfg.Attempts, "give up after this many rejected candidates in a row (0 = no limit)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "give up after this long without a new word (0 = 2s unless -attempts is set)")
	fs.StringVar(&cfg.Grammar, "grammar", cfg.Grammar, "YAML grammar file; a language with a built-in name replaces it")
	fs.StringVar(&cfg.DB, "db", cfg.DB, "SQLite file to store generated words in")
	fs.BoolVar(&cfg.Lines, "lines", cfg.Lines, "print one word per line")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log rejected stems and applied replacements")
	fs.BoolVar(&cfg.List, "list", false, "list languages and scripts")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.Amount < 0 {
		return Config{}, fmt.Errorf("-n must be >= 0, got %d", cfg.Amount)
	}
	if cfg.Attempts < 0 || cfg.Timeout < 0 {
		return Config{}, fmt.Errorf("-attempts and -timeout must be >= 0")
	}
	return cfg, nil
}

// Run generates words per cfg, printing them to out and logging to errOut.
func Run(ctx context.Context, cfg Config, out, errOut io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGenling, func(ctx context.Context) error {
		return run(ctx, cfg, out, log.New(errOut, "[GENLING] ", 0))
	})
}

func run(ctx context.Context, cfg Config, out io.Writer, logger *log.Logger) error {
	langs, preferred, err := registry(cfg.Grammar)
	if err != nil {
		return err
	}
	if cfg.List {
		return list(out, langs)
	}

	name := cfg.Language
	if name == "" {
		name = preferred
	}
	lang, err := languages.Find(langs, name)
	if err != nil {
		return err
	}
	script, err := lang.Script(cfg.Script)
	if err != nil {
		return err
	}

	src, seed := sampler.NewSeededSource(cfg.Seed)
	if cfg.Verbose {
		logger.Printf("language %s, script %s, seed %d", lang.Name, script.Name, seed)
		if !script.Raw() {
			script.Word = script.Word.With(word.WithObserver(func(c word.Change) {
				logger.Printf("%s: %q → %q by %s", c.Stem, c.Before, c.After, c.Replacement)
			}))
		}
	}

	g := &lexicon.Generator{Language: lang, Source: src, Unique: cfg.Unique}
	if cfg.Attempts > 0 || cfg.Timeout > 0 {
		g.Budget = &stem.Budget{MaxAttempts: cfg.Attempts, Timeout: cfg.Timeout}
	}
	if cfg.Verbose {
		g.OnRejected = func(candidate string, by stem.Filter) {
			logger.Printf("rejected %q by %s", candidate, by)
		}
	}

	stems, stats, err := g.GenerateStats(ctx, cfg.Amount)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logger.Printf("%d stems, %d rejected, %d duplicates", len(stems), stats.Rejected, stats.Duplicates)
	}

	entries, err := lexicon.Render(src, stems, script)
	if err != nil {
		return err
	}
	if err := printWords(out, lexicon.Words(entries), cfg.Lines); err != nil {
		return err
	}

	if cfg.DB != "" {
		return save(ctx, cfg.DB, lang.Name, entries, logger)
	}
	return nil
}

// registry returns the built-in languages merged with the -grammar file,
// and the language to use when none is named.
func registry(grammarPath string) ([]*lexicon.Language, string, error) {
	langs, err := languages.All()
	if err != nil {
		return nil, "", err
	}
	if grammarPath == "" {
		return langs, defaultLanguage, nil
	}

	custom, err := grammarfile.Load(os.DirFS(filepath.Dir(grammarPath)), filepath.Base(grammarPath))
	if err != nil {
		return nil, "", err
	}
	for i, l := range langs {
		if strings.EqualFold(l.Name, custom.Name) {
			langs[i] = custom
			return langs, custom.Name, nil
		}
	}
	return append(langs, custom), custom.Name, nil
}

func list(out io.Writer, langs []*lexicon.Language) error {
	for _, l := range langs {
		if _, err := fmt.Fprintf(out, "%s: %s\n", l.Name, strings.Join(l.ScriptNames(), ", ")); err != nil {
			return err
		}
	}
	return nil
}

func printWords(out io.Writer, words []string, lines bool) error {
	sep := " "
	if lines {
		sep = "\n"
	}
	if len(words) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(out, strings.Join(words, sep))
	return err
}

func save(ctx context.Context, path, language string, entries []lexicon.Entry, logger *log.Logger) error {
	store, err := sqlite.Open(ctx, path)
	if err != nil {
		return err
	}
	defer store.Close()

	inserted, err := store.Put(ctx, language, entries)
	if err != nil {
		return err
	}
	total, err := store.Count(ctx, language)
	if err != nil {
		return err
	}
	logger.Printf("stored %d new words in %s (%d %s stems total)", inserted, path, total, language)
	return nil
}
