// Package genling generates words for constructed languages from
// weighted phonotactic grammars.
//
// 🚀 What is genling?
//
//	A small, dependency-light toolkit that splits word generation in two:
//		• Stems: syllables drawn by weight, placed by position, joined with
//		  affixes and screened by rejection filters under a retry budget
//		• Words: an ordered pipeline of replacements that renders a stem in
//		  a writing system (transliteration, phonological rules, cleanup)
//
// ✨ Why split it?
//
//   - One stem grammar, many scripts: the same stem renders as Hiragana,
//     Hepburn or Kunrei-shiki without regenerating it
//   - Reproducible – every random draw flows through an injected source
//   - Bounded – generation fails with ErrGenerationExhausted instead of
//     looping forever on an over-filtered grammar
//   - Declarative – grammars live in YAML files (see grammarfile)
//
// Packages:
//
//	sampler/     — weighted index choice and random sources
//	grammar/     — Phoneme, Segment, Syllable and positional constraints
//	stem/        — the stem generator: balance, filters, budget, streaming
//	word/        — the replacement pipeline
//	grammarfile/ — YAML grammar definitions
//	languages/   — built-in grammars (Conlang, Japanese)
//	lexicon/     — languages with scripts, batch generation, rendering
//	lexicon/sqlite/ — persistence of generated words
//
// Quick example (Japanese, Hepburn):
//
//	<s_i_><k_ax><k_a_>   stem: morae wrapped in < >, "_" marks empty slots
//	shikakka             word: helpers stripped, "x" geminates
//
// The genling command (cmd/genling) prints batches of words:
//
//	go run ./cmd/genling -lang Japanese -script Hepburn -n 10 -unique
package genling
