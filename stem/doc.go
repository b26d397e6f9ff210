// Package stem generates word stems from a pool of grammar.Syllable values.
//
// 🚀 What does a Stem do?
//
//	Per attempt it samples a syllable count from the balance weights, picks
//	one eligible syllable per position, joins the results with the stem
//	infix and affixes, and runs the filters. A candidate rejected by any
//	filter is discarded and another attempt is made, until a candidate is
//	accepted or the retry Budget is spent.
//
// ✨ Two modes:
//   - single result: Generate(src, nil) returns the first accepted stem.
//   - streaming: GenerateOptions.OnCandidate receives every accepted stem
//     and answers with a Verdict. Accept counts as progress and resets the
//     budget, Reject (a duplicate, say) does not, Stop ends the loop.
//
// ⚙️ Usage:
//
//	st, err := stem.New(syllables,
//	    stem.WithBalance(5, 2),
//	    stem.WithAffixes("", "#", ""),
//	    stem.WithFilters(stem.MustMatch(`n#m`), stem.Contains("cs")),
//	)
//	s, err := st.Generate(sampler.NewSeeded(7), nil)
//
// Errors:
//   - ErrInvalidGrammar      — the grammar cannot produce a stem (fatal).
//   - ErrGenerationExhausted — the budget ran out (raise it or relax filters).
//
// Filters come in a closed set of kinds: Predicate, Match, Chance, Contains.
// A Chance filter only rejects a matching candidate when a fresh draw
// exceeds its threshold, so with threshold t roughly a fraction t of the
// matching candidates still slips through.
package stem
