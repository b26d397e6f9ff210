// Package grammar holds the phonotactic building blocks of a generated stem:
//
//	Phoneme  — a grapheme with a relative weight.
//	Segment  — a slot offering alternative phonemes, wrapped in prefix/suffix.
//	Syllable — an ordered list of segments, restricted to stem positions by
//	           a Position and chosen among its peers by weight.
//
// All values are plain data built once from static configuration and never
// mutated by generation. Generate methods take a sampler.Source so that a
// seeded source reproduces the same output.
//
// Invalid grammar (empty phoneme lists, non-positive phoneme weights, empty
// syllables) is reported as ErrInvalidGrammar, either by Validate or by the
// first Generate call that hits it.
package grammar
