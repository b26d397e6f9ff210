// Package word renders a generated stem into a writing system.
//
// A Word is an ordered list of Replacement steps folded over the stem
// string: every step sees the output of the previous one, so rule order is
// part of the grammar. Typical pipelines first handle inflection or
// phonological rules, then transliterate graphemes, then strip the helper
// characters (prefixes, infixes, suffixes) used by the stem grammar.
//
// Replacement kinds (closed set):
//
//	Func         — arbitrary string → string step that may fail.
//	Pattern      — regexp substitution with ${1}-style back-references.
//	PatternFunc  — regexp substitution computed per match.
//	Table        — regexp substitution looked up in a map (unknown matches stay).
//	Literal      — plain substring substitution.
//
// Pattern, PatternFunc, Table and Literal steps may be made probabilistic
// with WithChance(t): a change is kept only when a fresh draw does not
// exceed t. A step that changes nothing draws nothing.
//
// A pipeline without probabilistic steps is deterministic: the same stem
// always renders to the same word. A nil *Word renders the stem unchanged
// (the "raw" script).
package word
