// Package lexicon ties a stem grammar to its writing systems and produces
// batches of words from them.
//
// A Language bundles one stem.Stem with any number of named Scripts, each a
// word.Word pipeline tagged with a BCP 47 language tag. Every language also
// answers to the "Raw" script, which shows stems exactly as generated.
//
// Generator draws N stems at a time. With Unique set it keeps drawing until
// it has N distinct stems, treating repeats as non-progress so that a
// grammar with too few distinct stems fails with ErrGenerationExhausted
// instead of looping forever. Uniqueness is a property of one batch; the
// stem engine itself never remembers earlier output.
//
// Generate runs inside an OpenTelemetry span ("lexicon.Generate"); spans
// are no-ops unless the host process installs a tracer provider.
package lexicon
