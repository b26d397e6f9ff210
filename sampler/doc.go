// Package sampler draws weighted random choices for the genling engine.
//
// Every stochastic step of generation (phoneme choice, syllable choice,
// syllable count, probabilistic filters and replacements) goes through a
// Source passed in by the caller. There is no package-level random state:
// seed a Source to make a whole generation run reproducible.
//
// Usage:
//
//	src := sampler.NewSeeded(42)
//	i, err := sampler.Choose(src, []float64{5, 2})
//	if err != nil {
//	    // sampler.ErrZeroSum, sampler.ErrNoWeights, ...
//	}
//
// Concurrency:
//
//	Choose itself holds no state. A *rand.Rand is not safe for concurrent
//	use; give each goroutine its own Source or share one through Locked.
package sampler
