// SPDX-License-Identifier: MIT
// Package: genling/grammar

package grammar

import (
	"fmt"
	"math"
)

// DefaultWeight is the weight of a phoneme or syllable that does not set one.
const DefaultWeight = 1.0

// Phoneme is a grapheme together with its likelihood of being chosen
// within a Segment.
type Phoneme struct {
	Grapheme string
	Weight   float64
}

// NewPhoneme returns a Phoneme with the given weight, or DefaultWeight when
// none (or zero) is given.
func NewPhoneme(grapheme string, weight ...float64) Phoneme {
	w := DefaultWeight
	if len(weight) > 0 && weight[0] != 0 {
		w = weight[0]
	}
	return Phoneme{Grapheme: grapheme, Weight: w}
}

// P is shorthand for NewPhoneme, convenient in grammar tables.
func P(grapheme string, weight ...float64) Phoneme {
	return NewPhoneme(grapheme, weight...)
}

// Validate reports ErrInvalidGrammar for a non-positive or non-finite weight.
func (p Phoneme) Validate() error {
	if !(p.Weight > 0) || math.IsInf(p.Weight, 0) {
		return fmt.Errorf("phoneme %q: weight %g must be > 0: %w", p.Grapheme, p.Weight, ErrInvalidGrammar)
	}
	return nil
}
