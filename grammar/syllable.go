// SPDX-License-Identifier: MIT
// Package: genling/grammar
//
// syllable.go — an ordered composition of segments.
//
// Contract:
//   • Generate = Prefix + join(segment outputs, Infix) + Suffix.
//   • Weight ≥ 0; a zero weight keeps the syllable in the pool but never picks it.

package grammar

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/genling/sampler"
)

// Syllable is one candidate building block of a stem.
type Syllable struct {
	Segments []Segment
	Position Position
	Weight   float64
	Prefix   string
	Suffix   string
	Infix    string
}

// SyllableOption customizes a Syllable built by NewSyllable.
// Option constructors panic on meaningless values; generation never panics.
type SyllableOption func(*Syllable)

// WithPosition restricts where the syllable may appear.
func WithPosition(pos Position) SyllableOption {
	if pos.Kind > RangeIndex {
		panic("grammar: WithPosition(unknown kind)")
	}
	return func(s *Syllable) {
		s.Position = pos
	}
}

// WithWeight sets the selection weight relative to other eligible syllables.
// Panics if w < 0.
func WithWeight(w float64) SyllableOption {
	if w < 0 {
		panic(fmt.Sprintf("grammar: WithWeight(%g): weight must be ≥ 0", w))
	}
	return func(s *Syllable) {
		s.Weight = w
	}
}

// WithAffixes sets the strings added before, between the segments of and
// after a generated syllable.
func WithAffixes(prefix, infix, suffix string) SyllableOption {
	return func(s *Syllable) {
		s.Prefix, s.Infix, s.Suffix = prefix, infix, suffix
	}
}

// NewSyllable builds an unconstrained Syllable of weight DefaultWeight and
// applies opts in order.
func NewSyllable(segments []Segment, opts ...SyllableOption) Syllable {
	s := Syllable{
		Segments: append([]Segment(nil), segments...),
		Weight:   DefaultWeight,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// IsEligible reports whether the syllable may sit at index p of a stem with
// total syllables.
func (s Syllable) IsEligible(p, total int) bool {
	return s.Position.Eligible(p, total)
}

// Validate checks the syllable and all of its segments.
func (s Syllable) Validate() error {
	if len(s.Segments) == 0 {
		return fmt.Errorf("syllable: no segments: %w", ErrInvalidGrammar)
	}
	if s.Weight < 0 {
		return fmt.Errorf("syllable: weight %g < 0: %w", s.Weight, ErrInvalidGrammar)
	}
	for i, seg := range s.Segments {
		if err := seg.Validate(); err != nil {
			return fmt.Errorf("syllable: segment %d: %w", i, err)
		}
	}
	return nil
}

// Generate produces every segment in order and joins them.
func (s Syllable) Generate(src sampler.Source) (string, error) {
	if len(s.Segments) == 0 {
		return "", fmt.Errorf("syllable: no segments: %w", ErrInvalidGrammar)
	}
	parts := make([]string, len(s.Segments))
	for i, seg := range s.Segments {
		out, err := seg.Generate(src)
		if err != nil {
			return "", fmt.Errorf("syllable: segment %d: %w", i, err)
		}
		parts[i] = out
	}
	return s.Prefix + strings.Join(parts, s.Infix) + s.Suffix, nil
}
