// SPDX-License-Identifier: MIT
// Package: genling/grammar
//
// segment.go — one slot of a syllable.
//
// Contract:
//   • Generate returns Prefix + exactly one configured grapheme + Suffix.
//   • Phonemes MUST be non-empty with all weights > 0.

package grammar

import (
	"fmt"

	"github.com/katalvlaran/genling/sampler"
)

// Segment is a weighted set of alternative phonemes.
type Segment struct {
	Phonemes []Phoneme
	Prefix   string
	Suffix   string
}

// SegmentOption customizes a Segment built by NewSegment.
type SegmentOption func(*Segment)

// WithSegmentAffixes wraps every generated segment in prefix and suffix.
func WithSegmentAffixes(prefix, suffix string) SegmentOption {
	return func(s *Segment) {
		s.Prefix, s.Suffix = prefix, suffix
	}
}

// NewSegment builds a Segment over phonemes. The slice is copied.
func NewSegment(phonemes []Phoneme, opts ...SegmentOption) Segment {
	s := Segment{Phonemes: append([]Phoneme(nil), phonemes...)}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Validate checks that the segment can be sampled.
func (s Segment) Validate() error {
	if len(s.Phonemes) == 0 {
		return fmt.Errorf("segment: no phonemes: %w", ErrInvalidGrammar)
	}
	for _, p := range s.Phonemes {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("segment: %w", err)
		}
	}
	return nil
}

// Generate chooses one phoneme by weight and wraps it in the affixes.
func (s Segment) Generate(src sampler.Source) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	i, err := sampler.Choose(src, s.weights())
	if err != nil {
		return "", fmt.Errorf("segment: %w", err)
	}
	return s.Prefix + s.Phonemes[i].Grapheme + s.Suffix, nil
}

// Graphemes lists the configured graphemes in declaration order.
func (s Segment) Graphemes() []string {
	out := make([]string, len(s.Phonemes))
	for i, p := range s.Phonemes {
		out[i] = p.Grapheme
	}
	return out
}

func (s Segment) weights() []float64 {
	w := make([]float64, len(s.Phonemes))
	for i, p := range s.Phonemes {
		w[i] = p.Weight
	}
	return w
}
