// SPDX-License-Identifier: MIT
// Package: genling/stem
//
// stem.go — the generator and its rejection loop.
//
// Canonical model:
//   a. k = Choose(balance) + 1.
//   b. For p in 0..k-1 pick one syllable among those eligible at (p, k),
//      by weight, and generate it.
//   c. candidate = prefix + join(syllables, infix) + suffix.
//   d. The first filter that rejects decides; no filter → accepted.
//   e. Rejected candidates go to OnRejected and are dropped.
//   f. Accepted candidates are returned (single-result mode) or handed to
//      OnCandidate (streaming mode).
//
// Eligibility pools are computed once in New for every k the balance can
// produce, so an attempt costs O(k · segments) draws and no allocation
// beyond the output strings.

package stem

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/genling/grammar"
	"github.com/katalvlaran/genling/sampler"
)

const (
	methodNew      = "New"
	methodGenerate = "Generate"
)

// Verdict is the streaming callback's answer for an accepted candidate.
type Verdict uint8

const (
	// Accept marks progress: the budget starts over.
	Accept Verdict = iota
	// Reject discards the candidate (e.g. a duplicate) without resetting the budget.
	Reject
	// Stop ends generation; Generate returns this candidate.
	Stop
)

// GenerateOptions tunes one Generate call.
type GenerateOptions struct {
	// Budget overrides the stem's default budget when non-nil.
	Budget *Budget
	// OnCandidate switches Generate to streaming mode.
	OnCandidate func(candidate string) Verdict
	// OnRejected observes every candidate dropped by a filter.
	OnRejected func(candidate string, by Filter)
}

// DefaultGenerateOptions returns single-result mode with the stem's budget.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{}
}

// pool is the set of syllables eligible at one position of a k-syllable stem.
type pool struct {
	index   []int
	weights []float64
}

// Stem is an immutable stem generator; safe for concurrent use as long as
// each goroutine passes its own (or a Locked) Source.
type Stem struct {
	syllables []grammar.Syllable
	cfg       config
	pools     [][]pool // pools[k-1][p]
}

// New validates the grammar eagerly and precomputes eligibility pools.
//
// Errors (all wrapping ErrInvalidGrammar):
//   - no syllables, invalid syllable/segment definitions;
//   - a balance with no positive weight;
//   - a syllable count with positive weight leaving some position with no
//     eligible syllable of positive weight.
func New(syllables []grammar.Syllable, opts ...Option) (*Stem, error) {
	cfg := newConfig(opts...)
	if len(syllables) == 0 {
		return nil, fmt.Errorf("%s: no syllables: %w", methodNew, ErrInvalidGrammar)
	}
	for i, syl := range syllables {
		if err := syl.Validate(); err != nil {
			return nil, fmt.Errorf("%s: syllable %d: %w", methodNew, i, err)
		}
	}
	if _, err := sampler.Sum(cfg.balance); err != nil {
		return nil, fmt.Errorf("%s: balance %v: %w: %w", methodNew, cfg.balance, ErrInvalidGrammar, err)
	}

	s := &Stem{
		syllables: append([]grammar.Syllable(nil), syllables...),
		cfg:       cfg,
		pools:     make([][]pool, len(cfg.balance)),
	}
	for ki, w := range cfg.balance {
		k := ki + 1
		s.pools[ki] = make([]pool, k)
		for p := 0; p < k; p++ {
			pl := s.eligible(p, k)
			s.pools[ki][p] = pl
			if w == 0 {
				continue // never sampled, no need to be satisfiable
			}
			if _, err := sampler.Sum(pl.weights); err != nil {
				return nil, fmt.Errorf("%s: no eligible syllable at position %d of %d: %w",
					methodNew, p, k, ErrInvalidGrammar)
			}
		}
	}

	return s, nil
}

func (s *Stem) eligible(p, k int) pool {
	var pl pool
	for i, syl := range s.syllables {
		if syl.IsEligible(p, k) {
			pl.index = append(pl.index, i)
			pl.weights = append(pl.weights, syl.Weight)
		}
	}
	return pl
}

// Balance returns a copy of the syllable-count weights.
func (s *Stem) Balance() []float64 { return append([]float64(nil), s.cfg.balance...) }

// Filters returns a copy of the configured filters in evaluation order.
func (s *Stem) Filters() []Filter { return append([]Filter(nil), s.cfg.filters...) }

// Budget returns the default budget of Generate.
func (s *Stem) Budget() Budget { return s.cfg.budget }

// MaxSyllables is the largest syllable count the balance allows.
func (s *Stem) MaxSyllables() int { return len(s.cfg.balance) }

// Candidate produces one unfiltered candidate (steps a-c).
func (s *Stem) Candidate(src sampler.Source) (string, error) {
	if src == nil {
		return "", sampler.ErrNilSource
	}
	ki, err := sampler.Choose(src, s.cfg.balance)
	if err != nil {
		return "", fmt.Errorf("balance: %w: %w", ErrInvalidGrammar, err)
	}
	k := ki + 1

	parts := make([]string, k)
	for p := 0; p < k; p++ {
		pl := s.pools[ki][p]
		if len(pl.index) == 0 {
			return "", fmt.Errorf("no eligible syllable at position %d of %d: %w", p, k, ErrInvalidGrammar)
		}
		j, err := sampler.Choose(src, pl.weights)
		if err != nil {
			return "", fmt.Errorf("position %d of %d: %w: %w", p, k, ErrInvalidGrammar, err)
		}
		out, err := s.syllables[pl.index[j]].Generate(src)
		if err != nil {
			return "", fmt.Errorf("position %d of %d: %w", p, k, err)
		}
		parts[p] = out
	}

	return s.cfg.prefix + strings.Join(parts, s.cfg.infix) + s.cfg.suffix, nil
}

// Rejects runs the filters in order and returns the first one rejecting
// candidate (step d).
func (s *Stem) Rejects(src sampler.Source, candidate string) (Filter, bool) {
	for _, f := range s.cfg.filters {
		if f.Rejects(src, candidate) {
			return f, true
		}
	}
	return Filter{}, false
}

// Generate runs the rejection loop. A nil opts means DefaultGenerateOptions.
//
// Single-result mode returns the first accepted candidate. Streaming mode
// keeps going until OnCandidate answers Stop, returning that candidate.
// Either mode fails with ErrGenerationExhausted once the budget runs out;
// no partial result is returned.
func (s *Stem) Generate(src sampler.Source, opts *GenerateOptions) (string, error) {
	return s.GenerateContext(context.Background(), src, opts)
}

// GenerateContext is Generate that also stops, with ctx.Err(), once ctx is
// done. ctx is checked before every attempt.
func (s *Stem) GenerateContext(ctx context.Context, src sampler.Source, opts *GenerateOptions) (string, error) {
	if src == nil {
		return "", fmt.Errorf("%s: %w", methodGenerate, sampler.ErrNilSource)
	}
	o := DefaultGenerateOptions()
	if opts != nil {
		o = *opts
	}
	budget := s.cfg.budget
	if o.Budget != nil {
		if err := o.Budget.Validate(); err != nil {
			return "", fmt.Errorf("%s: %w", methodGenerate, err)
		}
		budget = o.Budget.resolve()
	}

	var (
		attempts int
		total    int
		start    = s.cfg.now()
	)
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		attempts++
		total++

		candidate, err := s.Candidate(src)
		if err != nil {
			return "", fmt.Errorf("%s: %w", methodGenerate, err)
		}

		if by, rejected := s.Rejects(src, candidate); rejected {
			if o.OnRejected != nil {
				o.OnRejected(candidate, by)
			}
		} else {
			if o.OnCandidate == nil {
				return candidate, nil
			}
			switch o.OnCandidate(candidate) {
			case Stop:
				return candidate, nil
			case Reject:
			default:
				attempts = 0
				start = s.cfg.now()
			}
		}

		elapsed := s.cfg.now().Sub(start)
		if budget.exhausted(attempts, elapsed) {
			return "", fmt.Errorf("%s: no accepted stem within %s (%d attempts, %s since last progress, %d total): %w",
				methodGenerate, budget, attempts, elapsed.Round(time.Millisecond), total, ErrGenerationExhausted)
		}
	}
}
