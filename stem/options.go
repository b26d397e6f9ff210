// SPDX-License-Identifier: MIT
// Package: genling/stem
//
// options.go — functional options for New.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless input.
//   • New itself never panics; grammar problems come back as ErrInvalidGrammar.
//   • Options apply in order, later ones win.

package stem

import (
	"fmt"
	"time"
)

// Option customizes a Stem at construction time.
type Option func(*config)

type config struct {
	balance []float64
	filters []Filter
	prefix  string
	infix   string
	suffix  string
	budget  Budget
	now     func() time.Time
}

func newConfig(opts ...Option) config {
	cfg := config{
		balance: []float64{1},
		budget:  DefaultBudget(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithBalance sets the weights of syllable counts: weights[k] is the
// relative likelihood of a stem with k+1 syllables. Default [1].
// Panics on an empty list or a negative weight.
func WithBalance(weights ...float64) Option {
	if len(weights) == 0 {
		panic("stem: WithBalance()")
	}
	for _, w := range weights {
		if w < 0 {
			panic(fmt.Sprintf("stem: WithBalance(%v): weights must be ≥ 0", weights))
		}
	}
	cp := append([]float64(nil), weights...)
	return func(c *config) {
		c.balance = cp
	}
}

// WithFilters appends rejection filters; they run in the given order.
func WithFilters(filters ...Filter) Option {
	cp := append([]Filter(nil), filters...)
	return func(c *config) {
		c.filters = append(c.filters, cp...)
	}
}

// WithAffixes sets the strings added before, between the syllables of and
// after every candidate. Filters see the candidate with affixes applied.
func WithAffixes(prefix, infix, suffix string) Option {
	return func(c *config) {
		c.prefix, c.infix, c.suffix = prefix, infix, suffix
	}
}

// WithBudget sets the default retry budget of Generate.
// Panics on negative limits; the zero Budget restores DefaultBudget.
func WithBudget(b Budget) Option {
	if err := b.Validate(); err != nil {
		panic("stem: WithBudget: " + err.Error())
	}
	return func(c *config) {
		c.budget = b.resolve()
	}
}

// WithClock replaces time.Now for timeout accounting. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("stem: WithClock(nil)")
	}
	return func(c *config) {
		c.now = now
	}
}
