// SPDX-License-Identifier: MIT
// Package: genling/word
//
// word.go — the rendering pipeline.
//
// Canonical model:
//   out = stem
//   for each step in order:
//       next = step(out)
//       if next ≠ out and step is probabilistic and draw > threshold: next = out
//       if next ≠ out: notify observer
//       out = next
//   optionally normalize out (Unicode NFC/NFD/...)

package word

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/genling/sampler"
)

const methodCreate = "Create"

// Change describes one effective rewrite, reported to an Observer.
type Change struct {
	Stem        string // input of Create
	Before      string
	After       string
	Replacement Replacement
	Step        int // index of the step in the pipeline
}

// Observer receives every step that changed the string.
type Observer func(Change)

// Option customizes a Word.
type Option func(*Word)

// WithObserver reports effective changes to fn. Panics on nil.
func WithObserver(fn Observer) Option {
	if fn == nil {
		panic("word: WithObserver(nil)")
	}
	return func(w *Word) {
		w.observer = fn
	}
}

// WithNormalization applies a Unicode normalization form to the final word,
// e.g. norm.NFC so composed and decomposed inputs render identically.
func WithNormalization(form norm.Form) Option {
	return func(w *Word) {
		w.form, w.normalize = form, true
	}
}

// Word is an immutable rendering pipeline.
type Word struct {
	replacements  []Replacement
	probabilistic bool
	observer      Observer
	form          norm.Form
	normalize     bool
}

// New builds a pipeline over replacements (copied) in the given order.
func New(replacements []Replacement, opts ...Option) *Word {
	w := &Word{replacements: append([]Replacement(nil), replacements...)}
	for _, r := range w.replacements {
		if r.chance {
			w.probabilistic = true
		}
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Concat joins replacement lists, e.g. transliteration + helper stripping.
func Concat(lists ...[]Replacement) []Replacement {
	var n int
	for _, l := range lists {
		n += len(l)
	}
	out := make([]Replacement, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// With returns a copy of w with opts applied on top of its own options.
func (w *Word) With(opts ...Option) *Word {
	var cp Word
	if w != nil {
		cp = *w
		cp.replacements = append([]Replacement(nil), w.replacements...)
	}
	for _, opt := range opts {
		opt(&cp)
	}
	return &cp
}

// Replacements returns a copy of the pipeline steps.
func (w *Word) Replacements() []Replacement {
	if w == nil {
		return nil
	}
	return append([]Replacement(nil), w.replacements...)
}

// Deterministic reports whether the pipeline has no probabilistic step.
func (w *Word) Deterministic() bool { return w == nil || !w.probabilistic }

// Create folds stem through the pipeline.
// src is only consulted by probabilistic steps and may be nil when the
// pipeline is deterministic.
func (w *Word) Create(src sampler.Source, stem string) (string, error) {
	if w == nil {
		return stem, nil
	}
	if w.probabilistic && src == nil {
		return "", fmt.Errorf("%s: %w", methodCreate, sampler.ErrNilSource)
	}

	out := stem
	for i, r := range w.replacements {
		next, err := r.apply(out)
		if err != nil {
			return "", fmt.Errorf("%s: step %d (%s) on %q: %w: %w", methodCreate, i, r, out, ErrReplacement, err)
		}
		if next == out {
			continue
		}
		if r.chance && sampler.Exceeds(src, r.threshold) {
			continue
		}
		if w.observer != nil {
			w.observer(Change{Stem: stem, Before: out, After: next, Replacement: r, Step: i})
		}
		out = next
	}

	if w.normalize {
		out = w.form.String(out)
	}
	return out, nil
}

// CreateAll renders every stem; it stops at the first failure.
func (w *Word) CreateAll(src sampler.Source, stems []string) ([]string, error) {
	out := make([]string, len(stems))
	for i, s := range stems {
		rendered, err := w.Create(src, s)
		if err != nil {
			return nil, err
		}
		out[i] = rendered
	}
	return out, nil
}

// MustCreate is Create for pipelines that cannot fail (no Func steps and a
// non-nil src when probabilistic). It panics on error.
func (w *Word) MustCreate(src sampler.Source, stem string) string {
	out, err := w.Create(src, stem)
	if err != nil {
		panic(err)
	}
	return out
}
