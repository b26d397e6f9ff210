// SPDX-License-Identifier: MIT
// Package: genling/sampler
//
// sampler.go — proportional index selection.
//
// Contract:
//   • P(i) = weights[i] / Σ weights for every i.
//   • Zero-weight entries are never returned.
//   • Invalid input returns a sentinel error; no index is guessed.
//
// Complexity: O(N) time, O(1) space per draw.

package sampler

import (
	"fmt"
	"math"
)

const methodChoose = "Choose"

// Choose returns an index i in [0, len(weights)) with probability
// proportional to weights[i].
//
// A single uniform value r in [0, Σw) is drawn; weights are subtracted in
// order and the first index driving r below zero wins.
func Choose(src Source, weights []float64) (int, error) {
	sum, err := Sum(weights)
	if err != nil {
		return -1, fmt.Errorf("%s: %w", methodChoose, err)
	}
	if src == nil {
		return -1, fmt.Errorf("%s: %w", methodChoose, ErrNilSource)
	}

	r := src.Float64() * sum
	last := -1
	for i, w := range weights {
		if w == 0 {
			continue
		}
		last = i
		r -= w
		if r < 0 {
			return i, nil
		}
	}

	// Rounding can leave r at a tiny non-negative value; the last positive
	// weight owns the top of the interval.
	return last, nil
}

// Sum validates weights and returns their total.
// It fails with ErrNoWeights, ErrNegativeWeight, ErrWeightOverflow or
// ErrZeroSum.
func Sum(weights []float64) (float64, error) {
	if len(weights) == 0 {
		return 0, ErrNoWeights
	}
	var sum float64
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, fmt.Errorf("weight[%d]=%g: %w", i, w, ErrNegativeWeight)
		}
		sum += w
	}
	if math.IsInf(sum, 0) {
		return 0, ErrWeightOverflow
	}
	if sum <= 0 {
		return 0, ErrZeroSum
	}

	return sum, nil
}

// Exceeds draws a fresh uniform value and reports whether it is strictly
// greater than threshold. Probabilistic filters and replacements are
// expressed with it: Exceeds(src, 0.9) is true roughly one time in ten.
func Exceeds(src Source, threshold float64) bool {
	return src.Float64() > threshold
}
