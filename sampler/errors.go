// SPDX-License-Identifier: MIT
// Package: genling/sampler
//
// errors.go — sentinel errors for weighted sampling.
//
// Callers MUST branch with errors.Is; messages are stable.

package sampler

import "errors"

// ErrNoWeights indicates an empty weight list; there is nothing to choose from.
var ErrNoWeights = errors.New("sampler: no weights")

// ErrNegativeWeight indicates a weight below zero, NaN or infinite.
var ErrNegativeWeight = errors.New("sampler: weight must be finite and non-negative")

// ErrZeroSum indicates that every weight is zero, so no index has positive probability.
var ErrZeroSum = errors.New("sampler: weights sum to zero")

// ErrWeightOverflow indicates finite weights whose total is not representable
// as a float64, so no proportional draw can be made.
var ErrWeightOverflow = errors.New("sampler: weights sum overflows")

// ErrNilSource indicates a nil random Source was supplied.
var ErrNilSource = errors.New("sampler: random source is required")
