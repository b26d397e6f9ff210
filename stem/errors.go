// SPDX-License-Identifier: MIT
// Package: genling/stem
//
// errors.go — sentinel errors for stem generation.
//
// Error policy:
//   • ErrInvalidGrammar is the grammar package sentinel, re-exported so
//     callers of this package need a single import to branch on it.
//   • ErrGenerationExhausted is always wrapped with attempt/elapsed context.

package stem

import (
	"errors"

	"github.com/katalvlaran/genling/grammar"
)

// ErrInvalidGrammar indicates a syllable pool, balance or segment that can
// never produce a stem. Not recoverable by retrying.
var ErrInvalidGrammar = grammar.ErrInvalidGrammar

// ErrGenerationExhausted indicates the retry budget ran out before an
// accepted candidate was produced. Recoverable: raise the budget or relax
// the filters.
var ErrGenerationExhausted = errors.New("stem: generation exhausted, too many rejected stems")

// ErrInvalidBudget indicates a negative attempt count or timeout.
var ErrInvalidBudget = errors.New("stem: invalid budget")
