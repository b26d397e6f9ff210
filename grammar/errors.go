// SPDX-License-Identifier: MIT
// Package: genling/grammar
//
// errors.go — sentinel errors for grammar definitions.

package grammar

import "errors"

// ErrInvalidGrammar indicates a definition that cannot be sampled: an empty
// segment or syllable, a non-positive phoneme weight, a negative syllable
// weight, or a position with no eligible syllable.
// Non-recoverable: fix the grammar, retrying will not help.
var ErrInvalidGrammar = errors.New("grammar: invalid grammar")
