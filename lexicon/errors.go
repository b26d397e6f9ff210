// SPDX-License-Identifier: MIT
// Package: genling/lexicon

package lexicon

import (
	"errors"

	"github.com/katalvlaran/genling/stem"
)

var (
	// ErrUnknownScript is returned when a language has no script by that name.
	ErrUnknownScript = errors.New("lexicon: unknown script")

	// ErrInvalidLanguage indicates a Language without a stem generator.
	ErrInvalidLanguage = errors.New("lexicon: invalid language")

	// ErrInvalidCount indicates a negative batch size.
	ErrInvalidCount = errors.New("lexicon: invalid count")

	// ErrGenerationExhausted is stem.ErrGenerationExhausted, re-exported so
	// batch callers need not import stem.
	ErrGenerationExhausted = stem.ErrGenerationExhausted
)
