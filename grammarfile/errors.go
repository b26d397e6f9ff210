// SPDX-License-Identifier: MIT
// Package: genling/grammarfile

package grammarfile

import "errors"

// ErrInvalidDefinition wraps every structural problem of a definition.
// Grammar-level problems additionally wrap stem.ErrInvalidGrammar.
var ErrInvalidDefinition = errors.New("grammarfile: invalid definition")
