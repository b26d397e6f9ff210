// SPDX-License-Identifier: MIT
// Package: genling/word

package word

import "errors"

// ErrReplacement indicates a Func step failed; the pipeline stops at that
// step and no partially transformed word is returned. The step's own error
// is wrapped alongside.
var ErrReplacement = errors.New("word: replacement failed")
