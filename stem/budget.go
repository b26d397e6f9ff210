// SPDX-License-Identifier: MIT
// Package: genling/stem
//
// budget.go — how long generation may keep rejecting candidates.

package stem

import (
	"fmt"
	"time"
)

// DefaultTimeout is the wall-clock budget used when none is configured.
const DefaultTimeout = 2 * time.Second

// Budget bounds the rejection loop. Counting restarts whenever the caller
// signals progress (Verdict Accept in streaming mode).
//
// MaxAttempts > 0 caps the attempts since the last progress; Timeout > 0
// caps the elapsed time since the last progress. With both set, whichever
// runs out first ends generation. The zero Budget means DefaultBudget.
type Budget struct {
	MaxAttempts int
	Timeout     time.Duration
}

// DefaultBudget returns the 2 second wall-clock budget.
func DefaultBudget() Budget {
	return Budget{Timeout: DefaultTimeout}
}

// Attempts returns an attempt-count budget.
func Attempts(n int) Budget { return Budget{MaxAttempts: n} }

// Timeout returns a wall-clock budget.
func Timeout(d time.Duration) Budget { return Budget{Timeout: d} }

// IsZero reports whether neither limit is set.
func (b Budget) IsZero() bool { return b.MaxAttempts == 0 && b.Timeout == 0 }

// Validate rejects negative limits.
func (b Budget) Validate() error {
	if b.MaxAttempts < 0 || b.Timeout < 0 {
		return fmt.Errorf("attempts=%d timeout=%s: %w", b.MaxAttempts, b.Timeout, ErrInvalidBudget)
	}
	return nil
}

func (b Budget) resolve() Budget {
	if b.IsZero() {
		return DefaultBudget()
	}
	return b
}

func (b Budget) exhausted(attempts int, elapsed time.Duration) bool {
	if b.MaxAttempts > 0 && attempts >= b.MaxAttempts {
		return true
	}
	if b.Timeout > 0 && elapsed >= b.Timeout {
		return true
	}
	return false
}

// String renders the active limits, e.g. "100 attempts" or "2s".
func (b Budget) String() string {
	switch {
	case b.MaxAttempts > 0 && b.Timeout > 0:
		return fmt.Sprintf("%d attempts or %s", b.MaxAttempts, b.Timeout)
	case b.MaxAttempts > 0:
		return fmt.Sprintf("%d attempts", b.MaxAttempts)
	case b.Timeout > 0:
		return b.Timeout.String()
	default:
		return DefaultTimeout.String()
	}
}
