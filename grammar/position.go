// SPDX-License-Identifier: MIT
// Package: genling/grammar
//
// position.go — where a syllable may appear inside a stem.
//
// Indices are zero-based; a negative index i resolves to i + total, so -1
// is the last syllable of the stem whatever its length.

package grammar

import "fmt"

// PositionKind enumerates the closed set of position constraints.
type PositionKind uint8

const (
	// Unconstrained syllables are eligible everywhere.
	Unconstrained PositionKind = iota
	// ExactIndex syllables are eligible at a single index.
	ExactIndex
	// RangeIndex syllables are eligible within [Min, Max] inclusive.
	RangeIndex
)

// Position is a tagged position constraint. The zero value is Unconstrained.
type Position struct {
	Kind PositionKind
	Min  int // ExactIndex uses Min only
	Max  int
}

// Anywhere returns the unconstrained position.
func Anywhere() Position { return Position{} }

// At restricts a syllable to index i (negative counts from the end).
func At(i int) Position { return Position{Kind: ExactIndex, Min: i, Max: i} }

// Between restricts a syllable to [min, max]; each bound may be negative.
func Between(min, max int) Position { return Position{Kind: RangeIndex, Min: min, Max: max} }

// Eligible reports whether index p of a stem with total syllables satisfies
// the constraint.
func (pos Position) Eligible(p, total int) bool {
	switch pos.Kind {
	case ExactIndex:
		return p == resolveIndex(pos.Min, total)
	case RangeIndex:
		lo, hi := resolveIndex(pos.Min, total), resolveIndex(pos.Max, total)
		return lo <= p && p <= hi
	default:
		return true
	}
}

// String renders the constraint the way grammar files spell it.
func (pos Position) String() string {
	switch pos.Kind {
	case ExactIndex:
		return fmt.Sprintf("%d", pos.Min)
	case RangeIndex:
		return fmt.Sprintf("[%d,%d]", pos.Min, pos.Max)
	default:
		return "any"
	}
}

func resolveIndex(i, total int) int {
	if i < 0 {
		return i + total
	}
	return i
}
