// SPDX-License-Identifier: MIT
// Package: genling/word
//
// replacement.go — one rewrite step of a Word pipeline.
//
// Contract:
//   • Pattern steps replace every match (regexp.ReplaceAllString semantics).
//   • Constructors panic on nil functions/patterns and on thresholds
//     outside [0,1]; applying a step never panics.

package word

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind tags the variant held by a Replacement.
type Kind uint8

const (
	FuncKind Kind = iota
	PatternKind
	PatternFuncKind
	TableKind
	LiteralKind
)

func (k Kind) String() string {
	switch k {
	case FuncKind:
		return "func"
	case PatternKind:
		return "pattern"
	case PatternFuncKind:
		return "pattern-func"
	case TableKind:
		return "table"
	case LiteralKind:
		return "literal"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Replacement is one rewrite step. The zero value leaves strings unchanged.
type Replacement struct {
	kind      Kind
	name      string
	fn        func(string) (string, error)
	re        *regexp.Regexp
	template  string
	matchFn   func(string) string
	table     map[string]string
	from, to  string
	chance    bool
	threshold float64
}

// Func wraps an arbitrary rewrite. name identifies it in observers.
// Panics on nil fn.
func Func(name string, fn func(string) (string, error)) Replacement {
	if fn == nil {
		panic("word: Func(nil)")
	}
	return Replacement{kind: FuncKind, name: name, fn: fn}
}

// Pattern substitutes every match of re with template, where ${1}, ${name}
// expand capture groups. Panics on nil re.
func Pattern(re *regexp.Regexp, template string) Replacement {
	if re == nil {
		panic("word: Pattern(nil)")
	}
	return Replacement{kind: PatternKind, re: re, template: template}
}

// MustPattern compiles expr and returns a Pattern step.
func MustPattern(expr, template string) Replacement {
	return Pattern(regexp.MustCompile(expr), template)
}

// PatternFunc substitutes every match of re with fn(match).
// Panics on nil re or fn.
func PatternFunc(re *regexp.Regexp, fn func(match string) string) Replacement {
	if re == nil || fn == nil {
		panic("word: PatternFunc(nil)")
	}
	return Replacement{kind: PatternFuncKind, re: re, matchFn: fn}
}

// Table substitutes every match of re found in table; matches missing from
// the table are left as they are. The table is copied. Panics on nil re.
func Table(re *regexp.Regexp, table map[string]string) Replacement {
	if re == nil {
		panic("word: Table(nil)")
	}
	cp := make(map[string]string, len(table))
	for k, v := range table {
		cp[k] = v
	}
	return Replacement{kind: TableKind, re: re, table: cp}
}

// Literal substitutes every occurrence of from with to.
// Panics on an empty from.
func Literal(from, to string) Replacement {
	if from == "" {
		panic(`word: Literal("")`)
	}
	return Replacement{kind: LiteralKind, from: from, to: to}
}

// WithChance returns a copy of r whose changes are committed only when a
// fresh draw does not exceed threshold. Panics for Func steps and for a
// threshold outside [0,1].
func (r Replacement) WithChance(threshold float64) Replacement {
	if r.kind == FuncKind {
		panic("word: WithChance on a Func replacement")
	}
	if !(threshold >= 0 && threshold <= 1) {
		panic(fmt.Sprintf("word: WithChance(%g): must be in [0,1]", threshold))
	}
	r.chance, r.threshold = true, threshold
	return r
}

// Kind returns the variant tag.
func (r Replacement) Kind() Kind { return r.kind }

// Probabilistic reports whether WithChance was applied.
func (r Replacement) Probabilistic() bool { return r.chance }

// Threshold returns the WithChance threshold (0 when not probabilistic).
func (r Replacement) Threshold() float64 { return r.threshold }

// apply computes the candidate output of the step.
func (r Replacement) apply(s string) (string, error) {
	switch r.kind {
	case FuncKind:
		if r.fn == nil {
			return s, nil
		}
		return r.fn(s)
	case PatternKind:
		return r.re.ReplaceAllString(s, r.template), nil
	case PatternFuncKind:
		return r.re.ReplaceAllStringFunc(s, r.matchFn), nil
	case TableKind:
		return r.re.ReplaceAllStringFunc(s, func(m string) string {
			if v, ok := r.table[m]; ok {
				return v
			}
			return m
		}), nil
	case LiteralKind:
		if r.from == "" {
			return s, nil
		}
		return strings.ReplaceAll(s, r.from, r.to), nil
	default:
		return s, nil
	}
}

// String describes the step, e.g. `/x><(.)/ → "${1}${1}"` or `"_" → "" (p=0.5)`.
func (r Replacement) String() string {
	var out string
	switch r.kind {
	case FuncKind:
		out = "func"
		if r.name != "" {
			out += " " + r.name
		}
		if r.fn == nil {
			out = "identity"
		}
	case PatternKind:
		out = fmt.Sprintf("/%s/ → %q", r.re, r.template)
	case PatternFuncKind:
		out = fmt.Sprintf("/%s/ → func", r.re)
	case TableKind:
		out = fmt.Sprintf("/%s/ → table[%d]", r.re, len(r.table))
	case LiteralKind:
		out = fmt.Sprintf("%q → %q", r.from, r.to)
	default:
		out = r.kind.String()
	}
	if r.chance {
		out += fmt.Sprintf(" (p=%g)", r.threshold)
	}
	return out
}
