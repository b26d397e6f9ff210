// SPDX-License-Identifier: MIT
// Package: genling/stem
//
// filter.go — the closed set of rejection filters.
//
// Semantics (a filter "rejects" the candidate when):
//   • Predicate: fn(candidate) is true.
//   • Match:     the pattern matches.
//   • Chance:    the pattern matches AND a fresh draw > threshold.
//   • Contains:  the candidate contains the substring.
//
// The Chance draw is only taken for matching candidates.

package stem

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/katalvlaran/genling/sampler"
)

// FilterKind tags the variant held by a Filter.
type FilterKind uint8

const (
	PredicateFilter FilterKind = iota
	MatchFilter
	ChanceFilter
	ContainsFilter
)

func (k FilterKind) String() string {
	switch k {
	case PredicateFilter:
		return "predicate"
	case MatchFilter:
		return "match"
	case ChanceFilter:
		return "chance"
	case ContainsFilter:
		return "contains"
	default:
		return fmt.Sprintf("FilterKind(%d)", uint8(k))
	}
}

// Filter rejects undesirable stem candidates. Build one with Predicate,
// Match, MustMatch, Chance or Contains; the zero Filter rejects nothing.
type Filter struct {
	kind      FilterKind
	name      string
	pred      func(string) bool
	re        *regexp.Regexp
	substr    string
	threshold float64
}

// Predicate rejects candidates for which fn returns true.
// name identifies the filter in observers. Panics on nil fn.
func Predicate(name string, fn func(candidate string) bool) Filter {
	if fn == nil {
		panic("stem: Predicate(nil)")
	}
	return Filter{kind: PredicateFilter, name: name, pred: fn}
}

// Match rejects candidates matched by re. Panics on nil re.
func Match(re *regexp.Regexp) Filter {
	if re == nil {
		panic("stem: Match(nil)")
	}
	return Filter{kind: MatchFilter, re: re}
}

// MustMatch compiles expr and returns a Match filter.
func MustMatch(expr string) Filter {
	return Match(regexp.MustCompile(expr))
}

// Chance rejects a candidate matched by re only when a fresh draw exceeds
// threshold. Panics on nil re or a threshold outside [0,1].
func Chance(re *regexp.Regexp, threshold float64) Filter {
	if re == nil {
		panic("stem: Chance(nil)")
	}
	if !(threshold >= 0 && threshold <= 1) {
		panic(fmt.Sprintf("stem: Chance(threshold=%g): must be in [0,1]", threshold))
	}
	return Filter{kind: ChanceFilter, re: re, threshold: threshold}
}

// Contains rejects candidates containing substr. Panics on an empty substr.
func Contains(substr string) Filter {
	if substr == "" {
		panic(`stem: Contains("")`)
	}
	return Filter{kind: ContainsFilter, substr: substr}
}

// Kind returns the variant tag.
func (f Filter) Kind() FilterKind { return f.kind }

// Threshold returns the acceptance threshold of a Chance filter (0 otherwise).
func (f Filter) Threshold() float64 { return f.threshold }

// Rejects reports whether f rejects candidate, drawing from src for Chance filters.
func (f Filter) Rejects(src sampler.Source, candidate string) bool {
	switch f.kind {
	case PredicateFilter:
		return f.pred != nil && f.pred(candidate)
	case MatchFilter:
		return f.re != nil && f.re.MatchString(candidate)
	case ChanceFilter:
		return f.re != nil && f.re.MatchString(candidate) && sampler.Exceeds(src, f.threshold)
	case ContainsFilter:
		return f.substr != "" && strings.Contains(candidate, f.substr)
	default:
		return false
	}
}

// String describes the filter for logs, e.g. `match /n#m/` or `chance /d_[iu]/ 0.9`.
func (f Filter) String() string {
	switch f.kind {
	case PredicateFilter:
		if f.name == "" {
			return "predicate"
		}
		return "predicate " + f.name
	case MatchFilter:
		return fmt.Sprintf("match /%s/", f.re)
	case ChanceFilter:
		return fmt.Sprintf("chance /%s/ %g", f.re, f.threshold)
	case ContainsFilter:
		return fmt.Sprintf("contains %q", f.substr)
	default:
		return f.kind.String()
	}
}
