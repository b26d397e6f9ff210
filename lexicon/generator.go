// SPDX-License-Identifier: MIT
// Package: genling/lexicon
//
// generator.go — batch generation on top of stem.Generate.
//
// Unique batches run one streaming Generate call: a fresh stem is Accept
// (the budget restarts), a repeat is Reject (the budget keeps running) and
// the n-th fresh stem is Stop. Both modes use stem.GenerateContext, so a
// cancelled ctx ends the batch at the next attempt.

package lexicon

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/genling/sampler"
	"github.com/katalvlaran/genling/stem"
)

const instrumentationName = "github.com/katalvlaran/genling/lexicon"

// Generator produces batches of stems for one language.
type Generator struct {
	Language *Language
	Source   sampler.Source

	// Budget overrides the stem's own budget when non-nil. In unique mode
	// it bounds the gap between two fresh stems.
	Budget *stem.Budget

	// Unique drops repeated stems within a batch.
	Unique bool

	// OnRejected observes every filtered candidate.
	OnRejected func(candidate string, by stem.Filter)

	// Tracer defaults to the global provider's tracer.
	Tracer trace.Tracer
}

// Stats summarizes the last Generate call.
type Stats struct {
	Rejected   int // candidates dropped by filters
	Duplicates int // repeats dropped in unique mode
}

// Generate returns n stems. It fails as a whole: on exhaustion or
// cancellation no partial batch is returned.
func (g *Generator) Generate(ctx context.Context, n int) ([]string, error) {
	out, _, err := g.GenerateStats(ctx, n)
	return out, err
}

// GenerateStats is Generate that also reports rejection counts.
func (g *Generator) GenerateStats(ctx context.Context, n int) ([]string, Stats, error) {
	var stats Stats
	if n < 0 {
		return nil, stats, fmt.Errorf("Generate(%d): %w", n, ErrInvalidCount)
	}
	if err := g.Language.Validate(); err != nil {
		return nil, stats, err
	}
	if g.Source == nil {
		return nil, stats, fmt.Errorf("Generate: %w", sampler.ErrNilSource)
	}

	tracer := g.Tracer
	if tracer == nil {
		tracer = otel.Tracer(instrumentationName)
	}
	ctx, span := tracer.Start(ctx, "lexicon.Generate", trace.WithAttributes(
		attribute.String("genling.language", g.Language.Name),
		attribute.Int("genling.count", n),
		attribute.Bool("genling.unique", g.Unique),
	))
	defer span.End()

	opts := stem.GenerateOptions{
		Budget: g.Budget,
		OnRejected: func(candidate string, by stem.Filter) {
			stats.Rejected++
			if g.OnRejected != nil {
				g.OnRejected(candidate, by)
			}
		},
	}

	var (
		out []string
		err error
	)
	if g.Unique {
		out, err = g.unique(ctx, n, &opts, &stats)
	} else {
		out, err = g.plain(ctx, n, &opts)
	}

	span.SetAttributes(
		attribute.Int("genling.rejected", stats.Rejected),
		attribute.Int("genling.duplicates", stats.Duplicates),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, stats, err
	}
	return out, stats, nil
}

func (g *Generator) plain(ctx context.Context, n int, opts *stem.GenerateOptions) ([]string, error) {
	out := make([]string, 0, n)
	for len(out) < n {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s, err := g.Language.Stem.GenerateContext(ctx, g.Source, opts)
		if err != nil {
			return nil, fmt.Errorf("language %q: stem %d of %d: %w", g.Language.Name, len(out)+1, n, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func (g *Generator) unique(ctx context.Context, n int, opts *stem.GenerateOptions, stats *Stats) ([]string, error) {
	out := make([]string, 0, n)
	if n == 0 {
		return out, nil
	}
	seen := make(map[string]struct{}, n)
	opts.OnCandidate = func(candidate string) stem.Verdict {
		if _, dup := seen[candidate]; dup {
			stats.Duplicates++
			return stem.Reject
		}
		seen[candidate] = struct{}{}
		out = append(out, candidate)
		if len(out) == n {
			return stem.Stop
		}
		return stem.Accept
	}

	if _, err := g.Language.Stem.GenerateContext(ctx, g.Source, opts); err != nil {
		return nil, fmt.Errorf("language %q: %d of %d distinct stems: %w", g.Language.Name, len(out), n, err)
	}
	return out, nil
}
