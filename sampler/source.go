// SPDX-License-Identifier: MIT
// Package: genling/sampler
//
// source.go — random sources.
//
// Determinism policy:
//   • NewSeeded(seed) with seed != 0 always yields the same stream.
//   • Seed 0 means "pick one": a crypto/rand seed is drawn and can be read
//     back through NewSeededSource for reproducibility reports.

package sampler

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Source is the uniform random stream used by every sampling call.
// Float64 MUST return values in [0,1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// seeded remembers the seed a *rand.Rand was built from.
type seeded struct {
	*rand.Rand
	seed int64
}

// NewSeeded returns a deterministic *rand.Rand for seed.
// A zero seed is replaced by NewSeed (falling back to the clock if the
// system entropy source fails).
func NewSeeded(seed int64) *rand.Rand {
	return newSeeded(seed).Rand
}

// NewSeededSource is NewSeeded that also exposes the effective seed.
func NewSeededSource(seed int64) (Source, int64) {
	s := newSeeded(seed)
	return s, s.seed
}

func newSeeded(seed int64) seeded {
	if seed == 0 {
		var err error
		if seed, err = NewSeed(); err != nil || seed == 0 {
			seed = time.Now().UnixNano()
		}
	}
	return seeded{Rand: rand.New(rand.NewSource(seed)), seed: seed}
}

// NewSeed generates a high-entropy seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// lockedSource serializes access to an underlying Source.
type lockedSource struct {
	mu  sync.Mutex
	src Source
}

// Locked wraps src so it can be shared by concurrent generators.
// Panics on nil, like the option constructors: it is a wiring error.
func Locked(src Source) Source {
	if src == nil {
		panic("sampler: Locked(nil)")
	}
	if l, ok := src.(*lockedSource); ok {
		return l
	}
	return &lockedSource{src: src}
}

func (l *lockedSource) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}

// Fixed replays the given values in order and then repeats the last one.
// It exists for tests and examples that need an exact draw sequence.
type Fixed struct {
	Values []float64
	next   int
}

// Float64 returns the next scripted value (0 when Values is empty).
func (f *Fixed) Float64() float64 {
	if len(f.Values) == 0 {
		return 0
	}
	if f.next >= len(f.Values) {
		return f.Values[len(f.Values)-1]
	}
	v := f.Values[f.next]
	f.next++
	return v
}
