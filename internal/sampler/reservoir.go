// Package sampler implements single-pass reservoir sampling of size one.
//
// A Reservoir observes a stream of candidates of unknown length and keeps
// exactly one of them. After n observations every candidate has been kept
// with probability 1/n, whatever order they arrived in.
package sampler

import (
	"math/rand/v2"
	"time"
)

// Source draws uniformly distributed integers in [0, n). *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// NewClockSource returns a Source seeded from the current wall-clock time.
// It is not suitable for anything security sensitive.
func NewClockSource() Source {
	now := time.Now()
	return NewSeededSource(uint64(now.UnixNano()))
}

// NewSeededSource returns a deterministic Source for the given seed.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Reservoir holds the running selection. It is not safe for concurrent use;
// Observe calls must not interleave.
type Reservoir struct {
	src    Source
	count  int
	chosen string
}

// NewReservoir creates an empty Reservoir drawing from src.
func NewReservoir(src Source) *Reservoir {
	return &Reservoir{src: src}
}

// Observe offers the next candidate. The first candidate is always kept;
// the n-th replaces the current choice with probability 1/n.
func (r *Reservoir) Observe(candidate string) {
	r.count++
	if r.count == 1 {
		r.chosen = candidate
		return
	}
	if r.src.IntN(r.count) == 0 {
		r.chosen = candidate
	}
}

// Count returns how many candidates have been observed.
func (r *Reservoir) Count() int {
	return r.count
}

// Chosen returns the current selection. ok is false when nothing has been
// observed yet.
func (r *Reservoir) Chosen() (path string, ok bool) {
	if r.count == 0 {
		return "", false
	}
	return r.chosen, true
}
