package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Ints returns num values drawn uniformly from [1, maxVal].
// Duplicates are allowed.
func (r *RNG) Ints(num, maxVal int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, num)
	for i := range out {
		out[i] = 1 + r.rand.Intn(maxVal)
	}
	return out
}

// Clustered returns values from dense runs of width spread, one run per cluster,
// with cluster starts drawn from [1, maxVal]. It models small-ID workloads
// with a few far-apart hot ranges.
func (r *RNG) Clustered(clusters, spread, maxVal int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, 0, clusters*spread)
	for range clusters {
		base := 1 + r.rand.Intn(maxVal)
		for j := range spread {
			if r.rand.Intn(2) == 0 {
				out = append(out, base+j)
			}
		}
	}
	return out
}

// RefSet is a map-backed reference model of a set of ints.
type RefSet map[int]struct{}

// NewRefSet creates a RefSet holding values.
func NewRefSet(values ...int) RefSet {
	s := make(RefSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Contains reports whether v is in s.
func (s RefSet) Contains(v int) bool {
	_, ok := s[v]
	return ok
}

// Union returns the elements in s or o.
func (s RefSet) Union(o RefSet) RefSet {
	out := make(RefSet, len(s)+len(o))
	for v := range s {
		out[v] = struct{}{}
	}
	for v := range o {
		out[v] = struct{}{}
	}
	return out
}

// Intersect returns the elements in both s and o.
func (s RefSet) Intersect(o RefSet) RefSet {
	out := make(RefSet)
	for v := range s {
		if o.Contains(v) {
			out[v] = struct{}{}
		}
	}
	return out
}

// Difference returns the elements in s but not in o.
func (s RefSet) Difference(o RefSet) RefSet {
	out := make(RefSet)
	for v := range s {
		if !o.Contains(v) {
			out[v] = struct{}{}
		}
	}
	return out
}

// SymmetricDifference returns the elements in exactly one of s and o.
func (s RefSet) SymmetricDifference(o RefSet) RefSet {
	return s.Difference(o).Union(o.Difference(s))
}

// Sorted returns the elements in ascending order.
func (s RefSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
