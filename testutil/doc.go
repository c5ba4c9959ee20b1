// Package testutil provides testing utilities for intset.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Element Generation
//
//	rng := testutil.NewRNG(seed)
//	values := rng.Ints(100, 5000)        // 100 values in [1, 5000], duplicates allowed
//	clustered := rng.Clustered(4, 10, 1e6)
//
// # Reference Model
//
//	ref := testutil.NewRefSet(values...)
//	ref.Union(other).Sorted()
package testutil
