// Package intset provides a set of positive integers backed by a growable
// bit vector.
//
// IntSet trades memory proportional to the largest element for O(1)
// membership tests, amortized O(1) insertion and set algebra that runs
// 64 elements at a time.
//
// # Quick Start
//
//	s, _ := intset.Of(3, 1, 1000)
//	s.Contains(3)   // true
//	s.Len()         // 3
//	for n := range s.All() {
//	    fmt.Println(n) // 1, 3, 1000
//	}
//
// # Set Algebra
//
// Each operation has an in-place form that mutates the receiver and a
// copying form that leaves both operands untouched:
//
//	a.UnionWith(b)          // a |= b
//	c := a.Intersect(b)     // c = a & b
//	a.DifferenceWith(b)     // a &^= b
//	a.SymmetricDifference(b)
//
// Operands may have storage of different lengths. The shorter one is
// treated as zero-extended, and the result only grows when it must.
//
// # Storage Layout
//
// Element n is stored at bit n-1 of a []uint64. Every bit past the
// highest element is zero, which lets Equal and Hash ignore how much
// storage a set has allocated:
//
//	a, _ := intset.Of(1)
//	b, _ := intset.Of(1, 5000)
//	b.Delete(5000)
//	a.Equal(b)            // true
//	a.Hash() == b.Hash()  // true
//
// # Errors
//
// Push and Toggle reject values outside [1, MaxElement] with a
// *DomainError (errors.Is(err, ErrDomain)). Pop, First, Last and PopMax
// report absent elements with errors matching ErrNotFound. Contains,
// Delete and the algebra never fail.
//
// # Concurrency
//
// An IntSet is not safe for concurrent mutation. Use Clone to hand an
// independent snapshot to another goroutine. UnionAll and IntersectAll
// reduce many read-only sets in parallel.
//
// # Sparse Data
//
// Sets with a few huge values waste memory. Convert them with ToRoaring
// and FromRoaring.
package intset
