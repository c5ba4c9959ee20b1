package intset

import "github.com/hupe1980/intset/internal/bitset"

// merge applies op to s in place, with other read-only.
func (s *IntSet) merge(other *IntSet, op bitset.Op) {
	before, srcWords := s.bits.Words(), other.bits.Words()
	bitset.Merge(&s.bits, &other.bits, op)

	name := op.String()
	s.options().metricsCollector.RecordMerge(name, before, srcWords)
	s.observe(name, before)
}

// UnionWith adds every element of other to s.
func (s *IntSet) UnionWith(other *IntSet) {
	s.merge(other, bitset.Or)
}

// IntersectWith removes from s every element not in other.
func (s *IntSet) IntersectWith(other *IntSet) {
	s.merge(other, bitset.And)
}

// DifferenceWith removes from s every element of other.
func (s *IntSet) DifferenceWith(other *IntSet) {
	s.merge(other, bitset.AndNot)
}

// SymmetricDifferenceWith keeps in s the elements that are in exactly one
// of s and other.
func (s *IntSet) SymmetricDifferenceWith(other *IntSet) {
	s.merge(other, bitset.Xor)
}

// Union returns a new set with the elements of s and other.
func (s *IntSet) Union(other *IntSet) *IntSet {
	out := s.Clone()
	out.UnionWith(other)
	return out
}

// Intersect returns a new set with the elements common to s and other.
// It copies the operand with the shorter storage.
func (s *IntSet) Intersect(other *IntSet) *IntSet {
	short, long := s, other
	if other.bits.Words() < s.bits.Words() {
		short, long = other, s
	}
	out := short.Clone()
	out.opts = s.opts
	out.IntersectWith(long)
	return out
}

// Difference returns a new set with the elements of s that are not in other.
func (s *IntSet) Difference(other *IntSet) *IntSet {
	out := s.Clone()
	out.DifferenceWith(other)
	return out
}

// SymmetricDifference returns a new set with the elements in exactly one
// of s and other.
func (s *IntSet) SymmetricDifference(other *IntSet) *IntSet {
	out := s.Clone()
	out.SymmetricDifferenceWith(other)
	return out
}
