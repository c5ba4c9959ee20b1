package intset

import "iter"

// All returns the elements in ascending order. The sequence is lazy and
// may be ranged over again; it reflects the set at the time of each step,
// so the set must not be modified while ranging.
func (s *IntSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for pos, ok := s.bits.NextSet(0); ok; pos, ok = s.bits.NextSet(pos + 1) {
			if !yield(pos + 1) {
				return
			}
		}
	}
}

// Backward returns the elements in descending order.
func (s *IntSet) Backward() iter.Seq[int] {
	return func(yield func(int) bool) {
		pos, ok := s.bits.LastSet()
		for ok {
			if !yield(pos + 1) {
				return
			}
			pos, ok = s.bits.PrevSet(pos - 1)
		}
	}
}

// Iterator walks a set in ascending order with an explicit cursor.
type Iterator struct {
	set  *IntSet
	next int // bit position where the next scan starts
	done bool
}

// Iterator returns an Iterator positioned before the smallest element.
func (s *IntSet) Iterator() *Iterator {
	return &Iterator{set: s}
}

// Next returns the next element, or false once the set is exhausted.
func (it *Iterator) Next() (int, bool) {
	if it.done {
		return 0, false
	}
	pos, ok := it.set.bits.NextSet(it.next)
	if !ok {
		it.done = true
		return 0, false
	}
	it.next = pos + 1
	return pos + 1, true
}

// Seek positions the iterator so that Next returns the smallest element
// greater than or equal to n.
func (it *Iterator) Seek(n int) {
	it.next = max(n, 1) - 1
	it.done = false
}

// Reset rewinds the iterator to the start of the set.
func (it *Iterator) Reset() {
	it.next = 0
	it.done = false
}
