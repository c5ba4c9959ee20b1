package intset

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// hashDomain separates IntSet hashes from other xxhash users.
const hashDomain = "intset.IntSet/v1"

// Equal reports whether s and other hold the same elements, regardless of
// how much storage either has allocated.
func (s *IntSet) Equal(other *IntSet) bool {
	return s.bits.Equal(&other.bits)
}

// IsSubset reports whether every element of s is in other.
func (s *IntSet) IsSubset(other *IntSet) bool {
	return s.bits.SubsetOf(&other.bits)
}

// IsStrictSubset reports whether s is a subset of other and not equal to it.
func (s *IntSet) IsStrictSubset(other *IntSet) bool {
	return s.IsSubset(other) && !s.Equal(other)
}

// IsSuperset reports whether every element of other is in s.
func (s *IntSet) IsSuperset(other *IntSet) bool {
	return other.IsSubset(s)
}

// IsStrictSuperset reports whether s is a superset of other and not equal to it.
func (s *IntSet) IsStrictSuperset(other *IntSet) bool {
	return other.IsStrictSubset(s)
}

// Compare orders s and other by inclusion. It returns -1 if s is a strict
// subset, 0 if they are equal and +1 if s is a strict superset. The boolean
// is false when neither contains the other.
func (s *IntSet) Compare(other *IntSet) (int, bool) {
	sub, sup := s.IsSubset(other), other.IsSubset(s)
	switch {
	case sub && sup:
		return 0, true
	case sub:
		return -1, true
	case sup:
		return 1, true
	default:
		return 0, false
	}
}

// Hash returns a content hash. Sets that are Equal hash identically, no
// matter how many trailing zero words their storage holds.
func (s *IntSet) Hash() uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(hashDomain)

	words := s.bits.Significant()
	var buf [8]byte
	for i := len(words) - 1; i >= 0; i-- {
		binary.LittleEndian.PutUint64(buf[:], words[i])
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
