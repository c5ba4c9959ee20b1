package bitset

import (
	"math/bits"

	"github.com/hupe1980/intset/internal/wordops"
)

const (
	// WordBits is the number of bits per storage word.
	WordBits = 64

	wordShift = 6
	wordMask  = WordBits - 1
)

// Storage is a growable bit vector with a zeroed tail.
type Storage struct {
	words []uint64
}

// wordsFor returns the number of words needed to hold nbits bits.
func wordsFor(nbits int) int {
	if nbits <= 0 {
		return 0
	}
	return (nbits-1)>>wordShift + 1
}

// Len returns the logical length in bits.
func (s *Storage) Len() int {
	return len(s.words) << wordShift
}

// Words returns the number of words in use.
func (s *Storage) Words() int {
	return len(s.words)
}

// Cap returns the number of bits available without reallocation.
func (s *Storage) Cap() int {
	return cap(s.words) << wordShift
}

// Get returns the bit at pos. Positions outside the storage read as zero.
func (s *Storage) Get(pos int) bool {
	if pos < 0 {
		return false
	}
	w := pos >> wordShift
	if w >= len(s.words) {
		return false
	}
	return s.words[w]&(1<<(uint(pos)&wordMask)) != 0
}

// Set writes the bit at pos. Clearing a bit past the end is a no-op;
// setting one grows the storage first.
func (s *Storage) Set(pos int, value bool) {
	if pos < 0 {
		return
	}
	w := pos >> wordShift
	mask := uint64(1) << (uint(pos) & wordMask)
	if !value {
		if w < len(s.words) {
			s.words[w] &^= mask
		}
		return
	}
	if w >= len(s.words) {
		s.GrowTo(pos + 1)
	}
	s.words[w] |= mask
}

// Toggle flips the bit at pos, growing the storage when it is past the end.
func (s *Storage) Toggle(pos int) {
	if pos < 0 {
		return
	}
	w := pos >> wordShift
	if w >= len(s.words) {
		s.GrowTo(pos + 1)
	}
	s.words[w] ^= uint64(1) << (uint(pos) & wordMask)
}

// GrowTo extends the storage to hold at least nbits bits, rounded up to a
// whole word. Every newly exposed word is zero. It never shrinks.
func (s *Storage) GrowTo(nbits int) {
	n := wordsFor(nbits)
	old := len(s.words)
	if n <= old {
		return
	}
	if n > cap(s.words) {
		newCap := max(2*cap(s.words), n)
		grown := make([]uint64, n, newCap)
		copy(grown, s.words)
		s.words = grown
		return
	}
	s.words = s.words[:n]
	clear(s.words[old:])
}

// Reserve makes room for nbits bits without changing the logical length.
func (s *Storage) Reserve(nbits int) {
	n := wordsFor(nbits)
	if n <= cap(s.words) {
		return
	}
	grown := make([]uint64, len(s.words), n)
	copy(grown, s.words)
	s.words = grown
}

// truncate shrinks the logical length to n words. The caller guarantees the
// dropped words are zero so capacity reuse stays clean.
func (s *Storage) truncate(n int) {
	if n < len(s.words) {
		s.words = s.words[:n]
	}
}

// Word returns the word at index i. It panics if i is out of range.
func (s *Storage) Word(i int) uint64 {
	return s.words[i]
}

// SetWord replaces the word at index i. It panics if i is out of range.
func (s *Storage) SetWord(i int, w uint64) {
	s.words[i] = w
}

// ClearAll zeroes every bit and keeps the allocation.
func (s *Storage) ClearAll() {
	clear(s.words)
}

// Count returns the number of set bits.
func (s *Storage) Count() int {
	return wordops.Popcount(s.words)
}

// Any reports whether at least one bit is set.
func (s *Storage) Any() bool {
	return wordops.Any(s.words)
}

// NextSet returns the position of the first set bit at or after pos.
func (s *Storage) NextSet(pos int) (int, bool) {
	pos = max(pos, 0)
	w := pos >> wordShift
	if w >= len(s.words) {
		return 0, false
	}

	word := s.words[w] >> (uint(pos) & wordMask)
	if word != 0 {
		return pos + bits.TrailingZeros64(word), true
	}

	for w++; w < len(s.words); w++ {
		if s.words[w] != 0 {
			return w<<wordShift + bits.TrailingZeros64(s.words[w]), true
		}
	}
	return 0, false
}

// PrevSet returns the position of the last set bit at or before pos.
func (s *Storage) PrevSet(pos int) (int, bool) {
	if pos < 0 || len(s.words) == 0 {
		return 0, false
	}
	w := pos >> wordShift
	if w >= len(s.words) {
		w = len(s.words) - 1
		pos = s.Len() - 1
	}

	word := s.words[w] << (wordMask - uint(pos)&wordMask)
	if word != 0 {
		return pos - bits.LeadingZeros64(word), true
	}

	for w--; w >= 0; w-- {
		if s.words[w] != 0 {
			return w<<wordShift + wordMask - bits.LeadingZeros64(s.words[w]), true
		}
	}
	return 0, false
}

// LastSet returns the position of the highest set bit.
func (s *Storage) LastSet() (int, bool) {
	w := wordops.LastNonZero(s.words)
	if w < 0 {
		return 0, false
	}
	return w<<wordShift + wordMask - bits.LeadingZeros64(s.words[w]), true
}

// Clone returns a deep copy with the same logical length.
func (s *Storage) Clone() Storage {
	return Storage{words: append([]uint64(nil), s.words...)}
}

// Equal reports whether s and o hold the same bits once the shorter one is
// zero-extended to the length of the longer.
func (s *Storage) Equal(o *Storage) bool {
	short, long := s.words, o.words
	if len(short) > len(long) {
		short, long = long, short
	}
	for i, w := range short {
		if long[i] != w {
			return false
		}
	}
	return !wordops.Any(long[len(short):])
}

// SubsetOf reports whether every bit set in s is also set in o.
func (s *Storage) SubsetOf(o *Storage) bool {
	n := min(len(s.words), len(o.words))
	for i := range n {
		if s.words[i]&^o.words[i] != 0 {
			return false
		}
	}
	return !wordops.Any(s.words[n:])
}

// Significant returns the words up to and including the highest non-zero
// word. The returned slice aliases the storage and must not be modified.
func (s *Storage) Significant() []uint64 {
	return s.words[:wordops.LastNonZero(s.words)+1]
}
