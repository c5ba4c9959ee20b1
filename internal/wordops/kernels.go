package wordops

import "math/bits"

var (
	kernelAnd      = andWords
	kernelAndNot   = andNotWords
	kernelOr       = orWords
	kernelXor      = xorWords
	kernelPopcount = popcountWordsSWAR
)

// And performs dst[i] &= src[i].
func And(dst, src []uint64) { kernelAnd(dst, src) }

// AndNot performs dst[i] &^= src[i].
func AndNot(dst, src []uint64) { kernelAndNot(dst, src) }

// Or performs dst[i] |= src[i].
func Or(dst, src []uint64) { kernelOr(dst, src) }

// Xor performs dst[i] ^= src[i].
func Xor(dst, src []uint64) { kernelXor(dst, src) }

// Popcount counts all set bits across words.
func Popcount(words []uint64) int { return kernelPopcount(words) }

// Any reports whether any word is non-zero.
func Any(words []uint64) bool {
	var acc uint64
	i := 0
	for ; i+4 <= len(words); i += 4 {
		acc |= words[i] | words[i+1] | words[i+2] | words[i+3]
		if acc != 0 {
			return true
		}
	}
	for ; i < len(words); i++ {
		acc |= words[i]
	}
	return acc != 0
}

// LastNonZero returns the index of the highest non-zero word, or -1.
func LastNonZero(words []uint64) int {
	for i := len(words) - 1; i >= 0; i-- {
		if words[i] != 0 {
			return i
		}
	}
	return -1
}

func andWords(dst, src []uint64) {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] &= src[i]
		dst[i+1] &= src[i+1]
		dst[i+2] &= src[i+2]
		dst[i+3] &= src[i+3]
	}
	for ; i < n; i++ {
		dst[i] &= src[i]
	}
}

func andNotWords(dst, src []uint64) {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] &^= src[i]
		dst[i+1] &^= src[i+1]
		dst[i+2] &^= src[i+2]
		dst[i+3] &^= src[i+3]
	}
	for ; i < n; i++ {
		dst[i] &^= src[i]
	}
}

func orWords(dst, src []uint64) {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] |= src[i]
		dst[i+1] |= src[i+1]
		dst[i+2] |= src[i+2]
		dst[i+3] |= src[i+3]
	}
	for ; i < n; i++ {
		dst[i] |= src[i]
	}
}

func xorWords(dst, src []uint64) {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] ^= src[i]
		dst[i+1] ^= src[i+1]
		dst[i+2] ^= src[i+2]
		dst[i+3] ^= src[i+3]
	}
	for ; i < n; i++ {
		dst[i] ^= src[i]
	}
}

// popcountWordsNative relies on the hardware population count instruction
// that math/bits lowers to when the CPU has one.
func popcountWordsNative(words []uint64) int {
	count := 0
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += bits.OnesCount64(words[i])
		count += bits.OnesCount64(words[i+1])
		count += bits.OnesCount64(words[i+2])
		count += bits.OnesCount64(words[i+3])
	}
	for ; i < len(words); i++ {
		count += bits.OnesCount64(words[i])
	}
	return count
}

const (
	m1  = 0x5555555555555555
	m2  = 0x3333333333333333
	m4  = 0x0f0f0f0f0f0f0f0f
	h01 = 0x0101010101010101
)

// popcountWordsSWAR is the branch-free fallback for CPUs without POPCNT.
func popcountWordsSWAR(words []uint64) int {
	count := 0
	for _, x := range words {
		x -= (x >> 1) & m1
		x = (x & m2) + ((x >> 2) & m2)
		x = (x + (x >> 4)) & m4
		count += int((x * h01) >> 56)
	}
	return count
}
