package bitset

import "github.com/hupe1980/intset/internal/wordops"

// Op is a bitwise combining function that distributes across a word.
type Op uint8

const (
	// And keeps bits set in both operands.
	And Op = iota
	// Or keeps bits set in either operand.
	Or
	// Xor keeps bits set in exactly one operand.
	Xor
	// AndNot keeps bits set in the first operand but not the second.
	AndNot
)

// String returns the string representation of an Op.
func (op Op) String() string {
	switch op {
	case And:
		return "and"
	case Or:
		return "or"
	case Xor:
		return "xor"
	case AndNot:
		return "andnot"
	default:
		return "unknown"
	}
}

// Eval applies op to a single pair of bits.
func (op Op) Eval(a, b bool) bool {
	switch op {
	case And:
		return a && b
	case Or:
		return a || b
	case Xor:
		return a != b
	case AndNot:
		return a && !b
	default:
		panic("bitset: unknown op")
	}
}

func (op Op) kernel() func(dst, src []uint64) {
	switch op {
	case And:
		return wordops.And
	case Or:
		return wordops.Or
	case Xor:
		return wordops.Xor
	case AndNot:
		return wordops.AndNot
	default:
		panic("bitset: unknown op")
	}
}

// Merge stores op(dst, src) into dst. src is treated as zero past its own
// length and is never modified. dst grows only when bits past its end can
// become set, and shrinks only when its excess words are forced to zero.
func Merge(dst, src *Storage, op Op) {
	op.kernel()(dst.words, src.words)

	dn, sn := len(dst.words), len(src.words)
	switch {
	case dn < sn:
		// Past dst's end the result is op(false, b).
		if !op.Eval(false, false) && !op.Eval(false, true) {
			return
		}
		dst.GrowTo(sn << wordShift)
		copy(dst.words[dn:], src.words[dn:])
	case dn > sn:
		// Past src's end the result is op(a, false).
		if !op.Eval(false, false) && !op.Eval(true, false) {
			clear(dst.words[sn:])
			dst.truncate(sn)
		}
	}
}
