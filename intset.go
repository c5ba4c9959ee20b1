package intset

import (
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/hupe1980/intset/internal/bitset"
)

// MaxElement is the largest value an IntSet can hold.
//
// Push and Toggle share this inclusive bound. Storage for an element n
// costs n bits, so values near the bound are only theoretically reachable.
const MaxElement = math.MaxInt

// OrderedSet is the read-only capability shared by ordered integer sets.
type OrderedSet interface {
	Contains(n int) bool
	Len() int
	All() iter.Seq[int]
	Hash() uint64
	String() string
}

var _ OrderedSet = (*IntSet)(nil)

// IntSet is a set of positive integers backed by a growable bit vector.
//
// Element n is stored at bit n-1. Memory is proportional to the largest
// element, so IntSet suits dense sets of small IDs; use ToRoaring for
// sparse data.
//
// An IntSet is not safe for concurrent mutation. The zero value is an
// empty set ready to use.
type IntSet struct {
	bits bitset.Storage
	opts *options
}

// New creates an empty IntSet.
func New(opts ...Option) *IntSet {
	o := buildOptions(opts)
	s := &IntSet{opts: &o}
	if o.capacity > 0 {
		s.bits.Reserve(o.capacity)
	}
	return s
}

// Of creates an IntSet holding values. It stops at the first invalid
// value and returns the set built so far together with the error.
func Of(values ...int) (*IntSet, error) {
	s := New()
	return s, s.PushAll(values...)
}

// FromSeq creates an IntSet from a sequence of values, with the same
// stop-at-first-error behavior as Of.
func FromSeq(seq iter.Seq[int], opts ...Option) (*IntSet, error) {
	s := New(opts...)
	for n := range seq {
		if err := s.Push(n); err != nil {
			return s, err
		}
	}
	return s, nil
}

func (s *IntSet) options() *options {
	if s.opts == nil {
		o := defaultOptions()
		s.opts = &o
	}
	return s.opts
}

// observe reports a storage size change made by op.
func (s *IntSet) observe(op string, oldWords int) {
	newWords := s.bits.Words()
	if newWords == oldWords {
		return
	}
	o := s.options()
	o.logger.LogResize(op, oldWords, newWords)
	o.metricsCollector.RecordResize(op, oldWords, newWords)
}

// Push adds n to the set.
func (s *IntSet) Push(n int) error {
	if err := checkElement("push", n); err != nil {
		return err
	}
	before := s.bits.Words()
	s.bits.Set(n-1, true)
	s.observe("push", before)
	return nil
}

// PushAll adds each value in order. Every value is validated and applied
// before the next one; on the first invalid value PushAll returns its
// error and the values before it remain in the set.
func (s *IntSet) PushAll(values ...int) error {
	for _, n := range values {
		if err := s.Push(n); err != nil {
			return err
		}
	}
	return nil
}

// Contains reports whether n is in the set. It is false for n < 1.
func (s *IntSet) Contains(n int) bool {
	return n >= 1 && s.bits.Get(n-1)
}

// ContainsAll reports whether every value is in the set.
func (s *IntSet) ContainsAll(values ...int) bool {
	for _, n := range values {
		if !s.Contains(n) {
			return false
		}
	}
	return true
}

// Delete removes n if present. Values that are not positive or lie past
// the storage are ignored without allocating.
func (s *IntSet) Delete(n int) {
	if n < 1 {
		return
	}
	s.bits.Set(n-1, false)
}

// Pop removes n and returns it. It returns a *LookupError if n is absent.
func (s *IntSet) Pop(n int) (int, error) {
	if !s.Contains(n) {
		return 0, &LookupError{Op: "pop", Value: n}
	}
	s.bits.Set(n-1, false)
	return n, nil
}

// PopOr removes and returns n if present, otherwise it returns fallback.
func (s *IntSet) PopOr(n, fallback int) int {
	if v, err := s.Pop(n); err == nil {
		return v
	}
	return fallback
}

// PopMax removes and returns the largest element.
func (s *IntSet) PopMax() (int, error) {
	pos, ok := s.bits.LastSet()
	if !ok {
		return 0, ErrEmpty
	}
	s.bits.Set(pos, false)
	return pos + 1, nil
}

// Toggle adds n if absent and removes it if present. It is the single
// element form of SymmetricDifferenceWith and runs in O(1).
func (s *IntSet) Toggle(n int) error {
	if err := checkElement("toggle", n); err != nil {
		return err
	}
	before := s.bits.Words()
	s.bits.Toggle(n - 1)
	s.observe("toggle", before)
	return nil
}

// Clear removes every element and keeps the allocated storage.
func (s *IntSet) Clear() {
	s.bits.ClearAll()
}

// IsEmpty reports whether the set has no elements.
func (s *IntSet) IsEmpty() bool {
	return !s.bits.Any()
}

// Len returns the number of elements. It counts bits on every call, so
// callers that need the size repeatedly should keep it.
func (s *IntSet) Len() int {
	return s.bits.Count()
}

// Cap returns the largest element that can be added without growing the
// storage.
func (s *IntSet) Cap() int {
	return s.bits.Cap()
}

// First returns the smallest element.
func (s *IntSet) First() (int, error) {
	pos, ok := s.bits.NextSet(0)
	if !ok {
		return 0, ErrEmpty
	}
	return pos + 1, nil
}

// Last returns the largest element.
func (s *IntSet) Last() (int, error) {
	pos, ok := s.bits.LastSet()
	if !ok {
		return 0, ErrEmpty
	}
	return pos + 1, nil
}

// Clone returns a deep copy that shares the options of s.
func (s *IntSet) Clone() *IntSet {
	return &IntSet{
		bits: s.bits.Clone(),
		opts: s.opts,
	}
}

// String renders the set as IntSet([e0, e1, ...]) in ascending order.
func (s *IntSet) String() string {
	var sb strings.Builder
	sb.WriteString("IntSet([")
	first := true
	for n := range s.All() {
		if !first {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(n))
		first = false
	}
	sb.WriteString("])")
	return sb.String()
}

// Slice returns the elements in ascending order.
func (s *IntSet) Slice() []int {
	out := make([]int, 0, s.Len())
	for n := range s.All() {
		out = append(out, n)
	}
	return out
}
