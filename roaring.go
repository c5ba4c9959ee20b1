package intset

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/intset/internal/conv"
)

// ToRoaring returns the elements as a compressed roaring64 bitmap. Use it
// to hand sparse data to code that should not pay for a dense bit vector.
func (s *IntSet) ToRoaring() *roaring64.Bitmap {
	rb := roaring64.New()
	for n := range s.All() {
		// Elements are positive, so the conversion cannot fail.
		v, _ := conv.IntToUint64(n)
		rb.Add(v)
	}
	rb.RunOptimize()
	return rb
}

// FromRoaring creates an IntSet from a roaring64 bitmap. Values are added
// in ascending order; zero or a value above MaxElement stops the load with
// an error matching ErrDomain, keeping the smaller values.
func FromRoaring(rb *roaring64.Bitmap, opts ...Option) (*IntSet, error) {
	s := New(opts...)
	if rb.IsEmpty() {
		return s, nil
	}
	if hi, err := conv.Uint64ToInt(rb.Maximum()); err == nil {
		s.bits.Reserve(hi)
	}

	it := rb.Iterator()
	for it.HasNext() {
		v := it.Next()
		n, err := conv.Uint64ToInt(v)
		if err != nil {
			return s, fmt.Errorf("intset: from roaring: %w: %w", ErrDomain, err)
		}
		if err := s.Push(n); err != nil {
			return s, err
		}
	}
	return s, nil
}
