package intset

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/intset/testutil"
)

func TestAlgebra_Scenario(t *testing.T) {
	a := mustOf(t, 1, 2, 3)
	b := mustOf(t, 2, 3, 4)

	assert.Equal(t, []int{1, 2, 3, 4}, a.Union(b).Slice())
	assert.Equal(t, []int{2, 3}, a.Intersect(b).Slice())
	assert.Equal(t, []int{1}, a.Difference(b).Slice())
	assert.Equal(t, []int{1, 4}, a.SymmetricDifference(b).Slice())

	// Copying forms leave their operands alone.
	assert.Equal(t, []int{1, 2, 3}, a.Slice())
	assert.Equal(t, []int{2, 3, 4}, b.Slice())
}

func TestAlgebra_InPlace(t *testing.T) {
	tests := []struct {
		name  string
		apply func(a, b *IntSet)
		want  []int
	}{
		{"union", (*IntSet).UnionWith, []int{1, 2, 3, 4}},
		{"intersect", (*IntSet).IntersectWith, []int{2, 3}},
		{"difference", (*IntSet).DifferenceWith, []int{1}},
		{"symmetric difference", (*IntSet).SymmetricDifferenceWith, []int{1, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustOf(t, 1, 2, 3)
			b := mustOf(t, 2, 3, 4)

			tt.apply(a, b)

			assert.Equal(t, tt.want, a.Slice())
			assert.Equal(t, []int{2, 3, 4}, b.Slice(), "other operand must not change")
		})
	}
}

func TestAlgebra_Commutative(t *testing.T) {
	rng := testutil.NewRNG(7)

	for range 30 {
		a := mustOf(t, rng.Ints(rng.Intn(80), 1+rng.Intn(3000))...)
		b := mustOf(t, rng.Ints(rng.Intn(80), 1+rng.Intn(3000))...)

		assert.True(t, a.Union(b).Equal(b.Union(a)))
		assert.True(t, a.Intersect(b).Equal(b.Intersect(a)))
		assert.True(t, a.SymmetricDifference(b).Equal(b.SymmetricDifference(a)))
	}
}

func TestAlgebra_AgainstReferenceModels(t *testing.T) {
	rng := testutil.NewRNG(99)

	toBitSet := func(values []int) *bitset.BitSet {
		bs := bitset.New(0)
		for _, v := range values {
			bs.Set(uint(v))
		}
		return bs
	}
	collect := func(bs *bitset.BitSet) []int {
		out := []int{}
		for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
			out = append(out, int(i))
		}
		return out
	}

	for range 50 {
		av := rng.Ints(rng.Intn(100), 1+rng.Intn(2000))
		bv := append(rng.Ints(rng.Intn(100), 1+rng.Intn(2000)), rng.Clustered(2, 16, 4000)...)

		a, b := mustOf(t, av...), mustOf(t, bv...)
		ra, rb := testutil.NewRefSet(av...), testutil.NewRefSet(bv...)
		ba, bb := toBitSet(av), toBitSet(bv)

		tests := []struct {
			got  *IntSet
			ref  testutil.RefSet
			bits *bitset.BitSet
		}{
			{a.Union(b), ra.Union(rb), ba.Union(bb)},
			{a.Intersect(b), ra.Intersect(rb), ba.Intersection(bb)},
			{a.Difference(b), ra.Difference(rb), ba.Difference(bb)},
			{a.SymmetricDifference(b), ra.SymmetricDifference(rb), ba.SymmetricDifference(bb)},
		}
		for _, tt := range tests {
			require.Equal(t, tt.ref.Sorted(), tt.got.Slice())
			require.Equal(t, collect(tt.bits), tt.got.Slice())
			require.Equal(t, int(tt.bits.Count()), tt.got.Len())
		}
	}
}

func TestAlgebra_MismatchedLengths(t *testing.T) {
	short := mustOf(t, 1, 5)
	long := mustOf(t, 2, 5, 10_000, 20_000)
	require.Less(t, short.bits.Words(), long.bits.Words())

	check := func(t *testing.T, got *IntSet, want func(n int) bool) {
		t.Helper()
		for n := 1; n <= 20_000+256; n++ {
			if got.Contains(n) != want(n) {
				t.Fatalf("Contains(%d) = %v, want %v", n, got.Contains(n), want(n))
			}
		}
	}

	t.Run("short union long", func(t *testing.T) {
		u := short.Union(long)
		check(t, u, func(n int) bool { return short.Contains(n) || long.Contains(n) })
		assert.Equal(t, long.bits.Words(), u.bits.Words())
	})

	t.Run("long union short keeps tail", func(t *testing.T) {
		u := long.Union(short)
		check(t, u, func(n int) bool { return short.Contains(n) || long.Contains(n) })
		assert.Equal(t, long.bits.Words(), u.bits.Words())
	})

	t.Run("short intersect long stays short", func(t *testing.T) {
		s := short.Clone()
		s.IntersectWith(long)
		check(t, s, func(n int) bool { return n == 5 })
		assert.Equal(t, short.bits.Words(), s.bits.Words())
	})

	t.Run("long intersect short trims", func(t *testing.T) {
		s := long.Clone()
		s.IntersectWith(short)
		check(t, s, func(n int) bool { return n == 5 })
		assert.Equal(t, short.bits.Words(), s.bits.Words())
	})

	t.Run("short difference long stays short", func(t *testing.T) {
		s := short.Clone()
		s.DifferenceWith(long)
		check(t, s, func(n int) bool { return n == 1 })
		assert.Equal(t, short.bits.Words(), s.bits.Words())
	})

	t.Run("short symmetric difference long grows", func(t *testing.T) {
		s := short.Clone()
		s.SymmetricDifferenceWith(long)
		check(t, s, func(n int) bool { return short.Contains(n) != long.Contains(n) })
	})
}

func TestIntersect_ClonesShorterOperand(t *testing.T) {
	short := mustOf(t, 3, 64)
	long := mustOf(t, 3, 9000)

	for _, got := range []*IntSet{short.Intersect(long), long.Intersect(short)} {
		assert.Equal(t, []int{3}, got.Slice())
		assert.Equal(t, short.bits.Words(), got.bits.Words())
	}
	assert.Equal(t, []int{3, 9000}, long.Slice())
	assert.Equal(t, []int{3, 64}, short.Slice())
}

func TestAlgebra_WithSelf(t *testing.T) {
	s := mustOf(t, 4, 8)

	s.UnionWith(s)
	assert.Equal(t, []int{4, 8}, s.Slice())

	s.IntersectWith(s)
	assert.Equal(t, []int{4, 8}, s.Slice())

	s.SymmetricDifferenceWith(s)
	assert.True(t, s.IsEmpty())
}

func TestAlgebra_RecordsMetrics(t *testing.T) {
	mc := &BasicMetricsCollector{}
	a := New(WithMetrics(mc))
	require.NoError(t, a.Push(1))
	b := mustOf(t, 1, 5000)

	a.UnionWith(b)
	a.IntersectWith(mustOf(t, 1))

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.MergeCount)
	assert.Equal(t, int64(2), stats.GrowCount) // push, then union
	assert.Equal(t, int64(1), stats.ShrinkCount)
	assert.Equal(t, int64(1), stats.WordsAllocated)
}
