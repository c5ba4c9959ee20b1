package intset

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll(t *testing.T) {
	s := mustOf(t, 64, 1, 65, 3000, 128)

	assert.Equal(t, []int{1, 64, 65, 128, 3000}, slices.Collect(s.All()))

	// Restartable.
	assert.Equal(t, []int{1, 64, 65, 128, 3000}, slices.Collect(s.All()))

	var firstTwo []int
	for n := range s.All() {
		firstTwo = append(firstTwo, n)
		if len(firstTwo) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 64}, firstTwo)

	assert.Empty(t, slices.Collect(New().All()))
}

func TestBackward(t *testing.T) {
	s := mustOf(t, 1, 64, 65, 3000)
	assert.Equal(t, []int{3000, 65, 64, 1}, slices.Collect(s.Backward()))
	assert.Empty(t, slices.Collect(New().Backward()))

	var got []int
	for n := range s.Backward() {
		got = append(got, n)
		break
	}
	assert.Equal(t, []int{3000}, got)
}

func TestIterator(t *testing.T) {
	s := mustOf(t, 2, 70, 71)
	it := s.Iterator()

	var got []int
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		got = append(got, n)
	}
	assert.Equal(t, []int{2, 70, 71}, got)

	_, ok := it.Next()
	assert.False(t, ok, "exhausted iterator stays exhausted")

	it.Reset()
	n, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	it.Seek(70)
	n, ok = it.Next()
	assert.True(t, ok)
	assert.Equal(t, 70, n)

	it.Seek(72)
	_, ok = it.Next()
	assert.False(t, ok)

	it.Seek(-10)
	n, ok = it.Next()
	assert.True(t, ok)
	assert.Equal(t, 2, n)
}
