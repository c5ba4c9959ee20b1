package intset_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/intset"
)

// Example_basic demonstrates building a set and walking it in order.
func Example_basic() {
	s, err := intset.Of(3, 1, 1000)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(s.Len(), s.Contains(3), s.Contains(4))
	for n := range s.All() {
		fmt.Println(n)
	}
	fmt.Println(s)
	// Output:
	// 3 true false
	// 1
	// 3
	// 1000
	// IntSet([1, 3, 1000])
}

// Example_algebra demonstrates the copying set operations.
func Example_algebra() {
	a, _ := intset.Of(1, 2, 3)
	b, _ := intset.Of(2, 3, 4)

	fmt.Println(a.Union(b))
	fmt.Println(a.Intersect(b))
	fmt.Println(a.Difference(b))
	fmt.Println(a.SymmetricDifference(b))
	// Output:
	// IntSet([1, 2, 3, 4])
	// IntSet([2, 3])
	// IntSet([1])
	// IntSet([1, 4])
}

// Example_errors demonstrates the error taxonomy.
func Example_errors() {
	s := intset.New()

	err := s.Push(0)
	fmt.Println(errors.Is(err, intset.ErrDomain))

	_, err = s.First()
	fmt.Println(errors.Is(err, intset.ErrNotFound))

	_, err = s.Pop(42)
	fmt.Println(err)
	// Output:
	// true
	// true
	// intset: pop 42: element not found
}

// Example_unionAll demonstrates a parallel union of many sets.
func Example_unionAll() {
	var sets []*intset.IntSet
	for i := 1; i <= 4; i++ {
		s, _ := intset.Of(i, i*10)
		sets = append(sets, s)
	}

	u, err := intset.UnionAll(context.Background(), sets...)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(u)
	// Output: IntSet([1, 2, 3, 4, 10, 20, 30, 40])
}
