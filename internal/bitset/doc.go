// Package bitset provides the growable bit storage behind intset.
//
// Architecture:
//   - Flat []uint64 words, bit i lives in word i>>6 at mask 1<<(i&63)
//   - Logical length is always a whole number of words
//   - Clean tail: every word exposed by growth is zeroed before use
//   - Merge combines two storages of different lengths as if the shorter
//     one were zero-extended to infinity
//
// Storage is not safe for concurrent mutation.
package bitset
