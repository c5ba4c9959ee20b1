// Package wordops provides word-parallel kernels over []uint64 bit arrays.
//
// Kernels are dispatched through package-level function pointers. The generic
// implementations are the default; platform init functions swap in variants
// when the CPU reports the required features (see capability_*.go).
//
// All binary kernels operate on min(len(dst), len(src)) words. Callers are
// responsible for reconciling lengths.
package wordops
