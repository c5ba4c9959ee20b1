// Package conv provides checked conversions between int and uint64.
//
// They guard the boundary between intset elements (positive int) and
// external representations keyed by uint64, such as roaring64 bitmaps.
package conv
