// Package search locates values in Go slices.
//
//	Linear  — any slice, first occurrence, O(n)
//	Binary  — non-decreasing slice, leftmost occurrence, O(log n)
//	Ternary — non-decreasing slice, some occurrence, O(log₃ n) rounds
//
// Every function returns a zero-based index or NotFound (-1), and none
// mutates its input. Binary and Ternary assume s is sorted by the same
// ordering used for the lookup; on unsorted input the result is unspecified
// but always NotFound or a valid index.
package search
