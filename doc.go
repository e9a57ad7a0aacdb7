// Package lvlsort is an in-memory playground of classical comparison sorts
// and searches over ordinary Go slices.
//
// 🚀 What is inside?
//
//	order/   — the Less contract, Natural/Reverse/By orderings, range checks
//	sorting/ — Bubble, Selection, Insertion, Merge and randomized Quick sort
//	search/  — Linear, Binary and Ternary search with the NotFound sentinel
//	cmd/sortbench — generate inputs, run every sort, verify and log timings
//
// ✨ Guarantees:
//
//   - In place – sorts mutate the caller's slice; only Merge allocates scratch
//   - No I/O – the library never prints or logs
//   - Explicit contracts – bad ranges and nil comparators return errors
//   - Reproducible – QuickSort pivots come from an injectable, seedable source
//
// Quick example:
//
//	s := []int{31, 4, 88, 1, 4, 2, 42}
//	sorting.Merge(s)              // [1 2 4 4 31 42 88]
//	i := search.Binary(s, 31)     // 4
//
//	go get github.com/katalvlaran/lvlsort
package lvlsort
