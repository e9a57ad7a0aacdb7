// Package sorting implements classical comparison sorts over Go slices.
//
// 🚀 Algorithms:
//
//	Bubble    — adjacent swaps, early exit on a clean pass. Stable.
//	            Time O(n²), best O(n) on sorted input. Memory O(1).
//	Selection — leftmost minimum of the suffix swapped into place. Not stable.
//	            Time O(n²) in every case. Memory O(1).
//	Insertion — shifts greater elements right, inserts the key. Stable.
//	            Time O(n²), best O(n). Memory O(1).
//	Merge     — midpoint split, merge through per-step buffers. Stable.
//	            Time O(n log n). Memory O(n) peak.
//	Quick     — random pivot, converging-cursor partition. Not stable.
//	            Time O(n log n) expected, O(n²) worst. Stack O(log n).
//
// ✨ Entry points (X is any of the names above):
//
//	X(s)                           — natural order, in place, no result
//	XFunc(s, less)                 — caller ordering, ErrNilLess on nil
//	XRange(s, left, right, less)   — sorts s[left:right] only, half-open
//
// QuickFunc and QuickRange also accept Options that control pivot sampling:
//
//	_ = sorting.QuickFunc(s, order.Natural[int], sorting.WithSeed(42))
//
// Every sort leaves s a permutation of its input. Invalid ranges and nil
// comparators are reported before any element is touched.
package sorting
