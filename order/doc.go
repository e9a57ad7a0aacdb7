// Package order defines the total-ordering contract shared by the sorting
// and searching packages of lvlsort.
//
// 🚀 What is an ordering?
//
//	A Less[T] reports whether a must come strictly before b. It must be a
//	strict weak ordering: irreflexive, transitive, and with "neither less"
//	being an equivalence. Two elements are considered equal when
//	!less(a, b) && !less(b, a).
//
// ✨ Helpers:
//   - Natural — the built-in < operator for any constraints.Ordered type
//   - Reverse — flips an ordering (descending sorts)
//   - By      — orders records by an extracted key
//   - IsSorted / IsSortedFunc — non-decreasing check
//   - CheckRange — validates a half-open [left, right) range
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlsort/order"
//
//	byAge := order.By(func(p Person) int { return p.Age })
//	_ = sorting.MergeFunc(people, byAge)
//
// Ranges:
//
//	Every range in lvlsort is half-open: [left, right) with
//	0 <= left <= right <= len(s). An empty range (left == right) is valid.
package order
