package sorted

import (
	"cmp"
	"slices"
)

// Search binary-searches s (sorted ascending under natural ordering) for v.
//
// Two-case result, no sign tricks:
//   - (i, true)  — s[i] == v; i is the lower bound of the equal run.
//   - (i, false) — v is absent; i is the unique index at which inserting v
//     keeps s sorted (0 ≤ i ≤ len(s)).
//
// Complexity: O(log n) comparisons, no allocations.
func Search[T cmp.Ordered](s []T, v T) (int, bool) {
	return SearchFunc(s, v, cmp.Compare[T])
}

// SearchFunc is Search under an injected Comparator instead of the natural
// ordering of T. The slice must be sorted ascending under the same rule.
func SearchFunc[T any](s []T, v T, compare Comparator[T]) (int, bool) {
	// Classic lower-bound loop: lo converges to the first index whose
	// element does not order before v.
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1) // overflow-safe midpoint
		if compare(s[mid], v) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(s) && compare(s[lo], v) == 0 {
		return lo, true
	}

	return lo, false
}

// Insert places v into s (sorted ascending under natural ordering) at the
// unique position that keeps s sorted, and returns the grown slice together
// with the index v landed at, so result[i] == v always holds.
//
// Append semantics: the backing array may be reallocated on growth, so use
// the returned slice, exactly as with the built-in append.
//
// Edge cases: an empty (or nil) slice yields index 0; inserting a duplicate
// lands it at the lower bound of the equal run (before the existing equals).
//
// Complexity: O(log n) comparisons + O(n) worst-case shift.
func Insert[T cmp.Ordered](s []T, v T) ([]T, int) {
	return InsertFunc(s, v, cmp.Compare[T])
}

// InsertFunc is Insert under an injected Comparator instead of the natural
// ordering of T. The slice must be sorted ascending under the same rule.
func InsertFunc[T any](s []T, v T, compare Comparator[T]) ([]T, int) {
	i, _ := SearchFunc(s, v, compare) // found or not, i is the landing index

	return slices.Insert(s, i, v), i
}
