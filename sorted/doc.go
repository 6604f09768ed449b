// Package sorted provides order-preserving insertion into already-sorted
// slices, located by binary search.
//
// 🚀 What is sorted?
//
//	Callers maintaining a sorted in-memory slice (priority lists, sweep-line
//	event queues, ordered indexes) need one operation done right: put a new
//	value where it belongs and learn where it landed. sorted does exactly
//	that — O(log n) comparisons to find the spot, one shift to place it.
//
// ✨ Key features:
//   - Insert / InsertFunc — insert a value, keep the slice sorted, return
//     the landing index
//   - Search / SearchFunc — explicit two-case binary search: either
//     "found at index" or "insertion point is index", never an encoded
//     integer trick
//   - natural ordering via cmp.Ordered, or an injected three-way Comparator
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlkit/sorted"
//
//	s := []int{1, 3, 5, 7}
//	s, i := sorted.Insert(s, 4)
//	// s == [1 3 4 5 7], i == 2
//
// Contract: the input slice must already be sorted under the same rule you
// pass in. That invariant belongs to the caller — it is not validated, and
// calling with an unsorted slice or a comparator inconsistent with the prior
// sort yields an undefined (but memory-safe) result.
//
// Performance:
//
//   - Search: O(log n) comparisons, zero allocations
//   - Insert: O(log n) comparisons + O(n) element shift, at most one
//     reallocation (append semantics)
//
// Among runs of equal elements the landing position is the lower bound of
// the run; relative order against pre-existing equal elements is not part
// of the contract.
package sorted
