// Package searching implements four searches over a seq.Array, each
// producing a complete step trace: linear, binary, ternary, and
// exponential search.
//
// What
//
//	Each algorithm is a constructor func(arr, target) returning a lazy
//	trace.Sequence[Detail[T]]. Searches never mutate the array; every
//	step carries the live search window (Left/Right, plus probe indices)
//	so a consumer can replay the narrowing visually. A found target is
//	reported with FoundIndex set; exhaustion ends with a "not found"
//	step where FoundIndex stays NoIndex.
//
// Preconditions
//
//	Binary, ternary, and exponential search require the array to be
//	sorted ascending. None of them validate this; on unsorted input the
//	result is unspecified, matching the usual contract of comparison
//	searches. Linear search works on any ordering.
//
// Algorithm notes
//
//   - Binary search probes (left+right)/2 and halves the window.
//   - Ternary search probes two cut points at one- and two-thirds of the
//     window and keeps one of three sub-windows.
//   - Exponential search doubles a probe index until it overshoots the
//     target, then binary-searches the bracketed range [i/2, min(i, n-1)].
//     Steps are tagged with a Phase so the two regimes are
//     distinguishable.
//
// Registry
//
//	Lookup[T]("linear_search" | "binary_search" | "ternary_search" |
//	"exponential_search") resolves by name; Execute runs and drains in
//	one call. Unknown names return ErrUnknownAlgorithm.
//
// Complexity (n = array length)
//
//   - linear: O(n)
//   - binary/exponential: O(log n); ternary: O(log n) with more probes
package searching
