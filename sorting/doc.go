// Package sorting implements six comparison sorts over a seq.Array, each
// producing a complete step trace: bubble, insertion, selection, merge,
// quick, and heap sort.
//
// What
//
//	Each algorithm is a constructor func(arr) trace.Sequence[Detail]; the
//	sequence mutates arr in place as it is drained and snapshots the
//	array after every mutation, so a consumer can reconstruct every
//	intermediate state purely from the steps. Every run ends with a final
//	step marking all indices sorted.
//
// Stability
//
//   - Stable: bubble (strict > comparison, equal keys never swap),
//     insertion (shift only while strictly greater), merge (<= prefers
//     the left half).
//   - Not stable: selection, quick, heap.
//
// Algorithm notes
//
//   - Bubble sort exits early when a full pass performs no swap.
//   - Quick sort pivots on the last element of each partition range and
//     partitions Lomuto-style.
//   - Merge sort is not in-place: each merge allocates left/right
//     temporaries and writes the array element by element, so mid-merge
//     states are externally visible.
//   - Heap sort builds a max-heap bottom-up from the last non-leaf node,
//     then repeatedly swaps the root with the last unsorted element and
//     re-heapifies.
//
// Registry
//
//	Lookup[T]("bubble_sort" | "insertion_sort" | "selection_sort" |
//	"merge_sort" | "quick_sort" | "heap_sort") resolves by name;
//	Execute runs and drains in one call. Unknown names return
//	ErrUnknownAlgorithm.
//
// Complexity (n = array length)
//
//   - bubble/insertion/selection: O(n^2)
//   - merge/heap: O(n log n); quick: O(n log n) average, O(n^2) worst
package sorting
