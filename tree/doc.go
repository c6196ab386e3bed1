// Package tree implements the hierarchical containers of ds-algo-lab:
// a plain binary tree, a binary search tree, and a self-balancing AVL tree,
// all generic over ordered element types.
//
// What
//
//   - Binary[T]: level-order insertion into the first free slot, full-tree
//     search, deletion by splicing in the deepest rightmost node.
//   - BST[T]: recursive insert/search/delete honoring the ordering
//     invariant (left strictly less, right strictly greater), plus
//     Min/Max and Successor/Predecessor.
//   - AVL[T]: BST operations with bottom-up rebalancing on every
//     insertion/deletion path; four rotation cases (LL, RR, LR, RL) built
//     from constant-time rotateLeft/rotateRight pointer rebinding.
//   - Four traversal orders on every tree: InOrder, PreOrder, PostOrder,
//     LevelOrder.
//
// Invariants
//
//   - BST/AVL ordering: an in-order traversal always yields a strictly
//     increasing sequence. Inserting a value already present is a silent
//     no-op, not an error or overwrite; callers wanting upsert semantics
//     must check Search first.
//   - AVL balance: |height(left) - height(right)| <= 1 at every node,
//     where an absent child has height -1. A balance factor outside
//     [-2, 2] during rebalancing indicates an internal bug and panics.
//
// Heights are recomputed recursively rather than cached on nodes; the
// teaching goal is rotation correctness, not asymptotic height cost.
//
// Errors
//
//	Delete of an absent value returns false with no mutation. Search of an
//	absent value returns nil. No tree operation returns an error.
//
// Complexity (n = tree size, h = height)
//
//   - BST insert/search/delete: O(h), worst O(n)
//   - AVL insert/search/delete: O(h^2) here due to recursive heights;
//     h stays O(log n) by the balance invariant
//   - Traversals: O(n)
package tree
