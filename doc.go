// Package dsalgolab is a teaching library of classic data structures and
// algorithms, each instrumented to narrate its own execution step by
// step.
//
// 🚀 What is ds-algo-lab?
//
//	A library that pairs every operation with a trace:
//		• Sequences: array, linked list, stack, queue
//		• Trees: binary tree, binary search tree, self-balancing AVL
//		• Hash table: chaining buckets, automatic resize
//		• Graph: directed/undirected adjacency lists
//		• Traversals: BFS, DFS
//		• Sorts: bubble, insertion, selection, merge, quick, heap
//		• Searches: linear, binary, ternary, exponential
//
// ✨ Why choose ds-algo-lab?
//
//   - Every mutation notifies an attached Observer with a fresh snapshot
//   - Every algorithm yields a lazy sequence of numbered, described steps
//   - Snapshots and step payloads are defensive copies, safe to retain
//   - Algorithms resolve by registry name, so frontends can drive runs
//     with plain strings
//
// Under the hood, everything is organized under eight subpackages:
//
//	trace/     — step records, observers, snapshots: the instrumentation protocol
//	seq/       — array, singly linked list, stack & queue
//	tree/      — binary tree, BST & AVL with rotation tracing
//	hashtable/ — chaining hash table with load-factor driven resize
//	graph/     — adjacency-list graph, directed or undirected
//	traverse/  — BFS & DFS over graph/
//	sorting/   — the six sorts over seq.Array
//	searching/ — the four searches over seq.Array
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	BFS from A visits A, B, C, D and traces every discovery along the way.
//
//	go get github.com/jpcunhadias/ds-algo-lab
package dsalgolab
