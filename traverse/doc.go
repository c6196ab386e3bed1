// Package traverse implements breadth-first and depth-first traversal over
// a graph.Graph, each producing a complete step trace.
//
// What
//
//   - BFS(g, start): FIFO frontier; a vertex is marked visited when first
//     discovered (enqueued), never at dequeue time, so no vertex is
//     enqueued twice. Visits vertices in non-decreasing edge distance
//     from start.
//   - DFS(g, start): explicit stack, no call-stack recursion, so very deep
//     graphs cannot overflow. Neighbors are pushed in reverse adjacency
//     order so they are visited left to right; popping an already-visited
//     vertex emits a backtracking step and is skipped.
//   - Both return a trace.Sequence[Detail]; drain with trace.Collect or
//     the Execute helper. Neighbor order follows the graph's stored
//     adjacency order, so traversals are deterministic.
//
// Step phases
//
//	BFS: initializing → (dequeuing → exploring → discovering...)* → complete
//	DFS: initializing → (visiting → exploring → discovering... |
//	     backtracking)* → complete
//
// Edge cases
//
//	A start vertex absent from the graph produces an empty sequence — not
//	an error. Traversal is direction-agnostic: undirected adjacency is
//	already materialized both ways by the Graph container.
//
// Registry
//
//	Lookup("bfs") / Lookup("dfs") resolve implementations by name for
//	string-dispatching callers; Execute(name, g, start, observe) drains
//	the chosen algorithm in one call. Unknown names return
//	ErrUnknownAlgorithm.
//
// Complexity (V = vertices, E = edges)
//
//   - Time: O(V + E) traversal; each step snapshot costs O(V + E) more,
//     the price of a fully replayable trace.
//   - Memory: O(V) frontier and visited bookkeeping.
package traverse
