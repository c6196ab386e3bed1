// Package graph implements the adjacency-list graph container consumed by
// the traverse package.
//
// What
//
//   - Graph: directed or undirected (WithDirected), with optional per-edge
//     float64 weights.
//   - Vertices are string IDs, created implicitly on first reference by
//     AddEdge; adjacency lists preserve edge insertion order, which makes
//     BFS/DFS visit order fully deterministic.
//   - Undirected edges materialize both directions in the adjacency lists;
//     traversal code never needs to know the graph's directedness.
//   - RemoveVertex strips the vertex from every other adjacency list.
//
// Not-found conditions (removing an absent vertex or edge) report false,
// never an error. Neighbors and Snapshot hand out copies only.
//
// Complexity (V = vertices, E = edges)
//
//   - AddVertex/AddEdge: O(deg) for the duplicate check
//   - RemoveVertex: O(V + E)
//   - Neighbors: O(deg) copy
package graph
