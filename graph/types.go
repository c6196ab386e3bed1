// Package graph: Neighbor/Edge records, construction options, snapshot.
package graph

// Neighbor is one adjacency entry: the far endpoint and its optional
// weight. Weighted is false for edges added without a weight.
type Neighbor struct {
	ID       string
	Weight   float64
	Weighted bool
}

// Edge is one edge in a full-graph enumeration. In undirected graphs each
// edge appears once, oriented by insertion order.
type Edge struct {
	From     string
	To       string
	Weight   float64
	Weighted bool
}

// Option configures a Graph before first use.
type Option func(*Graph)

// WithDirected sets whether edges are one-way (true) or bidirectional
// (false, the default).
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// Snapshot is the immutable view of a Graph: vertex order, per-vertex
// adjacency copies, and the deduplicated edge list.
type Snapshot struct {
	Directed  bool
	Vertices  []string
	Adjacency map[string][]Neighbor
	Edges     []Edge
}

// Kind returns "graph".
func (Snapshot) Kind() string { return "graph" }

// Size returns the captured vertex count.
func (s Snapshot) Size() int { return len(s.Vertices) }
