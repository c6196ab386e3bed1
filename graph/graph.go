package graph

import (
	"slices"

	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// Graph is an adjacency-list graph over string vertex IDs. Vertex order
// and per-vertex adjacency order follow insertion order.
type Graph struct {
	directed  bool
	adjacency map[string][]Neighbor
	order     []string
	obs       trace.Observer
}

// New creates an empty Graph, undirected unless WithDirected(true).
// Complexity: O(1)
func New(opts ...Option) *Graph {
	g := &Graph{adjacency: make(map[string][]Neighbor)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Attach registers obs to receive mutation events. Passing nil detaches.
func (g *Graph) Attach(obs trace.Observer) {
	g.obs = obs
	g.notify(trace.KindInit)
}

// Observer returns the currently attached observer, or nil.
func (g *Graph) Observer() trace.Observer { return g.obs }

func (g *Graph) notify(kind trace.Kind) {
	if g.obs != nil {
		g.obs.OnEvent(kind, g.Snapshot())
	}
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// AddVertex registers id if not already present.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) {
	if g.addVertex(id) {
		g.notify(trace.KindAddVertex)
	}
}

func (g *Graph) addVertex(id string) bool {
	if _, ok := g.adjacency[id]; ok {
		return false
	}
	g.adjacency[id] = nil
	g.order = append(g.order, id)

	return true
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adjacency[id]

	return ok
}

// RemoveVertex deletes id along with every edge touching it, stripping it
// from all other adjacency lists. Returns false if id is absent.
// Complexity: O(V + E)
func (g *Graph) RemoveVertex(id string) bool {
	if !g.HasVertex(id) {
		return false
	}

	delete(g.adjacency, id)
	g.order = slices.DeleteFunc(g.order, func(v string) bool { return v == id })
	for v, nbrs := range g.adjacency {
		g.adjacency[v] = slices.DeleteFunc(nbrs, func(n Neighbor) bool { return n.ID == id })
	}
	g.notify(trace.KindRemoveVertex)

	return true
}

// AddEdge connects from and to without a weight, creating either vertex
// as needed. In an undirected graph both directions are inserted.
// Duplicate edges are ignored.
// Complexity: O(deg)
func (g *Graph) AddEdge(from, to string) {
	g.addEdge(from, to, Neighbor{})
}

// AddWeightedEdge is AddEdge with a weight attached to the edge.
func (g *Graph) AddWeightedEdge(from, to string, weight float64) {
	g.addEdge(from, to, Neighbor{Weight: weight, Weighted: true})
}

func (g *Graph) addEdge(from, to string, n Neighbor) {
	g.addVertex(from)
	g.addVertex(to)

	g.link(from, to, n)
	if !g.directed {
		g.link(to, from, n)
	}
	g.notify(trace.KindAddEdge)
}

// link appends the adjacency entry unless an identical one exists.
func (g *Graph) link(from, to string, n Neighbor) {
	n.ID = to
	if slices.Contains(g.adjacency[from], n) {
		return
	}
	g.adjacency[from] = append(g.adjacency[from], n)
}

// RemoveEdge deletes the from→to edge (and to→from when undirected).
// Returns false if no such edge exists.
// Complexity: O(deg)
func (g *Graph) RemoveEdge(from, to string) bool {
	nbrs, ok := g.adjacency[from]
	if !ok {
		return false
	}

	trimmed := slices.DeleteFunc(nbrs, func(n Neighbor) bool { return n.ID == to })
	removed := len(trimmed) < len(nbrs)
	g.adjacency[from] = trimmed

	if !g.directed {
		if back, ok := g.adjacency[to]; ok {
			g.adjacency[to] = slices.DeleteFunc(back, func(n Neighbor) bool { return n.ID == from })
		}
	}

	if removed {
		g.notify(trace.KindRemoveEdge)
	}

	return removed
}

// HasEdge reports whether a from→to edge exists.
func (g *Graph) HasEdge(from, to string) bool {
	return slices.ContainsFunc(g.adjacency[from], func(n Neighbor) bool { return n.ID == to })
}

// Neighbors returns a copy of id's adjacency list in insertion order;
// empty for absent vertices.
func (g *Graph) Neighbors(id string) []Neighbor {
	return slices.Clone(g.adjacency[id])
}

// Vertices returns the vertex IDs in insertion order.
func (g *Graph) Vertices() []string { return slices.Clone(g.order) }

// Edges enumerates every edge. In an undirected graph each edge appears
// once, oriented the way it was first inserted.
// Complexity: O(V + E)
func (g *Graph) Edges() []Edge {
	var edges []Edge
	seen := make(map[[2]string]bool)

	for _, from := range g.order {
		for _, n := range g.adjacency[from] {
			if !g.directed {
				key := [2]string{from, n.ID}
				if key[0] > key[1] {
					key[0], key[1] = key[1], key[0]
				}
				if seen[key] {
					continue
				}
				seen[key] = true
			}
			edges = append(edges, Edge{From: from, To: n.ID, Weight: n.Weight, Weighted: n.Weighted})
		}
	}

	return edges
}

// Len returns the vertex count.
func (g *Graph) Len() int { return len(g.order) }

// Snapshot returns an immutable copy of the vertex order, adjacency
// lists, and edge list.
func (g *Graph) Snapshot() trace.Snapshot {
	adj := make(map[string][]Neighbor, len(g.adjacency))
	for v, nbrs := range g.adjacency {
		adj[v] = slices.Clone(nbrs)
	}

	return Snapshot{
		Directed:  g.directed,
		Vertices:  slices.Clone(g.order),
		Adjacency: adj,
		Edges:     g.Edges(),
	}
}
