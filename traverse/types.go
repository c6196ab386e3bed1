// Package traverse: phases, the Detail payload, and the name registry.
package traverse

import (
	"errors"
	"fmt"

	"github.com/jpcunhadias/ds-algo-lab/graph"
	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// ErrUnknownAlgorithm is returned when a registry name does not resolve.
var ErrUnknownAlgorithm = errors.New("traverse: unknown algorithm")

// Phase tags where in its state machine a traversal step was emitted.
type Phase string

// Traversal phases. BFS uses Dequeuing where DFS uses Visiting; only DFS
// emits Backtracking.
const (
	PhaseInitializing Phase = "initializing"
	PhaseDequeuing    Phase = "dequeuing"
	PhaseVisiting     Phase = "visiting"
	PhaseExploring    Phase = "exploring"
	PhaseDiscovering  Phase = "discovering"
	PhaseBacktracking Phase = "backtracking"
	PhaseComplete     Phase = "complete"
)

// Detail is the traversal-specific payload of a trace.Step.
type Detail struct {
	// Phase is the state-machine position of this step.
	Phase Phase

	// Start is the traversal's start vertex.
	Start string

	// Current is the vertex being processed; empty on the complete step.
	Current string

	// Visited lists discovered vertices in discovery order.
	Visited []string

	// Frontier is the pending queue (BFS) or stack (DFS), front/bottom
	// first, at the moment of emission.
	Frontier []string

	// Order lists vertices in visit order so far.
	Order []string

	// Neighbors lists the adjacency of Current on exploring steps.
	Neighbors []string

	// Discovered names the newly found vertex on discovering steps.
	Discovered string
}

// Algorithm is a traversal constructor: given a graph and a start vertex
// it returns a fresh, lazily produced step sequence.
type Algorithm func(g *graph.Graph, start string) trace.Sequence[Detail]

// Registry names.
const (
	NameBFS = "bfs"
	NameDFS = "dfs"
)

// Lookup resolves a registry name to its implementation.
func Lookup(name string) (Algorithm, bool) {
	switch name {
	case NameBFS:
		return BFS, true
	case NameDFS:
		return DFS, true
	default:
		return nil, false
	}
}

// Names returns the registry names in stable order.
func Names() []string { return []string{NameBFS, NameDFS} }

// Execute resolves name, runs the traversal from start, and drains the
// sequence into an ordered step slice. When observe is true, each step is
// also forwarded live to the graph's attached observer.
// Returns ErrUnknownAlgorithm for unregistered names.
func Execute(name string, g *graph.Graph, start string, observe bool) ([]trace.Step[Detail], error) {
	alg, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	var obs trace.Observer
	if observe && g != nil {
		obs = g.Observer()
	}

	return trace.Collect(alg(g, start), obs), nil
}
