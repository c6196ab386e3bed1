package traverse

import (
	"fmt"
	"slices"

	"github.com/jpcunhadias/ds-algo-lab/graph"
	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// AlgorithmDFS is the human-readable name stamped on DFS steps.
const AlgorithmDFS = "Depth-First Search"

// dfsWalker encapsulates mutable DFS state.
type dfsWalker struct {
	g       *graph.Graph
	start   string
	num     trace.Counter
	stack   []string
	visited map[string]bool
	seen    []string
	order   []string
}

// DFS returns the step sequence of one depth-first traversal from start,
// driven by an explicit stack rather than call-stack recursion. An absent
// start vertex yields an empty sequence.
// Complexity: O(V + E) traversal, O(V + E) per step snapshot
func DFS(g *graph.Graph, start string) trace.Sequence[Detail] {
	return func(yield func(trace.Step[Detail]) bool) {
		if g == nil || !g.HasVertex(start) {
			return
		}

		w := &dfsWalker{
			g:       g,
			start:   start,
			visited: make(map[string]bool, g.Len()),
		}
		w.run(yield)
	}
}

func (w *dfsWalker) emit(yield func(trace.Step[Detail]) bool, desc string, d Detail) bool {
	d.Start = w.start
	d.Visited = slices.Clone(w.seen)
	d.Frontier = slices.Clone(w.stack)
	d.Order = slices.Clone(w.order)

	return yield(trace.Step[Detail]{
		Algorithm:   AlgorithmDFS,
		Number:      w.num.Next(),
		Description: desc,
		Structure:   w.g.Snapshot(),
		Detail:      d,
	})
}

func (w *dfsWalker) run(yield func(trace.Step[Detail]) bool) {
	// 1. Seed the stack with the start vertex.
	w.stack = append(w.stack, w.start)
	if !w.emit(yield, fmt.Sprintf("Starting DFS from vertex %s", w.start),
		Detail{Phase: PhaseInitializing, Current: w.start}) {
		return
	}

	// 2. Drain the stack.
	for len(w.stack) > 0 {
		current := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		// A vertex can sit on the stack more than once; the later pop
		// is a backtrack, not a visit.
		if w.visited[current] {
			if !w.emit(yield, fmt.Sprintf("Backtracking from %s (already visited)", current),
				Detail{Phase: PhaseBacktracking, Current: current}) {
				return
			}
			continue
		}

		w.visited[current] = true
		w.seen = append(w.seen, current)
		w.order = append(w.order, current)

		if !w.emit(yield, fmt.Sprintf("Visiting vertex %s", current),
			Detail{Phase: PhaseVisiting, Current: current}) {
			return
		}

		// 3. Explore neighbors in stored adjacency order.
		neighbors := w.g.Neighbors(current)
		ids := make([]string, len(neighbors))
		for i, n := range neighbors {
			ids[i] = n.ID
		}
		if !w.emit(yield, fmt.Sprintf("Exploring neighbors of %s: %v", current, ids),
			Detail{Phase: PhaseExploring, Current: current, Neighbors: ids}) {
			return
		}

		// 4. Push unvisited neighbors in reverse, so the stack pops them
		// in original left-to-right order.
		for i := len(ids) - 1; i >= 0; i-- {
			id := ids[i]
			if w.visited[id] {
				continue
			}
			w.stack = append(w.stack, id)
			if !w.emit(yield, fmt.Sprintf("Pushing unvisited neighbor %s onto stack", id),
				Detail{Phase: PhaseDiscovering, Current: current, Discovered: id}) {
				return
			}
		}
	}

	// 5. Final step.
	w.emit(yield, fmt.Sprintf("DFS complete. Traversal order: %v", w.order),
		Detail{Phase: PhaseComplete})
}
