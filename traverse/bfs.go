package traverse

import (
	"fmt"
	"slices"

	"github.com/jpcunhadias/ds-algo-lab/graph"
	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// AlgorithmBFS is the human-readable name stamped on BFS steps.
const AlgorithmBFS = "Breadth-First Search"

// bfsWalker encapsulates mutable BFS state.
type bfsWalker struct {
	g       *graph.Graph
	start   string
	num     trace.Counter
	queue   []string
	visited map[string]bool
	seen    []string // discovery order, for Detail.Visited
	order   []string
}

// BFS returns the step sequence of one breadth-first traversal from start.
// An absent start vertex yields an empty sequence.
// Complexity: O(V + E) traversal, O(V + E) per step snapshot
func BFS(g *graph.Graph, start string) trace.Sequence[Detail] {
	return func(yield func(trace.Step[Detail]) bool) {
		if g == nil || !g.HasVertex(start) {
			return
		}

		w := &bfsWalker{
			g:       g,
			start:   start,
			visited: make(map[string]bool, g.Len()),
		}
		w.run(yield)
	}
}

// emit builds a step around the walker's current state; the snapshot and
// all Detail slices are copies, so later mutation never leaks backward.
func (w *bfsWalker) emit(yield func(trace.Step[Detail]) bool, desc string, d Detail) bool {
	d.Start = w.start
	d.Visited = slices.Clone(w.seen)
	d.Frontier = slices.Clone(w.queue)
	d.Order = slices.Clone(w.order)

	return yield(trace.Step[Detail]{
		Algorithm:   AlgorithmBFS,
		Number:      w.num.Next(),
		Description: desc,
		Structure:   w.g.Snapshot(),
		Detail:      d,
	})
}

// discover marks id visited at discovery time and enqueues it. Marking
// here, not at dequeue, is what prevents duplicate enqueues.
func (w *bfsWalker) discover(id string) {
	w.visited[id] = true
	w.seen = append(w.seen, id)
	w.queue = append(w.queue, id)
}

func (w *bfsWalker) run(yield func(trace.Step[Detail]) bool) {
	// 1. Seed the frontier with the start vertex.
	w.discover(w.start)
	if !w.emit(yield, fmt.Sprintf("Starting BFS from vertex %s", w.start),
		Detail{Phase: PhaseInitializing, Current: w.start}) {
		return
	}

	// 2. Drain the queue.
	for len(w.queue) > 0 {
		current := w.queue[0]
		w.queue = w.queue[1:]
		w.order = append(w.order, current)

		if !w.emit(yield, fmt.Sprintf("Processing vertex %s", current),
			Detail{Phase: PhaseDequeuing, Current: current}) {
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

		// 4. Enqueue each unseen neighbor.
		for _, id := range ids {
			if w.visited[id] {
				continue
			}
			w.discover(id)
			if !w.emit(yield, fmt.Sprintf("Discovered vertex %s, adding to queue", id),
				Detail{Phase: PhaseDiscovering, Current: current, Discovered: id}) {
				return
			}
		}
	}

	// 5. Final step.
	w.emit(yield, fmt.Sprintf("BFS complete. Traversal order: %v", w.order),
		Detail{Phase: PhaseComplete})
}
