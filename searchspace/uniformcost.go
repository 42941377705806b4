package searchspace

import (
	"container/heap"

	"github.com/halvardsen/symplan/planningtask"
)

// UniformCostSearch runs a Dijkstra-style best-first forward search from
// registry's initial state to the first state satisfying task's goal,
// recording parent links in space as it goes and returning the goal state's
// StateID. It is the weighted generalization of a plain BFS: a state is
// finalized (closed) the first time it is popped, exactly as in a
// non-negative-weight shortest-path search. The heap orders entries by g
// only; the order in which equal-cost entries are popped is not defined.
//
// Adapted from the teacher's dijkstra.Dijkstra lazy-decrease-key loop
// (container/heap, push-duplicate-and-skip-stale-entries instead of a
// fix-up capable heap) onto this package's StateID/SearchNode vocabulary in
// place of dijkstra's string vertex IDs and core.Graph edges: here, a
// "vertex" is a StateID and an "edge" is an applicable operator.
func UniformCostSearch(task *planningtask.Task, registry *planningtask.StateRegistry, space *SearchSpace) (planningtask.StateID, error) {
	start := registry.InitialStateID()
	space.GetNode(start).OpenInitial()

	pq := make(stateHeap, 0, 16)
	heap.Init(&pq)
	heap.Push(&pq, &stateItem{id: start, g: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*stateItem)
		id := item.id
		node := space.GetNode(id)

		if node.Status() == StatusClosed {
			continue
		}
		// A node can be popped while still OPEN from an older heap entry after
		// UpdateParent recorded a cheaper path (and pushed a fresh entry); the
		// g comparison skips such stale lazy-decrease-key pushes the same way
		// dijkstra.runner.process uses its visited map.
		if node.Status() == StatusOpen && node.G() < item.g {
			continue
		}
		node.Close()

		state, err := registry.Unpack(id)
		if err != nil {
			return planningtask.NoStateID, err
		}
		if task.SatisfiesGoal(state) {
			return id, nil
		}

		for _, op := range task.ApplicableOperators(state) {
			succID, _, err := registry.GenerateSuccessor(id, op)
			if err != nil {
				return planningtask.NoStateID, err
			}
			succNode := space.GetNode(succID)
			newG := node.G() + op.Cost
			switch succNode.Status() {
			case StatusNew:
				succNode.Open(node, op.ID, op.Cost, op.Cost)
				heap.Push(&pq, &stateItem{id: succID, g: newG})
			case StatusOpen:
				if newG < succNode.G() {
					succNode.UpdateParent(node, op.ID, op.Cost, op.Cost)
					heap.Push(&pq, &stateItem{id: succID, g: newG})
				}
			case StatusClosed:
				// Non-negative operator costs mean a closed node is final;
				// nothing to relax.
			}
		}
	}
	return planningtask.NoStateID, ErrNoPlanFound
}

type stateItem struct {
	id planningtask.StateID
	g  int
}

type stateHeap []*stateItem

func (h stateHeap) Len() int            { return len(h) }
func (h stateHeap) Less(i, j int) bool  { return h[i].g < h[j].g }
func (h stateHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *stateHeap) Push(x interface{}) { *h = append(*h, x.(*stateItem)) }
func (h *stateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
