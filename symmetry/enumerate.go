package symmetry

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/halvardsen/symplan/planningtask"
)

// ComputeSymmetricStates enumerates symmetric images of state according to
// the group's configured LookupMode (spec.md §4.3.3). Emitted states are
// registered in aux, an auxiliary registry distinct from the main search
// registry, exactly as spec.md requires ("to avoid polluting the search
// space").
func (g *Group) ComputeSymmetricStates(state planningtask.State, aux *planningtask.StateRegistry) ([]planningtask.State, error) {
	switch g.config.SymmetricalLookups {
	case LookupNone:
		return nil, ErrLookupModeDisabled
	case LookupOneState:
		return g.randomWalkOneState(state, aux), nil
	case LookupSubsetOfStates:
		return g.bfsClosure(state, aux, g.config.SymmetryRWLengthOrNumberStates), nil
	case LookupAllStates:
		return g.bfsClosure(state, aux, -1), nil
	default:
		return nil, ErrLookupModeDisabled
	}
}

// randomWalkOneState performs a random walk of length K in the Cayley
// graph, picking a uniformly random generator at each step; it emits the
// final state iff it differs from the input (spec.md §4.3.3 ONE_STATE).
func (g *Group) randomWalkOneState(state planningtask.State, aux *planningtask.StateRegistry) []planningtask.State {
	if len(g.generators) == 0 {
		return nil
	}
	current := []int(state.Clone())
	k := g.config.SymmetryRWLengthOrNumberStates
	for i := 0; i < k; i++ {
		gen := g.generators[g.rng.Intn(len(g.generators))]
		current = gen.Apply(current)
	}
	if intSliceEqual(current, []int(state)) {
		return nil
	}
	final := planningtask.State(current)
	aux.RegisterExternal(final)
	return []planningtask.State{final}
}

// bfsClosure performs breadth-first closure over the orbit of state: from a
// frontier, apply every generator, deduplicate via a "reached" bitset keyed
// by aux's StateIDs, and emit newly seen states. It stops once cap new
// states have been emitted (cap >= 0) or the orbit is exhausted (cap < 0).
func (g *Group) bfsClosure(state planningtask.State, aux *planningtask.StateRegistry, cap int) []planningtask.State {
	reached := bitset.New(0)
	startID := aux.RegisterExternal(state.Clone())
	reached.Set(uint(startID))

	frontier := []planningtask.State{state.Clone()}
	var emitted []planningtask.State

	for len(frontier) > 0 {
		if cap >= 0 && len(emitted) >= cap {
			break
		}
		var next []planningtask.State
		for _, cur := range frontier {
			for _, gen := range g.generators {
				succ := planningtask.State(gen.Apply([]int(cur)))
				id := aux.RegisterExternal(succ)
				if reached.Test(uint(id)) {
					continue
				}
				reached.Set(uint(id))
				emitted = append(emitted, succ)
				next = append(next, succ)
				if cap >= 0 && len(emitted) >= cap {
					break
				}
			}
			if cap >= 0 && len(emitted) >= cap {
				break
			}
		}
		frontier = next
	}
	return emitted
}
