package searchspace

import (
	"fmt"

	"github.com/halvardsen/symplan/permutation"
	"github.com/halvardsen/symplan/planningtask"
	"github.com/halvardsen/symplan/symmetry"
)

// tracePathWithSymmetries is a direct structural port of
// original_source/src/search/search_space.cc's trace_path_with_symmetries
// (spec.md §4.5.1), generalized from the C++'s raw StateRegistry/
// OperatorsProxy types to this module's planningtask stand-ins.
//
// The DKS/OSS distinction the original draws at this point — DKS needs a
// successor registry distinct from the search registry to avoid
// re-canonicalization collisions, OSS reuses the main registry because it
// already stores canonical representatives — does not apply to
// planningtask.StateRegistry: this stand-in never canonicalizes states on
// insertion (that policy lives entirely in symmetry.Group, consulted
// explicitly below), so computing the raw successor via task.Apply gives
// the same observable result regardless of search mode.
func (ss *SearchSpace) tracePathWithSymmetries(goal planningtask.StateID, task *planningtask.Task, group *symmetry.Group) ([]planningtask.OperatorID, error) {
	tables := group.Tables()

	// Phase 1: backward walk.
	var stateTrace []planningtask.State
	var stack []permutation.Raw

	currentID := goal
	for {
		currentState := ss.registry.MustUnpack(currentID)
		stateTrace = append(stateTrace, currentState)

		node := ss.GetNode(currentID)
		op := node.CreatingOperator()
		if op == planningtask.NoOperatorID {
			stack = append(stack, permutation.IdentityRaw(tables.PermutationLength))
			break
		}

		parentID := node.Parent()
		parentState := ss.registry.MustUnpack(parentID)
		successor := task.Apply(task.OperatorByID(op), parentState)

		var p permutation.Raw
		if !currentState.Equal(successor) {
			var err error
			p, err = group.CreatePermutationFromStateToState([]int(currentState), []int(successor))
			if err != nil {
				ss.log.Error().Interface("state", currentState).Interface("successor", successor).Err(err).
					Msg("path trace: no permutation maps state to its successor")
				return nil, fmt.Errorf("%w: state %v has no permutation reaching %v: %w", ErrPathTraceInconsistent, currentState, successor, err)
			}
		} else {
			p = permutation.IdentityRaw(tables.PermutationLength)
		}
		stack = append(stack, p)
		currentID = parentID
	}

	n := len(stateTrace)

	// Phase 2: accumulate suffix products.
	reversePermutations := make([]permutation.Raw, n)
	temp := permutation.IdentityRaw(tables.PermutationLength)
	for i := n - 1; i >= 0; i-- {
		composed, err := stack[i].Compose(temp)
		if err != nil {
			ss.log.Error().Int("step", i).Err(err).
				Msg("path trace: permutation composition failed while accumulating suffix products")
			return nil, fmt.Errorf("%w: composing permutations at trace step %d: %w", ErrPathTraceInconsistent, i, err)
		}
		temp = composed
		reversePermutations[n-1-i] = temp
	}

	// Phase 3: rewrite states.
	for i := 0; i < n; i++ {
		rewritten := permutation.ApplyToState(reversePermutations[n-1-i], tables, []int(stateTrace[i]))
		stateTrace[i] = planningtask.State(rewritten)
	}

	// Phase 4: operator selection.
	var plan []planningtask.OperatorID
	for i := n - 1; i >= 1; i-- {
		from := stateTrace[i]
		to := stateTrace[i-1]
		best := planningtask.NoOperatorID
		bestCost := 0
		found := false
		for _, op := range task.ApplicableOperators(from) {
			succ := task.Apply(op, from)
			if !succ.Equal(to) {
				continue
			}
			if !found || op.Cost < bestCost {
				best = op.ID
				bestCost = op.Cost
				found = true
			}
		}
		if !found {
			ss.log.Error().Interface("from", from).Interface("to", to).
				Msg("path trace: no operator reaches state")
			return nil, fmt.Errorf("%w: state %v has no operator reaching %v", ErrPathTraceInconsistent, from, to)
		}
		plan = append(plan, best)
	}
	return plan, nil
}
