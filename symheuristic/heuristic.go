package symheuristic

import (
	"github.com/halvardsen/symplan/planningtask"
	"github.com/halvardsen/symplan/symmetry"
)

// SymmetricalLookupsHeuristic wraps a delegate Evaluator with the
// symmetric-image evaluation of spec.md §4.6.
type SymmetricalLookupsHeuristic struct {
	task     *planningtask.Task
	delegate Evaluator
	group    *symmetry.Group
	stats    *Stats
}

// New builds a SymmetricalLookupsHeuristic over delegate and group, using
// task only to seed the auxiliary registries ComputeSymmetricStates needs.
// It returns symmetry.ErrLookupsRequireGroup if group's SymmetricalLookups
// mode is symmetry.LookupNone (spec.md §7 "Configuration error"), and
// resets stats, mirroring the original's per-construction counter reset.
func New(task *planningtask.Task, delegate Evaluator, group *symmetry.Group, stats *Stats) (*SymmetricalLookupsHeuristic, error) {
	if group.Config().SymmetricalLookups == symmetry.LookupNone {
		return nil, symmetry.ErrLookupsRequireGroup
	}
	stats.Reset()
	return &SymmetricalLookupsHeuristic{
		task:     task,
		delegate: delegate,
		group:    group,
		stats:    stats,
	}, nil
}

// Evaluate runs the delegate on state, then, unless symmetries are absent
// or the delegate already reported a dead end, evaluates every symmetric
// image and folds the results in: a dead-end image short-circuits to
// DEAD_END, otherwise the maximum value over state and all of its images is
// returned (spec.md §4.6 steps 1-4).
func (h *SymmetricalLookupsHeuristic) Evaluate(state planningtask.State) (int, bool) {
	value, deadEnd := h.delegate.Evaluate(state)
	if deadEnd {
		return 0, true
	}
	if !h.group.HasSymmetries() {
		return value, false
	}

	aux := planningtask.NewStateRegistry(h.task)
	images, err := h.group.ComputeSymmetricStates(state, aux)
	if err != nil {
		// Only possible cause left after the constructor's gate is a
		// misconfigured mode discovered at call time; degrade to the
		// unwrapped value rather than propagate an error from an
		// Evaluator, whose signature has none.
		return value, false
	}

	previous := value
	reachedDeadEnd := false
	for _, image := range images {
		symmetricValue, symmetricDeadEnd := h.delegate.Evaluate(image)
		if symmetricDeadEnd {
			h.stats.ImprovingSymmetricalStates++
			value = 0
			reachedDeadEnd = true
			break
		}
		if symmetricValue > previous {
			h.stats.ImprovingSymmetricalStates++
		}
		if symmetricValue > value {
			value = symmetricValue
		}
	}
	h.stats.SymmetricalStatesGenerated += len(images)
	if reachedDeadEnd || value > previous {
		h.stats.SymmetryImprovedEvaluations++
	}
	return value, reachedDeadEnd
}
