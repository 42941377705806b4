package searchspace

import "errors"

// ErrInvalidTransition is the panic payload for an illegal SearchNode state
// transition (spec.md §7 "Invalid transition... Implementation must
// assert; violation is a bug in the caller"). Mirrors the teacher's split
// between returned sentinel errors for caller-input mistakes and panics for
// genuine protocol violations (e.g. dijkstra.WithMaxDistance on a negative
// value): a search algorithm driving this state machine into an illegal
// transition is the latter, not the former.
var ErrInvalidTransition = errors.New("searchspace: invalid node state transition")

// ErrPathTraceInconsistent indicates Phase 4 of the symmetry-aware path
// trace found no applicable operator linking two consecutive rewritten
// states (spec.md §7 "Path-tracing inconsistency" — fatal: the caller is
// expected to log both states and terminate, this package never calls
// os.Exit itself).
var ErrPathTraceInconsistent = errors.New("searchspace: path trace inconsistent: no applicable operator found")

// ErrNoPlanFound indicates UniformCostSearch exhausted the reachable state
// space without finding a goal-satisfying state.
var ErrNoPlanFound = errors.New("searchspace: no plan found, goal unreachable")
