package searchspace

import (
	"github.com/rs/zerolog"

	"github.com/halvardsen/symplan/internal/xlog"
	"github.com/halvardsen/symplan/planningtask"
	"github.com/halvardsen/symplan/symmetry"
)

// SearchSpace owns per-state search bookkeeping for one search. It refers
// to its StateRegistry by non-owning reference (design note §9: "yields no
// cycle" — the registry never knows about the search space).
type SearchSpace struct {
	registry *planningtask.StateRegistry
	infos    map[planningtask.StateID]*nodeInfo
	log      zerolog.Logger
}

// New creates an empty SearchSpace over registry.
func New(registry *planningtask.StateRegistry) *SearchSpace {
	return &SearchSpace{
		registry: registry,
		infos:    make(map[planningtask.StateID]*nodeInfo),
		log:      xlog.Nop(),
	}
}

// WithLogger attaches a logger to an already-constructed SearchSpace (not a
// construction Option, since the zero-value SearchSpace must remain usable
// without one — mirrors symmetry.Group.WithLogger). The symmetry-aware
// trace logs both states through it at the one "log and terminate" point
// spec.md §7 names: ErrPathTraceInconsistent.
func (ss *SearchSpace) WithLogger(logger zerolog.Logger) *SearchSpace {
	ss.log = logger
	return ss
}

// GetNode returns a mutable handle onto id's per-state info slot, creating
// a fresh NEW-status slot on first access (spec.md §4.5).
func (ss *SearchSpace) GetNode(id planningtask.StateID) SearchNode {
	info, ok := ss.infos[id]
	if !ok {
		info = &nodeInfo{
			status:     StatusNew,
			parent:     planningtask.NoStateID,
			creatingOp: planningtask.NoOperatorID,
		}
		ss.infos[id] = info
	}
	return SearchNode{id: id, info: info}
}

// TracePath returns the ordered operator sequence from the registry's
// initial state to goal. It selects the symmetry-aware algorithm iff group
// is non-nil and has symmetries; otherwise it walks parent links in reverse
// and reverses the result (spec.md §4.5).
func (ss *SearchSpace) TracePath(goal planningtask.StateID, task *planningtask.Task, group *symmetry.Group) ([]planningtask.OperatorID, error) {
	if group != nil && group.HasSymmetries() {
		return ss.tracePathWithSymmetries(goal, task, group)
	}
	return ss.tracePathPlain(goal), nil
}

func (ss *SearchSpace) tracePathPlain(goal planningtask.StateID) []planningtask.OperatorID {
	var ops []planningtask.OperatorID
	cur := goal
	for {
		node := ss.GetNode(cur)
		op := node.CreatingOperator()
		if op == planningtask.NoOperatorID {
			break
		}
		ops = append(ops, op)
		cur = node.Parent()
	}
	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}
	return ops
}
