package searchspace

import (
	"fmt"

	"github.com/halvardsen/symplan/planningtask"
)

// Status is a SearchNode's lifecycle state, spec.md §4.4.
type Status int

const (
	StatusNew Status = iota
	StatusOpen
	StatusClosed
	StatusDeadEnd
)

func (s Status) String() string {
	switch s {
	case StatusNew:
		return "NEW"
	case StatusOpen:
		return "OPEN"
	case StatusClosed:
		return "CLOSED"
	case StatusDeadEnd:
		return "DEAD_END"
	default:
		return "UNKNOWN"
	}
}

// nodeInfo is the mutable per-state information slot SearchNode aliases.
// Design note §9 ("re-architect as a small value handle parameterised by a
// mutable borrow of the info slot"): SearchSpace owns these; SearchNode is
// a short-lived, non-aliasing handle onto one.
type nodeInfo struct {
	status     Status
	g          int
	realG      int
	parent     planningtask.StateID
	creatingOp planningtask.OperatorID
}

// SearchNode is a handle onto one state's search bookkeeping. Multiple
// concurrent handles on the same state are not permitted (spec.md §4.5) —
// nothing in this package enforces that beyond documentation, matching the
// single-owner-thread confinement of the whole layer.
type SearchNode struct {
	id   planningtask.StateID
	info *nodeInfo
}

func invalidTransition(op string, from Status) {
	panic(fmt.Errorf("%w: %s from status %s", ErrInvalidTransition, op, from))
}

// StateID returns the state this handle describes.
func (n SearchNode) StateID() planningtask.StateID { return n.id }

// Status returns the node's current lifecycle state.
func (n SearchNode) Status() Status { return n.info.status }

// G returns the node's (possibly heuristic-adjusted) accumulated cost.
func (n SearchNode) G() int { return n.info.g }

// RealG returns the node's accumulated real operator cost.
func (n SearchNode) RealG() int { return n.info.realG }

// Parent returns the recorded parent state id, or planningtask.NoStateID.
func (n SearchNode) Parent() planningtask.StateID { return n.info.parent }

// CreatingOperator returns the operator that generated this node, or
// planningtask.NoOperatorID for the initial state.
func (n SearchNode) CreatingOperator() planningtask.OperatorID { return n.info.creatingOp }

// OpenInitial transitions NEW -> OPEN with zero cost and no parent
// (spec.md §4.4).
func (n SearchNode) OpenInitial() {
	if n.info.status != StatusNew {
		invalidTransition("open_initial", n.info.status)
	}
	n.info.status = StatusOpen
	n.info.g = 0
	n.info.realG = 0
	n.info.parent = planningtask.NoStateID
	n.info.creatingOp = planningtask.NoOperatorID
}

// Open transitions NEW -> OPEN, recording parent/op and costs (spec.md §4.4).
func (n SearchNode) Open(parent SearchNode, op planningtask.OperatorID, adjCost, opCost int) {
	if n.info.status != StatusNew {
		invalidTransition("open", n.info.status)
	}
	n.setFrom(StatusOpen, parent, op, adjCost, opCost)
}

// Reopen transitions OPEN or CLOSED -> OPEN, updating costs and parent link.
// Legal from CLOSED specifically to accommodate inconsistent heuristics,
// where a shorter path to a closed node is discovered later (spec.md §4.4).
func (n SearchNode) Reopen(parent SearchNode, op planningtask.OperatorID, adjCost, opCost int) {
	if n.info.status != StatusOpen && n.info.status != StatusClosed {
		invalidTransition("reopen", n.info.status)
	}
	n.setFrom(StatusOpen, parent, op, adjCost, opCost)
}

// UpdateParent updates costs and parent link without changing status
// (legal from OPEN or CLOSED). For algorithms that track the best-known
// parent without reviving search activity (spec.md §4.4).
func (n SearchNode) UpdateParent(parent SearchNode, op planningtask.OperatorID, adjCost, opCost int) {
	if n.info.status != StatusOpen && n.info.status != StatusClosed {
		invalidTransition("update_parent", n.info.status)
	}
	n.setFrom(n.info.status, parent, op, adjCost, opCost)
}

func (n SearchNode) setFrom(newStatus Status, parent SearchNode, op planningtask.OperatorID, adjCost, opCost int) {
	n.info.status = newStatus
	n.info.g = parent.G() + adjCost
	n.info.realG = parent.RealG() + opCost
	n.info.parent = parent.id
	n.info.creatingOp = op
}

// Close transitions OPEN -> CLOSED.
func (n SearchNode) Close() {
	if n.info.status != StatusOpen {
		invalidTransition("close", n.info.status)
	}
	n.info.status = StatusClosed
}

// MarkAsDeadEnd transitions any status -> DEAD_END.
func (n SearchNode) MarkAsDeadEnd() {
	n.info.status = StatusDeadEnd
}
