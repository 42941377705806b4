package symheuristic

import "github.com/halvardsen/symplan/planningtask"

// Evaluator is the opaque delegate-heuristic surface spec.md §1 puts out of
// scope ("Heuristic evaluators themselves"): SymmetricalLookupsHeuristic
// consumes one, it does not implement one.
type Evaluator interface {
	// Evaluate returns the heuristic value of state, or deadEnd == true if
	// state is recognized as unsolvable. value is unspecified when
	// deadEnd is true.
	Evaluate(state planningtask.State) (value int, deadEnd bool)
}
