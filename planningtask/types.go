// Package planningtask provides the minimal grounded-task, state, and
// state-registry stand-ins that the symmetry core consumes.
//
// Everything here is an external collaborator per the specification: real
// grounding (PDDL parsing, invariant synthesis, fact/variable numbering) is
// not this package's job. It exists only so the symmetry, searchspace, and
// symheuristic packages have a concrete Task/State/StateRegistry to operate
// against in tests and the demo binary — a finite-domain-representation
// (FDR) task with integer-valued variables, partial-assignment operator
// preconditions/effects, and a partial-assignment goal.
package planningtask

import "errors"

// Sentinel errors for task/state construction and lookup.
var (
	// ErrNoVariables indicates a Task was built with zero variables.
	ErrNoVariables = errors.New("planningtask: task has no variables")

	// ErrBadDomainSize indicates a variable was declared with a non-positive domain.
	ErrBadDomainSize = errors.New("planningtask: variable domain size must be positive")

	// ErrStateLength indicates a State does not have one entry per variable.
	ErrStateLength = errors.New("planningtask: state length does not match number of variables")

	// ErrValueOutOfRange indicates a state or operator assignment uses a value
	// outside the variable's declared domain.
	ErrValueOutOfRange = errors.New("planningtask: value out of domain range")

	// ErrStateNotFound indicates a lookup for a StateID the registry never assigned.
	ErrStateNotFound = errors.New("planningtask: state id not found in registry")

	// ErrOperatorNotApplicable indicates StateRegistry.GenerateSuccessor was
	// called with an operator whose preconditions do not hold in the parent
	// state (Task.Apply itself never checks preconditions).
	ErrOperatorNotApplicable = errors.New("planningtask: operator not applicable in state")
)

// StateID is an opaque identifier assigned by StateRegistry. Totally ordered
// (plain int) and hashable, per the specification's StateId contract.
type StateID int

// NoStateID is the sentinel "no state" identifier.
const NoStateID StateID = -1

// OperatorID is an opaque identifier of a ground operator.
type OperatorID int

// NoOperatorID is the sentinel "no operator" identifier.
const NoOperatorID OperatorID = -1

// State is the unpacked value-vector form: State[v] is the value of variable v.
// Every read of component values requires this form; StateRegistry owns the
// packed (deduplicated) storage and hands out fresh unpacked copies.
type State []int

// Clone returns an independent copy of s.
func (s State) Clone() State {
	out := make(State, len(s))
	copy(out, s)
	return out
}

// Equal reports whether s and other have identical length and values.
func (s State) Equal(other State) bool {
	if len(s) != len(other) {
		return false
	}
	for i, v := range s {
		if v != other[i] {
			return false
		}
	}
	return true
}

// Variable describes one finite-domain state variable.
type Variable struct {
	// Name is a human-readable label, used only for diagnostics.
	Name string
	// DomainSize is the number of values the variable can take (0..DomainSize-1).
	DomainSize int
}

// Assignment is a partial variable→value assignment, used for operator
// preconditions/effects and task goals.
type Assignment map[int]int

// Operator is a grounded planning operator: a partial-assignment
// precondition, a partial-assignment effect (STRIPS/FDR style, no
// conditional effects), and a non-negative cost.
type Operator struct {
	ID            OperatorID
	Name          string
	Cost          int
	Preconditions Assignment
	Effects       Assignment
}

// Task is a grounded finite-domain-representation planning task.
type Task struct {
	variables []Variable
	initial   State
	goal      Assignment
	operators []Operator
}

// NewTask validates and constructs a Task. initial must have one entry per
// variable, each within that variable's domain; goal assignments and every
// operator's pre/effect assignments are validated the same way.
func NewTask(variables []Variable, initial State, goal Assignment, operators []Operator) (*Task, error) {
	if len(variables) == 0 {
		return nil, ErrNoVariables
	}
	for _, v := range variables {
		if v.DomainSize <= 0 {
			return nil, ErrBadDomainSize
		}
	}
	if len(initial) != len(variables) {
		return nil, ErrStateLength
	}
	t := &Task{variables: variables, initial: initial.Clone(), goal: goal, operators: operators}
	if err := t.validateState(t.initial); err != nil {
		return nil, err
	}
	if err := t.validateAssignment(goal); err != nil {
		return nil, err
	}
	for i := range operators {
		if err := t.validateAssignment(operators[i].Preconditions); err != nil {
			return nil, err
		}
		if err := t.validateAssignment(operators[i].Effects); err != nil {
			return nil, err
		}
		// OperatorID is assigned by grounding, always equal to declaration
		// index: callers never supply it.
		t.operators[i].ID = OperatorID(i)
	}
	return t, nil
}

func (t *Task) validateState(s State) error {
	if len(s) != len(t.variables) {
		return ErrStateLength
	}
	for v, val := range s {
		if val < 0 || val >= t.variables[v].DomainSize {
			return ErrValueOutOfRange
		}
	}
	return nil
}

func (t *Task) validateAssignment(a Assignment) error {
	for v, val := range a {
		if v < 0 || v >= len(t.variables) {
			return ErrValueOutOfRange
		}
		if val < 0 || val >= t.variables[v].DomainSize {
			return ErrValueOutOfRange
		}
	}
	return nil
}

// NumVariables returns the number of state variables.
func (t *Task) NumVariables() int {
	return len(t.variables)
}

// DomainSize returns the domain size of variable v.
func (t *Task) DomainSize(v int) int {
	return t.variables[v].DomainSize
}

// Variables returns the task's variable declarations (read-only; caller must
// not mutate the returned slice).
func (t *Task) Variables() []Variable {
	return t.variables
}

// InitialState returns a fresh unpacked copy of the initial state.
func (t *Task) InitialState() State {
	return t.initial.Clone()
}

// Goal returns the goal partial assignment.
func (t *Task) Goal() Assignment {
	return t.goal
}

// Operators returns all grounded operators.
func (t *Task) Operators() []Operator {
	return t.operators
}

// OperatorByID returns the operator with the given id (its declaration index).
func (t *Task) OperatorByID(id OperatorID) Operator {
	return t.operators[int(id)]
}

// IsApplicable reports whether op's preconditions hold in s.
func (t *Task) IsApplicable(op Operator, s State) bool {
	for v, val := range op.Preconditions {
		if s[v] != val {
			return false
		}
	}
	return true
}

// Apply returns a new state obtained by applying op's effects to s. The
// caller must ensure IsApplicable(op, s); Apply itself does not check
// preconditions (mirrors the FDR successor-generator contract, where
// applicability has already been established by the caller).
func (t *Task) Apply(op Operator, s State) State {
	out := s.Clone()
	for v, val := range op.Effects {
		out[v] = val
	}
	return out
}

// SatisfiesGoal reports whether s satisfies the task's goal assignment.
func (t *Task) SatisfiesGoal(s State) bool {
	for v, val := range t.goal {
		if s[v] != val {
			return false
		}
	}
	return true
}

// ApplicableOperators returns, in declaration order, every operator
// applicable in s.
func (t *Task) ApplicableOperators(s State) []Operator {
	var out []Operator
	for _, op := range t.operators {
		if t.IsApplicable(op, s) {
			out = append(out, op)
		}
	}
	return out
}
