package planningtask

import "strconv"

// StateRegistry owns packed (deduplicated) state storage for one task and
// hands out fresh unpacked copies on every read, matching the
// specification's "unpacked copies are per-call" contract. It is
// single-owner: the specification confines registries, like the search
// space built over them, to one owner thread (no internal locking).
type StateRegistry struct {
	task    *Task
	byKey   map[string]StateID
	byID    []State
	initial StateID
}

// NewStateRegistry creates a registry for task and registers its initial
// state as StateID 0.
func NewStateRegistry(task *Task) *StateRegistry {
	r := &StateRegistry{
		task:  task,
		byKey: make(map[string]StateID),
		byID:  make([]State, 0, 64),
	}
	r.initial = r.Register(task.InitialState())
	return r
}

// stateKey builds a deduplication key for a state. States are small fixed-length
// integer vectors, so a simple delimited decimal encoding is cheap and
// collision-free (no value is ever negative here).
func stateKey(s State) string {
	buf := make([]byte, 0, len(s)*4)
	for i, v := range s {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}
	return string(buf)
}

// Register deduplicates s against previously-seen states, returning the
// existing StateID if s was seen before or assigning a fresh one otherwise.
// Takes ownership of nothing: it stores its own clone of s.
func (r *StateRegistry) Register(s State) StateID {
	k := stateKey(s)
	if id, ok := r.byKey[k]; ok {
		return id
	}
	id := StateID(len(r.byID))
	r.byID = append(r.byID, s.Clone())
	r.byKey[k] = id
	return id
}

// Lookup returns which StateID, if any, is already registered for s.
func (r *StateRegistry) Lookup(s State) (StateID, bool) {
	id, ok := r.byKey[stateKey(s)]
	return id, ok
}

// Unpack returns a fresh unpacked copy of the state stored under id.
func (r *StateRegistry) Unpack(id StateID) (State, error) {
	if id < 0 || int(id) >= len(r.byID) {
		return nil, ErrStateNotFound
	}
	return r.byID[id].Clone(), nil
}

// MustUnpack is Unpack but panics on an unknown id; convenient for call
// sites (e.g. inside the search space) that treat an unknown id as a
// caller-protocol violation rather than recoverable input.
func (r *StateRegistry) MustUnpack(id StateID) State {
	s, err := r.Unpack(id)
	if err != nil {
		panic(err)
	}
	return s
}

// InitialStateID returns the StateID assigned to the task's initial state.
func (r *StateRegistry) InitialStateID() StateID {
	return r.initial
}

// Size returns the number of distinct registered states.
func (r *StateRegistry) Size() int {
	return len(r.byID)
}

// GenerateSuccessor applies op to the state stored under parent and
// registers the result in this registry, returning its StateID and unpacked
// value vector. It returns ErrOperatorNotApplicable, registering nothing,
// if op is not applicable in the parent state.
func (r *StateRegistry) GenerateSuccessor(parent StateID, op Operator) (StateID, State, error) {
	parentState, err := r.Unpack(parent)
	if err != nil {
		return NoStateID, nil, err
	}
	if !r.task.IsApplicable(op, parentState) {
		return NoStateID, nil, ErrOperatorNotApplicable
	}
	succ := r.task.Apply(op, parentState)
	id := r.Register(succ)
	return id, succ, nil
}

// RegisterExternal registers a state vector computed outside this registry
// (e.g. a symmetric image built by the symmetry package) and returns its
// StateID, deduplicating exactly like GenerateSuccessor/Register.
func (r *StateRegistry) RegisterExternal(s State) StateID {
	return r.Register(s)
}
