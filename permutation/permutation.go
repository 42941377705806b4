package permutation

import "golang.org/x/exp/slices"

// Permutation is a Raw permutation lifted to the task: it additionally
// precomputes the set of variables whose value can change under
// application (AffectedVars) and the cycle decomposition restricted to
// fact positions. It is immutable after construction.
type Permutation struct {
	raw          Raw
	tables       *FactTables
	affectedVars []int   // sorted, deduplicated
	factCycles   [][]int // cycle decomposition over fact indices, length-1 cycles omitted
}

// New restricts generator (of length >= tables.PermutationLength, typically
// tables.PermutationLength or a larger graph_size covering operator
// vertices) to the first PermutationLength positions and builds the
// affected-variable set and fact-index cycle decomposition.
func New(generator Raw, tables *FactTables) (*Permutation, error) {
	l := tables.PermutationLength
	if len(generator) < l {
		return nil, ErrBadLength
	}
	raw := generator[:l].Clone()
	if err := ValidateBijection(raw); err != nil {
		return nil, err
	}

	p := &Permutation{raw: raw, tables: tables}
	p.computeAffectedVars()
	p.computeFactCycles()
	return p, nil
}

func (p *Permutation) computeAffectedVars() {
	seen := make(map[int]struct{})
	for i := p.tables.NumVars; i < len(p.raw); i++ {
		if p.raw[i] != i {
			v := p.tables.VarOfIndex(i)
			seen[v] = struct{}{}
		}
	}
	vars := make([]int, 0, len(seen))
	for v := range seen {
		vars = append(vars, v)
	}
	slices.Sort(vars)
	p.affectedVars = vars
}

func (p *Permutation) computeFactCycles() {
	n := len(p.raw)
	visited := make([]bool, n)
	var cycles [][]int
	for start := p.tables.NumVars; start < n; start++ {
		if visited[start] {
			continue
		}
		cur := start
		var cycle []int
		for {
			visited[cur] = true
			cycle = append(cycle, cur)
			cur = p.raw[cur]
			if cur == start {
				break
			}
		}
		if len(cycle) > 1 {
			cycles = append(cycles, cycle)
		}
	}
	p.factCycles = cycles
}

// Raw returns the underlying Raw vector (fact-restricted length).
func (p *Permutation) Raw() Raw {
	return p.raw
}

// Tables returns the FactTables this Permutation was built against.
func (p *Permutation) Tables() *FactTables {
	return p.tables
}

// Identity reports whether p is the identity when restricted to fact
// positions [NumVars, PermutationLength). Generators that move only
// variable-vertex positions (e.g. operator-vertex bookkeeping upstream) but
// are identity on facts are "identity on facts, not identity overall" per
// spec.md §4.3 — Group counts those separately and never stores them as
// search generators.
func (p *Permutation) Identity() bool {
	return len(p.factCycles) == 0
}

// AffectedVars returns the sorted, deduplicated list of variables whose
// value can change under application of p.
func (p *Permutation) AffectedVars() []int {
	return p.affectedVars
}

// FactCycles returns the cycle decomposition of p restricted to fact
// positions, omitting fixed points (cycles of length 1).
func (p *Permutation) FactCycles() [][]int {
	return p.factCycles
}

// Apply returns the state obtained by applying p to s.
func (p *Permutation) Apply(s []int) []int {
	return ApplyToState(p.raw, p.tables, s)
}

// ReplaceIfLess is the canonicalization primitive (spec.md §4.2, invariant
// P1): it compares Apply(p, state) against state lexicographically in
// variable order [0, NumVars), stopping at the first differing variable
// (O(NumVars) comparisons). If the permuted state is strictly smaller, it
// overwrites state in place and returns true; otherwise state is left
// untouched and it returns false.
func (p *Permutation) ReplaceIfLess(state []int) bool {
	permuted := p.Apply(state)
	for v := 0; v < p.tables.NumVars; v++ {
		if permuted[v] < state[v] {
			copy(state, permuted)
			return true
		}
		if permuted[v] > state[v] {
			return false
		}
	}
	return false
}
