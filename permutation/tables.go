package permutation

// FactTables is the fact/variable index map of spec.md §4.3.5, injected into
// Permutation (and into the free function ApplyToState) at construction
// time rather than held as a back-reference to a Group — see design note
// §9 ("no back references to Group from Permutation are needed at runtime
// beyond fact/variable decoding, which can be supplied by injecting the
// decoding tables at construction").
//
// Layout: positions [0, NumVars) are variable vertices; positions
// [NumVars, PermutationLength) are fact vertices, one per (variable, value)
// pair, grouped contiguously by variable in variable order.
type FactTables struct {
	// NumVars is the number of state variables (variable-vertex count).
	NumVars int
	// PermutationLength is NumVars plus the total number of facts.
	PermutationLength int
	// DomSumByVar[v] is the fact-index offset of variable v's first value:
	// DomSumByVar[v] = NumVars + sum(domain sizes of variables < v).
	DomSumByVar []int
	// VarByVal[i] is the variable owning fact index (NumVars + i).
	VarByVal []int
}

// NewFactTables builds the index map from a list of variable domain sizes.
func NewFactTables(domainSizes []int) *FactTables {
	t := &FactTables{
		NumVars:     len(domainSizes),
		DomSumByVar: make([]int, len(domainSizes)),
	}
	offset := len(domainSizes)
	for v, dom := range domainSizes {
		t.DomSumByVar[v] = offset
		for val := 0; val < dom; val++ {
			t.VarByVal = append(t.VarByVal, v)
		}
		offset += dom
	}
	t.PermutationLength = offset
	return t
}

// Index returns the fact index of (var=v, val=val): DomSumByVar[v] + val.
func (t *FactTables) Index(v, val int) int {
	return t.DomSumByVar[v] + val
}

// VarOfIndex returns the variable owning fact index i (i must be >= NumVars).
func (t *FactTables) VarOfIndex(i int) int {
	return t.VarByVal[i-t.NumVars]
}

// VarValOfIndex decodes fact index i into its (variable, value) pair.
func (t *FactTables) VarValOfIndex(i int) (v, val int) {
	v = t.VarOfIndex(i)
	val = i - t.DomSumByVar[v]
	return v, val
}

// IsFactIndex reports whether i falls in the fact-vertex range [NumVars, PermutationLength).
func (t *FactTables) IsFactIndex(i int) bool {
	return i >= t.NumVars && i < t.PermutationLength
}
