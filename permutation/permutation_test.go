package permutation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvardsen/symplan/permutation"
)

// Two variables, domain size 2: fact layout [v0 v1 | (v0,0) (v0,1) (v1,0) (v1,1)].
func twoVarTables() *permutation.FactTables {
	return permutation.NewFactTables([]int{2, 2})
}

func TestPermutationIdentity(t *testing.T) {
	tables := twoVarTables()
	p, err := permutation.New(permutation.IdentityRaw(tables.PermutationLength), tables)
	require.NoError(t, err)
	assert.True(t, p.Identity())
	assert.Empty(t, p.AffectedVars())
	assert.Empty(t, p.FactCycles())
}

func TestPermutationVariableSwapAffectedVarsAndCycles(t *testing.T) {
	tables := twoVarTables()
	raw := permutation.IdentityRaw(tables.PermutationLength)
	raw[2], raw[4] = raw[4], raw[2] // (v0,0) <-> (v1,0)
	raw[3], raw[5] = raw[5], raw[3] // (v0,1) <-> (v1,1)

	p, err := permutation.New(raw, tables)
	require.NoError(t, err)
	assert.False(t, p.Identity())
	assert.Equal(t, []int{0, 1}, p.AffectedVars())
	assert.Len(t, p.FactCycles(), 2)
}

func TestPermutationIdentityOnFactsButNotOnVariableVertices(t *testing.T) {
	// Variable-vertex positions move, but every fact position is fixed:
	// spec.md §4.3 says this must still report Identity() == true (it is
	// identity on facts; Group never stores it as a search generator).
	tables := twoVarTables()
	raw := permutation.IdentityRaw(tables.PermutationLength)
	raw[0], raw[1] = raw[1], raw[0]

	p, err := permutation.New(raw, tables)
	require.NoError(t, err)
	assert.True(t, p.Identity())
}

func TestReplaceIfLessOverwritesOnlyWhenStrictlySmaller(t *testing.T) {
	tables := twoVarTables()
	raw := permutation.IdentityRaw(tables.PermutationLength)
	raw[2], raw[4] = raw[4], raw[2]
	raw[3], raw[5] = raw[5], raw[3]
	p, err := permutation.New(raw, tables)
	require.NoError(t, err)

	// (1, 0) permutes to (0, 1), which is lexicographically smaller: replace.
	state := []int{1, 0}
	changed := p.ReplaceIfLess(state)
	assert.True(t, changed)
	assert.Equal(t, []int{0, 1}, state)

	// (0, 1) is already the smaller of the two: no change.
	state2 := []int{0, 1}
	changed2 := p.ReplaceIfLess(state2)
	assert.False(t, changed2)
	assert.Equal(t, []int{0, 1}, state2)
}

func TestNewRejectsShortGenerator(t *testing.T) {
	tables := twoVarTables()
	_, err := permutation.New(permutation.IdentityRaw(2), tables)
	assert.ErrorIs(t, err, permutation.ErrBadLength)
}

func TestNewRejectsNonBijection(t *testing.T) {
	tables := twoVarTables()
	bad := permutation.IdentityRaw(tables.PermutationLength)
	bad[0] = bad[1] // duplicate target, not a bijection
	_, err := permutation.New(bad, tables)
	assert.ErrorIs(t, err, permutation.ErrNotBijection)
}
