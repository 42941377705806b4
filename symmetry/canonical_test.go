package symmetry_test

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvardsen/symplan/isomorphism"
	"github.com/halvardsen/symplan/permutation"
	"github.com/halvardsen/symplan/planningtask"
	"github.com/halvardsen/symplan/symmetry"
)

// twoBlockSwapGroup builds a Group over two boolean variables with one
// generator swapping them (spec.md §8 scenario 2, "pure variable swap").
func twoBlockSwapGroup(t *testing.T) (*symmetry.Group, *permutation.FactTables) {
	t.Helper()
	tables := permutation.NewFactTables([]int{2, 2})
	g := symmetry.NewGroup(tables)
	raw := permutation.IdentityRaw(tables.PermutationLength)
	raw[0], raw[1] = raw[1], raw[0] // variable vertices swap too
	raw[2], raw[4] = raw[4], raw[2] // (v0,0) <-> (v1,0)
	raw[3], raw[5] = raw[5], raw[3] // (v0,1) <-> (v1,1)
	require.NoError(t, g.AddRawGenerator(raw))
	return g, tables
}

func TestScenarioPureVariableSwapCanonicalizes(t *testing.T) {
	g, _ := twoBlockSwapGroup(t)
	assert.True(t, g.HasSymmetries())

	canon10 := g.CanonicalRepresentative([]int{1, 0})
	canon01 := g.CanonicalRepresentative([]int{0, 1})
	assert.Equal(t, []int{0, 1}, canon10)
	assert.Equal(t, []int{0, 1}, canon01)

	trace10 := g.TraceToCanonical([]int{1, 0})
	trace01 := g.TraceToCanonical([]int{0, 1})
	assert.Len(t, trace10, 1)
	assert.Len(t, trace01, 0)
}

func TestScenarioTrivialGroupHasNoSymmetries(t *testing.T) {
	tables := permutation.NewFactTables([]int{2, 2})
	task := trivialTwoVarTask(t)

	engine := &isomorphism.BruteForceEngine{}
	// A task whose two variables are distinguished by the goal (stabilized)
	// and whose untouched variable v1 has its two values told apart by the
	// stabilized initial state has no automorphism beyond identity.
	g := symmetry.NewGroup(tables, symmetry.WithStabilizeGoal(true), symmetry.WithUseColorForStabilizingGoal(true),
		symmetry.WithStabilizeInitialState(true))
	require.NoError(t, g.ComputeSymmetries(context.Background(), engine, task))
	assert.False(t, g.HasSymmetries())
}

func trivialTwoVarTask(t *testing.T) *planningtask.Task {
	t.Helper()
	vars := []planningtask.Variable{{Name: "v0", DomainSize: 2}, {Name: "v1", DomainSize: 2}}
	initial := planningtask.State{0, 0}
	goal := planningtask.Assignment{0: 1}
	ops := []planningtask.Operator{
		{Name: "set-v0", Cost: 1, Preconditions: planningtask.Assignment{0: 0}, Effects: planningtask.Assignment{0: 1}},
	}
	task, err := planningtask.NewTask(vars, initial, goal, ops)
	require.NoError(t, err)
	return task
}

func TestCanonicalizationIdempotent(t *testing.T) {
	g, _ := twoBlockSwapGroup(t)
	parameters := gopter.DefaultTestParametersWithSeed(42)
	properties := gopter.NewProperties(parameters)

	properties.Property("T2: canonical(canonical(s)) = canonical(s)", prop.ForAll(
		func(a, b int) bool {
			s := []int{a % 2, b % 2}
			once := g.CanonicalRepresentative(s)
			twice := g.CanonicalRepresentative(once)
			return intsEqual(once, twice)
		},
		gen.IntRange(0, 1000),
		gen.IntRange(0, 1000),
	))
	properties.TestingRun(t)
}

func TestTraceCorrectness(t *testing.T) {
	g, tables := twoBlockSwapGroup(t)
	parameters := gopter.DefaultTestParametersWithSeed(7)
	properties := gopter.NewProperties(parameters)

	properties.Property("T4: apply(permutation_from_trace(trace_to_canonical(s)), s) = canonical(s)", prop.ForAll(
		func(a, b int) bool {
			s := []int{a % 2, b % 2}
			trace := g.TraceToCanonical(s)
			raw := g.PermutationFromTrace(trace)
			applied := permutation.ApplyToState(raw, tables, s)
			canon := g.CanonicalRepresentative(s)
			return intsEqual(applied, canon)
		},
		gen.IntRange(0, 1000),
		gen.IntRange(0, 1000),
	))
	properties.TestingRun(t)
}

func TestStateToStateCorrectness(t *testing.T) {
	g, tables := twoBlockSwapGroup(t)

	raw, err := g.CreatePermutationFromStateToState([]int{1, 0}, []int{0, 1})
	require.NoError(t, err)
	got := permutation.ApplyToState(raw, tables, []int{1, 0})
	assert.Equal(t, []int{0, 1}, got)
}

func TestStateToStateRejectsDifferentOrbits(t *testing.T) {
	tables := permutation.NewFactTables([]int{3, 3})
	g := symmetry.NewGroup(tables)
	raw := permutation.IdentityRaw(tables.PermutationLength)
	// Swap the two variables' fact blocks entirely (domain size 3 each).
	raw[0], raw[1] = raw[1], raw[0]
	raw[2], raw[5] = raw[5], raw[2]
	raw[3], raw[6] = raw[6], raw[3]
	raw[4], raw[7] = raw[7], raw[4]
	require.NoError(t, g.AddRawGenerator(raw))

	_, err := g.CreatePermutationFromStateToState([]int{0, 0}, []int{1, 2})
	assert.ErrorIs(t, err, symmetry.ErrNotInSameOrbit)
}

func TestEquivalenceClassesGroupsSwappedVariables(t *testing.T) {
	g, _ := twoBlockSwapGroup(t)
	classes := g.EquivalenceClasses()
	require.Len(t, classes, 1)
	assert.ElementsMatch(t, []int{0, 1}, classes[0])
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
