// Command symplan is the thin demo/driver binary wiring planningtask,
// isomorphism, symmetry, searchspace and symheuristic together end to end:
// it builds a small symmetric planning task, computes its automorphism
// group, runs a uniform-cost search that records parent links, traces the
// resulting plan back through the symmetry-aware algorithm, and reports the
// symmetrical-lookups heuristic's diagnostic counters along the way.
//
// Mirrors the teacher's examples/*.go demos: plain func main(), stdlib
// flag, no CLI framework — flag parsing is the one outer-layer concern
// spec.md §1 explicitly puts out of scope for the core packages.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/halvardsen/symplan/internal/xlog"
	"github.com/halvardsen/symplan/isomorphism"
	"github.com/halvardsen/symplan/permutation"
	"github.com/halvardsen/symplan/planningtask"
	"github.com/halvardsen/symplan/searchspace"
	"github.com/halvardsen/symplan/symheuristic"
	"github.com/halvardsen/symplan/symmetry"
)

func main() {
	verbose := flag.Bool("verbose", false, "log symmetry computation diagnostics to stderr")
	lookups := flag.String("lookups", "all", "symmetrical-lookups mode: none, one, subset, all")
	flag.Parse()

	logger := xlog.Stderr()

	lookupMode, err := parseLookupMode(*lookups)
	if err != nil {
		logger.Fatal().Err(err).Msg("parse -lookups flag")
	}

	task, tables := buildCorridorTask(logger)

	group := symmetry.NewGroup(tables,
		symmetry.WithSymmetricalLookups(lookupMode),
		symmetry.WithSearchSymmetries(symmetry.SearchSymmetryOSS),
	)
	registry := planningtask.NewStateRegistry(task)
	space := searchspace.New(registry)
	if *verbose {
		group = group.WithLogger(logger)
		space = space.WithLogger(logger)
	}

	engine := &isomorphism.BruteForceEngine{}
	if err := group.ComputeSymmetries(context.Background(), engine, task); err != nil {
		logger.Fatal().Err(err).Msg("compute symmetries")
	}
	fmt.Printf("generators found: %d (identity-on-facts: %d)\n", group.NumGenerators(), group.NumIdentityGenerators())

	goalID, err := searchspace.UniformCostSearch(task, registry, space)
	if err != nil {
		logger.Fatal().Err(err).Msg("search")
	}

	plan, err := space.TracePath(goalID, task, group)
	if err != nil {
		logger.Fatal().Err(err).Msg("trace plan")
	}
	fmt.Println("plan:")
	for _, opID := range plan {
		fmt.Printf("  %s\n", task.OperatorByID(opID).Name)
	}

	if lookupMode != symmetry.LookupNone && group.HasSymmetries() {
		reportHeuristicStats(task, group, logger)
	}
}

func parseLookupMode(s string) (symmetry.LookupMode, error) {
	switch s {
	case "none":
		return symmetry.LookupNone, nil
	case "one":
		return symmetry.LookupOneState, nil
	case "subset":
		return symmetry.LookupSubsetOfStates, nil
	case "all":
		return symmetry.LookupAllStates, nil
	default:
		return 0, fmt.Errorf("unknown -lookups value %q (want none, one, subset, or all)", s)
	}
}

// buildCorridorTask builds a toy task with two structurally interchangeable
// rooms (v0, v1) that must both be lit before a hallway (v2) can be
// traversed — the room-swap is a genuine automorphism of the task graph.
func buildCorridorTask(logger zerolog.Logger) (*planningtask.Task, *permutation.FactTables) {
	vars := []planningtask.Variable{
		{Name: "room-a-lit", DomainSize: 2},
		{Name: "room-b-lit", DomainSize: 2},
		{Name: "hallway-crossed", DomainSize: 2},
	}
	initial := planningtask.State{0, 0, 0}
	goal := planningtask.Assignment{0: 1, 1: 1, 2: 1}
	ops := []planningtask.Operator{
		{Name: "light-room-a", Cost: 1, Preconditions: planningtask.Assignment{0: 0}, Effects: planningtask.Assignment{0: 1}},
		{Name: "light-room-b", Cost: 1, Preconditions: planningtask.Assignment{1: 0}, Effects: planningtask.Assignment{1: 1}},
		{Name: "cross-hallway", Cost: 1, Preconditions: planningtask.Assignment{0: 1, 1: 1, 2: 0}, Effects: planningtask.Assignment{2: 1}},
	}
	task, err := planningtask.NewTask(vars, initial, goal, ops)
	if err != nil {
		logger.Fatal().Err(err).Msg("build task")
	}
	tables := permutation.NewFactTables([]int{2, 2, 2})
	return task, tables
}

// reportHeuristicStats wraps a trivial goal-count heuristic in
// SymmetricalLookupsHeuristic and evaluates the initial state, to exercise
// the statistics counters end to end.
func reportHeuristicStats(task *planningtask.Task, group *symmetry.Group, logger zerolog.Logger) {
	stats := &symheuristic.Stats{}
	h, err := symheuristic.New(task, goalCountHeuristic{task}, group, stats)
	if err != nil {
		logger.Warn().Err(err).Msg("symmetrical-lookups heuristic unavailable")
		return
	}
	value, deadEnd := h.Evaluate(task.InitialState())
	fmt.Printf("heuristic(initial) = %d (dead end: %v)\n", value, deadEnd)
	fmt.Printf("symmetrical states generated: %d, improved evaluations: %d, improving images: %d\n",
		stats.SymmetricalStatesGenerated, stats.SymmetryImprovedEvaluations, stats.ImprovingSymmetricalStates)
}

// goalCountHeuristic is the simplest possible Evaluator: the number of goal
// conditions still unsatisfied. Never a dead end, by construction.
type goalCountHeuristic struct {
	task *planningtask.Task
}

func (h goalCountHeuristic) Evaluate(state planningtask.State) (int, bool) {
	unsatisfied := 0
	for v, val := range h.task.Goal() {
		if state[v] != val {
			unsatisfied++
		}
	}
	return unsatisfied, false
}
