// Package isomorphism defines the external graph-isomorphism engine's
// callback surface (spec.md §6, "Consumed from the isomorphism engine") and
// a small deterministic reference implementation.
//
// The real engine (Bliss, in the system this module's specification was
// distilled from) is explicitly out of scope: "Computation of raw graph
// automorphisms by an external graph isomorphism engine (Bliss). The core
// only consumes the resulting generators as integer arrays." This package
// exists only so symmetry.Group has something concrete to call in tests and
// the demo binary — BruteForceEngine finds automorphisms of the grounded
// task's symmetry graph by exhaustive, colour-class-pruned backtracking,
// which is adequate for the small synthetic tasks this module tests against
// and entirely inadequate (by design: it is a reference stand-in, not a
// production isomorphism solver) for real grounded planning tasks.
package isomorphism

import (
	"context"
	"errors"

	"github.com/halvardsen/symplan/permutation"
	"github.com/halvardsen/symplan/planningtask"
)

// ErrGraphTooLarge indicates the task's symmetry graph (or one of its colour
// classes) exceeds BruteForceEngine's brute-force search limits. Returned as
// Result.OK == false, a soft failure like a real engine timeout.
var ErrGraphTooLarge = errors.New("isomorphism: symmetry graph too large for brute-force search")

// RawGenerator is one generator as emitted by the engine: a permutation
// vector of length Result.GraphSize, restricted by the caller (see
// permutation.New) to the first PermutationLength positions before use.
type RawGenerator = permutation.Raw

// Config mirrors the recognized Bliss-facing options of spec.md §6.
type Config struct {
	StabilizeInitialState      bool
	StabilizeGoal              bool
	UseColorForStabilizingGoal bool
	TimeBoundSeconds           int
	DumpSymmetryGraph          bool
}

// Result is what one ComputeSymmetries call returns.
type Result struct {
	// OK is false on engine failure or timeout (spec.md §7: a soft failure —
	// the caller clears any partial generators and proceeds without symmetries).
	OK bool
	// Reason explains a non-OK result, for logging only.
	Reason error
	// GraphSize is the total vertex count of the constructed symmetry graph,
	// i.e. spec.md's "graph_size ≥ permutation_length, including vertices
	// for operators".
	GraphSize int
	// Generators is the raw (unrestricted) generator list.
	Generators []RawGenerator
}

// Engine is the external isomorphism-engine callback surface.
type Engine interface {
	// Version reports the engine's semantic version, gated by
	// symmetry.Group.ComputeSymmetries (see blang/semver usage there).
	Version() string
	// ComputeSymmetries computes (or attempts to compute, within the given
	// time bound) the automorphism generators of task's symmetry graph.
	ComputeSymmetries(ctx context.Context, task *planningtask.Task, tables *permutation.FactTables, cfg Config) Result
}
