package symmetry

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/blang/semver/v4"
	"github.com/rs/zerolog"

	"github.com/halvardsen/symplan/internal/gendump"
	"github.com/halvardsen/symplan/internal/xlog"
	"github.com/halvardsen/symplan/isomorphism"
	"github.com/halvardsen/symplan/permutation"
	"github.com/halvardsen/symplan/planningtask"
)

// Group is the symmetry-group representation of spec.md §4.3: a read-only,
// single-owner-thread collection of generators built once from an
// isomorphism.Engine, plus the canonicalization/trace/enumeration
// algorithms layered on top of them.
//
// Group carries no mutex. Per spec.md §5 ("must be confined to one owner
// thread") and SPEC_FULL.md §5, that confinement is enforced by omission,
// not documented and then contradicted by a lock — unlike core.Graph's
// genuinely-concurrent sync.RWMutex design in this module's teacher.
type Group struct {
	tables *permutation.FactTables
	config Config
	log    zerolog.Logger
	rng    *rand.Rand

	initialized bool
	generators  []*permutation.Permutation

	numIdentityGenerators int
	// dumpGenerators holds every raw generator handed to AddRawGenerator
	// (identity or not), each reduced to its moved-vertex mapping, for
	// WriteGeneratorsText/WriteGeneratorsBinary.
	dumpGenerators []gendump.Generator
}

// NewGroup constructs an uninitialized Group over tables. Generators come
// from a single ComputeSymmetries call or from direct AddRawGenerator calls;
// until one of them stores a generator, the group has no symmetries
// (HasSymmetries() == false).
func NewGroup(tables *permutation.FactTables, opts ...Option) *Group {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Group{
		tables: tables,
		config: cfg,
		log:    xlog.Nop(),
		rng:    rngFromSeed(cfg.RNGSeed),
	}
}

// WithLogger attaches a logger to an already-constructed Group (not a
// construction Option, since the zero-value Group must remain usable
// without one — mirrors xlog.Nop() as the silent default elsewhere).
func (g *Group) WithLogger(logger zerolog.Logger) *Group {
	g.log = logger
	return g
}

// Config returns the group's configuration record.
func (g *Group) Config() Config { return g.config }

// Tables returns the fact/variable index map this group was built over.
func (g *Group) Tables() *permutation.FactTables { return g.tables }

// HasSymmetries reports whether the group holds at least one non-identity
// generator (spec.md §4.3: "has_symmetries() is true iff generators is
// non-empty").
func (g *Group) HasSymmetries() bool { return len(g.generators) > 0 }

// NumGenerators returns the count of stored (non-identity-on-facts)
// generators.
func (g *Group) NumGenerators() int { return len(g.generators) }

// NumIdentityGenerators returns the count of generators that were identity
// on facts and so were not stored for canonicalization.
func (g *Group) NumIdentityGenerators() int { return g.numIdentityGenerators }

// Generator returns the i'th stored generator.
func (g *Group) Generator(i int) *permutation.Permutation { return g.generators[i] }

// ComputeSymmetries invokes engine over task, feeding every returned raw
// generator through AddRawGenerator. It may be called exactly once
// (spec.md §7 "Double initialization... terminal").
//
// Engine failure, timeout, or a version-incompatible engine are all soft
// failures (spec.md §7): initialized becomes true, any partial generators
// are discarded, and HasSymmetries() is false — the caller proceeds without
// symmetries rather than aborting.
func (g *Group) ComputeSymmetries(ctx context.Context, engine isomorphism.Engine, task *planningtask.Task) error {
	if g.initialized {
		return ErrAlreadyInitialized
	}
	g.initialized = true

	if err := g.checkEngineVersion(engine); err != nil {
		g.log.Warn().Err(err).Msg("isomorphism engine version incompatible, proceeding without symmetries")
		return nil
	}

	cfg := isomorphism.Config{
		StabilizeInitialState:      g.config.StabilizeInitialState,
		StabilizeGoal:              g.config.StabilizeGoal,
		UseColorForStabilizingGoal: g.config.UseColorForStabilizingGoal,
		TimeBoundSeconds:           g.config.TimeBoundSeconds,
		DumpSymmetryGraph:          g.config.DumpSymmetryGraph,
	}
	result := engine.ComputeSymmetries(ctx, task, g.tables, cfg)
	if !result.OK {
		g.log.Warn().Err(result.Reason).Msg("isomorphism engine reported failure, proceeding without symmetries")
		g.generators = nil
		g.numIdentityGenerators = 0
		return nil
	}

	for _, raw := range result.Generators {
		if err := g.AddRawGenerator(raw); err != nil {
			g.log.Warn().Err(err).Msg("engine emitted a malformed generator, skipping")
			continue
		}
	}
	return nil
}

// checkEngineVersion gates the engine's reported semver (SPEC_FULL.md §4.3
// "Engine-version gate"): a 0.x engine whose minor version doesn't match
// what this Group was configured to expect is rejected exactly like a
// timeout. EngineMinorVersion == 0 disables the gate (accept any 0.x engine).
func (g *Group) checkEngineVersion(engine isomorphism.Engine) error {
	v, err := semver.Parse(engine.Version())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEngineVersionIncompatible, err)
	}
	if v.Major == 0 && g.config.EngineMinorVersion != 0 && v.Minor != uint64(g.config.EngineMinorVersion) {
		return fmt.Errorf("%w: engine %s, expected 0.%d.x", ErrEngineVersionIncompatible, v.String(), g.config.EngineMinorVersion)
	}
	return nil
}

// AddRawGenerator builds a Permutation from raw and classifies it:
// identity-on-facts generators are counted but not stored; all others are
// appended to generators in call order (spec.md §4.3 steps 1-3). Every raw
// generator, identity or not, is retained (in its moved-vertex form) for the
// optional generator dump.
func (g *Group) AddRawGenerator(raw permutation.Raw) error {
	perm, err := permutation.New(raw, g.tables)
	if err != nil {
		return err
	}

	moved := make(gendump.Generator)
	for i, to := range raw {
		if to != i {
			moved[i] = to
		}
	}
	g.dumpGenerators = append(g.dumpGenerators, moved)

	if perm.Identity() {
		g.numIdentityGenerators++
		return nil
	}
	g.generators = append(g.generators, perm)
	return nil
}

// CanonicalRepresentative computes a canonical representative of state by
// the greedy generator scan of spec.md §4.3.1: repeated ReplaceIfLess passes
// over the generators in order until a pass changes nothing. The result is
// deterministic given the generator order but is not guaranteed to be the
// true lexicographic minimum of the orbit. The input is not mutated.
func (g *Group) CanonicalRepresentative(state []int) []int {
	working := make([]int, len(state))
	copy(working, state)
	for {
		changed := false
		for _, gen := range g.generators {
			if gen.ReplaceIfLess(working) {
				changed = true
			}
		}
		if !changed {
			return working
		}
	}
}

// TraceToCanonical mirrors CanonicalRepresentative but additionally records,
// in order, the index of every generator whose ReplaceIfLess succeeded
// (spec.md §4.3.2).
func (g *Group) TraceToCanonical(state []int) []int {
	working := make([]int, len(state))
	copy(working, state)
	var trace []int
	for {
		changed := false
		for idx, gen := range g.generators {
			if gen.ReplaceIfLess(working) {
				trace = append(trace, idx)
				changed = true
			}
		}
		if !changed {
			return trace
		}
	}
}

// PermutationFromTrace folds a trace produced by TraceToCanonical into a
// single RawPermutation: starting from identity, for each generator index j
// in trace, new := compose(new, generators[j]) — i.e. new[i] :=
// generators[j].value(new[i]) (spec.md §4.3.2).
func (g *Group) PermutationFromTrace(trace []int) permutation.Raw {
	result := permutation.IdentityRaw(g.tables.PermutationLength)
	for _, j := range trace {
		composed, err := result.Compose(g.generators[j].Raw())
		if err != nil {
			// generators[j].Raw() is always length PermutationLength by
			// construction (permutation.New restricts to it); a mismatch
			// here means the Group was built over inconsistent tables,
			// which is a programmer error, not a recoverable input error.
			panic(fmt.Sprintf("symmetry: PermutationFromTrace: %v", err))
		}
		result = composed
	}
	return result
}

// CreatePermutationFromStateToState returns the permutation mapping a to b,
// via their shared canonical representative (spec.md §4.3.2 steps 1-4).
//
// Precondition: a and b lie in the same orbit. Unlike the source this is
// lifted from (spec.md §9(b): "silently returns a wrong permutation when
// the two states lie in different orbits"), this implementation detects
// the violation and returns ErrNotInSameOrbit instead of fabricating a
// permutation that does not actually map a to b.
func (g *Group) CreatePermutationFromStateToState(a, b []int) (permutation.Raw, error) {
	ta := g.TraceToCanonical(a)
	tb := g.TraceToCanonical(b)
	pa := g.PermutationFromTrace(ta)
	pb := g.PermutationFromTrace(tb)

	canonA := permutation.ApplyToState(pa, g.tables, a)
	canonB := permutation.ApplyToState(pb, g.tables, b)
	if !intSliceEqual(canonA, canonB) {
		return nil, ErrNotInSameOrbit
	}

	result, err := pa.Compose(pb.Inverse())
	if err != nil {
		panic(fmt.Sprintf("symmetry: CreatePermutationFromStateToState: %v", err))
	}
	return result, nil
}

func intSliceEqual(a, b []int) bool {
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

// EquivalenceClasses computes the union-find-style closure of which
// variables are connected, transitively, by some generator's
// AffectedVars(). Supplemented from original_source's
// group.cc:dump_variables_equivalence_classes (not in spec.md): read-only
// diagnostics over already-built generators, no new invariant. Classes of
// size 1 (a variable untouched by any generator) are omitted.
func (g *Group) EquivalenceClasses() [][]int {
	parent := make([]int, g.tables.NumVars)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	for _, gen := range g.generators {
		affected := gen.AffectedVars()
		for i := 1; i < len(affected); i++ {
			union(affected[0], affected[i])
		}
	}

	classes := make(map[int][]int)
	for v := 0; v < g.tables.NumVars; v++ {
		root := find(v)
		classes[root] = append(classes[root], v)
	}
	var out [][]int
	for _, members := range classes {
		if len(members) > 1 {
			out = append(out, members)
		}
	}
	return out
}

// WriteGeneratorsText writes every retained raw generator (identity-on-facts
// ones included, matching the original tool's write_generators) in the
// "generators.py" format: one Python-literal permutation list per line over
// a vertex numbering compacted to only the vertices some generator moves.
func (g *Group) WriteGeneratorsText(w io.Writer) error {
	return gendump.WriteText(w, g.dumpGenerators)
}

// WriteGeneratorsBinary is the cbor+intcomp supplement to WriteGeneratorsText,
// for grounded tasks large enough that the text form is unwieldy.
func (g *Group) WriteGeneratorsBinary(w io.Writer) error {
	return gendump.WriteBinary(w, g.dumpGenerators)
}
