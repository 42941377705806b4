package isomorphism

import (
	"context"
	"fmt"
	"sort"

	"github.com/halvardsen/symplan/permutation"
	"github.com/halvardsen/symplan/planningtask"
)

// BruteForceEngine is a deterministic Engine backed by exhaustive,
// colour-class-pruned backtracking search over the task's symmetry graph.
// It is the reference implementation used by this module's own tests and
// the cmd/symplan demo: never point it at a grounded task of real size, it
// has no refinement heuristics beyond colour partitioning.
type BruteForceEngine struct {
	// MaxVertices bounds the constructed graph's total vertex count; graphs
	// larger than this return Result{OK: false}. Zero means use
	// DefaultMaxVertices.
	MaxVertices int
	// MaxClassSize bounds the largest single colour class searched;
	// exceeding it also returns Result{OK: false} rather than risk
	// factorial blowup. Zero means use DefaultMaxClassSize.
	MaxClassSize int
}

// DefaultMaxVertices and DefaultMaxClassSize are generous for the synthetic
// tasks this module tests against and conservative for anything grounded
// from a real PDDL domain.
const (
	DefaultMaxVertices  = 64
	DefaultMaxClassSize = 8
)

// Version reports a fixed semantic version, checked by symmetry.Group's
// semver gate (which only rejects 0.x engines whose minor version differs
// from the configured EngineMinorVersion).
func (e *BruteForceEngine) Version() string { return "1.0.0" }

// symGraph is the symmetry graph built from a grounded task: variable
// vertices, fact vertices (laid out identically to the shared
// permutation.FactTables indexing, so raw generators need no translation
// for their first PermutationLength entries), and operator/role vertices
// that keep precondition-edges and effect-edges structurally distinct.
type symGraph struct {
	n     int
	color []string
	adj   []map[int]bool
}

func newSymGraph(n int) *symGraph {
	g := &symGraph{n: n, color: make([]string, n), adj: make([]map[int]bool, n)}
	for i := range g.adj {
		g.adj[i] = make(map[int]bool)
	}
	return g
}

func (g *symGraph) addEdge(a, b int) {
	g.adj[a][b] = true
	g.adj[b][a] = true
}

// buildGraph grounds task into a symGraph. Vertices [0, NumVariables) are
// variable vertices; [NumVariables, PermutationLength) are fact vertices in
// exactly the tables.Index(v, val) order. Beyond PermutationLength come one
// vertex per operator, plus one role vertex per (operator, referenced fact)
// pair, tagged "pre" or "eff" so the search never conflates a
// precondition-edge with an effect-edge.
func buildGraph(task *planningtask.Task, tables *permutation.FactTables, cfg Config) *symGraph {
	numVars := task.NumVariables()
	l := tables.PermutationLength
	numOps := len(task.Operators())

	// First pass: count role vertices so we can size the graph.
	roleCount := 0
	for _, op := range task.Operators() {
		roleCount += len(op.Preconditions) + len(op.Effects)
	}

	g := newSymGraph(l + numOps + roleCount)

	initial := task.InitialState()
	goal := task.Goal()

	for v := 0; v < numVars; v++ {
		g.color[v] = fmt.Sprintf("var:%d", task.DomainSize(v))
	}
	for v := 0; v < numVars; v++ {
		for val := 0; val < task.DomainSize(v); val++ {
			idx := tables.Index(v, val)
			tag := "fact"
			if cfg.StabilizeInitialState && initial[v] == val {
				tag += ":init"
			}
			if cfg.StabilizeGoal && cfg.UseColorForStabilizingGoal {
				if gv, ok := goal[v]; ok && gv == val {
					tag += ":goal"
				}
			}
			g.color[idx] = tag
			g.addEdge(v, idx)
		}
	}
	if cfg.StabilizeGoal && !cfg.UseColorForStabilizingGoal {
		// Auxiliary-node stabilization: one extra vertex per goal fact,
		// connected only to that fact, instead of recolouring it. This
		// still breaks any automorphism that would move the goal fact,
		// without splitting the general "fact" colour class for anything
		// that isn't a goal fact.
		goalVars := make([]int, 0, len(goal))
		for v := range goal {
			goalVars = append(goalVars, v)
		}
		sort.Ints(goalVars)
		next := g.n
		extra := len(goalVars)
		g.growTo(next + extra)
		for i, v := range goalVars {
			aux := next + i
			g.color[aux] = "goal-aux"
			g.addEdge(aux, tables.Index(v, goal[v]))
		}
	}

	opBase := l
	roleBase := l + numOps
	role := roleBase
	for i, op := range task.Operators() {
		opVertex := opBase + i
		g.color[opVertex] = fmt.Sprintf("op:%d", op.Cost)
		for v, val := range op.Preconditions {
			g.color[role] = "pre"
			g.addEdge(opVertex, role)
			g.addEdge(role, tables.Index(v, val))
			role++
		}
		for v, val := range op.Effects {
			g.color[role] = "eff"
			g.addEdge(opVertex, role)
			g.addEdge(role, tables.Index(v, val))
			role++
		}
	}
	return g
}

// growTo extends the graph to n vertices, used only by the goal-auxiliary-node
// path which is sized after the initial vertex count is fixed.
func (g *symGraph) growTo(n int) {
	if n <= g.n {
		return
	}
	g.color = append(g.color, make([]string, n-g.n)...)
	for len(g.adj) < n {
		g.adj = append(g.adj, make(map[int]bool))
	}
	g.n = n
}

// ComputeSymmetries finds every automorphism of task's symmetry graph by
// colour-class-pruned backtracking and returns the non-identity ones as
// generators.
func (e *BruteForceEngine) ComputeSymmetries(ctx context.Context, task *planningtask.Task, tables *permutation.FactTables, cfg Config) Result {
	g := buildGraph(task, tables, cfg)

	maxVertices := e.MaxVertices
	if maxVertices == 0 {
		maxVertices = DefaultMaxVertices
	}
	maxClassSize := e.MaxClassSize
	if maxClassSize == 0 {
		maxClassSize = DefaultMaxClassSize
	}
	if g.n > maxVertices {
		return Result{OK: false, Reason: ErrGraphTooLarge, GraphSize: g.n}
	}

	classes := make(map[string][]int)
	for v := 0; v < g.n; v++ {
		classes[g.color[v]] = append(classes[g.color[v]], v)
	}
	for _, members := range classes {
		if len(members) > maxClassSize {
			return Result{OK: false, Reason: ErrGraphTooLarge, GraphSize: g.n}
		}
	}

	order := make([]int, g.n)
	for i := range order {
		order[i] = i
	}

	assign := make([]int, g.n)
	for i := range assign {
		assign[i] = -1
	}
	used := make([]bool, g.n)

	var automorphisms []permutation.Raw
	var backtrack func(pos int) bool
	backtrack = func(pos int) bool {
		select {
		case <-ctx.Done():
			return false
		default:
		}
		if pos == g.n {
			raw := make(permutation.Raw, g.n)
			copy(raw, assign)
			automorphisms = append(automorphisms, raw)
			return true
		}
		v := order[pos]
		for _, t := range classes[g.color[v]] {
			if used[t] {
				continue
			}
			consistent := true
			for w := 0; w < pos; w++ {
				u := order[w]
				if g.adj[v][u] != g.adj[t][assign[u]] {
					consistent = false
					break
				}
			}
			if !consistent {
				continue
			}
			assign[v] = t
			used[t] = true
			backtrack(pos + 1)
			assign[v] = -1
			used[t] = false
		}
		return true
	}
	if ok := backtrack(0); !ok || ctx.Err() != nil {
		return Result{OK: false, Reason: ctx.Err(), GraphSize: g.n}
	}

	generators := make([]permutation.Raw, 0, len(automorphisms))
	identity := permutation.IdentityRaw(g.n)
	for _, a := range automorphisms {
		if !a.Equal(identity) {
			generators = append(generators, a)
		}
	}

	return Result{OK: true, GraphSize: g.n, Generators: generators}
}
