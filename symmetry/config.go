package symmetry

// SearchSymmetryMode selects how a containing search uses the group,
// spec.md §6 "search_symmetries".
type SearchSymmetryMode int

const (
	SearchSymmetryNone SearchSymmetryMode = iota
	SearchSymmetryOSS
	SearchSymmetryDKS
)

// LookupMode selects the symmetric-state enumeration strategy used by
// ComputeSymmetricStates, spec.md §4.3.3/§6 "symmetrical_lookups".
type LookupMode int

const (
	LookupNone LookupMode = iota
	LookupOneState
	LookupSubsetOfStates
	LookupAllStates
)

// Config is Group's configuration record, spec.md §6. No CLI flag parser
// lives here — cmd/symplan is the one outer layer that turns flags into a
// Config, exactly as design note §9 ("Plugin registration / option
// parsing... treat as an external collaborator. The core accepts a plain
// configuration record.") prescribes.
type Config struct {
	StabilizeInitialState      bool
	StabilizeGoal              bool
	UseColorForStabilizingGoal bool
	TimeBoundSeconds           int
	DumpSymmetryGraph          bool

	SearchSymmetries SearchSymmetryMode
	SymmetricalLookups LookupMode
	// SymmetryRWLengthOrNumberStates is K: the ONE_STATE random-walk
	// length, or the SUBSET_OF_STATES emission cap. Default 5.
	SymmetryRWLengthOrNumberStates int

	DumpPermutations     bool
	WriteSearchGenerators bool
	WriteAllGenerators    bool

	// EngineMinorVersion is the minor version this Group was built
	// expecting from its isomorphism.Engine, used by the semver
	// compatibility gate in ComputeSymmetries. Zero means "accept any
	// 0.x engine" (no gate).
	EngineMinorVersion int

	// RNGSeed seeds the ONE_STATE random walk. Zero uses the package's
	// deterministic default seed (rngFromSeed's convention), never a
	// time-based source.
	RNGSeed int64
}

// Option mutates a Config, following the teacher's functional-option
// pattern (bfs.Option / dijkstra.Option).
type Option func(*Config)

// defaultConfig mirrors spec.md §6's stated defaults.
func defaultConfig() Config {
	return Config{
		StabilizeInitialState:          false,
		StabilizeGoal:                  true,
		UseColorForStabilizingGoal:     true,
		SymmetryRWLengthOrNumberStates: 5,
	}
}

func WithStabilizeInitialState(v bool) Option {
	return func(c *Config) { c.StabilizeInitialState = v }
}

func WithStabilizeGoal(v bool) Option {
	return func(c *Config) { c.StabilizeGoal = v }
}

func WithUseColorForStabilizingGoal(v bool) Option {
	return func(c *Config) { c.UseColorForStabilizingGoal = v }
}

func WithTimeBoundSeconds(seconds int) Option {
	return func(c *Config) { c.TimeBoundSeconds = seconds }
}

func WithDumpSymmetryGraph(v bool) Option {
	return func(c *Config) { c.DumpSymmetryGraph = v }
}

func WithSearchSymmetries(mode SearchSymmetryMode) Option {
	return func(c *Config) { c.SearchSymmetries = mode }
}

func WithSymmetricalLookups(mode LookupMode) Option {
	return func(c *Config) { c.SymmetricalLookups = mode }
}

func WithSymmetryRWLengthOrNumberStates(k int) Option {
	return func(c *Config) { c.SymmetryRWLengthOrNumberStates = k }
}

func WithDumpPermutations(v bool) Option {
	return func(c *Config) { c.DumpPermutations = v }
}

func WithWriteSearchGenerators(v bool) Option {
	return func(c *Config) { c.WriteSearchGenerators = v }
}

func WithWriteAllGenerators(v bool) Option {
	return func(c *Config) { c.WriteAllGenerators = v }
}

func WithEngineMinorVersion(minor int) Option {
	return func(c *Config) { c.EngineMinorVersion = minor }
}

func WithRNGSeed(seed int64) Option {
	return func(c *Config) { c.RNGSeed = seed }
}
