package symmetry

import "errors"

// Sentinel errors for Group construction, canonicalization, and enumeration.
var (
	// ErrAlreadyInitialized indicates a second ComputeSymmetries call on a
	// Group that already ran one (spec.md §7 "Double initialization" —
	// terminal, the caller programmed a protocol violation).
	ErrAlreadyInitialized = errors.New("symmetry: group already initialized")

	// ErrEngineVersionIncompatible indicates the isomorphism.Engine's
	// reported version failed Group's semver compatibility gate. Treated
	// exactly like an engine timeout: a soft failure (spec.md §7 "Engine
	// failure/timeout") — the group ends up with no generators.
	ErrEngineVersionIncompatible = errors.New("symmetry: isomorphism engine version incompatible")

	// ErrNotInSameOrbit is returned by CreatePermutationFromStateToState
	// when the two input states canonicalize differently. spec.md §9(b)
	// leaves this as an open question ("callers currently rely on the
	// invariant that this never happens... implementations should prefer
	// to detect and signal the violation"); this module resolves it by
	// signalling rather than silently returning a wrong permutation.
	ErrNotInSameOrbit = errors.New("symmetry: states are not in the same orbit")

	// ErrLookupModeDisabled indicates ComputeSymmetricStates was called on
	// a Group constructed with LookupNone.
	ErrLookupModeDisabled = errors.New("symmetry: symmetrical-lookup mode is disabled")

	// ErrLookupsRequireGroup indicates a
	// symheuristic.SymmetricalLookupsHeuristic was constructed against a
	// Group whose SymmetricalLookups mode is LookupNone (spec.md §7
	// "Configuration error").
	ErrLookupsRequireGroup = errors.New("symmetry: symmetrical-lookups heuristic requires a group with lookups enabled")
)
