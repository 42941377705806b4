// Package symmetry implements the symmetry-group representation at the
// heart of this module (spec.md §4.3): construction from an external
// isomorphism engine's raw generators, greedy-orbit canonicalization,
// permutation tracing (used both for plan reconstruction and for
// state-to-state symmetry mapping), and symmetric-state enumeration for
// ONE_STATE/SUBSET_OF_STATES/ALL_STATES lookup modes.
//
// Group is read-only after construction and, per spec.md §5, must be
// confined to one owner goroutine — it carries no mutex, unlike this
// module's teacher's pervasive core.Graph locking, because that locking
// idiom would misrepresent the single-threaded-confinement contract this
// layer actually has.
package symmetry
