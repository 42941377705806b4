// Package permutation implements the raw permutation-vector algebra and the
// task-lifted Permutation type used by the structural-symmetry group: a
// permutation of fact indices (and, incidentally, of the variable/operator
// vertices the external isomorphism engine also permutes), plus the
// affected-variable set, fact-index cycle decomposition, and the
// replace-if-less canonicalization primitive built on top of it.
//
// Everything in this package is a pure value type: a Raw permutation vector
// and a Permutation are immutable once constructed, and every operation
// returns a new value rather than mutating its receiver (the one documented
// exception is Permutation.ReplaceIfLess, whose entire contract is
// in-place replacement of a caller-owned state vector).
package permutation
