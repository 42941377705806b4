// Package symheuristic wraps an opaque delegate heuristic so that it also
// evaluates a state's symmetric images, per spec.md §4.6. It is grounded
// directly on original_source/src/search/symmetrical_lookups_heuristic.cc:
// the dead-end short-circuit, the "only evaluate symmetric images once the
// delegate already says not-dead-end" ordering, and the three-counter
// bookkeeping are all transliterated from that file rather than invented.
package symheuristic
