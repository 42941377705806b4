// Package searchspace implements the per-state search-node bookkeeping and
// plan-reconstruction algorithms of spec.md §4.4/§4.5: a small state-machine
// handle (SearchNode) over per-state status/cost/parent information, and
// SearchSpace.TracePath, which dispatches between a plain reverse
// parent-link walk and the symmetry-aware four-phase reconstruction
// (spec.md §4.5.1) ported from
// original_source/src/search/search_space.cc:trace_path_with_symmetries.
//
// Like symmetry.Group, SearchSpace carries no mutex: spec.md §5 confines it
// to one owner goroutine, and a lock here would misrepresent that contract
// rather than enforce it.
package searchspace
