// Package naive is a deliberately unsophisticated reactive engine: no
// dependency graph, no memoization, no lazy subscription. Any write
// marks the whole registry dirty and the next read of any cell
// re-evaluates every cell, in no particular order. It exists only as a
// benchmark baseline against which the dependency-tracking engine in
// package reactive can be measured.
package naive

import mapset "github.com/deckarep/golang-set/v2"

// cell is the minimal interface the system needs to drive a full
// re-evaluation pass; Signal, Computed and Effect all implement it.
type cell interface {
	eval()
}

// System is the shared registry of cells. Cells register themselves
// on construction and are never consulted individually for whether
// they need to run — once any write happens, every registered cell
// runs on the next read, every time, until Reset.
type System struct {
	cells mapset.Set[cell]
	dirty bool
}

// NewSystem creates an empty registry.
func NewSystem() *System {
	return &System{cells: mapset.NewSet[cell]()}
}

// Reset clears the dirty flag and drops every registered cell.
func (s *System) Reset() {
	s.dirty = false
	s.cells.Clear()
}

func (s *System) register(c cell) {
	s.cells.Add(c)
}

// remove deregisters c, e.g. on effect disposal.
func (s *System) remove(c cell) {
	s.cells.Remove(c)
}

// evalAll runs every registered cell once, in whatever order the set
// iterates — no topological ordering, since this engine has no
// dependency graph to order by. The dirty flag is lowered for the
// duration of the pass so that reads made by the cells being evaluated
// do not start a nested pass, and is restored afterwards.
func (s *System) evalAll() {
	wasDirty := s.dirty
	s.dirty = false
	for c := range s.cells.Iter() {
		c.eval()
	}
	s.dirty = wasDirty
}

// touch marks the registry dirty and immediately re-evaluates
// everything; a write never defers or batches.
func (s *System) touch() {
	s.dirty = true
	s.evalAll()
}

// settle re-evaluates everything if a write happened since the last
// settle; it is never cleared back to false, so once any write has
// ever occurred every later read pays for a full pass.
func (s *System) settle() {
	if s.dirty {
		s.evalAll()
	}
}
