// Package pairlist builds and drives the non-bonded pair list: the
// ordered (i,j) index pairs consulted once per step to accumulate
// pairwise energy and forces, partitioned across goroutines above a
// particle-count threshold.
//
// Grounded on spec.md §3 ("Pair list") and §4.2, and on
// original_source/simulation/include/simploce/simulation/s-properties.hpp
// for the pair-list contract; the concurrency idiom is the teacher's own
// (fem/t_bh_test.go's Test_bh14c: spawn goroutines, join on a channel).
package pairlist

import "github.com/simploce/mesosim/particle"

// Pair is one ordered index pair i<j into a particle.System's particle
// slice.
type Pair struct {
	I, J int
}

// List is the non-bonded pair list. Rebuilt periodically per Stride;
// stale lists between rebuilds are permissible per spec.md §3.
type List struct {
	Pairs    []Pair
	Stride   int
	Modified bool

	step int
}

// NewList returns an empty list with the given rebuild stride and
// Modified set; Rebuild fills it with every (free + grouped) particle
// pair, excluding pairs within the same bonded group (those are
// handled by bonded potentials, out of scope here).
func NewList(stride int) *List {
	return &List{Stride: stride, Modified: true}
}

// Rebuild regenerates Pairs from the system's current particle count
// if the configured stride has elapsed, or unconditionally if force
// is set. Sets Modified when the pair count (and thus any cached
// partition) has actually changed shape.
func (l *List) Rebuild(sys *particle.System, force bool) {
	l.step++
	if !force && l.Stride > 0 && l.step%l.Stride != 0 && l.Pairs != nil {
		return
	}
	groupOf := make(map[int]int)
	for gi, g := range sys.Groups() {
		for _, p := range g.Particles {
			groupOf[p.Index] = gi
		}
	}

	all := sys.Particles()
	n := len(all)
	pairs := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			gi, iOk := groupOf[all[i].Index]
			gj, jOk := groupOf[all[j].Index]
			if iOk && jOk && gi == gj {
				continue
			}
			pairs = append(pairs, Pair{I: i, J: j})
		}
	}

	oldLen := len(l.Pairs)
	l.Pairs = pairs
	l.Modified = oldLen != len(pairs)
}
