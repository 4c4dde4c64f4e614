package pairlist

import (
	"math"

	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
)

// particleCountThreshold is the point above which the driver forks
// sub-lists onto goroutines instead of running sequentially, matching
// original_source's MIN_NUMBER_OF_PARTICLES (s-conf.hpp).
const particleCountThreshold = 500

// Potential is anything that can evaluate one particle pair's
// contribution to the non-bonded energy/force; satisfied by every
// type in package potentials.
type Potential interface {
	Eval(pi, pj *particle.Particle) (energy float64, forceOnI geom.Vec3)
}

// Driver accumulates non-bonded energy and per-particle forces over a
// pair list, forking work across goroutines once the system is large
// enough to make that worthwhile. Grounded on spec.md §4.2.
type Driver struct {
	List *List

	partition    [][]Pair
	partitionLen int
}

// result is one worker's thread-local accumulation.
type result struct {
	energy float64
	forces []geom.Vec3
}

// Interact evaluates every configured pair potential over every pair
// in the list, accumulating total energy and adding forces into each
// particle's Force field (f_i += F, f_j -= F per pair, per Newton's
// third law). Below particleCountThreshold particles the pair list
// runs sequentially on the calling goroutine; above it, the list is
// split into K sub-lists, K-1 run on separate goroutines and the
// remaining one runs inline on the submitter, exactly the idiom the
// teacher uses for its own "launch N, join N" analyses.
func (d *Driver) Interact(sys *particle.System, potentials []Potential) (float64, error) {
	particles := sys.Particles()
	n := len(particles)

	if n <= particleCountThreshold {
		r := d.evalRange(particles, potentials, 0, len(d.List.Pairs))
		applyResult(particles, r)
		return r.energy, nil
	}

	k := numWorkers(n)
	d.ensurePartition(k)

	done := make(chan result, k-1)
	for w := 0; w < k-1; w++ {
		sub := d.partition[w]
		go func(sub []Pair) {
			done <- d.evalPairs(particles, potentials, sub)
		}(sub)
	}

	total := d.evalPairs(particles, potentials, d.partition[k-1])

	for w := 0; w < k-1; w++ {
		r := <-done
		total.energy += r.energy
		for i, f := range r.forces {
			total.forces[i] = geom.Add(total.forces[i], f)
		}
	}

	applyResult(particles, total)
	return total.energy, nil
}

func (d *Driver) evalRange(particles []*particle.Particle, potentials []Potential, lo, hi int) result {
	return d.evalPairs(particles, potentials, d.List.Pairs[lo:hi])
}

func (d *Driver) evalPairs(particles []*particle.Particle, potentials []Potential, pairs []Pair) result {
	forces := make([]geom.Vec3, len(particles))
	var energy float64
	for _, pr := range pairs {
		pi := particles[pr.I]
		pj := particles[pr.J]
		for _, pot := range potentials {
			e, f := pot.Eval(pi, pj)
			if math.IsNaN(e) || math.IsNaN(f[0]) || math.IsNaN(f[1]) || math.IsNaN(f[2]) {
				continue
			}
			energy += e
			forces[pr.I] = geom.Add(forces[pr.I], f)
			forces[pr.J] = geom.Sub(forces[pr.J], f)
		}
	}
	return result{energy: energy, forces: forces}
}

func applyResult(particles []*particle.Particle, r result) {
	for i, p := range particles {
		if i < len(r.forces) {
			p.AddForce(r.forces[i])
		}
	}
}

// numWorkers returns the number of sub-lists (including the one
// evaluated inline by the submitter) to partition into.
func numWorkers(n int) int {
	k := n / particleCountThreshold
	if k < 2 {
		k = 2
	}
	if k > 8 {
		k = 8
	}
	return k
}

// ensurePartition (re)computes the contiguous sub-slices of
// List.Pairs assigned to each of k workers, caching the split across
// calls until List.Modified is set (spec.md §4.2: "the partition is
// cached and reused until the pair list flips its modified flag").
func (d *Driver) ensurePartition(k int) {
	if !d.List.Modified && d.partitionLen == len(d.List.Pairs) && len(d.partition) == k {
		return
	}
	n := len(d.List.Pairs)
	bounds := make([][]Pair, 0, k)
	base := n / k
	rem := n % k
	lo := 0
	for w := 0; w < k; w++ {
		size := base
		if w < rem {
			size++
		}
		hi := lo + size
		bounds = append(bounds, d.List.Pairs[lo:hi])
		lo = hi
	}
	d.partition = bounds
	d.partitionLen = n
	d.List.Modified = false
}
