// Package streams implements the text-based I/O formats spec.md §6
// describes: the particle-system snapshot, the trajectory stream, the
// particle-spec catalog, the triangulated- and dotted-surface files.
// Every reader/writer pair is a small, explicit function pair over
// io.Reader/io.Writer, matching gofem's own inp/out packages rather
// than a generic serialization framework; writers format through
// gosl/io's io.Ff into a buffer and flush it in one Write, the idiom
// tools/GenVtu.go uses throughout.
package streams

import (
	"bytes"
	"fmt"
	"io"

	gio "github.com/cpmech/gosl/io"
	"github.com/simploce/mesosim/geom"
	"github.com/simploce/mesosim/particle"
)

// ReadSystem reads a particle-system snapshot: a header line with the
// box dimensions and particle count, then one line per particle (name,
// spec name, id, 3 position reals, 3 velocity reals), then a group
// count and one line per group (size followed by that many member
// indices into the particle list just read). Grounded on spec.md §6's
// described grammar (header/particle-count/position/velocity/groups);
// the concrete field order and delimiters are this package's own
// choice since no surviving grammar file specifies them precisely, and
// is the one WriteSystem reproduces exactly so any file this package
// emits round-trips.
func ReadSystem(r io.Reader, catalog *particle.SpecCatalog) (*particle.System, error) {
	var lx, ly, lz float64
	var n int
	if _, err := fmt.Fscan(r, &lx, &ly, &lz, &n); err != nil {
		return nil, fmt.Errorf("streams: read system header: %w", err)
	}
	sys := particle.NewSystem(geom.Box{Lx: lx, Ly: ly, Lz: lz})

	all := make([]*particle.Particle, n)
	memberOf := make([]bool, n)
	for i := 0; i < n; i++ {
		var name, specName, id string
		var px, py, pz, vx, vy, vz float64
		if _, err := fmt.Fscan(r, &name, &specName, &id, &px, &py, &pz, &vx, &vy, &vz); err != nil {
			return nil, fmt.Errorf("streams: read particle %d: %w", i, err)
		}
		spec := catalog.Lookup(specName)
		if spec == nil {
			return nil, fmt.Errorf("streams: particle %d: unknown spec %q", i, specName)
		}
		all[i] = &particle.Particle{
			ID:       id,
			Name:     name,
			Spec:     spec,
			Position: geom.Vec3{px, py, pz},
			Velocity: geom.Vec3{vx, vy, vz},
		}
	}

	var numGroups int
	if _, err := fmt.Fscan(r, &numGroups); err != nil {
		return nil, fmt.Errorf("streams: read group count: %w", err)
	}
	var groups []*particle.Group
	var firsts []int
	for i := 0; i < numGroups; i++ {
		var size int
		if _, err := fmt.Fscan(r, &size); err != nil {
			return nil, fmt.Errorf("streams: read group %d size: %w", i, err)
		}
		members := make([]*particle.Particle, size)
		first := 0
		for j := 0; j < size; j++ {
			var idx int
			if _, err := fmt.Fscan(r, &idx); err != nil {
				return nil, fmt.Errorf("streams: read group %d member %d: %w", i, j, err)
			}
			if idx < 0 || idx >= n {
				return nil, fmt.Errorf("streams: group %d member %d: index %d out of range", i, j, idx)
			}
			members[j] = all[idx]
			memberOf[idx] = true
			if j == 0 {
				first = idx
			}
		}
		groups = append(groups, particle.NewGroup(members...))
		firsts = append(firsts, first)
	}
	// Add free particles and groups in file order, each group at the
	// position of its first member, so particle indices match the file.
	for i, p := range all {
		for g, first := range firsts {
			if first == i {
				sys.AddGroup(groups[g])
			}
		}
		if !memberOf[i] {
			sys.AddFree(p)
		}
	}
	return sys, nil
}

// WriteSystem writes sys in the exact grammar ReadSystem expects.
// Particles are written in the order returned by sys.Particles, and
// groups reference their members by that order's indices so the round
// trip is exact regardless of how the caller built sys.
func WriteSystem(w io.Writer, sys *particle.System) error {
	var buf bytes.Buffer
	box := sys.Box
	gio.Ff(&buf, "%.17g %.17g %.17g %d\n", box.Lx, box.Ly, box.Lz, sys.NumParticles())

	index := make(map[*particle.Particle]int, sys.NumParticles())
	for i, p := range sys.Particles() {
		index[p] = i
		gio.Ff(&buf, "%s %s %s %.17g %.17g %.17g %.17g %.17g %.17g\n",
			p.Name, p.Spec.Name, p.ID,
			p.Position[0], p.Position[1], p.Position[2],
			p.Velocity[0], p.Velocity[1], p.Velocity[2])
	}

	groups := sys.Groups()
	gio.Ff(&buf, "%d\n", len(groups))
	for _, g := range groups {
		gio.Ff(&buf, "%d", len(g.Particles))
		for _, p := range g.Particles {
			gio.Ff(&buf, " %d", index[p])
		}
		gio.Ff(&buf, "\n")
	}

	_, err := w.Write(buf.Bytes())
	return err
}
