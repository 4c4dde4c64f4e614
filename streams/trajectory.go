package streams

import (
	"errors"
	"fmt"
	"io"

	"github.com/simploce/mesosim/geom"
)

// Frame is one state of a trajectory: one (position, velocity) pair
// per particle, in the system's particle order.
type Frame struct {
	Positions  []geom.Vec3
	Velocities []geom.Vec3
}

// TrajectoryReader reads a sequence of state frames from a stream,
// each frame a fixed-size block of per-particle position/velocity
// triples, until the stream's EOF. Grounded on spec.md §6's trajectory
// stream description: "frames are read sequentially and the loop
// terminates on stream EOF", mirrored here as Next returning
// (nil, io.EOF) rather than an error the caller must otherwise
// distinguish from a real read failure.
type TrajectoryReader struct {
	r   io.Reader
	n   int
	err error
}

// NewTrajectoryReader returns a reader over r for a system of
// numParticles particles, having already consumed and discarded the
// first skip frames.
func NewTrajectoryReader(r io.Reader, numParticles, skip int) (*TrajectoryReader, error) {
	if numParticles <= 0 {
		return nil, fmt.Errorf("streams: trajectory reader needs a positive particle count")
	}
	t := &TrajectoryReader{r: r, n: numParticles}
	for i := 0; i < skip; i++ {
		if _, err := t.Next(); err != nil {
			return nil, fmt.Errorf("streams: skipping frame %d: %w", i, err)
		}
	}
	return t, nil
}

// Next reads and returns the next frame, or (nil, io.EOF) once the
// stream is exhausted at a frame boundary.
func (t *TrajectoryReader) Next() (*Frame, error) {
	if t.err != nil {
		return nil, t.err
	}
	frame := &Frame{
		Positions:  make([]geom.Vec3, t.n),
		Velocities: make([]geom.Vec3, t.n),
	}
	for i := 0; i < t.n; i++ {
		var px, py, pz, vx, vy, vz float64
		_, err := fmt.Fscan(t.r, &px, &py, &pz, &vx, &vy, &vz)
		if err != nil {
			if i == 0 && errors.Is(err, io.EOF) {
				t.err = io.EOF
				return nil, io.EOF
			}
			t.err = fmt.Errorf("streams: trajectory frame truncated at particle %d: %w", i, err)
			return nil, t.err
		}
		frame.Positions[i] = geom.Vec3{px, py, pz}
		frame.Velocities[i] = geom.Vec3{vx, vy, vz}
	}
	return frame, nil
}
