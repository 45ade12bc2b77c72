// Package geometry provides the point and bounding box math used to turn
// operator-placed extreme points into a tumor bounding region. All
// coordinates are in the volume's physical coordinate space (typically mm).
package geometry

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrInvalidFrame indicates an orientation frame with a degenerate axis.
var ErrInvalidFrame = errors.New("invalid orientation frame")

// minAxisNorm is the magnitude below which a frame axis is considered
// degenerate rather than merely unnormalized.
const minAxisNorm = 1e-9

// Frame holds a volume's native sampling axes as three unit vectors in
// physical space. Callers are expected to supply unit-normalized axes;
// Validate only rejects near-zero magnitudes.
type Frame struct {
	X, Y, Z r3.Vec
}

// Identity returns the frame aligned with the physical-space standard axes.
func Identity() Frame {
	return Frame{
		X: r3.Vec{X: 1},
		Y: r3.Vec{Y: 1},
		Z: r3.Vec{Z: 1},
	}
}

// IsIdentity reports whether the frame equals the standard axes exactly.
func (f Frame) IsIdentity() bool {
	return f == Identity()
}

// Validate checks that every axis has usable magnitude. It returns an error
// wrapping ErrInvalidFrame naming the first degenerate axis.
func (f Frame) Validate() error {
	axes := []struct {
		name string
		v    r3.Vec
	}{
		{"x", f.X},
		{"y", f.Y},
		{"z", f.Z},
	}

	for _, axis := range axes {
		if r3.Norm(axis.v) < minAxisNorm {
			return fmt.Errorf("%w: %s axis has near-zero magnitude", ErrInvalidFrame, axis.name)
		}
	}

	return nil
}

// FrameFromAffine extracts a volume's sampling axes from its image-to-physical
// affine transform. The first three columns of the matrix are the direction
// vectors of the image axes in physical space; they are unit-normalized here
// since affines usually fold the voxel spacing into them. The matrix must be
// at least 3x3 (3x4 and 4x4 affines are accepted, translation and the
// homogeneous row are ignored).
func FrameFromAffine(m mat.Matrix) (Frame, error) {
	rows, cols := m.Dims()
	if rows < 3 || cols < 3 {
		return Frame{}, fmt.Errorf("%w: affine must be at least 3x3, got %dx%d", ErrInvalidFrame, rows, cols)
	}

	column := func(j int) r3.Vec {
		return r3.Vec{X: m.At(0, j), Y: m.At(1, j), Z: m.At(2, j)}
	}

	f := Frame{X: column(0), Y: column(1), Z: column(2)}
	if err := f.Validate(); err != nil {
		return Frame{}, err
	}

	f.X = r3.Unit(f.X)
	f.Y = r3.Unit(f.Y)
	f.Z = r3.Unit(f.Z)

	return f, nil
}
