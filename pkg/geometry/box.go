package geometry

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrEmptyPointSet indicates a box was requested from zero points.
var ErrEmptyPointSet = errors.New("empty point set")

// Box is a rectangular bounding region in physical space. For each local
// axis i the box extends Center ± HalfExtents[i]·axis_i, where the axes are
// Orientation's. HalfExtents components are always non-negative; with an
// identity orientation the box is axis-aligned.
type Box struct {
	Center      r3.Vec
	HalfExtents r3.Vec
	Orientation Frame
}

// Size returns the full edge lengths of the box (2x the half extents).
func (b Box) Size() r3.Vec {
	return r3.Scale(2, b.HalfExtents)
}

// FromExtremePoints computes the bounding box of the given points expanded
// by relaxation on every face. It is a pure function: identical inputs
// produce bit-identical boxes, so relaxation changes are applied by calling
// it again from scratch rather than patching a previous result.
//
// The center and half extents always come from the component-wise min/max of
// the points in physical space. A nil frame yields an axis-aligned box; a
// non-nil frame is validated and attached as the box's local axes without
// altering the min/max computation, which approximates an oriented box well
// when the points lie near the volume's own axes.
//
// Negative relaxation is clamped to zero.
func FromExtremePoints(points []r3.Vec, relaxation float64, frame *Frame) (Box, error) {
	if len(points) == 0 {
		return Box{}, ErrEmptyPointSet
	}

	orientation := Identity()
	if frame != nil {
		if err := frame.Validate(); err != nil {
			return Box{}, err
		}
		orientation = *frame
	}

	if relaxation < 0 {
		relaxation = 0
	}

	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		min.Z = math.Min(min.Z, p.Z)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
		max.Z = math.Max(max.Z, p.Z)
	}

	margin := r3.Vec{X: relaxation, Y: relaxation, Z: relaxation}
	min = r3.Sub(min, margin)
	max = r3.Add(max, margin)

	return Box{
		Center:      r3.Scale(0.5, r3.Add(min, max)),
		HalfExtents: r3.Scale(0.5, r3.Sub(max, min)),
		Orientation: orientation,
	}, nil
}
