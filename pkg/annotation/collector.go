// Package annotation implements the extreme-point annotation workflow: the
// per-volume point collector, the batch session controller and the record
// snapshot emitted for each finished volume.
package annotation

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// MaxPoints is the extreme-point cardinality: one operator-placed point per
// principal direction of the tumor.
const MaxPoints = 6

// PlacementState is the collector's mode.
type PlacementState int

const (
	// Idle means committed points are dropped.
	Idle PlacementState = iota

	// Placing means committed points are appended until the cap is reached.
	Placing
)

// String returns a human-readable state name for status output.
func (s PlacementState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Placing:
		return "placing"
	default:
		return "unknown"
	}
}

// Collector accumulates the extreme points for the current volume. It is a
// two-state machine: Placing accepts committed points up to MaxPoints and
// drops the rest silently, Idle drops everything. Placement exits
// automatically once the sixth point lands; leaving placement early is
// non-destructive, only Reset discards points.
//
// The collector is not safe for concurrent use; the event dispatch layer is
// expected to serialize point delivery.
type Collector struct {
	points []r3.Vec
	state  PlacementState
}

// NewCollector returns an idle collector with no points.
func NewCollector() *Collector {
	return &Collector{}
}

// State returns the current placement state.
func (c *Collector) State() PlacementState {
	return c.state
}

// Begin enters placement mode.
func (c *Collector) Begin() {
	c.state = Placing
}

// End leaves placement mode, keeping any points placed so far.
func (c *Collector) End() {
	c.state = Idle
}

// Commit delivers one externally-picked point. It reports whether the point
// was kept: false while idle or once the set already holds MaxPoints. The
// sixth accepted point exits placement mode.
func (c *Collector) Commit(p r3.Vec) bool {
	if c.state != Placing || len(c.points) >= MaxPoints {
		return false
	}

	c.points = append(c.points, p)
	if len(c.points) == MaxPoints {
		c.state = Idle
	}

	return true
}

// Count returns how many points have been accepted.
func (c *Collector) Count() int {
	return len(c.points)
}

// Complete reports whether exactly MaxPoints points are present.
func (c *Collector) Complete() bool {
	return len(c.points) == MaxPoints
}

// Points returns a copy of the accepted points in delivery order.
func (c *Collector) Points() []r3.Vec {
	out := make([]r3.Vec, len(c.points))
	copy(out, c.points)
	return out
}

// Reset discards all points and forces the collector idle.
func (c *Collector) Reset() {
	c.points = nil
	c.state = Idle
}
