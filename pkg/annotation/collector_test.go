package annotation

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

// TestCollectorCap verifies that delivering more points than the cap keeps
// exactly the first six, in delivery order.
func TestCollectorCap(t *testing.T) {
	c := NewCollector()
	c.Begin()

	var delivered []r3.Vec
	for i := 0; i < 10; i++ {
		p := r3.Vec{X: float64(i), Y: float64(i * 2), Z: float64(i * 3)}
		delivered = append(delivered, p)
		accepted := c.Commit(p)

		if i < MaxPoints && !accepted {
			t.Errorf("Point %d should have been accepted", i)
		}
		if i >= MaxPoints && accepted {
			t.Errorf("Point %d should have been dropped", i)
		}
	}

	if c.Count() != MaxPoints {
		t.Fatalf("Expected %d points, got %d", MaxPoints, c.Count())
	}

	for i, p := range c.Points() {
		if p != delivered[i] {
			t.Errorf("Point %d: expected %+v, got %+v", i, delivered[i], p)
		}
	}
}

// TestCollectorComplete verifies the completion predicate at every count.
func TestCollectorComplete(t *testing.T) {
	c := NewCollector()
	c.Begin()

	for i := 0; i < MaxPoints; i++ {
		if c.Complete() {
			t.Errorf("Collector with %d points should not be complete", i)
		}
		c.Commit(r3.Vec{X: float64(i)})
	}

	if !c.Complete() {
		t.Error("Collector with six points should be complete")
	}
}

// TestCollectorAutoExit verifies that placement ends when the sixth point
// lands and that Begin re-arms it.
func TestCollectorAutoExit(t *testing.T) {
	c := NewCollector()
	c.Begin()

	for i := 0; i < MaxPoints; i++ {
		if c.State() != Placing {
			t.Fatalf("Expected Placing before point %d, got %v", i, c.State())
		}
		c.Commit(r3.Vec{X: float64(i)})
	}

	if c.State() != Idle {
		t.Errorf("Expected Idle after sixth point, got %v", c.State())
	}

	// Re-arming a full collector is allowed but further points still drop.
	c.Begin()
	if c.Commit(r3.Vec{X: 99}) {
		t.Error("Expected commit on a full collector to be dropped")
	}
	if c.Count() != MaxPoints {
		t.Errorf("Expected count to stay at %d, got %d", MaxPoints, c.Count())
	}
}

// TestCollectorIdleDropsPoints verifies that points delivered outside
// placement mode are ignored without being an error.
func TestCollectorIdleDropsPoints(t *testing.T) {
	c := NewCollector()

	if c.Commit(r3.Vec{X: 1}) {
		t.Error("Expected commit while idle to be dropped")
	}

	c.Begin()
	c.Commit(r3.Vec{X: 1})
	c.End()

	if c.Commit(r3.Vec{X: 2}) {
		t.Error("Expected commit after End to be dropped")
	}

	// Leaving placement is non-destructive.
	if c.Count() != 1 {
		t.Errorf("Expected the placed point to survive End, got count %d", c.Count())
	}
}

// TestCollectorReset verifies that Reset clears points and forces idle.
func TestCollectorReset(t *testing.T) {
	c := NewCollector()
	c.Begin()
	c.Commit(r3.Vec{X: 1})
	c.Commit(r3.Vec{X: 2})

	c.Reset()

	if c.Count() != 0 {
		t.Errorf("Expected no points after reset, got %d", c.Count())
	}
	if c.State() != Idle {
		t.Errorf("Expected Idle after reset, got %v", c.State())
	}
}

// TestCollectorPointsCopy verifies that mutating the returned slice does not
// alias the collector's state.
func TestCollectorPointsCopy(t *testing.T) {
	c := NewCollector()
	c.Begin()
	c.Commit(r3.Vec{X: 1, Y: 2, Z: 3})

	pts := c.Points()
	pts[0] = r3.Vec{X: -100}

	if got := c.Points()[0]; got != (r3.Vec{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Collector state was aliased, got %+v", got)
	}
}
