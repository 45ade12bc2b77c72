package annotation

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"tumorannot/internal/models"
	"tumorannot/pkg/geometry"
)

// Phase is the session's overall lifecycle state.
type Phase int

const (
	// PhaseEmpty means no batch is loaded.
	PhaseEmpty Phase = iota

	// PhaseActive means a batch is loaded with volumes remaining after the
	// current one.
	PhaseActive

	// PhaseAtEnd means the current volume is the batch's last. All
	// operations except Advance remain valid.
	PhaseAtEnd
)

// String returns a human-readable phase name for status output.
func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseActive:
		return "active"
	case PhaseAtEnd:
		return "at-end"
	default:
		return "unknown"
	}
}

// Options configure session behavior.
type Options struct {
	// AutoReenterPlacement re-arms point placement after box creation and
	// relaxation updates instead of requiring an explicit Begin. Off by
	// default: the stricter machine where placement only re-opens on
	// request or on a new volume.
	AutoReenterPlacement bool

	// DefaultRelaxation is the margin, in physical units, applied when a
	// box is first created and restored whenever a volume's state resets.
	DefaultRelaxation float64
}

// Session owns the ordered volume queue for one annotation batch and the
// in-progress state of the current volume: its point collector, the last
// computed bounding box and the relaxation amount. Prior volumes' state is
// discarded on advance; navigation is forward-only.
//
// All methods are synchronous and must be called from a single goroutine.
type Session struct {
	opts       Options
	volumes    []models.Volume
	index      int
	collector  *Collector
	box        *geometry.Box
	relaxation float64
}

// NewSession creates an empty session. Operations fail with ErrNoBatch until
// LoadBatch succeeds.
func NewSession(opts Options) *Session {
	if opts.DefaultRelaxation < 0 {
		opts.DefaultRelaxation = 0
	}

	return &Session{
		opts:       opts,
		collector:  NewCollector(),
		relaxation: opts.DefaultRelaxation,
	}
}

// LoadBatch replaces the volume queue, rewinds to the first volume and
// resets the per-volume state. Loading an empty batch fails with
// ErrEmptyBatch and leaves the session unchanged.
func (s *Session) LoadBatch(volumes []models.Volume) error {
	if len(volumes) == 0 {
		return ErrEmptyBatch
	}

	s.volumes = append([]models.Volume(nil), volumes...)
	s.index = 0
	s.ResetCurrent()

	return nil
}

// ResetCurrent discards the stored bounding box and all placed points for
// the current volume, restores the default relaxation, and re-enters
// placement so the operator can start marking immediately.
func (s *Session) ResetCurrent() {
	s.box = nil
	s.relaxation = s.opts.DefaultRelaxation
	s.collector.Reset()
	s.collector.Begin()
}

// Phase returns the session lifecycle state.
func (s *Session) Phase() Phase {
	switch {
	case len(s.volumes) == 0:
		return PhaseEmpty
	case s.index >= len(s.volumes)-1:
		return PhaseAtEnd
	default:
		return PhaseActive
	}
}

// Current returns the volume being annotated, or false when no batch is
// loaded.
func (s *Session) Current() (models.Volume, bool) {
	if len(s.volumes) == 0 {
		return models.Volume{}, false
	}
	return s.volumes[s.index], true
}

// Index returns the zero-based position of the current volume.
func (s *Session) Index() int {
	return s.index
}

// Len returns the number of volumes in the batch.
func (s *Session) Len() int {
	return len(s.volumes)
}

// Progress returns the fraction of the batch already passed, for display.
func (s *Session) Progress() float64 {
	if len(s.volumes) == 0 {
		return 0
	}
	return float64(s.index) / float64(len(s.volumes))
}

// Placement returns the collector's state.
func (s *Session) Placement() PlacementState {
	return s.collector.State()
}

// PointCount returns how many extreme points are placed on the current
// volume.
func (s *Session) PointCount() int {
	return s.collector.Count()
}

// BeginPlacement re-enters point placement for the current volume.
func (s *Session) BeginPlacement() error {
	if len(s.volumes) == 0 {
		return ErrNoBatch
	}
	s.collector.Begin()
	return nil
}

// EndPlacement leaves placement mode without discarding points.
func (s *Session) EndPlacement() {
	s.collector.End()
}

// CommitPoint delivers one picked point to the collector and reports whether
// it was kept.
func (s *Session) CommitPoint(p r3.Vec) bool {
	if len(s.volumes) == 0 {
		return false
	}
	return s.collector.Commit(p)
}

// CreateBox computes the bounding box from the six placed points, the
// session's relaxation and the current volume's orientation frame, and
// stores it for relaxation replay and record emission. It fails with
// ErrIncompletePointSet until all six points are placed.
func (s *Session) CreateBox() (geometry.Box, error) {
	if len(s.volumes) == 0 {
		return geometry.Box{}, ErrNoBatch
	}

	if !s.collector.Complete() {
		return geometry.Box{}, fmt.Errorf("%w: have %d of %d points",
			ErrIncompletePointSet, s.collector.Count(), MaxPoints)
	}

	box, err := geometry.FromExtremePoints(s.collector.Points(), s.relaxation, s.volumes[s.index].Frame)
	if err != nil {
		return geometry.Box{}, err
	}

	s.box = &box
	if s.opts.AutoReenterPlacement {
		s.collector.Begin()
	}

	return box, nil
}

// SetRelaxation replaces the relaxation amount and recomputes the stored box
// from scratch with the unchanged points and frame, so the result is always
// the pure function of (points, relaxation, frame). Negative input clamps to
// zero. Fails with ErrNoBox before the first CreateBox.
func (s *Session) SetRelaxation(r float64) (geometry.Box, error) {
	if len(s.volumes) == 0 {
		return geometry.Box{}, ErrNoBatch
	}

	if s.box == nil {
		return geometry.Box{}, ErrNoBox
	}

	if r < 0 {
		r = 0
	}

	box, err := geometry.FromExtremePoints(s.collector.Points(), r, s.volumes[s.index].Frame)
	if err != nil {
		return geometry.Box{}, err
	}

	s.relaxation = r
	s.box = &box
	if s.opts.AutoReenterPlacement {
		s.collector.Begin()
	}

	return box, nil
}

// Relaxation returns the session's relaxation amount.
func (s *Session) Relaxation() float64 {
	return s.relaxation
}

// Box returns the stored bounding box, or false when none has been created
// for the current volume.
func (s *Session) Box() (geometry.Box, bool) {
	if s.box == nil {
		return geometry.Box{}, false
	}
	return *s.box, true
}

// Record returns the annotation snapshot for the current volume. It fails
// with ErrNoBox unless a bounding box exists alongside a complete point set,
// and never mutates session state: the current volume can keep being
// adjusted, and records can be emitted repeatedly.
func (s *Session) Record() (Record, error) {
	if len(s.volumes) == 0 {
		return Record{}, ErrNoBatch
	}

	if s.box == nil || !s.collector.Complete() {
		return Record{}, ErrNoBox
	}

	return newRecord(s.volumes[s.index].Filename, s.collector.Points(), *s.box, s.relaxation), nil
}

// Advance moves to the next volume and resets the per-volume state. At the
// last volume it fails with ErrAtEnd and changes nothing.
func (s *Session) Advance() error {
	if len(s.volumes) == 0 {
		return ErrNoBatch
	}

	if s.index >= len(s.volumes)-1 {
		return ErrAtEnd
	}

	s.index++
	s.ResetCurrent()

	return nil
}
