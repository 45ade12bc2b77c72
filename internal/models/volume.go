package models

import (
	"tumorannot/pkg/geometry"
)

// Volume describes one image volume queued for annotation.
type Volume struct {
	// Filename identifies the volume within its batch and in emitted records.
	Filename string

	// Path is the volume's location on disk.
	Path string

	// Frame holds the volume's native sampling axes in physical space,
	// derived from its image-to-physical affine. Nil means annotation boxes
	// stay aligned with the physical-space standard axes.
	Frame *geometry.Frame
}
