package annotation

import (
	"errors"
)

// Sentinel errors for the annotation workflow. None of these are fatal: each
// one tells the operator which step is still missing, and the session state
// is left untouched by the failing call.
var (
	// ErrEmptyBatch indicates a batch load with zero volumes.
	ErrEmptyBatch = errors.New("batch contains no volumes")

	// ErrNoBatch indicates an operation that needs a loaded batch.
	ErrNoBatch = errors.New("no batch loaded")

	// ErrIncompletePointSet indicates box creation before all six extreme
	// points were placed.
	ErrIncompletePointSet = errors.New("incomplete point set")

	// ErrNoBox indicates a relaxation update or record request before a
	// bounding box was created.
	ErrNoBox = errors.New("no bounding box created yet")

	// ErrAtEnd indicates an advance past the last volume of the batch.
	ErrAtEnd = errors.New("already at the last volume")
)
