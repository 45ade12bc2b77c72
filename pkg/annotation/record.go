package annotation

import (
	"gonum.org/v1/gonum/spatial/r3"

	"tumorannot/pkg/geometry"
)

// Record is the immutable per-volume annotation snapshot handed to the
// serialization collaborator. The JSON field names are the wire contract
// consumed downstream; sizes are full edge lengths, not half extents.
type Record struct {
	Filename    string       `json:"filename"`
	Points      [][3]float64 `json:"points"`
	BoundingBox RecordBox    `json:"bounding_box"`
	Relaxation  float64      `json:"relaxation"`
}

// RecordBox is the serialized bounding box.
type RecordBox struct {
	Center [3]float64 `json:"center"`
	Size   [3]float64 `json:"size"`
}

func newRecord(filename string, points []r3.Vec, box geometry.Box, relaxation float64) Record {
	rec := Record{
		Filename:   filename,
		Points:     make([][3]float64, len(points)),
		Relaxation: relaxation,
	}

	for i, p := range points {
		rec.Points[i] = [3]float64{p.X, p.Y, p.Z}
	}

	size := box.Size()
	rec.BoundingBox = RecordBox{
		Center: [3]float64{box.Center.X, box.Center.Y, box.Center.Z},
		Size:   [3]float64{size.X, size.Y, size.Z},
	}

	return rec
}
