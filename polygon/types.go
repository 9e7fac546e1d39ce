// Package polygon defines the Polygon value type, its sentinel errors,
// and the Point coordinate helper used by Vertices.
package polygon

import (
	"errors"
	"sync"
)

// Sentinel errors for polygon operations.
var (
	// ErrVertexCount indicates a construction attempt with fewer than 3 vertices.
	ErrVertexCount = errors.New("polygon: polygon must have at least 3 vertices")

	// ErrUnsupportedComparison indicates an ordering comparison against a value
	// that is not a *Polygon. Equality never errors; ordering refuses.
	ErrUnsupportedComparison = errors.New("polygon: ordering comparison requires a *Polygon")
)

// MinVertices is the smallest vertex count of a proper polygon.
const MinVertices = 3

// Point is a 2D coordinate. X increases to the right, Y up the page,
// the conventions of mathematical graph paper.
type Point struct {
	X, Y float64
}

// Polygon is a regular polygon inscribed in a circle of radius R.
// It is immutable after construction: n and r are fixed, and the memo
// slots only ever transition from empty to filled.
//
// mu guards the memo slots so a shared *Polygon is safe to read from
// multiple goroutines; every measurement is a pure function of (n, r),
// so cached and recomputed results are bit-identical.
type Polygon struct {
	n int     // vertex count, ≥ MinVertices
	r float64 // circumradius, deliberately unconstrained

	mu   sync.Mutex
	memo struct {
		side, apothem, area, perimeter, interior float64
		hasSide, hasApothem, hasArea             bool
		hasPerimeter, hasInterior                bool
	}
}
