package sequence

import (
	"errors"

	"github.com/katalvlaran/ngon/polygon"
)

// ErrMaxVertices indicates a construction attempt with maxVertices below
// the 3-vertex polygon floor.
var ErrMaxVertices = errors.New("sequence: max vertices must be at least 3")

// Sequence describes a finite family of regular polygons with vertex
// counts 3..maxVertices, all inscribed in a circle of the same radius.
// It stores no polygons and is immutable once constructed, so it may be
// shared freely; every iteration request produces an independent cursor.
type Sequence struct {
	maxVertices int
	radius      float64
}

// New constructs a Sequence producing polygons for vertex counts
// 3, 4, …, maxVertices, each with circumradius commonRadius.
// Returns ErrMaxVertices if maxVertices < 3. The radius is not validated,
// matching polygon.New.
// Complexity: O(1).
func New(maxVertices int, commonRadius float64) (*Sequence, error) {
	if maxVertices < polygon.MinVertices {
		return nil, ErrMaxVertices
	}

	return &Sequence{maxVertices: maxVertices, radius: commonRadius}, nil
}

// MaxVertices returns the largest vertex count the sequence produces.
// Complexity: O(1).
func (s *Sequence) MaxVertices() int { return s.maxVertices }

// CommonRadius returns the circumradius shared by every produced polygon.
// Complexity: O(1).
func (s *Sequence) CommonRadius() float64 { return s.radius }

// Len returns the number of polygons a full traversal yields:
// maxVertices − 2. Complexity: O(1).
func (s *Sequence) Len() int { return s.maxVertices - 2 }

// Iterator returns a fresh cursor positioned before the triangle. Cursors
// are independent: the same Sequence can be iterated many times, and
// concurrently, as long as each goroutine holds its own cursor.
// Complexity: O(1).
func (s *Sequence) Iterator() *Iterator {
	return &Iterator{maxVertices: s.maxVertices, radius: s.radius, current: polygon.MinVertices - 1}
}

// Collect runs a fresh cursor to exhaustion and returns the polygons in
// increasing vertex-count order.
// Complexity: O(maxVertices) time and memory.
func (s *Sequence) Collect() []*polygon.Polygon {
	out := make([]*polygon.Polygon, 0, s.Len())
	it := s.Iterator()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		out = append(out, p)
	}

	return out
}

// Iterator is one cursor over a Sequence. current holds the vertex count
// of the last emitted polygon (initially 2, one before the first value),
// advancing on every Next call. Not safe for concurrent use.
type Iterator struct {
	maxVertices int
	radius      float64
	current     int
}

// Next advances the cursor and returns the next polygon in the series.
// After the polygon with maxVertices vertices has been emitted, Next
// returns (nil, false) on this and every later call; exhaustion is the
// normal end-of-sequence signal, not an error.
// Complexity: O(1).
func (it *Iterator) Next() (*polygon.Polygon, bool) {
	it.current++
	if it.current > it.maxVertices {
		return nil, false
	}
	// current is in [MinVertices, maxVertices], so New cannot fail.
	p, err := polygon.New(it.current, it.radius)
	if err != nil {
		return nil, false
	}

	return p, true
}
