package polygon

import (
	"fmt"
	"math"
)

// New constructs a regular polygon with vertexCount vertices inscribed in a
// circle of the given circumradius.
// Returns ErrVertexCount if vertexCount < MinVertices.
// The circumradius is not validated: zero or negative values are accepted
// and produce the degenerate measurements the formulas imply.
// Complexity: O(1); no measurement is computed here.
func New(vertexCount int, circumradius float64) (*Polygon, error) {
	if vertexCount < MinVertices {
		return nil, ErrVertexCount
	}

	return &Polygon{n: vertexCount, r: circumradius}, nil
}

// VertexCount returns the number of vertices n.
// Complexity: O(1).
func (p *Polygon) VertexCount() int { return p.n }

// EdgeCount returns the number of edges, which equals the vertex count.
// Complexity: O(1).
func (p *Polygon) EdgeCount() int { return p.n }

// Circumradius returns the distance from the center to any vertex.
// Complexity: O(1).
func (p *Polygon) Circumradius() float64 { return p.r }

// SideLength returns the edge length 2·R·sin(π/n), the chord of the
// central angle 2π/n. Computed on first call, cached thereafter.
// Complexity: O(1).
func (p *Polygon) SideLength() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.sideLocked()
}

// sideLocked fills and returns the side-length memo slot. mu must be held.
func (p *Polygon) sideLocked() float64 {
	if !p.memo.hasSide {
		p.memo.side = 2 * p.r * math.Sin(math.Pi/float64(p.n))
		p.memo.hasSide = true
	}

	return p.memo.side
}

// Apothem returns the distance R·cos(π/n) from the center to the midpoint
// of any edge. Computed on first call, cached thereafter.
// Complexity: O(1).
func (p *Polygon) Apothem() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.apothemLocked()
}

// apothemLocked fills and returns the apothem memo slot. mu must be held.
func (p *Polygon) apothemLocked() float64 {
	if !p.memo.hasApothem {
		p.memo.apothem = p.r * math.Cos(math.Pi/float64(p.n))
		p.memo.hasApothem = true
	}

	return p.memo.apothem
}

// Area returns ½·n·side·apothem, the sum of the n isosceles triangles the
// polygon decomposes into. Computed on first call, cached thereafter; the
// side length and apothem are memoized as a side effect.
// Complexity: O(1).
func (p *Polygon) Area() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.memo.hasArea {
		p.memo.area = 0.5 * float64(p.n) * p.sideLocked() * p.apothemLocked()
		p.memo.hasArea = true
	}

	return p.memo.area
}

// Perimeter returns n·side. Computed on first call, cached thereafter.
// Complexity: O(1).
func (p *Polygon) Perimeter() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.memo.hasPerimeter {
		p.memo.perimeter = float64(p.n) * p.sideLocked()
		p.memo.hasPerimeter = true
	}

	return p.memo.perimeter
}

// InteriorAngle returns the angle between two adjacent edges, measured
// inside the polygon, in degrees: (n−2)·180/n.
// Computed on first call, cached thereafter. Complexity: O(1).
func (p *Polygon) InteriorAngle() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.memo.hasInterior {
		p.memo.interior = float64(p.n-2) * 180 / float64(p.n)
		p.memo.hasInterior = true
	}

	return p.memo.interior
}

// CentralAngle returns the angle each edge subtends at the center,
// 360/n degrees. Complexity: O(1).
func (p *Polygon) CentralAngle() float64 {
	return 360 / float64(p.n)
}

// Vertices returns the n vertex coordinates on the circumcircle, vertex i
// at angle 2π·i/n, starting on the positive X axis and proceeding
// counter-clockwise. A fresh slice is allocated on every call so callers
// may mutate the result freely.
// Complexity: O(n) time and memory.
func (p *Polygon) Vertices() []Point {
	step := 2 * math.Pi / float64(p.n)
	pts := make([]Point, p.n)
	for i := 0; i < p.n; i++ {
		a := step * float64(i)
		pts[i] = Point{X: p.r * math.Cos(a), Y: p.r * math.Sin(a)}
	}

	return pts
}

// String renders the polygon as "Polygon(n=<n>, R=<R>)".
func (p *Polygon) String() string {
	return fmt.Sprintf("Polygon(n=%d, R=%v)", p.n, p.r)
}
