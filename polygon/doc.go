// Package polygon models a regular polygon inscribed in a circle of fixed
// circumradius, with lazily computed, memoized measurements.
//
// What:
//
//   - Polygon is immutable after construction: vertex count n (≥3) and
//     circumradius R never change.
//   - Five derived measurements — SideLength, Apothem, Area, Perimeter,
//     InteriorAngle — are computed on first access and cached for the
//     lifetime of the instance.
//   - Equality compares (n, R) exactly; ordering compares n alone.
//   - Vertices returns the n points on the circumcircle, CentralAngle the
//     angle each edge subtends at the center.
//
// Formulas (R = circumradius, n = vertex count):
//
//   - SideLength    = 2·R·sin(π/n)        (chord of central angle 2π/n)
//   - Apothem       = R·cos(π/n)          (center → edge midpoint)
//   - Area          = ½·n·side·apothem    (n isosceles triangles)
//   - Perimeter     = n·side
//   - InteriorAngle = (n−2)·180/n         (degrees)
//
// Concurrency:
//
//   - A *Polygon may be shared across goroutines; the memo slots are
//     guarded by a mutex, and results are bit-identical to an uncached
//     recomputation.
//
// Complexity:
//
//   - Every measurement: O(1), computed once.
//   - Vertices: O(n) per call.
//
// Errors:
//
//   - ErrVertexCount: construction with fewer than 3 vertices.
//   - ErrUnsupportedComparison: ordering against a non-Polygon value.
//
// Note: the circumradius is deliberately unconstrained — zero or negative
// radii construct successfully and yield the degenerate measurements the
// formulas imply.
package polygon
