// Package ngon models regular polygons inscribed in a circle — construct
// one polygon and read its derived measurements, or generate a whole family
// of them sharing a common circumradius.
//
// 🚀 What is ngon?
//
//	A small, thread-safe, pure-Go library built from two pieces:
//		• polygon/  — the immutable Polygon value: side length, apothem,
//		  area, perimeter, interior angle — computed lazily, cached forever
//		• sequence/ — a lazy, finite, restartable generator of polygons
//		  with 3..max vertices on one shared circumradius
//
// ✨ Why choose ngon?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Immutable values – construct once, read from any goroutine
//   - Pure Go – no cgo, no hidden deps
//   - Lazy everywhere – nothing is computed before you ask for it
//
// Quick ASCII example:
//
//	    .--A--.
//	   E       B        Polygon(n=5, R=1): an inscribed pentagon —
//	    \     /         every vertex sits on the circumcircle.
//	     D---C
//
// Dive into README.md for full examples and the per-package doc.go files
// for formulas, complexity notes and error contracts.
//
//	go get github.com/katalvlaran/ngon
package ngon
