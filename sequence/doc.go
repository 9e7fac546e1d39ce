// Package sequence generates a lazy, finite, restartable series of regular
// polygons with increasing vertex counts sharing one common circumradius.
//
// What:
//
//   - Sequence stores only its two parameters (maxVertices, commonRadius);
//     it describes the family, it never holds the polygons.
//   - Iterator is a fresh, independent cursor over vertex counts
//     3, 4, …, maxVertices; each call to Sequence.Iterator starts over.
//   - Collect materializes one full pass into a slice.
//
// Why:
//
//   - Comparing how side length, area and interior angle converge toward
//     the circumscribing circle as n grows.
//   - Feeding rendering or tessellation code a family of inscribed shapes
//     without holding them all in memory.
//
// Concurrency:
//
//   - A *Sequence is immutable and safe to share; concurrent iterations do
//     not interfere because every cursor owns its position counter.
//   - A single *Iterator must not be shared between goroutines.
//
// Complexity:
//
//   - Next: O(1) per element. Full traversal: O(maxVertices).
//
// Errors:
//
//   - ErrMaxVertices: construction with maxVertices < 3.
//     Exhaustion is signaled by Next's ok=false, never by an error.
package sequence
