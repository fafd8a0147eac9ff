// Package geom provides the 2D vector algebra used by the solver.
//
// [Vec2] is an immutable value type: Add, Sub, Scale and friends return new
// vectors. There are no in-place variants. Coordinates follow the problem
// files, so y grows downward when rendered but nothing here depends on it.
//
// # Zero vectors
//
// [Vec2.SetMagnitude], [Vec2.Normalize] and [Vec2.ClampMagnitude] return the
// zero vector when the input has zero length, instead of producing NaNs.
// Force code relies on this to treat coincident points as "no direction" and
// substitute a random direction explicitly where needed.
//
// # Polygons
//
// A [Polygon] is an implicitly closed vertex list. [Polygon.Edges] yields the
// boundary segments including the closing edge; [Bounds] computes the
// axis-aligned bounding box used by rotate, flip and randomize edits.
package geom
