// Package figure defines problems, figures and solutions, and the distance
// model that measures how far a deformed figure has drifted from its
// original edge lengths.
//
// # Data Model
//
// A [Problem] pairs a hole polygon with a [Figure] and an epsilon in parts
// per million. [Problem.Tolerance] converts epsilon to the fraction used by
// the validity checks. A [Solution] carries vertex positions and optional
// fixed points; it is the shape handed to persistence.
//
// # Distance Map
//
// [BuildDistanceMap] records the original length of every edge once, at load
// time. [StretchRatio] and [CurrentLengths] compare later positions against
// it. The map is symmetric: Get(u, v) and Get(v, u) return the same value.
//
// # Contract
//
// Functions in this package panic on out-of-range vertex indices. Use
// [Problem.Validate] and [Solution.ValidateFor] on untrusted input before
// handing it to a solver session.
package figure
