// Package validity decides whether a deformed figure is an acceptable answer.
//
// Two rules apply. Edge lengths must stay within tolerance of the original:
// with r the stretch ratio, an edge is admissible iff |r² − 1| ≤ ε
// ([ClassifyEdges]). And no figure edge may cross the hole boundary
// ([SegmentsIntersect], [Crossings]).
//
// The crossing test is strict. Touching, collinear overlap and shared
// endpoints are not crossings, which lets figure vertices sit exactly on hole
// vertices and edges run along the boundary.
//
// Boundary crossing is a proxy for containment. [Contains] and [EdgeInside]
// provide the full point-in-polygon check for callers that need it; [Check]
// reports both.
package validity
