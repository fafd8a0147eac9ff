package validity

import (
	"github.com/matzehuels/holefit/pkg/figure"
	"github.com/matzehuels/holefit/pkg/geom"
)

// SegmentsIntersect reports whether a and b cross properly: each segment's
// endpoints lie strictly on opposite sides of the other's supporting line.
//
// Collinear, touching and shared-endpoint configurations return false. The
// test only uses signs of cross products, so it is symmetric in a and b.
func SegmentsIntersect(a, b geom.Segment) bool {
	d1 := orientation(b.A, b.B, a.A)
	d2 := orientation(b.A, b.B, a.B)
	d3 := orientation(a.A, a.B, b.A)
	d4 := orientation(a.A, a.B, b.B)
	return d1*d2 < 0 && d3*d4 < 0
}

// orientation returns the sign of the cross product (q−p)×(r−p).
func orientation(p, q, r geom.Vec2) int {
	c := q.Sub(p).Cross(r.Sub(p))
	switch {
	case c > 0:
		return 1
	case c < 0:
		return -1
	default:
		return 0
	}
}

// FigureSegments returns one segment per figure edge at the given positions.
func FigureSegments(vertices []geom.Vec2, edges []figure.Edge) []geom.Segment {
	out := make([]geom.Segment, len(edges))
	for i, e := range edges {
		out[i] = geom.Seg(vertices[e.U], vertices[e.V])
	}
	return out
}

// Crossings returns the indices of figure segments that cross at least one
// hole segment. This flags an edge leaving the hole through its boundary; it
// does not detect a figure lying entirely outside the hole.
func Crossings(figureSegs, holeSegs []geom.Segment) []int {
	var out []int
	for i, fs := range figureSegs {
		for _, hs := range holeSegs {
			if SegmentsIntersect(fs, hs) {
				out = append(out, i)
				break
			}
		}
	}
	return out
}

// IsSubmittable reports whether every edge is admissible and no figure
// segment crosses the hole boundary.
func IsSubmittable(figureSegs, holeSegs []geom.Segment, c Classification) bool {
	return c.Valid() && len(Crossings(figureSegs, holeSegs)) == 0
}
