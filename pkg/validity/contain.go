package validity

import (
	"github.com/matzehuels/holefit/pkg/geom"
)

// edgeSamples are the fractions along an edge probed by [EdgeInside].
var edgeSamples = [...]float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1}

// Contains reports whether p lies inside hole or on its boundary.
func Contains(hole geom.Polygon, p geom.Vec2) bool {
	inside := false
	for _, s := range hole.Edges() {
		if onSegment(s, p) {
			return true
		}
		a, b := s.A, s.B
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// EdgeInside reports whether the segment a-b stays within hole: evenly spaced
// sample points must be contained and the segment must not properly cross
// any boundary edge.
func EdgeInside(hole geom.Polygon, a, b geom.Vec2) bool {
	for _, t := range edgeSamples {
		if !Contains(hole, a.Lerp(b, t)) {
			return false
		}
	}
	seg := geom.Seg(a, b)
	for _, hs := range hole.Edges() {
		if SegmentsIntersect(seg, hs) {
			return false
		}
	}
	return true
}

// Outside returns the indices of vertices not contained in hole.
func Outside(hole geom.Polygon, vertices []geom.Vec2) []int {
	var out []int
	for i, v := range vertices {
		if !Contains(hole, v) {
			out = append(out, i)
		}
	}
	return out
}

func onSegment(s geom.Segment, p geom.Vec2) bool {
	if orientation(s.A, s.B, p) != 0 {
		return false
	}
	return min(s.A.X, s.B.X) <= p.X && p.X <= max(s.A.X, s.B.X) &&
		min(s.A.Y, s.B.Y) <= p.Y && p.Y <= max(s.A.Y, s.B.Y)
}
