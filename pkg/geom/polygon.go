package geom

// Segment is a closed line segment between A and B.
type Segment struct {
	A, B Vec2
}

// Seg returns the segment from a to b.
func Seg(a, b Vec2) Segment {
	return Segment{A: a, B: b}
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// Polygon is an ordered list of vertices. The last vertex connects back to
// the first; the closing vertex is not repeated.
type Polygon []Vec2

// Edges returns the boundary segments of p in vertex order, including the
// closing segment from the last vertex to the first.
func (p Polygon) Edges() []Segment {
	out := make([]Segment, len(p))
	for i, v := range p {
		out[i] = Segment{A: v, B: p[(i+1)%len(p)]}
	}
	return out
}

// Centroid returns the mean of the polygon's vertices.
func (p Polygon) Centroid() Vec2 {
	return Mean(p)
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min, Max Vec2
}

// Bounds returns the bounding box of vs. It panics if vs is empty.
func Bounds(vs []Vec2) Rect {
	if len(vs) == 0 {
		panic("geom: bounds of empty vector list")
	}
	r := Rect{Min: vs[0], Max: vs[0]}
	for _, v := range vs[1:] {
		r.Min.X = min(r.Min.X, v.X)
		r.Min.Y = min(r.Min.Y, v.Y)
		r.Max.X = max(r.Max.X, v.X)
		r.Max.Y = max(r.Max.Y, v.Y)
	}
	return r
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of r.
func (r Rect) Center() Vec2 {
	return Vec2{X: 0.5 * (r.Min.X + r.Max.X), Y: 0.5 * (r.Min.Y + r.Max.Y)}
}

// Contains reports whether v lies inside r or on its border.
func (r Rect) Contains(v Vec2) bool {
	return v.X >= r.Min.X && v.X <= r.Max.X && v.Y >= r.Min.Y && v.Y <= r.Max.Y
}
