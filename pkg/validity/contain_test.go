package validity

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matzehuels/holefit/pkg/figure"
	"github.com/matzehuels/holefit/pkg/geom"
)

// L-shaped hole: the upper right quadrant is cut away.
var lHole = geom.Polygon{
	geom.Vec(0, 0), geom.Vec(10, 0), geom.Vec(10, 5),
	geom.Vec(5, 5), geom.Vec(5, 10), geom.Vec(0, 10),
}

func TestContains(t *testing.T) {
	tests := []struct {
		p    geom.Vec2
		want bool
	}{
		{geom.Vec(2, 2), true},
		{geom.Vec(8, 2), true},
		{geom.Vec(2, 8), true},
		{geom.Vec(8, 8), false},
		{geom.Vec(0, 0), true}, // vertex
		{geom.Vec(5, 7), true}, // boundary
		{geom.Vec(-1, 5), false},
		{geom.Vec(11, 2), false},
	}
	for _, tt := range tests {
		if got := Contains(lHole, tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestEdgeInside(t *testing.T) {
	if !EdgeInside(lHole, geom.Vec(1, 1), geom.Vec(9, 1)) {
		t.Error("edge along the bottom arm should be inside")
	}
	if !EdgeInside(lHole, geom.Vec(0, 0), geom.Vec(0, 10)) {
		t.Error("edge on the boundary should be inside")
	}
	// both endpoints inside but the middle cuts the notch
	if EdgeInside(lHole, geom.Vec(9, 4), geom.Vec(4, 9)) {
		t.Error("edge across the notch should be outside")
	}
}

func TestCheck(t *testing.T) {
	p := &figure.Problem{
		Hole:    lHole,
		Epsilon: 0,
		Figure: figure.Figure{
			Vertices: []geom.Vec2{geom.Vec(1, 1), geom.Vec(4, 1), geom.Vec(4, 4)},
			Edges:    []figure.Edge{{U: 0, V: 1}, {U: 1, V: 2}},
		},
	}
	dm := figure.BuildDistanceMap(p.Figure.Vertices, p.Figure.Edges)

	r := Check(p, dm, p.Figure.Vertices)
	if !r.Submittable || len(r.Outside) != 0 {
		t.Fatalf("original placement: %+v", r)
	}

	moved := []geom.Vec2{geom.Vec(7, 7), geom.Vec(10, 7), geom.Vec(10, 10)}
	r = Check(p, dm, moved)
	if diff := cmp.Diff([]int{0, 1, 2}, r.Outside); diff != "" {
		t.Errorf("Outside (-want +got):\n%s", diff)
	}
	if !r.Edges.Valid() {
		t.Error("translation keeps lengths")
	}
}
