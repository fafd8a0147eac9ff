package score

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/holefit/pkg/geom"
)

func TestNearest(t *testing.T) {
	cands := []geom.Vec2{geom.Vec(10, 0), geom.Vec(0, 1), geom.Vec(1, 0), geom.Vec(-1, 0)}
	got, idx := Nearest(geom.Vec(0, 0), cands)
	// (0,1), (1,0) and (-1,0) tie; the first one wins
	if idx != 1 || got != geom.Vec(0, 1) {
		t.Errorf("Nearest = %v at %d, want (0,1) at 1", got, idx)
	}

	defer func() {
		if recover() == nil {
			t.Error("Nearest on empty candidates should panic")
		}
	}()
	Nearest(geom.Zero, nil)
}

func TestDislikes(t *testing.T) {
	tests := []struct {
		name     string
		hole     geom.Polygon
		vertices []geom.Vec2
		want     float64
	}{
		{
			name:     "exact cover",
			hole:     geom.Polygon{geom.Vec(0, 0), geom.Vec(10, 0)},
			vertices: []geom.Vec2{geom.Vec(0, 0), geom.Vec(10, 0)},
			want:     0,
		},
		{
			name:     "single vertex in the middle",
			hole:     geom.Polygon{geom.Vec(0, 0), geom.Vec(10, 0)},
			vertices: []geom.Vec2{geom.Vec(5, 5)},
			want:     100,
		},
		{
			name:     "extra figure vertices are free",
			hole:     geom.Polygon{geom.Vec(0, 0)},
			vertices: []geom.Vec2{geom.Vec(50, 50), geom.Vec(0, 0), geom.Vec(-7, 3)},
			want:     0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dislikes(tt.hole, tt.vertices); got != tt.want {
				t.Errorf("Dislikes = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDislikesAsymmetric(t *testing.T) {
	a := []geom.Vec2{geom.Vec(0, 0), geom.Vec(10, 0)}
	b := []geom.Vec2{geom.Vec(0, 0)}
	if Dislikes(a, b) == Dislikes(b, a) {
		t.Error("dislikes should depend on which side is the hole")
	}
}

func TestDislikesZeroOnlyOnCover(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7^0xdeadbeef))
	hole := geom.Polygon{geom.Vec(0, 0), geom.Vec(10, 0), geom.Vec(10, 10), geom.Vec(0, 10)}
	for range 200 {
		vs := make([]geom.Vec2, 4)
		for i := range vs {
			vs[i] = geom.Vec(float64(rng.IntN(11)), float64(rng.IntN(11)))
		}
		d := Dislikes(hole, vs)
		if d < 0 {
			t.Fatalf("negative dislikes %v", d)
		}
		covered := true
		for _, h := range hole {
			if _, idx := Nearest(h, vs); vs[idx] != h {
				covered = false
			}
		}
		if (d == 0) != covered {
			t.Fatalf("dislikes %v but covered=%v for %v", d, covered, vs)
		}
	}
}

func ExampleDislikes() {
	hole := geom.Polygon{geom.Vec(0, 0), geom.Vec(10, 0)}
	fmt.Println(Dislikes(hole, []geom.Vec2{geom.Vec(5, 5)}))
	fmt.Println(Rounded(hole, []geom.Vec2{geom.Vec(0, 0), geom.Vec(10, 1)}))
	// Output:
	// 100
	// 1
}
