package validity

import (
	"github.com/matzehuels/holefit/pkg/figure"
	"github.com/matzehuels/holefit/pkg/geom"
)

// Status is the length verdict for one edge.
type Status int8

const (
	// Admissible edges are within tolerance.
	Admissible Status = iota
	// Overstretched edges satisfy r² > 1+ε.
	Overstretched
	// Overshrunk edges satisfy r² < 1−ε.
	Overshrunk
)

func (s Status) String() string {
	switch s {
	case Overstretched:
		return "overstretched"
	case Overshrunk:
		return "overshrunk"
	default:
		return "admissible"
	}
}

// Classification holds one [Status] per figure edge, in edge order. Each
// edge has exactly one status, so no edge is ever both overstretched and
// overshrunk.
type Classification struct {
	Status []Status
}

// ClassifyEdges compares every edge's squared stretch ratio against the
// tolerance eps. Both lengths stay squared, so an edge whose squared length
// is unchanged is admissible even at eps 0.
func ClassifyEdges(vertices []geom.Vec2, edges []figure.Edge, dm figure.DistanceMap, eps float64) Classification {
	c := Classification{Status: make([]Status, len(edges))}
	for i := range edges {
		r2 := figure.SquaredStretch(i, vertices, dm, edges)
		switch {
		case r2 > 1+eps:
			c.Status[i] = Overstretched
		case r2 < 1-eps:
			c.Status[i] = Overshrunk
		}
	}
	return c
}

// Overstretched returns the indices of overstretched edges in ascending order.
func (c Classification) Overstretched() []int { return c.indices(Overstretched) }

// Overshrunk returns the indices of overshrunk edges in ascending order.
func (c Classification) Overshrunk() []int { return c.indices(Overshrunk) }

// Valid reports whether every edge is admissible.
func (c Classification) Valid() bool {
	for _, s := range c.Status {
		if s != Admissible {
			return false
		}
	}
	return true
}

func (c Classification) indices(want Status) []int {
	var out []int
	for i, s := range c.Status {
		if s == want {
			out = append(out, i)
		}
	}
	return out
}
