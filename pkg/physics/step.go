package physics

import (
	"math/rand/v2"

	"github.com/matzehuels/holefit/pkg/figure"
	"github.com/matzehuels/holefit/pkg/geom"
)

// World is the fixed context of a simulation: the original edge lengths and
// the hole. Neither changes while a problem is loaded.
type World struct {
	Dist figure.DistanceMap
	Hole geom.Polygon
}

// Frozen reports whether the vertex at idx is pinned. A nil Frozen pins
// nothing.
type Frozen func(idx int) bool

func (f Frozen) has(idx int) bool { return f != nil && f(idx) }

// Step advances the figure by one sub-step: the mode's force pass followed by
// the tension pass. Each pass reads the positions left by the previous one.
// The input slice is not modified.
func Step(vertices []geom.Vec2, w World, m Mode, c Constants, frozen Frozen, rng *rand.Rand) []geom.Vec2 {
	out := geom.Clone(vertices)
	if len(out) == 0 {
		return out
	}
	if f := m.forces(w, out, rng); f != nil {
		integrate(out, f, c.TimeStep, frozen)
	}
	integrate(out, Tension(out, w.Dist, c), c.TimeStep, frozen)
	return out
}

// Run applies n sub-steps in sequence.
func Run(vertices []geom.Vec2, w World, m Mode, c Constants, frozen Frozen, rng *rand.Rand, n int) []geom.Vec2 {
	out := geom.Clone(vertices)
	for range n {
		out = Step(out, w, m, c, frozen, rng)
	}
	return out
}

// Tension returns the summed spring force on every vertex from the edges
// incident to it. Isolated vertices feel nothing.
func Tension(vs []geom.Vec2, dm figure.DistanceMap, c Constants) []geom.Vec2 {
	out := make([]geom.Vec2, len(vs))
	for i, v := range vs {
		var f geom.Vec2
		for _, j := range dm.Neighbors(i) {
			rest, _ := dm.Get(i, j)
			limit := c.SpringClamp * v.Distance(vs[j])
			f = f.Add(SpringForce(v, vs[j], rest, c.Spring, limit))
		}
		out[i] = f
	}
	return out
}

// ShakeStep jitters every unfrozen vertex by up to amplitude in one step.
func ShakeStep(vertices []geom.Vec2, amplitude float64, c Constants, frozen Frozen, rng *rand.Rand) []geom.Vec2 {
	out := geom.Clone(vertices)
	f := make([]geom.Vec2, len(out))
	for i := range f {
		f[i] = Shake(rng, amplitude, c.TimeStep)
	}
	integrate(out, f, c.TimeStep, frozen)
	return out
}

// integrate applies explicit Euler p += F·dt, skipping frozen vertices.
func integrate(vs, forces []geom.Vec2, dt float64, frozen Frozen) {
	for i, f := range forces {
		if frozen.has(i) {
			continue
		}
		vs[i] = vs[i].Add(f.Scale(dt))
	}
}
