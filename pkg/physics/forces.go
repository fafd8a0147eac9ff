package physics

import (
	"math"
	"math/rand/v2"

	"github.com/matzehuels/holefit/pkg/geom"
)

// SpringForce pulls p toward its rest distance from q. The force is
// (p−q)·k·(1/d − 1/rest): positive (outward) when the edge is too short,
// negative when too long. When limit is positive the magnitude is clamped to
// it. Coincident points yield the zero vector.
func SpringForce(p, q geom.Vec2, rest, k, limit float64) geom.Vec2 {
	diff := p.Sub(q)
	d := diff.Magnitude()
	if d == 0 {
		return geom.Zero
	}
	f := diff.Scale(k * (1/d - 1/rest))
	if limit > 0 {
		f = f.ClampMagnitude(0, limit)
	}
	return f
}

// Repulsion pushes p away from q with magnitude k/dᵉ, clamped to maxForce.
// Coincident points get a random direction at exactly maxForce so stacked
// vertices separate.
func Repulsion(rng *rand.Rand, p, q geom.Vec2, k, exponent, maxForce float64) geom.Vec2 {
	away := p.Sub(q)
	if away.IsZero() {
		return geom.RandomUnit(rng, maxForce)
	}
	d := away.Magnitude()
	return away.SetMagnitude(min(k/math.Pow(d, exponent), maxForce))
}

// Attraction pulls p toward target with magnitude k/dᵉ, clamped to both
// maxForce and the remaining distance so a unit step never overshoots.
// A point already at target feels nothing.
func Attraction(p, target geom.Vec2, k, exponent, maxForce float64) geom.Vec2 {
	toward := target.Sub(p)
	if toward.IsZero() {
		return geom.Zero
	}
	d := toward.Magnitude()
	return toward.SetMagnitude(min(k/math.Pow(d, exponent), maxForce, d))
}

// LinearGravity is one force for the whole figure, pointing from meanPoint
// to center with magnitude k·d clamped to k.
func LinearGravity(meanPoint, center geom.Vec2, k float64) geom.Vec2 {
	toward := center.Sub(meanPoint)
	if toward.IsZero() {
		return geom.Zero
	}
	return toward.Scale(k).ClampMagnitude(0, k)
}

// RadialForce pushes p directly away from mean with constant magnitude k.
func RadialForce(rng *rand.Rand, p, mean geom.Vec2, k float64) geom.Vec2 {
	away := p.Sub(mean)
	if away.IsZero() {
		return geom.RandomUnit(rng, k)
	}
	return away.SetMagnitude(k)
}

// Shake is a random force of magnitude U(0, amplitude)/dt. Applied for one
// step it moves a point by at most amplitude.
func Shake(rng *rand.Rand, amplitude, dt float64) geom.Vec2 {
	return geom.RandomUnit(rng, rng.Float64()*amplitude/dt)
}
