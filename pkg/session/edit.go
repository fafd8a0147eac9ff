package session

import (
	"github.com/matzehuels/holefit/pkg/geom"
	"github.com/matzehuels/holefit/pkg/observability"
	"github.com/matzehuels/holefit/pkg/physics"
)

// Editing operations work on the current vertices whether or not the session
// is running. Each one records an undo entry. Frozen vertices are left where
// they are by every edit except SnapToInteger.

// MovePoint moves one vertex by delta. It does nothing if the vertex is
// frozen.
func (s *Session) MovePoint(idx int, delta geom.Vec2) {
	s.checkIndex(idx)
	if s.frozen[idx] {
		return
	}
	s.push()
	s.vertices[idx] = s.vertices[idx].Add(delta)
	s.edited("move", 1)
}

// SetPoint places one vertex at p.
func (s *Session) SetPoint(idx int, p geom.Vec2) {
	s.checkIndex(idx)
	s.MovePoint(idx, p.Sub(s.vertices[idx]))
}

// MoveAll translates every unfrozen vertex.
func (s *Session) MoveAll(dx, dy float64) {
	s.transform("move-all", true, func(v geom.Vec2) geom.Vec2 {
		return v.Add(geom.Vec(dx, dy))
	})
}

// Rotate turns the unfrozen vertices by angle radians about the center of
// the whole figure's bounding box.
func (s *Session) Rotate(angle float64) {
	c := geom.Bounds(s.vertices).Center()
	s.transform("rotate", true, func(v geom.Vec2) geom.Vec2 {
		return v.RotateAround(c, angle)
	})
}

// FlipHorizontal mirrors the figure across the vertical midline of its
// bounding box.
func (s *Session) FlipHorizontal() {
	c := geom.Bounds(s.vertices).Center()
	s.transform("flip-h", true, func(v geom.Vec2) geom.Vec2 {
		return geom.Vec(2*c.X-v.X, v.Y)
	})
}

// FlipVertical mirrors the figure across the horizontal midline of its
// bounding box.
func (s *Session) FlipVertical() {
	c := geom.Bounds(s.vertices).Center()
	s.transform("flip-v", true, func(v geom.Vec2) geom.Vec2 {
		return geom.Vec(v.X, 2*c.Y-v.Y)
	})
}

// SnapToInteger rounds every coordinate, frozen vertices included. Applying
// it twice changes nothing.
func (s *Session) SnapToInteger() {
	s.transform("snap-int", false, func(v geom.Vec2) geom.Vec2 {
		return v.Round(0)
	})
}

// transform applies f to the vertices, skipping frozen ones when skipFrozen
// is set.
func (s *Session) transform(op string, skipFrozen bool, f func(geom.Vec2) geom.Vec2) {
	s.push()
	n := 0
	for i, v := range s.vertices {
		if skipFrozen && s.frozen[i] {
			continue
		}
		s.vertices[i] = f(v)
		n++
	}
	s.edited(op, n)
}

// SnapToHoleVertices moves every unfrozen vertex within radius of a hole
// vertex exactly onto the nearest one and freezes it. It returns the snapped
// indices. Nothing is recorded for undo when no vertex is in range.
func (s *Session) SnapToHoleVertices(radius float64) []int {
	r2 := radius * radius
	var snapped []int
	var targets []geom.Vec2
	for i, v := range s.vertices {
		if s.frozen[i] {
			continue
		}
		var best geom.Vec2
		bestD, found := r2, false
		for _, h := range s.problem.Hole {
			if d := v.Distance2(h); d <= r2 && (!found || d < bestD) {
				best, bestD, found = h, d, true
			}
		}
		if found {
			snapped = append(snapped, i)
			targets = append(targets, best)
		}
	}
	if len(snapped) > 0 {
		s.push()
		for k, i := range snapped {
			s.vertices[i] = targets[k]
			s.frozen[i] = true
		}
	}
	s.edited("snap-hole", len(snapped))
	return snapped
}

// RandomizeWithinBounds scatters every unfrozen vertex uniformly over the
// hole's bounding box.
func (s *Session) RandomizeWithinBounds() {
	b := geom.Bounds(s.problem.Hole)
	s.push()
	n := 0
	for i := range s.vertices {
		if s.frozen[i] {
			continue
		}
		s.vertices[i] = geom.Vec(
			b.Min.X+s.rng.Float64()*b.Width(),
			b.Min.Y+s.rng.Float64()*b.Height(),
		)
		n++
	}
	s.edited("randomize", n)
}

// PowerEdit restores every edge at idx to its original length by moving the
// unfrozen neighbors. Each neighbor keeps its direction from idx and is
// placed on the circle of the original edge length around idx.
func (s *Session) PowerEdit(idx int) {
	s.checkIndex(idx)
	s.push()
	center := s.vertices[idx]
	n := 0
	for _, j := range s.world.Dist.Neighbors(idx) {
		if s.frozen[j] {
			continue
		}
		rest, _ := s.world.Dist.Get(idx, j)
		dir := s.vertices[j].Sub(center)
		if dir.IsZero() {
			dir = geom.RandomUnit(s.rng, 1)
		}
		s.vertices[j] = center.Add(dir.SetMagnitude(rest))
		n++
	}
	s.edited("power-edit", n)
}

// Shake jitters every unfrozen vertex by up to amplitude.
func (s *Session) Shake(amplitude float64) {
	s.push()
	s.vertices = physics.ShakeStep(s.vertices, amplitude, s.constants, s.isFrozen, s.rng)
	s.edited("shake", len(s.vertices)-len(s.Frozen()))
}

// nudges are the integer offsets tried by FixEdges, in order.
var nudges = func() []geom.Vec2 {
	steps := []float64{0, 1, -1}
	out := make([]geom.Vec2, 0, 9)
	for _, dx := range steps {
		for _, dy := range steps {
			out = append(out, geom.Vec(dx, dy))
		}
	}
	return out
}()

// FixEdges tries to repair every edge outside tolerance by nudging one
// endpoint by at most one unit on each axis. The second endpoint is tried
// first, then the first; frozen endpoints are never moved. Edges are
// visited in order and see earlier repairs. It returns the number of edges
// repaired.
func (s *Session) FixEdges() int {
	s.push()
	eps := s.problem.Tolerance()
	admissible := func(u, v geom.Vec2, rest2 float64) bool {
		r := u.Distance2(v)/rest2 - 1
		return r <= eps && r >= -eps
	}
	fixed := 0
	for _, e := range s.problem.Figure.Edges {
		rest2 := s.world.Dist.Original2(e)
		a, b := s.vertices[e.U], s.vertices[e.V]
		if admissible(a, b, rest2) {
			continue
		}
		if s.nudge(e.V, a, rest2, admissible) || s.nudge(e.U, b, rest2, admissible) {
			fixed++
		}
	}
	s.edited("fix-edges", fixed)
	return fixed
}

func (s *Session) nudge(idx int, other geom.Vec2, rest2 float64, ok func(u, v geom.Vec2, rest2 float64) bool) bool {
	if s.frozen[idx] {
		return false
	}
	for _, d := range nudges {
		p := s.vertices[idx].Add(d)
		if ok(other, p, rest2) {
			s.vertices[idx] = p
			return true
		}
	}
	return false
}

func (s *Session) edited(op string, moved int) {
	observability.Session().OnEdit(op, moved)
}
