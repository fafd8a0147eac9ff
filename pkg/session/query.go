package session

import (
	"github.com/matzehuels/holefit/pkg/figure"
	"github.com/matzehuels/holefit/pkg/geom"
	"github.com/matzehuels/holefit/pkg/score"
	"github.com/matzehuels/holefit/pkg/validity"
)

// Vertices returns a copy of the current vertex positions.
func (s *Session) Vertices() []geom.Vec2 { return geom.Clone(s.vertices) }

// Vertex returns the current position of one vertex.
func (s *Session) Vertex(idx int) geom.Vec2 {
	s.checkIndex(idx)
	return s.vertices[idx]
}

// Classification returns the length status of every edge.
func (s *Session) Classification() validity.Classification {
	return validity.ClassifyEdges(s.vertices, s.problem.Figure.Edges, s.world.Dist, s.problem.Tolerance())
}

// Crossings returns the figure edges that cross the hole boundary.
func (s *Session) Crossings() []int {
	return validity.Crossings(validity.FigureSegments(s.vertices, s.problem.Figure.Edges), s.problem.HoleEdges())
}

// Score returns the dislikes of the current placement.
func (s *Session) Score() float64 {
	return score.Dislikes(s.problem.Hole, s.vertices)
}

// Submittable reports whether the current placement is a legal answer.
func (s *Session) Submittable() bool {
	return validity.IsSubmittable(
		validity.FigureSegments(s.vertices, s.problem.Figure.Edges),
		s.problem.HoleEdges(),
		s.Classification(),
	)
}

// Report runs every validity check on the current placement.
func (s *Session) Report() validity.Report {
	return validity.Check(s.problem, s.world.Dist, s.vertices)
}

// Solution returns the current placement in its persisted shape.
func (s *Session) Solution() figure.Solution {
	return figure.Solution{
		Vertices:    geom.Clone(s.vertices),
		FixedPoints: s.Frozen(),
	}
}

// Stats summarizes the session for status displays.
type Stats struct {
	State         State
	Mode          string
	Speed         int
	Ticks         int
	Steps         int
	Vertices      int
	Edges         int
	Frozen        int
	Overstretched []int
	Overshrunk    []int
	Crossings     []int
	Outside       []int
	Dislikes      float64
	Submittable   bool
	CanUndo       bool
}

// Stats computes a status snapshot.
func (s *Session) Stats() Stats {
	r := s.Report()
	return Stats{
		State:         s.state,
		Mode:          s.mode.Kind().String(),
		Speed:         s.speed,
		Ticks:         s.ticks,
		Steps:         s.steps,
		Vertices:      len(s.vertices),
		Edges:         len(s.problem.Figure.Edges),
		Frozen:        len(s.Frozen()),
		Overstretched: r.Edges.Overstretched(),
		Overshrunk:    r.Edges.Overshrunk(),
		Crossings:     r.Crossings,
		Outside:       r.Outside,
		Dislikes:      s.Score(),
		Submittable:   r.Submittable,
		CanUndo:       s.CanUndo(),
	}
}
