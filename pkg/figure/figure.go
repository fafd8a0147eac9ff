package figure

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/holefit/pkg/errors"
	"github.com/matzehuels/holefit/pkg/geom"
)

// PPM is the denominator of the epsilon value stored in problem files.
const PPM = 1_000_000

// Edge connects two vertices of a figure by index. Edges are undirected.
type Edge struct {
	U, V int
}

// Other returns the endpoint of e that is not idx.
func (e Edge) Other(idx int) int {
	if e.U == idx {
		return e.V
	}
	return e.U
}

// MarshalJSON encodes e as a two element array.
func (e Edge) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{e.U, e.V})
}

// UnmarshalJSON decodes a two element array into e.
func (e *Edge) UnmarshalJSON(data []byte) error {
	var uv []int
	if err := json.Unmarshal(data, &uv); err != nil {
		return err
	}
	if len(uv) != 2 {
		return fmt.Errorf("edge must have 2 endpoints, got %d", len(uv))
	}
	e.U, e.V = uv[0], uv[1]
	return nil
}

// Figure is the deformable graph. Vertex order is identity: an index refers
// to the same vertex for the lifetime of a problem.
type Figure struct {
	Vertices []geom.Vec2 `json:"vertices"`
	Edges    []Edge      `json:"edges"`
}

// Bonus is an unlock location attached to a problem. The solver carries
// bonuses through unchanged; they do not affect scoring.
type Bonus struct {
	Kind     string    `json:"bonus"`
	Problem  int       `json:"problem"`
	Position geom.Vec2 `json:"position"`
}

// Problem is a hole, a figure and the allowed edge-length tolerance.
type Problem struct {
	Hole    geom.Polygon `json:"hole"`
	Epsilon int64        `json:"epsilon"` // parts per million
	Figure  Figure       `json:"figure"`
	Bonuses []Bonus      `json:"bonuses,omitempty"`
}

// Tolerance returns epsilon as a fraction.
func (p *Problem) Tolerance() float64 {
	return float64(p.Epsilon) / PPM
}

// HoleEdges returns the boundary segments of the hole.
func (p *Problem) HoleEdges() []geom.Segment {
	return p.Hole.Edges()
}

// Validate checks the structural invariants a solver session depends on.
// It is meant for untrusted input; the solver itself assumes a valid problem.
func (p *Problem) Validate() error {
	if len(p.Hole) < 3 {
		return errors.New(errors.ErrCodeInvalidProblem, "hole needs at least 3 vertices, got %d", len(p.Hole))
	}
	if len(p.Figure.Vertices) == 0 {
		return errors.New(errors.ErrCodeInvalidProblem, "figure has no vertices")
	}
	if p.Epsilon < 0 || p.Epsilon >= PPM {
		return errors.New(errors.ErrCodeInvalidProblem, "epsilon %d out of range [0, %d)", p.Epsilon, PPM)
	}
	n := len(p.Figure.Vertices)
	for i, e := range p.Figure.Edges {
		what := fmt.Sprintf("edge %d", i)
		if err := errors.ValidateIndex(errors.ErrCodeInvalidProblem, what, e.U, n); err != nil {
			return err
		}
		if err := errors.ValidateIndex(errors.ErrCodeInvalidProblem, what, e.V, n); err != nil {
			return err
		}
		if e.U == e.V {
			return errors.New(errors.ErrCodeInvalidProblem, "edge %d is a self-loop on vertex %d", i, e.U)
		}
		if p.Figure.Vertices[e.U] == p.Figure.Vertices[e.V] {
			return errors.New(errors.ErrCodeInvalidProblem, "edge %d has zero original length", i)
		}
	}
	return nil
}

// Solution is the persisted output of a session: the vertex positions and,
// optionally, the vertices the user had pinned.
type Solution struct {
	Vertices    []geom.Vec2 `json:"vertices"`
	FixedPoints []int       `json:"fixedPoints,omitempty"`
}

// ValidateFor checks that s fits problem p.
func (s *Solution) ValidateFor(p *Problem) error {
	n := len(p.Figure.Vertices)
	if len(s.Vertices) != n {
		return errors.New(errors.ErrCodeInvalidSolution, "solution has %d vertices, figure has %d", len(s.Vertices), n)
	}
	for _, idx := range s.FixedPoints {
		if err := errors.ValidateIndex(errors.ErrCodeInvalidSolution, "fixed point", idx, n); err != nil {
			return err
		}
	}
	return nil
}
