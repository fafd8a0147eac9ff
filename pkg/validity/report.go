package validity

import (
	"github.com/matzehuels/holefit/pkg/figure"
	"github.com/matzehuels/holefit/pkg/geom"
)

// Report is the full validity picture of one set of vertex positions.
type Report struct {
	Edges       Classification
	Crossings   []int // figure edges crossing the hole boundary
	Outside     []int // vertices outside the hole
	Submittable bool
}

// Check evaluates vertices against problem p using a prebuilt distance map.
func Check(p *figure.Problem, dm figure.DistanceMap, vertices []geom.Vec2) Report {
	edges := p.Figure.Edges
	c := ClassifyEdges(vertices, edges, dm, p.Tolerance())
	figSegs := FigureSegments(vertices, edges)
	crossings := Crossings(figSegs, p.HoleEdges())
	return Report{
		Edges:       c,
		Crossings:   crossings,
		Outside:     Outside(p.Hole, vertices),
		Submittable: c.Valid() && len(crossings) == 0,
	}
}
