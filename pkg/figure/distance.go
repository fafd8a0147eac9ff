package figure

import (
	"fmt"
	"math"

	"github.com/matzehuels/holefit/pkg/geom"
)

// DistanceMap holds the original length of every edge, keyed by both
// endpoint orders. Squared lengths are kept exactly as measured so tolerance
// checks never go through a square root. It is built once when a figure is loaded and is the fixed
// reference every later deformation is judged against.
//
// Every vertex index in range has a row, so lookups for isolated vertices
// return "no entry" instead of failing.
type DistanceMap struct {
	rows []map[int]length
	adj  [][]int
}

type length struct {
	d, d2 float64
}

// BuildDistanceMap measures every edge of the figure.
// It panics if an edge references a vertex outside vertices.
func BuildDistanceMap(vertices []geom.Vec2, edges []Edge) DistanceMap {
	dm := DistanceMap{
		rows: make([]map[int]length, len(vertices)),
		adj:  make([][]int, len(vertices)),
	}
	for i := range dm.rows {
		dm.rows[i] = map[int]length{}
	}
	for _, e := range edges {
		checkEdge(e, len(vertices))
		d2 := vertices[e.U].Distance2(vertices[e.V])
		l := length{d: math.Sqrt(d2), d2: d2}
		if _, seen := dm.rows[e.U][e.V]; !seen {
			dm.adj[e.U] = append(dm.adj[e.U], e.V)
			dm.adj[e.V] = append(dm.adj[e.V], e.U)
		}
		dm.rows[e.U][e.V] = l
		dm.rows[e.V][e.U] = l
	}
	return dm
}

// Len returns the number of vertices the map was built for.
func (dm DistanceMap) Len() int { return len(dm.rows) }

// Get returns the original distance between u and v if they share an edge.
func (dm DistanceMap) Get(u, v int) (float64, bool) {
	l, ok := dm.rows[u][v]
	return l.d, ok
}

// Original returns the original length of edge e. It panics if e was not
// part of the figure the map was built from.
func (dm DistanceMap) Original(e Edge) float64 {
	return dm.original(e).d
}

// Original2 returns the squared original length of edge e. It panics if e
// was not part of the figure the map was built from.
func (dm DistanceMap) Original2(e Edge) float64 {
	return dm.original(e).d2
}

func (dm DistanceMap) original(e Edge) length {
	l, ok := dm.rows[e.U][e.V]
	if !ok {
		panic(fmt.Sprintf("figure: no original length for edge %d-%d", e.U, e.V))
	}
	return l
}

// Neighbors returns the vertices sharing an edge with u, in edge order.
// The returned slice must not be modified.
func (dm DistanceMap) Neighbors(u int) []int {
	return dm.adj[u]
}

// CurrentLengths returns the current euclidean length of every edge, in the
// order of edges.
func CurrentLengths(vertices []geom.Vec2, edges []Edge) []float64 {
	out := make([]float64, len(edges))
	for i, e := range edges {
		checkEdge(e, len(vertices))
		out[i] = vertices[e.U].Distance(vertices[e.V])
	}
	return out
}

// StretchRatio returns current length / original length for edges[edgeIdx].
// The ratio is not squared.
func StretchRatio(edgeIdx int, vertices []geom.Vec2, dm DistanceMap, edges []Edge) float64 {
	e := edges[edgeIdx]
	checkEdge(e, len(vertices))
	return vertices[e.U].Distance(vertices[e.V]) / dm.Original(e)
}

// SquaredStretch returns current² / original² for edges[edgeIdx]. This is
// the quantity the tolerance rule is stated on.
func SquaredStretch(edgeIdx int, vertices []geom.Vec2, dm DistanceMap, edges []Edge) float64 {
	e := edges[edgeIdx]
	checkEdge(e, len(vertices))
	return vertices[e.U].Distance2(vertices[e.V]) / dm.Original2(e)
}

func checkEdge(e Edge, n int) {
	if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
		panic(fmt.Sprintf("figure: edge %d-%d out of range for %d vertices", e.U, e.V, n))
	}
}
