// Package score computes the "dislikes" metric: how well a figure covers the
// corners of its hole. Lower is better and zero is a perfect cover.
package score

import (
	"math"

	"github.com/matzehuels/holefit/pkg/geom"
)

// Nearest returns the candidate closest to point by squared distance, along
// with its index. Ties keep the first minimum in iteration order.
// It panics if candidates is empty.
func Nearest(point geom.Vec2, candidates []geom.Vec2) (geom.Vec2, int) {
	if len(candidates) == 0 {
		panic("score: nearest of empty candidate list")
	}
	best, bestIdx := candidates[0], 0
	bestD := point.Distance2(best)
	for i, c := range candidates[1:] {
		if d := point.Distance2(c); d < bestD {
			best, bestIdx, bestD = c, i+1, d
		}
	}
	return best, bestIdx
}

// Dislikes sums, over every hole vertex, the squared distance to the nearest
// figure vertex. It is not symmetric: it measures how well the figure covers
// the hole, not the reverse.
func Dislikes(hole geom.Polygon, vertices []geom.Vec2) float64 {
	var total float64
	for _, h := range hole {
		n, _ := Nearest(h, vertices)
		total += h.Distance2(n)
	}
	return total
}

// Rounded returns dislikes as the integer the contest scoreboard reports.
// Solutions are submitted with integer coordinates, so this is exact for
// snapped figures.
func Rounded(hole geom.Polygon, vertices []geom.Vec2) int64 {
	return int64(math.Round(Dislikes(hole, vertices)))
}
