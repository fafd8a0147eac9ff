package geom

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand/v2"
)

// Vec2 is a 2D vector or point. It is a value type: every method returns a
// new vector and never modifies the receiver.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Zero is the zero vector.
var Zero = Vec2{}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub subtracts o from v.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both coordinates by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2) Negate() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Magnitude returns the euclidean length of the vector.
func (v Vec2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Magnitude2 returns the squared length of the vector.
//
// This is cheaper than squaring the result of [Vec2.Magnitude].
func (v Vec2) Magnitude2() float64 {
	return v.Dot(v)
}

// Distance returns the euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Distance2 returns the squared euclidean distance between v and o.
func (v Vec2) Distance2(o Vec2) float64 {
	x := v.X - o.X
	y := v.Y - o.Y
	return x*x + y*y
}

// IsZero reports whether both coordinates are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// SetMagnitude returns a vector with the direction of v and length target.
//
// A target of 0 yields the zero vector. A zero-length v has no direction, so
// the result is the zero vector for any target.
func (v Vec2) SetMagnitude(target float64) Vec2 {
	if target == 0 {
		return Zero
	}
	m := v.Magnitude()
	if m == 0 {
		return Zero
	}
	return v.Scale(target / m)
}

// ClampMagnitude returns v with its length limited to [lo, hi].
func (v Vec2) ClampMagnitude(lo, hi float64) Vec2 {
	m := v.Magnitude()
	return v.SetMagnitude(min(max(m, lo), hi))
}

// Normalize returns the unit vector in the direction of v, or the zero
// vector if v has no direction.
func (v Vec2) Normalize() Vec2 {
	return v.SetMagnitude(1)
}

// Rotate rotates v by th radians around the origin.
func (v Vec2) Rotate(th float64) Vec2 {
	s, c := math.Sincos(th)
	return Vec2{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
	}
}

// RotateAround rotates v by th radians around center.
func (v Vec2) RotateAround(center Vec2, th float64) Vec2 {
	return v.Sub(center).Rotate(th).Add(center)
}

// Lerp linearly interpolates between v and o.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return v.Add(o.Sub(v).Scale(t))
}

// Round rounds both coordinates to the given number of decimal places.
// A precision of 0 rounds to integers.
func (v Vec2) Round(precision int) Vec2 {
	if precision == 0 {
		return Vec2{X: math.Round(v.X), Y: math.Round(v.Y)}
	}
	p := math.Pow(10, float64(precision))
	return Vec2{X: math.Round(v.X*p) / p, Y: math.Round(v.Y*p) / p}
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

// VecFromAngle returns a unit vector of the given angle in radians.
func VecFromAngle(th float64) Vec2 {
	y, x := math.Sincos(th)
	return Vec2{X: x, Y: y}
}

// RandomUnit returns a vector of length scale pointing in a direction drawn
// uniformly from [0, 2π).
func RandomUnit(rng *rand.Rand, scale float64) Vec2 {
	return VecFromAngle(rng.Float64() * 2 * math.Pi).Scale(scale)
}

// Mean returns the arithmetic mean of vs. It panics if vs is empty.
func Mean(vs []Vec2) Vec2 {
	if len(vs) == 0 {
		panic("geom: mean of empty vector list")
	}
	var sum Vec2
	for _, v := range vs {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float64(len(vs)))
}

// Clone returns a copy of vs.
func Clone(vs []Vec2) []Vec2 {
	if vs == nil {
		return nil
	}
	out := make([]Vec2, len(vs))
	copy(out, vs)
	return out
}

// MarshalJSON encodes v as a two element array.
func (v Vec2) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{v.X, v.Y})
}

// UnmarshalJSON decodes a two element array into v.
func (v *Vec2) UnmarshalJSON(data []byte) error {
	var xy []float64
	if err := json.Unmarshal(data, &xy); err != nil {
		return err
	}
	if len(xy) != 2 {
		return fmt.Errorf("point must have 2 coordinates, got %d", len(xy))
	}
	v.X, v.Y = xy[0], xy[1]
	return nil
}
