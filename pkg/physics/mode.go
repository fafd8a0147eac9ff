package physics

import (
	"math/rand/v2"
	"strings"

	"github.com/matzehuels/holefit/pkg/errors"
	"github.com/matzehuels/holefit/pkg/geom"
)

// ModeKind names a simulation mode.
type ModeKind int

const (
	ModeNone ModeKind = iota
	ModeInflate
	ModeStretch
	ModeGravity
	ModeHoleGravity
	ModeCenter
	ModeRadial
)

var modeNames = [...]string{
	ModeNone:        "none",
	ModeInflate:     "inflate",
	ModeStretch:     "stretch",
	ModeGravity:     "gravity",
	ModeHoleGravity: "hole-gravity",
	ModeCenter:      "center",
	ModeRadial:      "radial",
}

func (k ModeKind) String() string {
	if k < 0 || int(k) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[k]
}

// ModeKinds lists every mode in display order.
func ModeKinds() []ModeKind {
	out := make([]ModeKind, len(modeNames))
	for i := range out {
		out[i] = ModeKind(i)
	}
	return out
}

// ParseModeKind resolves a mode name as printed by [ModeKind.String].
// Matching is case-insensitive and accepts "relax" for none.
func ParseModeKind(s string) (ModeKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "relax" || name == "" {
		return ModeNone, nil
	}
	for i, n := range modeNames {
		if n == name {
			return ModeKind(i), nil
		}
	}
	return ModeNone, errors.New(errors.ErrCodeInvalidMode, "unknown mode %q", s)
}

// Mode is the force applied to every unfrozen vertex before the tension pass.
// The set of modes is closed; build one with [NewMode].
type Mode interface {
	Kind() ModeKind
	// forces returns one force per vertex, or nil when the mode adds none.
	forces(w World, vs []geom.Vec2, rng *rand.Rand) []geom.Vec2
}

// None adds no force; a step is the tension pass alone.
type None struct{}

// Inflate pushes every pair of vertices apart.
type Inflate struct {
	Repel, Exponent, Max float64
}

// Stretch is a milder, longer-range inflate.
type Stretch struct {
	Repel, Exponent, Max float64
}

// Gravity pulls every vertex toward the centroid of the current figure.
type Gravity struct {
	K, Exponent, Max float64
}

// HoleGravity pulls every vertex toward every hole vertex.
type HoleGravity struct {
	K, Exponent, Max float64
}

// Center drifts the whole figure toward the hole centroid.
type Center struct {
	K float64
}

// Radial pushes every vertex away from the figure mean at constant strength.
type Radial struct {
	K float64
}

func (None) Kind() ModeKind        { return ModeNone }
func (Inflate) Kind() ModeKind     { return ModeInflate }
func (Stretch) Kind() ModeKind     { return ModeStretch }
func (Gravity) Kind() ModeKind     { return ModeGravity }
func (HoleGravity) Kind() ModeKind { return ModeHoleGravity }
func (Center) Kind() ModeKind      { return ModeCenter }
func (Radial) Kind() ModeKind      { return ModeRadial }

// NewMode builds the mode of the given kind with parameters taken from c.
func NewMode(kind ModeKind, c Constants) Mode {
	switch kind {
	case ModeInflate:
		return Inflate{Repel: c.InflateRepel, Exponent: c.InflateExponent, Max: c.InflateMax}
	case ModeStretch:
		return Stretch{Repel: c.StretchRepel, Exponent: c.StretchExponent, Max: c.StretchMax}
	case ModeGravity:
		return Gravity{K: c.Gravity, Exponent: c.GravityExponent, Max: c.GravityMax}
	case ModeHoleGravity:
		return HoleGravity{K: c.HoleGravity, Exponent: c.HoleGravityExponent, Max: c.HoleGravityMax}
	case ModeCenter:
		return Center{K: c.Center}
	case ModeRadial:
		return Radial{K: c.Radial}
	default:
		return None{}
	}
}

func (None) forces(World, []geom.Vec2, *rand.Rand) []geom.Vec2 { return nil }

func (m Inflate) forces(_ World, vs []geom.Vec2, rng *rand.Rand) []geom.Vec2 {
	return pairwiseRepulsion(vs, rng, m.Repel, m.Exponent, m.Max)
}

func (m Stretch) forces(_ World, vs []geom.Vec2, rng *rand.Rand) []geom.Vec2 {
	return pairwiseRepulsion(vs, rng, m.Repel, m.Exponent, m.Max)
}

func (m Gravity) forces(_ World, vs []geom.Vec2, _ *rand.Rand) []geom.Vec2 {
	c := geom.Mean(vs)
	out := make([]geom.Vec2, len(vs))
	for i, v := range vs {
		out[i] = Attraction(v, c, m.K, m.Exponent, m.Max)
	}
	return out
}

func (m HoleGravity) forces(w World, vs []geom.Vec2, _ *rand.Rand) []geom.Vec2 {
	out := make([]geom.Vec2, len(vs))
	for i, v := range vs {
		var f geom.Vec2
		for _, h := range w.Hole {
			f = f.Add(Attraction(v, h, m.K, m.Exponent, m.Max))
		}
		out[i] = f
	}
	return out
}

func (m Center) forces(w World, vs []geom.Vec2, _ *rand.Rand) []geom.Vec2 {
	g := LinearGravity(geom.Mean(vs), w.Hole.Centroid(), m.K)
	out := make([]geom.Vec2, len(vs))
	for i := range out {
		out[i] = g
	}
	return out
}

func (m Radial) forces(_ World, vs []geom.Vec2, rng *rand.Rand) []geom.Vec2 {
	mean := geom.Mean(vs)
	out := make([]geom.Vec2, len(vs))
	for i, v := range vs {
		out[i] = RadialForce(rng, v, mean, m.K)
	}
	return out
}

func pairwiseRepulsion(vs []geom.Vec2, rng *rand.Rand, k, exponent, maxForce float64) []geom.Vec2 {
	out := make([]geom.Vec2, len(vs))
	for i, v := range vs {
		var f geom.Vec2
		for j, o := range vs {
			if i == j {
				continue
			}
			f = f.Add(Repulsion(rng, v, o, k, exponent, maxForce))
		}
		out[i] = f
	}
	return out
}
