// Package physics moves a figure toward a valid placement with a simple
// force simulation.
//
// # Forces
//
// The force functions ([SpringForce], [Repulsion], [Attraction],
// [LinearGravity], [RadialForce], [Shake]) are pure. They know nothing about
// frozen vertices; [Step] drops the forces of pinned vertices before
// integrating. Degenerate inputs (coincident points) never fail: repulsive
// forces pick a random direction, attractive forces vanish.
//
// # Modes
//
// A [Mode] adds one force pass before the tension pass that pulls every edge
// back toward its original length. Modes are a closed set built from a
// [ModeKind] and the current [Constants] by [NewMode]:
//
//	none          tension only (relax)
//	inflate       all pairs repel
//	stretch       all pairs repel, weaker but longer range
//	gravity       attract toward the figure centroid
//	hole-gravity  attract toward every hole vertex
//	center        drift toward the hole centroid
//	radial        push away from the figure mean
//
// # Integration
//
// Explicit Euler with a fixed time step. Faster playback runs more sub-steps
// per frame ([Run]) rather than a larger step, which keeps the spring pass
// stable. Randomness comes from a caller-owned *rand.Rand so runs are
// reproducible from a seed.
package physics
