// Package session holds the mutable state of one interactive solving session.
//
// A [Session] owns the current vertex positions, the set of frozen vertices,
// the active simulation mode and the force constants for a single problem.
// The presentation layer reads it every frame and translates user gestures
// into its editing operations.
//
// # State machine
//
// A session is either [Idle] or [Running]. [Session.Tick] advances the
// simulation only while running. [Session.SetMode] starts an idle session;
// selecting the active mode again switches back to relax without stopping.
//
//	Idle ──TogglePlaying/Play/SetMode──▶ Running
//	Running ──TogglePlaying/Stop/Reset──▶ Idle
//
// # Concurrency
//
// A Session is single-writer and not safe for concurrent use. Ticks are
// synchronous and bounded by O(n²) work over the vertex set.
//
// # Failure semantics
//
// Out-of-range vertex indices are programming errors and panic. Only [New]
// returns errors, for problems and solutions that fail validation.
package session

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/matzehuels/holefit/pkg/figure"
	"github.com/matzehuels/holefit/pkg/geom"
	"github.com/matzehuels/holefit/pkg/observability"
	"github.com/matzehuels/holefit/pkg/physics"
)

// State is the play state of a session.
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// View is the caller-owned pan and zoom of whatever displays the session.
// The session only stores it so [Session.Reset] can restore the default.
type View struct {
	Pan  geom.Vec2
	Zoom float64
}

// DefaultView is the view after a reset: no pan, unit zoom.
var DefaultView = View{Zoom: 1}

// Options configures a new session.
type Options struct {
	// Seed makes random forces and edits reproducible. Zero picks a seed
	// from the clock.
	Seed uint64
	// Constants overrides [physics.DefaultConstants].
	Constants *physics.Constants
	// Speed is the number of sub-steps per tick. Defaults to 1.
	Speed int
	// HistoryLimit bounds the undo history. Defaults to 100.
	HistoryLimit int
}

var defaultOpts = Options{
	Speed:        1,
	HistoryLimit: 100,
}

// snapshot is one undo entry.
type snapshot struct {
	vertices []geom.Vec2
	frozen   []bool
}

// Session is the interactive solving state for one problem.
type Session struct {
	problem *figure.Problem
	world   physics.World

	initial       []geom.Vec2
	initialFrozen []int

	vertices []geom.Vec2
	frozen   []bool

	state     State
	mode      physics.Mode
	constants physics.Constants
	speed     int
	rng       *rand.Rand

	history      []snapshot
	historyLimit int
	view         View

	ticks int
	steps int
}

// New starts a session for p. If sol is non-nil its vertices and fixed points
// become the starting state, otherwise the figure's original placement is
// used with nothing frozen.
func New(p *figure.Problem, sol *figure.Solution, opts Options) (*Session, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	initial := p.Figure.Vertices
	var fixed []int
	if sol != nil {
		if err := sol.ValidateFor(p); err != nil {
			return nil, err
		}
		initial = sol.Vertices
		fixed = slices.Clone(sol.FixedPoints)
	}

	if opts.Speed <= 0 {
		opts.Speed = defaultOpts.Speed
	}
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = defaultOpts.HistoryLimit
	}
	c := physics.DefaultConstants()
	if opts.Constants != nil {
		c = *opts.Constants
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	s := &Session{
		problem: p,
		world: physics.World{
			Dist: figure.BuildDistanceMap(p.Figure.Vertices, p.Figure.Edges),
			Hole: p.Hole,
		},
		initial:       geom.Clone(initial),
		initialFrozen: fixed,
		constants:     c,
		speed:         opts.Speed,
		rng:           rand.New(rand.NewPCG(seed, seed^0xdeadbeef)),
		historyLimit:  opts.HistoryLimit,
	}
	s.restore()
	return s, nil
}

// restore puts vertices, frozen points, mode and view back to the starting
// state.
func (s *Session) restore() {
	s.vertices = geom.Clone(s.initial)
	s.frozen = make([]bool, len(s.initial))
	for _, idx := range s.initialFrozen {
		s.frozen[idx] = true
	}
	s.mode = physics.NewMode(physics.ModeNone, s.constants)
	s.history = nil
	s.view = DefaultView
}

// Problem returns the problem the session was created for.
func (s *Session) Problem() *figure.Problem { return s.problem }

// World returns the fixed simulation context.
func (s *Session) World() physics.World { return s.world }

// =============================================================================
// Play state
// =============================================================================

// State returns the current play state.
func (s *Session) State() State { return s.state }

// Running reports whether ticks advance the simulation.
func (s *Session) Running() bool { return s.state == Running }

// Mode returns the active simulation mode.
func (s *Session) Mode() physics.ModeKind { return s.mode.Kind() }

// Play starts the simulation.
func (s *Session) Play() { s.setState(Running) }

// Stop pauses the simulation. Vertices keep their current positions.
func (s *Session) Stop() { s.setState(Idle) }

// TogglePlaying flips between idle and running.
func (s *Session) TogglePlaying() {
	if s.Running() {
		s.Stop()
	} else {
		s.Play()
	}
}

// SetMode selects the simulation mode and starts an idle session. Selecting
// the mode that is already active switches back to none and leaves the play
// state alone.
func (s *Session) SetMode(kind physics.ModeKind) {
	from := s.mode.Kind()
	if kind == from {
		kind = physics.ModeNone
	} else {
		s.state = Running
	}
	s.mode = physics.NewMode(kind, s.constants)
	observability.Session().OnModeChange(from.String(), kind.String(), s.Running())
}

func (s *Session) setState(st State) {
	if s.state == st {
		return
	}
	s.state = st
	k := s.mode.Kind().String()
	observability.Session().OnModeChange(k, k, s.Running())
}

// Speed returns the number of sub-steps per tick.
func (s *Session) Speed() int { return s.speed }

// SetSpeed sets the number of sub-steps per tick. Values below 1 are raised
// to 1; the time step itself never changes.
func (s *Session) SetSpeed(n int) { s.speed = max(n, 1) }

// Tick advances the simulation by one frame. It does nothing and returns
// false while idle.
func (s *Session) Tick() bool {
	if !s.Running() {
		return false
	}
	start := time.Now()
	s.vertices = physics.Run(s.vertices, s.world, s.mode, s.constants, s.isFrozen, s.rng, s.speed)
	s.ticks++
	s.steps += s.speed
	observability.Session().OnTick(s.mode.Kind().String(), s.speed, time.Since(start))
	return true
}

// Reset stops the session and restores the starting vertices and fixed
// points. The mode returns to none, undo history is cleared and the view
// goes back to [DefaultView].
func (s *Session) Reset() {
	s.state = Idle
	s.restore()
	observability.Session().OnReset()
}

// View returns the stored view state.
func (s *Session) View() View { return s.view }

// SetView stores the caller's view state.
func (s *Session) SetView(v View) { s.view = v }

// =============================================================================
// Constants
// =============================================================================

// Constants returns a copy of the force constants in use.
func (s *Session) Constants() physics.Constants { return s.constants }

// SetConstants replaces the force constants. They apply from the next tick.
func (s *Session) SetConstants(c physics.Constants) {
	s.constants = c
	s.mode = physics.NewMode(s.mode.Kind(), c)
}

// ResetConstants restores [physics.DefaultConstants].
func (s *Session) ResetConstants() {
	s.SetConstants(physics.DefaultConstants())
}

// =============================================================================
// Frozen points
// =============================================================================

func (s *Session) isFrozen(idx int) bool { return s.frozen[idx] }

// IsFrozen reports whether the vertex at idx is pinned.
func (s *Session) IsFrozen(idx int) bool {
	s.checkIndex(idx)
	return s.frozen[idx]
}

// Frozen returns the pinned vertex indices in ascending order.
func (s *Session) Frozen() []int {
	var out []int
	for i, f := range s.frozen {
		if f {
			out = append(out, i)
		}
	}
	return out
}

// Freeze pins the given vertices.
func (s *Session) Freeze(idx ...int) {
	s.setFrozen(idx, func(bool) bool { return true })
}

// Unfreeze releases the given vertices.
func (s *Session) Unfreeze(idx ...int) {
	s.setFrozen(idx, func(bool) bool { return false })
}

// ToggleFrozen flips the pinned state of the given vertices.
func (s *Session) ToggleFrozen(idx ...int) {
	s.setFrozen(idx, func(f bool) bool { return !f })
}

// UnfreezeAll releases every vertex.
func (s *Session) UnfreezeAll() {
	s.push()
	clear(s.frozen)
}

func (s *Session) setFrozen(idx []int, f func(bool) bool) {
	for _, i := range idx {
		s.checkIndex(i)
	}
	s.push()
	for _, i := range idx {
		s.frozen[i] = f(s.frozen[i])
	}
}

// =============================================================================
// Undo
// =============================================================================

// push records the current state before an edit.
func (s *Session) push() {
	s.history = append(s.history, snapshot{
		vertices: geom.Clone(s.vertices),
		frozen:   slices.Clone(s.frozen),
	})
	if over := len(s.history) - s.historyLimit; over > 0 {
		s.history = slices.Delete(s.history, 0, over)
	}
}

// Undo reverts the most recent edit or freeze change. Simulation ticks are
// not recorded. It returns false when there is nothing to undo.
func (s *Session) Undo() bool {
	if len(s.history) == 0 {
		return false
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.vertices = last.vertices
	s.frozen = last.frozen
	return true
}

// CanUndo reports whether [Session.Undo] would change anything.
func (s *Session) CanUndo() bool { return len(s.history) > 0 }

func (s *Session) checkIndex(idx int) {
	if idx < 0 || idx >= len(s.vertices) {
		panic(fmt.Sprintf("session: vertex index %d out of range [0, %d)", idx, len(s.vertices)))
	}
}
