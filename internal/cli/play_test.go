package cli

import (
	stderrors "errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/holefit/pkg/figure"
	"github.com/matzehuels/holefit/pkg/geom"
	"github.com/matzehuels/holefit/pkg/physics"
	"github.com/matzehuels/holefit/pkg/session"
)

// key builds the message bubbletea sends for a key press.
func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds keys to m in order.
func press(t *testing.T, m PlayModel, keys ...string) PlayModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(PlayModel)
	}
	return m
}

func TestPlayModeKeys(t *testing.T) {
	m := NewPlayModel(newTestSession(t), PlayConfig{})

	m = press(t, m, "2")
	if got := m.Session.Mode(); got != physics.ModeInflate {
		t.Errorf("mode after 2 = %s, want inflate", got)
	}
	if !m.Session.Running() {
		t.Error("selecting a mode should start the simulation")
	}

	m = press(t, m, "2")
	if got := m.Session.Mode(); got != physics.ModeNone {
		t.Errorf("mode after 2 again = %s, want none", got)
	}

	m = press(t, m, " ")
	if m.Session.Running() {
		t.Error("space should pause")
	}
}

func TestPlayTick(t *testing.T) {
	m := NewPlayModel(newTestSession(t), PlayConfig{FPS: 30})

	next, cmd := m.Update(tickMsg(time.Now()))
	m = next.(PlayModel)
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if st := m.Session.Stats(); st.Steps != 0 {
		t.Errorf("idle tick ran %d steps", st.Steps)
	}

	m = press(t, m, "+", "+", "4")
	m.Update(tickMsg(time.Now()))
	if st := m.Session.Stats(); st.Steps != 3 || st.Speed != 3 {
		t.Errorf("steps = %d speed = %d, want 3 and 3", st.Steps, st.Speed)
	}
}

func TestPlayEditsAndUndo(t *testing.T) {
	s := newTestSession(t)
	m := NewPlayModel(s, PlayConfig{})
	start := s.Vertices()

	m = press(t, m, "right", "down")
	if got, want := s.Vertex(0), start[0].Add(geom.Vec(1, 1)); got != want {
		t.Errorf("vertex 0 = %v, want %v", got, want)
	}

	m = press(t, m, "u", "u")
	if got := s.Vertex(0); got != start[0] {
		t.Errorf("after undo vertex 0 = %v, want %v", got, start[0])
	}

	m = press(t, m, "u")
	if m.Status != "nothing to undo" {
		t.Errorf("status = %q", m.Status)
	}
}

func TestPlaySelection(t *testing.T) {
	s := newTestSession(t)
	m := NewPlayModel(s, PlayConfig{})

	m = press(t, m, "F")
	if len(s.Frozen()) != 0 {
		t.Error("F without a selection should do nothing")
	}

	m = press(t, m, "tab", "tab")
	if m.Selected != 1 {
		t.Fatalf("selected = %d, want 1", m.Selected)
	}
	m = press(t, m, "F", "L")
	if !s.IsFrozen(1) {
		t.Error("F should freeze the selected vertex")
	}
	if got := s.Vertex(1); got != geom.Vec(6, 2) {
		t.Errorf("frozen vertex 1 moved to %v", got)
	}
	if !strings.Contains(m.Status, "frozen") {
		t.Errorf("status = %q", m.Status)
	}

	m = press(t, m, "F", "L", "F")
	if got := s.Vertex(1); got != geom.Vec(7, 2) {
		t.Errorf("vertex 1 = %v, want (7, 2)", got)
	}

	m = press(t, m, "tab", "tab")
	if m.Selected != 0 {
		t.Errorf("selection should wrap, got %d", m.Selected)
	}

	m = press(t, m, "U")
	if len(s.Frozen()) != 0 {
		t.Error("U should unfreeze everything")
	}
}

func TestPlayViewKeys(t *testing.T) {
	s := newTestSession(t)
	m := NewPlayModel(s, PlayConfig{})

	m = press(t, m, "z", "z")
	if got := s.View().Zoom; got != zoomStep*zoomStep {
		t.Errorf("zoom = %v, want %v", got, zoomStep*zoomStep)
	}
	press(t, m, "0")
	if s.View() != session.DefaultView {
		t.Errorf("view = %+v, want default", s.View())
	}
}

func TestPlaySave(t *testing.T) {
	var saved []figure.Solution
	m := NewPlayModel(newTestSession(t), PlayConfig{
		Save: func(sol figure.Solution) (string, error) {
			saved = append(saved, sol)
			return "abc", nil
		},
	})

	m = press(t, m, "w")
	if len(saved) != 1 || m.LastSaved != "abc" {
		t.Errorf("saved %d, LastSaved %q", len(saved), m.LastSaved)
	}

	m.Config.Save = func(figure.Solution) (string, error) { return "", stderrors.New("disk full") }
	m = press(t, m, "w")
	if m.LastSaved != "abc" || !strings.Contains(m.Status, "disk full") {
		t.Errorf("failed save: LastSaved %q, status %q", m.LastSaved, m.Status)
	}
}

func TestPlayQuit(t *testing.T) {
	m := NewPlayModel(newTestSession(t), PlayConfig{})
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestPlayView(t *testing.T) {
	m := NewPlayModel(newTestSession(t), PlayConfig{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(PlayModel)

	out := m.View()
	for _, want := range []string{"Dislikes", "Mode", "idle"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = press(t, m, "?")
	if !strings.Contains(m.View(), "power edit") {
		t.Error("help should list key bindings")
	}
}
