package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/holefit/pkg/geom"
	"github.com/matzehuels/holefit/pkg/session"
	"github.com/matzehuels/holefit/pkg/store"
)

func listPress(t *testing.T, m SolutionListModel, keys ...string) SolutionListModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(SolutionListModel)
	}
	return m
}

func testEntries() []store.Entry {
	now := time.Now()
	return []store.Entry{
		{Problem: "7", Name: "best", Size: 120, ModTime: now.Add(-5 * time.Minute)},
		{Problem: "7", Name: "draft", Size: 4096, ModTime: now.Add(-3 * time.Hour)},
	}
}

func TestSolutionListOriginal(t *testing.T) {
	m := listPress(t, NewSolutionListModel("7", testEntries()), "enter")
	if !m.Done || m.Selected != nil {
		t.Errorf("Done = %v, Selected = %+v; want original placement", m.Done, m.Selected)
	}
}

func TestSolutionListNavigate(t *testing.T) {
	m := listPress(t, NewSolutionListModel("7", testEntries()), "down", "down", "down", "up", "enter")
	if m.Selected == nil || m.Selected.Name != "best" {
		t.Errorf("Selected = %+v, want best", m.Selected)
	}
}

func TestSolutionListView(t *testing.T) {
	out := NewSolutionListModel("7", testEntries()).View()
	for _, want := range []string{"original", "best", "draft", "4.0 KB", "5m ago", "3h ago", "[1/3]"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestFormatRelativeTime(t *testing.T) {
	old := time.Date(2020, time.March, 4, 0, 0, 0, 0, time.UTC)
	if got := formatRelativeTime(old); got != "Mar 4, 2020" {
		t.Errorf("formatRelativeTime = %q", got)
	}
	if got := formatRelativeTime(time.Now().Add(-50 * time.Hour)); got != "2d ago" {
		t.Errorf("formatRelativeTime(50h) = %q", got)
	}
}

func TestCanvasProject(t *testing.T) {
	c := newCanvas(21, 11, geom.Rect{Min: geom.Vec(0, 0), Max: geom.Vec(10, 10)}, session.DefaultView)

	tests := []struct {
		p    geom.Vec2
		x, y int
		ok   bool
	}{
		{geom.Vec(0, 0), 0, 0, true},
		{geom.Vec(10, 10), 20, 10, true},
		{geom.Vec(5, 5), 10, 5, true},
		{geom.Vec(11, 5), 22, 5, false},
	}
	for _, tt := range tests {
		x, y, ok := c.project(tt.p)
		if x != tt.x || y != tt.y || ok != tt.ok {
			t.Errorf("project(%v) = %d, %d, %v; want %d, %d, %v", tt.p, x, y, ok, tt.x, tt.y, tt.ok)
		}
	}
}

func TestCanvasZoom(t *testing.T) {
	c := newCanvas(21, 11, geom.Rect{Min: geom.Vec(0, 0), Max: geom.Vec(10, 10)}, session.View{Zoom: 2})
	if x, y, ok := c.project(geom.Vec(5, 5)); x != 10 || y != 5 || !ok {
		t.Errorf("center moved to %d, %d", x, y)
	}
	if _, _, ok := c.project(geom.Vec(0, 0)); ok {
		t.Error("corner should be off screen at zoom 2")
	}
}

func TestCanvasLayers(t *testing.T) {
	c := newCanvas(21, 11, geom.Rect{Min: geom.Vec(0, 0), Max: geom.Vec(10, 10)}, session.DefaultView)
	plain := lipgloss.NewStyle()

	c.line(geom.Seg(geom.Vec(0, 0), geom.Vec(10, 0)), '-', plain, layerEdge)
	c.point(geom.Vec(5, 0), 'o', plain, layerVertex)
	c.line(geom.Seg(geom.Vec(0, 0), geom.Vec(10, 0)), '.', plain, layerHole)

	lines := strings.Split(c.String(), "\n")
	if len(lines) != 11 {
		t.Fatalf("got %d lines, want 11", len(lines))
	}
	if want := "----------o----------"; lines[0] != want {
		t.Errorf("row 0 = %q, want %q", lines[0], want)
	}
}

func TestDrawSession(t *testing.T) {
	s := newTestSession(t)
	s.Freeze(2)
	out := drawSession(s, 40, 12, 0)
	for _, r := range []string{"+", "◉", "■", "o"} {
		if !strings.Contains(out, r) {
			t.Errorf("drawing missing %q", r)
		}
	}
}
