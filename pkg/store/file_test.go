package store

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/matzehuels/holefit/pkg/errors"
	"github.com/matzehuels/holefit/pkg/figure"
	"github.com/matzehuels/holefit/pkg/geom"
)

func newStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return s
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	sol := figure.Solution{
		Vertices:    []geom.Vec2{geom.Vec(1, 2), geom.Vec(3, 4)},
		FixedPoints: []int{1},
	}

	name, err := s.Save(ctx, "42", "best", sol)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if name != "best" {
		t.Errorf("name = %q", name)
	}
	got, err := s.Load(ctx, "42", "best")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(sol, *got); diff != "" {
		t.Errorf("Load (-want +got):\n%s", diff)
	}
	if _, err := os.Stat(filepath.Join(s.Path(), "42", "best.json")); err != nil {
		t.Errorf("expected file on disk: %v", err)
	}
}

func TestSaveGeneratesName(t *testing.T) {
	s := newStore(t)
	name, err := s.Save(context.Background(), "7", "", figure.Solution{Vertices: []geom.Vec2{geom.Zero}})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(name) != 8 {
		t.Errorf("generated name %q, want 8 characters", name)
	}
}

func TestLoadMissing(t *testing.T) {
	s := newStore(t)
	_, err := s.Load(context.Background(), "42", "nope")
	if !stderrors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if !errors.Is(err, errors.ErrCodeSolutionNotFound) {
		t.Errorf("code = %v", errors.GetCode(err))
	}
	if err := s.Delete(context.Background(), "42", "nope"); !stderrors.Is(err, ErrNotFound) {
		t.Errorf("Delete err = %v", err)
	}
}

func TestRejectsUnsafeNames(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	sol := figure.Solution{Vertices: []geom.Vec2{geom.Zero}}
	for _, name := range []string{"../escape", "a/b", ".hidden"} {
		if _, err := s.Save(ctx, "1", name, sol); !errors.Is(err, errors.ErrCodeInvalidName) {
			t.Errorf("Save(%q) err = %v", name, err)
		}
	}
	if _, err := s.List(ctx, ".."); err == nil {
		t.Error("List(..) should fail")
	}
}

func TestListAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	sol := figure.Solution{Vertices: []geom.Vec2{geom.Zero}}

	for _, n := range []string{"a", "b"} {
		if _, err := s.Save(ctx, "3", n, sol); err != nil {
			t.Fatal(err)
		}
	}
	// make "a" the newest
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(s.SolutionPath("3", "a"), future, future); err != nil {
		t.Fatal(err)
	}

	entries, err := s.List(ctx, "3")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	if diff := cmp.Diff([]string{"a", "b"}, names); diff != "" {
		t.Errorf("List order (-want +got):\n%s", diff)
	}

	problems, err := s.Problems(ctx)
	if err != nil || len(problems) != 1 || problems[0] != "3" {
		t.Errorf("Problems = %v, %v", problems, err)
	}

	if err := s.Delete(ctx, "3", "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	entries, _ = s.List(ctx, "3")
	if len(entries) != 1 || entries[0].Name != "b" {
		t.Errorf("after delete: %+v", entries)
	}

	if entries, err := s.List(ctx, "99"); err != nil || entries != nil {
		t.Errorf("unknown problem: %v, %v", entries, err)
	}
}
