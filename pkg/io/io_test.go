package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matzehuels/holefit/pkg/errors"
	"github.com/matzehuels/holefit/pkg/figure"
	"github.com/matzehuels/holefit/pkg/geom"
)

const problemJSON = `{
  "hole": [[0, 0], [0, 10], [10, 10], [10, 0]],
  "epsilon": 150000,
  "figure": {"vertices": [[0, 0], [3, 4]], "edges": [[0, 1]]},
  "bonuses": [{"bonus": "GLOBALIST", "problem": 7, "position": [5, 5]}]
}`

func TestReadProblem(t *testing.T) {
	p, err := ReadProblem(strings.NewReader(problemJSON))
	if err != nil {
		t.Fatalf("ReadProblem: %v", err)
	}
	if len(p.Hole) != 4 || p.Epsilon != 150000 || p.Tolerance() != 0.15 {
		t.Errorf("decoded %+v", p)
	}
	if diff := cmp.Diff([]figure.Edge{{U: 0, V: 1}}, p.Figure.Edges); diff != "" {
		t.Errorf("edges (-want +got):\n%s", diff)
	}
	if len(p.Bonuses) != 1 || p.Bonuses[0].Kind != "GLOBALIST" {
		t.Errorf("bonuses = %+v", p.Bonuses)
	}
}

func TestReadProblemErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"malformed", `{"hole": [`},
		{"bad point", `{"hole": [[0,0,0]]}`},
		{"small hole", `{"hole": [[0,0],[1,1]], "figure": {"vertices": [[0,0]], "edges": []}}`},
		{"edge out of range", `{"hole": [[0,0],[0,1],[1,0]], "figure": {"vertices": [[0,0]], "edges": [[0,3]]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadProblem(strings.NewReader(tt.in))
			if !errors.Is(err, errors.ErrCodeInvalidProblem) {
				t.Errorf("err = %v, want INVALID_PROBLEM", err)
			}
		})
	}
}

func TestImportMissingFile(t *testing.T) {
	_, err := ImportProblem(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestSolutionRoundTrip(t *testing.T) {
	dir := t.TempDir()
	pPath := filepath.Join(dir, "12.json")
	if err := os.WriteFile(pPath, []byte(problemJSON), 0o600); err != nil {
		t.Fatal(err)
	}
	p, err := ImportProblem(pPath)
	if err != nil {
		t.Fatal(err)
	}

	sol := figure.Solution{Vertices: []geom.Vec2{geom.Vec(1, 1), geom.Vec(4, 5)}, FixedPoints: []int{1}}
	sPath := filepath.Join(dir, "12.solution.json")
	if err := ExportSolution(sol, sPath); err != nil {
		t.Fatalf("ExportSolution: %v", err)
	}
	got, err := ImportSolutionFor(sPath, p)
	if err != nil {
		t.Fatalf("ImportSolutionFor: %v", err)
	}
	if diff := cmp.Diff(sol, *got); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}

	short := figure.Solution{Vertices: []geom.Vec2{geom.Vec(1, 1)}}
	if err := ExportSolution(short, sPath); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportSolutionFor(sPath, p); !errors.Is(err, errors.ErrCodeInvalidSolution) {
		t.Errorf("err = %v, want INVALID_SOLUTION", err)
	}
}

func TestCompactSolution(t *testing.T) {
	sol := figure.Solution{Vertices: []geom.Vec2{geom.Vec(1.4, 2.6), geom.Vec(-3, 0)}, FixedPoints: []int{0}}
	got, err := CompactSolution(sol)
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"vertices":[[1,3],[-3,0]]}`; string(got) != want {
		t.Errorf("CompactSolution = %s, want %s", got, want)
	}
}

func TestWriteSolutionOmitsEmptyFixedPoints(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSolution(figure.Solution{Vertices: []geom.Vec2{geom.Vec(1, 2)}}, &buf); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "fixedPoints") {
		t.Errorf("output contains fixedPoints:\n%s", buf.String())
	}
}

func TestProblemID(t *testing.T) {
	for in, want := range map[string]string{
		"problems/42.json": "42",
		"/tmp/x/7":         "7",
		"spiral.v2.json":   "spiral.v2",
	} {
		if got := ProblemID(in); got != want {
			t.Errorf("ProblemID(%q) = %q, want %q", in, got, want)
		}
	}
}
