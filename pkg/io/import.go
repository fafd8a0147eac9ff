package io

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/holefit/pkg/errors"
	"github.com/matzehuels/holefit/pkg/figure"
)

// ReadProblem decodes a problem from r and validates it.
// ReadProblem does not close r.
func ReadProblem(r io.Reader) (*figure.Problem, error) {
	var p figure.Problem
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProblem, err, "decode problem")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// ImportProblem reads the problem file at path.
func ImportProblem(path string) (*figure.Problem, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadProblem(f)
}

// ReadSolution decodes a solution from r. It is not checked against any
// problem; see [ImportSolutionFor].
func ReadSolution(r io.Reader) (*figure.Solution, error) {
	var s figure.Solution
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSolution, err, "decode solution")
	}
	return &s, nil
}

// ImportSolution reads the solution file at path.
func ImportSolution(path string) (*figure.Solution, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSolution(f)
}

// ImportSolutionFor reads the solution file at path and checks that it fits p.
func ImportSolutionFor(path string, p *figure.Problem) (*figure.Solution, error) {
	s, err := ImportSolution(path)
	if err != nil {
		return nil, err
	}
	if err := s.ValidateFor(p); err != nil {
		return nil, err
	}
	return s, nil
}

// ProblemID derives a problem identifier from a file path: the base name
// without extension, so "problems/42.json" is "42".
func ProblemID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	return f, nil
}
