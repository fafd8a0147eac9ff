package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/holefit/pkg/figure"
	"github.com/matzehuels/holefit/pkg/geom"
)

// WriteSolution encodes s as indented JSON and writes it to w.
func WriteSolution(s figure.Solution, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportSolution writes s to a JSON file at path.
// This is a convenience wrapper around [WriteSolution] for file-based output.
func ExportSolution(s figure.Solution, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteSolution(s, f)
}

// CompactSolution returns the submission form of s: integer coordinates,
// no fixed points, no whitespace.
func CompactSolution(s figure.Solution) ([]byte, error) {
	out := figure.Solution{Vertices: make([]geom.Vec2, len(s.Vertices))}
	for i, v := range s.Vertices {
		out.Vertices[i] = v.Round(0)
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(out); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}
