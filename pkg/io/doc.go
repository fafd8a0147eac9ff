// Package io reads problems and reads and writes solutions as JSON.
//
// # Problem Format
//
//	{
//	  "hole": [[45, 80], [35, 95], [5, 95], [35, 50]],
//	  "epsilon": 150000,
//	  "figure": {
//	    "vertices": [[20, 30], [20, 40], [30, 95]],
//	    "edges": [[0, 1], [1, 2]]
//	  },
//	  "bonuses": [{"bonus": "GLOBALIST", "problem": 46, "position": [62, 72]}]
//	}
//
// Epsilon is in parts per million. Bonuses are optional and carried through
// unchanged.
//
// # Solution Format
//
//	{
//	  "vertices": [[21, 28], [31, 28], [31, 87]],
//	  "fixedPoints": [0, 2]
//	}
//
// fixedPoints lists the vertices pinned in the session that produced the
// solution. It is omitted when empty.
//
// # Import
//
// Use [ImportProblem] and [ImportSolution] to read from a file path, or
// [ReadProblem] and [ReadSolution] to read from any io.Reader. Problems are
// validated after decoding; a solution is only checked against its problem by
// [ImportSolutionFor]. Errors carry a code from pkg/errors:
// INVALID_PROBLEM, INVALID_SOLUTION or FILE_NOT_FOUND.
//
// # Export
//
// Use [ExportSolution] to write a solution to a file, or [WriteSolution] to
// write to any io.Writer. [CompactSolution] produces the single-line form
// expected by the contest submission endpoint.
package io
