package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/holefit/pkg/errors"
	holeio "github.com/matzehuels/holefit/pkg/io"
	"github.com/matzehuels/holefit/pkg/physics"
	"github.com/matzehuels/holefit/pkg/session"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	src      source
	mode     string  // simulation mode for the main phase
	frames   int     // ticks in the main phase
	relax    int     // ticks with only edge tension afterwards
	speed    int     // sub-steps per tick
	seed     uint64  // random seed, 0 uses the config seed
	snapHole float64 // snap radius to hole vertices before simulating, 0 disables
	snapInt  bool    // round coordinates after simulating
	fixEdges bool    // nudge out-of-tolerance edges after rounding
	output   string  // solution file, or directory when solving several problems
	save     string  // store name to save under
	jobs     int     // concurrent sessions when solving several problems

	kind physics.ModeKind
}

// progressEvery is how many ticks pass between spinner updates.
const progressEvery = 50

// solveCommand creates the headless solve command.
//
// A run has up to four phases, in order: snap to hole vertices, simulate in
// the chosen mode, relax with tension only, then round and fix edges.
func (c *CLI) solveCommand() *cobra.Command {
	opts := solveOpts{
		mode:   physics.ModeInflate.String(),
		frames: 600,
		relax:  300,
	}

	cmd := &cobra.Command{
		Use:   "solve [problem...]",
		Short: "Run the force simulation without the player",
		Long: fmt.Sprintf(`Solve runs the force simulation headless and writes the final placement.

With several problems each one gets its own session and they run
concurrently; --output then names a directory.

Modes: %s`, strings.Join(modeNames(), ", ")),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := physics.ParseModeKind(opts.mode)
			if err != nil {
				return err
			}
			opts.kind = kind
			if len(args) == 1 {
				return c.runSolve(cmd, args[0], &opts)
			}
			if opts.src.file != "" {
				return errors.New(errors.ErrCodeInvalidInput, "--solution applies to a single problem")
			}
			return c.runSolveBatch(cmd, args, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.src.file, "solution", "s", "", "start from a solution file")
	cmd.Flags().StringVar(&opts.src.stored, "stored", "", "start from a stored solution")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", opts.mode, "simulation mode")
	cmd.Flags().IntVarP(&opts.frames, "frames", "n", opts.frames, "ticks to simulate")
	cmd.Flags().IntVar(&opts.relax, "relax", opts.relax, "ticks of tension-only relaxation afterwards")
	cmd.Flags().IntVar(&opts.speed, "speed", 0, "sub-steps per tick (default from config)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (default from config)")
	cmd.Flags().Float64Var(&opts.snapHole, "snap-hole", 0, "snap vertices within this radius onto hole vertices first")
	cmd.Flags().BoolVar(&opts.snapInt, "snap-int", true, "round coordinates to integers at the end")
	cmd.Flags().BoolVar(&opts.fixEdges, "fix-edges", true, "nudge edges back into tolerance at the end")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the solution to this file (directory for several problems)")
	cmd.Flags().StringVar(&opts.save, "save", "", "save the solution in the store under this name")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "concurrent sessions (default: GOMAXPROCS)")
	cmd.MarkFlagsMutuallyExclusive("solution", "stored")

	return cmd
}

// modeNames lists every selectable mode name.
func modeNames() []string {
	kinds := physics.ModeKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

// =============================================================================
// Single problem
// =============================================================================

func (c *CLI) runSolve(cmd *cobra.Command, path string, opts *solveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	s, err := c.prepareSolve(cmd, path, opts)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, "Simulating...")
	spinner.Start()
	err = simulate(ctx, s, opts, spinner.SetMessage)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Simulated %d steps", s.Stats().Steps))
	finishSolve(ctx, s, opts)

	st := s.Stats()
	printStats(st)
	printReport(st)
	printNewline()

	written, err := c.writeSolution(ctx, s, path, opts.output, opts)
	if err != nil {
		return err
	}
	printSuccess("Solution written")
	for _, f := range written.files {
		printFile(f)
	}
	if written.name != "" {
		printNextStep("Continue in the player", fmt.Sprintf("holefit play %s --stored %s", path, written.name))
	}
	return nil
}

// prepareSolve loads a problem, opens a session for it and applies the
// snap-to-hole phase.
func (c *CLI) prepareSolve(cmd *cobra.Command, path string, opts *solveOpts) (*session.Session, error) {
	logger := loggerFromContext(cmd.Context())

	p, sol, err := c.loadProblem(cmd, path, opts.src)
	if err != nil {
		return nil, err
	}
	s, err := c.newSession(p, sol, opts.speed, opts.seed)
	if err != nil {
		return nil, err
	}
	logger.Infof("Solving %s: %d vertices, %d edges, hole of %d", path, len(p.Figure.Vertices), len(p.Figure.Edges), len(p.Hole))

	if opts.snapHole > 0 {
		snapped := s.SnapToHoleVertices(opts.snapHole)
		logger.Infof("Snapped %d vertices to the hole", len(snapped))
	}
	return s, nil
}

// simulate runs the mode phase, then the relax phase. It stops early when
// ctx is cancelled. report, when non-nil, receives progress messages.
func simulate(ctx context.Context, s *session.Session, opts *solveOpts, report func(string)) error {
	phases := []struct {
		kind   physics.ModeKind
		frames int
	}{
		{opts.kind, opts.frames},
		{physics.ModeNone, opts.relax},
	}
	for _, ph := range phases {
		if ph.frames <= 0 {
			continue
		}
		if s.Mode() != ph.kind {
			s.SetMode(ph.kind)
		}
		s.Play()
		for i := range ph.frames {
			if err := ctx.Err(); err != nil {
				return err
			}
			if report != nil && i%progressEvery == 0 {
				report(fmt.Sprintf("Simulating %s %d/%d...", ph.kind, i, ph.frames))
			}
			s.Tick()
		}
	}
	s.Stop()
	return nil
}

// finishSolve applies the rounding phase.
func finishSolve(ctx context.Context, s *session.Session, opts *solveOpts) {
	if opts.snapInt {
		s.SnapToInteger()
	}
	if opts.fixEdges {
		if n := s.FixEdges(); n > 0 {
			loggerFromContext(ctx).Infof("Fixed %d edges", n)
		}
	}
}

// writtenFiles lists the files a solution went to and its store name, empty
// when it was not stored.
type writtenFiles struct {
	files []string
	name  string
}

// writeSolution writes the session's placement to output and, when asked or
// when there is no output file, to the store.
func (c *CLI) writeSolution(ctx context.Context, s *session.Session, path, output string, opts *solveOpts) (writtenFiles, error) {
	var out writtenFiles
	sol := s.Solution()
	problem := holeio.ProblemID(path)

	if output != "" {
		if err := holeio.ExportSolution(sol, output); err != nil {
			return out, err
		}
		out.files = append(out.files, output)
	}

	if opts.save != "" || output == "" {
		st, err := c.newStore()
		if err != nil {
			return out, err
		}
		name, err := st.Save(ctx, problem, opts.save, sol)
		if err != nil {
			return out, err
		}
		out.name = name
		out.files = append(out.files, st.SolutionPath(problem, name))
	}
	return out, nil
}

// =============================================================================
// Several problems
// =============================================================================

// batchResult is the outcome of one problem in a batch.
type batchResult struct {
	path  string
	stats session.Stats
	files []string
}

func (c *CLI) runSolveBatch(cmd *cobra.Command, paths []string, opts *solveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	jobs := opts.jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if opts.output != "" {
		if err := os.MkdirAll(opts.output, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Solving %d problems...", len(paths)))
	spinner.Start()

	results := make([]batchResult, len(paths))
	var solved atomic.Int32
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			s, err := c.prepareSolve(cmd, path, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if err := simulate(gctx, s, opts, nil); err != nil {
				return err
			}
			finishSolve(gctx, s, opts)

			output := ""
			if opts.output != "" {
				output = filepath.Join(opts.output, holeio.ProblemID(path)+".json")
			}
			written, err := c.writeSolution(gctx, s, path, output, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = batchResult{path: path, stats: s.Stats(), files: written.files}
			spinner.SetMessage(fmt.Sprintf("Solved %d/%d problems...", solved.Add(1), len(paths)))
			return nil
		})
	}
	err := g.Wait()
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Solved %d problems", len(paths)))

	printBatch(results)
	return nil
}

// printBatch renders one row per solved problem.
func printBatch(results []batchResult) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	valid := 0
	rows := make([][]string, len(results))
	for i, r := range results {
		verdict := "no"
		if r.stats.Submittable {
			verdict = "yes"
			valid++
		}
		file := "—"
		if len(r.files) > 0 {
			file = r.files[len(r.files)-1]
		}
		rows[i] = []string{holeio.ProblemID(r.path), formatDislikes(r.stats.Dislikes), verdict, file}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Problem", "Dislikes", "Valid", "Solution").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 2 && results[row].stats.Submittable:
				return StyleSuccess
			case col == 2:
				return StyleWarning
			case col == 3:
				return StyleDim
			}
			return StyleValue
		})

	fmt.Println(t.Render())
	printInfo("%d of %d submittable", valid, len(results))
}
