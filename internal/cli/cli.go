package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/holefit/pkg/buildinfo"
	"github.com/matzehuels/holefit/pkg/config"
	"github.com/matzehuels/holefit/pkg/figure"
	holeio "github.com/matzehuels/holefit/pkg/io"
	"github.com/matzehuels/holefit/pkg/observability"
	"github.com/matzehuels/holefit/pkg/session"
	"github.com/matzehuels/holefit/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "holefit"

	// skipConfig marks commands that must run without a readable config file.
	skipConfig = "holefit/skip-config"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Holefit fits rigid figures into holes",
		Long: `Holefit is a solver workbench for the "brain wall" puzzle: deform a figure
of fixed-length edges until it fits inside a polygonal hole, then minimize
the dislikes score.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/holefit/config.toml)")

	// Register all subcommands
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.solutionsCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration, attaches the logger to the command context
// and registers logging hooks.
func (c *CLI) setup(cmd *cobra.Command) error {
	if cmd.Annotations[skipConfig] == "" {
		cfg, err := config.Load(c.configPath)
		if err != nil {
			return err
		}
		c.cfg = cfg
	}

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	hooks := &logHooks{logger: c.Logger}
	observability.SetSessionHooks(hooks)
	observability.SetStoreHooks(hooks)
	return nil
}

// =============================================================================
// Factories
// =============================================================================

// newStore opens the solution store from the configured directory.
func (c *CLI) newStore() (*store.FileStore, error) {
	return store.NewFileStore(c.cfg.Store.Dir)
}

// newSession creates a session with configured defaults. Flags may override
// speed and seed.
func (c *CLI) newSession(p *figure.Problem, sol *figure.Solution, speed int, seed uint64) (*session.Session, error) {
	constants := c.cfg.Physics
	if speed <= 0 {
		speed = c.cfg.Session.Speed
	}
	if seed == 0 {
		seed = c.cfg.Session.Seed
	}
	return session.New(p, sol, session.Options{
		Seed:         seed,
		Constants:    &constants,
		Speed:        speed,
		HistoryLimit: c.cfg.Session.HistoryLimit,
	})
}

// =============================================================================
// Input Helpers
// =============================================================================

// source selects where a starting solution comes from.
type source struct {
	file   string // solution file
	stored string // stored solution name
}

// loadProblem reads a problem file and, optionally, a starting solution from
// a file or the store.
func (c *CLI) loadProblem(cmd *cobra.Command, path string, src source) (*figure.Problem, *figure.Solution, error) {
	logger := loggerFromContext(cmd.Context())

	p, err := holeio.ImportProblem(path)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("loaded problem", "path", path, "vertices", len(p.Figure.Vertices), "edges", len(p.Figure.Edges), "hole", len(p.Hole), "epsilon", p.Epsilon)

	switch {
	case src.file != "":
		sol, err := holeio.ImportSolutionFor(src.file, p)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("loaded solution", "path", src.file)
		return p, sol, nil
	case src.stored != "":
		st, err := c.newStore()
		if err != nil {
			return nil, nil, err
		}
		sol, err := st.Load(cmd.Context(), holeio.ProblemID(path), src.stored)
		if err != nil {
			return nil, nil, err
		}
		if err := sol.ValidateFor(p); err != nil {
			return nil, nil, err
		}
		return p, sol, nil
	}
	return p, nil, nil
}
