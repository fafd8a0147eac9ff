package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/holefit/pkg/figure"
	"github.com/matzehuels/holefit/pkg/geom"
	holeio "github.com/matzehuels/holefit/pkg/io"
	"github.com/matzehuels/holefit/pkg/physics"
	"github.com/matzehuels/holefit/pkg/session"
)

const (
	rotateStep = math.Pi / 12
	zoomStep   = 1.25
)

// playCommand creates the interactive player command.
func (c *CLI) playCommand() *cobra.Command {
	var src source
	var speed int
	var seed uint64
	var pick bool

	cmd := &cobra.Command{
		Use:   "play [problem]",
		Short: "Solve a problem interactively in the terminal",
		Long: `Play opens a live view of the hole and the figure. Pick a force mode, let the
simulation run and edit the figure by hand. Press ? for the key bindings.

Press w to save the current placement to the solution store.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if pick {
				picked, err := c.pickStored(cmd, holeio.ProblemID(path))
				if err != nil {
					return err
				}
				src.stored = picked
			}

			p, sol, err := c.loadProblem(cmd, path, src)
			if err != nil {
				return err
			}
			s, err := c.newSession(p, sol, speed, seed)
			if err != nil {
				return err
			}
			st, err := c.newStore()
			if err != nil {
				return err
			}
			problem := holeio.ProblemID(path)

			m := NewPlayModel(s, PlayConfig{
				FPS:            c.cfg.Session.FPS,
				SnapRadius:     c.cfg.Session.SnapRadius,
				ShakeAmplitude: c.cfg.Session.ShakeAmplitude,
				Save: func(sol figure.Solution) (string, error) {
					return st.Save(cmd.Context(), problem, "", sol)
				},
			})
			final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			if pm, ok := final.(PlayModel); ok && pm.LastSaved != "" {
				printSuccess("Last saved as %s", StyleHighlight.Render(pm.LastSaved))
				printFile(st.SolutionPath(problem, pm.LastSaved))
			}
			printStats(s.Stats())
			return nil
		},
	}

	cmd.Flags().StringVarP(&src.file, "solution", "s", "", "start from a solution file")
	cmd.Flags().StringVar(&src.stored, "stored", "", "start from a stored solution")
	cmd.Flags().IntVar(&speed, "speed", 0, "sub-steps per frame (default from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (default from config)")
	cmd.Flags().BoolVarP(&pick, "pick", "p", false, "choose a stored solution to start from")
	cmd.MarkFlagsMutuallyExclusive("solution", "stored", "pick")

	return cmd
}

// =============================================================================
// PlayModel - Interactive simulation
// =============================================================================

// PlayConfig holds the player settings that do not live in the session.
type PlayConfig struct {
	FPS            int
	SnapRadius     float64
	ShakeAmplitude float64
	// Save persists a solution and returns the name it was stored under.
	Save func(figure.Solution) (string, error)
}

// tickMsg advances the simulation by one frame.
type tickMsg time.Time

// PlayModel is the bubbletea model for the interactive player.
type PlayModel struct {
	Session   *session.Session
	Config    PlayConfig
	Selected  int // selected vertex, -1 for none
	Status    string
	LastSaved string
	ShowHelp  bool

	width, height int
}

// NewPlayModel creates a player for s.
func NewPlayModel(s *session.Session, cfg PlayConfig) PlayModel {
	if cfg.FPS <= 0 {
		cfg.FPS = 60
	}
	return PlayModel{
		Session:  s,
		Config:   cfg,
		Selected: -1,
		width:    80,
		height:   24,
	}
}

func (m PlayModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.Config.FPS), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m PlayModel) Init() tea.Cmd {
	return m.tick()
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.Session.Tick()
		return m, m.tick()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

// handleKey applies one key binding.
func (m PlayModel) handleKey(key string) (tea.Model, tea.Cmd) {
	s := m.Session
	m.Status = ""

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(physics.ModeKinds()) {
		s.SetMode(physics.ModeKinds()[n-1])
		m.Status = "mode " + s.Mode().String()
		return m, nil
	}

	switch key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "?":
		m.ShowHelp = !m.ShowHelp
	case " ", "space":
		s.TogglePlaying()
	case "r":
		s.Reset()
		m.Status = "reset"
	case "u":
		if s.Undo() {
			m.Status = "undone"
		} else {
			m.Status = "nothing to undo"
		}
	case "+", "=":
		s.SetSpeed(s.Speed() + 1)
	case "-":
		s.SetSpeed(s.Speed() - 1)

	// Whole-figure edits
	case "up":
		s.MoveAll(0, -1)
	case "down":
		s.MoveAll(0, 1)
	case "left":
		s.MoveAll(-1, 0)
	case "right":
		s.MoveAll(1, 0)
	case "[":
		s.Rotate(-rotateStep)
	case "]":
		s.Rotate(rotateStep)
	case "{":
		s.Rotate(-math.Pi / 2)
	case "}":
		s.Rotate(math.Pi / 2)
	case "v":
		s.FlipHorizontal()
	case "V":
		s.FlipVertical()
	case "i":
		s.SnapToInteger()
		m.Status = "rounded to integers"
	case "h":
		m.Status = fmt.Sprintf("snapped %d vertices", len(s.SnapToHoleVertices(m.Config.SnapRadius)))
	case "f":
		m.Status = fmt.Sprintf("fixed %d edges", s.FixEdges())
	case "x":
		s.Shake(m.Config.ShakeAmplitude)
	case "R":
		s.RandomizeWithinBounds()
	case "U":
		s.UnfreezeAll()
		m.Status = "unfroze all"

	// Selected vertex
	case "tab":
		m.Selected = (m.Selected + 1) % len(s.Vertices())
	case "shift+tab":
		n := len(s.Vertices())
		m.Selected = (m.Selected - 1 + n) % n
	case "backspace":
		m.Selected = -1
	case "F":
		if m.Selected >= 0 {
			s.ToggleFrozen(m.Selected)
		}
	case "e":
		if m.Selected >= 0 {
			s.PowerEdit(m.Selected)
		}
	case "alt+up", "K":
		m.moveSelected(geom.Vec(0, -1))
	case "alt+down", "J":
		m.moveSelected(geom.Vec(0, 1))
	case "alt+left", "H":
		m.moveSelected(geom.Vec(-1, 0))
	case "alt+right", "L":
		m.moveSelected(geom.Vec(1, 0))

	// View
	case "z":
		m.zoom(zoomStep)
	case "Z":
		m.zoom(1 / zoomStep)
	case "ctrl+up":
		m.pan(geom.Vec(0, -1))
	case "ctrl+down":
		m.pan(geom.Vec(0, 1))
	case "ctrl+left":
		m.pan(geom.Vec(-1, 0))
	case "ctrl+right":
		m.pan(geom.Vec(1, 0))
	case "0":
		s.SetView(session.DefaultView)

	case "w":
		m.save()
	}
	return m, nil
}

func (m *PlayModel) moveSelected(d geom.Vec2) {
	switch {
	case m.Selected < 0:
	case m.Session.IsFrozen(m.Selected):
		m.Status = fmt.Sprintf("vertex %d is frozen", m.Selected)
	default:
		m.Session.MovePoint(m.Selected, d)
	}
}

func (m *PlayModel) zoom(f float64) {
	v := m.Session.View()
	v.Zoom *= f
	m.Session.SetView(v)
}

// pan shifts the view by a tenth of the hole's extent.
func (m *PlayModel) pan(dir geom.Vec2) {
	b := geom.Bounds(m.Session.Problem().Hole)
	step := math.Max(b.Width(), b.Height()) / 10
	v := m.Session.View()
	v.Pan = v.Pan.Add(dir.Scale(step / v.Zoom))
	m.Session.SetView(v)
}

func (m *PlayModel) save() {
	if m.Config.Save == nil {
		m.Status = "saving is disabled"
		return
	}
	name, err := m.Config.Save(m.Session.Solution())
	if err != nil {
		m.Status = "save failed: " + err.Error()
		return
	}
	m.LastSaved = name
	m.Status = "saved as " + name
}

func (m PlayModel) View() string {
	st := m.Session.Stats()

	status := m.statusTable(st)
	canvasW := max(m.width-lipgloss.Width(status)-3, 20)
	canvasH := max(m.height-3, 10)

	var b strings.Builder
	b.WriteString(StyleTitle.Render("holefit"))
	b.WriteString("  ")
	b.WriteString(listDimStyle.Render("space play  1-7 mode  ? help  q quit"))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		drawSession(m.Session, canvasW, canvasH, m.Selected),
		"  ",
		status,
	))
	b.WriteString("\n")
	if m.Status != "" {
		b.WriteString(StyleHighlight.Render(m.Status))
	}
	return b.String()
}

// statusTable renders the session summary, or the key bindings when help is
// shown.
func (m PlayModel) statusTable(st session.Stats) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := playHelp
	if !m.ShowHelp {
		verdict := StyleWarning.Render("no")
		if st.Submittable {
			verdict = StyleSuccess.Render("yes")
		}
		selected := "—"
		if m.Selected >= 0 {
			selected = strconv.Itoa(m.Selected)
		}
		rows = [][]string{
			{"State", st.State.String()},
			{"Mode", st.Mode},
			{"Speed", strconv.Itoa(st.Speed)},
			{"Steps", strconv.Itoa(st.Steps)},
			{"Selected", selected},
			{"Frozen", fmt.Sprintf("%d/%d", st.Frozen, st.Vertices)},
			{"Stretched", strconv.Itoa(len(st.Overstretched))},
			{"Shrunk", strconv.Itoa(len(st.Overshrunk))},
			{"Crossing", strconv.Itoa(len(st.Crossings))},
			{"Outside", strconv.Itoa(len(st.Outside))},
			{"Dislikes", formatDislikes(st.Dislikes)},
			{"Valid", verdict},
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return headerStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		}).
		Render()
}

// playHelp lists the key bindings shown by "?".
var playHelp = [][]string{
	{"space", "play / pause"},
	{"1-7", "none inflate stretch gravity hole-gravity center radial"},
	{"+ -", "speed"},
	{"arrows", "move figure"},
	{"[ ] { }", "rotate 15° / 90°"},
	{"v V", "flip"},
	{"i h f", "snap int, snap hole, fix edges"},
	{"x R", "shake, randomize"},
	{"tab", "select vertex"},
	{"HJKL", "move selected"},
	{"F e", "freeze, power edit"},
	{"U", "unfreeze all"},
	{"z Z 0", "zoom, reset view"},
	{"ctrl+arrows", "pan"},
	{"u r", "undo, reset"},
	{"w", "save"},
}
