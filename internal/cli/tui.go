package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/holefit/pkg/errors"
	"github.com/matzehuels/holefit/pkg/store"
)

var errNoSelection = errors.New(errors.ErrCodeInvalidInput, "no starting placement selected")

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// SolutionListModel - Interactive stored solution selection
// =============================================================================

// SolutionListModel is the bubbletea model for picking a stored solution.
// The first row stands for the figure's original placement.
type SolutionListModel struct {
	Problem  string
	Entries  []store.Entry
	Cursor   int
	Selected *store.Entry
	Done     bool // a row was chosen, Selected is nil for the original placement
	Height   int
	Offset   int
}

// NewSolutionListModel creates a new solution list model.
func NewSolutionListModel(problem string, entries []store.Entry) SolutionListModel {
	return SolutionListModel{
		Problem: problem,
		Entries: entries,
		Height:  15,
	}
}

func (m SolutionListModel) Init() tea.Cmd {
	return nil
}

func (m SolutionListModel) rows() int { return len(m.Entries) + 1 }

func (m SolutionListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < m.rows()-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Done = true
			if m.Cursor > 0 {
				e := m.Entries[m.Cursor-1]
				m.Selected = &e
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m SolutionListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Starting Placement"))
	b.WriteString("  ")
	b.WriteString(listDimStyle.Render(m.Problem))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, m.rows())

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		if i == 0 {
			rows = append(rows, []string{cursor, "original", "—", "—"})
			continue
		}
		e := m.Entries[i-1]
		rows = append(rows, []string{cursor, e.Name, formatSize(e.Size), formatRelativeTime(e.ModTime)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Solution", "Size", "Saved").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			isCurrent := m.Offset+row == m.Cursor
			switch {
			case isCurrent:
				return listSelectedStyle
			case col >= 2:
				return listDimStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, m.rows())))

	return b.String()
}

// pickStored lets the user choose a stored solution for problem. It returns
// the empty name for the original placement or when nothing is stored.
func (c *CLI) pickStored(cmd *cobra.Command, problem string) (string, error) {
	st, err := c.newStore()
	if err != nil {
		return "", err
	}
	entries, err := st.List(cmd.Context(), problem)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		printDetail("No stored solutions for %s", problem)
		return "", nil
	}

	final, err := tea.NewProgram(NewSolutionListModel(problem, entries)).Run()
	if err != nil {
		return "", err
	}
	fm, ok := final.(SolutionListModel)
	if !ok || !fm.Done {
		return "", errNoSelection
	}
	if fm.Selected == nil {
		return "", nil
	}
	return fm.Selected.Name, nil
}

// =============================================================================
// Helpers
// =============================================================================

func formatRelativeTime(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}

func formatSize(n int64) string {
	switch {
	case n < 1<<10:
		return fmt.Sprintf("%d B", n)
	case n < 1<<20:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	}
}
