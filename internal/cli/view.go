package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mhellwig/wavegrid/pkg/render/sink"
	"github.com/mhellwig/wavegrid/pkg/render/styles"
)

// viewCommand creates the view command for interactive terminal preview.
func (c *CLI) viewCommand() *cobra.Command {
	var theme string

	cmd := &cobra.Command{
		Use:   "view [document.toml]",
		Short: "Scroll through a diagram interactively",
		Long: `Scroll through a diagram interactively.

The view command opens the rendered grid in a full-screen terminal viewer.
Arrow keys scroll, r reloads the document from disk (handy while editing),
and q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := styles.ByName(theme)
			if err != nil {
				return err
			}
			m, err := c.newViewModel(args[0], th)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "color theme: light (default), dark")

	return cmd
}

// viewModel is the bubbletea model for the interactive diagram viewer.
// It scrolls a pre-rendered text grid; r re-renders from disk.
type viewModel struct {
	cli   *CLI
	path  string
	theme styles.Theme

	title   string
	lines   []string
	loadErr error

	offset int
	width  int
	height int
}

// newViewModel loads the document once up front so startup failures
// surface as plain errors instead of a broken full-screen session.
func (c *CLI) newViewModel(path string, theme styles.Theme) (viewModel, error) {
	m := viewModel{cli: c, path: path, theme: theme, height: 24}
	m = m.reload()
	if m.loadErr != nil {
		return viewModel{}, m.loadErr
	}
	return m, nil
}

// reload re-reads the document and re-renders the grid. Errors are kept
// on the model so an edit that breaks the document shows up in the
// footer instead of killing the session.
func (m viewModel) reload() viewModel {
	doc, grid, err := m.cli.buildGrid(m.path)
	if err != nil {
		m.loadErr = err
		return m
	}

	text := sink.RenderText(grid, sink.WithTermTheme(m.theme))
	m.loadErr = nil
	m.title = doc.Title
	m.lines = strings.Split(strings.TrimRight(string(text), "\n"), "\n")
	return m.clamp()
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.offset--
		case "down", "j":
			m.offset++
		case "pgup", "b":
			m.offset -= m.pageSize()
		case "pgdown", "f", " ":
			m.offset += m.pageSize()
		case "g", "home":
			m.offset = 0
		case "G", "end":
			m.offset = len(m.lines)
		case "r":
			return m.reload(), nil
		}
		return m.clamp(), nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.clamp(), nil
	}
	return m, nil
}

func (m viewModel) View() string {
	var b strings.Builder

	title := m.title
	if title == "" {
		title = m.path
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ scroll  r reload  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.pageSize()
	if end > len(m.lines) {
		end = len(m.lines)
	}
	for i := m.offset; i < end; i++ {
		line := m.lines[i]
		if m.width > 0 {
			line = lipgloss.NewStyle().MaxWidth(m.width).Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.loadErr != nil {
		b.WriteString(StyleWarning.Render(fmt.Sprintf("  reload failed: %v", m.loadErr)))
	} else {
		b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d-%d/%d]", m.offset+1, end, len(m.lines))))
	}

	return b.String()
}

// pageSize is the number of grid lines that fit between the header and
// the footer.
func (m viewModel) pageSize() int {
	size := m.height - 5
	if size < 1 {
		size = 1
	}
	return size
}

// clamp keeps the scroll offset inside the rendered grid.
func (m viewModel) clamp() viewModel {
	max := len(m.lines) - m.pageSize()
	if max < 0 {
		max = 0
	}
	if m.offset > max {
		m.offset = max
	}
	if m.offset < 0 {
		m.offset = 0
	}
	return m
}
