// Package pager shows rendered output in a scrollable full-screen view.
package pager

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// Run pages content on the terminal behind in/out until the user quits.
func Run(title, content string, in io.Reader, out io.Writer) error {
	program := tea.NewProgram(New(title, content), tea.WithAltScreen(), tea.WithInput(in), tea.WithOutput(out))
	_, err := program.Run()
	return err
}

// Model is the bubbletea model for the pager.
type Model struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

// New creates a pager model. The viewport is sized on the first WindowSizeMsg.
func New(title, content string) Model {
	return Model{title: title, content: content}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		chrome := lipgloss.Height(m.header()) + lipgloss.Height(m.footer())
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chrome)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chrome
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	return strings.Join([]string{m.header(), m.viewport.View(), m.footer()}, "\n")
}

func (m Model) header() string {
	return titleStyle.Render(m.title)
}

func (m Model) footer() string {
	percent := 100.0
	if m.ready {
		percent = m.viewport.ScrollPercent() * 100
	}
	return footerStyle.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll · q quit", percent))
}
