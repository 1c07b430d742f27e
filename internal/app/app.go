package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/config"
	"github.com/prepdeck/prepdeck/internal/quiz"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	"github.com/prepdeck/prepdeck/internal/screens/loading"
	"github.com/prepdeck/prepdeck/internal/source"
	"github.com/prepdeck/prepdeck/internal/ui/layout"
)

// Options carries the wired-up dependencies for the TUI.
type Options struct {
	Engine *quiz.Engine
	Loader *source.Loader
	Config config.Config
}

// Model is the root Bubble Tea model.
type Model struct {
	router *router.Router
	engine *quiz.Engine
	width  int
	height int
}

// newModel creates the root model starting on the loading screen.
func newModel(opts Options) Model {
	initial := loading.New(opts.Engine, opts.Loader, opts.Config)
	return Model{
		router: router.New(initial),
		engine: opts.Engine,
	}
}

func (m Model) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	count := 0
	if m.engine != nil {
		count = m.engine.Set().Len()
	}
	header := layout.RenderHeader(title, count, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m Model) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
