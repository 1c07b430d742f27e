package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/config"
	"github.com/prepdeck/prepdeck/internal/quiz"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	"github.com/prepdeck/prepdeck/internal/screens/setup"
	"github.com/prepdeck/prepdeck/internal/screens/topics"
	"github.com/prepdeck/prepdeck/internal/ui/components"
	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

// HomeScreen is the mode picker shown after questions load.
type HomeScreen struct {
	engine *quiz.Engine
	cfg    config.Config
	notice string
	menu   components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. notice carries a non-fatal data source
// warning (stale cache, local fallback) to surface to the user.
func New(engine *quiz.Engine, cfg config.Config, notice string) *HomeScreen {
	hasMock := false
	for _, topic := range engine.Set().Topics() {
		if quiz.IsMockTopic(topic) {
			hasMock = true
			break
		}
	}

	items := []components.MenuItem{
		{Label: "PRACTICE BY TOPIC", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: topics.New(engine, cfg)}
			}
		}},
		{Label: "TIMED TEST", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(engine, cfg, quiz.KindTimedTest)}
			}
		}},
		{Label: "MOCK EXAM", Disabled: !hasMock, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(engine, cfg, quiz.KindMockExam)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		engine: engine,
		cfg:    cfg,
		notice: notice,
		menu:   components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("P R E P D E C K")
	sections = append(sections, title)

	set := h.engine.Set()
	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d questions across %d topics", set.Len(), len(set.Topics())))
	sections = append(sections, subtitle, "")

	if h.notice != "" {
		banner := theme.NoticeBanner.
			Width(min(width-8, 64)).
			Render("⚠ " + h.notice)
		sections = append(sections, banner, "")
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
