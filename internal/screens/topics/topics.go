package topics

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/config"
	"github.com/prepdeck/prepdeck/internal/quiz"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	quizscreen "github.com/prepdeck/prepdeck/internal/screens/quiz"
	"github.com/prepdeck/prepdeck/internal/ui/components"
	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

// TopicsScreen lets the user pick a practice topic.
type TopicsScreen struct {
	engine *quiz.Engine
	cfg    config.Config
	menu   components.Menu
}

var _ screen.Screen = (*TopicsScreen)(nil)

// New creates the topic picker. The first entry practices across every
// topic; mock exam pools are listed too, for focused drilling.
func New(engine *quiz.Engine, cfg config.Config) *TopicsScreen {
	set := engine.Set()

	start := func(topic string) func() tea.Cmd {
		return func() tea.Cmd {
			engine.SelectTopic(topic)
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(engine, cfg)}
			}
		}
	}

	items := []components.MenuItem{
		{
			Label:  fmt.Sprintf("All topics (%d)", set.Len()),
			Action: start(quiz.AllTopics),
		},
	}
	for _, topic := range set.Topics() {
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("%s (%d)", topic, len(set[topic])),
			Action: start(topic),
		})
	}

	return &TopicsScreen{
		engine: engine,
		cfg:    cfg,
		menu:   components.NewMenu(items),
	}
}

func (t *TopicsScreen) Init() tea.Cmd {
	return nil
}

func (t *TopicsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	t.menu, cmd = t.menu.Update(msg)
	return t, cmd
}

func (t *TopicsScreen) View(width, height int) string {
	heading := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Pick a topic to practice")

	content := heading + "\n\n" + t.menu.View()
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (t *TopicsScreen) Title() string {
	return "Topics"
}
