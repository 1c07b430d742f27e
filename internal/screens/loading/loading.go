package loading

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/config"
	"github.com/prepdeck/prepdeck/internal/quiz"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	"github.com/prepdeck/prepdeck/internal/screens/home"
	"github.com/prepdeck/prepdeck/internal/source"
	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

const spinInterval = 120 * time.Millisecond

var spinFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type spinTickMsg time.Time

// loadDoneMsg is sent when the question set has been resolved.
type loadDoneMsg struct {
	Result source.Result
	Err    error
}

// LoadingScreen resolves the question set asynchronously and then hands
// over to the home screen.
type LoadingScreen struct {
	engine *quiz.Engine
	loader *source.Loader
	cfg    config.Config

	frame  int
	errMsg string
}

var _ screen.Screen = (*LoadingScreen)(nil)

// New creates a LoadingScreen.
func New(engine *quiz.Engine, loader *source.Loader, cfg config.Config) *LoadingScreen {
	return &LoadingScreen{
		engine: engine,
		loader: loader,
		cfg:    cfg,
	}
}

func (l *LoadingScreen) Title() string {
	return ""
}

func (l *LoadingScreen) Init() tea.Cmd {
	return tea.Batch(l.load(), spinTick())
}

func (l *LoadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinTickMsg:
		if l.errMsg != "" {
			return l, nil
		}
		l.frame++
		return l, spinTick()

	case loadDoneMsg:
		if msg.Err != nil {
			l.errMsg = msg.Err.Error()
			return l, nil
		}
		l.engine.Replace(msg.Result.Set)
		homeScreen := home.New(l.engine, l.cfg, msg.Result.Notice)
		return l, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: homeScreen}
		}

	case tea.KeyPressMsg:
		if l.errMsg != "" {
			return l, tea.Quit
		}
		return l, nil
	}

	return l, nil
}

func (l *LoadingScreen) View(width, height int) string {
	if l.errMsg != "" {
		content := lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("Couldn't load any questions.\n\n"+l.errMsg) +
			"\n\n" +
			lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Italic(true).
				Render("press any key to exit")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	spinner := spinFrames[l.frame%len(spinFrames)]
	content := lipgloss.NewStyle().Foreground(theme.Primary).Render(spinner) +
		"  " +
		lipgloss.NewStyle().Foreground(theme.Text).Render("Loading questions...")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// load resolves the question set off the UI loop.
func (l *LoadingScreen) load() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		res, err := l.loader.Load(ctx)
		return loadDoneMsg{Result: res, Err: err}
	}
}

func spinTick() tea.Cmd {
	return tea.Tick(spinInterval, func(t time.Time) tea.Msg {
		return spinTickMsg(t)
	})
}
