package setup

import (
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/config"
	"github.com/prepdeck/prepdeck/internal/quiz"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	quizscreen "github.com/prepdeck/prepdeck/internal/screens/quiz"
	"github.com/prepdeck/prepdeck/internal/ui/components"
	"github.com/prepdeck/prepdeck/internal/ui/layout"
	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

// SetupScreen asks how many questions a timed test or mock exam should
// have, then starts the session.
type SetupScreen struct {
	engine *quiz.Engine
	cfg    config.Config
	kind   quiz.Kind
	input  components.TextInput
	errMsg string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a setup screen for the given session kind.
func New(engine *quiz.Engine, cfg config.Config, kind quiz.Kind) *SetupScreen {
	return &SetupScreen{
		engine: engine,
		cfg:    cfg,
		kind:   kind,
		input:  components.NewTextInput(strconv.Itoa(config.DefaultTestSize), true, 3),
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SetupScreen) Title() string {
	switch s.kind {
	case quiz.KindMockExam:
		return "Mock Exam"
	default:
		return "Timed Test"
	}
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return s.start()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SetupScreen) start() (screen.Screen, tea.Cmd) {
	size := config.DefaultTestSize
	if v := s.input.Value(); v != "" {
		n, err := s.input.NumericValue()
		if err != nil || n <= 0 {
			s.errMsg = "Enter a positive number of questions."
			s.input.Submit(false)
			return s, nil
		}
		size = n
	}

	var err error
	if s.kind == quiz.KindMockExam {
		_, err = s.engine.StartMockExam(size)
	} else {
		_, err = s.engine.StartTest(size)
	}
	if err != nil {
		s.errMsg = err.Error()
		s.input.Submit(false)
		return s, nil
	}

	s.input.Submit(true)
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: quizscreen.New(s.engine, s.cfg)}
	}
}

func (s *SetupScreen) View(width, height int) string {
	heading := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("How many questions? (default %d)", config.DefaultTestSize))

	content := heading + "\n\n" + s.input.View()

	if s.errMsg != "" {
		content += "\n\n" + lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(s.errMsg)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
