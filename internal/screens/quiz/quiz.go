package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/prepdeck/prepdeck/internal/config"
	qz "github.com/prepdeck/prepdeck/internal/quiz"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	"github.com/prepdeck/prepdeck/internal/screens/summary"
	"github.com/prepdeck/prepdeck/internal/ui/components"
	"github.com/prepdeck/prepdeck/internal/ui/layout"
)

// QuizScreen runs the active session: one question at a time with a
// per-question countdown, answer feedback, and advancement.
type QuizScreen struct {
	engine *qz.Engine
	cfg    config.Config

	choices   components.ChoiceList
	remaining time.Duration

	outcome         *qz.Outcome
	showingFeedback bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen over the engine's current session.
func New(engine *qz.Engine, cfg config.Config) *QuizScreen {
	s := &QuizScreen{
		engine: engine,
		cfg:    cfg,
	}
	s.setupQuestion()
	return s
}

// setupQuestion resets per-question state for the session's current
// question. No-op when the session is already done.
func (s *QuizScreen) setupQuestion() {
	sess := s.engine.Session()
	if sess == nil {
		return
	}
	q := sess.Question()
	if q == nil {
		return
	}
	s.choices = components.NewChoiceList(q.Options, q.IsMulti)
	s.remaining = s.cfg.TimeLimit
	s.outcome = nil
	s.showingFeedback = false
}

func (s *QuizScreen) Init() tea.Cmd {
	sess := s.engine.Session()
	if sess == nil || sess.Done() {
		return s.finish()
	}
	return s.tickCmd()
}

func (s *QuizScreen) Title() string {
	sess := s.engine.Session()
	if sess == nil {
		return "Quiz"
	}
	switch sess.Kind {
	case qz.KindTimedTest:
		return "Timed Test"
	case qz.KindMockExam:
		return "Mock Exam"
	default:
		if sess.Topic != "" && sess.Topic != qz.AllTopics {
			return "Practice: " + sess.Topic
		}
		return "Practice"
	}
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	sess := s.engine.Session()
	if sess != nil {
		if q := sess.Question(); q != nil && q.IsMulti {
			return []layout.KeyHint{
				{Key: "Space", Description: "Toggle"},
				{Key: "Enter", Description: "Submit"},
				{Key: "Esc", Description: "Abandon"},
			}
		}
	}
	return []layout.KeyHint{
		{Key: "1-9", Description: "Answer"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick(msg)

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	sess := s.engine.Session()
	if sess == nil || msg.SessionID != sess.ID || msg.Index != sess.Current {
		// Stale tick from a question that is no longer open.
		return s, nil
	}
	if s.showingFeedback || sess.Answered() {
		return s, nil
	}

	s.remaining -= time.Second
	if s.remaining > 0 {
		return s, s.tickCmd()
	}

	out, ok := sess.Timeout()
	if !ok {
		return s, nil
	}
	s.showFeedback(out)
	return s, nil
}

func (s *QuizScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	sess := s.engine.Session()
	if sess == nil {
		return s, s.finish()
	}

	if !s.engine.Advance() {
		return s, s.finish()
	}

	s.setupQuestion()
	return s, s.tickCmd()
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.showingFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	sess := s.engine.Session()
	if sess == nil {
		return s, nil
	}
	q := sess.Question()
	if q == nil {
		return s, nil
	}

	key := msg.String()
	switch key {
	case "enter":
		return s.submit()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		i := int(key[0] - '1')
		if i >= len(q.Options) {
			return s, nil
		}
		if q.IsMulti {
			s.choices.Toggle(i)
			return s, nil
		}
		s.choices.MoveTo(i)
		return s.submit()
	}

	var cmd tea.Cmd
	s.choices, cmd = s.choices.Update(msg)
	return s, cmd
}

func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	sess := s.engine.Session()
	if sess == nil || sess.Answered() {
		return s, nil
	}
	q := sess.Question()
	if q == nil {
		return s, nil
	}

	selected := s.choices.Selection()
	if q.IsMulti && len(selected) == 0 {
		return s, nil
	}

	out, ok := s.engine.SubmitAnswer(selected)
	if !ok {
		return s, nil
	}
	s.showFeedback(out)
	return s, nil
}

func (s *QuizScreen) showFeedback(out qz.Outcome) {
	s.outcome = &out
	s.showingFeedback = true
	s.choices.Reveal(out.Selected, out.CorrectIndices)
}

// finish replaces this screen with the summary so Esc from there lands on
// home rather than back inside a completed session.
func (s *QuizScreen) finish() tea.Cmd {
	sess := s.engine.Session()
	if sess == nil {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	sum := qz.Summarize(sess)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

// tickCmd schedules the next countdown tick, bound to the current question.
func (s *QuizScreen) tickCmd() tea.Cmd {
	sess := s.engine.Session()
	if sess == nil || sess.Done() {
		return nil
	}
	id := sess.ID
	index := sess.Current
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{SessionID: id, Index: index}
	})
}
