package quiz

import "github.com/prepdeck/prepdeck/internal/question"

// Engine owns the loaded question set and the single current session. The
// hosting application holds exactly one Engine; there is no ambient session
// state anywhere else. Starting a new session of any kind discards the old
// one — callers must cancel any pending countdown before doing so.
type Engine struct {
	set     question.Set
	session *Session
}

// NewEngine creates an Engine over a loaded question set.
func NewEngine(set question.Set) *Engine {
	if set == nil {
		set = question.Set{}
	}
	return &Engine{set: set}
}

// Set returns the loaded question set.
func (e *Engine) Set() question.Set {
	return e.set
}

// Replace swaps in a freshly loaded question set and drops the current
// session; a reload invalidates anything drawn from the old set.
func (e *Engine) Replace(set question.Set) {
	e.set = set
	e.session = nil
}

// Session returns the current session, or nil when none is active.
func (e *Engine) Session() *Session {
	return e.session
}

// SelectTopic starts a practice session for the named topic ("all" for
// every topic). An unknown topic yields an immediately complete session.
func (e *Engine) SelectTopic(name string) *Session {
	e.session = NewPracticeSession(e.set, name)
	return e.session
}

// StartTest starts a fixed-size timed test drawn from all non-mock topics.
func (e *Engine) StartTest(size int) (*Session, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	e.session = NewTestSession(e.set, size)
	return e.session, nil
}

// StartMockExam starts an exam simulation drawn from the reserved mock
// topics. The current session is kept when the mock pool is empty.
func (e *Engine) StartMockExam(size int) (*Session, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	s, err := NewMockSession(e.set, size)
	if err != nil {
		return nil, err
	}
	e.session = s
	return s, nil
}

// SubmitAnswer records an answer on the current session.
func (e *Engine) SubmitAnswer(selected []int) (Outcome, bool) {
	if e.session == nil {
		return Outcome{}, false
	}
	return e.session.Answer(selected)
}

// Advance moves the current session to its next question.
func (e *Engine) Advance() bool {
	if e.session == nil {
		return false
	}
	return e.session.Advance()
}
