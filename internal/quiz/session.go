package quiz

import (
	"github.com/google/uuid"

	"github.com/prepdeck/prepdeck/internal/question"
)

// Kind identifies what kind of session is running.
type Kind int

const (
	KindPractice Kind = iota // free practice over one topic or all
	KindTimedTest            // fixed-size random test
	KindMockExam             // exam simulation from the reserved mock pool
)

func (k Kind) String() string {
	switch k {
	case KindTimedTest:
		return "timed test"
	case KindMockExam:
		return "mock exam"
	default:
		return "practice"
	}
}

// Counter tracks correct/total counts for one grouping key.
type Counter struct {
	Correct int
	Total   int
}

// Outcome describes the result of answering (or timing out on) a question.
type Outcome struct {
	Selected       []int
	CorrectIndices []int
	Correct        bool

	// TimedOut distinguishes a countdown expiry from a deliberate wrong
	// answer. Scoring is identical; only the feedback wording differs.
	TimedOut bool
}

// Session owns one quiz run: a fixed, pre-shuffled question sequence, a
// monotonically advancing cursor, and running score counters. A Session is
// never reused; topic or mode changes replace it wholesale.
type Session struct {
	ID    string
	Kind  Kind
	Topic string // practice selection; empty for test and mock kinds

	Questions []question.Question

	// Current is the 0-based cursor. The session is complete once it
	// reaches len(Questions).
	Current int

	AnsweredCount int
	CorrectCount  int

	// TopicStats accumulates per-topic counters for every session kind.
	TopicStats map[string]*Counter

	// AreaStats accumulates per-knowledge-area counters, only for mock
	// exam sessions.
	AreaStats map[string]*Counter

	// answered guards the once-per-question recording transition. A second
	// submit — whether from a keypress racing the countdown or a stale
	// timeout — is a no-op.
	answered bool
}

func newSession(kind Kind, topic string, questions []question.Question) *Session {
	return &Session{
		ID:         uuid.New().String(),
		Kind:       kind,
		Topic:      topic,
		Questions:  questions,
		TopicStats: make(map[string]*Counter),
		AreaStats:  make(map[string]*Counter),
	}
}

// Done reports whether the session has no current question left.
// A session built from an empty pool is Done from the start.
func (s *Session) Done() bool {
	return s.Current >= len(s.Questions)
}

// Question returns the current question, or nil when the session is done.
func (s *Session) Question() *question.Question {
	if s.Done() {
		return nil
	}
	return &s.Questions[s.Current]
}

// Answered reports whether the current question has already been recorded.
func (s *Session) Answered() bool {
	return s.answered
}

// Answer records a deliberate answer for the current question. It evaluates
// the selection, updates the score and grouping stats, and returns the
// outcome for feedback display. The second return is false when nothing was
// recorded (session done, or the question was already answered).
// Answering never advances the cursor; Advance is a separate transition.
func (s *Session) Answer(selected []int) (Outcome, bool) {
	return s.record(selected, false)
}

// Timeout records the current question as unanswered. Score impact is the
// same as a wrong answer; the outcome is flagged for display. A timeout
// arriving after the question was answered is a no-op.
func (s *Session) Timeout() (Outcome, bool) {
	return s.record(nil, true)
}

func (s *Session) record(selected []int, timedOut bool) (Outcome, bool) {
	q := s.Question()
	if q == nil || s.answered {
		return Outcome{}, false
	}
	s.answered = true

	verdict := Evaluate(q, selected)
	out := Outcome{
		Selected:       selected,
		CorrectIndices: verdict.CorrectIndices,
		Correct:        verdict.Correct,
		TimedOut:       timedOut,
	}

	s.AnsweredCount++
	if out.Correct {
		s.CorrectCount++
	}
	bump(s.TopicStats, q.Topic, out.Correct)
	if s.Kind == KindMockExam {
		bump(s.AreaStats, AreaKey(q), out.Correct)
	}

	return out, true
}

// Advance moves to the next question. It is only valid while the session is
// in progress; the return value reports whether a question remains.
func (s *Session) Advance() bool {
	if s.Done() {
		return false
	}
	s.Current++
	s.answered = false
	return !s.Done()
}

func bump(stats map[string]*Counter, key string, correct bool) {
	c := stats[key]
	if c == nil {
		c = &Counter{}
		stats[key] = c
	}
	c.Total++
	if correct {
		c.Correct++
	}
}
