package quiz

import (
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/prepdeck/prepdeck/internal/question"
)

// AllTopics is the pseudo-topic selecting every topic for practice.
const AllTopics = "all"

// MockTopicPrefix is the reserved topic-name prefix (case-insensitive) that
// marks exam-simulation question sets. Mock topics are excluded from timed
// tests and are the only source for mock exam sessions.
const MockTopicPrefix = "mock exam"

// ErrNoMockQuestions is returned when a mock exam is requested but the set
// contains no topic under the reserved prefix.
var ErrNoMockQuestions = errors.New("no mock exam questions in the loaded set")

// ErrInvalidSize is returned for non-positive session size requests.
var ErrInvalidSize = errors.New("session size must be a positive integer")

// IsMockTopic reports whether a topic name belongs to the reserved
// mock-exam pool.
func IsMockTopic(name string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(name)), MockTopicPrefix)
}

// NewPracticeSession builds a practice session over one topic, or over every
// topic when topic is AllTopics. A missing topic is not an error: the session
// starts out complete with zero questions.
func NewPracticeSession(set question.Set, topic string) *Session {
	var pool []question.Question
	if topic == AllTopics {
		pool = set.All()
	} else {
		pool = append(pool, set[topic]...)
	}
	return newSession(KindPractice, topic, shuffled(pool))
}

// NewTestSession builds a fixed-size test from every non-mock topic.
// Callers validate size before calling; see Engine.StartTest.
func NewTestSession(set question.Set, size int) *Session {
	var pool []question.Question
	for _, topic := range set.Topics() {
		if IsMockTopic(topic) {
			continue
		}
		pool = append(pool, set[topic]...)
	}
	return newSession(KindTimedTest, "", truncate(shuffled(pool), size))
}

// NewMockSession builds a mock exam from the reserved mock topics only.
// An empty mock pool is reported as ErrNoMockQuestions rather than silently
// falling back to the full question set.
func NewMockSession(set question.Set, size int) (*Session, error) {
	var pool []question.Question
	for _, topic := range set.Topics() {
		if IsMockTopic(topic) {
			pool = append(pool, set[topic]...)
		}
	}
	if len(pool) == 0 {
		return nil, ErrNoMockQuestions
	}
	return newSession(KindMockExam, "", truncate(shuffled(pool), size)), nil
}

// shuffled returns a uniformly permuted copy of qs. The source Set is never
// mutated; every session owns its own sequence.
func shuffled(qs []question.Question) []question.Question {
	out := make([]question.Question, len(qs))
	copy(out, qs)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func truncate(qs []question.Question, size int) []question.Question {
	if size < len(qs) {
		return qs[:size]
	}
	return qs
}
