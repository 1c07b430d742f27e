package quiz

import (
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/prepdeck/prepdeck/internal/question"
)

func testSet() question.Set {
	set := question.Set{}
	for i := 0; i < 5; i++ {
		set.Add(question.Question{Text: fmt.Sprintf("net-%d", i), Topic: "Networking"})
	}
	for i := 0; i < 3; i++ {
		set.Add(question.Question{Text: fmt.Sprintf("sto-%d", i), Topic: "Storage"})
	}
	for i := 0; i < 4; i++ {
		set.Add(question.Question{Text: fmt.Sprintf("mock-%d", i), Topic: "Mock Exam 1"})
	}
	return set
}

func TestPracticeSessionSingleTopic(t *testing.T) {
	s := NewPracticeSession(testSet(), "Storage")

	if s.Kind != KindPractice || s.Topic != "Storage" {
		t.Errorf("kind/topic = %v/%q", s.Kind, s.Topic)
	}
	if len(s.Questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(s.Questions))
	}
	for _, q := range s.Questions {
		if q.Topic != "Storage" {
			t.Errorf("question from topic %q", q.Topic)
		}
	}
}

func TestPracticeSessionAllTopics(t *testing.T) {
	set := testSet()
	s := NewPracticeSession(set, AllTopics)

	if len(s.Questions) != set.Len() {
		t.Errorf("got %d questions, want %d", len(s.Questions), set.Len())
	}

	// Same multiset as the source, in some order.
	want := make([]string, 0, set.Len())
	for _, q := range set.All() {
		want = append(want, q.Text)
	}
	got := make([]string, 0, len(s.Questions))
	for _, q := range s.Questions {
		got = append(got, q.Text)
	}
	sort.Strings(want)
	sort.Strings(got)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("shuffle changed the question multiset: %v vs %v", got, want)
		}
	}
}

func TestPracticeSessionUnknownTopic(t *testing.T) {
	s := NewPracticeSession(testSet(), "No Such Topic")
	if !s.Done() {
		t.Error("session over a missing topic should start complete")
	}
	if s.Question() != nil {
		t.Error("expected nil current question")
	}
}

func TestTestSessionExcludesMockTopics(t *testing.T) {
	s := NewTestSession(testSet(), 100)

	if s.Kind != KindTimedTest {
		t.Errorf("kind = %v", s.Kind)
	}
	// 5 networking + 3 storage; the 4 mock questions stay out.
	if len(s.Questions) != 8 {
		t.Fatalf("got %d questions, want 8", len(s.Questions))
	}
	for _, q := range s.Questions {
		if IsMockTopic(q.Topic) {
			t.Errorf("mock question %q leaked into a timed test", q.Text)
		}
	}
}

func TestTestSessionTruncates(t *testing.T) {
	s := NewTestSession(testSet(), 4)
	if len(s.Questions) != 4 {
		t.Errorf("got %d questions, want 4", len(s.Questions))
	}

	// Requesting more than the pool yields the whole pool.
	s = NewTestSession(testSet(), 50)
	if len(s.Questions) != 8 {
		t.Errorf("got %d questions, want 8", len(s.Questions))
	}
}

func TestMockSession(t *testing.T) {
	s, err := NewMockSession(testSet(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if s.Kind != KindMockExam {
		t.Errorf("kind = %v", s.Kind)
	}
	if len(s.Questions) != 4 {
		t.Fatalf("got %d questions, want 4", len(s.Questions))
	}
	for _, q := range s.Questions {
		if !IsMockTopic(q.Topic) {
			t.Errorf("non-mock question %q in a mock exam", q.Text)
		}
	}
}

func TestMockSessionEmptyPool(t *testing.T) {
	set := question.Set{}
	set.Add(question.Question{Text: "q", Topic: "Networking"})

	_, err := NewMockSession(set, 10)
	if !errors.Is(err, ErrNoMockQuestions) {
		t.Errorf("err = %v, want ErrNoMockQuestions", err)
	}
}

func TestIsMockTopic(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Mock Exam 1", true},
		{"mock exam", true},
		{"  MOCK EXAM A  ", true},
		{"Networking", false},
		{"mockery", false},
	}
	for _, tt := range tests {
		if got := IsMockTopic(tt.name); got != tt.want {
			t.Errorf("IsMockTopic(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestShuffledDoesNotMutateSource(t *testing.T) {
	set := testSet()
	before := make([]string, 0)
	for _, q := range set["Networking"] {
		before = append(before, q.Text)
	}

	for i := 0; i < 10; i++ {
		NewPracticeSession(set, "Networking")
	}

	for i, q := range set["Networking"] {
		if q.Text != before[i] {
			t.Fatal("building sessions reordered the source set")
		}
	}
}
