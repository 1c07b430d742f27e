package quiz

import (
	"testing"

	"github.com/prepdeck/prepdeck/internal/question"
)

func TestAreaKey(t *testing.T) {
	tagged := &question.Question{Topic: "Mock Exam 1", Tags: []string{"Data Services", "other"}}
	if got := AreaKey(tagged); got != "data services" {
		t.Errorf("AreaKey = %q", got)
	}

	untagged := &question.Question{Topic: "Mock Exam 1"}
	if got := AreaKey(untagged); got != "mock-exam-1" {
		t.Errorf("AreaKey = %q", got)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Mock Exam 1", "mock-exam-1"},
		{"  Data & Storage  ", "data-storage"},
		{"already-slugged", "already-slugged"},
		{"___", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
