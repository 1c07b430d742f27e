package question

import (
	"reflect"
	"testing"
)

func TestNormalizeSingleIndex(t *testing.T) {
	opts := []string{"a", "b", "c", "d"}

	tests := []struct {
		name string
		in   any
		want int
	}{
		{"int", 2, 2},
		{"float from json", float64(3), 3},
		{"numeric string", "1", 1},
		{"padded string", " 2 ", 2},
		{"garbage string", "two", 0},
		{"nil", nil, 0},
		{"negative", -1, 0},
		{"out of range", 7, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Normalize(Raw{Text: "q", Topic: "t", Options: opts, CorrectIndex: tt.in})
			if q.CorrectIndex != tt.want {
				t.Errorf("CorrectIndex = %d, want %d", q.CorrectIndex, tt.want)
			}
			if q.IsMulti {
				t.Error("single-answer question marked multi")
			}
		})
	}
}

func TestNormalizeMultiIndices(t *testing.T) {
	opts := []string{"a", "b", "c", "d"}

	tests := []struct {
		name string
		in   any
		want []int
	}{
		{"comma string", "0,2", []int{0, 2}},
		{"semicolon string", "1;3", []int{1, 3}},
		{"mixed separators", "0, 2; 3", []int{0, 2, 3}},
		{"json array", []any{float64(1), float64(2)}, []int{1, 2}},
		{"int slice", []int{3, 0}, []int{3, 0}},
		{"duplicates collapsed", "1,1,2", []int{1, 2}},
		{"out of range dropped", "0,9", []int{0}},
		{"garbage tokens dropped", "0,x,2", []int{0, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Normalize(Raw{Text: "q", Topic: "t", Options: opts, CorrectIndices: tt.in})
			if !q.IsMulti {
				t.Fatal("expected IsMulti")
			}
			if !reflect.DeepEqual(q.CorrectIndices, tt.want) {
				t.Errorf("CorrectIndices = %v, want %v", q.CorrectIndices, tt.want)
			}
		})
	}
}

func TestNormalizeEmptyIndicesStaysSingle(t *testing.T) {
	for _, in := range []any{nil, "", "  ", []any{}, "x;y"} {
		q := Normalize(Raw{Text: "q", Topic: "t", Options: []string{"a", "b"}, CorrectIndices: in})
		if q.IsMulti {
			t.Errorf("IsMulti = true for indices %#v", in)
		}
	}
}

func TestNormalizeDefaults(t *testing.T) {
	q := Normalize(Raw{Text: " q ", Topic: " t "})
	if q.Difficulty != DefaultDifficulty {
		t.Errorf("Difficulty = %q, want %q", q.Difficulty, DefaultDifficulty)
	}
	if q.SourceType != DefaultSourceType {
		t.Errorf("SourceType = %q, want %q", q.SourceType, DefaultSourceType)
	}
	if q.Text != "q" || q.Topic != "t" {
		t.Errorf("fields not trimmed: %q %q", q.Text, q.Topic)
	}
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{"comma string", "net, storage ,", []string{"net", "storage"}},
		{"string slice", []string{"a", " b "}, []string{"a", "b"}},
		{"json array", []any{"x", 3, "y"}, []string{"x", "y"}},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Normalize(Raw{Text: "q", Topic: "t", Tags: tt.in})
			if !reflect.DeepEqual(q.Tags, tt.want) {
				t.Errorf("Tags = %v, want %v", q.Tags, tt.want)
			}
		})
	}
}

func TestCorrectSet(t *testing.T) {
	single := Question{CorrectIndex: 2}
	if got := single.CorrectSet(); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("single CorrectSet = %v", got)
	}

	multi := Question{IsMulti: true, CorrectIndices: []int{0, 3}}
	got := multi.CorrectSet()
	if !reflect.DeepEqual(got, []int{0, 3}) {
		t.Errorf("multi CorrectSet = %v", got)
	}
	got[0] = 9
	if multi.CorrectIndices[0] != 0 {
		t.Error("CorrectSet must return a copy")
	}
}

func TestSet(t *testing.T) {
	s := Set{}
	s.Add(Question{Text: "1", Topic: "b"})
	s.Add(Question{Text: "2", Topic: "a"})
	s.Add(Question{Text: "3", Topic: "b"})

	if got := s.Topics(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Topics = %v", got)
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d", s.Len())
	}

	all := s.All()
	if len(all) != 3 {
		t.Fatalf("All returned %d questions", len(all))
	}
	if all[0].Topic != "a" || all[1].Topic != "b" {
		t.Errorf("All not grouped by sorted topic: %v", all)
	}
}
