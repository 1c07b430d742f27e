package quiz

import (
	"math"
	"sort"
)

// KeyStat is one row of a summary breakdown.
type KeyStat struct {
	Key     string
	Correct int
	Total   int
	Percent int
}

// Summary is the end-of-session report. Breakdown rows are sorted
// alphabetically by key; ranking policies (such as most-missed-first for a
// review view) are layered on top by the caller.
type Summary struct {
	Kind           Kind
	AnsweredCount  int
	CorrectCount   int
	OverallPercent int

	// GroupLabel names the breakdown axis: "topic", or "area" for mock
	// exam sessions.
	GroupLabel string
	Breakdown  []KeyStat
}

// Summarize reduces a session's accumulated stats into a Summary.
// A session with nothing answered yields 0%, never a division by zero.
func Summarize(s *Session) Summary {
	stats := s.TopicStats
	label := "topic"
	if s.Kind == KindMockExam {
		stats = s.AreaStats
		label = "area"
	}

	rows := make([]KeyStat, 0, len(stats))
	for key, c := range stats {
		rows = append(rows, KeyStat{
			Key:     key,
			Correct: c.Correct,
			Total:   c.Total,
			Percent: percent(c.Correct, c.Total),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })

	answered := s.AnsweredCount
	if answered < 1 {
		answered = 1
	}

	return Summary{
		Kind:           s.Kind,
		AnsweredCount:  s.AnsweredCount,
		CorrectCount:   s.CorrectCount,
		OverallPercent: percent(s.CorrectCount, answered),
		GroupLabel:     label,
		Breakdown:      rows,
	}
}

// RankByMissed orders breakdown rows with the most incorrect answers first,
// breaking ties alphabetically. Used by the "topics to review" view.
func RankByMissed(rows []KeyStat) []KeyStat {
	out := make([]KeyStat, len(rows))
	copy(out, rows)
	sort.Slice(out, func(i, j int) bool {
		mi := out[i].Total - out[i].Correct
		mj := out[j].Total - out[j].Correct
		if mi != mj {
			return mi > mj
		}
		return out[i].Key < out[j].Key
	})
	return out
}

func percent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
