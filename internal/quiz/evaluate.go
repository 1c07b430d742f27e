package quiz

import "github.com/prepdeck/prepdeck/internal/question"

// Verdict is the result of evaluating a selection against a question's
// answer key. CorrectIndices is always populated for feedback rendering,
// whatever the outcome.
type Verdict struct {
	Correct        bool
	CorrectIndices []int
}

// Evaluate decides correctness of a selection.
//
// Multi-select questions require exact set equality: same cardinality and
// every correct index present. Under- and over-selection both fail, and an
// empty selection (timeout) always fails since a well-formed multi question
// has at least one correct index.
//
// Single-answer questions require exactly one selected index equal to the
// answer key.
func Evaluate(q *question.Question, selected []int) Verdict {
	correct := q.CorrectSet()

	if q.IsMulti {
		if len(selected) != len(correct) {
			return Verdict{Correct: false, CorrectIndices: correct}
		}
		chosen := make(map[int]bool, len(selected))
		for _, i := range selected {
			chosen[i] = true
		}
		for _, i := range correct {
			if !chosen[i] {
				return Verdict{Correct: false, CorrectIndices: correct}
			}
		}
		return Verdict{Correct: true, CorrectIndices: correct}
	}

	ok := len(selected) == 1 && selected[0] == q.CorrectIndex
	return Verdict{Correct: ok, CorrectIndices: correct}
}
