package question

// Question is a single quiz item in canonical form. Instances are immutable
// once produced by Normalize; sessions share them freely.
type Question struct {
	// ID is an opaque identifier. May be empty.
	ID string

	// Text is the prompt shown to the user. Records without text are
	// dropped at the ingestion boundary, so it is always non-empty here.
	Text string

	// Options are the answer choices, addressed by index.
	Options []string

	// Topic is the primary grouping key.
	Topic string

	// Difficulty and SourceType are free-form classification strings.
	Difficulty string
	SourceType string

	// Tags is an ordered tag list. The first tag, when present, doubles as
	// the knowledge-area key for mock-exam analytics.
	Tags []string

	// Explanation is shown after the question has been answered.
	Explanation string

	// CorrectIndex is the answer key for single-answer questions.
	CorrectIndex int

	// CorrectIndices is the answer key for multi-select questions.
	// Non-empty iff IsMulti is true.
	CorrectIndices []int

	// IsMulti marks the question as multi-select.
	IsMulti bool
}

// CorrectSet returns the canonical set of correct option indices:
// the multi-select index set, or a singleton for single-answer questions.
func (q *Question) CorrectSet() []int {
	if q.IsMulti {
		out := make([]int, len(q.CorrectIndices))
		copy(out, q.CorrectIndices)
		return out
	}
	return []int{q.CorrectIndex}
}
