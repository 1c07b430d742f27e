package source

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/prepdeck/prepdeck/internal/question"
)

// jsonRecord mirrors one question record in a JSON source file. Answer-key
// and tag fields stay loosely typed; question.Normalize resolves them.
type jsonRecord struct {
	ID             string   `json:"id"`
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	Topic          string   `json:"topic"`
	Difficulty     string   `json:"difficulty"`
	SourceType     string   `json:"source_type"`
	Explanation    string   `json:"explanation"`
	CorrectIndex   any      `json:"correct_index"`
	CorrectIndices any      `json:"correct_indices"`
	Tags           any      `json:"tags"`
}

// ParseJSON parses a questions file: either a topic-keyed mapping or a flat
// record array. The document is schema-validated first; individual records
// missing a topic or question text are then skipped silently.
func ParseJSON(data []byte) (question.Set, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrInvalid, err)
	}
	if err := validateQuestionsJSON(parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	set := question.Set{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []jsonRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		for _, rec := range records {
			addRecord(set, rec, rec.Topic)
		}
	} else {
		var byTopic map[string][]jsonRecord
		if err := json.Unmarshal(data, &byTopic); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		for topic, records := range byTopic {
			for _, rec := range records {
				addRecord(set, rec, topic)
			}
		}
	}

	if len(set) == 0 {
		return nil, fmt.Errorf("%w: no valid JSON records", ErrInvalid)
	}
	return set, nil
}

func addRecord(set question.Set, rec jsonRecord, topic string) {
	q := question.Normalize(question.Raw{
		ID:             rec.ID,
		Text:           rec.Question,
		Options:        rec.Options,
		Topic:          topic,
		Difficulty:     rec.Difficulty,
		SourceType:     rec.SourceType,
		Explanation:    rec.Explanation,
		CorrectIndex:   rec.CorrectIndex,
		CorrectIndices: rec.CorrectIndices,
		Tags:           rec.Tags,
	})
	if q.Topic == "" || q.Text == "" || len(q.Options) == 0 {
		return
	}
	set.Add(q)
}
