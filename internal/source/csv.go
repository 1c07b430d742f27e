package source

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/prepdeck/prepdeck/internal/question"
)

// csvColumns maps header names to their column positions.
type csvColumns struct {
	topic          int
	text           int
	options        []int // option1..optionN positions, in numeric order
	correctIndex   int
	correctIndices int
	id             int
	explanation    int
	difficulty     int
	sourceType     int
	tags           int
}

// ParseCSV parses a spreadsheet export into a question set. The header row
// must contain at least "topic", "question" and one "option{N}" column.
// Rows missing a topic or question text are skipped; an output with zero
// topics is reported as ErrInvalid.
func ParseCSV(data []byte) (question.Set, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV header: %v", ErrInvalid, err)
	}
	cols, err := mapColumns(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	set := question.Set{}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A single bad row never fails the whole load.
			continue
		}
		raw, ok := rowToRaw(row, cols)
		if !ok {
			continue
		}
		set.Add(question.Normalize(raw))
	}

	if len(set) == 0 {
		return nil, fmt.Errorf("%w: no valid CSV rows", ErrInvalid)
	}
	return set, nil
}

func mapColumns(header []string) (csvColumns, error) {
	cols := csvColumns{
		topic: -1, text: -1, correctIndex: -1, correctIndices: -1,
		id: -1, explanation: -1, difficulty: -1, sourceType: -1, tags: -1,
	}
	type optCol struct{ n, pos int }
	var opts []optCol

	for i, name := range header {
		switch key := strings.ToLower(strings.TrimSpace(name)); key {
		case "topic":
			cols.topic = i
		case "question":
			cols.text = i
		case "correct_idx":
			cols.correctIndex = i
		case "correct_indices":
			cols.correctIndices = i
		case "id":
			cols.id = i
		case "explanation":
			cols.explanation = i
		case "difficulty":
			cols.difficulty = i
		case "source_type":
			cols.sourceType = i
		case "tags":
			cols.tags = i
		default:
			if rest, found := strings.CutPrefix(key, "option"); found {
				if n, err := strconv.Atoi(rest); err == nil {
					opts = append(opts, optCol{n: n, pos: i})
				}
			}
		}
	}

	sort.Slice(opts, func(i, j int) bool { return opts[i].n < opts[j].n })
	for _, oc := range opts {
		cols.options = append(cols.options, oc.pos)
	}

	switch {
	case cols.topic < 0:
		return cols, fmt.Errorf("missing required column %q", "topic")
	case cols.text < 0:
		return cols, fmt.Errorf("missing required column %q", "question")
	case len(cols.options) == 0:
		return cols, fmt.Errorf("missing option columns")
	}
	return cols, nil
}

func rowToRaw(row []string, cols csvColumns) (question.Raw, bool) {
	field := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	topic := field(cols.topic)
	text := field(cols.text)
	if topic == "" || text == "" {
		return question.Raw{}, false
	}

	var options []string
	for _, pos := range cols.options {
		if v := field(pos); v != "" {
			options = append(options, v)
		}
	}
	if len(options) == 0 {
		return question.Raw{}, false
	}

	return question.Raw{
		ID:             field(cols.id),
		Text:           text,
		Options:        options,
		Topic:          topic,
		Difficulty:     field(cols.difficulty),
		SourceType:     field(cols.sourceType),
		Explanation:    field(cols.explanation),
		CorrectIndex:   field(cols.correctIndex),
		CorrectIndices: field(cols.correctIndices),
		Tags:           field(cols.tags),
	}, true
}
