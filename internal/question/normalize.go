package question

import (
	"strconv"
	"strings"
)

const (
	// DefaultDifficulty is applied when a record carries no difficulty.
	DefaultDifficulty = "medium"

	// DefaultSourceType is applied when a record carries no source type.
	DefaultSourceType = "mock"
)

// Raw is a loosely-typed question record as it arrives from a parser.
// Answer-key and tag fields keep whatever shape the source used (number,
// numeric string, delimited string, or array); Normalize resolves them.
type Raw struct {
	ID             string
	Text           string
	Options        []string
	Topic          string
	Difficulty     string
	SourceType     string
	Explanation    string
	CorrectIndex   any
	CorrectIndices any
	Tags           any
}

// Normalize converts a raw record into canonical form. It is total: every
// input yields a usable Question. Unparsable or out-of-range answer keys
// fall back to index 0 rather than failing the load.
func Normalize(raw Raw) Question {
	q := Question{
		ID:          strings.TrimSpace(raw.ID),
		Text:        strings.TrimSpace(raw.Text),
		Options:     raw.Options,
		Topic:       strings.TrimSpace(raw.Topic),
		Difficulty:  strings.TrimSpace(raw.Difficulty),
		SourceType:  strings.TrimSpace(raw.SourceType),
		Explanation: strings.TrimSpace(raw.Explanation),
		Tags:        parseTags(raw.Tags),
	}

	if q.Difficulty == "" {
		q.Difficulty = DefaultDifficulty
	}
	if q.SourceType == "" {
		q.SourceType = DefaultSourceType
	}

	q.CorrectIndex = parseIndex(raw.CorrectIndex)
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		q.CorrectIndex = 0
	}

	multi := parseIndexList(raw.CorrectIndices, len(q.Options))
	if len(multi) > 0 {
		q.CorrectIndices = multi
		q.IsMulti = true
	}

	return q
}

// parseIndex coerces a number or numeric string to an int, defaulting to 0.
func parseIndex(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

// parseIndexList extracts a multi-select index set from an array or a
// comma/semicolon separated string. Non-numeric tokens and indices outside
// [0, optionCount) are discarded.
func parseIndexList(v any, optionCount int) []int {
	var tokens []string
	switch t := v.(type) {
	case []int:
		return dedupeValid(t, optionCount)
	case []any:
		for _, e := range t {
			switch n := e.(type) {
			case float64:
				tokens = append(tokens, strconv.Itoa(int(n)))
			case int:
				tokens = append(tokens, strconv.Itoa(n))
			case string:
				tokens = append(tokens, n)
			}
		}
	case string:
		trimmed := strings.TrimSpace(t)
		if trimmed == "" {
			return nil
		}
		tokens = strings.FieldsFunc(trimmed, func(r rune) bool {
			return r == ',' || r == ';'
		})
	default:
		return nil
	}

	var parsed []int
	for _, tok := range tokens {
		i, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			continue
		}
		parsed = append(parsed, i)
	}
	return dedupeValid(parsed, optionCount)
}

// dedupeValid keeps the first occurrence of each in-range index,
// preserving order.
func dedupeValid(indices []int, optionCount int) []int {
	seen := make(map[int]bool, len(indices))
	var out []int
	for _, i := range indices {
		if i < 0 || i >= optionCount || seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, i)
	}
	return out
}

// parseTags extracts a tag list from an array or comma-separated string,
// trimming whitespace and dropping empties.
func parseTags(v any) []string {
	var raw []string
	switch t := v.(type) {
	case []string:
		raw = t
	case []any:
		for _, e := range t {
			if s, ok := e.(string); ok {
				raw = append(raw, s)
			}
		}
	case string:
		raw = strings.Split(t, ",")
	default:
		return nil
	}

	var out []string
	for _, tag := range raw {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
