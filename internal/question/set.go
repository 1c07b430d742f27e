package question

import "sort"

// Set maps topic names to their questions. A Set is built once per load and
// treated as immutable for the lifetime of any session drawn from it.
type Set map[string][]Question

// Add appends a question under its topic, creating the topic if needed.
func (s Set) Add(q Question) {
	s[q.Topic] = append(s[q.Topic], q)
}

// Topics returns all topic names in sorted order.
func (s Set) Topics() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every question across all topics, grouped by sorted topic name
// so the result is deterministic for a given Set.
func (s Set) All() []Question {
	var out []Question
	for _, name := range s.Topics() {
		out = append(out, s[name]...)
	}
	return out
}

// Len returns the total question count across all topics.
func (s Set) Len() int {
	n := 0
	for _, qs := range s {
		n += len(qs)
	}
	return n
}
