package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prepdeck/prepdeck/internal/question"
)

// SaveSet replaces the cached question set with a freshly fetched one.
// The swap is transactional; a failed save leaves the old cache intact.
func (s *Store) SaveSet(ctx context.Context, set question.Set) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM questions"); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}

	const insert = `INSERT INTO questions
		(qid, topic, question, options, correct_index, correct_indices, tags, difficulty, source_type, explanation)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, topic := range set.Topics() {
		for _, q := range set[topic] {
			options, err := json.Marshal(q.Options)
			if err != nil {
				return fmt.Errorf("marshal options: %w", err)
			}
			indices := ""
			if q.IsMulti {
				b, err := json.Marshal(q.CorrectIndices)
				if err != nil {
					return fmt.Errorf("marshal correct indices: %w", err)
				}
				indices = string(b)
			}
			tags := ""
			if len(q.Tags) > 0 {
				b, err := json.Marshal(q.Tags)
				if err != nil {
					return fmt.Errorf("marshal tags: %w", err)
				}
				tags = string(b)
			}
			if _, err := stmt.ExecContext(ctx,
				q.ID, q.Topic, q.Text, string(options), q.CorrectIndex,
				indices, tags, q.Difficulty, q.SourceType, q.Explanation,
			); err != nil {
				return fmt.Errorf("insert question: %w", err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO meta (key, value) VALUES ('fetched_at', ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("record fetch time: %w", err)
	}

	return tx.Commit()
}

// LoadSet reads the cached question set. An empty cache yields an empty set,
// not an error; the loader decides what that means.
func (s *Store) LoadSet(ctx context.Context) (question.Set, error) {
	const query = `SELECT qid, topic, question, options, correct_index, correct_indices, tags, difficulty, source_type, explanation
		FROM questions ORDER BY seq`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query cache: %w", err)
	}
	defer rows.Close()

	set := question.Set{}
	for rows.Next() {
		var q question.Question
		var options, indices, tags string
		if err := rows.Scan(&q.ID, &q.Topic, &q.Text, &options, &q.CorrectIndex,
			&indices, &tags, &q.Difficulty, &q.SourceType, &q.Explanation); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		if err := json.Unmarshal([]byte(options), &q.Options); err != nil {
			return nil, fmt.Errorf("decode options: %w", err)
		}
		if indices != "" {
			if err := json.Unmarshal([]byte(indices), &q.CorrectIndices); err != nil {
				return nil, fmt.Errorf("decode correct indices: %w", err)
			}
			q.IsMulti = len(q.CorrectIndices) > 0
		}
		if tags != "" {
			if err := json.Unmarshal([]byte(tags), &q.Tags); err != nil {
				return nil, fmt.Errorf("decode tags: %w", err)
			}
		}
		set.Add(q)
	}
	return set, rows.Err()
}

// FetchedAt returns when the cache was last refreshed, or the zero time
// when it never was.
func (s *Store) FetchedAt(ctx context.Context) (time.Time, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM meta WHERE key = 'fetched_at'").Scan(&value)
	if err != nil {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse fetched_at: %w", err)
	}
	return t, nil
}
