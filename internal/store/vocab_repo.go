package store

import (
	"context"
	"fmt"

	"github.com/samdyer/revoir/internal/vocab"
)

// LoadCollection reads every vocabulary item with its answer history.
// History rows come back in insertion order. Timestamps go through
// vocab.ParseTime, so a malformed next_due surfaces as already due instead
// of failing the load.
func (s *Store) LoadCollection(ctx context.Context) (*vocab.Collection, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, word, translation, example, box, next_due
		FROM vocab ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query vocab: %w", err)
	}
	defer rows.Close()

	c := &vocab.Collection{}
	ids := make([]int64, 0, 16)
	byID := make(map[int64]*vocab.Item)
	for rows.Next() {
		var id int64
		var word, translation, ex, nd string
		var box int
		if err := rows.Scan(&id, &word, &translation, &ex, &box, &nd); err != nil {
			return nil, fmt.Errorf("scan vocab row: %w", err)
		}
		it := &vocab.Item{
			Word:        word,
			Translation: translation,
			Example:     ex,
			Box:         box,
			NextDue:     vocab.ParseTime(nd),
		}
		c.Items = append(c.Items, it)
		ids = append(ids, id)
		byID[id] = it
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vocab rows: %w", err)
	}
	if len(ids) == 0 {
		return c, nil
	}

	hrows, err := s.db.QueryContext(ctx, `
		SELECT vocab_id, at, correct, raw_input
		FROM history ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer hrows.Close()

	for hrows.Next() {
		var vocabID int64
		var at, raw string
		var correct bool
		if err := hrows.Scan(&vocabID, &at, &correct, &raw); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		it, ok := byID[vocabID]
		if !ok {
			continue
		}
		it.History = append(it.History, vocab.HistoryEntry{
			At:       vocab.ParseTime(at),
			Correct:  correct,
			RawInput: raw,
		})
	}
	if err := hrows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history rows: %w", err)
	}
	return c, nil
}

// SaveCollection rewrites the whole collection in a single transaction. The
// collection is a personal vocabulary list, small by construction; a full
// rewrite preserves insertion order without diffing.
func (s *Store) SaveCollection(ctx context.Context, c *vocab.Collection) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM history`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM vocab`); err != nil {
		return fmt.Errorf("clear vocab: %w", err)
	}

	for _, it := range c.Items {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO vocab (word, translation, example, box, next_due)
			VALUES (?, ?, ?, ?, ?)
		`, it.Word, it.Translation, it.Example, it.Box, vocab.FormatTime(it.NextDue))
		if err != nil {
			return fmt.Errorf("insert vocab %q: %w", it.Word, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("vocab insert id: %w", err)
		}
		for _, h := range it.History {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO history (vocab_id, at, correct, raw_input)
				VALUES (?, ?, ?, ?)
			`, id, vocab.FormatTime(h.At), h.Correct, h.RawInput); err != nil {
				return fmt.Errorf("insert history for %q: %w", it.Word, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Reset deletes every vocabulary item, its history and the settings.
func (s *Store) Reset(ctx context.Context) error {
	for _, stmt := range []string{
		`DELETE FROM history`,
		`DELETE FROM vocab`,
		`DELETE FROM settings`,
	} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", stmt, err)
		}
	}
	return nil
}
