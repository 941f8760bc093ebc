package store

import (
	"context"
	"fmt"

	"github.com/samdyer/revoir/internal/tutor"
)

// Settings keys.
const (
	keyLevel = "level"
	keyMode  = "mode"
	keyTopic = "topic"
)

// LoadSettings reads the tutor settings, falling back to the defaults for
// any missing key.
func (s *Store) LoadSettings(ctx context.Context) (tutor.Settings, error) {
	settings := tutor.DefaultSettings()

	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return settings, fmt.Errorf("query settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return settings, fmt.Errorf("scan settings row: %w", err)
		}
		switch k {
		case keyLevel:
			settings.Level = tutor.Level(v)
		case keyMode:
			settings.Mode = tutor.Mode(v)
		case keyTopic:
			settings.Topic = v
		}
	}
	if err := rows.Err(); err != nil {
		return settings, fmt.Errorf("iterate settings rows: %w", err)
	}
	return settings, nil
}

// SaveSettings upserts the tutor settings.
func (s *Store) SaveSettings(ctx context.Context, settings tutor.Settings) error {
	pairs := map[string]string{
		keyLevel: string(settings.Level),
		keyMode:  string(settings.Mode),
		keyTopic: settings.Topic,
	}
	for k, v := range pairs {
		if _, err := s.db.ExecContext(ctx, `
			INSERT INTO settings (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, k, v); err != nil {
			return fmt.Errorf("save setting %s: %w", k, err)
		}
	}
	return nil
}
