// Package export writes dated snapshots of the vocabulary collection for
// use outside the trainer (spreadsheets, external SRS tooling).
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/samdyer/revoir/internal/leitner"
	"github.com/samdyer/revoir/internal/tutor"
	"github.com/samdyer/revoir/internal/vocab"
)

// Row is one exported vocabulary record. OverdueDays is display-only and
// never feeds back into scheduling.
type Row struct {
	Word        string `json:"word"`
	Translation string `json:"translation"`
	Example     string `json:"example"`
	Box         int    `json:"box"`
	NextDue     string `json:"next_due"`
	OverdueDays int    `json:"overdue_days"`
}

// Format selects the snapshot file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatBoth Format = "both"
)

// ParseFormat normalizes a format string, defaulting to CSV.
func ParseFormat(s string) Format {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON:
		return FormatJSON
	case FormatBoth:
		return FormatBoth
	default:
		return FormatCSV
	}
}

// Snapshot builds export rows for the collection as of now.
func Snapshot(c *vocab.Collection, now time.Time) []Row {
	rows := make([]Row, 0, c.Len())
	for _, it := range c.Items {
		rows = append(rows, Row{
			Word:        it.Word,
			Translation: it.Translation,
			Example:     it.Example,
			Box:         it.Box,
			NextDue:     vocab.FormatTime(it.NextDue),
			OverdueDays: leitner.OverdueDays(it, now),
		})
	}
	return rows
}

// document is the JSON snapshot layout.
type document struct {
	ExportedAt string      `json:"exported_at"`
	Level      tutor.Level `json:"level"`
	Mode       tutor.Mode  `json:"mode"`
	Topic      string      `json:"topic"`
	Reason     string      `json:"reason"`
	Vocab      []Row       `json:"vocab"`
}

// Write serializes the collection snapshot into dir, one file per selected
// format, named srs_YYYY-MM-DD. It returns the paths written.
func Write(dir string, format Format, c *vocab.Collection, settings tutor.Settings, reason string, now time.Time) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	rows := Snapshot(c, now)
	stamp := now.Format("2006-01-02")
	var paths []string

	if format == FormatCSV || format == FormatBoth {
		p := filepath.Join(dir, "srs_"+stamp+".csv")
		if err := writeCSV(p, rows); err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}

	if format == FormatJSON || format == FormatBoth {
		p := filepath.Join(dir, "srs_"+stamp+".json")
		doc := document{
			ExportedAt: vocab.FormatTime(now),
			Level:      settings.Level,
			Mode:       settings.Mode,
			Topic:      settings.Topic,
			Reason:     reason,
			Vocab:      rows,
		}
		if err := writeJSON(p, doc); err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}

	return paths, nil
}

func writeCSV(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"word", "translation", "example", "box", "next_due", "overdue_days"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.Word, r.Translation, r.Example,
			strconv.Itoa(r.Box), r.NextDue, strconv.Itoa(r.OverdueDays),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row %q: %w", r.Word, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, doc document) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// DefaultDir resolves the export directory: REVOIR_EXPORT_DIR or
// ~/.revoir/exports.
func DefaultDir() (string, error) {
	if d := os.Getenv("REVOIR_EXPORT_DIR"); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".revoir", "exports"), nil
}

// DefaultFormat resolves the export format from REVOIR_EXPORT_FORMAT,
// defaulting to CSV.
func DefaultFormat() Format {
	return ParseFormat(os.Getenv("REVOIR_EXPORT_FORMAT"))
}
