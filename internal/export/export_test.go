package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samdyer/revoir/internal/tutor"
	"github.com/samdyer/revoir/internal/vocab"
)

func testCollection(now time.Time) *vocab.Collection {
	return &vocab.Collection{Items: []*vocab.Item{
		{Word: "bonjour", Translation: "hello", Example: "Bonjour à tous.", Box: 2, NextDue: now.AddDate(0, 0, -3)},
		{Word: "merci", Translation: "thank you", Box: 1, NextDue: now.AddDate(0, 0, 1)},
	}}
}

func TestSnapshotRows(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	rows := Snapshot(testCollection(now), now)

	require.Len(t, rows, 2)
	require.Equal(t, "bonjour", rows[0].Word)
	require.Equal(t, 2, rows[0].Box)
	require.Equal(t, 3, rows[0].OverdueDays)
	require.Equal(t, 0, rows[1].OverdueDays)
}

func TestWriteCSV(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	dir := t.TempDir()

	paths, err := Write(dir, FormatCSV, testCollection(now), tutor.DefaultSettings(), "manual", now)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Equal(t, filepath.Join(dir, "srs_2026-05-10.csv"), paths[0])

	f, err := os.Open(paths[0])
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, []string{"word", "translation", "example", "box", "next_due", "overdue_days"}, records[0])
	require.Equal(t, "bonjour", records[1][0])
	require.Equal(t, "3", records[1][5])
}

func TestWriteJSON(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	dir := t.TempDir()

	settings := tutor.Settings{Level: "B1", Mode: tutor.ModeQuiz, Topic: "travel"}
	paths, err := Write(dir, FormatJSON, testCollection(now), settings, "session end", now)
	require.NoError(t, err)
	require.Len(t, paths, 1)

	b, err := os.ReadFile(paths[0])
	require.NoError(t, err)

	var doc document
	require.NoError(t, json.Unmarshal(b, &doc))
	require.Equal(t, "2026-05-10T12:00:00", doc.ExportedAt)
	require.Equal(t, tutor.Level("B1"), doc.Level)
	require.Equal(t, "session end", doc.Reason)
	require.Len(t, doc.Vocab, 2)
}

func TestWriteBoth(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	dir := t.TempDir()

	paths, err := Write(dir, FormatBoth, testCollection(now), tutor.DefaultSettings(), "manual", now)
	require.NoError(t, err)
	require.Len(t, paths, 2)
}

func TestParseFormat(t *testing.T) {
	require.Equal(t, FormatCSV, ParseFormat(""))
	require.Equal(t, FormatCSV, ParseFormat("csv"))
	require.Equal(t, FormatJSON, ParseFormat(" JSON "))
	require.Equal(t, FormatBoth, ParseFormat("both"))
	require.Equal(t, FormatCSV, ParseFormat("xml"))
}
