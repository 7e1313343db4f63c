// Package snapshots persists scoreboard payloads to disk so a restart
// can serve the last known slate before the first poll completes.
package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"quiet-scores-service/internal/domain"
)

const defaultRetentionDays = 14

// Writer persists scoreboard snapshots under a base directory.
type Writer struct {
	basePath      string
	retentionDays int
}

// NewWriter constructs a snapshot writer rooted at basePath.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = defaultRetentionDays
	}
	return &Writer{basePath: basePath, retentionDays: retentionDays}
}

// WriteScoresSnapshot writes the scoreboard for a date, refreshes the
// manifest, and prunes snapshots past the retention window.
func (w *Writer) WriteScoresSnapshot(date string, snapshot domain.ScoresResponse) error {
	if w == nil || w.basePath == "" {
		return nil
	}
	if date == "" {
		return fmt.Errorf("snapshots: date is required")
	}

	scores := make([]domain.GameRecord, len(snapshot.Scores))
	copy(scores, snapshot.Scores)
	sort.Slice(scores, func(i, j int) bool { return scores[i].ID < scores[j].ID })
	snapshot.Scores = scores

	path := ScoreSnapshotPath(w.basePath, date)
	changed, err := w.writeSnapshot(path, snapshot)
	if err != nil {
		return err
	}
	if err := w.updateManifest(); err != nil {
		return err
	}
	if changed {
		return w.pruneOldSnapshots()
	}
	return nil
}

// writeSnapshot writes JSON atomically and reports whether the file
// content changed. Identical content is left untouched.
func (w *Writer) writeSnapshot(path string, payload any) (bool, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return false, fmt.Errorf("snapshots: marshal %s: %w", path, err)
	}
	data = append(data, '\n')

	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, data) {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("snapshots: mkdir %s: %w", filepath.Dir(path), err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return false, fmt.Errorf("snapshots: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return false, fmt.Errorf("snapshots: rename %s: %w", path, err)
	}
	return true, nil
}

func (w *Writer) updateManifest() error {
	manifestPath := filepath.Join(w.basePath, "manifest.json")
	m, _ := readManifest(manifestPath, w.retentionDays)
	m.Retention.ScoresDays = w.retentionDays

	dates, err := w.listDates()
	if err != nil {
		return err
	}
	m.Scores.Dates = dates
	m.Scores.LastRefreshed = time.Now().UTC()

	return writeManifest(w.basePath, m)
}

// listDates returns the dates of every snapshot on disk, sorted.
func (w *Writer) listDates() ([]string, error) {
	dir := filepath.Join(w.basePath, "scores")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("snapshots: read %s: %w", dir, err)
	}
	dates := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		dates = append(dates, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(dates)
	return dates, nil
}

// pruneOldSnapshots removes snapshot files older than the retention
// window. The cutoff is measured in whole days at midnight UTC.
func (w *Writer) pruneOldSnapshots() error {
	dates, err := w.listDates()
	if err != nil {
		return err
	}
	cutoff := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -w.retentionDays)
	for _, date := range dates {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			continue
		}
		if day.Before(cutoff) {
			if err := os.Remove(ScoreSnapshotPath(w.basePath, date)); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("snapshots: prune %s: %w", date, err)
			}
		}
	}
	return nil
}
