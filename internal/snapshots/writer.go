package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	domaindraft "github.com/preston-bernstein/roto-auction-service/internal/domain/draft"
)

type snapshotKind string

const (
	kindDraft snapshotKind = "draft"
)

// DraftPayload is the on-disk shape of a saved draft ledger.
type DraftPayload struct {
	SavedAt time.Time         `json:"savedAt"`
	State   domaindraft.State `json:"state"`
}

// Writer persists snapshots and manifest with pruning.
type Writer struct {
	basePath      string
	retentionDays int
}

// NewWriter constructs a writer rooted at basePath with a rolling window retention.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = 14
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteDraftSnapshot persists the live draft ledger and a dated archive
// for the current day, then prunes archives outside the retention window.
func (w *Writer) WriteDraftSnapshot(state domaindraft.State) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	now := time.Now().UTC()
	payload := DraftPayload{SavedAt: now, State: state}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	current := CurrentDraftPath(w.basePath)
	if err := os.MkdirAll(filepath.Dir(current), 0o755); err != nil {
		return err
	}
	if err := w.writeFile(current, data); err != nil {
		return err
	}

	date := now.Format("2006-01-02")
	if err := w.writeFile(DraftSnapshotPath(w.basePath, date), data); err != nil {
		return err
	}

	return w.updateManifest(date, now, state.PickCount())
}

// writeFile writes atomically via tmp+rename, skipping when the target
// already holds identical bytes.
func (w *Writer) writeFile(target string, data []byte) error {
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

func (w *Writer) updateManifest(date string, savedAt time.Time, picks int) error {
	manifestPath := filepath.Join(w.basePath, "manifest.json")
	m, _ := readManifest(manifestPath, w.retentionDays)

	dates, err := w.listDates()
	if err != nil {
		return err
	}
	if !containsDate(dates, date) {
		dates = append(dates, date)
	}
	pruned, err := w.pruneOldSnapshots(dates)
	if err != nil {
		return err
	}

	m.Draft.Dates = pruned
	m.Draft.LastSaved = savedAt
	m.Draft.PickCount = picks
	m.Retention.DraftDays = w.retentionDays

	return writeManifest(w.basePath, m)
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}

func (w *Writer) listDates() ([]string, error) {
	dir := filepath.Join(w.basePath, string(kindDraft))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var dates []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		base := name[:len(name)-len(".json")]
		if base == "current" {
			continue
		}
		if _, err := time.Parse("2006-01-02", base); err != nil {
			continue
		}
		dates = append(dates, base)
	}
	sort.Strings(dates)
	return dates, nil
}

func (w *Writer) pruneOldSnapshots(dates []string) ([]string, error) {
	now := time.Now().UTC()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -w.retentionDays)
	var keep []string
	for _, d := range dates {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			keep = append(keep, d)
			continue
		}
		if parsed.Before(cutoff) {
			_ = os.Remove(DraftSnapshotPath(w.basePath, d))
			continue
		}
		keep = append(keep, d)
	}
	sort.Strings(keep)
	return keep, nil
}
