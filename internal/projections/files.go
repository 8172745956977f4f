package projections

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/preston-bernstein/roto-auction-service/internal/domain/players"
)

// FileStore persists uploaded projection CSVs so the pool survives a
// restart. Files are named {side}_{original}.csv under the base directory.
type FileStore struct {
	dir string
}

// NewFileStore constructs a store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// SavedFile describes one persisted upload.
type SavedFile struct {
	Filename string       `json:"filename"`
	Side     players.Type `json:"side"`
	SizeKB   float64      `json:"sizeKb"`
}

// Save writes an uploaded CSV to disk and returns the stored filename.
func (s *FileStore) Save(side players.Type, originalName string, content []byte) (string, error) {
	if s == nil || s.dir == "" {
		return "", fmt.Errorf("projection store not configured")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	name := sanitizeFilename(originalName)
	if name == "" {
		name = "upload"
	}
	stored := fmt.Sprintf("%s_%s", sidePrefix(side), name)
	if !strings.HasSuffix(stored, ".csv") {
		stored += ".csv"
	}
	if err := os.WriteFile(filepath.Join(s.dir, stored), content, 0o644); err != nil {
		return "", err
	}
	return stored, nil
}

// List returns the persisted uploads, sorted by filename.
func (s *FileStore) List() ([]SavedFile, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var files []SavedFile
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
			continue
		}
		side, ok := sideFromFilename(e.Name())
		if !ok {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, SavedFile{
			Filename: e.Name(),
			Side:     side,
			SizeKB:   float64(info.Size()) / 1024,
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Filename < files[j].Filename })
	return files, nil
}

// Delete removes one persisted upload.
func (s *FileStore) Delete(filename string) error {
	if filepath.Base(filename) != filename || !strings.HasSuffix(filename, ".csv") {
		return fmt.Errorf("invalid projection filename %q", filename)
	}
	return os.Remove(filepath.Join(s.dir, filename))
}

// Open returns a reader for a persisted upload.
func (s *FileStore) Open(filename string) (*os.File, error) {
	return os.Open(filepath.Join(s.dir, filename))
}

func sidePrefix(side players.Type) string {
	if side == players.TypePitcher {
		return "pitching"
	}
	return "hitting"
}

func sideFromFilename(name string) (players.Type, bool) {
	switch {
	case strings.HasPrefix(name, "hitting_"):
		return players.TypeHitter, true
	case strings.HasPrefix(name, "pitching_"):
		return players.TypePitcher, true
	}
	return "", false
}

func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_' || r == ' ':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
