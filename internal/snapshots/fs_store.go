package snapshots

import (
	"encoding/json"
	"errors"
	"os"
)

// Store defines how saved draft ledgers are loaded.
type Store interface {
	LoadDraft() (DraftPayload, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadDraft reads the live draft snapshot from disk. Files are expected
// at {basePath}/draft/current.json with a DraftPayload payload.
func (s *FSStore) LoadDraft() (DraftPayload, error) {
	var payload DraftPayload
	if s == nil {
		return payload, errors.New("snapshot store not configured")
	}
	if err := s.decodeFile(CurrentDraftPath(s.basePath), &payload); err != nil {
		return DraftPayload{}, err
	}
	return payload, nil
}

// HasDraft reports whether a live draft snapshot exists on disk.
func (s *FSStore) HasDraft() bool {
	if s == nil {
		return false
	}
	_, err := os.Stat(CurrentDraftPath(s.basePath))
	return err == nil
}

func (s *FSStore) decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
