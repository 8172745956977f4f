package snapshots

import (
	"fmt"
	"path/filepath"
)

// DraftSnapshotPath builds the path to an archived draft snapshot for a
// given date.
func DraftSnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, "draft", fmt.Sprintf("%s.json", date))
}

// CurrentDraftPath builds the path to the live draft snapshot.
func CurrentDraftPath(basePath string) string {
	return filepath.Join(basePath, "draft", "current.json")
}
