package snapshots

import (
	"fmt"
	"path/filepath"
)

// ScoreSnapshotPath builds the path to a scores snapshot for a given date.
func ScoreSnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, "scores", fmt.Sprintf("%s.json", date))
}
